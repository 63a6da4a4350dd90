package processor

import (
	"tally/pkg/models"
)

// StatsCalculator summarises a run for diagnostics
type StatsCalculator struct{}

// NewStatsCalculator creates a new stats calculator
func NewStatsCalculator() *StatsCalculator {
	return &StatsCalculator{}
}

// GetRunStats returns statistics about the run
func (sc *StatsCalculator) GetRunStats(result *models.RunResult) map[string]interface{} {
	stats := make(map[string]interface{})

	stats["items"] = len(result.Items)
	stats["failed_items"] = result.Failed()
	stats["counted_items"] = len(result.Items) - result.Failed()
	stats["exit_code"] = result.ExitCode()

	for _, m := range result.Metrics.Active() {
		if v, ok := result.Totals.Get(m); ok {
			stats["total_"+string(m)] = v
		}
	}

	return stats
}
