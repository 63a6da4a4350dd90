package processor

import (
	"errors"
	"time"

	"tally/internal/counter"
	"tally/internal/input"
	"tally/pkg/logger"
	"tally/pkg/models"
)

// Source yields the text behind an input label
type Source interface {
	Resolve(path string) (string, error)
}

// Processor counts inputs one after the other and accumulates their totals
type Processor struct {
	source  Source
	metrics models.MetricSet
}

// NewProcessor creates a new processor. The metric set is resolved once here.
func NewProcessor(source Source, metrics models.MetricSet) *Processor {
	return &Processor{
		source:  source,
		metrics: metrics.Resolve(),
	}
}

// Metrics returns the metric set used for every item of a run
func (p *Processor) Metrics() models.MetricSet {
	return p.metrics
}

// Run processes inputs in order. No inputs means standard input.
func (p *Processor) Run(inputs []string) *models.RunResult {
	if len(inputs) == 0 {
		inputs = []string{models.StdinLabel}
	}

	startTime := time.Now()
	result := &models.RunResult{
		Metrics: p.metrics,
		Items:   make([]models.Item, 0, len(inputs)),
		Totals:  models.NewCount(p.metrics),
	}

	for _, path := range inputs {
		item, ok := p.process(path)
		if !ok {
			continue
		}
		if !item.Failed() {
			result.Totals.Add(item.Count)
		}
		result.Items = append(result.Items, item)
	}

	logger.Logger.WithFields(map[string]interface{}{
		"inputs":   len(inputs),
		"items":    len(result.Items),
		"failed":   result.Failed(),
		"duration": time.Since(startTime).Round(time.Microsecond),
	}).Debug("Run completed")

	return result
}

// process handles a single input. It reports false when the input produces no item.
func (p *Processor) process(path string) (models.Item, bool) {
	text, err := p.source.Resolve(path)
	if err != nil {
		if errors.Is(err, input.ErrSkipped) {
			return models.Item{}, false
		}

		var inputErr *input.Error
		if !errors.As(err, &inputErr) {
			inputErr = &input.Error{Path: path, Kind: input.ReadError, Err: err}
		}
		logger.Logger.WithError(inputErr.Err).WithFields(map[string]interface{}{
			"path": path,
			"kind": inputErr.Kind.String(),
		}).Debug("Failed to resolve input")

		return models.Item{Label: path, Err: inputErr}, true
	}

	count := counter.Count(text, p.metrics)
	logger.Logger.WithField("path", path).Debug("Counted input")

	return models.Item{Label: path, Count: count}, true
}
