package cmd

import (
	"fmt"
	"io"

	"tally/internal/input"
	"tally/internal/processor"
	"tally/internal/report"
	"tally/pkg/logger"
	"tally/pkg/models"

	"github.com/spf13/afero"
)

// Orchestrator runs the two phases of a count: aggregate every input, then render
type Orchestrator struct {
	config *models.Config
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOrchestrator creates a new orchestrator instance
func NewOrchestrator(config *models.Config, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) *Orchestrator {
	return &Orchestrator{
		config: config,
		fs:     fs,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run counts inputs and writes the report. It returns the process exit status.
func (o *Orchestrator) Run(inputs []string) (int, error) {
	resolver := input.NewResolver(o.fs, o.stdin, o.config.SkipDirectories)
	result := processor.NewProcessor(resolver, o.config.Metrics).Run(inputs)

	logger.Logger.WithFields(processor.NewStatsCalculator().GetRunStats(result)).Debug("Aggregation finished")

	writer := report.NewWriter(o.stdout, o.stderr, o.config.ProgramName, o.config.Format)
	if err := writer.Write(result); err != nil {
		return 1, fmt.Errorf("failed to write report: %w", err)
	}

	return result.ExitCode(), nil
}
