package report

import (
	"fmt"
	"io"

	"tally/pkg/models"

	"gopkg.in/yaml.v3"
)

// Writer writes a finished run to an output and an error channel
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	program string
	format  models.Format
}

// NewWriter creates a new report writer
func NewWriter(out, errOut io.Writer, program string, format models.Format) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		program: program,
		format:  format,
	}
}

// Write renders result. Error lines always go to the error channel.
func (w *Writer) Write(result *models.RunResult) error {
	switch w.format {
	case models.FormatYAML:
		if err := w.writeErrors(result); err != nil {
			return err
		}
		return w.writeYAML(result)
	default:
		return w.writeText(result)
	}
}

func (w *Writer) writeError(item models.Item) error {
	if _, err := fmt.Fprintln(w.errOut, FormatError(w.program, item)); err != nil {
		return fmt.Errorf("failed to write error line: %w", err)
	}
	return nil
}

func (w *Writer) writeErrors(result *models.RunResult) error {
	for _, item := range result.Items {
		if item.Failed() {
			if err := w.writeError(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeText sizes the columns from the totals, then writes every row
func (w *Writer) writeText(result *models.RunResult) error {
	width := ComputeWidth(result.Totals)

	for _, item := range result.Items {
		if item.Failed() {
			if err := w.writeError(item); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w.out, RenderItem(item, result.Metrics, width)); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", item.Label, err)
		}
	}

	if result.ShowTotals() {
		if _, err := fmt.Fprintln(w.out, RenderRow(TotalLabel, result.Totals, result.Metrics, width)); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
	}

	return nil
}

type yamlItem struct {
	Label  string        `yaml:"label"`
	Counts *models.Count `yaml:"counts,omitempty"`
	Error  string        `yaml:"error,omitempty"`
}

type yamlReport struct {
	Metrics []models.Metric `yaml:"metrics"`
	Items   []yamlItem      `yaml:"items"`
	Totals  *models.Count   `yaml:"totals,omitempty"`
}

func (w *Writer) writeYAML(result *models.RunResult) error {
	doc := yamlReport{
		Metrics: result.Metrics.Active(),
		Items:   make([]yamlItem, 0, len(result.Items)),
	}

	for _, item := range result.Items {
		entry := yamlItem{Label: item.Label}
		if item.Failed() {
			entry.Error = item.Err.Error()
		} else {
			count := item.Count
			entry.Counts = &count
		}
		doc.Items = append(doc.Items, entry)
	}

	if result.ShowTotals() {
		totals := result.Totals
		doc.Totals = &totals
	}

	encoder := yaml.NewEncoder(w.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
