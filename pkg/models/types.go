package models

// Metric is a countable property of text
type Metric string

const (
	MetricLines         Metric = "lines"
	MetricWords         Metric = "words"
	MetricChars         Metric = "chars"
	MetricBytes         Metric = "bytes"
	MetricMaxLineLength Metric = "max-line-length"
)

// AllMetrics lists every metric in output column order
var AllMetrics = []Metric{MetricLines, MetricWords, MetricChars, MetricBytes, MetricMaxLineLength}

// StdinLabel is the label used for standard input, both as an argument and in output
const StdinLabel = "-"

// MetricSet holds the metrics selected for a run
type MetricSet struct {
	Lines         bool `yaml:"lines"`
	Words         bool `yaml:"words"`
	Chars         bool `yaml:"chars"`
	Bytes         bool `yaml:"bytes"`
	MaxLineLength bool `yaml:"max_line_length"`
}

// DefaultMetrics is the set used when no metric was requested
var DefaultMetrics = MetricSet{Lines: true, Words: true, Chars: true}

// Resolve returns the default trio when nothing is selected, the set itself otherwise
func (ms MetricSet) Resolve() MetricSet {
	if ms.IsEmpty() {
		return DefaultMetrics
	}
	return ms
}

// IsEmpty reports whether no metric is selected
func (ms MetricSet) IsEmpty() bool {
	return !ms.Lines && !ms.Words && !ms.Chars && !ms.Bytes && !ms.MaxLineLength
}

// Has reports whether m is part of the set
func (ms MetricSet) Has(m Metric) bool {
	switch m {
	case MetricLines:
		return ms.Lines
	case MetricWords:
		return ms.Words
	case MetricChars:
		return ms.Chars
	case MetricBytes:
		return ms.Bytes
	case MetricMaxLineLength:
		return ms.MaxLineLength
	}
	return false
}

// Active returns the selected metrics in column order
func (ms MetricSet) Active() []Metric {
	var active []Metric
	for _, m := range AllMetrics {
		if ms.Has(m) {
			active = append(active, m)
		}
	}
	return active
}

// Count holds one optional value per metric. A nil field means the metric was not requested.
type Count struct {
	Lines         *int64 `yaml:"lines,omitempty"`
	Words         *int64 `yaml:"words,omitempty"`
	Chars         *int64 `yaml:"chars,omitempty"`
	Bytes         *int64 `yaml:"bytes,omitempty"`
	MaxLineLength *int64 `yaml:"max_line_length,omitempty"`
}

// NewCount returns a Count with every metric of ms present and set to zero
func NewCount(ms MetricSet) Count {
	var c Count
	for _, m := range ms.Active() {
		c.Set(m, 0)
	}
	return c
}

// field returns the slot backing m
func (c *Count) field(m Metric) **int64 {
	switch m {
	case MetricLines:
		return &c.Lines
	case MetricWords:
		return &c.Words
	case MetricChars:
		return &c.Chars
	case MetricBytes:
		return &c.Bytes
	case MetricMaxLineLength:
		return &c.MaxLineLength
	}
	return nil
}

// Get returns the value for m and whether it is present
func (c Count) Get(m Metric) (int64, bool) {
	f := c.field(m)
	if f == nil || *f == nil {
		return 0, false
	}
	return **f, true
}

// Set stores v for m, making the field present
func (c *Count) Set(m Metric, v int64) {
	if f := c.field(m); f != nil {
		*f = &v
	}
}

// Add folds other into c over the fields present in c.
// Max line length keeps the maximum, every other metric is summed.
func (c *Count) Add(other Count) {
	for _, m := range AllMetrics {
		cur, ok := c.Get(m)
		if !ok {
			continue
		}
		v, ok := other.Get(m)
		if !ok {
			continue
		}
		if m == MetricMaxLineLength {
			if v > cur {
				c.Set(m, v)
			}
			continue
		}
		c.Set(m, cur+v)
	}
}

// Max returns the largest present value, zero when nothing is present
func (c Count) Max() int64 {
	var max int64
	for _, m := range AllMetrics {
		if v, ok := c.Get(m); ok && v > max {
			max = v
		}
	}
	return max
}

// Item is the outcome of processing one input
type Item struct {
	Label string
	Count Count
	Err   error
}

// Failed reports whether the input could not be counted
func (i Item) Failed() bool {
	return i.Err != nil
}

// RunResult contains the ordered items of a run and their totals
type RunResult struct {
	Metrics MetricSet
	Items   []Item
	Totals  Count
}

// Failed returns the number of failed items
func (r *RunResult) Failed() int {
	failed := 0
	for _, item := range r.Items {
		if item.Failed() {
			failed++
		}
	}
	return failed
}

// ExitCode returns 0 when every item succeeded, 1 otherwise
func (r *RunResult) ExitCode() int {
	if r.Failed() > 0 {
		return 1
	}
	return 0
}

// ShowTotals reports whether a totals row belongs in the output
func (r *RunResult) ShowTotals() bool {
	return len(r.Items) > 1
}

// Format is the report output format
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Config represents the complete configuration for a run
type Config struct {
	Metrics         MetricSet
	SkipDirectories bool
	Format          Format
	ProgramName     string
	LogLevel        string
}

// CLIOptions contains command-line options
type CLIOptions struct {
	Lines           bool
	Words           bool
	Chars           bool
	Bytes           bool
	MaxLineLength   bool
	SkipDirectories bool
	Format          string
	Verbose         bool
	Quiet           bool
}
