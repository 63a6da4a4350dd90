// Package report renders a run as aligned columns or as a YAML document.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tally/internal/input"
	"tally/pkg/models"
	"tally/pkg/utils"
)

// TotalLabel labels the aggregate row
const TotalLabel = "total"

// ComputeWidth returns the column width for a run: one more than the digits
// of the largest total. Totals bound every item, so no column overflows.
func ComputeWidth(totals models.Count) int {
	return 1 + utils.Digits(totals.Max())
}

// RenderRow right-aligns each active metric of count to width, then appends the label
func RenderRow(label string, count models.Count, metrics models.MetricSet, width int) string {
	var b strings.Builder
	for _, m := range metrics.Active() {
		v, _ := count.Get(m)
		s := strconv.FormatInt(v, 10)
		if pad := width - len(s); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(s)
	}
	b.WriteByte(' ')
	b.WriteString(label)
	return b.String()
}

// RenderItem renders an item row. Failed items render as zeros.
func RenderItem(item models.Item, metrics models.MetricSet, width int) string {
	if item.Failed() {
		return RenderRow(item.Label, models.NewCount(metrics), metrics, width)
	}
	return RenderRow(item.Label, item.Count, metrics, width)
}

// FormatError formats a failure for the error channel as "program: path: reason"
func FormatError(program string, item models.Item) string {
	var inputErr *input.Error
	if errors.As(item.Err, &inputErr) {
		return fmt.Sprintf("%s: %s: %s", program, inputErr.Path, inputErr.Message())
	}
	return fmt.Sprintf("%s: %s: %v", program, item.Label, item.Err)
}
