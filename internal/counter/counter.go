// Package counter reduces a text buffer to the requested metrics.
package counter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"tally/pkg/models"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// Count computes the metrics of ms over text. Metrics outside ms stay absent.
func Count(text string, ms models.MetricSet) models.Count {
	var c models.Count

	if ms.Lines {
		c.Set(models.MetricLines, Lines(text))
	}
	if ms.Words {
		c.Set(models.MetricWords, Words(text))
	}
	if ms.Chars {
		c.Set(models.MetricChars, int64(utf8.RuneCountInString(text)))
	}
	if ms.Bytes {
		c.Set(models.MetricBytes, int64(len(text)))
	}
	if ms.MaxLineLength {
		c.Set(models.MetricMaxLineLength, MaxLineLength(text))
	}

	return c
}

// Lines counts line segments. A final segment without a newline still counts.
func Lines(text string) int64 {
	n := int64(strings.Count(text, "\n"))
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// Words counts runs of non-whitespace characters
func Words(text string) int64 {
	var n int64
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// MaxLineLength returns the display width of the widest line
func MaxLineLength(text string) int64 {
	var max int64
	for _, line := range strings.Split(text, "\n") {
		if w := lineWidth(strings.TrimSuffix(line, "\r")); w > max {
			max = w
		}
	}
	return max
}

func lineWidth(line string) int64 {
	width := 0
	for i, segment := range strings.Split(line, "\t") {
		if i > 0 {
			width += tabWidth - width%tabWidth
		}
		width += runewidth.StringWidth(segment)
	}
	return int64(width)
}
