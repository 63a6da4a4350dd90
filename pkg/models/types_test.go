package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricSet_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		input    MetricSet
		expected MetricSet
	}{
		{
			name:     "should default to lines, words and chars",
			input:    MetricSet{},
			expected: MetricSet{Lines: true, Words: true, Chars: true},
		},
		{
			name:     "should keep a single selection",
			input:    MetricSet{Words: true},
			expected: MetricSet{Words: true},
		},
		{
			name:     "should keep bytes only",
			input:    MetricSet{Bytes: true},
			expected: MetricSet{Bytes: true},
		},
		{
			name:     "should keep every metric",
			input:    MetricSet{Lines: true, Words: true, Chars: true, Bytes: true, MaxLineLength: true},
			expected: MetricSet{Lines: true, Words: true, Chars: true, Bytes: true, MaxLineLength: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := tt.input.Resolve()
			assert.Equal(t, tt.expected, resolved)
			assert.False(t, resolved.IsEmpty())
		})
	}
}

func TestMetricSet_Active(t *testing.T) {
	t.Run("should return metrics in column order", func(t *testing.T) {
		ms := MetricSet{MaxLineLength: true, Bytes: true, Lines: true}
		assert.Equal(t, []Metric{MetricLines, MetricBytes, MetricMaxLineLength}, ms.Active())
	})

	t.Run("should return nothing for an empty set", func(t *testing.T) {
		assert.Empty(t, MetricSet{}.Active())
	})
}

func TestNewCount(t *testing.T) {
	c := NewCount(MetricSet{Lines: true, Chars: true})

	v, ok := c.Get(MetricLines)
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	_, ok = c.Get(MetricWords)
	assert.False(t, ok)
	assert.Nil(t, c.Words)
	assert.NotNil(t, c.Chars)
}

func TestCount_Add(t *testing.T) {
	ms := MetricSet{Lines: true, Words: true, MaxLineLength: true}

	t.Run("should sum counters and keep the longest line", func(t *testing.T) {
		total := NewCount(ms)

		a := NewCount(ms)
		a.Set(MetricLines, 2)
		a.Set(MetricWords, 5)
		a.Set(MetricMaxLineLength, 7)

		b := NewCount(ms)
		b.Set(MetricLines, 1)
		b.Set(MetricWords, 1)
		b.Set(MetricMaxLineLength, 3)

		total.Add(a)
		total.Add(b)

		lines, _ := total.Get(MetricLines)
		words, _ := total.Get(MetricWords)
		longest, _ := total.Get(MetricMaxLineLength)
		assert.Equal(t, int64(3), lines)
		assert.Equal(t, int64(6), words)
		assert.Equal(t, int64(7), longest)
	})

	t.Run("should ignore metrics absent from the receiver", func(t *testing.T) {
		total := NewCount(MetricSet{Lines: true})

		other := NewCount(MetricSet{Lines: true, Bytes: true})
		other.Set(MetricLines, 4)
		other.Set(MetricBytes, 40)

		total.Add(other)

		assert.Nil(t, total.Bytes)
		lines, _ := total.Get(MetricLines)
		assert.Equal(t, int64(4), lines)
	})

	t.Run("should not share storage with the added count", func(t *testing.T) {
		total := NewCount(MetricSet{Lines: true})
		other := NewCount(MetricSet{Lines: true})
		other.Set(MetricLines, 1)

		total.Add(other)
		other.Set(MetricLines, 100)

		lines, _ := total.Get(MetricLines)
		assert.Equal(t, int64(1), lines)
	})
}

func TestCount_Max(t *testing.T) {
	c := NewCount(MetricSet{Lines: true, Words: true, Chars: true})
	c.Set(MetricLines, 12)
	c.Set(MetricWords, 300)
	c.Set(MetricChars, 45)

	assert.Equal(t, int64(300), c.Max())
	assert.Equal(t, int64(0), Count{}.Max())
}

func TestRunResult(t *testing.T) {
	t.Run("should exit zero when every item succeeded", func(t *testing.T) {
		result := &RunResult{Items: []Item{{Label: "a"}, {Label: "b"}}}

		assert.Equal(t, 0, result.Failed())
		assert.Equal(t, 0, result.ExitCode())
		assert.True(t, result.ShowTotals())
	})

	t.Run("should exit one when an item failed", func(t *testing.T) {
		result := &RunResult{Items: []Item{{Label: "a", Err: errors.New("boom")}}}

		require.Equal(t, 1, result.Failed())
		assert.Equal(t, 1, result.ExitCode())
		assert.False(t, result.ShowTotals())
	})
}
