package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tally/pkg/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func testConfig() *models.Config {
	return &models.Config{
		Metrics:     models.DefaultMetrics,
		Format:      models.FormatText,
		ProgramName: "tally",
	}
}

func TestNewOrchestrator(t *testing.T) {
	config := testConfig()
	fs := afero.NewMemMapFs()

	orchestrator := NewOrchestrator(config, fs, nil, nil, nil)

	assert.NotNil(t, orchestrator)
	assert.Equal(t, config, orchestrator.config)
	assert.Equal(t, fs, orchestrator.fs)
}

func TestOrchestrator_Run(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("a b c\nd e\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("x\n"), 0644))

	t.Run("should align every row to the totals width", func(t *testing.T) {
		var out, errOut bytes.Buffer
		orchestrator := NewOrchestrator(testConfig(), fs, strings.NewReader(""), &out, &errOut)

		status, err := orchestrator.Run([]string{"b.txt", "a.txt"})
		require.NoError(t, err)

		assert.Equal(t, 0, status)
		assert.Equal(t, "  1  1  2 b.txt\n  2  5 10 a.txt\n  3  6 12 total\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("should return one when an input fails", func(t *testing.T) {
		var out, errOut bytes.Buffer
		orchestrator := NewOrchestrator(testConfig(), fs, strings.NewReader(""), &out, &errOut)

		status, err := orchestrator.Run([]string{"nope.txt"})
		require.NoError(t, err)

		assert.Equal(t, 1, status)
		assert.Equal(t, " 0 0 0 nope.txt\n", out.String())
		assert.Equal(t, "tally: nope.txt: No such file or directory\n", errOut.String())
	})

	t.Run("should surface output failures", func(t *testing.T) {
		var errOut bytes.Buffer
		orchestrator := NewOrchestrator(testConfig(), fs, strings.NewReader(""), failingWriter{}, &errOut)

		_, err := orchestrator.Run([]string{"a.txt"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
