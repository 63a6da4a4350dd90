package cmd

import (
	"fmt"

	"tally/internal/config"
	"tally/pkg/logger"
	"tally/pkg/models"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version information
	Version = "0.1.0"

	// CLI flags
	lines           bool
	words           bool
	chars           bool
	byteCounts      bool
	maxLineLength   bool
	skipDirectories bool
	format          string
	verbose         bool
	quiet           bool

	// filesystem backs every path argument
	filesystem afero.Fs = afero.NewOsFs()

	// exitStatus is the status of the last run
	exitStatus int
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "tally [FILE...]",
	Short:   "Print line, word, character and byte counts for each file",
	Version: Version,
	Long: `Tally prints newline, word and character counts for each FILE, and a
total line if more than one FILE is specified.

With no FILE, or when FILE is -, read standard input.

Columns always appear in the order lines, words, chars, bytes,
max-line-length. When no metric is selected, lines, words and chars
are printed.

Examples:
  # Default counts for two files
  tally notes.txt todo.txt

  # Word count of standard input
  cat notes.txt | tally --words

  # Skip directories instead of reporting them
  tally -D *

  # Machine-readable report
  tally --bytes --format yaml notes.txt`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCount,
}

func init() {
	RootCmd.Flags().BoolVarP(&lines, "lines", "l", false, "Print the newline counts")
	RootCmd.Flags().BoolVarP(&words, "words", "w", false, "Print the word counts")
	RootCmd.Flags().BoolVarP(&chars, "chars", "m", false, "Print the character counts")
	RootCmd.Flags().BoolVarP(&byteCounts, "bytes", "c", false, "Print the byte counts")
	RootCmd.Flags().BoolVarP(&maxLineLength, "max-line-length", "L", false, "Print the maximum display width")
	RootCmd.Flags().BoolVarP(&skipDirectories, "skip-directories", "D", false, "Skip directories silently")
	RootCmd.Flags().StringVarP(&format, "format", "f", string(models.FormatText), "Output format (text or yaml)")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
	RootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

// ExitStatus returns the exit status of the last run: 0 when every input
// was counted, 1 when at least one failed
func ExitStatus() int {
	return exitStatus
}

// runCount executes the root command
func runCount(cmd *cobra.Command, args []string) error {
	exitStatus = 0

	cliOptions := &models.CLIOptions{
		Lines:           lines,
		Words:           words,
		Chars:           chars,
		Bytes:           byteCounts,
		MaxLineLength:   maxLineLength,
		SkipDirectories: skipDirectories,
		Format:          format,
		Verbose:         verbose,
		Quiet:           quiet,
	}

	configLoader := config.NewLoader()
	cfg := configLoader.LoadConfig()

	if err := configLoader.OverrideWithFlags(cfg, cliOptions); err != nil {
		return fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := configLoader.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.LogLevel)
	logger.Logger.WithField("inputs", len(args)).Debug("Starting tally")

	orchestrator := NewOrchestrator(cfg, filesystem, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	status, err := orchestrator.Run(args)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to write report")
		return err
	}

	exitStatus = status
	return nil
}
