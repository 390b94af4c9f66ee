package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqtools/seqtools/internal/commands"
	"github.com/seqtools/seqtools/internal/config"
	"github.com/seqtools/seqtools/internal/logger"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seqtools",
	Short: "seqtools - FASTA/FASTQ toolkit with an alignment viewer",
	Long: `seqtools streams FASTA and FASTQ files (plain, gzip, bzip2 or xz) through
small commands, and opens aligned sequences in an interactive terminal viewer.

Input is read from standard input unless --in names a file.

Examples:
  seqtools count -i reads.fq.gz             # Number of records
  seqtools length -s -i reads.fq            # Length summary statistics
  seqtools random -n 5 -l 60 -s 10          # Random DNA with varying lengths
  seqtools select s1 s7 -i seqs.fa          # Pick records by name
  seqtools convert -t fastq < seqs.fa       # FASTA to FASTQ
  seqtools view -i alignment.fa             # Interactive alignment viewer`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

// Global flags
var (
	flagInput  string
	flagConfig string
	flagDebug  bool
)

// settings is loaded once by setup before any subcommand runs
var settings = config.Defaults()

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "in", "i", "-", "Input FASTA/FASTQ file (- for stdin)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default ~/.seqtools/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// setup prepares the config directory, settings and log file
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	path := flagConfig
	if path == "" {
		path = config.SettingsFile
	}
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	settings = s

	// Load already validated the level
	level, _ := logger.ParseLevel(settings.Log.Level)
	logger.SetLevel(level)
	if flagDebug {
		logger.SetDebug(true)
	}
	if err := logger.Init(settings.LogPath()); err != nil {
		return err
	}

	logger.Debug("running %s (input %s, settings %s)", cmd.CommandPath(), flagInput, path)
	return nil
}

// streams binds the process streams to the selected input
func streams() commands.IO {
	return commands.StdIO(flagInput, settings.Output.LineWidth)
}
