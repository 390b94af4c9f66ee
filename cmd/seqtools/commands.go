package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqtools/seqtools/internal/commands"
	"github.com/seqtools/seqtools/internal/config"
	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
	"github.com/seqtools/seqtools/internal/keybinds"
	"github.com/seqtools/seqtools/internal/tui"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the records of a file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.Count(streams())
		return err
	},
}

var lengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Print record lengths or length statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.Length(streams(), lengthOpts)
	},
}

var freqsCmd = &cobra.Command{
	Use:   "freqs",
	Short: "Print residue frequencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.Freqs(streams(), freqsOpts)
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random sequences with normally distributed lengths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRandom()
	},
}

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print record identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.IDs(streams())
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert records to FASTA or FASTQ",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert()
	},
}

var selectCmd = &cobra.Command{
	Use:   "select [ids...]",
	Short: "Select records by identifier or index",
	Long: `Select records by name, full header or 0-based index.

Identifiers can be given as arguments, in a file (one per line), or both.
Records are written in input order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selectOpts.IDs = args
		_, err := commands.Select(streams(), selectOpts)
		return err
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename records with a numbered prefix or a name map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.Rename(streams(), renameOpts)
	},
}

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Strip leading and trailing residues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.Trim(streams(), trimOpts)
	},
}

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Keep a 1-based inclusive window of every record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.Clip(streams(), clipOpts)
	},
}

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Drop records with an already seen sequence or name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.Dedup(streams(), dedupOpts)
		return err
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse an alignment in the terminal",
	Long: `Open the file given with --in in an interactive, colored alignment viewer.

Keys: arrows scroll, PgUp/PgDn jump to the first/last rows, Home/End to the
first/last columns, t toggles dark mode, r toggles background highlighting,
y copies the top record, h or ? shows help, q quits.

Key bindings can be overridden in ~/.seqtools/keybinds.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView()
	},
}

// Per-command flags
var (
	lengthOpts commands.LengthOptions
	freqsOpts  commands.FreqsOptions
	selectOpts commands.SelectOptions
	renameOpts commands.RenameOptions
	trimOpts   commands.TrimOptions
	clipOpts   commands.ClipOptions
	dedupOpts  commands.DedupOptions
)

// Flags parsed from strings
var (
	randomNum      int
	randomLen      float64
	randomStd      float64
	randomType     string
	randomFormat   string
	randomOut      string
	randomSeed     uint64
	convertTo      string
	convertOut     string
	convertQuality string
)

func init() {
	lengthCmd.Flags().BoolVarP(&lengthOpts.Summary, "summary", "s", false, "Print summary statistics")
	lengthCmd.Flags().BoolVarP(&lengthOpts.Histogram, "histogram", "t", false, "Draw a length histogram on stderr")
	lengthCmd.Flags().StringVar(&lengthOpts.Plot, "plot", "", "Write an SVG length histogram to `FILE`")

	freqsCmd.Flags().BoolVarP(&freqsOpts.PerSequence, "per-sequence", "s", false, "Frequencies per record instead of globally")

	randomCmd.Flags().IntVarP(&randomNum, "num", "n", 10, "Number of sequences")
	randomCmd.Flags().Float64VarP(&randomLen, "len", "l", 100, "Mean sequence length")
	randomCmd.Flags().Float64VarP(&randomStd, "std", "s", 0, "Standard deviation of the length")
	randomCmd.Flags().StringVarP(&randomType, "type", "t", "dna", "Sequence type (dna/rna/protein)")
	randomCmd.Flags().StringVarP(&randomFormat, "format", "f", "fasta", "Output format (fasta/fastq)")
	randomCmd.Flags().StringVarP(&randomOut, "out", "o", "", "Output file (default stdout)")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Random seed (0 = from clock)")

	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "fasta", "Output format (fasta/fastq)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file (default stdout)")
	convertCmd.Flags().StringVar(&convertQuality, "quality", "", "Quality character for FASTA input written as FASTQ")

	selectCmd.Flags().BoolVarP(&selectOpts.UseIndices, "use-indices", "u", false, "Treat identifiers as 0-based indices")
	selectCmd.Flags().StringVarP(&selectOpts.IDsFile, "ids-file", "f", "", "File with one identifier per line")
	selectCmd.Flags().StringVarP(&selectOpts.Out, "out", "o", "", "Output file (default stdout)")

	renameCmd.Flags().StringVar(&renameOpts.Prefix, "prefix", "", "Rename to PREFIX1, PREFIX2, ...")
	renameCmd.Flags().StringVar(&renameOpts.MapFile, "map", "", "Tab-separated old/new name file")
	renameCmd.Flags().StringVarP(&renameOpts.Out, "out", "o", "", "Output file (default stdout)")
	renameCmd.MarkFlagsMutuallyExclusive("prefix", "map")
	renameCmd.MarkFlagsOneRequired("prefix", "map")

	trimCmd.Flags().StringVar(&trimOpts.Chars, "chars", commands.DefaultTrimChars, "Characters to strip (case-insensitive)")
	trimCmd.Flags().StringVarP(&trimOpts.Out, "out", "o", "", "Output file (default stdout)")

	clipCmd.Flags().IntVar(&clipOpts.Start, "start", 0, "First position to keep (1-based)")
	clipCmd.Flags().IntVar(&clipOpts.End, "end", 0, "Last position to keep, inclusive (0 = to the end)")
	clipCmd.Flags().StringVarP(&clipOpts.Out, "out", "o", "", "Output file (default stdout)")
	clipCmd.MarkFlagRequired("start")

	dedupCmd.Flags().BoolVar(&dedupOpts.ByID, "by-id", false, "Compare record names instead of sequences")
	dedupCmd.Flags().StringVarP(&dedupOpts.Out, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(lengthCmd)
	rootCmd.AddCommand(freqsCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(idsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(clipCmd)
	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(viewCmd)
}

// runRandom parses the random flags and generates sequences
func runRandom() error {
	molecule, err := commands.ParseMolecule(randomType)
	if err != nil {
		return err
	}
	format, err := fastx.ParseFormat(randomFormat)
	if err != nil {
		return err
	}

	opts := commands.RandomOptions{
		N:        randomNum,
		Length:   randomLen,
		Std:      randomStd,
		Molecule: molecule,
		Format:   format,
		Out:      randomOut,
		Seed:     randomSeed,
	}
	return commands.Random(streams(), opts)
}

// runConvert parses the convert flags and rewrites the input
func runConvert() error {
	to, err := fastx.ParseFormat(convertTo)
	if err != nil {
		return err
	}

	opts := commands.ConvertOptions{To: to, Out: convertOut}
	switch len(convertQuality) {
	case 0:
	case 1:
		opts.Quality = convertQuality[0]
	default:
		return errors.Invalid("cli.convert", fmt.Sprintf("--quality takes a single character, got %q", convertQuality))
	}
	return commands.Convert(streams(), opts)
}

// runView starts the alignment viewer with the configured settings and keys
func runView() error {
	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	opts := tui.DefaultOptions()
	opts.TickInterval = settings.Viewer.TickInterval()
	opts.Dark = settings.Viewer.Dark
	opts.HighlightBackground = settings.Viewer.HighlightBackground
	opts.Keybinds = registry

	return commands.View(flagInput, opts)
}
