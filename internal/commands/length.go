package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
)

const (
	maxHistogramBins = 20
	histogramBarMax  = 50
)

// LengthOptions selects what the length command reports
type LengthOptions struct {
	Summary   bool   // print summary statistics instead of per-record lengths
	Histogram bool   // draw a text histogram on stderr, implies Summary
	Plot      string // write an SVG histogram to this path
}

// Summary holds summary statistics of a set of lengths
type Summary struct {
	N      int
	Min    int
	Max    int
	Mean   float64
	Sdev   float64
	Q1     float64
	Median float64
	Q3     float64
}

// Summarize computes summary statistics; lengths is sorted in place.
func Summarize(lengths []float64) (Summary, error) {
	if len(lengths) == 0 {
		return Summary{}, errors.Invalid("commands.Summarize", "no sequences to summarize")
	}
	sort.Float64s(lengths)

	s := Summary{
		N:      len(lengths),
		Min:    int(floats.Min(lengths)),
		Max:    int(floats.Max(lengths)),
		Mean:   stat.Mean(lengths, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, lengths, nil),
		Median: stat.Quantile(0.5, stat.Empirical, lengths, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, lengths, nil),
	}
	if len(lengths) > 1 {
		s.Sdev = stat.StdDev(lengths, nil)
	}
	return s, nil
}

// WriteColumn prints one "Name:\tvalue" line per statistic
func (s Summary) WriteColumn(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Min:\t%d\nMax:\t%d\nMean:\t%.2f\nSdev:\t%.2f\nQ1:\t%g\nMedian:\t%g\nQ3:\t%g\n",
		s.Min, s.Max, s.Mean, s.Sdev, s.Q1, s.Median, s.Q3)
	return err
}

// WriteRow prints every statistic on a single tab-separated line
func (s Summary) WriteRow(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Min: %d\tMax: %d\tMean: %.2f\tSdev: %.2f\tQ1: %g\tMedian: %g\tQ3: %g\n",
		s.Min, s.Max, s.Mean, s.Sdev, s.Q1, s.Median, s.Q3)
	return err
}

// Length prints "id\tlength" per record, or summary statistics of all lengths
func Length(e IO, opts LengthOptions) error {
	collect := opts.Summary || opts.Histogram || opts.Plot != ""

	var lengths []float64
	err := e.each(func(rec *fastx.Record) error {
		if collect {
			lengths = append(lengths, float64(len(rec.Seq)))
		}
		if opts.Summary || opts.Histogram {
			return nil
		}
		_, err := fmt.Fprintf(e.Stdout, "%s\t%d\n", rec.ID, len(rec.Seq))
		return err
	})
	if err != nil || !collect {
		return err
	}

	if opts.Plot != "" {
		if err := PlotLengths(opts.Plot, lengths); err != nil {
			return err
		}
		log().Info("wrote length histogram", "path", opts.Plot, "records", len(lengths))
	}
	if !opts.Summary && !opts.Histogram {
		return nil
	}

	s, err := Summarize(lengths)
	if err != nil {
		return err
	}
	if opts.Histogram {
		if err := WriteHistogram(e.Stderr, lengths); err != nil {
			return err
		}
		return s.WriteRow(e.Stderr)
	}
	return s.WriteColumn(e.Stdout)
}

// histogramBins returns bin dividers spanning sorted values
func histogramBins(sorted []float64) []float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	n := min(maxHistogramBins, int(hi-lo)+1)
	// the last divider must lie above the largest value
	return floats.Span(make([]float64, n+1), lo, hi+1)
}

// WriteHistogram draws a horizontal bar chart of sorted values
func WriteHistogram(w io.Writer, sorted []float64) error {
	if len(sorted) == 0 {
		return nil
	}
	dividers := histogramBins(sorted)
	counts := stat.Histogram(nil, dividers, sorted, nil)
	peak := floats.Max(counts)

	var b strings.Builder
	for i, c := range counts {
		bar := 0
		if peak > 0 {
			bar = int(c / peak * histogramBarMax)
		}
		if c > 0 && bar == 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "%8.1f | %-*s %d\n", dividers[i], histogramBarMax, strings.Repeat("#", bar), int(c))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PlotLengths writes an SVG histogram of lengths to path
func PlotLengths(path string, lengths []float64) error {
	const op = errors.Op("commands.PlotLengths")
	if len(lengths) == 0 {
		return errors.Invalid(op, "no sequences to plot")
	}

	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)

	p := plot.New()
	p.Title.Text = "Sequence lengths"
	p.X.Label.Text = "length"
	p.Y.Label.Text = "records"

	h, err := plotter.NewHist(plotter.Values(sorted), len(histogramBins(sorted))-1)
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	p.Add(h)

	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return errors.E(op, errors.KindIO, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.E(op, errors.KindIO, path, err)
	}
	if _, err := writer.WriteTo(f); err != nil {
		f.Close()
		return errors.E(op, errors.KindIO, path, err)
	}
	if err := f.Close(); err != nil {
		return errors.E(op, errors.KindIO, path, err)
	}
	return nil
}
