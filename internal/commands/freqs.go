package commands

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/seqtools/seqtools/internal/fastx"
)

// FreqsOptions selects global or per-record residue frequencies
type FreqsOptions struct {
	PerSequence bool
}

// residueCounts counts each byte value of a sequence
type residueCounts [256]int

func (c *residueCounts) add(seq []byte) {
	for _, b := range seq {
		c[b]++
	}
}

func (c *residueCounts) total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// present returns the residues seen, in byte order
func (c *residueCounts) present() []byte {
	var out []byte
	for b, v := range c {
		if v > 0 {
			out = append(out, byte(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func percent(v, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(v) / float64(total) * 100
}

// Freqs prints residue counts and percentages over the whole input, or one
// line per record when PerSequence is set.
func Freqs(e IO, opts FreqsOptions) error {
	w := bufio.NewWriter(e.Stdout)

	if opts.PerSequence {
		err := e.each(func(rec *fastx.Record) error {
			var c residueCounts
			c.add(rec.Seq)
			total := c.total()

			w.WriteString(rec.ID)
			for _, b := range c.present() {
				fmt.Fprintf(w, "\t%c: %d %.2f%%", b, c[b], percent(c[b], total))
			}
			return w.WriteByte('\n')
		})
		if err != nil {
			return err
		}
		return w.Flush()
	}

	var c residueCounts
	records := 0
	err := e.each(func(rec *fastx.Record) error {
		records++
		c.add(rec.Seq)
		return nil
	})
	if err != nil {
		return err
	}

	total := c.total()
	log().Debug("residue frequencies", "records", records, "residues", total)
	for _, b := range c.present() {
		fmt.Fprintf(w, "%c\t%d\t%.2f %%\n", b, c[b], percent(c[b], total))
	}
	return w.Flush()
}
