package commands

import (
	"fmt"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
)

// ConvertOptions configures the convert command
type ConvertOptions struct {
	To      fastx.Format
	Out     string
	Quality byte // FASTQ fill for records without qualities, 0 = fastx.DefaultQuality
}

// ValidQuality reports whether q is a printable Phred+33 character
func ValidQuality(q byte) bool {
	return q >= '!' && q <= '~'
}

// Convert rewrites every record in the target format. FASTA records gain
// a constant quality string when written as FASTQ.
func Convert(e IO, opts ConvertOptions) error {
	if opts.Quality != 0 && !ValidQuality(opts.Quality) {
		return errors.Invalid("commands.Convert", fmt.Sprintf("quality %q is not a printable Phred+33 character", opts.Quality))
	}

	to := opts.To
	sink := &recordSink{format: &to, quality: opts.Quality}
	read, _, err := e.filter(opts.Out, sink, func(rec *fastx.Record) (*fastx.Record, error) {
		return rec, nil
	})
	if err != nil {
		return err
	}
	log().Debug("converted records", "to", to.String(), "records", read)
	return nil
}
