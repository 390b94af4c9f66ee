package commands

import (
	"fmt"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
)

// DefaultTrimChars are stripped by trim when no set is given
const DefaultTrimChars = "N-"

// TrimOptions configures the trim command
type TrimOptions struct {
	Chars string // case-insensitive set, "" = DefaultTrimChars
	Out   string
}

type byteSet [256]bool

func caseInsensitiveSet(chars string) byteSet {
	var s byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s[c] = true
		switch {
		case c >= 'a' && c <= 'z':
			s[c-'a'+'A'] = true
		case c >= 'A' && c <= 'Z':
			s[c-'A'+'a'] = true
		}
	}
	return s
}

// trimBounds returns the window of seq left after stripping set from both ends
func trimBounds(seq []byte, set *byteSet) (start, end int) {
	start, end = 0, len(seq)
	for start < end && set[seq[start]] {
		start++
	}
	for end > start && set[seq[end-1]] {
		end--
	}
	return start, end
}

// slice cuts the record's sequence and qualities to [start, end)
func slice(rec *fastx.Record, start, end int) {
	rec.Seq = rec.Seq[start:end]
	if rec.Qual != nil {
		rec.Qual = rec.Qual[start:end]
	}
}

// Trim strips leading and trailing residues found in Chars
func Trim(e IO, opts TrimOptions) error {
	chars := opts.Chars
	if chars == "" {
		chars = DefaultTrimChars
	}
	set := caseInsensitiveSet(chars)

	trimmed := 0
	_, _, err := e.filter(opts.Out, nil, func(rec *fastx.Record) (*fastx.Record, error) {
		start, end := trimBounds(rec.Seq, &set)
		if start > 0 || end < len(rec.Seq) {
			trimmed++
		}
		slice(rec, start, end)
		return rec, nil
	})
	if err != nil {
		return err
	}
	log().Debug("trimmed records", "chars", chars, "changed", trimmed)
	return nil
}

// ClipOptions holds a 1-based inclusive window. End 0 keeps everything
// from Start onwards.
type ClipOptions struct {
	Start int
	End   int
	Out   string
}

func (o ClipOptions) validate() error {
	const op = errors.Op("commands.Clip")
	if o.Start < 1 {
		return errors.Invalid(op, fmt.Sprintf("start must be at least 1, got %d", o.Start))
	}
	if o.End < 0 {
		return errors.Invalid(op, fmt.Sprintf("end must not be negative, got %d", o.End))
	}
	if o.End != 0 && o.End < o.Start {
		return errors.Invalid(op, fmt.Sprintf("end %d is before start %d", o.End, o.Start))
	}
	return nil
}

// window converts the options to a [start, end) range within n residues
func (o ClipOptions) window(n int) (int, int) {
	end := n
	if o.End != 0 {
		end = min(o.End, n)
	}
	start := min(o.Start-1, end)
	return start, end
}

// Clip keeps the residues between Start and End of every record. Records
// shorter than Start come out empty.
func Clip(e IO, opts ClipOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	_, _, err := e.filter(opts.Out, nil, func(rec *fastx.Record) (*fastx.Record, error) {
		start, end := opts.window(len(rec.Seq))
		slice(rec, start, end)
		return rec, nil
	})
	return err
}

// DedupOptions configures the dedup command
type DedupOptions struct {
	ByID bool // compare record names instead of sequences
	Out  string
}

// Dedup drops every record whose sequence (or name) was already seen and
// returns the number dropped.
func Dedup(e IO, opts DedupOptions) (int, error) {
	seen := make(map[string]struct{})
	read, written, err := e.filter(opts.Out, nil, func(rec *fastx.Record) (*fastx.Record, error) {
		key := string(rec.Seq)
		if opts.ByID {
			key = rec.Name()
		}
		if _, dup := seen[key]; dup {
			return nil, nil
		}
		seen[key] = struct{}{}
		return rec, nil
	})
	if err != nil {
		return 0, err
	}
	dropped := read - written
	log().Info("removed duplicates", "by_id", opts.ByID, "read", read, "dropped", dropped)
	return dropped, nil
}
