// Package commands implements the seqtools subcommands. Every command
// except view streams its input one record at a time.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
	"github.com/seqtools/seqtools/internal/logger"
)

// log is looked up per call; logger.Init runs after package initialization
func log() *slog.Logger {
	return logger.ComponentLogger("commands")
}

// IO carries the streams a command reads and writes
type IO struct {
	Input     string    // path, or "" / "-" for standard input
	Stdin     io.Reader // replaces os.Stdin when set
	Stdout    io.Writer
	Stderr    io.Writer
	LineWidth int // FASTA wrap width, 0 = single line
}

// StdIO returns an IO bound to the process streams
func StdIO(input string, lineWidth int) IO {
	return IO{
		Input:     input,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LineWidth: lineWidth,
	}
}

func (e IO) readsStdin() bool {
	return e.Input == "" || e.Input == fastx.Stdin
}

// open returns the decompressed input stream
func (e IO) open() (io.ReadCloser, error) {
	if e.readsStdin() && e.Stdin != nil {
		r, err := fastx.Decompress(e.Stdin)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}
	return fastx.Open(e.Input)
}

// each calls fn for every input record
func (e IO) each(fn func(*fastx.Record) error) error {
	rc, err := e.open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return fastx.ForEach(fastx.NewReader(rc), fn)
}

// create opens an output file, or returns Stdout for "" and "-"
func (e IO) create(path string) (io.WriteCloser, error) {
	if path == "" || path == fastx.Stdin {
		return nopCloser{e.Stdout}, nil
	}
	return fastx.Create(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// recordSink writes records, choosing FASTQ when the first record carries
// qualities unless a format was fixed up front.
type recordSink struct {
	w         io.Writer
	lineWidth int
	format    *fastx.Format
	quality   byte
	fw        *fastx.Writer
	written   int
}

func (s *recordSink) Write(rec *fastx.Record) error {
	if s.fw == nil {
		format := fastx.FASTA
		switch {
		case s.format != nil:
			format = *s.format
		case rec.Qual != nil:
			format = fastx.FASTQ
		}
		s.fw = fastx.NewWriter(s.w, format, s.lineWidth)
		if s.quality != 0 {
			s.fw.SetQuality(s.quality)
		}
	}
	s.written++
	return s.fw.Write(rec)
}

func (s *recordSink) Flush() error {
	if s.fw == nil {
		return nil
	}
	return s.fw.Flush()
}

// filter streams records through fn into the output at path.
// fn returns the record to write, or nil to drop it.
func (e IO) filter(path string, sink *recordSink, fn func(*fastx.Record) (*fastx.Record, error)) (read, written int, err error) {
	out, err := e.create(path)
	if err != nil {
		return 0, 0, err
	}

	if sink == nil {
		sink = &recordSink{}
	}
	sink.w = out
	sink.lineWidth = e.LineWidth

	err = e.each(func(rec *fastx.Record) error {
		read++
		kept, err := fn(rec)
		if err != nil || kept == nil {
			return err
		}
		return sink.Write(kept)
	})
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}
	return read, sink.written, finish(out, path, err)
}

// finish closes an output and returns err, or the close error if err is nil
func finish(out io.Closer, path string, err error) error {
	if cerr := out.Close(); cerr != nil && err == nil {
		return errors.E(errors.Op("commands.finish"), errors.KindIO, path, cerr)
	}
	return err
}
