package fastx

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/seqtools/seqtools/internal/errors"
)

// DefaultQuality fills FASTQ quality strings for records that have none
const DefaultQuality = 'I'

// Writer writes records in a fixed output format
type Writer struct {
	w         *bufio.Writer
	format    Format
	lineWidth int
	quality   byte
}

// NewWriter returns a Writer producing format. lineWidth wraps FASTA
// sequence lines; 0 keeps each sequence on one line.
func NewWriter(w io.Writer, format Format, lineWidth int) *Writer {
	return &Writer{
		w:         bufio.NewWriter(w),
		format:    format,
		lineWidth: lineWidth,
		quality:   DefaultQuality,
	}
}

// SetQuality changes the fill character used for FASTQ output of FASTA input
func (w *Writer) SetQuality(q byte) {
	w.quality = q
}

// Write writes one record
func (w *Writer) Write(rec *Record) error {
	if w.format == FASTQ {
		return w.writeFastq(rec)
	}
	return w.writeFasta(rec)
}

func (w *Writer) writeFasta(rec *Record) error {
	w.w.WriteByte('>')
	w.w.WriteString(rec.ID)
	w.w.WriteByte('\n')

	seq := rec.Seq
	if w.lineWidth <= 0 {
		w.w.Write(seq)
		_, err := w.w.WriteString("\n")
		return err
	}
	for len(seq) > w.lineWidth {
		w.w.Write(seq[:w.lineWidth])
		w.w.WriteByte('\n')
		seq = seq[w.lineWidth:]
	}
	if len(seq) > 0 {
		w.w.Write(seq)
		w.w.WriteByte('\n')
	}
	return nil
}

func (w *Writer) writeFastq(rec *Record) error {
	qual := rec.Qual
	if len(qual) != len(rec.Seq) {
		qual = bytes.Repeat([]byte{w.quality}, len(rec.Seq))
	}

	w.w.WriteByte('@')
	w.w.WriteString(rec.ID)
	w.w.WriteByte('\n')
	w.w.Write(rec.Seq)
	w.w.WriteString("\n+\n")
	w.w.Write(qual)
	_, err := w.w.WriteString("\n")
	return err
}

// Flush writes any buffered data to the underlying writer
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return errors.E(errors.Op("fastx.Write"), errors.KindIO, err)
	}
	return nil
}

// Create opens path for writing, or returns standard output for "" and "-".
// The returned closer is a no-op for standard output.
func Create(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdin {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.E(errors.Op("fastx.Create"), errors.KindIO, "failed to create "+path, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
