package fastx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/seqtools/seqtools/internal/errors"
)

// maxLine allows very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// Reader streams records from FASTA or FASTQ input. Each record is
// detected from its header marker, so the format never has to be declared.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	pending []byte // '>' or '@' header read ahead while finishing a FASTA record
	err     error
}

// NewReader returns a Reader over r
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// nextLine returns the next line with any trailing '\r' removed.
// The returned slice is only valid until the following call.
func (r *Reader) nextLine() ([]byte, bool) {
	if !r.sc.Scan() {
		r.err = r.sc.Err()
		return nil, false
	}
	r.line++
	return bytes.TrimRight(r.sc.Bytes(), "\r"), true
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (*Record, error) {
	header := r.pending
	r.pending = nil

	for len(header) == 0 {
		line, ok := r.nextLine()
		if !ok {
			if r.err != nil {
				return nil, errors.E(errors.Op("fastx.Read"), errors.KindIO, r.err)
			}
			return nil, io.EOF
		}
		if len(bytes.TrimSpace(line)) > 0 {
			header = append([]byte(nil), line...)
		}
	}

	switch header[0] {
	case '>':
		return r.readFasta(header)
	case '@':
		return r.readFastq(header)
	}
	return nil, errors.ParseFailed(r.line, fmt.Sprintf("expected '>' or '@' at start of record, got %q", header[0]))
}

func (r *Reader) readFasta(header []byte) (*Record, error) {
	rec := &Record{ID: string(header[1:])}
	seq := make([]byte, 0, 1024)

	for {
		line, ok := r.nextLine()
		if !ok {
			break
		}
		if len(line) > 0 && (line[0] == '>' || line[0] == '@') {
			r.pending = append([]byte(nil), line...)
			break
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if r.err != nil {
		return nil, errors.E(errors.Op("fastx.Read"), errors.KindIO, r.err)
	}

	rec.Seq = seq
	return rec, nil
}

func (r *Reader) readFastq(header []byte) (*Record, error) {
	rec := &Record{ID: string(header[1:])}
	start := r.line

	seq := make([]byte, 0, 256)
	for {
		line, ok := r.nextLine()
		if !ok {
			return nil, errors.ParseFailed(start, fmt.Sprintf("record %s: missing '+' separator", rec.Name()))
		}
		if len(line) > 0 && line[0] == '+' {
			break
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}

	qual := make([]byte, 0, len(seq))
	for len(qual) < len(seq) {
		line, ok := r.nextLine()
		if !ok {
			break
		}
		qual = append(qual, bytes.TrimSpace(line)...)
	}
	if len(qual) != len(seq) {
		return nil, errors.ParseFailed(start, fmt.Sprintf("record %s: %d quality scores for %d bases", rec.Name(), len(qual), len(seq)))
	}

	rec.Seq = seq
	rec.Qual = qual
	return rec, nil
}

// ForEach calls fn for every record of r, stopping at the first error
func ForEach(r *Reader, fn func(*Record) error) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ReadAll loads every record of the file at path into memory
func ReadAll(path string) ([]*Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var records []*Record
	err = ForEach(NewReader(rc), func(rec *Record) error {
		records = append(records, rec)
		return nil
	})
	return records, err
}
