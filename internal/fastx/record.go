// Package fastx reads and writes FASTA and FASTQ records.
//
// Input is streamed: Reader.Next returns one record at a time and never holds
// more than the current record in memory. Compressed input (gzip, bzip2, xz)
// is detected from the leading magic bytes, not the file extension.
package fastx

import (
	"strings"

	"github.com/seqtools/seqtools/internal/errors"
)

// Format is a sequence file format
type Format int

const (
	FASTA Format = iota
	FASTQ
)

func (f Format) String() string {
	if f == FASTQ {
		return "fastq"
	}
	return "fasta"
}

// ParseFormat accepts "fasta"/"fa"/"a" and "fastq"/"fq"/"q"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fasta", "fa", "a":
		return FASTA, nil
	case "fastq", "fq", "q":
		return FASTQ, nil
	}
	return FASTA, errors.Invalid("fastx.ParseFormat", "unknown format "+s+" (want fasta or fastq)")
}

// Record is one sequence entry. ID holds the whole header line without its
// leading '>' or '@'. Qual is nil for FASTA records.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Name returns the header up to the first whitespace
func (r *Record) Name() string {
	if i := strings.IndexAny(r.ID, " \t"); i >= 0 {
		return r.ID[:i]
	}
	return r.ID
}
