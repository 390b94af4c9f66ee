package fastx

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqtools/seqtools/internal/errors"
)

func readAllString(t *testing.T, input string) []*Record {
	t.Helper()
	var records []*Record
	err := ForEach(NewReader(strings.NewReader(input)), func(rec *Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	return records
}

func TestReader_Fasta(t *testing.T) {
	input := ">seq1 first record\nACGT\nTTGA\n\n>seq2\r\nGG-A\r\n>empty\n"

	records := readAllString(t, input)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	tests := []struct {
		id, name, seq string
	}{
		{"seq1 first record", "seq1", "ACGTTTGA"},
		{"seq2", "seq2", "GG-A"},
		{"empty", "empty", ""},
	}
	for i, tt := range tests {
		rec := records[i]
		if rec.ID != tt.id || rec.Name() != tt.name || string(rec.Seq) != tt.seq {
			t.Errorf("record %d = {%q %q %q}, want {%q %q %q}", i, rec.ID, rec.Name(), rec.Seq, tt.id, tt.name, tt.seq)
		}
		if rec.Qual != nil {
			t.Errorf("record %d: FASTA record has quality", i)
		}
	}
}

func TestReader_FastaThenFastq(t *testing.T) {
	records := readAllString(t, ">s1 first\nAC\n@s2\nG\n+\nI\n")
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if string(records[0].Seq) != "AC" || records[0].Qual != nil {
		t.Errorf("record 0 = {%q %q}, want {AC nil}", records[0].Seq, records[0].Qual)
	}
	if records[1].ID != "s2" || string(records[1].Seq) != "G" || string(records[1].Qual) != "I" {
		t.Errorf("record 1 = {%q %q %q}, want {s2 G I}", records[1].ID, records[1].Seq, records[1].Qual)
	}
}

func TestReader_Fastq(t *testing.T) {
	input := "@r1\nACGT\n+\nIIII\n@r2 desc\nGG\n+r2\n@@\n"

	records := readAllString(t, input)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if string(records[0].Seq) != "ACGT" || string(records[0].Qual) != "IIII" {
		t.Errorf("r1 = %q/%q", records[0].Seq, records[0].Qual)
	}
	// A quality line starting with '@' must not be mistaken for a header.
	if records[1].Name() != "r2" || string(records[1].Qual) != "@@" {
		t.Errorf("r2 = %q/%q", records[1].ID, records[1].Qual)
	}
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no marker", "ACGT\n"},
		{"missing plus", "@r1\nACGT\n"},
		{"short quality", "@r1\nACGT\n+\nII\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			_, err := r.Next()
			if !errors.Is(err, errors.KindParse) {
				t.Errorf("Next() error = %v, want KindParse", err)
			}
		})
	}
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader("\n\n"))
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestDecompress_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(">a\nAC\n>b\nGT\n"))
	gz.Close()

	r, err := Decompress(&buf)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	var ids []string
	ForEach(NewReader(r), func(rec *Record) error {
		ids = append(ids, rec.ID)
		return nil
	})
	if strings.Join(ids, ",") != "a,b" {
		t.Errorf("ids = %v, want [a b]", ids)
	}
}

func TestReadAll_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.fa")
	if err := os.WriteFile(path, []byte(">x\nAAA\n>y\nCC\n"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 2 || string(records[1].Seq) != "CC" {
		t.Errorf("ReadAll() = %v", records)
	}

	if _, err := ReadAll(filepath.Join(t.TempDir(), "missing.fa")); !errors.Is(err, errors.KindIO) {
		t.Errorf("ReadAll(missing) error = %v, want KindIO", err)
	}
}

func TestWriter_FastaWrap(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FASTA, 4)
	w.Write(&Record{ID: "s1", Seq: []byte("ACGTACGTAC")})
	w.Write(&Record{ID: "s2", Seq: []byte("ACGT")})
	w.Flush()

	want := ">s1\nACGT\nACGT\nAC\n>s2\nACGT\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_FastqFillsQuality(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FASTQ, 0)
	w.SetQuality('#')
	w.Write(&Record{ID: "s1", Seq: []byte("ACG")})
	w.Write(&Record{ID: "s2", Seq: []byte("TT"), Qual: []byte("AB")})
	w.Flush()

	want := "@s1\nACG\n+\n###\n@s2\nTT\n+\nAB\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"fasta", "FA", "a"} {
		if f, err := ParseFormat(s); err != nil || f != FASTA {
			t.Errorf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	for _, s := range []string{"fastq", "fq", "Q"} {
		if f, err := ParseFormat(s); err != nil || f != FASTQ {
			t.Errorf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("genbank"); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("ParseFormat(genbank) error = %v, want KindInvalid", err)
	}
}
