package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
)

// testIO returns an IO reading input from memory and the buffers it writes to
func testIO(input string) (IO, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return IO{
		Input:  fastx.Stdin,
		Stdin:  strings.NewReader(input),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeTemp writes content to a file in a fresh temp dir and returns its path
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// parseRecords reads FASTA/FASTQ text back into records
func parseRecords(t *testing.T, s string) []*fastx.Record {
	t.Helper()
	var records []*fastx.Record
	err := fastx.ForEach(fastx.NewReader(strings.NewReader(s)), func(rec *fastx.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("parse output: %v\n%s", err, s)
	}
	return records
}

func assertKind(t *testing.T, err error, want errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := errors.GetKind(err); got != want {
		t.Errorf("error kind = %v, want %v (err: %v)", got, want, err)
	}
}

func assertOutput(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
