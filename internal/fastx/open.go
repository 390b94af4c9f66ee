package fastx

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/seqtools/seqtools/internal/errors"
)

// Stdin is the path that selects standard input
const Stdin = "-"

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path (or standard input for "-") and transparently
// decompresses gzip, bzip2 and xz content.
func Open(path string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if path == Stdin || path == "" {
		f = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, errors.OpenFailed(path, err)
		}
		f = fh
	}

	r, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, errors.OpenFailed(path, err)
	}
	return &multiReadCloser{Reader: r, closers: []io.Closer{f}}, nil
}

// Decompress sniffs the first bytes of r and wraps it in the matching decoder.
// Uncompressed input is returned buffered but otherwise unchanged.
func Decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return gzip.NewReader(br)
	case bytes.HasPrefix(head, bzip2Magic):
		return bzip2.NewReader(br), nil
	case bytes.HasPrefix(head, xzMagic):
		return xz.NewReader(br)
	}
	return br, nil
}
