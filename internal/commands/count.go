package commands

import (
	"fmt"

	"github.com/seqtools/seqtools/internal/fastx"
)

// Count prints the number of records as "N sequences"
func Count(e IO) (int, error) {
	n := 0
	err := e.each(func(*fastx.Record) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}

	log().Debug("counted records", "input", e.Input, "count", n)
	_, err = fmt.Fprintf(e.Stdout, "%d sequences\n", n)
	return n, err
}

// IDs prints every record header, one per line
func IDs(e IO) error {
	return e.each(func(rec *fastx.Record) error {
		_, err := fmt.Fprintln(e.Stdout, rec.ID)
		return err
	})
}
