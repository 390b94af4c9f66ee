package commands

import (
	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
	"github.com/seqtools/seqtools/internal/tui"
)

// LoadAlignment reads a whole file for the viewer. The title is the path
// as given. Standard input is refused.
func LoadAlignment(path string) (ids, seqs []string, title string, err error) {
	const op = errors.Op("commands.LoadAlignment")
	if path == "" || path == fastx.Stdin {
		return nil, nil, "", errors.Invalid(op, "view cannot read standard input; pass a file with --in")
	}

	records, err := fastx.ReadAll(path)
	if err != nil {
		return nil, nil, "", err
	}
	if len(records) == 0 {
		return nil, nil, "", errors.Invalid(op, path+" contains no sequences")
	}

	ids = make([]string, len(records))
	seqs = make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.Name()
		seqs[i] = string(rec.Seq)
	}
	return ids, seqs, path, nil
}

// View loads the alignment at path and runs the interactive viewer
func View(path string, opts tui.Options) error {
	ids, seqs, title, err := LoadAlignment(path)
	if err != nil {
		return err
	}
	log().Info("opening viewer", "path", path, "sequences", len(ids))
	return tui.Run(ids, seqs, title, opts)
}
