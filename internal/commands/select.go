package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/fastx"
)

// SelectOptions configures the select command
type SelectOptions struct {
	IDs        []string
	UseIndices bool   // IDs are 0-based record indices
	IDsFile    string // one identifier (or index) per line
	Out        string
}

// readLines returns the non-blank, trimmed lines of path
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.OpenFailed(path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.E(errors.Op("commands.readLines"), errors.KindIO, path, err)
	}
	return lines, nil
}

// selector decides whether a record, given its 0-based position, is kept
type selector func(i int, rec *fastx.Record) bool

func newSelector(opts SelectOptions) (selector, error) {
	const op = errors.Op("commands.Select")

	keys := append([]string(nil), opts.IDs...)
	if opts.IDsFile != "" {
		lines, err := readLines(opts.IDsFile)
		if err != nil {
			return nil, err
		}
		keys = append(keys, lines...)
	}
	if len(keys) == 0 {
		return nil, errors.Invalid(op, "no identifiers given (pass ids or --ids-file)")
	}

	if opts.UseIndices {
		indices := make(map[int]struct{}, len(keys))
		for _, k := range keys {
			n, err := strconv.Atoi(k)
			if err != nil || n < 0 {
				return nil, errors.Invalid(op, fmt.Sprintf("invalid index %q", k))
			}
			indices[n] = struct{}{}
		}
		return func(i int, _ *fastx.Record) bool {
			_, ok := indices[i]
			return ok
		}, nil
	}

	ids := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		ids[k] = struct{}{}
	}
	return func(_ int, rec *fastx.Record) bool {
		if _, ok := ids[rec.Name()]; ok {
			return true
		}
		_, ok := ids[rec.ID]
		return ok
	}, nil
}

// Select writes the records whose name, full header or index was requested,
// in input order. It returns the number of records written.
func Select(e IO, opts SelectOptions) (int, error) {
	keep, err := newSelector(opts)
	if err != nil {
		return 0, err
	}

	i := -1
	read, written, err := e.filter(opts.Out, nil, func(rec *fastx.Record) (*fastx.Record, error) {
		i++
		if keep(i, rec) {
			return rec, nil
		}
		return nil, nil
	})
	if err != nil {
		return written, err
	}
	log().Info("selected records", "read", read, "written", written)
	return written, nil
}

// RenameOptions configures the rename command. Exactly one of Prefix and
// MapFile must be set.
type RenameOptions struct {
	Prefix  string
	MapFile string // tab-separated "old<TAB>new" lines
	Out     string
}

// readRenameMap parses a two-column tab-separated file
func readRenameMap(path string) (map[string]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(lines))
	for i, line := range lines {
		from, to, ok := strings.Cut(line, "\t")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, errors.ParseFailed(i+1, fmt.Sprintf("%s: expected \"old<TAB>new\", got %q", path, line))
		}
		m[from] = to
	}
	return m, nil
}

// Rename rewrites record names. With a prefix every record becomes
// prefix1, prefix2, ... and loses its description. With a map only the
// name is replaced and records missing from the map pass through.
func Rename(e IO, opts RenameOptions) error {
	const op = errors.Op("commands.Rename")
	if (opts.Prefix == "") == (opts.MapFile == "") {
		return errors.Invalid(op, "exactly one of --prefix and --map is required")
	}

	var rename func(i int, rec *fastx.Record)
	if opts.Prefix != "" {
		rename = func(i int, rec *fastx.Record) {
			rec.ID = opts.Prefix + strconv.Itoa(i+1)
		}
	} else {
		names, err := readRenameMap(opts.MapFile)
		if err != nil {
			return err
		}
		rename = func(_ int, rec *fastx.Record) {
			name := rec.Name()
			if to, ok := names[name]; ok {
				rec.ID = to + rec.ID[len(name):]
			}
		}
	}

	i := -1
	_, _, err := e.filter(opts.Out, nil, func(rec *fastx.Record) (*fastx.Record, error) {
		i++
		rename(i, rec)
		return rec, nil
	})
	return err
}
