package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/setcover/blobstore"
)

var (
	// ErrColumnNotFound is returned when a named column is missing from the header.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrSameColumn is returned when the set and element columns resolve to the same column.
	ErrSameColumn = errors.New("dataset: set and element columns must differ")

	// ErrEmptyHeader is returned for input without a header row.
	ErrEmptyHeader = errors.New("dataset: missing header row")
)

// Header is the header row written by WriteCSV.
var Header = []string{"set", "element"}

// Row is one (set, element) membership.
type Row struct {
	Set     string
	Element string
}

type readOptions struct {
	setColumn     string
	elementColumn string
}

// ReadOption configures ReadCSV and Load.
type ReadOption func(*readOptions)

// WithSetColumn selects the column holding set keys by header name.
// By default the first column is used.
func WithSetColumn(name string) ReadOption {
	return func(o *readOptions) { o.setColumn = name }
}

// WithElementColumn selects the column holding elements by header name.
// By default the second column is used.
func WithElementColumn(name string) ReadOption {
	return func(o *readOptions) { o.elementColumn = name }
}

// ReadCSV parses a long-form dataset. The first record is the header.
func ReadCSV(r io.Reader, opts ...ReadOption) ([]Row, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyHeader
		}
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	setIdx, err := columnIndex(header, o.setColumn, 0)
	if err != nil {
		return nil, err
	}
	elemIdx, err := columnIndex(header, o.elementColumn, 1)
	if err != nil {
		return nil, err
	}
	if setIdx == elemIdx {
		return nil, ErrSameColumn
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, Row{Set: rec[setIdx], Element: rec[elemIdx]})
	}
	return rows, nil
}

func columnIndex(header []string, name string, fallback int) (int, error) {
	if name == "" {
		if fallback >= len(header) {
			return 0, fmt.Errorf("%w: header has %d columns, need column %d", ErrColumnNotFound, len(header), fallback+1)
		}
		return fallback, nil
	}
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// WriteCSV writes rows with the standard header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	rec := make([]string, 2)
	for _, row := range rows {
		rec[0], rec[1] = row.Set, row.Element
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GroupStrings collects rows into a set collection keyed by set.
// Element order within a set follows row order; duplicates are kept.
func GroupStrings(rows []Row) map[string][]string {
	sets := make(map[string][]string)
	for _, row := range rows {
		sets[row.Set] = append(sets[row.Set], row.Element)
	}
	return sets
}

// GroupInts is GroupStrings for integer-valued columns.
func GroupInts(rows []Row) (map[int][]int, error) {
	sets := make(map[int][]int)
	for i, row := range rows {
		key, err := strconv.Atoi(row.Set)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: set %q: %w", i+1, row.Set, err)
		}
		elem, err := strconv.Atoi(row.Element)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: element %q: %w", i+1, row.Element, err)
		}
		sets[key] = append(sets[key], elem)
	}
	return sets, nil
}

// Load reads a dataset from store, decompressing by file extension.
func Load(ctx context.Context, store blobstore.Store, name string, opts ...ReadOption) ([]Row, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer blob.Close()

	r, err := CompressionFor(name).NewReader(blob)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer r.Close()

	rows, err := ReadCSV(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// Save writes rows to store, compressing by file extension.
func Save(ctx context.Context, store blobstore.Store, name string, rows []Row) error {
	return put(ctx, store, name, func(w io.Writer) error {
		return WriteCSV(w, rows)
	})
}

func put(ctx context.Context, store blobstore.Store, name string, fill func(io.Writer) error) error {
	var buf bytes.Buffer

	w, err := CompressionFor(name).NewWriter(&buf)
	if err != nil {
		return err
	}
	if err := fill(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("dataset: put %s: %w", name, err)
	}
	return nil
}
