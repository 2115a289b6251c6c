package encode

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"

	"go.uber.org/multierr"
)

// Option adjusts how tabular readers and writers treat the stream.
type Option func(*tableConfig)

type tableConfig struct {
	comma    rune
	noHeader bool
}

func newTableConfig(opts []Option) tableConfig {
	cfg := tableConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithComma sets the field delimiter. Pass '\t' for tab-separated data.
func WithComma(r rune) Option {
	return func(cfg *tableConfig) { cfg.comma = r }
}

// WithoutHeader marks the first row as data rather than column names.
func WithoutHeader() Option {
	return func(cfg *tableConfig) { cfg.noHeader = true }
}

// Table is a fully loaded tabular file: the header row, then the data
// rows in file order. A headerless read leaves Header nil.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads an entire CSV (or TSV, with WithComma) into memory.
// Use Records instead when the file may not fit.
func ReadTable(r io.Reader, opts ...Option) (Table, error) {
	cfg := newTableConfig(opts)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma

	all, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read table: %w", err)
	}
	if cfg.noHeader || len(all) == 0 {
		return Table{Rows: all}, nil
	}
	return Table{Header: all[0], Rows: all[1:]}, nil
}

// WriteTable writes the header (when present) and rows as CSV.
func WriteTable(w io.Writer, t Table, opts ...Option) error {
	cfg := newTableConfig(opts)

	cw := csv.NewWriter(w)
	cw.Comma = cfg.comma

	if t.Header != nil {
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// Record is one data row keyed by column name.
type Record map[string]string

// Records streams a CSV one row at a time as header-keyed records, so
// callers can range over a file larger than memory. The sequence is
// single-use: it consumes the reader. A malformed row is yielded as a
// non-nil error with a nil record, and iteration continues with the next
// row; a missing header ends the sequence immediately.
func Records(r io.Reader, opts ...Option) iter.Seq2[Record, error] {
	cfg := newTableConfig(opts)

	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)
		cr.Comma = cfg.comma
		cr.FieldsPerRecord = -1

		header, err := cr.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("read header: %w", err))
			return
		}

		for {
			row, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				if !yield(nil, fmt.Errorf("read row: %w", err)) {
					return
				}
				continue
			}

			rec := make(Record, len(header))
			for i, name := range header {
				if i < len(row) {
					rec[name] = row[i]
				}
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// RowFunc converts one raw row into a typed value.
type RowFunc[T any] func(row []string) (T, error)

// DecodeRows converts every row of t with fn. Rows that fail conversion
// are skipped, and their errors are combined into the returned error, so
// one bad line does not discard the rest of the file. Callers that need
// all-or-nothing semantics should treat a non-nil error as fatal.
func DecodeRows[T any](t Table, fn RowFunc[T]) ([]T, error) {
	decoded := make([]T, 0, len(t.Rows))
	var errs error
	for i, row := range t.Rows {
		v, err := fn(row)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		decoded = append(decoded, v)
	}
	return decoded, errs
}
