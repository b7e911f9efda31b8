// Package tabular reads delimited tabular files into a column-oriented form.
// The first row is the header; every following row is data. Column-oriented
// output exists because type inference inspects whole columns, not rows.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Structural problems with the input file. These are input errors that abort
// the operation, unlike validation findings which accumulate.
var (
	ErrNoHeaders   = errors.New("CSV file has no headers")
	ErrEmptyHeader = errors.New("CSV file has empty header")
)

// Table is one parsed tabular file. Columns[i] holds every data value of
// column i in row order; a file with only a header row has empty columns.
type Table struct {
	Headers []string
	Columns [][]string
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// ReadFile parses the CSV file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}

// Read parses CSV content from r. Header names are trimmed; data values are
// kept verbatim. Blank header names are rejected, but duplicate headers are
// not: a duplicate only becomes a problem when the built document is
// validated, and it is reported there.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeaders
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
		if headers[i] == "" {
			return nil, ErrEmptyHeader
		}
	}

	columns := make([][]string, len(headers))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading data rows: %w", err)
		}
		for i := range headers {
			columns[i] = append(columns[i], record[i])
		}
	}

	return &Table{Headers: headers, Columns: columns}, nil
}
