package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/persistorai/friendgraph/internal/models"
)

// ReadRecords parses every data row of a CSV stream. The first row is a header
// and is skipped. Rows may have differing field counts; only rows that lack a
// required column are rejected, and the first such row aborts the whole read.
func ReadRecords(r io.Reader, schema models.Schema) ([]models.Record, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, models.ErrEmptyInput
		}

		return nil, fmt.Errorf("reading header: %w", err)
	}

	records := make([]models.Record, 0, 64)

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := cr.FieldPos(0)

		rec, err := ParseRecord(line, row, schema)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// ReadFile opens path and parses it with ReadRecords.
func ReadFile(path string, schema models.Schema) ([]models.Record, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-supplied configuration.
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", models.ErrReadInput, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file.

	records, err := ReadRecords(f, schema)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return records, nil
}
