package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading input.
var (
	ErrReadInput     = errors.New("reading input")
	ErrEmptyInput    = errors.New("input contains no records")
	ErrMissingColumn = errors.New("required column missing")
)

// Sentinel errors for analysis lookups.
var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrEmptyDistances = errors.New("distance set is empty")
	ErrEmptyGraph     = errors.New("graph has no nodes")
	ErrNoPath         = errors.New("no path between nodes")
)

// RowError identifies the input row that aborted a load.
type RowError struct {
	Line    int // 1-based line in the source file, header included
	Columns int // number of fields the row actually had
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row at line %d (%d columns): %v", e.Line, e.Columns, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ErrColumnOutOfRange returns an error for a schema column index that is negative.
func ErrColumnOutOfRange(name string, index int) error {
	return fmt.Errorf("%s must be a non-negative column index, got %d", name, index)
}
