package schema

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyColumn       = errors.New("column has no rows")
	ErrRowCountMismatch  = errors.New("columns differ in row count")
	ErrValueOutsideScale = errors.New("value not present in ordinal scale")
	ErrDuplicateColumn   = errors.New("duplicate column name")
)

// UnsupportedKindError marks a column whose field kind has no
// classification bucket.
type UnsupportedKindError struct {
	Column string
	Kind   FieldKind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("column '%s' has unsupported field kind %d", e.Column, e.Kind)
}
