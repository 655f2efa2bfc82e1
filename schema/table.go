package schema

import (
	"fmt"

	"github.com/google/uuid"
)

// Table is an ordered set of equally sized columns. It is built once and
// never mutated afterwards; column order is display order.
type Table struct {
	Name    string
	Uid     string
	Columns []Column
}

// NewTable validates the column set: equal row counts, unique names, and
// for ordinal columns every value present in the declared scale.
func NewTable(name string, columns ...Column) (*Table, error) {

	seen := map[string]bool{}
	rows := -1

	for i := range columns {
		col := &columns[i]

		if seen[col.Name] {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateColumn, col.Name)
		}
		seen[col.Name] = true

		n := col.Len()
		if rows == -1 {
			rows = n
		} else if n != rows {
			return nil, fmt.Errorf("%w: column '%s' has %d rows, expected %d",
				ErrRowCountMismatch, col.Name, n, rows)
		}

		if len(col.Scale) > 0 {
			for _, v := range col.Strings {
				if col.Rank(v) == -1 {
					return nil, fmt.Errorf("%w: '%s' in column '%s'",
						ErrValueOutsideScale, v, col.Name)
				}
			}
		}
	}

	return &Table{
		Name:    name,
		Uid:     uuid.NewString(),
		Columns: columns,
	}, nil
}

func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}
