package summary

import (
	"fmt"
	"log/slog"

	"github.com/dot5enko/tabsum/schema"
)

type ColumnReport struct {
	Name     string
	Kind     schema.FieldKind
	Category schema.TypeCategory

	// exactly one of these is set, matching the category
	Numeric *NumericSummary
	Values  *CategoricalSummary
}

type TableReport struct {
	Table     string
	Uid       string
	Rows      int
	Partition Partition
	Columns   []ColumnReport
}

// Describe summarizes every column of the table in order. The category
// mapping is supplied by the caller since nominal vs ordinal is domain
// knowledge; columns missing from the mapping fall back to the category
// implied by their kind (ints discrete, floats continuous, strings
// nominal). A mapping that contradicts the column kind is an error, as
// is a zero-row table. The first error encountered stops the walk.
func Describe(t *schema.Table, categories map[string]schema.TypeCategory) (*TableReport, error) {

	partition, classifyErr := Classify(t)
	if classifyErr != nil {
		return nil, classifyErr
	}

	report := TableReport{
		Table:     t.Name,
		Uid:       t.Uid,
		Rows:      t.Rows(),
		Partition: partition,
	}

	for i := range t.Columns {
		col := &t.Columns[i]

		category, catErr := resolveCategory(col, categories)
		if catErr != nil {
			return nil, catErr
		}

		colReport := ColumnReport{
			Name:     col.Name,
			Kind:     col.Kind,
			Category: category,
		}

		if category.Numeric() {
			numeric, numErr := SummarizeNumeric(col)
			if numErr != nil {
				return nil, numErr
			}
			colReport.Numeric = &numeric
		} else {
			if col.Len() == 0 {
				return nil, fmt.Errorf("%w: '%s'", schema.ErrEmptyColumn, col.Name)
			}
			values := SummarizeCategorical(col)
			colReport.Values = &values
		}

		report.Columns = append(report.Columns, colReport)
	}

	slog.Debug("described table",
		"table", t.Name,
		"rows", report.Rows,
		"columns", len(report.Columns))

	return &report, nil
}

func resolveCategory(col *schema.Column, categories map[string]schema.TypeCategory) (schema.TypeCategory, error) {

	category, ok := categories[col.Name]
	if !ok {
		return fallbackCategory(col)
	}

	if category.Numeric() != col.Kind.Numeric() {
		return 0, fmt.Errorf("category %s does not fit column '%s' of kind %s",
			category, col.Name, col.Kind)
	}

	return category, nil
}

func fallbackCategory(col *schema.Column) (schema.TypeCategory, error) {
	switch col.Kind {
	case schema.Int64Kind:
		return schema.Discrete, nil
	case schema.Float64Kind:
		return schema.Continuous, nil
	case schema.StringKind:
		if len(col.Scale) > 0 {
			return schema.Ordinal, nil
		}
		return schema.Nominal, nil
	default:
		return 0, &schema.UnsupportedKindError{Column: col.Name, Kind: col.Kind}
	}
}
