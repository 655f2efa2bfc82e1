package summary

import (
	"errors"
	"testing"

	"github.com/dot5enko/tabsum/schema"
)

func TestDescribeZeroRowNumericColumn(t *testing.T) {

	table, err := schema.NewTable("empty", schema.IntColumn("a", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Describe(table, nil)

	if !errors.Is(err, schema.ErrEmptyColumn) {
		t.Errorf("Expected ErrEmptyColumn but got %v", err)
	}
}

func TestDescribeZeroRowCategoricalColumn(t *testing.T) {

	table, err := schema.NewTable("empty", schema.StringColumn("tag", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Describe(table, nil)

	if !errors.Is(err, schema.ErrEmptyColumn) {
		t.Errorf("Expected ErrEmptyColumn but got %v", err)
	}
}

func TestDescribeFallbackCategories(t *testing.T) {

	table, err := schema.NewTable("fallback",
		schema.IntColumn("id", []int64{1}),
		schema.FloatColumn("price", []float64{1.5}),
		schema.StringColumn("tag", []string{"x"}),
		schema.OrdinalColumn("grade", []string{"low"}, []string{"low", "high"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no mapping supplied at all, kinds decide
	rep, err := Describe(table, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []schema.TypeCategory{
		schema.Discrete, schema.Continuous, schema.Nominal, schema.Ordinal,
	}

	for i, cat := range expected {
		if rep.Columns[i].Category != cat {
			t.Errorf("column '%s': Expected %s but got %s",
				rep.Columns[i].Name, cat, rep.Columns[i].Category)
		}
	}
}

func TestDescribeCategoryKindMismatch(t *testing.T) {

	table, err := schema.NewTable("broken",
		schema.FloatColumn("salary", []float64{1.5}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Describe(table, map[string]schema.TypeCategory{
		"salary": schema.Nominal,
	})

	if err == nil {
		t.Errorf("Expected mismatch error but got nil")
	}
}

func TestDescribeKeepsColumnOrder(t *testing.T) {

	table, err := schema.NewTable("ordered",
		schema.StringColumn("z", []string{"a"}),
		schema.IntColumn("a", []int64{1}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep, err := Describe(table, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Columns[0].Name != "z" || rep.Columns[1].Name != "a" {
		t.Errorf("Expected [z a] but got [%s %s]", rep.Columns[0].Name, rep.Columns[1].Name)
	}

	if rep.Columns[0].Values == nil || rep.Columns[1].Numeric == nil {
		t.Errorf("Expected categorical then numeric summaries, got %+v", rep.Columns)
	}
}
