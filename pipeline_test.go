package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/dot5enko/tabsum/dataset"
	"github.com/dot5enko/tabsum/report"
	"github.com/dot5enko/tabsum/schema"
	"github.com/dot5enko/tabsum/summary"
)

func TestEmployeeDatasetShape(t *testing.T) {

	table, err := dataset.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Rows() != 10 {
		t.Errorf("Expected %d rows but got %d", 10, table.Rows())
	}

	if len(table.Columns) != 7 {
		t.Errorf("Expected %d columns but got %d", 7, len(table.Columns))
	}

	if len(dataset.Categories()) != len(table.Columns) {
		t.Errorf("category mapping does not cover every column")
	}
}

func TestEmployeePartition(t *testing.T) {

	table, err := dataset.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := summary.Classify(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	classified := len(p.Discrete) + len(p.Continuous) + len(p.Categorical)
	if classified != len(table.Columns) {
		t.Errorf("Expected %d classified columns but got %d", len(table.Columns), classified)
	}

	if len(p.Continuous) != 1 || p.Continuous[0] != "salary" {
		t.Errorf("Expected continuous [salary] but got %v", p.Continuous)
	}
}

func TestEmployeeOrdinalRanks(t *testing.T) {

	table, err := dataset.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edu := table.Column("education_level")
	if edu == nil {
		t.Fatalf("education_level column missing")
	}

	if edu.Rank("Bachelor") >= edu.Rank("Master") || edu.Rank("Master") >= edu.Rank("PhD") {
		t.Errorf("Expected Bachelor < Master < PhD but got ranks %d %d %d",
			edu.Rank("Bachelor"), edu.Rank("Master"), edu.Rank("PhD"))
	}
}

func TestFullPipelineIdempotent(t *testing.T) {

	color.NoColor = true

	table, err := dataset.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	render := func() string {
		rep, describeErr := summary.Describe(table, dataset.Categories())
		if describeErr != nil {
			t.Fatalf("unexpected error: %v", describeErr)
		}
		var buf bytes.Buffer
		if renderErr := report.Render(&buf, rep); renderErr != nil {
			t.Fatalf("unexpected error: %v", renderErr)
		}
		return buf.String()
	}

	if render() != render() {
		t.Errorf("describing the same table twice produced different reports")
	}
}

func TestEmployeeRatingsAreOrdinal(t *testing.T) {

	table, err := dataset.Employees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep, err := summary.Describe(table, dataset.Categories())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, col := range rep.Columns {
		if col.Name != "performance_rating" {
			continue
		}
		if col.Category != schema.Ordinal {
			t.Errorf("Expected Ordinal but got %s", col.Category)
		}
		if col.Values == nil || len(col.Values.Scale) != 3 {
			t.Errorf("Expected rating scale of 3 entries, got %+v", col.Values)
		}
	}
}
