package summary

import (
	"github.com/dot5enko/tabsum/ops"
	"github.com/dot5enko/tabsum/schema"
)

// CategoricalSummary is a frequency table ordered by descending count,
// ties kept in first-seen order. Scale carries the ordinal rank order
// when the column declares one.
type CategoricalSummary struct {
	Counts      []ops.ValueCount[string]
	UniqueCount int
	Scale       []string
}

// SummarizeCategorical never fails: an empty column yields an empty
// frequency table and UniqueCount 0.
func SummarizeCategorical(col *schema.Column) CategoricalSummary {

	counts := ops.ValueCounts(col.Strings)
	ops.SortByCount(counts)

	return CategoricalSummary{
		Counts:      counts,
		UniqueCount: len(counts),
		Scale:       col.Scale,
	}
}
