package summary

import (
	"fmt"

	"github.com/dot5enko/tabsum/ops"
	"github.com/dot5enko/tabsum/schema"
)

// NumericSummary holds descriptive statistics for a discrete or
// continuous column. Std is the sample standard deviation (n-1
// denominator), consistently across the module.
type NumericSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

func SummarizeNumeric(col *schema.Column) (NumericSummary, error) {

	if !col.Kind.Numeric() {
		return NumericSummary{}, &schema.UnsupportedKindError{Column: col.Name, Kind: col.Kind}
	}

	if col.Len() == 0 {
		return NumericSummary{}, fmt.Errorf("%w: '%s'", schema.ErrEmptyColumn, col.Name)
	}

	values := col.FloatValues()
	bounds := ops.GetMaxMin(values)

	return NumericSummary{
		Count:  len(values),
		Min:    bounds.Min,
		Max:    bounds.Max,
		Mean:   ops.Mean(values),
		Median: ops.Median(values),
		Std:    ops.SampleStd(values),
	}, nil
}
