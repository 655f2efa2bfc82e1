package summary

import (
	"github.com/dot5enko/tabsum/schema"
)

// Partition groups column names by primitive kind: integer columns are
// discrete, float columns continuous, string columns categorical. Every
// column lands in exactly one bucket, in table order. The nominal vs
// ordinal split inside the categorical bucket needs domain knowledge and
// happens in Describe, not here.
type Partition struct {
	Discrete    []string
	Continuous  []string
	Categorical []string
}

func Classify(t *schema.Table) (Partition, error) {

	p := Partition{}

	for i := range t.Columns {
		col := &t.Columns[i]

		switch col.Kind {
		case schema.Int64Kind:
			p.Discrete = append(p.Discrete, col.Name)
		case schema.Float64Kind:
			p.Continuous = append(p.Continuous, col.Name)
		case schema.StringKind:
			p.Categorical = append(p.Categorical, col.Name)
		default:
			return Partition{}, &schema.UnsupportedKindError{Column: col.Name, Kind: col.Kind}
		}
	}

	return p, nil
}
