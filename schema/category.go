package schema

// TypeCategory is the semantic classification of a column. The numeric
// split (Discrete vs Continuous) follows from the field kind; the
// categorical split (Nominal vs Ordinal) is domain knowledge supplied by
// whoever authored the table, never computed from the values.
type TypeCategory uint8

const (
	Discrete TypeCategory = iota
	Continuous
	Nominal
	Ordinal
)

func (c TypeCategory) String() string {
	switch c {
	case Discrete:
		return "Discrete"
	case Continuous:
		return "Continuous"
	case Nominal:
		return "Nominal"
	case Ordinal:
		return "Ordinal"
	default:
		return ""
	}
}

func (c TypeCategory) Numeric() bool {
	return c == Discrete || c == Continuous
}

func (c TypeCategory) Categorical() bool {
	return c == Nominal || c == Ordinal
}
