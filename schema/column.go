package schema

// Column is a named, homogeneously typed sequence of values. Exactly one
// of the backing slices is populated, selected by Kind at construction.
// There is no runtime type introspection: the kind tag set here is the
// single source of truth for every downstream dispatch.
type Column struct {
	Name string
	Kind FieldKind

	Ints    []int64
	Floats  []float64
	Strings []string

	// Scale holds the rank order for ordinal columns, lowest rank first.
	// Empty for every other column.
	Scale []string
}

func IntColumn(name string, values []int64) Column {
	return Column{Name: name, Kind: Int64Kind, Ints: values}
}

func FloatColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Float64Kind, Floats: values}
}

func StringColumn(name string, values []string) Column {
	return Column{Name: name, Kind: StringKind, Strings: values}
}

// OrdinalColumn is a string column carrying an explicit rank order.
// Scale membership of every value is checked by NewTable.
func OrdinalColumn(name string, values []string, scale []string) Column {
	return Column{Name: name, Kind: StringKind, Strings: values, Scale: scale}
}

func (c *Column) Len() int {
	switch c.Kind {
	case Int64Kind:
		return len(c.Ints)
	case Float64Kind:
		return len(c.Floats)
	default:
		return len(c.Strings)
	}
}

// FloatValues widens the column to float64 for numeric kernels.
// Float columns are returned as-is, int columns are converted into a
// fresh slice. Nil for string columns.
func (c *Column) FloatValues() []float64 {
	switch c.Kind {
	case Float64Kind:
		return c.Floats
	case Int64Kind:
		out := make([]float64, len(c.Ints))
		for i, v := range c.Ints {
			out[i] = float64(v)
		}
		return out
	default:
		return nil
	}
}

// Rank returns the position of a value in the ordinal scale, or -1 when
// the column has no scale or the value is not part of it.
func (c *Column) Rank(value string) int {
	for i, s := range c.Scale {
		if s == value {
			return i
		}
	}
	return -1
}
