package schema

type FieldKind uint8

const (
	Int64Kind FieldKind = iota
	Float64Kind
	StringKind
)

func (k FieldKind) String() string {
	switch k {
	case Int64Kind:
		return "Int64"
	case Float64Kind:
		return "Float64"
	case StringKind:
		return "String"
	default:
		return ""
	}
}

// Numeric reports whether values of this kind can be summarized with
// min/max/mean style statistics.
func (k FieldKind) Numeric() bool {
	return k == Int64Kind || k == Float64Kind
}
