// SPDX-License-Identifier: MIT

package rad

import "fmt"

// Kind is the declared type of a schema field.
type Kind int

const (
	// Unknown is a field whose type is not declared.
	Unknown Kind = iota
	// Int holds int32 or int values.
	Int
	// Long holds int64 values.
	Long
	// Float holds float32 values.
	Float
	// Double holds float64 values.
	Double
	// Chararray holds string values.
	Chararray
	// Boolean holds bool values.
	Boolean
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Chararray:
		return "chararray"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Numeric reports whether a column of this kind can be decomposed.
func (k Kind) Numeric() bool {
	return k == Int || k == Long || k == Float || k == Double
}

// KindOf returns the Kind matching the dynamic type of v, Unknown otherwise.
func KindOf(v any) Kind {
	switch v.(type) {
	case int32, int:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	case float64:
		return Double
	case string:
		return Chararray
	case bool:
		return Boolean
	default:
		return Unknown
	}
}

// Field is one named, typed position of a Record.
type Field struct {
	Name string
	Kind Kind
}

// Schema describes the positions of every Record in a window.
type Schema []Field

// Index returns the position of the named field, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}

	return -1
}

// Record is a positional tuple described by a Schema.
type Record []any

// Derived output fields, appended in this order.
const (
	FieldTransform = "x_transform"
	FieldBaseline  = "rsvd_l"
	FieldSparse    = "rsvd_s"
	FieldResidual  = "rsvd_e"
)

// DiffMode decides whether the series is differenced before decomposition.
type DiffMode int

const (
	// DiffAuto differences when the ADF test does not reject a unit root.
	DiffAuto DiffMode = iota
	// DiffAlways always differences.
	DiffAlways
	// DiffNever never differences and skips the ADF test.
	DiffNever
)

// String implements fmt.Stringer using the CLI spelling.
func (m DiffMode) String() string {
	switch m {
	case DiffAuto:
		return "auto"
	case DiffAlways:
		return "true"
	case DiffNever:
		return "false"
	default:
		return "unknown"
	}
}

// ParseDiffMode accepts "auto" (or ""), "true" and "false".
func ParseDiffMode(s string) (DiffMode, error) {
	switch s {
	case "", "auto":
		return DiffAuto, nil
	case "true":
		return DiffAlways, nil
	case "false":
		return DiffNever, nil
	default:
		return 0, fmt.Errorf("ParseDiffMode: %w: force-diff %q", ErrConfiguration, s)
	}
}
