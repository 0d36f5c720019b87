package brasp

import (
	"strconv"
	"strings"
)

// Type is the declared type of an option.
type Type int

const (
	// TypeString options take their text unchanged.
	TypeString Type = iota + 1
	// TypeBoolean options are flags: present means true, and they never consume the next argument.
	TypeBoolean
	// TypeNumber options are parsed as decimal floating point numbers.
	TypeNumber
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

func (t Type) valid() bool {
	return t == TypeString || t == TypeBoolean || t == TypeNumber
}

type valueKind uint8

const (
	kindNone valueKind = iota
	kindString
	kindBool
	kindNumber
	kindList
)

// Value is a resolved option value: a string, a boolean, a number, or an ordered list of those. The
// zero Value holds nothing and is used to mean "no default".
//
// Values are immutable; accessors return copies of list contents.
type Value struct {
	kind valueKind
	str  string
	b    bool
	num  float64
	list []Value
}

// String returns a string Value.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Number returns a number Value.
func Number(n float64) Value { return Value{kind: kindNumber, num: n} }

// List returns a list Value holding vs in order. Nested lists are flattened and zero values are
// dropped.
func List(vs ...Value) Value {
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		switch v.kind {
		case kindNone:
		case kindList:
			out = append(out, v.list...)
		default:
			out = append(out, v)
		}
	}
	return Value{kind: kindList, list: out}
}

// Strings returns a list Value of strings.
func Strings(ss ...string) Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = String(s)
	}
	return Value{kind: kindList, list: out}
}

// Bools returns a list Value of booleans.
func Bools(bs ...bool) Value {
	out := make([]Value, len(bs))
	for i, b := range bs {
		out[i] = Bool(b)
	}
	return Value{kind: kindList, list: out}
}

// Numbers returns a list Value of numbers.
func Numbers(ns ...float64) Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = Number(n)
	}
	return Value{kind: kindList, list: out}
}

// IsZero reports whether v holds nothing.
func (v Value) IsZero() bool { return v.kind == kindNone }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == kindList }

// Type returns the scalar type of v. For a list it is the type of its elements, or 0 when the list
// is empty.
func (v Value) Type() Type {
	switch v.kind {
	case kindString:
		return TypeString
	case kindBool:
		return TypeBoolean
	case kindNumber:
		return TypeNumber
	case kindList:
		if len(v.list) > 0 {
			return v.list[0].Type()
		}
	}
	return 0
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == kindString }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == kindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == kindNumber }

// AsList returns a copy of the elements of a list Value.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != kindList {
		return nil, false
	}
	return append([]Value(nil), v.list...), true
}

// Len returns the number of elements in a list, 1 for a scalar and 0 for the zero Value.
func (v Value) Len() int {
	switch v.kind {
	case kindNone:
		return 0
	case kindList:
		return len(v.list)
	default:
		return 1
	}
}

// String renders v as text. Numbers use the shortest representation that round-trips and lists
// are rendered as a comma separated sequence.
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Equal reports whether v and other hold the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindString:
		return v.str == other.str
	case kindBool:
		return v.b == other.b
	case kindNumber:
		return v.num == other.num
	case kindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
	}
	return true
}

// scalars returns the elements of v: the list contents, or v itself for a scalar.
func (v Value) scalars() []Value {
	switch v.kind {
	case kindNone:
		return nil
	case kindList:
		return v.list
	default:
		return []Value{v}
	}
}
