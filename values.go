package brasp

import (
	"slices"
)

// Source records where a resolved value came from.
type Source int

const (
	// SourceNone means the option was not resolved.
	SourceNone Source = iota
	// SourceArgument means the value came from the argument sequence.
	SourceArgument
	// SourceEnvironment means the value came from an environment variable.
	SourceEnvironment
	// SourceDefault means the declared default was used.
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceArgument:
		return "argument"
	case SourceEnvironment:
		return "environment"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

type resolved struct {
	value  Value
	source Source
}

// Values is the result of one parse: the resolved value of every option that has one, plus the
// positional arguments in the order they were seen. Options without an argument, environment
// variable or default are absent.
//
// The typed accessors return the zero value of their type when the option is absent or holds a
// different type. Use [Values.Get] to tell the difference.
type Values struct {
	values      map[string]resolved
	positionals []string
}

func newValues() *Values {
	return &Values{values: make(map[string]resolved)}
}

func (v *Values) set(name string, value Value, source Source) {
	v.values[name] = resolved{value: value, source: source}
}

// Get returns the value resolved for the named option.
func (v *Values) Get(name string) (Value, bool) {
	r, ok := v.values[name]
	return r.value, ok
}

// Has reports whether the named option resolved to a value.
func (v *Values) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Source reports where the named option's value came from.
func (v *Values) Source(name string) Source {
	return v.values[name].source
}

// String returns the string value of the named option.
func (v *Values) String(name string) string {
	s, _ := v.values[name].value.AsString()
	return s
}

// Bool returns the boolean value of the named option.
func (v *Values) Bool(name string) bool {
	b, _ := v.values[name].value.AsBool()
	return b
}

// Number returns the number value of the named option.
func (v *Values) Number(name string) float64 {
	n, _ := v.values[name].value.AsNumber()
	return n
}

// Strings returns the string elements of the named option. A scalar string is returned as a
// one-element slice.
func (v *Values) Strings(name string) []string {
	var out []string
	for _, e := range v.values[name].value.scalars() {
		if s, ok := e.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Bools returns the boolean elements of the named option.
func (v *Values) Bools(name string) []bool {
	var out []bool
	for _, e := range v.values[name].value.scalars() {
		if b, ok := e.AsBool(); ok {
			out = append(out, b)
		}
	}
	return out
}

// Numbers returns the number elements of the named option.
func (v *Values) Numbers(name string) []float64 {
	var out []float64
	for _, e := range v.values[name].value.scalars() {
		if n, ok := e.AsNumber(); ok {
			out = append(out, n)
		}
	}
	return out
}

// Names returns the names of all resolved options, sorted.
func (v *Values) Names() []string {
	names := make([]string, 0, len(v.values))
	for name := range v.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Positionals returns a copy of the positional arguments in encounter order.
func (v *Values) Positionals() []string {
	return slices.Clone(v.positionals)
}
