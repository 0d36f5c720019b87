package brasp

import (
	"maps"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pressly/brasp/pkg/suggest"
)

// Validator checks a coerced value. A non-nil error rejects the value and its message becomes the
// failure reason. For options that accept multiple values the validator is called once per element.
type Validator func(Value) error

// Definition declares one option.
type Definition struct {
	// Name is the long name, used as --name and as the key in [Values]. It must start with a letter
	// or digit and contain only letters, digits, dashes (-), underscores (_) or dots (.).
	Name string

	// Type selects how the option's text is coerced. Boolean options never consume a value
	// argument.
	Type Type

	// Short is an optional single-character alias, used as -x and combinable with other boolean
	// aliases (-vx).
	Short string

	// Default is used when neither the arguments nor the environment supply a value. The zero
	// Value means no default. Defaults are not passed to Validate.
	Default Value

	// Description is shown in the usage text.
	Description string

	// Validate optionally rejects coerced values.
	Validate Validator

	// Multiple makes the option accumulate every occurrence into a list, in encounter order.
	// Otherwise a repeated option keeps the last occurrence.
	Multiple bool

	// Hint names the value in the usage text, e.g. "path" renders as --config <path>. It defaults to
	// the type name.
	Hint string
}

type entry struct {
	def        Definition
	accumulate accumulateFunc
}

// table holds the registered definitions in registration order and the short alias index.
type table struct {
	order  []string
	defs   map[string]*entry
	shorts map[string]string
}

func newTable() *table {
	return &table{
		defs:   make(map[string]*entry),
		shorts: make(map[string]string),
	}
}

var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// register validates the whole batch before applying any of it, so a failed call leaves the table
// untouched.
func (t *table) register(defs []Definition) error {
	shorts := maps.Clone(t.shorts)
	current := make(map[string]Definition, len(defs))
	for name, e := range t.defs {
		current[name] = e.def
	}
	staged := make([]Definition, 0, len(defs))
	for _, def := range defs {
		def, err := normalize(def)
		if err != nil {
			return err
		}
		if prev, ok := current[def.Name]; ok && prev.Short != "" && shorts[prev.Short] == def.Name {
			delete(shorts, prev.Short)
		}
		if def.Short != "" {
			if owner, ok := shorts[def.Short]; ok && owner != def.Name {
				return &Error{
					Kind:   DuplicateShortOption,
					Option: def.Name,
					Short:  def.Short,
					Reason: "already used by --" + owner,
				}
			}
			shorts[def.Short] = def.Name
		}
		current[def.Name] = def
		staged = append(staged, def)
	}

	t.shorts = shorts
	for _, def := range staged {
		if _, ok := t.defs[def.Name]; !ok {
			t.order = append(t.order, def.Name)
		}
		t.defs[def.Name] = &entry{def: def, accumulate: strategyFor(def)}
	}
	return nil
}

func normalize(def Definition) (Definition, error) {
	if !validNameRegex.MatchString(def.Name) {
		return def, invalidDefinition(def.Name,
			"name must start with a letter or digit and contain only letters, digits, dashes (-), underscores (_) or dots (.)")
	}
	if !def.Type.valid() {
		return def, invalidDefinition(def.Name, "unknown type %s", def.Type)
	}
	if def.Short != "" {
		r, size := utf8.DecodeRuneInString(def.Short)
		if size != len(def.Short) || r == utf8.RuneError || r == '-' || r == '=' {
			return def, invalidDefinition(def.Name, "short alias %q must be a single character other than - or =", def.Short)
		}
	}
	if def.Default.IsZero() {
		return def, nil
	}
	if def.Multiple && !def.Default.IsList() {
		def.Default = List(def.Default)
	}
	if !def.Multiple && def.Default.IsList() {
		return def, invalidDefinition(def.Name, "list default for an option that does not accept multiple values")
	}
	for _, v := range def.Default.scalars() {
		if v.Type() != def.Type {
			return def, invalidDefinition(def.Name, "default %q is a %s, not a %s", v.String(), v.Type(), def.Type)
		}
	}
	return def, nil
}

func (t *table) lookupLong(name string) (*entry, bool) {
	e, ok := t.defs[name]
	return e, ok
}

func (t *table) lookupShort(short string) (*entry, bool) {
	name, ok := t.shorts[short]
	if !ok {
		return nil, false
	}
	return t.lookupLong(name)
}

// entries returns the definitions in registration order.
func (t *table) entries() []*entry {
	out := make([]*entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.defs[name])
	}
	return out
}

// suggestLong returns registered long options close to name, formatted as --name.
func (t *table) suggestLong(name string) []string {
	return dashed("--", suggest.FindSimilar(name, t.order, 3))
}

// suggestShort returns registered short aliases matching short with the other case.
func (t *table) suggestShort(short string) []string {
	var out []string
	for _, alt := range []string{strings.ToLower(short), strings.ToUpper(short)} {
		if alt == short {
			continue
		}
		if name, ok := t.shorts[alt]; ok {
			out = append(out, "-"+alt+" (--"+name+")")
		}
	}
	return out
}

func dashed(prefix string, names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}
