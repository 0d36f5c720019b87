package brasp

import (
	"flag"
	"strconv"
	"unicode/utf8"
)

// FromFlagSet converts the flags defined on fs into definitions, in lexical order, so an existing
// standard library flag set can be registered with a [Parser]:
//
//	fs := flag.NewFlagSet("app", flag.ContinueOnError)
//	fs.Bool("verbose", false, "enable verbose output")
//	fs.Int("count", 1, "number of items")
//	if err := p.Register(brasp.FromFlagSet(fs)...); err != nil { ... }
//
// Boolean flags become boolean options, integer and floating point flags become number options and
// everything else becomes a string option. Each flag's default value is carried over. A flag with
// a one-character name also gets that character as its short alias.
func FromFlagSet(fs *flag.FlagSet) []Definition {
	var defs []Definition
	fs.VisitAll(func(f *flag.Flag) {
		def := Definition{
			Name:        f.Name,
			Type:        flagType(f),
			Description: f.Usage,
		}
		if utf8.RuneCountInString(f.Name) == 1 {
			def.Short = f.Name
		}
		def.Default = flagDefault(def.Type, f.DefValue)
		defs = append(defs, def)
	})
	return defs
}

func flagType(f *flag.Flag) Type {
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return TypeBoolean
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return TypeString
	}
	switch getter.Get().(type) {
	case int, int64, uint, uint64, float64:
		return TypeNumber
	default:
		return TypeString
	}
}

func flagDefault(typ Type, text string) Value {
	switch typ {
	case TypeBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}
		}
		return Bool(b)
	case TypeNumber:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}
		}
		return Number(n)
	default:
		if text == "" {
			return Value{}
		}
		return String(text)
	}
}
