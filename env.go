package brasp

import (
	"os"
	"strings"
)

// Env looks up environment variables. Its method matches [os.LookupEnv].
type Env interface {
	LookupEnv(name string) (string, bool)
}

// EnvFunc adapts a lookup function to [Env].
type EnvFunc func(name string) (string, bool)

// LookupEnv calls f(name).
func (f EnvFunc) LookupEnv(name string) (string, bool) { return f(name) }

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

// MapEnv is a fixed environment, useful in tests.
type MapEnv map[string]string

// LookupEnv returns m[name].
func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// EnvName returns the environment variable consulted for the named option: the prefix and the name
// joined by an underscore, upper-cased, with every character other than an ASCII letter or digit
// replaced by an underscore. For example prefix "myapp" and name "dry-run" give MYAPP_DRY_RUN. No
// separator is added when the prefix already ends with an underscore. An empty prefix disables
// environment lookup and yields "".
func EnvName(prefix, name string) string {
	if prefix == "" {
		return ""
	}
	s := prefix
	if !strings.HasSuffix(s, "_") {
		s += "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		default:
			return '_'
		}
	}, s+name)
}

// fromEnv resolves e from the environment. Lists are read one element per line.
func (e *entry) fromEnv(env Env, prefix string) (Value, string, bool, error) {
	key := EnvName(prefix, e.def.Name)
	if key == "" {
		return Value{}, "", false, nil
	}
	text, ok := env.LookupEnv(key)
	if !ok {
		return Value{}, key, false, nil
	}
	if !e.def.Multiple {
		v, err := e.envValue(key, text)
		return v, key, err == nil, err
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	vs := make([]Value, 0, len(lines))
	for _, line := range lines {
		v, err := e.envValue(key, line)
		if err != nil {
			return Value{}, key, false, err
		}
		vs = append(vs, v)
	}
	return List(vs...), key, true, nil
}

func (e *entry) envValue(key, text string) (Value, error) {
	v, cerr := e.coerce(text)
	if cerr != nil {
		cerr.EnvVar = key
		return Value{}, cerr
	}
	return e.check(v, key)
}
