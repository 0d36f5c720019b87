package validate

import (
	"fmt"
	"strings"

	"github.com/pressly/brasp"
)

// KeyValue returns a validator for key=value pairs, like --label=env=prod. The value is split on the
// first "=" character, so values may contain additional "=" characters. Use [SplitKeyValue] to
// take the pairs apart after parsing.
func KeyValue() brasp.Validator {
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		key, _, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("invalid key=value pair: %q (missing '=')", s)
		}
		if key == "" {
			return fmt.Errorf("invalid key=value pair: %q (empty key)", s)
		}
		return nil
	}
}

// SplitKeyValue turns key=value pairs into a map. Later pairs win over earlier ones with the same
// key. Pairs without "=" are skipped.
func SplitKeyValue(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}
