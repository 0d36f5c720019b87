package validate

import (
	"fmt"
	"regexp"

	"github.com/pressly/brasp"
)

// Regexp returns a validator that requires the value to compile as a regular expression.
func Regexp() brasp.Validator {
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		_, err = regexp.Compile(s)
		return err
	}
}

// Match returns a validator that requires the value to match pattern. Match panics if pattern does
// not compile.
func Match(pattern string) brasp.Validator {
	re := regexp.MustCompile(pattern)
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match %s", re.String())
		}
		return nil
	}
}
