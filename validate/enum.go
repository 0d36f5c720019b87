package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pressly/brasp"
)

// OneOf returns a validator that restricts a string option to one of the allowed values. The error
// lists the valid options.
func OneOf(allowed ...string) brasp.Validator {
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		if !slices.Contains(allowed, s) {
			return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
		}
		return nil
	}
}

// NonEmpty returns a validator that rejects an empty string.
func NonEmpty() brasp.Validator {
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		if s == "" {
			return fmt.Errorf("must not be empty")
		}
		return nil
	}
}

// All returns a validator that runs each validator in order and returns the first error.
func All(validators ...brasp.Validator) brasp.Validator {
	return func(v brasp.Value) error {
		for _, fn := range validators {
			if fn == nil {
				continue
			}
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

func str(v brasp.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("expected a string, got a %s", v.Type())
	}
	return s, nil
}
