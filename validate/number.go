package validate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pressly/brasp"
)

// Range returns a validator that requires a number between lo and hi, inclusive.
func Range(lo, hi float64) brasp.Validator {
	return func(v brasp.Value) error {
		n, ok := v.AsNumber()
		if !ok {
			return fmt.Errorf("expected a number, got a %s", v.Type())
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %s and %s", format(lo), format(hi))
		}
		return nil
	}
}

// Integer returns a validator that rejects numbers with a fractional part.
func Integer() brasp.Validator {
	return func(v brasp.Value) error {
		n, ok := v.AsNumber()
		if !ok {
			return fmt.Errorf("expected a number, got a %s", v.Type())
		}
		if n != math.Trunc(n) {
			return fmt.Errorf("must be a whole number")
		}
		return nil
	}
}

func format(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
