package validate

import (
	"fmt"
	"net/url"

	"github.com/pressly/brasp"
)

// URL returns a validator that parses the value as a URL. The URL must have both a scheme and a
// host.
func URL() brasp.Validator {
	return func(v brasp.Value) error {
		s, err := str(v)
		if err != nil {
			return err
		}
		u, err := url.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid URL %q: %w", s, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid URL %q: must have a scheme and host", s)
		}
		return nil
	}
}
