// Package validate provides common [brasp.Validator] implementations for use with
// [brasp.Definition].
//
// The following validators are available:
//   - [OneOf] - restricts a string to a predefined set
//   - [Match] - requires a string to match a regular expression
//   - [Regexp] - requires a string to be a valid regular expression
//   - [KeyValue] - requires a key=value pair with a non-empty key
//   - [URL] - requires a URL with a scheme and host
//   - [NonEmpty] - rejects the empty string
//   - [Range] - bounds a number
//   - [Integer] - rejects numbers with a fractional part
//   - [All] - combines validators, stopping at the first rejection
//
// Example registration:
//
//	p.Opt(brasp.Definition{Name: "format", Validate: validate.OneOf("json", "yaml", "table")})
//	p.OptList(brasp.Definition{Name: "label", Validate: validate.KeyValue()})
//	p.Num(brasp.Definition{Name: "port", Validate: validate.Range(1, 65535)})
package validate
