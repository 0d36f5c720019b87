package brasp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerce converts raw text to the option's declared type.
func (e *entry) coerce(text string) (Value, *Error) {
	switch e.def.Type {
	case TypeBoolean:
		switch strings.ToLower(text) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Value{}, &Error{Kind: InvalidBoolean, Option: e.def.Name, Text: text}
	case TypeNumber:
		n, err := parseDecimal(text)
		if err == nil && (math.IsInf(n, 0) || math.IsNaN(n)) {
			err = errNotFinite
		}
		if err != nil {
			return Value{}, &Error{
				Kind:   InvalidNumber,
				Option: e.def.Name,
				Text:   text,
				Reason: numReason(err),
				Err:    err,
			}
		}
		return Number(n), nil
	default:
		return String(text), nil
	}
}

var errNotFinite = errors.New("not a finite number")

// parseDecimal is strconv.ParseFloat restricted to decimal notation: hexadecimal mantissas and
// digit separators are syntax errors.
func parseDecimal(text string) (float64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(text, "+"), "-")
	if strings.ContainsRune(text, '_') || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: text, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(text, 64)
}

// numReason reduces a strconv error to its cause, without the function name and input that
// strconv.NumError repeats.
func numReason(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		switch {
		case errors.Is(ne.Err, strconv.ErrSyntax):
			return "not a decimal number"
		case errors.Is(ne.Err, strconv.ErrRange):
			return "value out of range"
		}
		return ne.Err.Error()
	}
	return err.Error()
}

// check runs the option's validator on v. envVar names the environment variable the value came
// from, if any.
func (e *entry) check(v Value, envVar string) (Value, error) {
	if e.def.Validate == nil {
		return v, nil
	}
	if err := callValidator(e.def.Validate, v); err != nil {
		return Value{}, &Error{
			Kind:   ValidationFailed,
			Option: e.def.Name,
			Value:  v,
			Reason: err.Error(),
			EnvVar: envVar,
			Err:    err,
		}
	}
	return v, nil
}

// callValidator runs fn, turning a panic into an error so a faulty validator surfaces as a
// ValidationFailed result instead of crashing the host program.
func callValidator(fn Validator, v Value) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			switch err := r.(type) {
			case error:
				retErr = fmt.Errorf("validator panic: %w", err)
			default:
				retErr = fmt.Errorf("validator panic: %v", r)
			}
		}
	}()
	return fn(v)
}
