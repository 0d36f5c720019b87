package brasp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies a registration or parse failure.
type ErrorKind int

const (
	// DuplicateShortOption: a short alias is already bound to a different option.
	DuplicateShortOption ErrorKind = iota + 1
	// UnknownOption: a long or short name is not registered, or a positional argument was given
	// while positionals are not allowed.
	UnknownOption
	// MissingValue: a value-bearing option was the last argument.
	MissingValue
	// InvalidBoolean: a boolean option was given text other than true or false.
	InvalidBoolean
	// InvalidNumber: a number option was given text that is not a decimal number.
	InvalidNumber
	// ValidationFailed: the option's validator rejected the value.
	ValidationFailed
	// InvalidDefinition: a definition passed to Register is malformed.
	InvalidDefinition
)

// Sentinels for use with errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrDuplicateShortOption = errors.New("duplicate short option")
	ErrUnknownOption        = errors.New("unknown option")
	ErrMissingValue         = errors.New("missing value")
	ErrInvalidBoolean       = errors.New("invalid boolean")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidDefinition    = errors.New("invalid definition")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case DuplicateShortOption:
		return ErrDuplicateShortOption
	case UnknownOption:
		return ErrUnknownOption
	case MissingValue:
		return ErrMissingValue
	case InvalidBoolean:
		return ErrInvalidBoolean
	case InvalidNumber:
		return ErrInvalidNumber
	case ValidationFailed:
		return ErrValidationFailed
	case InvalidDefinition:
		return ErrInvalidDefinition
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the structured failure returned by Register and Parse. Only the fields relevant to Kind
// are set.
type Error struct {
	Kind ErrorKind
	// Option is the long name of the option involved. For UnknownOption it is the name as typed,
	// including dashes, and empty for a rejected positional.
	Option string
	// Short is the alias involved in a DuplicateShortOption failure.
	Short string
	// Token is the whole argument the failure was found in.
	Token string
	// Text is the raw text that failed to coerce.
	Text string
	// Value is the coerced value a validator rejected.
	Value Value
	// Reason describes why a value or definition was rejected.
	Reason string
	// EnvVar names the environment variable the text came from, if any.
	EnvVar string
	// Suggestions lists registered options close to an unknown one, closest first.
	Suggestions []string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case DuplicateShortOption:
		msg = fmt.Sprintf("duplicate short option -%s for --%s", e.Short, e.Option)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	case UnknownOption:
		if e.Option == "" {
			msg = fmt.Sprintf("unexpected argument %q", e.Token)
			break
		}
		msg = fmt.Sprintf("unknown option %q", e.Option)
		if len(e.Suggestions) > 0 {
			msg += ". Did you mean one of these?\n\t" + strings.Join(e.Suggestions, "\n\t")
		}
	case MissingValue:
		msg = fmt.Sprintf("option --%s requires a value", e.Option)
	case InvalidBoolean:
		msg = fmt.Sprintf("invalid boolean %q for option --%s: must be true or false", e.Text, e.Option)
	case InvalidNumber:
		msg = fmt.Sprintf("invalid number %q for option --%s", e.Text, e.Option)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	case ValidationFailed:
		msg = fmt.Sprintf("invalid value %q for option --%s", e.Value.String(), e.Option)
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	case InvalidDefinition:
		msg = fmt.Sprintf("invalid definition for option %q: %s", e.Option, e.Reason)
	default:
		msg = e.Kind.String()
	}
	if e.EnvVar != "" {
		msg += " (from environment variable " + e.EnvVar + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func unknownOption(spelled, token string, suggestions []string) *Error {
	return &Error{Kind: UnknownOption, Option: spelled, Token: token, Suggestions: suggestions}
}

func invalidDefinition(name, format string, args ...any) *Error {
	return &Error{Kind: InvalidDefinition, Option: name, Reason: fmt.Sprintf(format, args...)}
}
