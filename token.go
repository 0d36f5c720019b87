package brasp

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenLong tokenKind = iota + 1
	tokenShort
	tokenPositional
)

// token is one classified argument, or one option out of a short cluster.
type token struct {
	kind tokenKind
	// entry is the definition for option tokens.
	entry *entry
	// spelled is the option as typed, e.g. "--config" or "-c".
	spelled string
	// arg is the whole argument the token was read from.
	arg string
	// value is the inline value, valid when hasValue is set.
	value    string
	hasValue bool
}

// scanState is where the tokenizer is in the argument sequence.
type scanState int

const (
	// scanningOptions classifies each argument as an option or a positional.
	scanningOptions scanState = iota
	// collectingValue follows an option token that still needs its value. pullValue is only valid
	// in this state; calling next instead abandons the value and resumes scanning.
	collectingValue
	// positionalOnly follows "--": every remaining argument is positional.
	positionalOnly
)

// tokenizer walks the argument sequence once. Short clusters are expanded one option at a time;
// values that live in the following argument are pulled by the caller with pullValue.
type tokenizer struct {
	args  []string
	pos   int
	state scanState
	table *table

	// rest of the short cluster currently being expanded, and the argument it came from.
	cluster    string
	clusterArg string
}

func newTokenizer(args []string, t *table) *tokenizer {
	return &tokenizer{args: args, table: t}
}

// next returns the next token. ok is false once the input is exhausted.
func (tk *tokenizer) next() (tok token, ok bool, err error) {
	if tk.state == collectingValue {
		tk.state = scanningOptions
	}
	if tk.cluster != "" {
		tok, err := tk.nextShort()
		return tok, err == nil, err
	}
	if tk.pos >= len(tk.args) {
		return token{}, false, nil
	}
	arg := tk.args[tk.pos]
	tk.pos++

	if tk.state == positionalOnly {
		return token{kind: tokenPositional, arg: arg}, true, nil
	}
	switch {
	case arg == "--":
		tk.state = positionalOnly
		return tk.next()
	case strings.HasPrefix(arg, "--"):
		tok, err := tk.long(arg)
		return tok, err == nil, err
	case len(arg) > 1 && arg[0] == '-':
		tk.cluster = arg[1:]
		tk.clusterArg = arg
		tok, err := tk.nextShort()
		return tok, err == nil, err
	default:
		return token{kind: tokenPositional, arg: arg}, true, nil
	}
}

func (tk *tokenizer) long(arg string) (token, error) {
	name, value, hasValue := strings.Cut(arg[2:], "=")
	spelled := "--" + name
	e, ok := tk.table.lookupLong(name)
	if !ok {
		return token{}, unknownOption(spelled, arg, tk.table.suggestLong(name))
	}
	tk.expectValue(e, hasValue)
	return token{
		kind:     tokenLong,
		entry:    e,
		spelled:  spelled,
		arg:      arg,
		value:    value,
		hasValue: hasValue,
	}, nil
}

// nextShort consumes one option from the pending cluster. A boolean alias leaves the rest of the
// cluster pending unless it is followed by "=". Any other alias takes the rest of the cluster as its
// value.
func (tk *tokenizer) nextShort() (token, error) {
	r, size := utf8.DecodeRuneInString(tk.cluster)
	short := string(r)
	rest := tk.cluster[size:]
	arg := tk.clusterArg
	tk.cluster = ""

	e, ok := tk.table.lookupShort(short)
	if !ok {
		return token{}, unknownOption("-"+short, arg, tk.table.suggestShort(short))
	}
	tok := token{kind: tokenShort, entry: e, spelled: "-" + short, arg: arg}
	switch {
	case e.def.Type == TypeBoolean && strings.HasPrefix(rest, "="):
		tok.value, tok.hasValue = rest[1:], true
	case e.def.Type == TypeBoolean:
		tk.cluster = rest
	case rest != "":
		tok.value, tok.hasValue = strings.TrimPrefix(rest, "="), true
	}
	tk.expectValue(e, tok.hasValue)
	return tok, nil
}

// expectValue switches to collectingValue when an option of e's type still lacks its value.
func (tk *tokenizer) expectValue(e *entry, hasValue bool) {
	if e.def.Type != TypeBoolean && !hasValue {
		tk.state = collectingValue
	}
}

// pullValue consumes the next whole argument as the value of tok. The argument is taken verbatim,
// even when it starts with a dash.
func (tk *tokenizer) pullValue(tok token) (string, error) {
	if tk.state != collectingValue {
		return "", fmt.Errorf("no value pending for %s", tok.spelled)
	}
	tk.state = scanningOptions
	if tk.pos >= len(tk.args) {
		return "", &Error{Kind: MissingValue, Option: tok.entry.def.Name, Token: tok.arg}
	}
	v := tk.args[tk.pos]
	tk.pos++
	return v, nil
}
