package brasp

// accumulateFunc folds one more occurrence of an option into what has been collected so far.
type accumulateFunc func(prev []Value, next Value) []Value

// lastWins keeps only the latest occurrence; repeating an option redefines it.
func lastWins(_ []Value, next Value) []Value {
	return []Value{next}
}

// appendAll keeps every occurrence in encounter order.
func appendAll(prev []Value, next Value) []Value {
	return append(prev, next)
}

func strategyFor(def Definition) accumulateFunc {
	if def.Multiple {
		return appendAll
	}
	return lastWins
}

// resolver drains a tokenizer, coercing each occurrence as it is seen so that the first failure in
// argument order is the one reported.
type resolver struct {
	allowPositionals bool
	collected        map[string][]Value
	positionals      []string
}

func newResolver(allowPositionals bool) *resolver {
	return &resolver{
		allowPositionals: allowPositionals,
		collected:        make(map[string][]Value),
	}
}

func (r *resolver) run(tk *tokenizer) error {
	for {
		tok, ok, err := tk.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if tok.kind == tokenPositional {
			if !r.allowPositionals {
				return unknownOption("", tok.arg, nil)
			}
			r.positionals = append(r.positionals, tok.arg)
			continue
		}
		v, err := r.occurrence(tk, tok)
		if err != nil {
			return err
		}
		name := tok.entry.def.Name
		r.collected[name] = tok.entry.accumulate(r.collected[name], v)
	}
}

// occurrence turns an option token into a coerced and validated value, pulling the following
// argument when the option needs a value and none was given inline.
func (r *resolver) occurrence(tk *tokenizer, tok token) (Value, error) {
	e := tok.entry
	if e.def.Type == TypeBoolean && !tok.hasValue {
		return e.check(Bool(true), "")
	}
	text := tok.value
	if !tok.hasValue {
		var err error
		if text, err = tk.pullValue(tok); err != nil {
			return Value{}, err
		}
	}
	v, err := e.coerce(text)
	if err != nil {
		err.Token = tok.arg
		return Value{}, err
	}
	return e.check(v, "")
}

// result folds the collected occurrences of e into its final value.
func (e *entry) result(vs []Value) Value {
	if e.def.Multiple {
		return List(vs...)
	}
	return vs[len(vs)-1]
}
