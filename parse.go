package brasp

import (
	"io"
	"log/slog"
	"os"
)

// Options configures a [Parser].
type Options struct {
	// AllowPositionals permits non-option arguments. When false a positional argument fails the
	// parse with an UnknownOption error.
	AllowPositionals bool

	// EnvPrefix enables environment fallback. An option left unset by the arguments is read from
	// the variable named by [EnvName](EnvPrefix, name).
	EnvPrefix string

	// Env is consulted for environment fallback. Defaults to [OSEnv].
	Env Env

	// Logger receives debug records describing how each option was resolved. Defaults to a logger
	// that discards everything.
	Logger *slog.Logger

	// Program and Description head the usage text. Both are optional.
	Program     string
	Description string
}

// Parser holds an option table and parses argument sequences against it.
//
// Register options first, then call Parse any number of times. Parse does not modify the parser,
// so concurrent Parse calls are safe as long as no registration happens at the same time.
type Parser struct {
	opts  Options
	table *table

	usage       string
	usageCached bool
}

// New returns an empty parser. The options may be nil, in which case defaults are used. See
// [Options] for details.
func New(options *Options) *Parser {
	return &Parser{
		opts:  checkAndSetOptions(options),
		table: newTable(),
	}
}

func checkAndSetOptions(opt *Options) Options {
	var o Options
	if opt != nil {
		o = *opt
	}
	if o.Env == nil {
		o.Env = OSEnv
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Register adds definitions to the parser, replacing any existing definition with the same name.
// A replaced definition keeps its place in the usage text.
//
// The whole call fails, changing nothing, if a definition is malformed or if its short alias is
// already bound to a different option.
func (p *Parser) Register(defs ...Definition) error {
	if err := p.table.register(defs); err != nil {
		return err
	}
	p.usageCached = false
	return nil
}

// Flag registers boolean options. A definition without a default gets false.
func (p *Parser) Flag(defs ...Definition) error {
	return p.Register(withType(defs, TypeBoolean, false, func(d *Definition) {
		if d.Default.IsZero() {
			d.Default = Bool(false)
		}
	})...)
}

// FlagList registers boolean options that count occurrences as a list of booleans.
func (p *Parser) FlagList(defs ...Definition) error {
	return p.Register(withType(defs, TypeBoolean, true, nil)...)
}

// Opt registers string options.
func (p *Parser) Opt(defs ...Definition) error {
	return p.Register(withType(defs, TypeString, false, nil)...)
}

// OptList registers string options that accumulate every occurrence.
func (p *Parser) OptList(defs ...Definition) error {
	return p.Register(withType(defs, TypeString, true, nil)...)
}

// Num registers number options.
func (p *Parser) Num(defs ...Definition) error {
	return p.Register(withType(defs, TypeNumber, false, nil)...)
}

// NumList registers number options that accumulate every occurrence.
func (p *Parser) NumList(defs ...Definition) error {
	return p.Register(withType(defs, TypeNumber, true, nil)...)
}

func withType(defs []Definition, typ Type, multiple bool, fn func(*Definition)) []Definition {
	out := make([]Definition, len(defs))
	for i, d := range defs {
		d.Type = typ
		d.Multiple = multiple
		if fn != nil {
			fn(&d)
		}
		out[i] = d
	}
	return out
}

// Definitions returns the registered definitions in registration order.
func (p *Parser) Definitions() []Definition {
	entries := p.table.entries()
	out := make([]Definition, len(entries))
	for i, e := range entries {
		out[i] = e.def
	}
	return out
}

// Parse resolves args, which should not include the program name, against the registered options.
//
// Each option takes the first of: its occurrences in args, its environment variable, its default.
// Options with none of these are absent from the result. On failure Parse returns the first error
// in argument order, followed by environment errors in registration order, and no values.
func (p *Parser) Parse(args []string) (*Values, error) {
	logger := p.opts.Logger
	logger.Debug("parse started", slog.Int("args", len(args)))

	r := newResolver(p.opts.AllowPositionals)
	if err := r.run(newTokenizer(args, p.table)); err != nil {
		logger.Debug("parse failed", slog.Any("error", err))
		return nil, err
	}

	values := newValues()
	values.positionals = r.positionals
	for _, e := range p.table.entries() {
		name := e.def.Name
		if vs, ok := r.collected[name]; ok {
			values.set(name, e.result(vs), SourceArgument)
			logger.Debug("option resolved", slog.String("option", name), slog.String("source", SourceArgument.String()))
			continue
		}
		v, key, ok, err := e.fromEnv(p.opts.Env, p.opts.EnvPrefix)
		if err != nil {
			logger.Debug("parse failed", slog.Any("error", err))
			return nil, err
		}
		if ok {
			values.set(name, v, SourceEnvironment)
			logger.Debug("option resolved", slog.String("option", name), slog.String("source", SourceEnvironment.String()), slog.String("env", key))
			continue
		}
		if !e.def.Default.IsZero() {
			values.set(name, e.def.Default, SourceDefault)
			logger.Debug("option resolved", slog.String("option", name), slog.String("source", SourceDefault.String()))
		}
	}
	logger.Debug("parse finished", slog.Int("options", len(values.values)), slog.Int("positionals", len(values.positionals)))
	return values, nil
}

// ParseOS parses the process arguments, os.Args[1:].
func (p *Parser) ParseOS() (*Values, error) {
	return p.Parse(os.Args[1:])
}
