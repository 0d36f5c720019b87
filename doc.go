// Package brasp parses command-line arguments against a declarative set of options.
//
// Options are registered once on a [Parser] and carry a type (string, boolean or number), an
// optional one-character alias, an optional default, a description, an optional validator, and
// whether repeated occurrences accumulate into a list:
//
//	p := brasp.New(&brasp.Options{
//	    AllowPositionals: true,
//	    EnvPrefix:        "MYAPP",
//	})
//	err := p.Opt(brasp.Definition{
//	    Name:        "config",
//	    Short:       "c",
//	    Description: "Configuration file path",
//	})
//	err = p.Flag(brasp.Definition{
//	    Name:        "verbose",
//	    Short:       "v",
//	    Description: "Enable verbose output",
//	})
//
//	values, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n%s\n", err, p.Usage())
//	    os.Exit(2)
//	}
//	cfg := values.String("config")
//
// # Argument syntax
//
//   - --name and --name=value. A non-boolean option without an inline value takes the next
//     argument, whatever it looks like.
//   - -x, and clusters of boolean aliases such as -vf. A non-boolean alias takes the rest of the
//     cluster as its value (-cfile, -c=file) or else the next argument (-c file).
//   - -- ends option parsing; every later argument is positional.
//   - Anything else is positional, including a lone -.
//
// Booleans given an inline value accept true or false in any case.
//
// # Precedence
//
// Each option resolves from the first of: its occurrences in the arguments, the environment
// variable named by [EnvName] (when Options.EnvPrefix is set), and its default. A repeated option
// keeps its last occurrence unless it was registered with Multiple, in which case every occurrence
// is kept in order.
//
// # Errors
//
// Failures are returned as *[Error], classified by [ErrorKind]. Each kind has a sentinel for use
// with errors.Is, e.g. [ErrUnknownOption].
package brasp
