package gflags

import (
	"strings"
)

// unknownFlag records a command-line token naming an undefined flag.
// Unknown flags are kept aside during scanning, and only reported
// once --undefok filtering has decided their fate.
type unknownFlag struct {
	name string
	arg  string
}

// Parse scans the command line and fills the registered flags. argv
// must include the program name as its first element.
//
// Flagfile directives are expanded first, then flags are matched and
// set in order, so that the last occurrence of a flag wins. Once
// scanning ends, the flag set is marked parsed and all validators
// run. The returned slice holds the program name followed by every
// argument left unparsed.
func (f *FlagSet) Parse(argv []string) ([]string, error) {
	if len(argv) == 0 {
		// The scanner historically accepted an empty argument vector.
		f.MarkAsParsed()

		if err := f.assertAllValidators(); err != nil {
			return nil, err
		}

		return []string{}, nil
	}

	programName := argv[0]

	args, err := f.ReadFlagsFromFiles(argv[1:], false)
	if err != nil {
		return nil, err
	}

	unknownFlags, unparsed, undefok, err := f.parseArgs(args)
	if err != nil {
		return nil, err
	}

	for _, unknown := range unknownFlags {
		if undefok[unknown.name] {
			continue
		}

		return nil, &UnrecognizedFlagError{
			Name:        unknown.name,
			Value:       unknown.arg,
			Suggestions: flagSuggestions(unknown.name, f.RegisteredFlags()),
		}
	}

	f.MarkAsParsed()

	if err := f.assertAllValidators(); err != nil {
		return nil, err
	}

	return append([]string{programName}, unparsed...), nil
}

// parseArgs walks the expanded argument list and sets every known
// flag it finds, collecting unknown flags and unparsed arguments.
func (f *FlagSet) parseArgs(args []string) ([]unknownFlag, []string, map[string]bool, error) {
	var (
		unknownFlags []unknownFlag
		unparsed     []string
	)

	undefok := make(map[string]bool)

	pos := 0
	for pos < len(args) {
		arg := args[pos]
		pos++

		if !strings.HasPrefix(arg, "-") {
			// A positional: stop here, or keep scanning in GNU mode.
			unparsed = append(unparsed, arg)
			if f.gnuMode {
				continue
			}

			break
		}

		if arg == "--" {
			break
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")

		if name == "" {
			// The argument is all dashes.
			unparsed = append(unparsed, arg)
			if f.gnuMode {
				continue
			}

			break
		}

		// --undefok itself needs no definition: it collects names
		// allowed to stay undefined, in both their plain and negated
		// spellings.
		if name == "undefok" {
			if !hasValue {
				if pos >= len(args) {
					return nil, nil, nil, newFlagsErrorf("missing value for flag %s", arg)
				}

				value = args[pos]
				pos++
			}

			for _, allowed := range strings.Split(value, ",") {
				allowed = strings.TrimSpace(allowed)
				undefok[allowed] = true
				undefok["no"+allowed] = true
			}

			continue
		}

		flag, known := f.flags[name]

		if known {
			if flag.Boolean && !hasValue {
				// Boolean flags can take the form of --flag, with no value.
				value = "true"
			} else if !hasValue {
				// The value is the next argument.
				if pos >= len(args) {
					return nil, nil, nil, newFlagsErrorf("missing value for flag %s", arg)
				}

				value = args[pos]
				pos++
			}
		} else {
			// Boolean flags can take the form of --noflag, with no value.
			var negated *Flag
			if strings.HasPrefix(name, "no") {
				negated = f.flags[name[2:]]
			}

			if negated == nil || !negated.Boolean {
				unknownFlags = append(unknownFlags, unknownFlag{name: name, arg: arg})

				continue
			}

			flag = negated
			value = "false"
		}

		if err := flag.Parse(value); err != nil {
			return nil, nil, nil, err
		}
	}

	unparsed = append(unparsed, args[pos:]...)

	return unknownFlags, unparsed, undefok, nil
}
