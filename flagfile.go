package gflags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
)

// maxFlagfileDepth bounds recursive flagfile inclusion. Cycles are
// detected and skipped on their own, the bound catches pathological
// inclusion chains.
const maxFlagfileDepth = 64

// isFlagFileDirective checks whether an argument is a --flagfile
// directive, in any of its four spellings.
func isFlagFileDirective(arg string) bool {
	return arg == "--flagfile" || arg == "-flagfile" ||
		strings.HasPrefix(arg, "--flagfile=") ||
		strings.HasPrefix(arg, "-flagfile=")
}

// extractFilename returns the file named by a -[-]flagfile=name
// directive, trimmed and with a leading ~ expanded.
func extractFilename(directive string) (string, error) {
	for _, prefix := range []string{"--flagfile=", "-flagfile="} {
		if rest, found := strings.CutPrefix(directive, prefix); found {
			return expandUser(strings.TrimSpace(rest)), nil
		}
	}

	return "", newFlagsErrorf("hit illegal --flagfile type: %s", directive)
}

// expandUser replaces a leading ~ with the user home directory.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// ReadFlagsFromFiles expands every --flagfile directive in the
// argument list, splicing the file contents in the exact place where
// the directive was found. Later arguments override earlier ones when
// parsed, so a flag file can be made weak by putting it first, or
// strong by putting it last.
//
// Expansion stops at --, and at the first positional argument unless
// forceGNU or the flag set's GNU mode keeps the scan going.
func (f *FlagSet) ReadFlagsFromFiles(args []string, forceGNU bool) ([]string, error) {
	var newArgv []string

	rest := args

	for len(rest) > 0 {
		current := rest[0]
		rest = rest[1:]

		if isFlagFileDirective(current) {
			var filename string

			if current == "--flagfile" || current == "-flagfile" {
				// The file is the next argument.
				if len(rest) == 0 {
					return nil, &IllegalFlagValue{Name: "flagfile", Err: errors.New("no argument given")}
				}

				filename = expandUser(rest[0])
				rest = rest[1:]
			} else {
				extracted, err := extractFilename(current)
				if err != nil {
					return nil, err
				}

				filename = extracted
			}

			lines, err := f.flagFileLines(filename, nil, 0)
			if err != nil {
				return nil, err
			}

			newArgv = append(newArgv, lines...)

			continue
		}

		newArgv = append(newArgv, current)

		// Stop expanding after --, like the scanner stops parsing.
		if current == "--" {
			break
		}

		if !strings.HasPrefix(current, "-") {
			// Stop expanding after a positional argument.
			if !forceGNU && !f.gnuMode {
				break
			}
		} else if !strings.Contains(current, "=") && len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			// A legitimate `--name value` pair: skip the value so it
			// is not mistaken for a standalone argument.
			name := strings.TrimLeft(current, "-")
			if flag, known := f.flags[name]; known && !flag.Boolean {
				newArgv = append(newArgv, rest[0])
				rest = rest[1:]
			}
		}
	}

	if len(rest) > 0 {
		newArgv = append(newArgv, rest...)
	}

	return newArgv, nil
}

// flagFileLines returns the flag-bearing lines of a flag file, with
// nested --flagfile= directives expanded recursively in place.
//
// Whitespace lines and comments (lines starting with # or //) are
// dropped. Each recursion level carries its own copy of the set of
// files being expanded: a file reached twice along one inclusion path
// is skipped with a warning, while diamond-shaped inclusions through
// separate paths remain legal.
func (f *FlagSet) flagFileLines(filename string, inProgress map[string]bool, depth int) ([]string, error) {
	if depth > maxFlagfileDepth {
		return nil, newFlagsErrorf("flagfile %s nested more than %d levels deep", filename, maxFlagfileDepth)
	}

	if inProgress[filename] {
		fmt.Fprintf(f.out(), "Warning: Hit circular flagfile dependency. Ignoring flagfile: %s\n", filename)

		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, &CantOpenFlagFileError{Name: filename, Err: err}
	}

	parsing := maps.Clone(inProgress)
	if parsing == nil {
		parsing = make(map[string]bool)
	}

	parsing[filename] = true

	var flagLines []string

	for _, line := range strings.Split(string(content), "\n") {
		switch {
		case strings.TrimSpace(line) == "":
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "//"):
		case strings.HasPrefix(line, "--flagfile="), strings.HasPrefix(line, "-flagfile="):
			nested, err := extractFilename(line)
			if err != nil {
				return nil, err
			}

			included, err := f.flagFileLines(nested, parsing, depth+1)
			if err != nil {
				return nil, err
			}

			flagLines = append(flagLines, included...)
		default:
			flagLines = append(flagLines, strings.TrimSpace(line))
		}
	}

	return flagLines, nil
}

// FlagsIntoString renders every flag holding a value as one
// command-line assignment per line, in a form flag files read back.
// Flags carrying a nil value are skipped.
func (f *FlagSet) FlagsIntoString() string {
	var builder strings.Builder

	f.VisitAll(func(flag *Flag) {
		if serialized := flag.Serialize(); serialized != "" {
			builder.WriteString(serialized)
			builder.WriteString("\n")
		}
	})

	return builder.String()
}

// AppendFlagsIntoFile appends the current flag assignments to a file,
// in flag file format.
func (f *FlagSet) AppendFlagsIntoFile(filename string) error {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &CantOpenFlagFileError{Name: filename, Err: err}
	}
	defer file.Close()

	if _, err := file.WriteString(f.FlagsIntoString()); err != nil {
		return fmt.Errorf("appending flags to %s: %w", filename, err)
	}

	return nil
}
