package gflags

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// helpWidth is the column at which flag help text wraps.
const helpWidth = 80

// specialFlags holds the flags that the command-line scanner understands
// without registration: they are rendered in help output under their own
// section, but parsed before ordinary flags ever see the argument list.
var specialFlags = newSpecialFlags()

func newSpecialFlags() *FlagSet {
	special := NewFlagSet("gflags")

	special.String("flagfile", "",
		"Insert flag definitions from the given file into the command line.",
		Module("gflags"))
	special.String("undefok", "",
		"comma-separated list of flag names that it is okay to specify on "+
			"the command line even if the program does not define a flag "+
			"with that name.  IMPORTANT: flags in this list that have "+
			"arguments MUST use the --flag=value format.",
		Module("gflags"))

	return special
}

// GetHelp renders the help text for all registered flags, grouped by the
// module that defined them. The main module's section comes first, the
// remaining modules follow in sorted order, and each line is prefixed
// with prefix. A trailing section describes the flags the scanner
// handles without registration, such as --flagfile.
func (f *FlagSet) GetHelp(prefix string) string {
	var helpList []string

	if len(f.flagsByModule) > 0 {
		modules := maps.Keys(f.flagsByModule)
		slices.Sort(modules)

		// The main module's flags lead the output.
		if idx := slices.Index(modules, mainModule); idx > 0 {
			modules = slices.Delete(modules, idx, idx+1)
			modules = slices.Insert(modules, 0, mainModule)
		}

		for _, module := range modules {
			f.renderModuleFlags(module, f.flagsByModule[module], &helpList, prefix)
		}

		f.renderModuleFlags("gflags", maps.Values(specialFlags.flags), &helpList, prefix)
	} else {
		// Flags with no module bookkeeping at all print as one flat list.
		flat := append(maps.Values(f.flags), maps.Values(specialFlags.flags)...)
		f.renderFlagList(flat, &helpList, prefix)
	}

	return strings.Join(helpList, "\n")
}

// ModuleHelp renders a section describing the key flags of the given module.
func (f *FlagSet) ModuleHelp(module string) string {
	var helpList []string

	if keyFlags := f.KeyFlagsForModule(module); len(keyFlags) > 0 {
		f.renderModuleFlags(module, keyFlags, &helpList, "")
	}

	return strings.Join(helpList, "\n")
}

// MainModuleHelp renders a section describing the key flags of the main module.
func (f *FlagSet) MainModuleHelp() string {
	return f.ModuleHelp(mainModule)
}

func (f *FlagSet) renderModuleFlags(module string, flags []*Flag, helpList *[]string, prefix string) {
	if len(flags) == 0 {
		return
	}

	*helpList = append(*helpList, fmt.Sprintf("\n%s%s:", prefix, module))

	f.renderFlagList(flags, helpList, prefix+"  ")
}

func (f *FlagSet) renderFlagList(flags []*Flag, helpList *[]string, prefix string) {
	sorted := slices.Clone(flags)
	slices.SortFunc(sorted, func(a, b *Flag) int {
		return strings.Compare(a.Name, b.Name)
	})

	rendered := make(map[*Flag]bool, len(sorted))

	for _, flag := range sorted {
		// The module records can hold stale pointers: the flag may have
		// been deregistered, or its name taken over by a later
		// registration that allowed overriding.
		if f.flags[flag.Name] != flag && specialFlags.flags[flag.Name] != flag {
			continue
		}

		// A flag reachable under both its name and its shorthand is
		// rendered once.
		if rendered[flag] {
			continue
		}

		rendered[flag] = true

		var header strings.Builder

		if flag.Shorthand != "" {
			header.WriteString("-" + flag.Shorthand + ",")
		}

		if flag.Boolean {
			header.WriteString("--[no]" + flag.Name + ":")
		} else {
			header.WriteString("--" + flag.Name + ":")
		}

		if flag.Usage != "" {
			header.WriteString(" " + flag.Usage)
		}

		entry := wrapText(header.String(), prefix, prefix+"  ")

		if flag.hasDefault() {
			line := fmt.Sprintf("(default: '%s')", flag.DefValue)
			entry += "\n" + wrapText(line, prefix+"  ", prefix+"  ")
		}

		if hint := syntacticHint(flag); hint != "" {
			entry += "\n" + wrapText("("+hint+")", prefix+"  ", prefix+"  ")
		}

		*helpList = append(*helpList, entry)
	}
}

// syntacticHint describes the syntax a flag value must follow, for the
// value types where the flag name alone does not make it obvious.
func syntacticHint(flag *Flag) string {
	switch flag.Type() {
	case "int", "int64", "uint", "count":
		return "an integer"
	case "float64":
		return "a number"
	case "duration":
		return "a duration; ex: '10s', '1h30m'"
	case "stringSlice":
		return "a comma separated list"
	case "intSlice":
		return "a comma separated list of integers"
	case "stringToString":
		return "a comma separated list of key=value pairs"
	case "hex":
		return "a hexadecimal string"
	default:
		return ""
	}
}

// wrapText wraps text at the help width, prefixing the first line with
// firstIndent and every continuation line with indent.
func wrapText(text, firstIndent, indent string) string {
	width := helpWidth - len(indent)
	if width < 20 {
		width = 20
	}

	lines := strings.Split(wordwrap.String(text, width), "\n")

	for i := range lines {
		if i == 0 {
			lines[i] = firstIndent + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
