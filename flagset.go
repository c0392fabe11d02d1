package gflags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// mainModule is the module tag used for flags defined without an
// explicit module, and the module whose help is printed first.
const mainModule = "main"

// allowUnparsedAccessEnv is the environment variable controlling reads
// of flag values before parsing has run. Unset or "1" downgrades the
// error to a warning, any other value keeps it an error.
const allowUnparsedAccessEnv = "GFLAGS_ALLOW_UNPARSED_FLAG_ACCESS"

// FlagSet is a registry of flags: their definitions and current
// values, bookkeeping about which modules defined them and depend on
// them, and the machinery to parse them from a command line.
//
// A default, process-wide instance is available as CommandLine.
type FlagSet struct {
	name  string
	usage string

	// flags maps both long and short names to their flag, so a flag
	// with a shorthand appears under two keys.
	flags map[string]*Flag

	// flagsByModule and keyFlagsByModule group flags by the module
	// which defined them, and by the modules which declared them as
	// key for their operation.
	flagsByModule    map[string][]*Flag
	keyFlagsByModule map[string][]*Flag

	parsed  bool
	gnuMode bool
	output  io.Writer
}

// NewFlagSet returns a new, empty flag registry. The name is used as
// the program name in help output.
func NewFlagSet(name string) *FlagSet {
	return &FlagSet{
		name:             name,
		flags:            make(map[string]*Flag),
		flagsByModule:    make(map[string][]*Flag),
		keyFlagsByModule: make(map[string][]*Flag),
	}
}

// Name returns the name of the flag set.
func (f *FlagSet) Name() string { return f.name }

// SetUsage sets the one-line usage string shown at the top of help
// and XML output.
func (f *FlagSet) SetUsage(usage string) { f.usage = usage }

// SetOutput sets the destination for warnings and help output.
// A nil writer means os.Stderr.
func (f *FlagSet) SetOutput(output io.Writer) { f.output = output }

func (f *FlagSet) out() io.Writer {
	if f.output == nil {
		return os.Stderr
	}

	return f.output
}

//
// Registration ----------------------------------------------------------- //
//

// Register adds a flag to the registry under its long name and, when
// one is set, under its shorthand.
//
// A name collision raises a DuplicateFlagError unless one of the two
// definitions allows overriding, with one exception: a module
// re-registering one of its own flags with an identical definition is
// treated as a redundant import and silently skipped.
//
// When overriding is allowed, an existing flag carrying an explicitly
// set value is never replaced by an incoming definition still holding
// its default.
func (f *FlagSet) Register(flag *Flag) error {
	if flag == nil || flag.Value == nil {
		return newFlagsErrorf("flag must carry a value")
	}

	if flag.Name == "" {
		return newFlagsErrorf("flag name cannot be empty")
	}

	if utf8.RuneCountInString(flag.Shorthand) > 1 {
		return newFlagsErrorf("flag --%s: %s", flag.Name, ErrShortNameTooLong)
	}

	existing, exists := f.flags[flag.Name]
	if exists && !flag.AllowOverride && !existing.AllowOverride {
		if sameDefinition(existing, flag) {
			return nil
		}

		return &DuplicateFlagError{
			Name:         flag.Name,
			FirstModule:  f.FindModuleDefiningFlag(flag.Name),
			SecondModule: flag.Module,
		}
	}

	if flag.Shorthand != "" {
		short, taken := f.flags[flag.Shorthand]
		if taken && short != existing && !flag.AllowOverride && !short.AllowOverride {
			return &DuplicateFlagError{
				Name:         flag.Shorthand,
				FirstModule:  f.FindModuleDefiningFlag(flag.Shorthand),
				SecondModule: flag.Module,
			}
		}

		if !taken || short.UsingDefault || !flag.UsingDefault {
			f.flags[flag.Shorthand] = flag
		}
	}

	if !exists || existing.UsingDefault || !flag.UsingDefault {
		f.flags[flag.Name] = flag
	}

	return nil
}

// sameDefinition reports whether two flags are redundant declarations
// of one another.
func sameDefinition(a, b *Flag) bool {
	return a.Module == b.Module &&
		a.Usage == b.Usage &&
		a.DefValue == b.DefValue &&
		a.Shorthand == b.Shorthand &&
		a.Boolean == b.Boolean &&
		a.Value.Type() == b.Value.Type()
}

// registerFlagByModule records the module that defines a flag.
func (f *FlagSet) registerFlagByModule(module string, flag *Flag) {
	if module == "" {
		module = mainModule
	}

	f.flagsByModule[module] = append(f.flagsByModule[module], flag)
}

// Deregister removes the flag registered under the given name, long
// or short. When the flag is no longer reachable under any name, its
// module bookkeeping is dropped as well.
func (f *FlagSet) Deregister(name string) error {
	flag, ok := f.flags[name]
	if !ok {
		return &UnrecognizedFlagError{Name: name}
	}

	delete(f.flags, name)

	if !f.flagIsRegistered(flag) {
		removeFlagFromModules(f.flagsByModule, flag)
		removeFlagFromModules(f.keyFlagsByModule, flag)
	}

	return nil
}

// flagIsRegistered checks whether a flag is still reachable under its
// long or short name.
func (f *FlagSet) flagIsRegistered(flag *Flag) bool {
	if f.flags[flag.Name] == flag {
		return true
	}

	return flag.Shorthand != "" && f.flags[flag.Shorthand] == flag
}

func removeFlagFromModules(byModule map[string][]*Flag, flag *Flag) {
	for module, moduleFlags := range byModule {
		kept := moduleFlags[:0]

		for _, candidate := range moduleFlags {
			if candidate != flag {
				kept = append(kept, candidate)
			}
		}

		byModule[module] = kept
	}
}

// AppendFlagSet registers every flag of another registry into this
// one, along with its module bookkeeping. Collisions surface as a
// DuplicateFlagError naming both registries.
func (f *FlagSet) AppendFlagSet(other *FlagSet) error {
	for _, name := range sortedNames(other.flags) {
		flag := other.flags[name]

		// Flags with a shorthand appear twice, register them once.
		if flag.Name != name {
			continue
		}

		if err := f.Register(flag); err != nil {
			var duplicate *DuplicateFlagError
			if errors.As(err, &duplicate) {
				duplicate.FirstRegistry = f.name
				duplicate.SecondRegistry = other.name
			}

			return err
		}

		f.registerFlagByModule(flag.Module, flag)
	}

	for module, keyFlags := range other.keyFlagsByModule {
		for _, flag := range keyFlags {
			if f.flags[flag.Name] == flag {
				if err := f.DeclareKeyFlag(module, flag.Name); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// RemoveFlagSet deregisters every flag that the other registry
// contains from this one.
func (f *FlagSet) RemoveFlagSet(other *FlagSet) error {
	for _, name := range other.RegisteredFlags() {
		if err := f.Deregister(name); err != nil {
			return err
		}
	}

	return nil
}

//
// Lookup and access ------------------------------------------------------ //
//

// Lookup returns the flag registered under the given name, long or
// short, or nil when the name is unknown.
func (f *FlagSet) Lookup(name string) *Flag {
	return f.flags[name]
}

// GetFlag is like Lookup, but returns an UnrecognizedFlagError for
// unknown names.
func (f *FlagSet) GetFlag(name string) (*Flag, error) {
	flag, ok := f.flags[name]
	if !ok {
		return nil, &UnrecognizedFlagError{Name: name}
	}

	return flag, nil
}

// HideFlag marks the named flag as hidden: its value can no longer be
// read through the value accessors, although the flag can still be
// set from the command line.
func (f *FlagSet) HideFlag(name string) error {
	flag, err := f.GetFlag(name)
	if err != nil {
		return err
	}

	flag.Hidden = true

	return nil
}

// Get returns the current value of the named flag.
//
// Reading a value before Parse has run returns the flag default, with
// a warning printed on the output writer. When the
// GFLAGS_ALLOW_UNPARSED_FLAG_ACCESS environment variable is set to
// anything but "1", the read fails with an UnparsedFlagAccessError
// instead.
func (f *FlagSet) Get(name string) (any, error) {
	flag, ok := f.flags[name]
	if !ok || flag.Hidden {
		return nil, &UnrecognizedFlagError{Name: name}
	}

	if f.parsed || flag.Present {
		return flag.Get(), nil
	}

	if !allowUnparsedAccess() {
		return nil, &UnparsedFlagAccessError{Name: name}
	}

	fmt.Fprintf(f.out(), "Warning: trying to access flag --%s before flags were parsed.\n", name)

	return flag.Get(), nil
}

func allowUnparsedAccess() bool {
	if value, ok := os.LookupEnv(allowUnparsedAccessEnv); ok {
		return value == "1"
	}

	return true
}

// Set assigns a value to the named flag from its text form, marks the
// flag as explicitly set, and re-runs the validators attached to it.
func (f *FlagSet) Set(name, value string) error {
	flag, ok := f.flags[name]
	if !ok || flag.Hidden {
		return &UnrecognizedFlagError{Name: name}
	}

	if err := flag.Parse(value); err != nil {
		return err
	}

	return f.assertValidators(flag.Validators)
}

// SetDefault changes the default value of the named flag, and re-runs
// the validators attached to it.
func (f *FlagSet) SetDefault(name, value string) error {
	flag, ok := f.flags[name]
	if !ok {
		return &UnrecognizedFlagError{Name: name}
	}

	if err := flag.SetDefault(value); err != nil {
		return err
	}

	return f.assertValidators(flag.Validators)
}

//
// Inspection ------------------------------------------------------------- //
//

// Contains reports whether a flag is registered under the given name.
func (f *FlagSet) Contains(name string) bool {
	_, ok := f.flags[name]

	return ok
}

// Len returns the number of names under which flags are registered,
// counting shorthands.
func (f *FlagSet) Len() int { return len(f.flags) }

// RegisteredFlags returns the sorted list of names under which flags
// are registered, including shorthands.
func (f *FlagSet) RegisteredFlags() []string {
	return sortedNames(f.flags)
}

// Values returns a map from registered names to current flag values.
func (f *FlagSet) Values() map[string]any {
	flagValues := make(map[string]any, len(f.flags))
	for name, flag := range f.flags {
		flagValues[name] = flag.Get()
	}

	return flagValues
}

// VisitAll visits every registered flag exactly once, in
// lexicographic order of registered names.
func (f *FlagSet) VisitAll(visit func(*Flag)) {
	for _, name := range sortedNames(f.flags) {
		flag := f.flags[name]

		// Visit a flag under its shorthand only when its long name
		// entry was deleted or taken over.
		if name != flag.Name && f.flags[flag.Name] == flag {
			continue
		}

		visit(flag)
	}
}

func sortedNames(flags map[string]*Flag) []string {
	names := maps.Keys(flags)
	slices.Sort(names)

	return names
}

//
// Modules ---------------------------------------------------------------- //
//

// FlagsForModule returns the flags defined by the given module.
func (f *FlagSet) FlagsForModule(module string) []*Flag {
	return slices.Clone(f.flagsByModule[module])
}

// KeyFlagsForModule returns the key flags of a module: every flag it
// defined, plus the flags it explicitly declared as key.
func (f *FlagSet) KeyFlagsForModule(module string) []*Flag {
	keyFlags := f.FlagsForModule(module)

	for _, flag := range f.keyFlagsByModule[module] {
		if !slices.Contains(keyFlags, flag) {
			keyFlags = append(keyFlags, flag)
		}
	}

	return keyFlags
}

// DeclareKeyFlag records an already registered flag as key for the
// given module, so that the module's help includes it.
func (f *FlagSet) DeclareKeyFlag(module, name string) error {
	flag, err := f.GetFlag(name)
	if err != nil {
		return err
	}

	if module == "" {
		module = mainModule
	}

	declared := f.keyFlagsByModule[module]
	if !slices.Contains(declared, flag) {
		f.keyFlagsByModule[module] = append(declared, flag)
	}

	return nil
}

// FindModuleDefiningFlag returns the name of the module which defined
// the named flag, or the empty string when no module claims it.
func (f *FlagSet) FindModuleDefiningFlag(name string) string {
	for module, moduleFlags := range f.flagsByModule {
		for _, flag := range moduleFlags {
			if flag.Name == name || (flag.Shorthand != "" && flag.Shorthand == name) {
				return module
			}
		}
	}

	return ""
}

//
// Parse state ------------------------------------------------------------ //
//

// Parsed reports whether Parse has completed on this flag set.
func (f *FlagSet) Parsed() bool { return f.parsed }

// MarkAsParsed declares that parsing already happened. Use it when
// flag values were filled by other means than Parse.
func (f *FlagSet) MarkAsParsed() { f.parsed = true }

// Reset restores every flag to its default value and marks the flag
// set unparsed.
func (f *FlagSet) Reset() error {
	var err error

	f.VisitAll(func(flag *Flag) {
		if unparseErr := flag.Unparse(); unparseErr != nil && err == nil {
			err = unparseErr
		}
	})

	f.parsed = false

	return err
}

// SetGNUMode toggles GNU-style scanning, which keeps looking for
// flags after the first positional argument instead of stopping.
func (f *FlagSet) SetGNUMode(gnu bool) { f.gnuMode = gnu }

// GNUMode reports whether GNU-style scanning is enabled.
func (f *FlagSet) GNUMode() bool { return f.gnuMode }
