package gflags

import (
	"os"

	"github.com/reeflective/gflags/internal/validation"
	"github.com/reeflective/gflags/internal/values"
)

// FlagOption configures a flag at definition time, before it is
// registered.
type FlagOption func(*Flag)

// Shorthand gives the flag a short alias, registered alongside its
// long name.
func Shorthand(short string) FlagOption {
	return func(f *Flag) { f.Shorthand = short }
}

// Module records the flag as defined by the named module instead of
// the main module. Help output groups flags by defining module.
func Module(name string) FlagOption {
	return func(f *Flag) { f.Module = name }
}

// Placeholder sets the name standing for the flag's argument in help
// output.
func Placeholder(name string) FlagOption {
	return func(f *Flag) { f.Placeholder = name }
}

// Hidden excludes the flag from value accessors. It can still be set
// from the command line and appears in help output.
func Hidden() FlagOption {
	return func(f *Flag) { f.Hidden = true }
}

// AllowOverride lets a later definition under the same name replace
// this flag instead of raising a DuplicateFlagError.
func AllowOverride() FlagOption {
	return func(f *Flag) { f.AllowOverride = true }
}

// Key declares the flag as a key flag of its defining module, so that
// the module's help section lists it.
func Key() FlagOption {
	return func(f *Flag) { f.key = true }
}

// FromEnv seeds the flag's default from the environment variable when
// one is set. Command-line arguments still override it.
func FromEnv(envVar string) FlagOption {
	return func(f *Flag) {
		value, ok := os.LookupEnv(envVar)
		if !ok {
			return
		}

		if err := f.SetDefault(value); err != nil {
			panic(err)
		}
	}
}

// Validated runs check on every raw argument before it reaches the
// flag's value: a failed check leaves the value untouched.
func Validated(check func(value string) error) FlagOption {
	return func(f *Flag) {
		f.Value = values.NewValidated(f.Value, check)
	}
}

// Choices restricts the flag to the given values. Other arguments are
// rejected, and shell completion suggests the choices.
func Choices(choices ...string) FlagOption {
	return func(f *Flag) {
		f.Choices = choices
		f.Value = values.NewValidated(f.Value, validation.ChoiceValidator(choices))
	}
}
