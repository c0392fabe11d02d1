package gflags

import (
	"strconv"

	"github.com/reeflective/gflags/internal/values"
)

// Flag represents the state of a single command-line flag: its
// definition, its current value, and how that value was set.
type Flag struct {
	// Name is the long name of the flag, without dashes.
	Name string

	// Shorthand is an optional alias for the name, usually one letter.
	Shorthand string

	// Usage is the help text shown for the flag.
	Usage string

	// Value holds the current value and knows how to parse arguments.
	Value Value

	// DefValue is the default value, as text. It is shown in help
	// output and restored when the flag is unparsed.
	DefValue string

	// Module is the name of the module which defined the flag.
	Module string

	// Placeholder stands for the argument in help output, such as
	// PATH in `--config PATH`.
	Placeholder string

	// Boolean marks flags which can be passed without an argument
	// and negated with the `no` prefix.
	Boolean bool

	// Hidden excludes the flag from value accessors. Hidden flags
	// can still be set from the command line and appear in help.
	Hidden bool

	// AllowOverride lets a later definition replace this flag
	// instead of raising a duplicate definition error.
	AllowOverride bool

	// Choices restricts the accepted values when non-empty, and
	// doubles as the completion candidates for the flag.
	Choices []string

	// Validators holds the validators inspecting this flag, sorted
	// when run in their creation order.
	Validators []*Validator

	// Present reports whether the flag was set, either from the
	// command line or through an explicit assignment.
	Present bool

	// UsingDefault reports whether the flag still carries its
	// default value.
	UsingDefault bool

	// key requests a key-flag declaration at definition time.
	key bool
}

// NewFlag creates a flag with the given name, backing value and help
// text. The current content of the value is captured as the default.
func NewFlag(name string, value Value, usage string) *Flag {
	flag := &Flag{
		Name:         name,
		Usage:        usage,
		Value:        value,
		DefValue:     value.String(),
		UsingDefault: true,
	}

	if boolFlag, ok := value.(values.BoolFlag); ok && boolFlag.IsBoolFlag() {
		flag.Boolean = true
	}

	return flag
}

// Parse sets the flag from a raw command-line argument and marks the
// flag as explicitly set.
func (f *Flag) Parse(arg string) error {
	if err := f.Value.Set(arg); err != nil {
		return &IllegalFlagValue{Name: f.Name, Value: arg, Err: err}
	}

	f.Present = true
	f.UsingDefault = false

	return nil
}

// Type returns the type name of the backing value.
func (f *Flag) Type() string {
	return f.Value.Type()
}

// Get returns the native value of the flag when the backing value
// implements Getter, and its text form otherwise.
func (f *Flag) Get() any {
	if getter, ok := f.Value.(values.Getter); ok {
		return getter.Get()
	}

	return f.Value.String()
}

// hasDefault reports whether the flag carries a default worth showing
// in help output. Flags backed by an unset (nil) value have none.
func (f *Flag) hasDefault() bool {
	if getter, ok := f.Value.(values.Getter); ok && getter.Get() == nil {
		return false
	}

	return true
}

// Serialize renders the flag as a single command-line token, or an
// empty string when the flag holds an unset (nil) value.
func (f *Flag) Serialize() string {
	if getter, ok := f.Value.(values.Getter); ok && getter.Get() == nil {
		return ""
	}

	if f.Boolean {
		if on, err := strconv.ParseBool(f.Value.String()); err == nil {
			if on {
				return "--" + f.Name
			}

			return "--no" + f.Name
		}
	}

	return "--" + f.Name + "=" + f.Value.String()
}

// Unparse restores the flag to its default value and marks it unset.
func (f *Flag) Unparse() error {
	if resetter, ok := f.Value.(values.Resetter); ok {
		if err := resetter.Reset(f.DefValue); err != nil {
			return err
		}
	} else if err := f.Value.Set(f.DefValue); err != nil {
		return err
	}

	f.Present = false
	f.UsingDefault = true

	return nil
}

// SetDefault changes the default value of the flag. A flag still
// using its default is updated to the new one.
func (f *Flag) SetDefault(value string) error {
	if f.UsingDefault {
		if err := f.Value.Set(value); err != nil {
			return &IllegalFlagValue{Name: f.Name, Value: value, Err: err}
		}
	}

	f.DefValue = value

	return nil
}
