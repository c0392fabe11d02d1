package gflags

import (
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/gflags/internal/errors"
	"github.com/reeflective/gflags/internal/parser"
	"github.com/reeflective/gflags/internal/validation"
)

// BindOption is a functional option configuring how structs are
// scanned for flags.
type BindOption func(o *parser.Opts)

func toInternalOpts(options []BindOption) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(options))
	for i, option := range options {
		internalOpts[i] = parser.OptFunc(option)
	}

	return internalOpts
}

// WithPrefix sets a prefix that will be applied to all long flag names.
func WithPrefix(prefix string) BindOption {
	return BindOption(parser.Prefix(prefix))
}

// WithEnvPrefix sets a prefix for all environment variables, and makes
// every scanned flag watch the environment even without an env tag.
func WithEnvPrefix(prefix string) BindOption {
	return BindOption(parser.EnvPrefix(prefix))
}

// WithFlagDivider sets the character used to separate words in long flag names.
func WithFlagDivider(divider string) BindOption {
	return BindOption(parser.FlagDivider(divider))
}

// WithEnvDivider sets the character used to separate words in environment variable names.
func WithEnvDivider(divider string) BindOption {
	return BindOption(parser.EnvDivider(divider))
}

// WithModule sets the help module recorded for every scanned flag that
// does not choose one with a module tag.
func WithModule(name string) BindOption {
	return BindOption(parser.Module(name))
}

// WithAllFields orders the scan to generate a flag for every exported
// field, tagged or not.
func WithAllFields() BindOption {
	return BindOption(parser.ParseAll())
}

// WithValidation adds field validation for fields with the "validate" tag.
// This makes use of go-playground/validator internally, refer to their docs
// for an exhaustive list of valid tag validations.
func WithValidation() BindOption {
	return BindOption(parser.Validator(validation.NewDefault()))
}

// WithValidator registers a custom validation function for flags.
// It is required to pass a go-playground/validator object for customization.
// The latter library has been chosen because it supports most of the validation
// one would want on command lines, and because there are vast possibilities
// for registering and using custom validations through the *Validate type.
func WithValidator(v *validator.Validate) BindOption {
	return BindOption(parser.Validator(validation.NewWith(v)))
}

// BindStruct scans the struct pointed to by data and defines a flag
// for every eligible field. Fields are selected and configured with
// struct tags: `long`, `short`, `desc`, `default`, `env`, `module`,
// `key`, `hidden`, `choice`, `placeholder`, and `flag:"-"` to skip a
// field. Nested structs become prefixed flag groups.
func (f *FlagSet) BindStruct(data any, options ...BindOption) error {
	scanned, err := parser.ParseStruct(data, toInternalOpts(options)...)
	if err != nil {
		return err
	}

	for _, flag := range scanned {
		if err := f.registerScanned(flag); err != nil {
			return err
		}
	}

	return nil
}

// Bind scans a struct into the default registry.
func Bind(data any, options ...BindOption) error {
	return CommandLine.BindStruct(data, options...)
}

// registerScanned defines a registry flag from a scanned description.
func (f *FlagSet) registerScanned(scanned *parser.Flag) error {
	flag := NewFlag(scanned.Name, scanned.Value, scanned.Usage)
	flag.Shorthand = scanned.Short
	flag.Placeholder = scanned.Placeholder
	flag.Hidden = scanned.Hidden
	flag.Choices = scanned.Choices

	flag.Module = scanned.Module
	if flag.Module == "" {
		flag.Module = mainModule
	}

	// The environment overrides tag defaults, while command-line
	// arguments still override both.
	if scanned.EnvName != "" {
		if env, ok := os.LookupEnv(scanned.EnvName); ok {
			if err := flag.Value.Set(env); err != nil {
				return &IllegalFlagValue{Name: flag.Name, Value: env, Err: err}
			}
		}
	}

	flag.DefValue = flag.Value.String()

	if err := f.Register(flag); err != nil {
		return err
	}

	f.registerFlagByModule(flag.Module, flag)

	if scanned.Key {
		if err := f.DeclareKeyFlag(flag.Module, flag.Name); err != nil {
			return err
		}
	}

	return nil
}

// Errors scanned structs can produce, aliased for callers.
var (
	// ErrParse is a general error used to wrap more specific scanning errors.
	ErrParse = errors.ErrParse

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.ErrNotPointerToStruct

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.ErrInvalidTag

	// ErrNotValue indicates that a struct field type marked as a flag cannot
	// back one.
	ErrNotValue = errors.ErrNotValue

	// ErrUnexportedField indicates that a field marked as a flag is not
	// exported.
	ErrUnexportedField = errors.ErrUnexportedField
)
