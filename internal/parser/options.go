package parser

import (
	"github.com/reeflective/gflags/internal/validation"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different scanning options.
type Opts struct {
	// DescTag is the struct tag name for description.
	DescTag string

	// FlagTag is the struct tag name for flag.
	FlagTag string

	// FlagDivider is the delimiter between words in generated flag names.
	FlagDivider string

	// EnvDivider is the delimiter between words in environment variables.
	EnvDivider string

	// Prefix is prepended to the name of every scanned flag.
	Prefix string

	// EnvPrefix is prepended to every environment variable name. When
	// set, flags without an env tag also get a generated variable.
	EnvPrefix string

	// Module is the help module recorded for scanned flags that do
	// not choose one with a tag.
	Module string

	// Flatten merges the fields of anonymous structs into the parent
	// without prefixing their names.
	Flatten bool

	// ParseAll generates a flag for every field, not only tagged ones.
	ParseAll bool

	// Validator is an optional validation hook run against every
	// value set on a scanned flag.
	Validator validation.FieldValidator
}

// DefOpts returns the default scanning options.
func DefOpts() *Opts {
	return &Opts{
		DescTag:     "desc",
		FlagTag:     "flag",
		FlagDivider: "-",
		EnvDivider:  "_",
		Flatten:     true,
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		f(o)
	}

	return o
}

// Copy returns a shallow copy of the options, so that a nested group
// can adjust prefixes without affecting its siblings.
func (o *Opts) Copy() *Opts {
	copied := *o

	return &copied
}

// DescTag sets custom description tag. It is "desc" by default.
func DescTag(val string) OptFunc { return func(opt *Opts) { opt.DescTag = val } }

// FlagTag sets custom flag tag. It is "flag" be default.
func FlagTag(val string) OptFunc { return func(opt *Opts) { opt.FlagTag = val } }

// Prefix sets prefix that will be applied for all flags (if they are not marked as ~).
func Prefix(val string) OptFunc { return func(opt *Opts) { opt.Prefix = val } }

// EnvPrefix sets prefix that will be applied for all environment variables (if they are not marked as ~).
func EnvPrefix(val string) OptFunc { return func(opt *Opts) { opt.EnvPrefix = val } }

// FlagDivider sets custom divider for flags. It is dash by default. e.g. "flag-name".
func FlagDivider(val string) OptFunc { return func(opt *Opts) { opt.FlagDivider = val } }

// EnvDivider sets custom divider for environment variables.
func EnvDivider(val string) OptFunc { return func(opt *Opts) { opt.EnvDivider = val } }

// Module sets the default help module for scanned flags.
func Module(val string) OptFunc { return func(opt *Opts) { opt.Module = val } }

// Flatten set flatten option.
func Flatten(val bool) OptFunc { return func(opt *Opts) { opt.Flatten = val } }

// ParseAll orders the scan to generate a flag for all struct fields.
func ParseAll() OptFunc { return func(opt *Opts) { opt.ParseAll = true } }

// Validator sets validator function for flags.
func Validator(val validation.FieldValidator) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}
