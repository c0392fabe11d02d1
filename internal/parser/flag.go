package parser

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/reeflective/gflags/internal/errors"
	"github.com/reeflective/gflags/internal/validation"
	"github.com/reeflective/gflags/internal/values"
)

// DefaultEnvTag is the struct tag key naming a flag's environment variable.
const DefaultEnvTag = "env"

// Flag describes a single flag scanned from a struct field, with
// everything a registry needs to define it.
type Flag struct {
	Name        string       // name as it appears on command line
	Short       string       // optional short name
	EnvName     string       // environment variable seeding the default, if any
	Usage       string       // help message
	Placeholder string       // placeholder for the flag's value in help
	Value       values.Value // value backed by the struct field
	DefValue    []string     // default values from tags, as text
	Module      string       // help module the flag belongs to
	Key         bool         // marks the flag as a key flag of its module
	Hidden      bool         // hidden from value accessors
	Choices     []string     // allowed values, if restricted
}

// parseSingleFlag builds a Flag from a struct field known not to be a
// nested group.
func parseSingleFlag(val reflect.Value, fld reflect.StructField, tag *MultiTag, opts *Opts) (*Flag, bool, error) {
	name, short := getFlagName(fld, tag, opts)
	if name == "" && short == "" {
		return nil, false, nil
	}

	if utf8.RuneCountInString(short) > 1 {
		return nil, false, fmt.Errorf("%w: short name %q on field %s must be one character",
			errors.ErrInvalidTag, short, fld.Name)
	}

	value, err := newValue(val, fld, tag)
	if err != nil || value == nil {
		return nil, false, err
	}

	// Defaults from tags only apply when the field holds its zero
	// value, so that values assigned in code are not overwritten.
	defaults := tag.GetMany("default")
	if len(defaults) > 0 && val.IsZero() {
		for _, def := range defaults {
			if err := value.Set(def); err != nil {
				return nil, false, fmt.Errorf("%w: invalid default %q for flag --%s: %w",
					errors.ErrParse, def, name, err)
			}
		}
	}

	choices := getFlagChoices(tag)

	if checker := validation.BuildValidator(val, fld, choices, opts.Validator); checker != nil {
		value = values.NewValidated(value, checker)
	}

	module := opts.Module
	if tagged, ok := tag.Get("module"); ok {
		module = tagged
	}

	flag := &Flag{
		Name:        name,
		Short:       short,
		EnvName:     parseEnvTag(name, fld, opts),
		Usage:       getFlagUsage(tag, opts),
		Placeholder: getFlagPlaceholder(tag),
		Value:       value,
		DefValue:    defaults,
		Module:      module,
		Key:         isSet(tag, "key"),
		Hidden:      isSet(tag, "hidden"),
		Choices:     choices,
	}

	return flag, true, nil
}

// newValue creates a values.Value for a field, or an error when the
// field was explicitly marked as a flag but cannot back one.
func newValue(val reflect.Value, fld reflect.StructField, tag *MultiTag) (values.Value, error) {
	var value values.Value
	if canBeValue(val) {
		value = values.NewValue(val)
	}

	if markedFlagNotImplementing(tag, value) {
		return nil, fmt.Errorf("%w: field %s does not implement a supported interface",
			errors.ErrNotValue, fld.Name)
	}

	return value, nil
}

// canBeValue reports whether the field can back a flag: either through
// one of the value interfaces, or with a kind the reflective fallback
// knows how to parse.
func canBeValue(val reflect.Value) bool {
	if isSingleValue(val) {
		return true
	}

	typ := val.Type()
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	switch typ.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

func markedFlagNotImplementing(tag *MultiTag, val values.Value) bool {
	_, compact := tag.Get("flag")
	_, short := tag.Get("short")
	_, long := tag.Get("long")

	return (compact || short || long) && val == nil
}

func getFlagName(field reflect.StructField, tag *MultiTag, opts *Opts) (string, string) {
	// Start with values from the compact format, which can include the
	// ignore-prefix tilde.
	long, short, ignorePrefix := parseCompactTag(tag, opts)

	// Layer on standard 'long' and 'short' tags, which take precedence if present.
	if l, ok := tag.Get("long"); ok {
		long = l
	}
	if s, ok := tag.Get("short"); ok {
		short = s
	}

	// If no long name was found in any tag, generate it from the field name.
	if long == "" {
		long = CamelToFlag(field.Name, opts.FlagDivider)
	}

	if !ignorePrefix {
		long = opts.Prefix + long
	}

	return long, short
}

// parseCompactTag handles the compact `flag:"name n"` form carrying the
// long name and an optional short name. It returns both, and whether a
// leading tilde asked for the namespace prefix to be skipped.
func parseCompactTag(tag *MultiTag, opts *Opts) (long, short string, ignorePrefix bool) {
	names, isSet := tag.Get(opts.FlagTag)
	if !isSet {
		return
	}

	if strings.HasPrefix(names, "~") {
		ignorePrefix = true
		names = names[1:]
	}

	// Attributes such as `hidden` follow the names after a comma.
	values := strings.Split(names, ",")
	parts := strings.Split(values[0], " ")
	if len(parts) > 1 {
		long = parts[0]
		short = parts[1]
	} else {
		long = parts[0]
	}

	return
}

func getFlagUsage(tag *MultiTag, opts *Opts) string {
	if usage, isSet := tag.Get(opts.DescTag); isSet {
		return usage
	}
	if usage, isSet := tag.Get("description"); isSet {
		return usage
	}
	if usage, isSet := tag.Get("desc"); isSet {
		return usage
	}

	return ""
}

func getFlagPlaceholder(tag *MultiTag) string {
	if placeholder, isSet := tag.Get("placeholder"); isSet {
		return placeholder
	}

	return ""
}

func getFlagChoices(tag *MultiTag) []string {
	var choices []string

	choiceTags := tag.GetMany("choice")
	for _, choice := range choiceTags {
		choices = append(choices, strings.Split(choice, " ")...)
	}

	return choices
}

// parseEnvTag resolves the environment variable for a flag. Flags only
// watch the environment when they carry an env tag, or when a global
// env prefix is set.
func parseEnvTag(flagName string, field reflect.StructField, opts *Opts) string {
	envTag, tagged := field.Tag.Lookup(DefaultEnvTag)
	if !tagged && opts.EnvPrefix == "" {
		return ""
	}

	ignoreEnvPrefix := false
	envVar := FlagToEnv(flagName, opts.FlagDivider, opts.EnvDivider)

	if tagged {
		switch envName := strings.Split(envTag, ",")[0]; envName {
		case "-":
			// `env:"-"` disables environment lookup entirely.
			return ""
		case "":
			// `env:""` keeps the name generated from the flag name.
		default:
			// `env:"NAME"` resolves to envPrefix_flagPrefix_NAME, and
			// `env:"~NAME"` to NAME alone.
			if strings.HasPrefix(envName, "~") {
				envVar = envName[1:]
				ignoreEnvPrefix = true
			} else {
				envVar = envName
				if opts.Prefix != "" {
					envVar = FlagToEnv(opts.Prefix, opts.FlagDivider, opts.EnvDivider) + envVar
				}
			}
		}
	}

	if envVar != "" && opts.EnvPrefix != "" && !ignoreEnvPrefix {
		envVar = opts.EnvPrefix + envVar
	}

	return envVar
}

func isSet(tag *MultiTag, key string) bool {
	// The key can exist as a standalone tag, such as `hidden:"true"`.
	if _, ok := tag.Get(key); ok {
		return true
	}

	// Or as an attribute within the compact flag tag, comma-separated
	// after the name part, such as `flag:"myflag f,hidden"`.
	if flagTag, ok := tag.Get("flag"); ok {
		parts := strings.Split(flagTag, ",")
		if len(parts) < 2 {
			return false
		}

		for _, attr := range parts[1:] {
			if strings.TrimSpace(attr) == key {
				return true
			}
		}
	}

	return false
}
