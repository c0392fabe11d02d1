package gflags

import (
	"cmp"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/reeflective/gflags/internal/validation"
)

// validatorIndex numbers validators in creation order, so that
// assertion runs them oldest first even when they are attached to
// different flags or different flag sets.
var validatorIndex atomic.Int64

// Validator checks a constraint over the current values of one or
// more flags. Validators attached to a flag run right after that flag
// is assigned, and every validator runs once more over the whole
// registry at the end of a parse.
type Validator struct {
	names []string
	check func(values map[string]any) error
	index int64
}

// NewValidator returns a validator running check against the current
// values of the named flags, passed as a name-indexed map.
func NewValidator(check func(values map[string]any) error, names ...string) *Validator {
	return &Validator{
		names: slices.Clone(names),
		check: check,
		index: validatorIndex.Add(1),
	}
}

// FlagNames returns the names of the flags the validator inspects.
func (v *Validator) FlagNames() []string {
	return slices.Clone(v.names)
}

// Verify runs the check against the current values of the inspected
// flags in the given flag set.
func (v *Validator) Verify(f *FlagSet) error {
	values := make(map[string]any, len(v.names))

	for _, name := range v.names {
		if flag, ok := f.flags[name]; ok {
			values[name] = flag.Get()
		}
	}

	return v.check(values)
}

// describeFlags renders the inspected flags with their current values,
// the way validation failure messages report them.
func (v *Validator) describeFlags(f *FlagSet) string {
	if len(v.names) == 1 {
		return fmt.Sprintf("flag --%s=%v", v.names[0], currentValue(f, v.names[0]))
	}

	pairs := make([]string, 0, len(v.names))

	for _, name := range v.names {
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, currentValue(f, name)))
	}

	return "flags " + strings.Join(pairs, ", ")
}

func currentValue(f *FlagSet, name string) any {
	if flag, ok := f.flags[name]; ok {
		return flag.Get()
	}

	return nil
}

// RegisterValidator attaches the validator to every flag it inspects.
// All the named flags must already be registered. Current values are
// not checked here: the first assertion happens when one of the flags
// is next assigned, or at the end of a parse.
func (f *FlagSet) RegisterValidator(validator *Validator) error {
	flags := make([]*Flag, 0, len(validator.names))

	for _, name := range validator.names {
		flag, err := f.GetFlag(name)
		if err != nil {
			return err
		}

		flags = append(flags, flag)
	}

	for _, flag := range flags {
		flag.Validators = append(flag.Validators, validator)
	}

	return nil
}

// RegisterFlagValidator attaches a constraint to a single flag: check
// receives the flag's native value.
func (f *FlagSet) RegisterFlagValidator(name string, check func(value any) error) error {
	return f.RegisterValidator(NewValidator(func(values map[string]any) error {
		return check(values[name])
	}, name))
}

// RegisterMultiFlagsValidator attaches a constraint spanning several
// flags: check receives their native values in a name-indexed map.
func (f *FlagSet) RegisterMultiFlagsValidator(check func(values map[string]any) error, names ...string) error {
	return f.RegisterValidator(NewValidator(check, names...))
}

// ValidateTag returns a single-flag check enforcing a validation tag
// from github.com/go-playground/validator, such as "ip" or
// "min=1,max=65535". Use it with RegisterFlagValidator.
func ValidateTag(tag string) func(value any) error {
	return func(value any) error {
		return validation.ValidateTag(value, tag)
	}
}

// assertValidators runs the given validators, deduplicated and in
// creation order. The first failure aborts the run.
func (f *FlagSet) assertValidators(validators []*Validator) error {
	seen := make(map[*Validator]bool, len(validators))
	run := make([]*Validator, 0, len(validators))

	for _, validator := range validators {
		if validator != nil && !seen[validator] {
			seen[validator] = true
			run = append(run, validator)
		}
	}

	slices.SortFunc(run, func(a, b *Validator) int {
		return cmp.Compare(a.index, b.index)
	})

	for _, validator := range run {
		if err := validator.Verify(f); err != nil {
			failure := &IllegalFlagValue{
				Flags: validator.describeFlags(f),
				Err:   err,
			}

			if len(validator.names) == 1 {
				name := validator.names[0]
				failure.Name = name
				failure.Value = fmt.Sprintf("%v", currentValue(f, name))
			}

			return failure
		}
	}

	return nil
}

// assertAllValidators runs every validator attached to any flag of the
// set, in creation order.
func (f *FlagSet) assertAllValidators() error {
	var all []*Validator

	for _, flag := range f.flags {
		all = append(all, flag.Validators...)
	}

	return f.assertValidators(all)
}
