// Package parser scans Go structs for fields usable as command-line
// flags, turning tags and field types into flag descriptions that a
// registry can define.
package parser

import (
	"reflect"

	"github.com/reeflective/gflags/internal/errors"
)

// ParseStruct walks the exported fields of the struct pointed to by
// data and returns a flag description for each field that can back
// one. Nested structs become flag groups.
func ParseStruct(data any, optFuncs ...OptFunc) ([]*Flag, error) {
	if data == nil {
		return nil, errors.ErrNotPointerToStruct
	}

	opts := DefOpts().Apply(optFuncs...)

	var flags []*Flag

	handler := func(val reflect.Value, fld *reflect.StructField) (bool, error) {
		fieldFlags, found, err := ParseField(val, *fld, opts)
		if err != nil {
			return false, err
		}

		if found {
			flags = append(flags, fieldFlags...)
		}

		return true, nil
	}

	if err := Scan(data, handler); err != nil {
		return nil, err
	}

	return flags, nil
}

// ParseField inspects a single struct field and returns the flags it
// yields: one for a value field, several for a nested group, none for
// a field that is skipped.
func ParseField(val reflect.Value, fld reflect.StructField, opts *Opts) ([]*Flag, bool, error) {
	if (fld.PkgPath != "" && !fld.Anonymous) || val.Kind() == reflect.Func {
		return nil, false, nil
	}

	tag, none, err := GetFieldTag(fld)
	if err != nil {
		return nil, false, err
	}

	if skipField(tag, none, opts) {
		return nil, false, nil
	}

	if isGroup(val) {
		if !scanAsGroup(fld, tag, opts) {
			return nil, false, nil
		}

		flags, err := parseGroup(val, fld, tag, opts)
		if err != nil {
			return nil, false, err
		}

		return flags, true, nil
	}

	flag, found, err := parseSingleFlag(val, fld, tag, opts)
	if err != nil || !found {
		return nil, false, err
	}

	return []*Flag{flag}, true, nil
}

// skipField checks if a field should be ignored based on its tags.
func skipField(tag *MultiTag, none bool, opts *Opts) bool {
	if val, isSet := tag.Get(opts.FlagTag); isSet && val == "-" {
		return true
	}
	if _, isSet := tag.Get("no-flag"); isSet {
		return true
	}

	return none && !opts.ParseAll
}

// scanAsGroup reports whether a struct field should be recursed into:
// anonymous structs always are, named ones only when marked as a group
// or when every field is being parsed.
func scanAsGroup(fld reflect.StructField, tag *MultiTag, opts *Opts) bool {
	if fld.Anonymous || opts.ParseAll {
		return true
	}

	for _, marker := range []string{"group", "module", "prefix"} {
		if _, ok := tag.Get(marker); ok {
			return true
		}
	}

	return false
}

// parseGroup scans a nested struct, prefixing and namespacing its
// flags according to the group tags.
func parseGroup(val reflect.Value, fld reflect.StructField, tag *MultiTag, opts *Opts) ([]*Flag, error) {
	gopts := groupOpts(fld, tag, opts)

	ptrval := val
	if ptrval.Kind() != reflect.Ptr {
		ptrval = val.Addr()
	} else if ptrval.IsNil() {
		ptrval.Set(reflect.New(ptrval.Type().Elem()))
	}

	var flags []*Flag

	scanner := func(val reflect.Value, sfield *reflect.StructField) (bool, error) {
		fieldFlags, found, err := ParseField(val, *sfield, gopts)
		if err != nil {
			return false, err
		}

		if found {
			flags = append(flags, fieldFlags...)
		}

		return true, nil
	}

	if err := Scan(ptrval.Interface(), scanner); err != nil {
		return nil, err
	}

	return flags, nil
}

// groupOpts derives the scanning options for a nested group from its
// tags: the group name becomes the help module, and named groups
// prefix the flags they contain.
func groupOpts(fld reflect.StructField, tag *MultiTag, opts *Opts) *Opts {
	gopts := opts.Copy()

	if module, ok := tag.Get("module"); ok {
		gopts.Module = module
	} else if group, ok := tag.Get("group"); ok {
		gopts.Module = group
	}

	if prefix, ok := tag.Get("prefix"); ok {
		gopts.Prefix += prefix
	} else if !fld.Anonymous {
		gopts.Prefix += CamelToFlag(fld.Name, gopts.FlagDivider) + gopts.FlagDivider
	} else if !gopts.Flatten {
		gopts.Prefix += CamelToFlag(fld.Type.Name(), gopts.FlagDivider) + gopts.FlagDivider
	}

	if envPrefix, ok := tag.Get("envprefix"); ok {
		gopts.EnvPrefix = envPrefix
	}

	return gopts
}
