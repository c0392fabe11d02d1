package gflags

import (
	"time"

	"github.com/reeflective/gflags/internal/values"
	"github.com/reeflective/gflags/types"
)

// Var registers a flag backed by the given value and returns it. Flags
// are meant to be defined at program startup: definition problems,
// such as a duplicate name, cause a panic.
func (f *FlagSet) Var(value Value, name, usage string, options ...FlagOption) *Flag {
	flag := NewFlag(name, value, usage)

	for _, option := range options {
		option(flag)
	}

	if flag.Module == "" {
		flag.Module = mainModule
	}

	if err := f.Register(flag); err != nil {
		panic(err)
	}

	f.registerFlagByModule(flag.Module, flag)

	if flag.key {
		if err := f.DeclareKeyFlag(flag.Module, flag.Name); err != nil {
			panic(err)
		}
	}

	return flag
}

// BoolVar defines a bool flag stored in p.
func (f *FlagSet) BoolVar(p *bool, name string, value bool, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Bool defines a bool flag and returns a pointer to its value.
func (f *FlagSet) Bool(name string, value bool, usage string, options ...FlagOption) *bool {
	p := new(bool)
	f.BoolVar(p, name, value, usage, options...)

	return p
}

// StringVar defines a string flag stored in p.
func (f *FlagSet) StringVar(p *string, name, value, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// String defines a string flag and returns a pointer to its value.
func (f *FlagSet) String(name, value, usage string, options ...FlagOption) *string {
	p := new(string)
	f.StringVar(p, name, value, usage, options...)

	return p
}

// IntVar defines an int flag stored in p.
func (f *FlagSet) IntVar(p *int, name string, value int, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Int defines an int flag and returns a pointer to its value.
func (f *FlagSet) Int(name string, value int, usage string, options ...FlagOption) *int {
	p := new(int)
	f.IntVar(p, name, value, usage, options...)

	return p
}

// Int64Var defines an int64 flag stored in p.
func (f *FlagSet) Int64Var(p *int64, name string, value int64, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Int64 defines an int64 flag and returns a pointer to its value.
func (f *FlagSet) Int64(name string, value int64, usage string, options ...FlagOption) *int64 {
	p := new(int64)
	f.Int64Var(p, name, value, usage, options...)

	return p
}

// UintVar defines a uint flag stored in p.
func (f *FlagSet) UintVar(p *uint, name string, value uint, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Uint defines a uint flag and returns a pointer to its value.
func (f *FlagSet) Uint(name string, value uint, usage string, options ...FlagOption) *uint {
	p := new(uint)
	f.UintVar(p, name, value, usage, options...)

	return p
}

// Float64Var defines a float64 flag stored in p.
func (f *FlagSet) Float64Var(p *float64, name string, value float64, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Float64 defines a float64 flag and returns a pointer to its value.
func (f *FlagSet) Float64(name string, value float64, usage string, options ...FlagOption) *float64 {
	p := new(float64)
	f.Float64Var(p, name, value, usage, options...)

	return p
}

// DurationVar defines a time.Duration flag stored in p.
func (f *FlagSet) DurationVar(p *time.Duration, name string, value time.Duration, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// Duration defines a time.Duration flag and returns a pointer to its
// value.
func (f *FlagSet) Duration(name string, value time.Duration, usage string, options ...FlagOption) *time.Duration {
	p := new(time.Duration)
	f.DurationVar(p, name, value, usage, options...)

	return p
}

// StringSliceVar defines a []string flag stored in p. Arguments are
// comma-split, and each occurrence replaces the previous value.
func (f *FlagSet) StringSliceVar(p *[]string, name string, value []string, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// StringSlice defines a []string flag and returns a pointer to its
// value.
func (f *FlagSet) StringSlice(name string, value []string, usage string, options ...FlagOption) *[]string {
	p := new([]string)
	f.StringSliceVar(p, name, value, usage, options...)

	return p
}

// IntSliceVar defines a []int flag stored in p. Arguments are
// comma-split, and each occurrence replaces the previous value.
func (f *FlagSet) IntSliceVar(p *[]int, name string, value []int, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGenerated(p), name, usage, options...)
}

// IntSlice defines a []int flag and returns a pointer to its value.
func (f *FlagSet) IntSlice(name string, value []int, usage string, options ...FlagOption) *[]int {
	p := new([]int)
	f.IntSliceVar(p, name, value, usage, options...)

	return p
}

// StringToStringVar defines a map[string]string flag stored in p.
// Arguments are comma-split into key=value pairs, and each occurrence
// replaces the previous value.
func (f *FlagSet) StringToStringVar(p *map[string]string, name string, value map[string]string, usage string, options ...FlagOption) {
	*p = value
	f.Var(values.ParseGeneratedMap(p), name, usage, options...)
}

// StringToString defines a map[string]string flag and returns a
// pointer to its value.
func (f *FlagSet) StringToString(name string, value map[string]string, usage string, options ...FlagOption) *map[string]string {
	p := new(map[string]string)
	f.StringToStringVar(p, name, value, usage, options...)

	return p
}

// CountVar defines a counter flag stored in p: each occurrence
// without a value increments it.
func (f *FlagSet) CountVar(p *types.Counter, name, usage string, options ...FlagOption) {
	f.Var(p, name, usage, options...)
}

// Count defines a counter flag and returns a pointer to its value.
func (f *FlagSet) Count(name, usage string, options ...FlagOption) *types.Counter {
	p := new(types.Counter)
	f.CountVar(p, name, usage, options...)

	return p
}
