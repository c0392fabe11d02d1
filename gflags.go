// Package gflags implements a process-wide flag registry and
// command-line parsing engine. Flags are defined near the code that
// uses them, in any number of packages, and a single registry parses
// the command line, expands flag files, runs validators, and renders
// help grouped by the module which defined each flag.
//
// The primary workflow is to define flags with the typed helpers
// (Bool, String, Duration, ...), then hand os.Args to Parse. Flags
// can also be bound from struct fields with Bind, imported from
// pflag sets, or attached to a cobra command with shell completions
// generated by carapace.
//
// For useful, pre-built flag types like Counter or HexBytes, see the
// subpackage at "github.com/reeflective/gflags/types".
package gflags

import (
	"os"
	"path/filepath"
	"time"

	"github.com/reeflective/gflags/internal/values"
	"github.com/reeflective/gflags/types"
)

// Value is the interface for custom flag types. Optional interfaces
// refine a value's behavior: values.BoolFlag marks a flag as boolean,
// values.Getter exposes the native value, values.RepeatableFlag marks
// values accepting several occurrences.
type Value = values.Value

// CommandLine is the default, process-wide flag registry. The
// package-level definition and parsing functions operate on it.
var CommandLine = NewFlagSet(filepath.Base(os.Args[0]))

// Parse parses the process command line, os.Args, against the default
// registry, and returns the positional arguments.
func Parse() ([]string, error) {
	return CommandLine.Parse(os.Args)
}

// Parsed reports whether the default registry has parsed a command
// line.
func Parsed() bool {
	return CommandLine.Parsed()
}

// Lookup returns the flag registered under the given name in the
// default registry, or nil.
func Lookup(name string) *Flag {
	return CommandLine.Lookup(name)
}

// Set assigns a value to the named flag of the default registry.
func Set(name, value string) error {
	return CommandLine.Set(name, value)
}

// Get returns the current native value of the named flag of the
// default registry.
func Get(name string) (any, error) {
	return CommandLine.Get(name)
}

//
// Definition helpers on the default registry ----------------------------- //
//

// Var registers a flag backed by the given value on the default
// registry.
func Var(value Value, name, usage string, options ...FlagOption) *Flag {
	return CommandLine.Var(value, name, usage, options...)
}

// Bool defines a bool flag on the default registry.
func Bool(name string, value bool, usage string, options ...FlagOption) *bool {
	return CommandLine.Bool(name, value, usage, options...)
}

// BoolVar defines a bool flag on the default registry, stored in p.
func BoolVar(p *bool, name string, value bool, usage string, options ...FlagOption) {
	CommandLine.BoolVar(p, name, value, usage, options...)
}

// String defines a string flag on the default registry.
func String(name, value, usage string, options ...FlagOption) *string {
	return CommandLine.String(name, value, usage, options...)
}

// StringVar defines a string flag on the default registry, stored in p.
func StringVar(p *string, name, value, usage string, options ...FlagOption) {
	CommandLine.StringVar(p, name, value, usage, options...)
}

// Int defines an int flag on the default registry.
func Int(name string, value int, usage string, options ...FlagOption) *int {
	return CommandLine.Int(name, value, usage, options...)
}

// IntVar defines an int flag on the default registry, stored in p.
func IntVar(p *int, name string, value int, usage string, options ...FlagOption) {
	CommandLine.IntVar(p, name, value, usage, options...)
}

// Int64 defines an int64 flag on the default registry.
func Int64(name string, value int64, usage string, options ...FlagOption) *int64 {
	return CommandLine.Int64(name, value, usage, options...)
}

// Int64Var defines an int64 flag on the default registry, stored in p.
func Int64Var(p *int64, name string, value int64, usage string, options ...FlagOption) {
	CommandLine.Int64Var(p, name, value, usage, options...)
}

// Uint defines a uint flag on the default registry.
func Uint(name string, value uint, usage string, options ...FlagOption) *uint {
	return CommandLine.Uint(name, value, usage, options...)
}

// UintVar defines a uint flag on the default registry, stored in p.
func UintVar(p *uint, name string, value uint, usage string, options ...FlagOption) {
	CommandLine.UintVar(p, name, value, usage, options...)
}

// Float64 defines a float64 flag on the default registry.
func Float64(name string, value float64, usage string, options ...FlagOption) *float64 {
	return CommandLine.Float64(name, value, usage, options...)
}

// Float64Var defines a float64 flag on the default registry, stored in p.
func Float64Var(p *float64, name string, value float64, usage string, options ...FlagOption) {
	CommandLine.Float64Var(p, name, value, usage, options...)
}

// Duration defines a time.Duration flag on the default registry.
func Duration(name string, value time.Duration, usage string, options ...FlagOption) *time.Duration {
	return CommandLine.Duration(name, value, usage, options...)
}

// DurationVar defines a time.Duration flag on the default registry,
// stored in p.
func DurationVar(p *time.Duration, name string, value time.Duration, usage string, options ...FlagOption) {
	CommandLine.DurationVar(p, name, value, usage, options...)
}

// StringSlice defines a []string flag on the default registry.
func StringSlice(name string, value []string, usage string, options ...FlagOption) *[]string {
	return CommandLine.StringSlice(name, value, usage, options...)
}

// StringSliceVar defines a []string flag on the default registry,
// stored in p.
func StringSliceVar(p *[]string, name string, value []string, usage string, options ...FlagOption) {
	CommandLine.StringSliceVar(p, name, value, usage, options...)
}

// IntSlice defines a []int flag on the default registry.
func IntSlice(name string, value []int, usage string, options ...FlagOption) *[]int {
	return CommandLine.IntSlice(name, value, usage, options...)
}

// IntSliceVar defines a []int flag on the default registry, stored in p.
func IntSliceVar(p *[]int, name string, value []int, usage string, options ...FlagOption) {
	CommandLine.IntSliceVar(p, name, value, usage, options...)
}

// StringToString defines a map[string]string flag on the default
// registry.
func StringToString(name string, value map[string]string, usage string, options ...FlagOption) *map[string]string {
	return CommandLine.StringToString(name, value, usage, options...)
}

// StringToStringVar defines a map[string]string flag on the default
// registry, stored in p.
func StringToStringVar(p *map[string]string, name string, value map[string]string, usage string, options ...FlagOption) {
	CommandLine.StringToStringVar(p, name, value, usage, options...)
}

// Count defines a counter flag on the default registry.
func Count(name, usage string, options ...FlagOption) *types.Counter {
	return CommandLine.Count(name, usage, options...)
}

// CountVar defines a counter flag on the default registry, stored in p.
func CountVar(p *types.Counter, name, usage string, options ...FlagOption) {
	CommandLine.CountVar(p, name, usage, options...)
}
