package values

import (
	"strconv"
)

// Inverter is a Value that inverts the boolean value it wraps before
// handing it to the target. It backs the `--noflag` spelling of every
// boolean flag exported to foreign flag sets.
type Inverter struct {
	// Target is the value that will be inverted when this Inverter is set.
	Target Value
}

// String returns the string representation of the target's value.
func (i *Inverter) String() string {
	return i.Target.String()
}

// IsBoolFlag makes the Inverter satisfy the BoolFlag interface, so
// that the negated form does not require an argument either.
func (i *Inverter) IsBoolFlag() bool {
	return true
}

// Set parses the input string as a boolean, inverts it, and sets the
// inverted value on the target.
func (i *Inverter) Set(s string) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	return i.Target.Set(strconv.FormatBool(!val))
}

// Type returns the type of the target value.
func (i *Inverter) Type() string {
	return i.Target.Type()
}

// Get returns the target's native value when it provides one.
func (i *Inverter) Get() any {
	if getter, ok := i.Target.(Getter); ok {
		return getter.Get()
	}

	return nil
}

// Unwrap returns the target value.
func (i *Inverter) Unwrap() Value { return i.Target }
