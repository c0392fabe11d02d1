package values

// validateValue wraps another Value and runs a validation function on
// the raw argument before the wrapped value parses it.
type validateValue struct {
	Value
	validateFunc func(val string) error
}

// NewValidated wraps the given value so that every Set call is checked
// by the validation function first. A nil function leaves the value
// untouched.
func NewValidated(val Value, validate func(val string) error) Value {
	if validate == nil {
		return val
	}

	return &validateValue{Value: val, validateFunc: validate}
}

func (v *validateValue) String() string {
	if v.Value == nil {
		return ""
	}

	return v.Value.String()
}

func (v *validateValue) Set(val string) error {
	if v.validateFunc != nil {
		if err := v.validateFunc(val); err != nil {
			return err
		}
	}

	return v.Value.Set(val)
}

// IsBoolFlag forwards the answer of the underlying value.
func (v *validateValue) IsBoolFlag() bool {
	if boolFlag, ok := v.Value.(BoolFlag); ok {
		return boolFlag.IsBoolFlag()
	}

	return false
}

// IsCumulative forwards the answer of the underlying value.
func (v *validateValue) IsCumulative() bool {
	if repeatable, ok := v.Value.(RepeatableFlag); ok {
		return repeatable.IsCumulative()
	}

	return false
}

// Get returns the native value of the underlying value when it
// provides one.
func (v *validateValue) Get() any {
	if getter, ok := v.Value.(Getter); ok {
		return getter.Get()
	}

	return nil
}

// Unwrap returns the wrapped value.
func (v *validateValue) Unwrap() Value { return v.Value }
