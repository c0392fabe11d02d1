package values

import (
	"encoding"
	"fmt"
	"reflect"
)

// textUnmarshalerValue is a generic Value adapter for any type
// implementing encoding.TextUnmarshaler, such as net.IP or time.Time.
type textUnmarshalerValue struct {
	value encoding.TextUnmarshaler
}

// newTextUnmarshaler creates a new value that wraps a type implementing encoding.TextUnmarshaler.
func newTextUnmarshaler(val encoding.TextUnmarshaler) Value {
	return &textUnmarshalerValue{value: val}
}

func (v *textUnmarshalerValue) Set(s string) error {
	return v.value.UnmarshalText([]byte(s))
}

func (v *textUnmarshalerValue) String() string {
	// For symmetrical behavior, we check for the Marshaler interface.
	if marshaler, ok := v.value.(encoding.TextMarshaler); ok {
		text, err := marshaler.MarshalText()
		if err == nil {
			return string(text)
		}
	}

	// Fallback to the fmt.Stringer interface.
	if stringer, ok := v.value.(fmt.Stringer); ok {
		return stringer.String()
	}

	return ""
}

func (v *textUnmarshalerValue) Type() string {
	// Provide the type name for help messages.
	return reflect.TypeOf(v.value).Elem().Name()
}
