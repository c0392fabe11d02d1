package values

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// reflectiveValue is a fallback parser that uses reflection to handle
// any remaining type based on its Kind: named primitives, slices and
// maps of supported element types.
type reflectiveValue struct {
	value reflect.Value
}

// newReflectiveValue creates a new reflective parser.
func newReflectiveValue(val reflect.Value) Value {
	// For maps, we must ensure they are initialized before use.
	if val.Kind() == reflect.Map && val.IsNil() {
		val.Set(reflect.MakeMap(val.Type()))
	}

	return &reflectiveValue{value: val}
}

func (v *reflectiveValue) Set(s string) error {
	switch v.value.Kind() {
	// Handle primitive kinds directly.
	case reflect.String:
		v.value.SetString(s)
	case reflect.Bool:
		parsed, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}

		v.value.SetBool(parsed)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Handle time.Duration as a special case of int64.
		if v.value.Type() == reflect.TypeOf(time.Duration(0)) {
			duration, err := time.ParseDuration(s)
			if err != nil {
				return err
			}

			v.value.SetInt(int64(duration))

			return nil
		}

		num, err := strconv.ParseInt(s, 0, v.value.Type().Bits())
		if err != nil {
			return err
		}

		v.value.SetInt(num)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num, err := strconv.ParseUint(s, 0, v.value.Type().Bits())
		if err != nil {
			return err
		}

		v.value.SetUint(num)
	case reflect.Float32, reflect.Float64:
		num, err := strconv.ParseFloat(s, v.value.Type().Bits())
		if err != nil {
			return err
		}

		v.value.SetFloat(num)

	// Handle slices by recursively parsing their elements.
	case reflect.Slice:
		elem := reflect.New(v.value.Type().Elem()).Elem()

		elemParser := NewValue(elem)
		if elemParser == nil {
			return fmt.Errorf("unsupported slice element type: %v", v.value.Type().Elem())
		}

		if err := elemParser.Set(s); err != nil {
			return err
		}

		v.value.Set(reflect.Append(v.value, elem))

	// Handle maps by recursively parsing keys and values.
	case reflect.Map:
		rawKey, rawVal, found := strings.Cut(s, ":")
		if !found {
			return fmt.Errorf("map value must be in 'key:value' format, got %q", s)
		}

		key := reflect.New(v.value.Type().Key()).Elem()
		val := reflect.New(v.value.Type().Elem()).Elem()

		keyParser := NewValue(key)
		valParser := NewValue(val)

		if keyParser == nil || valParser == nil {
			return errors.New("unsupported map key or value type")
		}

		if err := keyParser.Set(rawKey); err != nil {
			return err
		}

		if err := valParser.Set(rawVal); err != nil {
			return err
		}

		v.value.SetMapIndex(key, val)

	default:
		return fmt.Errorf("unsupported type for conversion: %v", v.value.Type())
	}

	return nil
}

func (v *reflectiveValue) String() string {
	return fmt.Sprintf("%v", v.value.Interface())
}

func (v *reflectiveValue) Type() string {
	return v.value.Type().String()
}

// IsCumulative marks slice and map targets as accepting repeats.
func (v *reflectiveValue) IsCumulative() bool {
	return v.value.Kind() == reflect.Slice || v.value.Kind() == reflect.Map
}
