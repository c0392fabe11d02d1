package values

import (
	"encoding"
	"reflect"
)

// mapAllowedKinds lists the key kinds accepted for map-backed flags.
var mapAllowedKinds = []reflect.Kind{
	reflect.String,
	reflect.Bool,
	reflect.Int,
	reflect.Int8,
	reflect.Int16,
	reflect.Int32,
	reflect.Int64,
	reflect.Uint,
	reflect.Uint8,
	reflect.Uint16,
	reflect.Uint32,
	reflect.Uint64,
}

// NewValue creates a new value instance for a flag based on its
// reflect.Value. It uses a tiered strategy to find the best way to
// handle the type.
func NewValue(val reflect.Value) Value {
	if val.Kind() == reflect.Ptr && val.IsNil() {
		val.Set(reflect.New(val.Type().Elem()))
	}

	// 1. Direct Value implementation:
	if val.CanInterface() {
		if v, ok := val.Interface().(Value); ok {
			return v
		}
	}

	if val.CanAddr() && val.Addr().CanInterface() {
		if v, ok := val.Addr().Interface().(Value); ok {
			return v
		}
	}

	// 2. Standard library text unmarshaling:
	if val.CanAddr() && val.Addr().CanInterface() {
		if unmarshaler, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return newTextUnmarshaler(unmarshaler)
		}
	}

	// 3. Known Go types (using generated parsers):
	if val.CanAddr() && val.Addr().CanInterface() {
		addr := val.Addr().Interface()
		if v := ParseGenerated(addr); v != nil {
			return v
		}

		if v := ParseGeneratedPtrs(addr); v != nil {
			return v
		}
	}

	// 4. Maps must be treated differently
	if val.Kind() == reflect.Map {
		if !anyOf(mapAllowedKinds, val.Type().Key().Kind()) {
			return nil
		}

		if val.IsNil() {
			val.Set(reflect.MakeMap(val.Type()))
		}

		if v := ParseGeneratedMap(val.Addr().Interface()); v != nil {
			return v
		}
	}

	// 5. Dereference pointers if we need.
	if val.Kind() == reflect.Ptr {
		return NewValue(val.Elem())
	}

	// 6. Reflective Parser Fallback:
	return newReflectiveValue(val)
}

func anyOf(kinds []reflect.Kind, kind reflect.Kind) bool {
	for _, candidate := range kinds {
		if candidate == kind {
			return true
		}
	}

	return false
}
