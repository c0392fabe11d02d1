package parser

import (
	"reflect"
	"strings"
)

// CamelToFlag transforms s from CamelCase to flag-case.
func CamelToFlag(s, flagDivider string) string {
	splitted := split(s)

	return strings.ToLower(strings.Join(splitted, flagDivider))
}

// FlagToEnv transforms s from flag-case to CAMEL_CASE.
func FlagToEnv(s, flagDivider, envDivider string) string {
	return strings.ToUpper(strings.ReplaceAll(s, flagDivider, envDivider))
}

// isBool reports whether a field type is a boolean, through at most
// one level of pointer indirection.
func isBool(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Kind() == reflect.Bool
}

// isGroup reports whether a field value is a struct (or a pointer to
// one) holding nested flags, as opposed to a single flag value such
// as time.Time, which parses from a single string.
func isGroup(value reflect.Value) bool {
	return (value.Kind() == reflect.Struct ||
		(value.Kind() == reflect.Ptr && value.Type().Elem().Kind() == reflect.Struct)) &&
		!isSingleValue(value)
}
