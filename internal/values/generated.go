package values

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// -- bool

type boolValue bool

func newBoolValue(ptr *bool) *boolValue {
	return (*boolValue)(ptr)
}

func (b *boolValue) Set(value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}

	*b = boolValue(parsed)

	return nil
}

func (b *boolValue) Get() any { return bool(*b) }

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

func (b *boolValue) Type() string { return "bool" }

// IsBoolFlag marks the flag as not requiring an argument.
func (b *boolValue) IsBoolFlag() bool { return true }

// -- string

type stringValue string

func newStringValue(ptr *string) *stringValue {
	return (*stringValue)(ptr)
}

func (s *stringValue) Set(value string) error {
	*s = stringValue(value)

	return nil
}

func (s *stringValue) Get() any { return string(*s) }

func (s *stringValue) String() string { return string(*s) }

func (s *stringValue) Type() string { return "string" }

// -- int

type intValue int

func newIntValue(ptr *int) *intValue {
	return (*intValue)(ptr)
}

func (i *intValue) Set(value string) error {
	parsed, err := strconv.ParseInt(value, 0, strconv.IntSize)
	if err != nil {
		return err
	}

	*i = intValue(parsed)

	return nil
}

func (i *intValue) Get() any { return int(*i) }

func (i *intValue) String() string { return strconv.Itoa(int(*i)) }

func (i *intValue) Type() string { return "int" }

// -- int64

type int64Value int64

func newInt64Value(ptr *int64) *int64Value {
	return (*int64Value)(ptr)
}

func (i *int64Value) Set(value string) error {
	parsed, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}

	*i = int64Value(parsed)

	return nil
}

func (i *int64Value) Get() any { return int64(*i) }

func (i *int64Value) String() string { return strconv.FormatInt(int64(*i), 10) }

func (i *int64Value) Type() string { return "int64" }

// -- uint

type uintValue uint

func newUintValue(ptr *uint) *uintValue {
	return (*uintValue)(ptr)
}

func (i *uintValue) Set(value string) error {
	parsed, err := strconv.ParseUint(value, 0, strconv.IntSize)
	if err != nil {
		return err
	}

	*i = uintValue(parsed)

	return nil
}

func (i *uintValue) Get() any { return uint(*i) }

func (i *uintValue) String() string { return strconv.FormatUint(uint64(*i), 10) }

func (i *uintValue) Type() string { return "uint" }

// -- float64

type float64Value float64

func newFloat64Value(ptr *float64) *float64Value {
	return (*float64Value)(ptr)
}

func (f *float64Value) Set(value string) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}

	*f = float64Value(parsed)

	return nil
}

func (f *float64Value) Get() any { return float64(*f) }

func (f *float64Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 64)
}

func (f *float64Value) Type() string { return "float64" }

// -- time.Duration

type durationValue time.Duration

func newDurationValue(ptr *time.Duration) *durationValue {
	return (*durationValue)(ptr)
}

func (d *durationValue) Set(value string) error {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return err
	}

	*d = durationValue(parsed)

	return nil
}

func (d *durationValue) Get() any { return time.Duration(*d) }

func (d *durationValue) String() string { return time.Duration(*d).String() }

func (d *durationValue) Type() string { return "duration" }

// -- []string

// stringSliceValue holds a comma-separated list of strings. Each
// occurrence of the flag replaces the whole list, so that the last
// occurrence on the command line wins, like any other flag.
type stringSliceValue struct {
	value *[]string
}

func newStringSliceValue(ptr *[]string) *stringSliceValue {
	return &stringSliceValue{value: ptr}
}

func (s *stringSliceValue) Set(value string) error {
	if value == "" {
		*s.value = []string{}

		return nil
	}

	*s.value = strings.Split(value, ",")

	return nil
}

func (s *stringSliceValue) Get() any { return *s.value }

func (s *stringSliceValue) String() string { return strings.Join(*s.value, ",") }

func (s *stringSliceValue) Type() string { return "stringSlice" }

// IsCumulative marks the flag as accepting several items per argument.
func (s *stringSliceValue) IsCumulative() bool { return true }

// -- []int

type intSliceValue struct {
	value *[]int
}

func newIntSliceValue(ptr *[]int) *intSliceValue {
	return &intSliceValue{value: ptr}
}

func (s *intSliceValue) Set(value string) error {
	if value == "" {
		*s.value = []int{}

		return nil
	}

	items := strings.Split(value, ",")
	parsed := make([]int, len(items))

	for pos, item := range items {
		num, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return err
		}

		parsed[pos] = num
	}

	*s.value = parsed

	return nil
}

func (s *intSliceValue) Get() any { return *s.value }

func (s *intSliceValue) String() string {
	items := make([]string, len(*s.value))
	for pos, num := range *s.value {
		items[pos] = strconv.Itoa(num)
	}

	return strings.Join(items, ",")
}

func (s *intSliceValue) Type() string { return "intSlice" }

func (s *intSliceValue) IsCumulative() bool { return true }

// -- map[string]string

// stringToStringValue holds a set of key=value pairs, written as a
// comma-separated list. Like slices, each occurrence replaces the
// whole map.
type stringToStringValue struct {
	value *map[string]string
}

func newStringToStringValue(ptr *map[string]string) *stringToStringValue {
	return &stringToStringValue{value: ptr}
}

func (m *stringToStringValue) Set(value string) error {
	out := make(map[string]string)

	if value != "" {
		for _, pair := range strings.Split(value, ",") {
			key, val, found := strings.Cut(pair, "=")
			if !found {
				return fmt.Errorf("%s must be formatted as key=value", pair)
			}

			out[key] = val
		}
	}

	*m.value = out

	return nil
}

func (m *stringToStringValue) Get() any { return *m.value }

func (m *stringToStringValue) String() string {
	keys := maps.Keys(*m.value)
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+(*m.value)[key])
	}

	return strings.Join(pairs, ",")
}

func (m *stringToStringValue) Type() string { return "stringToString" }

func (m *stringToStringValue) IsCumulative() bool { return true }

// ParseGenerated returns a Value for the common Go types that have a
// dedicated implementation above, or nil if the type has none.
func ParseGenerated(addr any) Value {
	switch ptr := addr.(type) {
	case *bool:
		return newBoolValue(ptr)
	case *string:
		return newStringValue(ptr)
	case *int:
		return newIntValue(ptr)
	case *int64:
		return newInt64Value(ptr)
	case *uint:
		return newUintValue(ptr)
	case *float64:
		return newFloat64Value(ptr)
	case *time.Duration:
		return newDurationValue(ptr)
	case *[]string:
		return newStringSliceValue(ptr)
	case *[]int:
		return newIntSliceValue(ptr)
	default:
		return nil
	}
}

// ParseGeneratedPtrs is the pointer-field counterpart of ParseGenerated:
// it allocates the target when needed and wraps the pointed-to value.
func ParseGeneratedPtrs(addr any) Value {
	switch ptr := addr.(type) {
	case **bool:
		if *ptr == nil {
			*ptr = new(bool)
		}

		return newBoolValue(*ptr)
	case **string:
		if *ptr == nil {
			*ptr = new(string)
		}

		return newStringValue(*ptr)
	case **int:
		if *ptr == nil {
			*ptr = new(int)
		}

		return newIntValue(*ptr)
	case **int64:
		if *ptr == nil {
			*ptr = new(int64)
		}

		return newInt64Value(*ptr)
	case **uint:
		if *ptr == nil {
			*ptr = new(uint)
		}

		return newUintValue(*ptr)
	case **float64:
		if *ptr == nil {
			*ptr = new(float64)
		}

		return newFloat64Value(*ptr)
	case **time.Duration:
		if *ptr == nil {
			*ptr = new(time.Duration)
		}

		return newDurationValue(*ptr)
	default:
		return nil
	}
}

// ParseGeneratedMap returns a Value for the map types that have a
// dedicated implementation, or nil to let the reflective fallback
// handle the type.
func ParseGeneratedMap(addr any) Value {
	switch ptr := addr.(type) {
	case *map[string]string:
		return newStringToStringValue(ptr)
	default:
		return nil
	}
}
