package gflags

import (
	"time"
)

// getValue returns the native value of the named flag, converted to T.
func getValue[T any](f *FlagSet, name string) (T, error) {
	var zero T

	value, err := f.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, newFlagsErrorf("flag --%s holds a value of type %T, not %T", name, value, zero)
	}

	return typed, nil
}

// GetBool returns the value of the named bool flag.
func (f *FlagSet) GetBool(name string) (bool, error) {
	return getValue[bool](f, name)
}

// GetString returns the value of the named string flag.
func (f *FlagSet) GetString(name string) (string, error) {
	return getValue[string](f, name)
}

// GetInt returns the value of the named int flag.
func (f *FlagSet) GetInt(name string) (int, error) {
	return getValue[int](f, name)
}

// GetInt64 returns the value of the named int64 flag.
func (f *FlagSet) GetInt64(name string) (int64, error) {
	return getValue[int64](f, name)
}

// GetUint returns the value of the named uint flag.
func (f *FlagSet) GetUint(name string) (uint, error) {
	return getValue[uint](f, name)
}

// GetFloat64 returns the value of the named float64 flag.
func (f *FlagSet) GetFloat64(name string) (float64, error) {
	return getValue[float64](f, name)
}

// GetDuration returns the value of the named time.Duration flag.
func (f *FlagSet) GetDuration(name string) (time.Duration, error) {
	return getValue[time.Duration](f, name)
}

// GetStringSlice returns the value of the named []string flag.
func (f *FlagSet) GetStringSlice(name string) ([]string, error) {
	return getValue[[]string](f, name)
}

// GetIntSlice returns the value of the named []int flag.
func (f *FlagSet) GetIntSlice(name string) ([]int, error) {
	return getValue[[]int](f, name)
}

// GetStringToString returns the value of the named map[string]string
// flag.
func (f *FlagSet) GetStringToString(name string) (map[string]string, error) {
	return getValue[map[string]string](f, name)
}

// GetCount returns the value of the named counter flag.
func (f *FlagSet) GetCount(name string) (int, error) {
	return getValue[int](f, name)
}
