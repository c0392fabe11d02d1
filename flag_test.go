package gflags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/gflags/internal/values"
)

func TestNewFlag(t *testing.T) {
	t.Parallel()

	boolean := NewFlag("cache", values.ParseGenerated(new(bool)), "enable cache")
	assert.True(t, boolean.Boolean)
	assert.Equal(t, "false", boolean.DefValue)
	assert.True(t, boolean.UsingDefault)
	assert.False(t, boolean.Present)

	port := 8080
	plain := NewFlag("port", values.ParseGenerated(&port), "server port")
	assert.False(t, plain.Boolean)
	assert.Equal(t, "8080", plain.DefValue)
}

func TestFlagParse(t *testing.T) {
	t.Parallel()

	flag := NewFlag("port", values.ParseGenerated(new(int)), "")

	require.NoError(t, flag.Parse("99"))
	assert.True(t, flag.Present)
	assert.False(t, flag.UsingDefault)
	assert.Equal(t, 99, flag.Get())

	err := flag.Parse("not-a-number")
	require.ErrorIs(t, err, ErrFlags)

	var illegal *IllegalFlagValue
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "port", illegal.Name)
	assert.Equal(t, "not-a-number", illegal.Value)
}

func TestFlagSerialize(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Bool("cache", true, "")
	f.String("name", "joe", "")
	f.Var(&unsetValue{}, "token", "")

	// Booleans serialize as their argument-free spellings.
	assert.Equal(t, "--cache", f.Lookup("cache").Serialize())
	require.NoError(t, f.Set("cache", "false"))
	assert.Equal(t, "--nocache", f.Lookup("cache").Serialize())

	assert.Equal(t, "--name=joe", f.Lookup("name").Serialize())

	// Values reporting no content serialize to nothing.
	assert.Empty(t, f.Lookup("token").Serialize())
}

func TestFlagUnparse(t *testing.T) {
	t.Parallel()

	flag := NewFlag("port", values.ParseGenerated(new(int)), "")
	require.NoError(t, flag.Parse("99"))

	require.NoError(t, flag.Unparse())
	assert.Equal(t, 0, flag.Get())
	assert.False(t, flag.Present)
	assert.True(t, flag.UsingDefault)
}

// resettingValue tracks whether its dedicated reset logic ran.
type resettingValue struct {
	content string
	resets  int
}

func (r *resettingValue) String() string { return r.content }

func (r *resettingValue) Set(value string) error { r.content = value; return nil }

func (r *resettingValue) Type() string { return "resetting" }

func (r *resettingValue) Reset(defval string) error {
	r.content = defval
	r.resets++

	return nil
}

func TestFlagUnparseResetter(t *testing.T) {
	t.Parallel()

	value := &resettingValue{content: "initial"}
	flag := NewFlag("state", value, "")
	require.NoError(t, flag.Parse("changed"))

	require.NoError(t, flag.Unparse())
	assert.Equal(t, "initial", value.content)
	assert.Equal(t, 1, value.resets)
}

func TestFlagSetDefault(t *testing.T) {
	t.Parallel()

	flag := NewFlag("name", values.ParseGenerated(new(string)), "")

	// A flag on its default follows the new one.
	require.NoError(t, flag.SetDefault("ada"))
	assert.Equal(t, "ada", flag.Value.String())
	assert.Equal(t, "ada", flag.DefValue)
	assert.True(t, flag.UsingDefault)

	// An explicitly set flag keeps its value.
	require.NoError(t, flag.Parse("joe"))
	require.NoError(t, flag.SetDefault("eve"))
	assert.Equal(t, "joe", flag.Value.String())
	assert.Equal(t, "eve", flag.DefValue)
}

func TestValidatedOption(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("name", "joe", "", Validated(func(value string) error {
		if value == "" {
			return errors.New("name cannot be empty")
		}

		return nil
	}))

	require.NoError(t, f.Set("name", "ada"))

	// A failed check leaves the value untouched.
	err := f.Set("name", "")
	require.ErrorIs(t, err, ErrFlags)
	assert.Contains(t, err.Error(), "name cannot be empty")
	assert.Equal(t, "ada", f.Lookup("name").Value.String())
}

func TestChoicesOption(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("mode", "fast", "", Choices("fast", "slow"))

	assert.Equal(t, []string{"fast", "slow"}, f.Lookup("mode").Choices)

	require.NoError(t, f.Set("mode", "slow"))

	err := f.Set("mode", "medium")
	require.ErrorIs(t, err, ErrFlags)
	assert.Contains(t, err.Error(), "must be one of [fast slow]")
}

func TestFromEnvOption(t *testing.T) {
	t.Setenv("APP_COLOR", "green")

	f := NewFlagSet("app")
	f.String("color", "red", "", FromEnv("APP_COLOR"))

	flag := f.Lookup("color")
	assert.Equal(t, "green", flag.DefValue)
	assert.Equal(t, "green", flag.Value.String())
	assert.True(t, flag.UsingDefault)
}
