package gflags

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Bool("cache", true, "")
	f.String("name", "joe", "")
	f.Int("port", 8080, "")
	f.Int64("offset", -5, "")
	f.Uint("workers", 4, "")
	f.Float64("ratio", 0.5, "")
	f.Duration("timeout", 3*time.Second, "")
	f.StringSlice("names", []string{"a", "b"}, "")
	f.IntSlice("ports", []int{80, 443}, "")
	f.StringToString("labels", map[string]string{"env": "dev"}, "")
	f.Count("verbose", "")
	f.MarkAsParsed()

	cache, err := f.GetBool("cache")
	require.NoError(t, err)
	assert.True(t, cache)

	name, err := f.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "joe", name)

	port, err := f.GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	offset, err := f.GetInt64("offset")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), offset)

	workers, err := f.GetUint("workers")
	require.NoError(t, err)
	assert.Equal(t, uint(4), workers)

	ratio, err := f.GetFloat64("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ratio, 0.0001)

	timeout, err := f.GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)

	names, err := f.GetStringSlice("names")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	ports, err := f.GetIntSlice("ports")
	require.NoError(t, err)
	assert.Equal(t, []int{80, 443}, ports)

	labels, err := f.GetStringToString("labels")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "dev"}, labels)

	require.NoError(t, f.Set("verbose", "3"))
	verbose, err := f.GetCount("verbose")
	require.NoError(t, err)
	assert.Equal(t, 3, verbose)
}

func TestTypedGettersMismatch(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("name", "joe", "")
	f.MarkAsParsed()

	_, err := f.GetInt("name")
	require.ErrorIs(t, err, ErrFlags)
	assert.Contains(t, err.Error(), "holds a value of type string, not int")
}

func TestTypedGettersUnknown(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.MarkAsParsed()

	_, err := f.GetBool("missing")
	require.ErrorIs(t, err, ErrFlags)

	var unrecognized *UnrecognizedFlagError
	require.ErrorAs(t, err, &unrecognized)
}
