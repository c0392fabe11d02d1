package gflags

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/gflags/internal/values"
)

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	port := f.Int("port", 8080, "server port", Shorthand("p"))
	require.NotNil(t, port)

	assert.True(t, f.Contains("port"))
	assert.True(t, f.Contains("p"))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"p", "port"}, f.RegisteredFlags())

	flag := f.Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "8080", flag.DefValue)
	assert.Same(t, flag, f.Lookup("p"))

	_, err := f.GetFlag("missing")
	require.ErrorIs(t, err, ErrFlags)

	var unrecognized *UnrecognizedFlagError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "missing", unrecognized.Name)
}

func TestRegisterCollisions(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("name", "joe", "the user name", Module("auth"))

	// A module re-registering an identical definition is a redundant
	// import, silently skipped.
	same := NewFlag("name", values.ParseGenerated(new(string)), "the user name")
	same.DefValue = "joe"
	same.Module = "auth"
	require.NoError(t, f.Register(same))
	assert.NotSame(t, same, f.Lookup("name"))

	// Any other redefinition collides.
	other := NewFlag("name", values.ParseGenerated(new(string)), "something else")
	other.Module = "users"
	err := f.Register(other)
	require.ErrorIs(t, err, ErrFlags)

	var duplicate *DuplicateFlagError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "name", duplicate.Name)
	assert.Equal(t, "auth", duplicate.FirstModule)
	assert.Equal(t, "users", duplicate.SecondModule)

	// Shorthands collide like long names do.
	f.Bool("quick", false, "", Shorthand("q"))
	short := NewFlag("quiet", values.ParseGenerated(new(bool)), "")
	short.Shorthand = "q"
	require.ErrorIs(t, f.Register(short), ErrFlags)

	// Shorthands are one character at most.
	long := NewFlag("loud", values.ParseGenerated(new(bool)), "")
	long.Shorthand = "ld"
	require.ErrorIs(t, f.Register(long), ErrShortNameTooLong)
}

func TestRegisterOverride(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("color", "red", "display color")
	require.NoError(t, f.Set("color", "blue"))

	// An explicitly set flag is not replaced by an incoming default.
	replacement := NewFlag("color", values.ParseGenerated(new(string)), "display color")
	replacement.AllowOverride = true
	require.NoError(t, f.Register(replacement))
	assert.NotSame(t, replacement, f.Lookup("color"))
	assert.Equal(t, "blue", f.Lookup("color").Value.String())

	// An incoming flag with a set value does replace it.
	forced := NewFlag("color", values.ParseGenerated(new(string)), "display color")
	forced.AllowOverride = true
	require.NoError(t, forced.Parse("green"))
	require.NoError(t, f.Register(forced))
	assert.Same(t, forced, f.Lookup("color"))
}

func TestDeregister(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Int("retries", 3, "", Shorthand("r"))

	require.NoError(t, f.Deregister("r"))
	assert.False(t, f.Contains("r"))
	assert.True(t, f.Contains("retries"))

	// Module bookkeeping survives while the flag is reachable.
	assert.Equal(t, "main", f.FindModuleDefiningFlag("retries"))

	require.NoError(t, f.Deregister("retries"))
	assert.Empty(t, f.FlagsForModule("main"))

	require.ErrorIs(t, f.Deregister("retries"), ErrFlags)
}

func TestAppendAndRemoveFlagSet(t *testing.T) {
	t.Parallel()

	base := NewFlagSet("base")
	base.String("host", "localhost", "", Module("net"))

	extra := NewFlagSet("extra")
	extra.Int("port", 80, "", Module("net"), Key())

	require.NoError(t, base.AppendFlagSet(extra))
	assert.True(t, base.Contains("port"))
	assert.Equal(t, "net", base.FindModuleDefiningFlag("port"))

	keyNames := make([]string, 0)
	for _, flag := range base.KeyFlagsForModule("net") {
		keyNames = append(keyNames, flag.Name)
	}
	assert.Contains(t, keyNames, "port")

	// Appending a conflicting registry fails, naming both sides.
	conflicting := NewFlagSet("conflicting")
	conflicting.Bool("host", false, "not the same host")
	err := base.AppendFlagSet(conflicting)
	require.ErrorIs(t, err, ErrFlags)

	var duplicate *DuplicateFlagError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "base", duplicate.FirstRegistry)
	assert.Equal(t, "conflicting", duplicate.SecondRegistry)
	assert.Contains(t, err.Error(), "registries base and conflicting")

	require.NoError(t, base.RemoveFlagSet(extra))
	assert.False(t, base.Contains("port"))
	assert.True(t, base.Contains("host"))
}

func TestModulesAndKeyFlags(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("verbosity", "info", "", Module("logging"))
	f.String("dbhost", "", "", Module("db"))

	assert.Equal(t, "logging", f.FindModuleDefiningFlag("verbosity"))
	assert.Empty(t, f.FindModuleDefiningFlag("missing"))

	require.NoError(t, f.DeclareKeyFlag("db", "verbosity"))

	keyNames := make([]string, 0)
	for _, flag := range f.KeyFlagsForModule("db") {
		keyNames = append(keyNames, flag.Name)
	}
	assert.ElementsMatch(t, []string{"dbhost", "verbosity"}, keyNames)

	// Redeclaring is idempotent.
	require.NoError(t, f.DeclareKeyFlag("db", "verbosity"))
	assert.Len(t, f.KeyFlagsForModule("db"), 2)

	require.ErrorIs(t, f.DeclareKeyFlag("db", "missing"), ErrFlags)
}

func TestHideFlag(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("secret", "hunter2", "")
	f.MarkAsParsed()

	require.ErrorIs(t, f.HideFlag("missing"), ErrFlags)
	require.NoError(t, f.HideFlag("secret"))

	_, err := f.Get("secret")
	require.ErrorIs(t, err, ErrFlags)
	require.ErrorIs(t, f.Set("secret", "changed"), ErrFlags)

	// The registry itself still knows the flag.
	assert.NotNil(t, f.Lookup("secret"))
}

func TestGetAndSet(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Int("port", 1, "")
	f.MarkAsParsed()

	value, err := f.Get("port")
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	require.NoError(t, f.Set("port", "99"))
	value, err = f.Get("port")
	require.NoError(t, err)
	assert.Equal(t, 99, value)
	assert.True(t, f.Lookup("port").Present)

	require.ErrorIs(t, f.Set("missing", "x"), ErrFlags)
	require.ErrorIs(t, f.Set("port", "not-a-number"), ErrFlags)
}

func TestSetDefault(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Int("port", 1, "")
	f.Int("depth", 2, "")
	f.MarkAsParsed()

	// A flag still using its default follows the new default.
	require.NoError(t, f.SetDefault("depth", "5"))
	depth, err := f.Get("depth")
	require.NoError(t, err)
	assert.Equal(t, 5, depth)
	assert.True(t, f.Lookup("depth").UsingDefault)

	// An explicitly set flag keeps its value.
	require.NoError(t, f.Set("port", "99"))
	require.NoError(t, f.SetDefault("port", "77"))
	port, err := f.Get("port")
	require.NoError(t, err)
	assert.Equal(t, 99, port)
	assert.Equal(t, "77", f.Lookup("port").DefValue)

	require.ErrorIs(t, f.SetDefault("missing", "1"), ErrFlags)
}

func TestUnparsedAccess(t *testing.T) {
	f := NewFlagSet("app")
	f.String("name", "joe", "")

	t.Setenv(allowUnparsedAccessEnv, "0")
	_, err := f.Get("name")
	require.ErrorIs(t, err, ErrFlags)

	var unparsed *UnparsedFlagAccessError
	require.ErrorAs(t, err, &unparsed)
	assert.Equal(t, "name", unparsed.Name)

	// The permissive setting downgrades the error to a warning.
	t.Setenv(allowUnparsedAccessEnv, "1")

	var warnings bytes.Buffer
	f.SetOutput(&warnings)

	value, err := f.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "joe", value)
	assert.Contains(t, warnings.String(), "before flags were parsed")

	// Explicitly set flags can be read without parsing.
	warnings.Reset()
	require.NoError(t, f.Set("name", "ada"))
	value, err = f.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "ada", value)
	assert.Empty(t, warnings.String())
}

func TestVisitAllOrder(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("alpha", "", "", Shorthand("z"))
	f.String("beta", "", "")

	var visited []string
	f.VisitAll(func(flag *Flag) {
		visited = append(visited, flag.Name)
	})

	// Each flag is visited once, shorthands notwithstanding.
	assert.Equal(t, []string{"alpha", "beta"}, visited)
}

func TestValues(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Int("port", 8080, "", Shorthand("p"))

	flagValues := f.Values()
	assert.Equal(t, 8080, flagValues["port"])
	assert.Equal(t, 8080, flagValues["p"])
}

func TestReset(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Int("count", 1, "")
	require.NoError(t, f.Set("count", "5"))
	f.MarkAsParsed()

	require.NoError(t, f.Reset())
	assert.False(t, f.Parsed())
	assert.Equal(t, "1", f.Lookup("count").Value.String())
	assert.False(t, f.Lookup("count").Present)
	assert.True(t, f.Lookup("count").UsingDefault)
}
