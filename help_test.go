package gflags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/gflags/internal/values"
)

func newHelpFlagSet() *FlagSet {
	f := NewFlagSet("app")
	f.Bool("cache", true, "enable the response cache", Shorthand("c"))
	f.Int("port", 8080, "port to listen on", Module("net"))

	return f
}

func TestGetHelp(t *testing.T) {
	t.Parallel()

	f := newHelpFlagSet()
	help := f.GetHelp("")

	// The main module leads, other modules follow in sorted order,
	// and the scanner's own flags close the output.
	expected := "\nmain:" +
		"\n  -c,--[no]cache: enable the response cache" +
		"\n    (default: 'true')" +
		"\n\nnet:" +
		"\n  --port: port to listen on" +
		"\n    (default: '8080')" +
		"\n    (an integer)" +
		"\n\ngflags:\n"

	require.True(t, strings.HasPrefix(help, expected), "help output:\n%s", help)
	assert.Contains(t, help, "--flagfile: Insert flag definitions")
	assert.Contains(t, help, "--undefok:")
}

func TestGetHelpMainModuleFirst(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("token", "", "", Module("auth"))
	f.Bool("debug", false, "")

	help := f.GetHelp("")

	// "auth" sorts before "main", yet main still leads.
	mainAt := strings.Index(help, "\nmain:")
	authAt := strings.Index(help, "\nauth:")
	require.NotEqual(t, -1, mainAt)
	require.NotEqual(t, -1, authAt)
	assert.Less(t, mainAt, authAt)
}

func TestGetHelpPrefix(t *testing.T) {
	t.Parallel()

	f := newHelpFlagSet()
	help := f.GetHelp("  ")

	assert.Contains(t, help, "\n  main:")
	assert.Contains(t, help, "\n    -c,--[no]cache: enable the response cache")
	assert.Contains(t, help, "\n      (default: 'true')")
}

func TestGetHelpWrapsLongUsage(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.String("policy", "deny", "the admission policy applied to requests which "+
		"carry no credentials at all, before any of the authentication "+
		"handlers had a chance to inspect them")

	help := f.GetHelp("")

	for _, line := range strings.Split(help, "\n") {
		assert.LessOrEqual(t, len(line), helpWidth, "line too long: %q", line)
	}

	// Continuation lines are indented past the flag name.
	assert.Contains(t, help, "\n    carry no credentials")
}

func TestGetHelpFlatWithoutModules(t *testing.T) {
	t.Parallel()

	// Flags registered directly carry no module bookkeeping: help
	// prints them as one flat list, scanner flags included.
	f := NewFlagSet("app")
	flag := NewFlag("debug", values.ParseGenerated(new(bool)), "turn on debug logging")
	require.NoError(t, f.Register(flag))

	help := f.GetHelp("")

	require.True(t, strings.HasPrefix(help,
		"--[no]debug: turn on debug logging\n  (default: 'false')"),
		"help output:\n%s", help)
	assert.Contains(t, help, "--flagfile")
	assert.NotContains(t, help, "main:")
}

func TestGetHelpSkipsStaleModuleRecords(t *testing.T) {
	t.Parallel()

	f := newHelpFlagSet()
	require.NoError(t, f.Deregister("c"))
	require.NoError(t, f.Deregister("cache"))

	help := f.GetHelp("")
	assert.NotContains(t, help, "--[no]cache")
}

func TestModuleHelp(t *testing.T) {
	t.Parallel()

	f := newHelpFlagSet()

	expected := "\nnet:" +
		"\n  --port: port to listen on" +
		"\n    (default: '8080')" +
		"\n    (an integer)"
	assert.Equal(t, expected, f.ModuleHelp("net"))

	// Declared key flags join the module's own.
	require.NoError(t, f.DeclareKeyFlag("net", "cache"))
	withKey := f.ModuleHelp("net")
	assert.Contains(t, withKey, "--[no]cache")
	assert.Contains(t, withKey, "--port")

	assert.Empty(t, f.ModuleHelp("unknown"))
}

func TestMainModuleHelp(t *testing.T) {
	t.Parallel()

	f := newHelpFlagSet()
	help := f.MainModuleHelp()

	assert.Contains(t, help, "\nmain:")
	assert.Contains(t, help, "--[no]cache")
	assert.NotContains(t, help, "--port")
}

func TestSyntacticHints(t *testing.T) {
	t.Parallel()

	f := NewFlagSet("app")
	f.Float64("ratio", 0.5, "")
	f.Duration("timeout", 0, "")
	f.StringSlice("names", nil, "")
	f.IntSlice("ports", nil, "")
	f.StringToString("labels", nil, "")

	help := f.GetHelp("")

	assert.Contains(t, help, "(a number)")
	assert.Contains(t, help, "(a duration; ex: '10s', '1h30m')")
	assert.Contains(t, help, "(a comma separated list)")
	assert.Contains(t, help, "(a comma separated list of integers)")
	assert.Contains(t, help, "(a comma separated list of key=value pairs)")
}
