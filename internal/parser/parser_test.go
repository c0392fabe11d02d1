package parser

import (
	"errors"
	"net"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flagerrors "github.com/reeflective/gflags/internal/errors"
	"github.com/reeflective/gflags/internal/validation"
)

func TestParseStruct_Tagged(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Host    string `default:"localhost"    desc:"server host" long:"host" short:"H"`
		Port    int    `desc:"server port"     env:"SERVER_PORT"  long:"port"`
		Verbose bool   `short:"v"`
		Ignored string `flag:"-"`
		NoFlag  string `no-flag:""`
		Plain   string
	}{}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 3)

	host := flags[0]
	assert.Equal(t, "host", host.Name)
	assert.Equal(t, "H", host.Short)
	assert.Equal(t, "server host", host.Usage)
	assert.Equal(t, []string{"localhost"}, host.DefValue)
	assert.Equal(t, "localhost", cfg.Host)

	port := flags[1]
	assert.Equal(t, "port", port.Name)
	assert.Equal(t, "SERVER_PORT", port.EnvName)

	// A short tag alone still yields a generated long name.
	verbose := flags[2]
	assert.Equal(t, "verbose", verbose.Name)
	assert.Equal(t, "v", verbose.Short)
}

func TestParseStruct_ParseAll(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Name     string
		MaxRetry int
		internal bool
	}{}

	flags, err := ParseStruct(&cfg, ParseAll())
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "name", flags[0].Name)
	assert.Equal(t, "max-retry", flags[1].Name)
}

func TestParseStruct_Groups(t *testing.T) {
	t.Parallel()

	type network struct {
		Host string `long:"host"`
		Port int    `long:"port"`
	}

	type logging struct {
		Level string `long:"level"`
	}

	cfg := struct {
		Network  network  `group:"Network Options"`
		Logs     *logging `module:"logging" prefix:""`
		Untagged network
	}{}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 3)

	// Named groups prefix their flags with the field name.
	assert.Equal(t, "network-host", flags[0].Name)
	assert.Equal(t, "network-port", flags[1].Name)
	assert.Equal(t, "Network Options", flags[0].Module)

	// An explicit empty prefix tag disables the name prefix, and nil
	// group pointers are allocated during the scan.
	assert.Equal(t, "level", flags[2].Name)
	assert.Equal(t, "logging", flags[2].Module)
	require.NotNil(t, cfg.Logs)

	require.NoError(t, flags[2].Value.Set("debug"))
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestParseStruct_Anonymous(t *testing.T) {
	t.Parallel()

	type base struct {
		Debug bool `long:"debug"`
	}

	cfg := struct {
		base
		Extra string `long:"extra"`
	}{}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 2)

	// Anonymous structs are flattened without a prefix by default.
	assert.Equal(t, "debug", flags[0].Name)
	assert.Equal(t, "extra", flags[1].Name)

	nested, err := ParseStruct(&struct {
		base
	}{}, Flatten(false))
	require.NoError(t, err)
	require.Len(t, nested, 1)
	assert.Equal(t, "base-debug", nested[0].Name)
}

func TestParseStruct_CompactTag(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Force  bool   `flag:"force f"`
		Secret string `flag:"secret,hidden"`
		Raw    string `flag:"~raw"`
		Scoped string `long:"scoped"`
	}{}

	flags, err := ParseStruct(&cfg, Prefix("app-"))
	require.NoError(t, err)
	require.Len(t, flags, 4)

	assert.Equal(t, "app-force", flags[0].Name)
	assert.Equal(t, "f", flags[0].Short)

	assert.Equal(t, "app-secret", flags[1].Name)
	assert.True(t, flags[1].Hidden)

	// The tilde skips the namespace prefix.
	assert.Equal(t, "raw", flags[2].Name)

	assert.Equal(t, "app-scoped", flags[3].Name)
}

func TestParseStruct_Defaults(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Applied string   `default:"tag-default" long:"applied"`
		Kept    string   `default:"tag-default" long:"kept"`
		List    []string `default:"a"           default:"b" long:"list"`
	}{
		Kept: "from-code",
	}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 3)

	// Tag defaults only apply to fields left at their zero value.
	assert.Equal(t, "tag-default", cfg.Applied)
	assert.Equal(t, "from-code", cfg.Kept)
	assert.Equal(t, []string{"tag-default"}, flags[1].DefValue)

	// Repeated default tags accumulate for list values.
	assert.Equal(t, []string{"a", "b"}, cfg.List)

	_, err = ParseStruct(&struct {
		Port int `default:"not-a-number" long:"port"`
	}{})
	require.ErrorIs(t, err, flagerrors.ErrParse)
}

func TestParseStruct_Env(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Off       string `env:"-"       long:"off"`
		Generated string `env:""        long:"some-name"`
		Custom    string `env:"CUSTOM"  long:"custom"`
		Silent    string `long:"silent"`
	}{}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 4)

	assert.Empty(t, flags[0].EnvName)
	assert.Equal(t, "SOME_NAME", flags[1].EnvName)
	assert.Equal(t, "CUSTOM", flags[2].EnvName)

	// Without an env tag or a global prefix, flags ignore the environment.
	assert.Empty(t, flags[3].EnvName)

	prefixed, err := ParseStruct(&struct {
		Silent string `long:"silent"`
		Pinned string `env:"~PINNED" long:"pinned"`
	}{}, EnvPrefix("APP_"))
	require.NoError(t, err)
	require.Len(t, prefixed, 2)
	assert.Equal(t, "APP_SILENT", prefixed[0].EnvName)
	assert.Equal(t, "PINNED", prefixed[1].EnvName)
}

func TestParseStruct_Choices(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Level string `choice:"debug info warn" long:"level"`
	}{}

	flags, err := ParseStruct(&cfg)
	require.NoError(t, err)
	require.Len(t, flags, 1)
	assert.Equal(t, []string{"debug", "info", "warn"}, flags[0].Choices)

	err = flags[0].Value.Set("trace")
	require.ErrorIs(t, err, validation.ErrInvalidChoice)

	require.NoError(t, flags[0].Value.Set("info"))
	assert.Equal(t, "info", cfg.Level)
}

func TestParseStruct_ValidateTag(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Email string `long:"email" validate:"email"`
	}{}

	flags, err := ParseStruct(&cfg, Validator(validation.NewDefault()))
	require.NoError(t, err)
	require.Len(t, flags, 1)

	require.Error(t, flags[0].Value.Set("not-an-email"))
	require.NoError(t, flags[0].Value.Set("dev@example.com"))
	assert.Equal(t, "dev@example.com", cfg.Email)
}

func TestParseStruct_UserValidator(t *testing.T) {
	t.Parallel()

	var called bool

	validator := Validator(func(val string, field reflect.StructField, data any) error {
		called = true
		if val == "bad" {
			return errors.New("rejected")
		}

		return nil
	})

	cfg := struct {
		Name string `long:"name"`
	}{}

	flags, err := ParseStruct(&cfg, validator)
	require.NoError(t, err)
	require.Len(t, flags, 1)

	require.Error(t, flags[0].Value.Set("bad"))
	assert.True(t, called)

	require.NoError(t, flags[0].Value.Set("good"))
	assert.Equal(t, "good", cfg.Name)
}

func TestParseStruct_NilPointerFields(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Name *string
		Addr *net.IP
	}{}

	flags, err := ParseStruct(&cfg, ParseAll())
	require.NoError(t, err)
	require.Len(t, flags, 2)
	require.NotNil(t, cfg.Name)
	require.NotNil(t, cfg.Addr)

	require.NoError(t, flags[0].Value.Set("joe"))
	assert.Equal(t, "joe", *cfg.Name)

	require.NoError(t, flags[1].Value.Set("10.0.0.1"))
	assert.Equal(t, "10.0.0.1", cfg.Addr.String())
}

func TestParseStruct_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseStruct(nil)
	require.ErrorIs(t, err, flagerrors.ErrNotPointerToStruct)

	_, err = ParseStruct("not a struct")
	require.ErrorIs(t, err, flagerrors.ErrNotPointerToStruct)

	cfg := struct {
		Name string `long:"name"`
	}{}
	_, err = ParseStruct(cfg)
	require.ErrorIs(t, err, flagerrors.ErrNotPointerToStruct)

	_, err = ParseStruct(&struct {
		Ch chan int `long:"ch"`
	}{})
	require.ErrorIs(t, err, flagerrors.ErrNotValue)

	_, err = ParseStruct(&struct {
		hidden string `long:"hidden"`
	}{})
	require.ErrorIs(t, err, flagerrors.ErrUnexportedField)

	_, err = ParseStruct(&struct {
		Tool string `long:"tool" short:"too-long"`
	}{})
	require.ErrorIs(t, err, flagerrors.ErrInvalidTag)
}

func TestParseStruct_ModuleOption(t *testing.T) {
	t.Parallel()

	cfg := struct {
		Name  string `long:"name"`
		Keyed string `key:"" long:"keyed" module:"special"`
	}{}

	flags, err := ParseStruct(&cfg, Module("myapp"))
	require.NoError(t, err)
	require.Len(t, flags, 2)

	assert.Equal(t, "myapp", flags[0].Module)
	assert.Equal(t, "special", flags[1].Module)
	assert.True(t, flags[1].Key)
}

func TestCamelToFlag(t *testing.T) {
	t.Parallel()

	tt := []struct {
		in   string
		want string
	}{
		{"MaxRetryCount", "max-retry-count"},
		{"HTTPServer", "http-server"},
		{"Name2", "name2"},
		{"host", "host"},
	}

	for _, test := range tt {
		assert.Equal(t, test.want, CamelToFlag(test.in, "-"))
	}

	assert.Equal(t, "MAX_RETRY", FlagToEnv("max-retry", "-", "_"))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := DefOpts().Apply(
		DescTag("description"),
		FlagTag("cli"),
		FlagDivider("_"),
		EnvDivider("."),
		Prefix("app-"),
		EnvPrefix("APP_"),
		Module("server"),
		Flatten(false),
		ParseAll(),
	)

	assert.Equal(t, "description", opts.DescTag)
	assert.Equal(t, "cli", opts.FlagTag)
	assert.Equal(t, "_", opts.FlagDivider)
	assert.Equal(t, ".", opts.EnvDivider)
	assert.Equal(t, "app-", opts.Prefix)
	assert.Equal(t, "APP_", opts.EnvPrefix)
	assert.Equal(t, "server", opts.Module)
	assert.False(t, opts.Flatten)
	assert.True(t, opts.ParseAll)
}
