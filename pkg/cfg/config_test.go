package cfg_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getNewTestableConfig(settings map[string]any, env map[string]string, options ...cfg.Option) cfg.Conf {
	config := cfg.NewWithInterfaces(cfg.NewMemoryEnvProvider(env))

	options = append([]cfg.Option{cfg.WithConfigMap(settings)}, options...)
	if err := config.Option(options...); err != nil {
		panic(err)
	}

	return config
}

func baseSettings() map[string]any {
	return map[string]any{
		"a": 1,
		"n": map[string]any{
			"c": 3,
		},
	}
}

func TestConfig_AllKeys(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{})

	assert.Equal(t, []string{"a", "n.c"}, config.AllKeys())
}

func TestConfig_IsSet(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{
		"B": "from env",
	})

	assert.True(t, config.IsSet("a"))
	assert.True(t, config.IsSet("n.c"))
	assert.True(t, config.IsSet("b"))
	assert.False(t, config.IsSet("n.d"))
}

func TestConfig_Get(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{})

	a, err := config.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 1, a)

	n, err := config.Get("n")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"c": 3}, n)

	_, err = config.Get("missing")
	assert.EqualError(t, err, `there is no config setting or default for key "missing"`)
}

func TestConfig_GetWithDefaults(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{})

	i, err := config.GetInt("missing", 8080)
	assert.NoError(t, err)
	assert.Equal(t, 8080, i)

	s, err := config.GetString("missing", "default")
	assert.NoError(t, err)
	assert.Equal(t, "default", s)

	d, err := config.GetDuration("missing", time.Second)
	assert.NoError(t, err)
	assert.Equal(t, time.Second, d)

	b, err := config.GetBool("missing", true)
	assert.NoError(t, err)
	assert.True(t, b)
}

func TestConfig_GetTypes(t *testing.T) {
	config := getNewTestableConfig(map[string]any{
		"b":     "true",
		"d":     "10s",
		"i":     "42",
		"list":  "a, b,c",
		"map":   map[string]any{"x": 1},
		"wrong": "not a number",
	}, map[string]string{})

	b, err := config.GetBool("b")
	assert.NoError(t, err)
	assert.True(t, b)

	d, err := config.GetDuration("d")
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)

	i, err := config.GetInt("i")
	assert.NoError(t, err)
	assert.Equal(t, 42, i)

	list, err := config.GetStringSlice("list")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list)

	m, err := config.GetStringMap("map")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1}, m)

	_, err = config.GetInt("wrong")
	assert.ErrorContains(t, err, "can not cast value not a number[string] of key wrong to int")
}

func TestConfig_EnvironmentOverrides(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{
		"N_C":        "5",
		"APP_N_C":    "7",
		"APP_SERVER": "from prefix",
	})

	i, err := config.GetInt("n.c")
	assert.NoError(t, err)
	assert.Equal(t, 5, i)

	require.NoError(t, config.Option(cfg.WithEnvKeyPrefix("app")))

	i, err = config.GetInt("n.c")
	assert.NoError(t, err)
	assert.Equal(t, 7, i)

	s, err := config.GetString("server")
	assert.NoError(t, err)
	assert.Equal(t, "from prefix", s)
}

func TestConfig_Templates(t *testing.T) {
	config := getNewTestableConfig(map[string]any{
		"app_name": "hero-api",
		"db": map[string]any{
			"database": "{app_name}.db",
		},
	}, map[string]string{})

	s, err := config.GetString("db.database")
	assert.NoError(t, err)
	assert.Equal(t, "hero-api.db", s)
}

func TestConfig_WithConfigSetting(t *testing.T) {
	config := getNewTestableConfig(baseSettings(), map[string]string{}, cfg.WithConfigSetting("n.d", 4))

	c, err := config.GetInt("n.c")
	assert.NoError(t, err)
	assert.Equal(t, 3, c)

	d, err := config.GetInt("n.d")
	assert.NoError(t, err)
	assert.Equal(t, 4, d)
}

func TestConfig_WithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.dist.yml")
	content := "app_name: hero-api\nhttpserver:\n  default:\n    port: 9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config := getNewTestableConfig(map[string]any{}, map[string]string{}, cfg.WithConfigFile(path, "yml"))

	port, err := config.GetInt("httpserver.default.port")
	assert.NoError(t, err)
	assert.Equal(t, 9090, port)

	err = config.Option(cfg.WithConfigFile(path, "json"))
	assert.ErrorContains(t, err, "unsupported file type json")
}

func TestConfig_WithConfigBytes(t *testing.T) {
	content := []byte("db:\n  default:\n    uri:\n      database: app.db\n")

	config := getNewTestableConfig(map[string]any{}, map[string]string{
		"DB_DEFAULT_URI_DATABASE": "other.db",
	}, cfg.WithConfigBytes(content, "yml"))

	assert.True(t, config.IsSet("db.default.uri.database"))

	database, err := config.GetString("db.default.uri.database")
	assert.NoError(t, err)
	assert.Equal(t, "other.db", database)

	err = config.Option(cfg.WithConfigBytes([]byte("a: [1"), "yml"))
	assert.ErrorContains(t, err, "can not unmarshal yml config")
}

type serverSettings struct {
	Port    string        `cfg:"port" default:"8080"`
	Mode    string        `cfg:"mode" default:"release"`
	Timeout time.Duration `cfg:"timeout" default:"10s"`
	Uri     uriSettings   `cfg:"uri"`
}

type uriSettings struct {
	Host     string `cfg:"host" default:"localhost"`
	Database string `cfg:"database" validate:"required"`
}

func TestConfig_UnmarshalKey(t *testing.T) {
	config := getNewTestableConfig(map[string]any{
		"app_name": "hero-api",
		"server": map[string]any{
			"mode": "debug",
			"uri": map[string]any{
				"database": "{app_name}",
			},
		},
	}, map[string]string{
		"SERVER_URI_HOST": "db.example.com",
	})

	settings := &serverSettings{}
	err := config.UnmarshalKey("server", settings)
	assert.NoError(t, err)

	assert.Equal(t, &serverSettings{
		Port:    "8080",
		Mode:    "debug",
		Timeout: 10 * time.Second,
		Uri: uriSettings{
			Host:     "db.example.com",
			Database: "hero-api",
		},
	}, settings)
}

func TestConfig_UnmarshalKey_ValidationFails(t *testing.T) {
	config := getNewTestableConfig(map[string]any{}, map[string]string{})

	settings := &serverSettings{}
	err := config.UnmarshalKey("server", settings)

	assert.ErrorContains(t, err, "invalid settings for key server")
	assert.ErrorContains(t, err, "the field serverSettings.Uri.Database is invalid: failed on the required rule")
}

func TestConfig_UnmarshalKey_Map(t *testing.T) {
	config := getNewTestableConfig(map[string]any{
		"channels": map[string]any{
			"http": "warn",
		},
	}, map[string]string{})

	channels := map[string]string{}
	err := config.UnmarshalKey("channels", &channels)

	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"http": "warn"}, channels)
}

func TestConfig_UnmarshalDefaults(t *testing.T) {
	config := getNewTestableConfig(map[string]any{}, map[string]string{})

	settings := &serverSettings{}
	err := config.UnmarshalDefaults(settings)

	assert.NoError(t, err)
	assert.Equal(t, "8080", settings.Port)
	assert.Equal(t, "localhost", settings.Uri.Host)
	assert.Equal(t, 10*time.Second, settings.Timeout)
}
