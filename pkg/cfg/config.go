package cfg

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/cast"
)

type Config interface {
	AllKeys() []string
	AllSettings() map[string]any
	Get(key string, optionalDefault ...any) (any, error)
	GetBool(key string, optionalDefault ...bool) (bool, error)
	GetDuration(key string, optionalDefault ...time.Duration) (time.Duration, error)
	GetInt(key string, optionalDefault ...int) (int, error)
	GetString(key string, optionalDefault ...string) (string, error)
	GetStringMap(key string, optionalDefault ...map[string]any) (map[string]any, error)
	GetStringSlice(key string, optionalDefault ...[]string) ([]string, error)
	IsSet(key string) bool
	UnmarshalDefaults(val any) error
	UnmarshalKey(key string, val any) error
}

type Conf interface {
	Config
	Option(options ...Option) error
}

type LookupEnv func(key string) (string, bool)

type config struct {
	lookupEnv      LookupEnv
	settings       map[string]any
	envKeyPrefix   string
	envKeyReplacer *strings.Replacer
}

var (
	DefaultEnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")
	templateRegexp        = regexp.MustCompile(`{([\w.\-]+)}`)
)

func New(msis ...map[string]any) Conf {
	return NewWithInterfaces(NewOsEnvProvider(), msis...)
}

func NewWithInterfaces(envProvider EnvProvider, msis ...map[string]any) Conf {
	cfg := &config{
		lookupEnv:      envProvider.LookupEnv,
		settings:       map[string]any{},
		envKeyReplacer: DefaultEnvKeyReplacer,
	}

	for _, msi := range msis {
		// a freshly created config never fails to merge plain maps
		_ = cfg.merge(".", msi)
	}

	return cfg
}

func (c *config) AllKeys() []string {
	keys := make([]string, 0)
	collectLeafKeys("", c.settings, &keys)
	sort.Strings(keys)

	return keys
}

func (c *config) AllSettings() map[string]any {
	return c.settings
}

func (c *config) Get(key string, optionalDefault ...any) (any, error) {
	if value, ok := c.lookup(key); ok {
		return value, nil
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0], nil
	}

	return nil, fmt.Errorf("there is no config setting or default for key %q", key)
}

func (c *config) GetBool(key string, optionalDefault ...bool) (b bool, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return false, err
	}

	if b, err = cast.ToBoolE(data); err != nil {
		return false, fmt.Errorf("can not cast value %v[%T] of key %s to bool: %w", data, data, key, err)
	}

	return b, nil
}

func (c *config) GetDuration(key string, optionalDefault ...time.Duration) (duration time.Duration, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return time.Duration(0), err
	}

	if duration, err = cast.ToDurationE(data); err != nil {
		return time.Duration(0), fmt.Errorf("can not cast value %v[%T] of key %s to duration: %w", data, data, key, err)
	}

	return duration, nil
}

func (c *config) GetInt(key string, optionalDefault ...int) (i int, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return 0, err
	}

	if i, err = cast.ToIntE(data); err != nil {
		return 0, fmt.Errorf("can not cast value %v[%T] of key %s to int: %w", data, data, key, err)
	}

	return i, nil
}

func (c *config) GetString(key string, optionalDefault ...string) (str string, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return "", err
	}

	if str, err = cast.ToStringE(data); err != nil {
		return "", fmt.Errorf("can not cast value %v[%T] of key %s to string: %w", data, data, key, err)
	}

	return c.augmentString(str)
}

func (c *config) GetStringMap(key string, optionalDefault ...map[string]any) (strMap map[string]any, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return nil, err
	}

	if strMap, err = cast.ToStringMapE(data); err != nil {
		return nil, fmt.Errorf("can not cast value %v[%T] of key %s to map[string]any: %w", data, data, key, err)
	}

	return strMap, nil
}

func (c *config) GetStringSlice(key string, optionalDefault ...[]string) (strSlice []string, err error) {
	var data any
	if data, err = c.get(key, toAnySlice(optionalDefault)); err != nil {
		return nil, err
	}

	switch d := data.(type) {
	case string:
		strSlice = strings.Split(d, ",")
	default:
		strSlice, err = cast.ToStringSliceE(data)
	}

	if err != nil {
		return nil, fmt.Errorf("can not cast value %v[%T] of key %s to []string: %w", data, data, key, err)
	}

	for i := range strSlice {
		if strSlice[i], err = c.augmentString(strings.TrimSpace(strSlice[i])); err != nil {
			return nil, fmt.Errorf("can not augment string in slice for key %s: %w", key, err)
		}
	}

	return strSlice, nil
}

func (c *config) IsSet(key string) bool {
	_, ok := c.lookup(key)

	return ok
}

func (c *config) Option(options ...Option) error {
	for _, opt := range options {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func (c *config) get(key string, optionalDefault []any) (any, error) {
	if value, ok := c.lookup(key); ok {
		return value, nil
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0], nil
	}

	return nil, fmt.Errorf("there is no config setting or default for key %q", key)
}

// lookup prefers the environment over the merged settings.
func (c *config) lookup(key string) (any, bool) {
	if value, ok := c.lookupEnv(c.resolveEnvKey(key)); ok {
		return value, true
	}

	return readPath(c.settings, key)
}

func (c *config) resolveEnvKey(key string) string {
	if c.envKeyPrefix != "" {
		key = fmt.Sprintf("%s.%s", c.envKeyPrefix, key)
	}

	if c.envKeyReplacer != nil {
		key = c.envKeyReplacer.Replace(key)
	}

	return strings.ToUpper(key)
}

func (c *config) augmentString(str string) (string, error) {
	matches := templateRegexp.FindAllStringSubmatch(str, -1)

	for _, m := range matches {
		replace, err := c.GetString(m[1])
		if err != nil {
			return "", fmt.Errorf("can not resolve template %s: %w", m[0], err)
		}

		str = strings.ReplaceAll(str, m[0], replace)
	}

	return str, nil
}

func (c *config) merge(key string, setting any) error {
	var ok bool
	var msi map[string]any

	if msi, ok = setting.(map[string]any); !ok {
		writePath(c.settings, key, setting)

		return nil
	}

	if key != "." {
		nested := map[string]any{}
		writePath(nested, key, msi)
		msi = nested
	}

	if err := mergo.Merge(&c.settings, msi, mergo.WithOverride); err != nil {
		return fmt.Errorf("can not merge settings into config: %w", err)
	}

	return nil
}

func readPath(settings map[string]any, key string) (any, bool) {
	var current any = settings

	for _, part := range strings.Split(key, ".") {
		msi, ok := toMsi(current)
		if !ok {
			return nil, false
		}

		if current, ok = msi[part]; !ok {
			return nil, false
		}
	}

	return current, true
}

func writePath(settings map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	current := settings

	for _, part := range parts[:len(parts)-1] {
		next, ok := toMsi(current[part])
		if !ok {
			next = map[string]any{}
		}

		current[part] = next
		current = next
	}

	current[parts[len(parts)-1]] = value
}

func collectLeafKeys(prefix string, value any, keys *[]string) {
	msi, ok := toMsi(value)
	if !ok || len(msi) == 0 {
		if prefix != "" {
			*keys = append(*keys, prefix)
		}

		return
	}

	for k, v := range msi {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		collectLeafKeys(key, v, keys)
	}
}

func toMsi(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		msi, err := cast.ToStringMapE(v)

		return msi, err == nil
	default:
		return nil, false
	}
}

func toAnySlice[T any](values []T) []any {
	if len(values) == 0 {
		return nil
	}

	result := make([]any, len(values))
	for i := range values {
		result[i] = values[i]
	}

	return result
}

func isPointerTo(val any, kinds ...reflect.Kind) bool {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}

	for _, kind := range kinds {
		if rv.Elem().Kind() == kind {
			return true
		}
	}

	return false
}
