package cfg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
)

const (
	tagCfg      = "cfg"
	tagDefault  = "default"
	tagValidate = "validate"
)

var timeType = reflect.TypeOf(time.Time{})

// UnmarshalDefaults fills val with the values of its default tags only.
func (c *config) UnmarshalDefaults(val any) error {
	if !isPointerTo(val, reflect.Struct) {
		return fmt.Errorf("can not unmarshal defaults: output should be a pointer to struct but instead is %T", val)
	}

	defaults := readDefaults(reflect.TypeOf(val).Elem())

	return c.decode(defaults, val)
}

// UnmarshalKey decodes the settings below key into val. Struct outputs start from the values of
// their default tags, get the configured settings merged on top, honor environment overrides for
// every field and are validated afterwards.
func (c *config) UnmarshalKey(key string, val any) error {
	var err error
	var settings map[string]any

	switch {
	case isPointerTo(val, reflect.Struct):
		if settings, err = c.buildStructSettings(key, reflect.TypeOf(val).Elem()); err != nil {
			return fmt.Errorf("can not unmarshal config struct with key %s: %w", key, err)
		}

		if err = c.decode(settings, val); err != nil {
			return fmt.Errorf("can not unmarshal config struct with key %s: %w", key, err)
		}

		if err = validate(val); err != nil {
			return fmt.Errorf("invalid settings for key %s: %w", key, err)
		}

		return nil
	case isPointerTo(val, reflect.Map, reflect.Slice):
		data, ok := c.lookup(key)
		if !ok {
			return nil
		}

		if err = c.decode(data, val); err != nil {
			return fmt.Errorf("can not unmarshal config with key %s: %w", key, err)
		}

		return nil
	}

	return fmt.Errorf("can not unmarshal key %s: output should be a pointer to struct, map or slice but instead is %T", key, val)
}

func (c *config) buildStructSettings(key string, typ reflect.Type) (map[string]any, error) {
	settings := readDefaults(typ)

	if configured, ok := readPath(c.settings, key); ok {
		msi, ok := toMsi(configured)
		if !ok {
			return nil, fmt.Errorf("the setting is of type %T and can not be used for a struct", configured)
		}

		if err := mergo.Merge(&settings, msi, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("can not merge configured settings over defaults: %w", err)
		}
	}

	leafs := make([]string, 0)
	collectLeafKeys("", settings, &leafs)

	for _, leaf := range leafs {
		if value, ok := c.lookupEnv(c.resolveEnvKey(key + "." + leaf)); ok {
			writePath(settings, leaf, value)
		}
	}

	return settings, nil
}

func (c *config) decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			c.decodeAugmentHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Metadata:         nil,
		Result:           output,
		TagName:          tagCfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("can not create decoder: %w", err)
	}

	return decoder.Decode(input)
}

func (c *config) decodeAugmentHook(from reflect.Type, _ reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	return c.augmentString(reflect.ValueOf(data).String())
}

// readDefaults builds a settings map from the default tags of typ. Fields without a default are
// present with a nil value, so environment overrides can reach them as well.
func readDefaults(typ reflect.Type) map[string]any {
	settings := map[string]any{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get(tagCfg), ",")[0]
		if name == "" {
			name = field.Name
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		if fieldType.Kind() == reflect.Struct && fieldType != timeType {
			settings[name] = readDefaults(fieldType)

			continue
		}

		if def, ok := field.Tag.Lookup(tagDefault); ok {
			settings[name] = def

			continue
		}

		settings[name] = nil
	}

	return settings
}

func validate(val any) error {
	validate := validator.New()
	validate.SetTagName(tagValidate)

	err := validate.Struct(val)
	if err == nil {
		return nil
	}

	validationErrors := validator.ValidationErrors{}
	if !errors.As(err, &validationErrors) {
		return err
	}

	var result error
	for _, fieldErr := range validationErrors {
		result = multierror.Append(result, fmt.Errorf("the field %s is invalid: failed on the %s rule", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return result
}
