package cfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Option func(cfg *config) error

func WithConfigFile(filePath string, fileType string) Option {
	return func(cfg *config) error {
		return readConfigFromFile(cfg, filePath, fileType)
	}
}

// WithConfigBytes merges the given file content, e.g. a config file embedded into the binary.
func WithConfigBytes(data []byte, fileType string) Option {
	return func(cfg *config) error {
		return readConfigFromBytes(cfg, data, fileType)
	}
}

func WithConfigMap(settings map[string]any) Option {
	return func(cfg *config) error {
		return cfg.merge(".", settings)
	}
}

func WithConfigSetting(key string, settings any) Option {
	return func(cfg *config) error {
		return cfg.merge(key, settings)
	}
}

func WithEnvKeyPrefix(prefix string) Option {
	return func(cfg *config) error {
		cfg.envKeyPrefix = prefix

		return nil
	}
}

func WithEnvKeyReplacer(replacer *strings.Replacer) Option {
	return func(cfg *config) error {
		cfg.envKeyReplacer = replacer

		return nil
	}
}

func readConfigFromFile(cfg *config, filePath string, fileType string) error {
	if filePath == "" {
		return nil
	}

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("can not read config file %s: %w", filePath, err)
	}

	if err = readConfigFromBytes(cfg, bytes, fileType); err != nil {
		return fmt.Errorf("can not read config file %s: %w", filePath, err)
	}

	return nil
}

func readConfigFromBytes(cfg *config, data []byte, fileType string) error {
	if fileType != "yml" && fileType != "yaml" {
		return fmt.Errorf("unsupported file type %s", fileType)
	}

	settings := make(map[string]any)
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("can not unmarshal %s config: %w", fileType, err)
	}

	return cfg.merge(".", settings)
}
