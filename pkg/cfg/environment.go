package cfg

import (
	"os"
)

type EnvProvider interface {
	LookupEnv(key string) (string, bool)
}

type osEnvProvider struct{}

func NewOsEnvProvider() EnvProvider {
	return osEnvProvider{}
}

func (o osEnvProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

type memoryEnvProvider struct {
	values map[string]string
}

// NewMemoryEnvProvider is an EnvProvider for tests which never touches the process environment.
func NewMemoryEnvProvider(values map[string]string) EnvProvider {
	return &memoryEnvProvider{
		values: values,
	}
}

func (m *memoryEnvProvider) LookupEnv(key string) (string, bool) {
	val, ok := m.values[key]

	return val, ok
}
