package httpserver

import (
	"fmt"
	"time"
)

type Settings struct {
	// Port the server listens on. Use 0 to get a random free port.
	Port        string              `cfg:"port"        default:"8080"`
	Mode        string              `cfg:"mode"        default:"release" validate:"oneof=release debug test"`
	Compression CompressionSettings `cfg:"compression"`
	Cors        CorsSettings        `cfg:"cors"`
	Logging     LoggingSettings     `cfg:"logging"`
	Timeout     TimeoutSettings     `cfg:"timeout"`
}

// TimeoutSettings configures the timeouts of the underlying http.Server.
type TimeoutSettings struct {
	// You should set Read, Write and Idle timeout to avoid leaking resources.
	// See https://blog.cloudflare.com/the-complete-guide-to-golang-net-http-timeouts/
	Read  time.Duration `cfg:"read"  default:"60s" validate:"min=1000000000"`
	Write time.Duration `cfg:"write" default:"60s" validate:"min=1000000000"`
	Idle  time.Duration `cfg:"idle"  default:"60s" validate:"min=1000000000"`
	// Drain is the time the server keeps accepting requests after the shutdown started.
	Drain time.Duration `cfg:"drain" default:"0s"`
	// Shutdown is the maximum time in-flight requests get to finish.
	Shutdown time.Duration `cfg:"shutdown" default:"60s"`
}

type LoggingSettings struct {
	RequestBody bool `cfg:"request_body" default:"false"`
}

func HttpserverSettingsKey(name string) string {
	return fmt.Sprintf("httpserver.%s", name)
}
