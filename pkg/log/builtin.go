package log

import (
	"fmt"
	"os"

	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/clock"
)

func NewCliLogger() Logger {
	return NewLoggerWithInterfaces(clock.Provider, []Handler{NewCliHandler()})
}

func NewCliHandler() Handler {
	return NewHandlerIoWriter(LevelInfo, Channels{}, FormatterConsole, "15:04:05.000", os.Stdout)
}

// NewLoggerFromConfig builds a logger with the handlers configured below log.handlers. Without
// any configured handler it falls back to the cli handler.
func NewLoggerFromConfig(config cfg.Config) (Logger, error) {
	handlers, err := NewHandlersFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("can not create log handlers: %w", err)
	}

	if len(handlers) == 0 {
		handlers = append(handlers, NewCliHandler())
	}

	return NewLoggerWithInterfaces(clock.Provider, handlers), nil
}
