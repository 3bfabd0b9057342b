package log

import (
	"fmt"
	"sort"
	"time"

	"github.com/justtrackio/crudgen/pkg/cfg"
)

type Handler interface {
	Channels() Channels
	Level() int
	Log(timestamp time.Time, level int, msg string, args []any, err error, data Data) error
}

// Channels maps a channel name to the priority used for it instead of the handler level.
type Channels map[string]int

type HandlerFactory func(config cfg.Config, name string) (Handler, error)

var handlerFactories = map[string]HandlerFactory{}

func AddHandlerFactory(typ string, factory HandlerFactory) {
	handlerFactories[typ] = factory
}

// NewHandlersFromConfig creates one handler for every entry below log.handlers.
func NewHandlersFromConfig(config cfg.Config) ([]Handler, error) {
	settings := &LoggerSettings{}
	if err := config.UnmarshalKey("log", settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logger settings: %w", err)
	}

	names := make([]string, 0, len(settings.Handlers))
	for name := range settings.Handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	handlers := make([]Handler, 0, len(names))

	for _, name := range names {
		typ := settings.Handlers[name].Type

		factory, ok := handlerFactories[typ]
		if !ok {
			return nil, fmt.Errorf("there is no logging handler of type %s", typ)
		}

		handler, err := factory(config, name)
		if err != nil {
			return nil, fmt.Errorf("can not create logging handler %s of type %s: %w", name, typ, err)
		}

		handlers = append(handlers, handler)
	}

	return handlers, nil
}

func getHandlerConfigKey(name string) string {
	return fmt.Sprintf("log.handlers.%s", name)
}
