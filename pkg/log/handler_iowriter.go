package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/justtrackio/crudgen/pkg/cfg"
)

func init() {
	AddHandlerFactory("iowriter", handlerIoWriterFactory)
}

type HandlerIoWriterSettings struct {
	Level           string            `cfg:"level" default:"info" validate:"oneof=trace debug info warn error none"`
	Channels        map[string]string `cfg:"channels"`
	Formatter       string            `cfg:"formatter" default:"console" validate:"oneof=console json"`
	TimestampFormat string            `cfg:"timestamp_format" default:"15:04:05.000"`
	Writer          string            `cfg:"writer" default:"stdout" validate:"oneof=stdout stderr"`
}

var ioWriters = map[string]io.Writer{
	"stdout": os.Stdout,
	"stderr": os.Stderr,
}

func handlerIoWriterFactory(config cfg.Config, name string) (Handler, error) {
	settings := &HandlerIoWriterSettings{}
	if err := config.UnmarshalKey(getHandlerConfigKey(name), settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handler settings: %w", err)
	}

	channels := make(Channels, len(settings.Channels))
	for channel, level := range settings.Channels {
		priority, ok := LevelPriority(level)
		if !ok {
			return nil, fmt.Errorf("unknown level %s for channel %s", level, channel)
		}

		channels[channel] = priority
	}

	return NewHandlerIoWriter(settings.Level, channels, formatters[settings.Formatter], settings.TimestampFormat, ioWriters[settings.Writer]), nil
}

type handlerIoWriter struct {
	level           int
	channels        Channels
	formatter       Formatter
	timestampFormat string
	writer          io.Writer
}

func NewHandlerIoWriter(level string, channels Channels, formatter Formatter, timestampFormat string, writer io.Writer) Handler {
	priority, ok := LevelPriority(level)
	if !ok {
		priority = PriorityInfo
	}

	return &handlerIoWriter{
		level:           priority,
		channels:        channels,
		formatter:       formatter,
		timestampFormat: timestampFormat,
		writer:          writer,
	}
}

func (h *handlerIoWriter) Channels() Channels {
	return h.channels
}

func (h *handlerIoWriter) Level() int {
	return h.level
}

func (h *handlerIoWriter) Log(timestamp time.Time, level int, msg string, args []any, logErr error, data Data) error {
	var err error
	var bytes []byte

	if bytes, err = h.formatter(timestamp.Format(h.timestampFormat), level, msg, args, logErr, data); err != nil {
		return fmt.Errorf("can not format log message: %w", err)
	}

	if _, err = h.writer.Write(bytes); err != nil {
		return fmt.Errorf("can not write log message: %w", err)
	}

	return nil
}
