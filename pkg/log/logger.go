package log

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/justtrackio/crudgen/pkg/clock"
)

const (
	LevelTrace = "trace"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelNone  = "none"

	PriorityTrace = 0
	PriorityDebug = 1
	PriorityInfo  = 2
	PriorityWarn  = 3
	PriorityError = 4
	// PriorityNone is greater than any other priority, so nothing passes it.
	PriorityNone = math.MaxInt
)

var levelNames = map[int]string{
	PriorityTrace: LevelTrace,
	PriorityDebug: LevelDebug,
	PriorityInfo:  LevelInfo,
	PriorityWarn:  LevelWarn,
	PriorityError: LevelError,
	PriorityNone:  LevelNone,
}

var levelPriorities = map[string]int{
	LevelTrace: PriorityTrace,
	LevelDebug: PriorityDebug,
	LevelInfo:  PriorityInfo,
	LevelWarn:  PriorityWarn,
	LevelError: PriorityError,
	LevelNone:  PriorityNone,
}

// LevelName returns the name of a level priority, e.g. 2 -> "info".
func LevelName(level int) string {
	return levelNames[level]
}

// LevelPriority returns the priority of a level name, e.g. "info" -> 2.
func LevelPriority(level string) (int, bool) {
	priority, ok := levelPriorities[level]

	return priority, ok
}

type Data struct {
	Channel       string
	ContextFields map[string]any
	Fields        map[string]any
}

type Fields map[string]any

//go:generate go run github.com/vektra/mockery/v2 --name Logger
type Logger interface {
	Debug(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, format string, args ...any)

	WithChannel(channel string) Logger
	WithFields(Fields) Logger
}

type LoggerSettings struct {
	Handlers map[string]HandlerSettings `cfg:"handlers"`
}

type HandlerSettings struct {
	Type string `cfg:"type"`
}

var _ Logger = &logger{}

type logger struct {
	clock    clock.Clock
	data     Data
	handlers []Handler
}

func NewLogger() Logger {
	return NewLoggerWithInterfaces(clock.NewRealClock(), []Handler{})
}

func NewLoggerWithInterfaces(clock clock.Clock, handlers []Handler) Logger {
	return &logger{
		clock: clock,
		data: Data{
			Channel:       "main",
			ContextFields: make(map[string]any),
			Fields:        make(map[string]any),
		},
		handlers: handlers,
	}
}

func (l *logger) Debug(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityDebug, format, args, nil)
}

func (l *logger) Info(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityInfo, format, args, nil)
}

func (l *logger) Warn(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityWarn, format, args, nil)
}

// Error treats format like fmt.Errorf, so %w can be used to log the cause.
func (l *logger) Error(ctx context.Context, format string, args ...any) {
	err := fmt.Errorf(format, args...)

	l.log(ctx, PriorityError, "%s", []any{err.Error()}, err)
}

func (l *logger) WithChannel(channel string) Logger {
	cpy := l.copy()
	cpy.data.Channel = channel

	return cpy
}

func (l *logger) WithFields(fields Fields) Logger {
	cpy := l.copy()
	cpy.data.Fields = mergeFields(l.data.Fields, fields)

	return cpy
}

func (l *logger) copy() *logger {
	return &logger{
		clock:    l.clock,
		data:     l.data,
		handlers: l.handlers,
	}
}

func (l *logger) log(ctx context.Context, level int, msg string, args []any, loggedErr error) {
	timestamp := l.clock.Now()

	data := Data{
		Channel:       l.data.Channel,
		ContextFields: ContextFields(ctx),
		Fields:        l.data.Fields,
	}

	for _, handler := range l.handlers {
		if !shouldLog(handler, data.Channel, level) {
			continue
		}

		if err := handler.Log(timestamp, level, msg, args, loggedErr, data); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write to log: %s\n", err)
		}
	}
}

func shouldLog(handler Handler, channel string, level int) bool {
	if channelLevel, ok := handler.Channels()[channel]; ok {
		return channelLevel <= level
	}

	return handler.Level() <= level
}
