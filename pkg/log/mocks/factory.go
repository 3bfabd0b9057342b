package mocks

import (
	"github.com/stretchr/testify/mock"
)

type LoggerMockOption func(logger *Logger)

// WithMockAll accepts every log call, including derived loggers, without asserting any of them.
func WithMockAll(logger *Logger) {
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(method, mock.Anything, mock.Anything, mock.Anything).Maybe()
	}

	logger.On("WithChannel", mock.Anything).Return(logger).Maybe()
	logger.On("WithFields", mock.Anything).Return(logger).Maybe()
}

func WithTestingT(t mock.TestingT) LoggerMockOption {
	return func(logger *Logger) {
		logger.Test(t)
	}
}

func NewLoggerMock(options ...LoggerMockOption) *Logger {
	logger := &Logger{}

	for _, opt := range options {
		opt(logger)
	}

	return logger
}
