package application

import (
	"context"
	"os"

	"github.com/justtrackio/crudgen/pkg/log"
)

type ErrorHandler func(err error, msg string, args ...any)

var defaultErrorHandler = func(err error, msg string, args ...any) {
	logger := log.NewCliLogger().WithChannel("application")

	args = append(args, err)
	logger.Error(context.Background(), msg+": %w", args...)
	os.Exit(1)
}
