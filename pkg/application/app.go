package application

import (
	"context"
	"strings"
	"time"

	"github.com/justtrackio/crudgen/pkg/appctx"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/kernel"
	"github.com/justtrackio/crudgen/pkg/log"
)

type moduleEntry struct {
	name    string
	factory kernel.ModuleFactory
	options []kernel.ModuleOption
}

type App struct {
	configOptions []cfg.Option
	kernelOptions []kernel.Option
	modules       []moduleEntry
	errorHandler  ErrorHandler
}

type Option func(app *App)

func WithConfigFile(filePath string, fileType string) Option {
	return func(app *App) {
		app.configOptions = append(app.configOptions, cfg.WithConfigFile(filePath, fileType))
	}
}

func WithConfigBytes(data []byte, fileType string) Option {
	return func(app *App) {
		app.configOptions = append(app.configOptions, cfg.WithConfigBytes(data, fileType))
	}
}

func WithConfigMap(settings map[string]any) Option {
	return func(app *App) {
		app.configOptions = append(app.configOptions, cfg.WithConfigMap(settings))
	}
}

func WithConfigEnvKeyReplacer(replacer *strings.Replacer) Option {
	return func(app *App) {
		app.configOptions = append(app.configOptions, cfg.WithEnvKeyReplacer(replacer))
	}
}

func WithErrorHandler(handler ErrorHandler) Option {
	return func(app *App) {
		app.errorHandler = handler
	}
}

func WithKernelExitHandler(handler kernel.ExitHandler) Option {
	return func(app *App) {
		app.kernelOptions = append(app.kernelOptions, kernel.WithExitHandler(handler))
	}
}

func WithKernelKillTimeout(timeout time.Duration) Option {
	return func(app *App) {
		app.kernelOptions = append(app.kernelOptions, kernel.WithKillTimeout(timeout))
	}
}

func WithModuleFactory(name string, factory kernel.ModuleFactory, options ...kernel.ModuleOption) Option {
	return func(app *App) {
		app.modules = append(app.modules, moduleEntry{
			name:    name,
			factory: factory,
			options: options,
		})
	}
}

func Default(options ...Option) kernel.Kernel {
	defaults := []Option{
		WithConfigEnvKeyReplacer(cfg.DefaultEnvKeyReplacer),
	}

	options = append(defaults, options...)

	return New(options...)
}

func New(options ...Option) kernel.Kernel {
	return NewWithInterfaces(cfg.New(), options...)
}

// NewWithInterfaces applies all options to config and builds the logger and the kernel from it.
// If anything fails, the error handler is called and nil is returned.
func NewWithInterfaces(config cfg.Conf, options ...Option) kernel.Kernel {
	app := &App{
		configOptions: make([]cfg.Option, 0),
		kernelOptions: make([]kernel.Option, 0),
		modules:       make([]moduleEntry, 0),
		errorHandler:  defaultErrorHandler,
	}

	for _, opt := range options {
		opt(app)
	}

	if err := config.Option(app.configOptions...); err != nil {
		app.errorHandler(err, "can not apply config options on application")

		return nil
	}

	logger, err := log.NewLoggerFromConfig(config)
	if err != nil {
		app.errorHandler(err, "can not create logger")

		return nil
	}

	ker := kernel.New(config, logger, app.kernelOptions...)

	for _, module := range app.modules {
		ker.Add(module.name, module.factory, module.options...)
	}

	return ker
}

// Run builds the default application and blocks until the kernel is done. Module factories share
// one application container, so resources like database connections are opened once.
func Run(options ...Option) {
	ker := Default(options...)
	if ker == nil {
		return
	}

	ker.Run(appctx.WithContainer(context.Background()))
}

// RunHttpDefaultServer runs the default application with a single http server serving the routes
// of definer, configured below httpserver.default.
func RunHttpDefaultServer(definer httpserver.Definer, options ...Option) {
	options = append(options, WithModuleFactory("httpserver-default", httpserver.New("default", definer)))

	Run(options...)
}
