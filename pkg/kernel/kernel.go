package kernel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/coffin"
	"github.com/justtrackio/crudgen/pkg/log"
	"golang.org/x/sys/unix"
)

const (
	ExitCodeOk           = 0
	ExitCodeErr          = 1
	ExitCodeNothingToRun = 10
	ExitCodeNoForeground = 11
	ExitCodeForced       = 12
)

type ExitHandler func(code int)

type Kernel interface {
	Add(name string, factory ModuleFactory, options ...ModuleOption)
	Running() <-chan struct{}
	Run(ctx context.Context)
	Stop(reason string)
}

type Option func(k *kernel)

// WithExitHandler replaces os.Exit, which is called with the exit code once Run is done.
func WithExitHandler(handler ExitHandler) Option {
	return func(k *kernel) {
		k.exitHandler = handler
	}
}

func WithKillTimeout(timeout time.Duration) Option {
	return func(k *kernel) {
		k.killTimeout = timeout
	}
}

type moduleDefinition struct {
	name    string
	factory ModuleFactory
	options []ModuleOption
}

type moduleState struct {
	name   string
	module Module
	config moduleConfig
}

type kernel struct {
	config cfg.Config
	logger log.Logger
	clock  clock.Clock

	definitions       []moduleDefinition
	running           chan struct{}
	stopOnce          sync.Once
	stop              context.CancelFunc
	stopped           bool
	foregroundModules int32

	lck  sync.Mutex
	errs error

	killTimeout time.Duration
	exitCode    int
	exitOnce    sync.Once
	exitHandler ExitHandler
}

func New(config cfg.Config, logger log.Logger, options ...Option) Kernel {
	k := &kernel{
		config: config,
		logger: logger.WithChannel("kernel"),
		clock:  clock.Provider,

		running: make(chan struct{}),
		stop:    func() {},

		killTimeout: time.Second * 10,
		exitCode:    ExitCodeErr,
		exitHandler: os.Exit,
	}

	for _, opt := range options {
		opt(k)
	}

	return k
}

func (k *kernel) Add(name string, factory ModuleFactory, options ...ModuleOption) {
	k.definitions = append(k.definitions, moduleDefinition{
		name:    name,
		factory: factory,
		options: options,
	})
}

func (k *kernel) Running() <-chan struct{} {
	return k.running
}

// Run boots all added modules and runs them until they are done or the kernel is stopped.
// It calls the exit handler with the resulting exit code before it returns.
func (k *kernel) Run(ctx context.Context) {
	defer k.exit()

	k.logger.Info(ctx, "starting kernel")

	states, err := k.boot(ctx)
	if err != nil {
		k.logger.Error(ctx, "can not boot kernel: %w", err)

		return
	}

	if len(states) == 0 {
		k.logger.Info(ctx, "nothing to run")
		k.exitCode = ExitCodeNothingToRun

		return
	}

	for _, ms := range states {
		if !ms.config.background {
			k.foregroundModules++
		}
	}

	if k.foregroundModules == 0 {
		k.logger.Info(ctx, "no foreground modules")
		k.exitCode = ExitCodeNoForeground

		return
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	k.lck.Lock()
	k.stop = stop
	if k.stopped {
		stop()
	}
	k.lck.Unlock()

	cfn := coffin.New()
	for _, ms := range states {
		cfn.Go(func() error {
			k.runModule(runCtx, ms)

			return nil
		})
	}

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, unix.SIGTERM, unix.SIGINT)
	defer signal.Stop(sig)

	k.logger.Info(ctx, "kernel up and running with %d modules", len(states))
	close(k.running)

	select {
	case <-runCtx.Done():
		k.Stop("context done")
	case s := <-sig:
		k.Stop(fmt.Sprintf("signal %s", s.String()))
	}

	if !k.waitStopped(ctx, cfn) {
		k.exitCode = ExitCodeForced

		return
	}

	k.lck.Lock()
	defer k.lck.Unlock()

	if k.errs != nil {
		k.logger.Error(ctx, "kernel stopped with errors: %w", k.errs)

		return
	}

	k.exitCode = ExitCodeOk
}

func (k *kernel) Stop(reason string) {
	k.stopOnce.Do(func() {
		k.logger.Info(context.Background(), "stopping kernel due to: %s", reason)

		k.lck.Lock()
		defer k.lck.Unlock()

		k.stopped = true
		k.stop()
	})
}

func (k *kernel) boot(ctx context.Context) ([]*moduleState, error) {
	states := make([]*moduleState, 0, len(k.definitions))

	for _, def := range k.definitions {
		module, err := def.factory(ctx, k.config, k.logger.WithChannel(def.name))
		if err != nil {
			return nil, fmt.Errorf("can not build module %s: %w", def.name, err)
		}

		ms := &moduleState{
			name:   def.name,
			module: module,
		}

		if typed, ok := module.(TypedModule); ok {
			ModuleType(typed)(&ms.config)
		}

		for _, opt := range def.options {
			opt(&ms.config)
		}

		states = append(states, ms)
	}

	return states, nil
}

func (k *kernel) runModule(ctx context.Context, ms *moduleState) {
	k.logger.Info(ctx, "running %s module %s", ms.config.GetType(), ms.name)

	defer func() {
		err := coffin.ResolveRecovery(recover())

		if err != nil {
			k.moduleFailed(ctx, ms, err)
		}

		k.logger.Info(ctx, "stopped %s module %s", ms.config.GetType(), ms.name)

		switch {
		case ms.config.essential:
			k.Stop(fmt.Sprintf("the essential module [%s] has stopped running", ms.name))
		case !ms.config.background:
			if atomic.AddInt32(&k.foregroundModules, -1) == 0 {
				k.Stop("no more foreground modules in running state")
			}
		}
	}()

	if err := ms.module.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		k.moduleFailed(ctx, ms, err)
	}
}

func (k *kernel) moduleFailed(ctx context.Context, ms *moduleState, err error) {
	k.logger.Error(ctx, "error running %s module %s: %w", ms.config.GetType(), ms.name, err)

	k.lck.Lock()
	defer k.lck.Unlock()

	k.errs = multierror.Append(k.errs, fmt.Errorf("module %s: %w", ms.name, err))
}

func (k *kernel) waitStopped(ctx context.Context, cfn coffin.Coffin) bool {
	done := make(chan struct{})

	go func() {
		_ = cfn.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-k.clock.After(k.killTimeout):
		k.logger.Error(ctx, "kernel was not able to shutdown in %v", k.killTimeout)

		return false
	}
}

func (k *kernel) exit() {
	k.exitOnce.Do(func() {
		k.logger.Info(context.Background(), "leaving kernel with exit code %d", k.exitCode)
		k.exitHandler(k.exitCode)
	})
}
