package kernel

import (
	"context"

	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/log"
)

type Module interface {
	// Run executes the module until ctx is canceled or its work is done.
	Run(ctx context.Context) error
}

// A TypedModule tells the kernel how to treat it when it stops. If a module does not implement
// it, it is handled like a ForegroundModule.
type TypedModule interface {
	IsEssential() bool
	IsBackground() bool
}

// ModuleFactory boots a module. It is called once before any module is run.
type ModuleFactory func(ctx context.Context, config cfg.Config, logger log.Logger) (Module, error)

// An EssentialModule stops the kernel as soon as it returns.
type EssentialModule struct{}

func (m EssentialModule) IsEssential() bool {
	return true
}

func (m EssentialModule) IsBackground() bool {
	return false
}

// A ForegroundModule keeps the kernel alive. The kernel stops after the last one returned.
type ForegroundModule struct{}

func (m ForegroundModule) IsEssential() bool {
	return false
}

func (m ForegroundModule) IsBackground() bool {
	return false
}

// A BackgroundModule is stopped by the kernel, but does not keep it running.
type BackgroundModule struct{}

func (m BackgroundModule) IsEssential() bool {
	return false
}

func (m BackgroundModule) IsBackground() bool {
	return true
}

type ModuleRunFunc func(ctx context.Context) error

type moduleFunc struct {
	run ModuleRunFunc
}

func NewModuleFunc(run ModuleRunFunc) Module {
	return &moduleFunc{
		run: run,
	}
}

func (m moduleFunc) Run(ctx context.Context) error {
	return m.run(ctx)
}

type moduleConfig struct {
	essential  bool
	background bool
}

func (c moduleConfig) GetType() string {
	switch {
	case c.essential:
		return "essential"
	case c.background:
		return "background"
	default:
		return "foreground"
	}
}

type ModuleOption func(mc *moduleConfig)

// ModuleType overwrites the type a module specifies, e.g.
//
//	k.Add("your module", NewYourModule, kernel.ModuleType(kernel.EssentialModule{}))
//
// to make the kernel stop as soon as your background module quits.
func ModuleType(moduleType TypedModule) ModuleOption {
	return func(mc *moduleConfig) {
		mc.essential = moduleType.IsEssential()
		mc.background = moduleType.IsBackground()
	}
}
