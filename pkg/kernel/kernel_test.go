package kernel_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/kernel"
	"github.com/justtrackio/crudgen/pkg/log"
	logMocks "github.com/justtrackio/crudgen/pkg/log/mocks"
	"github.com/stretchr/testify/suite"
)

type essentialModule struct {
	kernel.EssentialModule
	run kernel.ModuleRunFunc
}

func (m *essentialModule) Run(ctx context.Context) error {
	return m.run(ctx)
}

func factoryFor(module kernel.Module) kernel.ModuleFactory {
	return func(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
		return module, nil
	}
}

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()

	return nil
}

type KernelTestSuite struct {
	suite.Suite

	exitCode int
	kernel   kernel.Kernel
}

func (s *KernelTestSuite) SetupTest() {
	s.exitCode = -1

	logger := logMocks.NewLoggerMock(logMocks.WithMockAll)
	s.kernel = kernel.New(cfg.New(), logger, kernel.WithKillTimeout(time.Second), kernel.WithExitHandler(func(code int) {
		s.exitCode = code
	}))
}

func (s *KernelTestSuite) TestNothingToRun() {
	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeNothingToRun, s.exitCode)
}

func (s *KernelTestSuite) TestNoForeground() {
	s.kernel.Add("background", factoryFor(kernel.NewModuleFunc(blockUntilDone)), kernel.ModuleType(kernel.BackgroundModule{}))
	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeNoForeground, s.exitCode)
}

func (s *KernelTestSuite) TestFactoryFails() {
	s.kernel.Add("broken", func(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
		return nil, fmt.Errorf("no database")
	})
	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeErr, s.exitCode)
}

func (s *KernelTestSuite) TestForegroundModulesDone() {
	backgroundStopped := false

	s.kernel.Add("foreground", factoryFor(kernel.NewModuleFunc(func(ctx context.Context) error {
		return nil
	})))
	s.kernel.Add("background", factoryFor(kernel.NewModuleFunc(func(ctx context.Context) error {
		<-ctx.Done()
		backgroundStopped = true

		return nil
	})), kernel.ModuleType(kernel.BackgroundModule{}))

	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeOk, s.exitCode)
	s.True(backgroundStopped)
}

func (s *KernelTestSuite) TestEssentialModuleStopsKernel() {
	s.kernel.Add("server", factoryFor(kernel.NewModuleFunc(blockUntilDone)))
	s.kernel.Add("essential", factoryFor(&essentialModule{
		run: func(ctx context.Context) error {
			return nil
		},
	}))

	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeOk, s.exitCode)
}

func (s *KernelTestSuite) TestModuleErrors() {
	s.kernel.Add("failing", factoryFor(kernel.NewModuleFunc(func(ctx context.Context) error {
		return fmt.Errorf("port in use")
	})))
	s.kernel.Add("panicking", factoryFor(kernel.NewModuleFunc(func(ctx context.Context) error {
		panic("boom")
	})))

	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeErr, s.exitCode)
}

func (s *KernelTestSuite) TestStop() {
	s.kernel.Add("server", factoryFor(kernel.NewModuleFunc(blockUntilDone)))

	go func() {
		<-s.kernel.Running()
		s.kernel.Stop("test done")
	}()

	s.kernel.Run(context.Background())

	s.Equal(kernel.ExitCodeOk, s.exitCode)
}

func (s *KernelTestSuite) TestForcedShutdown() {
	s.kernel.Add("stuck", factoryFor(kernel.NewModuleFunc(func(ctx context.Context) error {
		time.Sleep(time.Minute)

		return nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.kernel.Run(ctx)

	s.Equal(kernel.ExitCodeForced, s.exitCode)
}

func TestKernelTestSuite(t *testing.T) {
	suite.Run(t, new(KernelTestSuite))
}
