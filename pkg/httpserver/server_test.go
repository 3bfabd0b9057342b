package httpserver_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/log"
	logMocks "github.com/justtrackio/crudgen/pkg/log/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PingHandler struct{}

func (h PingHandler) Handle(_ context.Context, _ *httpserver.Request) (*httpserver.Response, error) {
	return httpserver.NewJsonResponse(map[string]string{"ping": "pong"}), nil
}

type serverTestSuite struct {
	suite.Suite

	cancel context.CancelFunc
	done   chan error
	client *resty.Client
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(serverTestSuite))
}

func (s *serverTestSuite) SetupTest() {
	settings := &httpserver.Settings{
		Port: "0",
		Mode: gin.TestMode,
		Compression: httpserver.CompressionSettings{
			Level: "none",
		},
		Timeout: httpserver.TimeoutSettings{
			Read:     time.Second,
			Write:    time.Second,
			Idle:     time.Second,
			Shutdown: time.Second,
		},
	}

	definer := func(ctx context.Context, config cfg.Config, logger log.Logger) (*httpserver.Definitions, error) {
		d := &httpserver.Definitions{}
		d.GET("/ping", httpserver.CreateHandler(PingHandler{}))

		return d, nil
	}

	logger := logMocks.NewLoggerMock(logMocks.WithMockAll)
	ctx, cancel := context.WithCancel(context.Background())

	module, err := httpserver.NewWithSettings("default", definer, settings)(ctx, cfg.New(), logger)
	s.Require().NoError(err)

	server := module.(*httpserver.HttpServer)
	port, err := server.GetPort()
	s.Require().NoError(err)

	s.cancel = cancel
	s.done = make(chan error, 1)
	s.client = resty.New().SetBaseURL(fmt.Sprintf("http://127.0.0.1:%d", *port))

	go func() {
		s.done <- server.Run(ctx)
	}()

	s.Eventually(func() bool {
		resp, err := s.client.R().Get(httpserver.HealthCheckPath)

		return err == nil && resp.StatusCode() == http.StatusOK
	}, time.Second, 10*time.Millisecond)
}

func (s *serverTestSuite) TearDownTest() {
	s.cancel()

	select {
	case err := <-s.done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("server did not stop")
	}
}

func (s *serverTestSuite) TestHealthCheck() {
	resp, err := s.client.R().Get(httpserver.HealthCheckPath)

	s.NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode())
	s.JSONEq(`{}`, resp.String())
}

func (s *serverTestSuite) TestDefinedRoute() {
	result := map[string]string{}
	resp, err := s.client.R().SetResult(&result).Get("/ping")

	s.NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode())
	s.Equal(map[string]string{"ping": "pong"}, result)
}

func (s *serverTestSuite) TestUnknownRoute() {
	resp, err := s.client.R().Get("/unknown")

	s.NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode())
}

func TestNew_InvalidSettings(t *testing.T) {
	config := cfg.New(map[string]any{
		"httpserver": map[string]any{
			"default": map[string]any{
				"mode": "loud",
			},
		},
	})

	definer := func(ctx context.Context, config cfg.Config, logger log.Logger) (*httpserver.Definitions, error) {
		return &httpserver.Definitions{}, nil
	}

	_, err := httpserver.New("default", definer)(context.Background(), config, logMocks.NewLoggerMock(logMocks.WithMockAll))

	assert.ErrorContains(t, err, "failed to unmarshal httpserver settings")
	assert.ErrorContains(t, err, "failed on the oneof rule")
}
