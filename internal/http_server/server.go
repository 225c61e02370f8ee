// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/half-nothing/flylog/internal/graph"
	"github.com/half-nothing/flylog/internal/http_server/controller"
	"github.com/half-nothing/flylog/internal/http_server/metrics"
	mid "github.com/half-nothing/flylog/internal/http_server/middleware"
	impl "github.com/half-nothing/flylog/internal/http_server/service"
	. "github.com/half-nothing/flylog/internal/interfaces"
	"github.com/half-nothing/flylog/internal/interfaces/global"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
	stopCleanup   context.CancelFunc
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo, stopCleanup context.CancelFunc) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
		stopCleanup:   stopCleanup,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	hc.stopCleanup()
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// NewHttpServer 创建 echo 实例并注册中间件与路由, 返回的回调用于停止后台任务并关闭服务
func NewHttpServer(applicationContent *ApplicationContent) (*echo.Echo, *HttpServerShutdownCallback) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: httpConfig.RequestDuration}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	ipPathLimiter.StartCleanup(cleanupCtx, cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	impl.InitValidator(httpConfig.Limits)

	operations := applicationContent.Operations()

	tokenService := impl.NewTokenService(httpConfig.JWT)
	userService := impl.NewUserService(logger, operations.UserOperation(), tokenService)
	flyService := impl.NewFlyService(logger, operations.FlyOperation())
	commentService := impl.NewCommentService(logger, operations.CommentOperation())
	planeService := impl.NewPlaneService(logger, operations.PlaneOperation())

	var recorder controller.RequestRecorder
	var observer graph.BatchObserver
	if httpConfig.Metrics.Enabled {
		exporter := metrics.NewExporter(httpConfig.Metrics.Namespace)
		recorder = exporter
		observer = exporter
		e.GET(httpConfig.Metrics.Path, echo.WrapHandler(exporter.Handler()))
	}

	loaderFactory := graph.NewLoaderFactory(logger, operations, httpConfig.GraphQL, observer)
	resolver := graph.NewResolver(logger, userService, flyService, commentService, planeService, loaderFactory)
	schema := graph.NewSchema(logger, httpConfig.GraphQL, resolver)

	graphqlController := controller.NewGraphQLController(logger, schema, recorder, httpConfig.GraphQL)
	healthController := controller.NewHealthController(logger, operations.Ping)

	e.POST(global.GraphQLEndpoint, graphqlController.PostQuery)
	e.GET(global.GraphQLEndpoint, graphqlController.GetQuery)
	e.GET("/health", healthController.Health)

	return e, NewHttpServerShutdownCallback(e, stopCleanup)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	httpConfig := applicationContent.ConfigManager().Config().Server.HttpServer
	logger := applicationContent.Logger()

	e, shutdownCallback := NewHttpServer(applicationContent)
	applicationContent.Cleaner().Add(shutdownCallback)

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s, graphql endpoint %s", protocol, httpConfig.Address, global.GraphQLEndpoint)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
