package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/domain/validation"
	"todo-api/internal/infra/events"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0
// @description CRUD service for per-owner todo items.
// @BasePath /
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	store, err := openStorage(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("db.error.open", err))
	}
	log.Info(msg.GetMessage("db.info.connected", resource.GetStringOrDefault("app.db.driver", driverSQL)))

	publisher, err := events.NewPublisher(ctx)
	if err != nil {
		_ = store.close()
		log.Fatal(msg.GetMessage("events.error.init", err))
	}
	log.Info(msg.GetMessage("events.info.ready", resource.GetStringOrDefault("app.events.driver", events.DriverNone)))

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(store.health, publisher)
	todoUseCase := todo.NewTodoUseCase(store.todos, publisher, validation.New())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	api := e.Group(strings.TrimSuffix(resource.GetString("app.server.context-path"), "/"))
	ownerResolver := middleware.OwnerResolver(
		resource.GetStringOrDefault("app.todo.owner-header", "X-Owner-ID"),
		defaultOwner(),
	)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	todoController := controller.NewTodoController(api, todoUseCase, ownerResolver)

	// Init Routes
	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	healthScheduler := schedule.NewHealthReportScheduler(healthUseCase, resource.GetString("app.health.report-cron"))
	if err := healthScheduler.InitHealthReportTasks(); err != nil {
		log.Error(msg.GetMessage("health.cron.error", err))
	}

	address := net.JoinHostPort(
		resource.GetStringOrDefault("app.server.host", "127.0.0.1"),
		resource.GetStringOrDefault("app.server.port", "8000"),
	)

	go func() {
		log.Info(msg.GetMessage("app.started", address))
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(msg.GetMessage("app.error.start", err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
	defer cancel()
	healthScheduler.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", err))
	}
	if err := publisher.Close(); err != nil {
		log.Error(msg.GetMessage("events.error.close", err))
	}
	if err := store.close(); err != nil {
		log.Error(msg.GetMessage("db.error.close", err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func defaultOwner() int64 {
	if owner := resource.GetInt64("app.todo.default-owner"); owner > 0 {
		return owner
	}
	return 1
}

func shutdownTimeout() time.Duration {
	if timeout := resource.GetDuration("app.server.shutdown-timeout"); timeout > 0 {
		return timeout
	}
	return 10 * time.Second
}
