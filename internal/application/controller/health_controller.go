package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
	"todo-api/pkg/msg"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/", controller.Greet)
	controller.api.GET("/health", controller.CheckHealth)
}

// Greet godoc
// @Summary Greeting
// @Tags health
// @Produce plain
// @Success 200 {string} string "Greeting"
// @Router / [get]
func (controller *HealthController) Greet(c echo.Context) error {
	return c.String(http.StatusOK, msg.GetMessage("app.greeting"))
}

// CheckHealth godoc
// @Summary Health check
// @Description Report database and event publisher status
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "All components healthy"
// @Failure 503 {object} model.HealthResponse "At least one component is down"
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth(c.Request().Context())

	status := http.StatusOK
	if healthResponse.Status == model.StatusDown {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse)
}
