package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api           *echo.Group
	useCase       todo.UseCase
	ownerResolver echo.MiddlewareFunc
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, ownerResolver echo.MiddlewareFunc) *TodoController {
	return &TodoController{api: api, useCase: useCase, ownerResolver: ownerResolver}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	todos := controller.api.Group("/todos", controller.ownerResolver)
	todos.GET("", controller.FindAll)
	todos.GET("/:id", controller.FindByID)
	todos.POST("", controller.Create)
	todos.PUT("/:id", controller.UpdateByID)
	todos.DELETE("/:id", controller.DeleteByID)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve every todo of the requesting owner, newest first
// @Tags todos
// @Produce json
// @Param X-Owner-ID header int false "Owner id, defaults to the configured owner"
// @Success 200 {array} entity.Todo "Todos ordered by creation date descending"
// @Failure 400 {object} model.ErrorResponse "Invalid owner header"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return controller.handleError(c, errMissingOwner)
	}

	todos, err := controller.useCase.FindAll(c.Request().Context(), ownerID)
	if err != nil {
		return controller.handleError(c, err)
	}
	log.Info(msg.GetMessage("todo.info.listed", len(todos), ownerID))
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get a todo
// @Description Retrieve a single todo by id
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Param X-Owner-ID header int false "Owner id, defaults to the configured owner"
// @Success 200 {object} entity.Todo "The todo"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	ownerID, id, err := controller.ownerAndID(c)
	if err != nil {
		return controller.handleError(c, err)
	}

	item, err := controller.useCase.FindByID(c.Request().Context(), ownerID, id)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo; priority defaults to 1 when omitted
// @Tags todos
// @Accept json
// @Produce json
// @Param X-Owner-ID header int false "Owner id, defaults to the configured owner"
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return controller.handleError(c, errMissingOwner)
	}

	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return controller.handleError(c, invalidBody(err))
	}

	item, err := controller.useCase.Create(c.Request().Context(), ownerID, dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateByID godoc
// @Summary Update a todo
// @Description Partially update a todo; omitted fields keep their stored value
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param X-Owner-ID header int false "Owner id, defaults to the configured owner"
// @Param todo body model.UpdateTodoDTO true "Fields to change"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [put]
func (controller *TodoController) UpdateByID(c echo.Context) error {
	ownerID, id, err := controller.ownerAndID(c)
	if err != nil {
		return controller.handleError(c, err)
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return controller.handleError(c, invalidBody(err))
	}

	item, err := controller.useCase.UpdateByID(c.Request().Context(), ownerID, id, dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteByID godoc
// @Summary Delete a todo
// @Description Permanently delete a todo
// @Tags todos
// @Param id path int true "Todo id"
// @Param X-Owner-ID header int false "Owner id, defaults to the configured owner"
// @Success 204 "Todo deleted"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [delete]
func (controller *TodoController) DeleteByID(c echo.Context) error {
	ownerID, id, err := controller.ownerAndID(c)
	if err != nil {
		return controller.handleError(c, err)
	}

	if err := controller.useCase.DeleteByID(c.Request().Context(), ownerID, id); err != nil {
		return controller.handleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

var errMissingOwner = errors.New("owner id missing from request context")

func (controller *TodoController) ownerAndID(c echo.Context) (int64, int64, error) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return 0, 0, errMissingOwner
	}
	raw := c.Param("id")
	// todo_id is an INTEGER column; larger values could never match a row.
	id, err := numberutils.ToInt32WithError(raw)
	if err != nil {
		return 0, 0, todo.NewValidationError("id", msg.GetMessage("todo.error.invalid-id", raw))
	}
	return ownerID, int64(id), nil
}

func invalidBody(err error) error {
	message := msg.GetMessage("todo.error.invalid-body")
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if detail, ok := httpErr.Message.(string); ok {
			message = msg.GetMessage("todo.error.invalid-body-detail", detail)
		}
	}
	return todo.NewValidationError("", message)
}

// handleError maps use case errors to a status. Storage details stay in the logs.
func (controller *TodoController) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, todo.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, todo.ErrNotFound):
		log.Info(msg.GetMessage("todo.info.not-found", c.Param("id")))
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("todo.error.not-found")})
	default:
		log.Error(msg.GetMessage("todo.error.storage"),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("todo.error.internal")})
	}
}
