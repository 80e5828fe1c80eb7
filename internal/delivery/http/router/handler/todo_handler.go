package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"todo/internal/delivery/http/response"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TodoHandler holds dependencies for todo CRUD handlers.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every todo sorted by position.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.uc.ListTodos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todos, "Todos retrieved successfully")
}

// Get returns a single todo by ID.
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return err
	}

	todo, err := h.uc.GetTodo(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "Todo retrieved successfully")
}

// Create accepts either a single todo object or an array of todos in one
// request body and dispatches accordingly.
func (h *TodoHandler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid todo input")
	}

	if isJSONArray(body) {
		var inputs []*usecase.CreateTodoInput
		if err := json.Unmarshal(body, &inputs); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid todo input")
		}

		todos, err := h.uc.CreateTodos(c.Request().Context(), inputs)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, todos,
			fmt.Sprintf("Successfully created %d todos", len(todos)))
	}

	var input *usecase.CreateTodoInput
	if err := json.Unmarshal(body, &input); err != nil || input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.uc.CreateTodo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, todo, "Todo created successfully")
}

// Update replaces the mutable fields of an existing todo.
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateTodoInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.uc.UpdateTodo(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "Todo updated successfully")
}

// Delete removes a single todo by ID.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := parseTodoID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTodo(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Todo deleted successfully")
}

// DeleteAll removes every todo and reports how many were removed.
func (h *TodoHandler) DeleteAll(c echo.Context) error {
	count, err := h.uc.DeleteAllTodos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": count},
		fmt.Sprintf("Deleted %d todos", count))
}

// parseTodoID reads the :id path parameter. A non-numeric ID can never match
// a row, so it reports the same not-found error as a missing todo.
func parseTodoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrTodoNotFound
	}

	return id, nil
}

// isJSONArray reports whether the body's first significant byte opens an array.
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")

	return len(trimmed) > 0 && trimmed[0] == '['
}
