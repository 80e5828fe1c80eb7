package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// CreateTodoInput defines the data for a new todo item.
type CreateTodoInput struct {
	Title     string `json:"title"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}

// UpdateTodoInput carries a full replacement of a todo's mutable fields.
// Pointer fields let the flow distinguish "absent" from zero values when
// enforcing the all-fields-required update rule.
type UpdateTodoInput struct {
	Title     *string `json:"title"`
	Order     *int    `json:"order"`
	Completed *bool   `json:"completed"`
}

// TodoUsecase defines the interface for todo CRUD operations.
type TodoUsecase interface {
	ListTodos(ctx context.Context) ([]*entity.Todo, error)
	GetTodo(ctx context.Context, id int64) (*entity.Todo, error)
	CreateTodo(ctx context.Context, input *CreateTodoInput) (*entity.Todo, error)
	CreateTodos(ctx context.Context, inputs []*CreateTodoInput) ([]*entity.Todo, error)
	UpdateTodo(ctx context.Context, id int64, input *UpdateTodoInput) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	DeleteAllTodos(ctx context.Context) (int64, error)
}
