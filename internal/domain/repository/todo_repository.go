package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrTodoNotFound is a domain-specific error returned when a todo is not found.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the standard CRUD operations for todo persistence.
type TodoRepository interface {
	// List retrieves all todos ordered by their "order" column.
	List(ctx context.Context) ([]*entity.Todo, error)

	// FindByID retrieves a single todo by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)

	// Create persists a single new todo and fills in the generated ID.
	Create(ctx context.Context, todo *entity.Todo) error

	// CreateBatch persists several todos in one insert.
	CreateBatch(ctx context.Context, todos []*entity.Todo) error

	// Update replaces the mutable fields of an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a single todo by its ID.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every todo and reports how many rows were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
