package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface. Every operation is a
// single repository call, so no transaction manager is involved.
type todoService struct {
	todoRepo repository.TodoRepository
	logger   *slog.Logger
}

// TodoServiceParams holds dependencies for the todo service, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		logger:   params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTodos returns every todo ordered by its "order" column.
func (srv *todoService) ListTodos(ctx context.Context) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (srv *todoService) GetTodo(ctx context.Context, id int64) (*entity.Todo, error) {
	todo, err := srv.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTodoNotFound)
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return todo, nil
}

// CreateTodo persists one new todo.
func (srv *todoService) CreateTodo(ctx context.Context, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingTodoFields)
	}

	todo := &entity.Todo{
		Title:     input.Title,
		Order:     input.Order,
		Completed: input.Completed,
	}
	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Int64("id", todo.ID))

	return todo, nil
}

// CreateTodos persists a batch of todos in one insert.
func (srv *todoService) CreateTodos(ctx context.Context, inputs []*usecase.CreateTodoInput) ([]*entity.Todo, error) {
	if len(inputs) == 0 {
		return nil, errors.WithStack(domainerrors.ErrMissingTodoFields)
	}

	todos := make([]*entity.Todo, 0, len(inputs))
	for _, input := range inputs {
		if input == nil || strings.TrimSpace(input.Title) == "" {
			return nil, errors.WithStack(domainerrors.ErrMissingTodoFields)
		}
		todos = append(todos, &entity.Todo{
			Title:     input.Title,
			Order:     input.Order,
			Completed: input.Completed,
		})
	}

	if err := srv.todoRepo.CreateBatch(ctx, todos); err != nil {
		return nil, errors.Wrap(err, "failed to create todos")
	}

	srv.log(ctx).Debug("Todos created", slog.Int("count", len(todos)))

	return todos, nil
}

// UpdateTodo replaces a todo's title, order, and completed flag. All three
// fields must be present in the input.
func (srv *todoService) UpdateTodo(ctx context.Context, id int64, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	if input == nil || input.Title == nil || input.Order == nil || input.Completed == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingTodoFields)
	}
	if strings.TrimSpace(*input.Title) == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingTodoFields)
	}

	todo := &entity.Todo{
		ID:        id,
		Title:     *input.Title,
		Order:     *input.Order,
		Completed: *input.Completed,
	}
	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTodoNotFound)
		}

		return nil, errors.Wrap(err, "failed to update todo")
	}

	return todo, nil
}

// DeleteTodo removes a single todo by ID.
func (srv *todoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := srv.todoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return errors.WithStack(domainerrors.ErrTodoNotFound)
		}

		return errors.Wrap(err, "failed to delete todo")
	}

	return nil
}

// DeleteAllTodos removes every todo and reports the number removed.
func (srv *todoService) DeleteAllTodos(ctx context.Context) (int64, error) {
	count, err := srv.todoRepo.DeleteAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete all todos")
	}

	srv.log(ctx).Info("Deleted all todos", slog.Int64("count", count))

	return count, nil
}
