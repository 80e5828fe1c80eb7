package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTodoService(t *testing.T) (usecase.TodoUsecase, *mockRepo.MockTodoRepository) {
	todoRepo := mockRepo.NewMockTodoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTodoService(TodoServiceParams{
		TodoRepo: todoRepo,
		Logger:   logger,
	})

	return service, todoRepo
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestTodoService_ListTodos(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	stored := []*entity.Todo{
		{ID: 2, Title: "first by order", Order: 1},
		{ID: 1, Title: "second by order", Order: 2},
	}
	todoRepo.On("List", ctx).Return(stored, nil)

	todos, err := service.ListTodos(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, todos)
}

func TestTodoService_ListTodos_Empty(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	todoRepo.On("List", ctx).Return([]*entity.Todo{}, nil)

	todos, err := service.ListTodos(ctx)

	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoService_GetTodo(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	stored := &entity.Todo{ID: 7, Title: "buy milk", Order: 3}
	todoRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)

	todo, err := service.GetTodo(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, stored, todo)
}

func TestTodoService_GetTodo_NotFound(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	todoRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrTodoNotFound)

	todo, err := service.GetTodo(ctx, 99)

	assert.Nil(t, todo)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}

func TestTodoService_CreateTodo(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	input := &usecase.CreateTodoInput{Title: "buy milk", Order: 5}
	todoRepo.On("Create", ctx, mock.AnythingOfType("*entity.Todo")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Todo).ID = 42
		}).
		Return(nil)

	todo, err := service.CreateTodo(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), todo.ID)
	assert.Equal(t, "buy milk", todo.Title)
	assert.Equal(t, 5, todo.Order)
	assert.False(t, todo.Completed)
}

func TestTodoService_CreateTodo_MissingTitle(t *testing.T) {
	service, _ := createTestTodoService(t)
	ctx := context.Background()

	inputs := []*usecase.CreateTodoInput{
		nil,
		{Title: ""},
		{Title: "   "},
	}

	for _, input := range inputs {
		todo, err := service.CreateTodo(ctx, input)
		assert.Nil(t, todo)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingTodoFields))
	}
}

func TestTodoService_CreateTodos(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	inputs := []*usecase.CreateTodoInput{
		{Title: "first", Order: 1},
		{Title: "second", Order: 2, Completed: true},
	}
	todoRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]*entity.Todo")).
		Run(func(args mock.Arguments) {
			for i, todo := range args.Get(1).([]*entity.Todo) {
				todo.ID = int64(i + 1)
			}
		}).
		Return(nil)

	todos, err := service.CreateTodos(ctx, inputs)

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, int64(1), todos[0].ID)
	assert.Equal(t, "second", todos[1].Title)
	assert.True(t, todos[1].Completed)
}

func TestTodoService_CreateTodos_RejectsInvalidBatch(t *testing.T) {
	service, _ := createTestTodoService(t)
	ctx := context.Background()

	// An untitled entry anywhere rejects the whole batch
	inputs := []*usecase.CreateTodoInput{
		{Title: "fine"},
		{Title: ""},
	}

	todos, err := service.CreateTodos(ctx, inputs)
	assert.Nil(t, todos)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingTodoFields))

	todos, err = service.CreateTodos(ctx, nil)
	assert.Nil(t, todos)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingTodoFields))
}

func TestTodoService_UpdateTodo(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	input := &usecase.UpdateTodoInput{
		Title:     strPtr("renamed"),
		Order:     intPtr(9),
		Completed: boolPtr(true),
	}
	todoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)

	todo, err := service.UpdateTodo(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), todo.ID)
	assert.Equal(t, "renamed", todo.Title)
	assert.Equal(t, 9, todo.Order)
	assert.True(t, todo.Completed)
}

func TestTodoService_UpdateTodo_RequiresAllFields(t *testing.T) {
	service, _ := createTestTodoService(t)
	ctx := context.Background()

	inputs := []*usecase.UpdateTodoInput{
		nil,
		{Order: intPtr(1), Completed: boolPtr(true)},
		{Title: strPtr("a"), Completed: boolPtr(true)},
		{Title: strPtr("a"), Order: intPtr(1)},
		{Title: strPtr("  "), Order: intPtr(1), Completed: boolPtr(true)},
	}

	for _, input := range inputs {
		todo, err := service.UpdateTodo(ctx, 3, input)
		assert.Nil(t, todo)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingTodoFields))
	}
}

func TestTodoService_UpdateTodo_NotFound(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	input := &usecase.UpdateTodoInput{
		Title:     strPtr("renamed"),
		Order:     intPtr(9),
		Completed: boolPtr(true),
	}
	todoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Todo")).
		Return(repository.ErrTodoNotFound)

	todo, err := service.UpdateTodo(ctx, 99, input)

	assert.Nil(t, todo)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}

func TestTodoService_DeleteTodo(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	todoRepo.On("Delete", ctx, int64(3)).Return(nil)

	assert.NoError(t, service.DeleteTodo(ctx, 3))
}

func TestTodoService_DeleteTodo_NotFound(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	todoRepo.On("Delete", ctx, int64(99)).Return(repository.ErrTodoNotFound)

	err := service.DeleteTodo(ctx, 99)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}

func TestTodoService_DeleteAllTodos(t *testing.T) {
	service, todoRepo := createTestTodoService(t)
	ctx := context.Background()

	todoRepo.On("DeleteAll", ctx).Return(int64(4), nil)

	count, err := service.DeleteAllTodos(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
