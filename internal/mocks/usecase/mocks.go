// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock wired to the test's lifecycle.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTodoUsecase is a mock implementation of usecase.TodoUsecase.
type MockTodoUsecase struct {
	mock.Mock
}

// NewMockTodoUsecase creates a mock wired to the test's lifecycle.
func NewMockTodoUsecase(t *testing.T) *MockTodoUsecase {
	m := &MockTodoUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTodoUsecase) ListTodos(ctx context.Context) ([]*entity.Todo, error) {
	args := m.Called(ctx)
	if todos, ok := args.Get(0).([]*entity.Todo); ok {
		return todos, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoUsecase) GetTodo(ctx context.Context, id int64) (*entity.Todo, error) {
	args := m.Called(ctx, id)
	if todo, ok := args.Get(0).(*entity.Todo); ok {
		return todo, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoUsecase) CreateTodo(ctx context.Context, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, input)
	if todo, ok := args.Get(0).(*entity.Todo); ok {
		return todo, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoUsecase) CreateTodos(ctx context.Context, inputs []*usecase.CreateTodoInput) ([]*entity.Todo, error) {
	args := m.Called(ctx, inputs)
	if todos, ok := args.Get(0).([]*entity.Todo); ok {
		return todos, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoUsecase) UpdateTodo(ctx context.Context, id int64, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, id, input)
	if todo, ok := args.Get(0).(*entity.Todo); ok {
		return todo, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoUsecase) DeleteTodo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockTodoUsecase) DeleteAllTodos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
