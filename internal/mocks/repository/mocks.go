// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test's lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	args := m.Called(ctx, email, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockTodoRepository is a mock implementation of repository.TodoRepository.
type MockTodoRepository struct {
	mock.Mock
}

// NewMockTodoRepository creates a mock wired to the test's lifecycle.
func NewMockTodoRepository(t *testing.T) *MockTodoRepository {
	m := &MockTodoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTodoRepository) List(ctx context.Context) ([]*entity.Todo, error) {
	args := m.Called(ctx)
	if todos, ok := args.Get(0).([]*entity.Todo); ok {
		return todos, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoRepository) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	args := m.Called(ctx, id)
	if todo, ok := args.Get(0).(*entity.Todo); ok {
		return todo, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *MockTodoRepository) CreateBatch(ctx context.Context, todos []*entity.Todo) error {
	args := m.Called(ctx, todos)

	return args.Error(0)
}

func (m *MockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockTodoRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// StubRepositoryFactory hands out fixed repositories, letting transaction
// callbacks run against mocks.
type StubRepositoryFactory struct {
	UserRepo repository.UserRepository
	TodoRepo repository.TodoRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewTodoRepository() repository.TodoRepository {
	return f.TodoRepo
}

// StubTransactionManager executes the callback immediately with the given
// factory, with no real transaction underneath.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
