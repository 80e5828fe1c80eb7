package postgres

import (
	"context"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// todoRepository implements the domain's TodoRepository interface using GORM.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// List retrieves every todo sorted by position. "order" is a reserved word in
// Postgres, so the column reference goes through clause.OrderByColumn to get
// quoted correctly.
func (repo *todoRepository) List(ctx context.Context) ([]*entity.Todo, error) {
	var todoMs []*model.TodoModel
	err := repo.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&todoMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(todoMs))
	for _, todoM := range todoMs {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// FindByID retrieves a single todo by its primary key.
func (repo *todoRepository) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).First(&todoM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return toTodoDomain(&todoM), nil
}

// Create persists a single todo and copies back the generated ID.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)
	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required todo fields")
		}

		return errors.Wrap(err, "failed to create todo")
	}

	todo.ID = todoM.ID

	return nil
}

// CreateBatch persists several todos with one insert and copies back the
// generated IDs in order.
func (repo *todoRepository) CreateBatch(ctx context.Context, todos []*entity.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	todoMs := make([]*model.TodoModel, 0, len(todos))
	for _, todo := range todos {
		todoMs = append(todoMs, fromTodoDomain(todo))
	}

	if err := repo.db.WithContext(ctx).Create(&todoMs).Error; err != nil {
		return errors.Wrap(err, "failed to create todos")
	}

	for i, todoM := range todoMs {
		todos[i].ID = todoM.ID
	}

	return nil
}

// Update replaces the mutable columns of an existing todo. Zero rows affected
// means the todo does not exist.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", todo.ID).
		Updates(map[string]any{
			"title":     todo.Title,
			"order":     todo.Order,
			"completed": todo.Completed,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// Delete removes a single todo by its primary key.
func (repo *todoRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.TodoModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// DeleteAll removes every todo and reports the number of removed rows.
func (repo *todoRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.TodoModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete all todos")
	}

	return result.RowsAffected, nil
}

// --- Mapper functions ---

func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:        data.ID,
		Title:     data.Title,
		Order:     data.Order,
		Completed: data.Completed,
	}
}

func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:        data.ID,
		Title:     data.Title,
		Order:     data.Order,
		Completed: data.Completed,
	}
}
