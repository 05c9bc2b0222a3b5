package service

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

// TodoService validates todo input before handing it to the repository.
// Update rewrites content only; completion changes go through Toggle.
type TodoService struct {
	repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, in model.TodoInput) (model.Todo, error) {
	if err := in.Validate(); err != nil {
		return model.Todo{}, err
	}

	t := model.Todo{Content: *in.Content}
	if in.IsCompleted != nil {
		t.IsCompleted = *in.IsCompleted
	}
	return s.repo.Create(ctx, t)
}

func (s *TodoService) Get(ctx context.Context, id int64) (model.Todo, error) {
	return s.repo.Get(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

// Update replaces the content of todo id. in.IsCompleted passes validation
// but is not applied; completion only changes through Toggle.
func (s *TodoService) Update(ctx context.Context, id int64, in model.TodoInput) (model.Todo, error) {
	if err := in.Validate(); err != nil {
		return model.Todo{}, err
	}
	return s.repo.UpdateContent(ctx, id, *in.Content)
}

func (s *TodoService) Toggle(ctx context.Context, id int64) (model.Todo, error) {
	return s.repo.ToggleCompleted(ctx, id)
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
