package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// TodoRepository is the storage contract for todos. Methods that address a
// single row return ErrorNotFound when no row has that id.
type TodoRepository interface {
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	UpdateContent(ctx context.Context, id int64, content string) (model.Todo, error)
	ToggleCompleted(ctx context.Context, id int64) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
}
