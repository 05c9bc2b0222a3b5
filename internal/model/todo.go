package model

import "github.com/BuzzLyutic/todo-api/internal/validation"

type Todo struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// TodoInput is the body accepted by create and update. Any id a client sends
// is dropped: ids only come from the database.
type TodoInput struct {
	Content     *string `json:"content" validate:"required,max=255"`
	IsCompleted *bool   `json:"is_completed"`
}

func (in TodoInput) Validate() error {
	return validation.Struct(in)
}
