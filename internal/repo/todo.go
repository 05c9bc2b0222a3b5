package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/BuzzLyutic/todo-api/internal/database"
	"github.com/BuzzLyutic/todo-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

// TodoRepo runs every call in its own session from the injected provider.
type TodoRepo struct {
	sessions database.SessionProvider
}

func NewTodoRepo(sessions database.SessionProvider) *TodoRepo {
	return &TodoRepo{
		sessions: sessions,
	}
}

func (r *TodoRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	var out model.Todo
	err := database.WithSession(ctx, r.sessions, func(s database.Session) error {
		return scanTodo(s.QueryRow(ctx, `
			INSERT INTO todos (content, is_completed)
			VALUES ($1, $2)
			RETURNING id, content, is_completed
		`, t.Content, t.IsCompleted), &out)
	})
	return out, err
}

func (r *TodoRepo) Get(ctx context.Context, id int64) (model.Todo, error) {
	var out model.Todo
	err := database.WithSession(ctx, r.sessions, func(s database.Session) error {
		return scanTodo(s.QueryRow(ctx, `
			SELECT id, content, is_completed
			FROM todos
			WHERE id = $1
		`, id), &out)
	})
	return out, mapError(err)
}

// List returns every todo in insertion order. An empty table yields an empty,
// non-nil slice.
func (r *TodoRepo) List(ctx context.Context) ([]model.Todo, error) {
	todos := make([]model.Todo, 0)
	err := database.WithSession(ctx, r.sessions, func(s database.Session) error {
		rows, err := s.Query(ctx, `
			SELECT id, content, is_completed
			FROM todos
			ORDER BY id
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var t model.Todo
			if err := rows.Scan(&t.ID, &t.Content, &t.IsCompleted); err != nil {
				return err
			}
			todos = append(todos, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// UpdateContent overwrites content only; is_completed is left as stored.
func (r *TodoRepo) UpdateContent(ctx context.Context, id int64, content string) (model.Todo, error) {
	var out model.Todo
	err := database.WithSession(ctx, r.sessions, func(s database.Session) error {
		return scanTodo(s.QueryRow(ctx, `
			UPDATE todos
			SET content = $2
			WHERE id = $1
			RETURNING id, content, is_completed
		`, id, content), &out)
	})
	return out, mapError(err)
}

func (r *TodoRepo) ToggleCompleted(ctx context.Context, id int64) (model.Todo, error) {
	var out model.Todo
	err := database.WithSession(ctx, r.sessions, func(s database.Session) error {
		return scanTodo(s.QueryRow(ctx, `
			UPDATE todos
			SET is_completed = NOT is_completed
			WHERE id = $1
			RETURNING id, content, is_completed
		`, id), &out)
	})
	return out, mapError(err)
}

func (r *TodoRepo) Delete(ctx context.Context, id int64) error {
	return database.WithSession(ctx, r.sessions, func(s database.Session) error {
		cmd, err := s.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrorNotFound
		}
		return nil
	})
}

func scanTodo(row pgx.Row, t *model.Todo) error {
	return row.Scan(&t.ID, &t.Content, &t.IsCompleted)
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrorNotFound
	}
	return err
}
