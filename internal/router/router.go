// Package router wires the todo handlers onto a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/database"
	"github.com/BuzzLyutic/todo-api/internal/handler"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

// New builds the HTTP API on top of sessions, which every todo request draws
// its database session from, and db, which backs the health check.
func New(sessions database.SessionProvider, db handler.Pinger, logger *zap.Logger) http.Handler {
	todoService := service.NewTodoService(repo.NewTodoRepo(sessions))
	todos := handler.NewTodoHandler(todoService, logger)
	system := handler.NewSystemHandler(db, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/", system.Root)
	r.Get("/health", system.Health)

	id := "/{" + handler.IDParam + "}"
	r.Post("/create_todos/", todos.Create)
	r.Post("/create_todos", addSlash)
	r.Get("/get_todos/", todos.List)
	r.Get("/get_todos", addSlash)
	r.Get("/get_todos"+id, todos.Get)
	r.Put("/update_todos"+id, todos.Update)
	r.Put("/toggle_todos"+id, todos.Toggle)
	r.Delete("/delete_todos"+id, todos.Delete)

	return r
}

// addSlash redirects to the same path with a trailing slash. 307 keeps the
// method and body on POST.
func addSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	target.Path += "/"
	http.Redirect(w, r, target.RequestURI(), http.StatusTemporaryRedirect)
}
