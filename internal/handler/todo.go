package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/internal/validation"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

// IDParam is the chi URL parameter holding the todo id.
const IDParam = "todo_id"

const (
	msgNotFound = "Todo not found"
	msgDeleted  = "Todo deleted successfully"
)

type TodoHandler struct {
	service *service.TodoService
	logger  *zap.Logger
}

func NewTodoHandler(srv *service.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.TodoInput
	if err := validation.Decode(w, r, &req); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	todo, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	var req model.TodoInput
	if err := validation.Decode(w, r, &req); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	todo, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, todo)
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	todo, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Message(w, r, http.StatusOK, msgDeleted)
}

func todoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, IDParam), 10, 64)
	if err != nil {
		return 0, validation.NewError([]string{"path", IDParam}, "must be a valid integer", "int_parsing")
	}
	return id, nil
}

func (h *TodoHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		respond.Detail(w, r, http.StatusUnprocessableEntity, verr.Fields)
	case errors.Is(err, validation.ErrBodyTooLarge):
		respond.Error(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, msgNotFound)
	default:
		h.logger.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
