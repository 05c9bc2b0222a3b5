package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db     Pinger
	logger *zap.Logger
}

func NewSystemHandler(db Pinger, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger,
	}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond.Message(w, r, http.StatusOK, "Simple todo Application")
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		respond.JSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": "unreachable",
		})
		return
	}
	respond.JSON(w, r, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}
