package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nexus-os/office-backend/internal/handler/http/response"
)

// Resetter wipes every persisted key. *store.Store satisfies it.
type Resetter interface {
	Reset(ctx context.Context) error
}

type SystemHandler interface {
	Reset(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	resetter Resetter
}

func NewSystemHandler(resetter Resetter) SystemHandler {
	return &systemHandlerImpl{resetter: resetter}
}

// Reset handles POST /system/reset. Defaults are re-seeded lazily on the
// next read of each key.
func (h *systemHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.resetter.Reset(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Warn("store reset requested", "remote_addr", r.RemoteAddr)
	response.SuccessWithMessage(w, "Store reset", nil)
}
