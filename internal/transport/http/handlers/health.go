package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/metrics"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler { return &HealthHandler{store: store} }

func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"name": "Elevate Scholar Server"})
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			metrics.SetDependencyHealth("store", false)
			response.WriteError(w, r, domain.ErrStore(err))
			return
		}
		metrics.SetDependencyHealth("store", true)
	}
	response.OK(w, map[string]string{"status": "ok"})
}
