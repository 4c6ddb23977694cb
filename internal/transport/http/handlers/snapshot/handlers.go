package snapshothandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/domain/snapshot"
	"fintrack/internal/transport/http/api"
	"fintrack/internal/transport/http/middleware"
)

type Handler struct {
	Service *snapshot.Service
}

func NewHandler(service *snapshot.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/snapshot", func(r chi.Router) {
		r.Get("/", h.handleSnapshot)
		r.Get("/report", h.handleReport)
	})
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	snap, err := h.Service.Build(r.Context(), user.UserID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to build snapshot", reqID)
		return
	}
	api.Success(w, snap, reqID)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	snap, err := h.Service.Build(r.Context(), user.UserID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to build snapshot", reqID)
		return
	}
	data, err := snapshot.RenderPDF(snap, user.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-snapshot.pdf"`)
	_, _ = w.Write(data)
}
