package paycheckhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/domain/tax"
	"fintrack/internal/transport/http/api"
	"fintrack/internal/transport/http/middleware"
	"fintrack/internal/transport/http/shared"
)

type Handler struct {
	Store  *tax.Store
	Tables tax.RateTables
}

func NewHandler(store *tax.Store, tables tax.RateTables) *Handler {
	return &Handler{Store: store, Tables: tables}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/paycheck", func(r chi.Router) {
		r.Get("/profile", h.handleGetProfile)
		r.Put("/profile", h.handlePutProfile)
		r.Get("/breakdown", h.handleBreakdown)
	})
}

type profilePayload struct {
	GrossSalaryAnnual float64 `json:"grossSalaryAnnual"`
	State             string  `json:"state"`
	VisaStatus        string  `json:"visaStatus"`
	FilingStatus      string  `json:"filingStatus"`
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	profile, err := h.Store.GetProfile(r.Context(), user.UserID)
	if errors.Is(err, tax.ErrProfileNotFound) {
		api.Fail(w, http.StatusNotFound, "profile_not_found", "no paycheck profile yet", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", reqID)
		return
	}
	api.Success(w, profile, reqID)
}

func (h *Handler) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	state := strings.ToUpper(strings.TrimSpace(payload.State))
	v := shared.NewValidator()
	v.NonNegative("grossSalaryAnnual", payload.GrossSalaryAnnual, "salary must be non-negative")
	if !tax.ValidVisaStatus(tax.VisaStatus(payload.VisaStatus)) {
		v.Add("visaStatus", "unknown visa status")
	}
	if !tax.ValidFilingStatus(tax.FilingStatus(payload.FilingStatus)) {
		v.Add("filingStatus", "unknown filing status")
	}
	// The engine would treat an unknown state as 0% tax; reject it here so a
	// typo cannot masquerade as a no-income-tax state.
	if !h.Tables.KnownState(state) {
		v.Add("state", "unknown state code")
	}
	if v.Reject(w, reqID) {
		return
	}

	profile := tax.Profile{
		UserID:            user.UserID,
		GrossSalaryAnnual: payload.GrossSalaryAnnual,
		State:             state,
		VisaStatus:        tax.VisaStatus(payload.VisaStatus),
		FilingStatus:      tax.FilingStatus(payload.FilingStatus),
	}
	if _, err := h.Store.UpsertProfile(r.Context(), profile); err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to save profile", reqID)
		return
	}
	api.Success(w, profile, reqID)
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	profile, err := h.Store.GetProfile(r.Context(), user.UserID)
	if errors.Is(err, tax.ErrProfileNotFound) {
		api.Fail(w, http.StatusNotFound, "profile_not_found", "no paycheck profile yet", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "breakdown_failed", "failed to compute breakdown", reqID)
		return
	}
	api.Success(w, tax.Compute(profile, h.Tables), reqID)
}
