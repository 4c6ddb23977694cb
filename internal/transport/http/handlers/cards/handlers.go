package cardshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/domain/credit"
	"fintrack/internal/transport/http/api"
	"fintrack/internal/transport/http/middleware"
	"fintrack/internal/transport/http/shared"
)

type Handler struct {
	Store *credit.Store
}

func NewHandler(store *credit.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/cards", func(r chi.Router) {
		r.Get("/", h.handleListCards)
		r.Post("/", h.handleCreateCard)
		r.Get("/summary", h.handleSummary)
		r.Post("/refresh-due-dates", h.handleRefreshDueDates)
		r.Get("/{cardID}", h.handleGetCard)
		r.Put("/{cardID}", h.handleUpdateCard)
		r.Delete("/{cardID}", h.handleDeleteCard)
		r.Get("/{cardID}/strategies", h.handleStrategies)
	})
}

type cardPayload struct {
	Name               string  `json:"name"`
	LastFour           string  `json:"lastFour"`
	CreditLimit        float64 `json:"creditLimit"`
	CurrentBalance     float64 `json:"currentBalance"`
	InterestRate       float64 `json:"interestRate"`
	MinimumPayment     float64 `json:"minimumPayment"`
	DueDateType        string  `json:"dueDateType"`
	DueDateDay         int     `json:"dueDateDay"`
	StatementDate      string  `json:"statementDate"`
	DaysAfterStatement int     `json:"daysAfterStatement"`
	DueDate            string  `json:"dueDate"`
	LastPaidDate       string  `json:"lastPaidDate"`
	LastPaidAmount     float64 `json:"lastPaidAmount"`
}

func (h *Handler) decodeCard(w http.ResponseWriter, r *http.Request, reqID string) (credit.Card, bool) {
	var payload cardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return credit.Card{}, false
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("creditLimit", payload.CreditLimit, "credit limit must be non-negative")
	v.NonNegative("currentBalance", payload.CurrentBalance, "balance must be non-negative")
	v.NonNegative("interestRate", payload.InterestRate, "interest rate must be non-negative")
	v.NonNegative("minimumPayment", payload.MinimumPayment, "minimum payment must be non-negative")
	if payload.DueDateDay < 0 || payload.DueDateDay > 31 {
		v.Add("dueDateDay", "must be between 1 and 31")
	}

	card := credit.Card{
		Name:               payload.Name,
		LastFour:           payload.LastFour,
		CreditLimit:        payload.CreditLimit,
		CurrentBalance:     payload.CurrentBalance,
		InterestRate:       payload.InterestRate,
		MinimumPayment:     payload.MinimumPayment,
		DueDateType:        credit.ParseDueDateType(payload.DueDateType),
		DueDateDay:         payload.DueDateDay,
		DaysAfterStatement: payload.DaysAfterStatement,
		LastPaidAmount:     payload.LastPaidAmount,
	}
	card.StatementDate = parseOptionalDate(v, "statementDate", payload.StatementDate)
	card.DueDate = parseOptionalDate(v, "dueDate", payload.DueDate)
	card.LastPaidDate = parseOptionalDate(v, "lastPaidDate", payload.LastPaidDate)

	if v.Reject(w, reqID) {
		return credit.Card{}, false
	}
	return card, true
}

func parseOptionalDate(v *shared.Validator, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, ok := v.Date(field, raw)
	if !ok {
		return nil
	}
	return &parsed
}

func (h *Handler) handleListCards(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	cards, err := h.Store.ListCards(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to list cards", reqID)
		return
	}
	api.Success(w, cards, reqID)
}

func (h *Handler) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	card, ok := h.decodeCard(w, r, reqID)
	if !ok {
		return
	}
	card.UserID = user.UserID

	// Derive an initial due date so the record is classifiable right away.
	if due := credit.NextDueDate(card, time.Now()); !due.IsZero() {
		card.DueDate = &due
	}

	id, err := h.Store.CreateCard(r.Context(), card)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to create card", reqID)
		return
	}
	card.ID = id
	api.Created(w, card, reqID)
}

func (h *Handler) handleGetCard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	card, err := h.Store.GetCard(r.Context(), user.UserID, chi.URLParam(r, "cardID"))
	if errors.Is(err, credit.ErrCardNotFound) {
		api.Fail(w, http.StatusNotFound, "card_not_found", "card not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to load card", reqID)
		return
	}

	view := credit.CardView{
		Card:           card,
		Utilization:    credit.Utilization(card),
		Classification: credit.ClassifyDueDate(card, time.Now()),
	}
	if due := credit.NextDueDate(card, time.Now()); !due.IsZero() {
		view.NextDueDate = &due
	}
	api.Success(w, view, reqID)
}

func (h *Handler) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	card, ok := h.decodeCard(w, r, reqID)
	if !ok {
		return
	}
	card.UserID = user.UserID
	card.ID = chi.URLParam(r, "cardID")

	err := h.Store.UpdateCard(r.Context(), card)
	if errors.Is(err, credit.ErrCardNotFound) {
		api.Fail(w, http.StatusNotFound, "card_not_found", "card not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to update card", reqID)
		return
	}
	api.Success(w, card, reqID)
}

func (h *Handler) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	err := h.Store.DeleteCard(r.Context(), user.UserID, chi.URLParam(r, "cardID"))
	if errors.Is(err, credit.ErrCardNotFound) {
		api.Fail(w, http.StatusNotFound, "card_not_found", "card not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to delete card", reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	cards, err := h.Store.ListCards(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to summarize cards", reqID)
		return
	}
	api.Success(w, credit.Summarize(cards, time.Now()), reqID)
}

func (h *Handler) handleStrategies(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	card, err := h.Store.GetCard(r.Context(), user.UserID, chi.URLParam(r, "cardID"))
	if errors.Is(err, credit.ErrCardNotFound) {
		api.Fail(w, http.StatusNotFound, "card_not_found", "card not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to load card", reqID)
		return
	}
	api.Success(w, credit.RecommendStrategies(card), reqID)
}

// handleRefreshDueDates recomputes fixed/floating due dates for the caller's
// cards and persists any that moved. Same computation the nightly job runs,
// exposed for on-demand refresh after edits.
func (h *Handler) handleRefreshDueDates(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	cards, err := h.Store.ListCards(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to list cards", reqID)
		return
	}

	now := time.Now()
	updated := 0
	for _, card := range cards {
		if card.DueDateType == credit.DueManual {
			continue
		}
		next := credit.NextDueDate(card, now)
		if next.IsZero() || (card.DueDate != nil && next.Equal(*card.DueDate)) {
			continue
		}
		if err := h.Store.UpdateDueDate(r.Context(), card.ID, next); err != nil {
			api.Fail(w, http.StatusInternalServerError, "cards_failed", "failed to update due dates", reqID)
			return
		}
		updated++
	}
	api.Success(w, map[string]any{"updated": updated}, reqID)
}
