package expenseshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/domain/expense"
	"fintrack/internal/transport/http/api"
	"fintrack/internal/transport/http/middleware"
	"fintrack/internal/transport/http/shared"
)

type Handler struct {
	Store *expense.Store
}

func NewHandler(store *expense.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", h.handleListExpenses)
		r.Post("/", h.handleCreateExpense)
		r.Get("/analytics", h.handleAnalytics)
		r.Delete("/{expenseID}", h.handleDeleteExpense)
	})
}

type expensePayload struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
}

func (h *Handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, _ = v.Date("from", raw)
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, _ = v.Date("to", raw)
	}
	if v.Reject(w, reqID) {
		return
	}

	expenses, err := h.Store.ListExpenses(r.Context(), user.UserID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "expenses_failed", "failed to list expenses", reqID)
		return
	}
	api.Success(w, expenses, reqID)
}

func (h *Handler) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("amount", payload.Amount, "amount must be non-negative")
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, reqID) {
		return
	}

	record := expense.Expense{
		UserID:   user.UserID,
		Name:     payload.Name,
		Amount:   payload.Amount,
		Category: expense.NormalizeCategory(expense.Category(payload.Category)),
		Type:     expense.NormalizeType(expense.Type(payload.Type)),
		Date:     date,
	}
	id, err := h.Store.CreateExpense(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "expenses_failed", "failed to create expense", reqID)
		return
	}
	record.ID = id
	api.Created(w, record, reqID)
}

func (h *Handler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	err := h.Store.DeleteExpense(r.Context(), user.UserID, chi.URLParam(r, "expenseID"))
	if errors.Is(err, expense.ErrExpenseNotFound) {
		api.Fail(w, http.StatusNotFound, "expense_not_found", "expense not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "expenses_failed", "failed to delete expense", reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

type analyticsResponse struct {
	Total      float64                      `json:"total"`
	ByCategory map[expense.Category]float64 `json:"byCategory"`
	ByType     map[expense.Type]float64     `json:"byType"`
	Trend      []expense.MonthBucket        `json:"trend"`
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	months := 6
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			api.Fail(w, http.StatusBadRequest, "invalid_months", "months must be between 1 and 24", reqID)
			return
		}
		months = parsed
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	expenses, err := h.Store.ListExpenses(r.Context(), user.UserID, windowStart, time.Time{})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "expenses_failed", "failed to load expenses", reqID)
		return
	}

	api.Success(w, analyticsResponse{
		Total:      expense.Total(expenses),
		ByCategory: expense.ByCategory(expenses),
		ByType:     expense.ByType(expenses),
		Trend:      expense.Trend(expenses, months, now),
	}, reqID)
}
