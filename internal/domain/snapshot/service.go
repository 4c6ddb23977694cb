package snapshot

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/domain/credit"
	"fintrack/internal/domain/expense"
	"fintrack/internal/domain/tax"
)

// Snapshot is the single aggregated view of a user's finances, built by
// running all three calculators over the stored records. Purely derived;
// never persisted.
type Snapshot struct {
	AsOf            time.Time                `json:"asOf"`
	Tax             *tax.Breakdown           `json:"tax,omitempty"`
	Credit          credit.Summary           `json:"credit"`
	Expenses        ExpenseView              `json:"expenses"`
	Savings         *expense.SavingsSummary  `json:"savings,omitempty"`
	Recommendations []expense.Recommendation `json:"recommendations,omitempty"`
}

type ExpenseView struct {
	MonthlyTotal float64                      `json:"monthlyTotal"`
	ByCategory   map[expense.Category]float64 `json:"byCategory"`
	ByType       map[expense.Type]float64     `json:"byType"`
	Trend        []expense.MonthBucket        `json:"trend"`
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (tax.Profile, error)
}

type CardStore interface {
	ListCards(ctx context.Context, userID string) ([]credit.Card, error)
}

type ExpenseStore interface {
	ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]expense.Expense, error)
}

type Service struct {
	profiles ProfileStore
	cards    CardStore
	expenses ExpenseStore
	tables   tax.RateTables
}

func NewService(profiles ProfileStore, cards CardStore, expenses ExpenseStore, tables tax.RateTables) *Service {
	return &Service{profiles: profiles, cards: cards, expenses: expenses, tables: tables}
}

const trendMonths = 6

// Build assembles the snapshot for a user as of the given time. A missing
// paycheck profile is not an error: the tax and savings sections are simply
// absent.
func (s *Service) Build(ctx context.Context, userID string, asOf time.Time) (Snapshot, error) {
	snap := Snapshot{AsOf: asOf}

	profile, err := s.profiles.GetProfile(ctx, userID)
	switch {
	case err == nil:
		breakdown := tax.Compute(profile, s.tables)
		snap.Tax = &breakdown
	case errors.Is(err, tax.ErrProfileNotFound):
	default:
		return Snapshot{}, err
	}

	cards, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Credit = credit.Summarize(cards, asOf)

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)
	expenses, err := s.expenses.ListExpenses(ctx, userID, trendStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return Snapshot{}, err
	}

	var monthExpenses []expense.Expense
	for _, e := range expenses {
		if !e.Date.Before(monthStart) {
			monthExpenses = append(monthExpenses, e)
		}
	}
	byCategory := expense.ByCategory(monthExpenses)

	snap.Expenses = ExpenseView{
		MonthlyTotal: expense.Total(monthExpenses),
		ByCategory:   byCategory,
		ByType:       expense.ByType(monthExpenses),
		Trend:        expense.Trend(expenses, trendMonths, asOf),
	}

	if snap.Tax != nil {
		savings := expense.SavingsRate(snap.Tax.MonthlyNet, snap.Expenses.MonthlyTotal)
		snap.Savings = &savings
		snap.Recommendations = expense.BudgetRecommendations(snap.Tax.MonthlyNet, byCategory)
	}
	return snap, nil
}
