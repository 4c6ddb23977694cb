package credit

import (
	"math"
	"time"
)

// CardView is one card's derived figures inside a Summary.
type CardView struct {
	Card           Card              `json:"card"`
	Utilization    float64           `json:"utilization"`
	NextDueDate    *time.Time        `json:"nextDueDate,omitempty"`
	Classification DueClassification `json:"classification"`
}

// Summary is a pure reduction over a collection of per-card results. Field
// names are part of the stable downstream contract.
type Summary struct {
	Cards              []CardView `json:"cards"`
	TotalDebt          float64    `json:"totalDebt"`
	TotalCreditLimit   float64    `json:"totalCreditLimit"`
	TotalAvailable     float64    `json:"totalAvailable"`
	OverallUtilization float64    `json:"overallUtilization"`
	DueSoon            []CardView `json:"dueSoon"`
	Overdue            []CardView `json:"overdue"`
}

// Summarize reduces a card collection to aggregate debt and due-date views
// as of the given date. Each card is evaluated independently; the input is
// never mutated.
func Summarize(cards []Card, asOf time.Time) Summary {
	summary := Summary{Cards: make([]CardView, 0, len(cards))}

	for _, card := range cards {
		view := CardView{
			Card:           card,
			Utilization:    Utilization(card),
			Classification: ClassifyDueDate(card, asOf),
		}
		if due := NextDueDate(card, asOf); !due.IsZero() {
			view.NextDueDate = &due
		}
		summary.Cards = append(summary.Cards, view)

		if card.CurrentBalance > 0 {
			summary.TotalDebt += card.CurrentBalance
		}
		if card.CreditLimit > 0 {
			summary.TotalCreditLimit += card.CreditLimit
		}

		switch view.Classification.Status {
		case DueStatusOverdue:
			summary.Overdue = append(summary.Overdue, view)
		case DueStatusToday, DueStatusSoon:
			summary.DueSoon = append(summary.DueSoon, view)
		}
	}

	summary.TotalAvailable = summary.TotalCreditLimit - summary.TotalDebt
	if summary.TotalAvailable < 0 {
		summary.TotalAvailable = 0
	}
	if summary.TotalCreditLimit > 0 && summary.TotalDebt > 0 {
		summary.OverallUtilization = math.Round(summary.TotalDebt / summary.TotalCreditLimit * 100)
	}
	return summary
}

// RecommendAll aggregates payoff strategies per card, keyed by card ID.
func RecommendAll(cards []Card) map[string][]Strategy {
	out := make(map[string][]Strategy, len(cards))
	for _, card := range cards {
		if strategies := RecommendStrategies(card); len(strategies) > 0 {
			out[card.ID] = strategies
		}
	}
	return out
}
