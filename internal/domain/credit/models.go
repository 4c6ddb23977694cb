package credit

import (
	"strings"
	"time"
)

type DueDateType string

const (
	DueFixed    DueDateType = "fixed"
	DueFloating DueDateType = "floating"
	DueManual   DueDateType = "manual"

	// dueStatementBased is a documented alias of floating accepted on input.
	dueStatementBased = "statement_based"
)

// ParseDueDateType normalizes a raw due-date type. "statement_based" maps to
// floating; anything unrecognized falls back to manual, which never
// auto-advances a date.
func ParseDueDateType(raw string) DueDateType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(DueFixed):
		return DueFixed
	case string(DueFloating), dueStatementBased:
		return DueFloating
	case string(DueManual):
		return DueManual
	}
	return DueManual
}

// Card is a single credit-card record. The engine reads it by value and
// never mutates it; recomputed due dates are returned, not written back.
type Card struct {
	ID                 string      `json:"id,omitempty"`
	UserID             string      `json:"-"`
	Name               string      `json:"name"`
	LastFour           string      `json:"lastFour"`
	CreditLimit        float64     `json:"creditLimit"`
	CurrentBalance     float64     `json:"currentBalance"`
	InterestRate       float64     `json:"interestRate"` // annual percent, e.g. 24.99
	MinimumPayment     float64     `json:"minimumPayment"`
	DueDateType        DueDateType `json:"dueDateType"`
	DueDateDay         int         `json:"dueDateDay,omitempty"` // 1-31, fixed type
	StatementDate      *time.Time  `json:"statementDate,omitempty"`
	DaysAfterStatement int         `json:"daysAfterStatement,omitempty"`
	DueDate            *time.Time  `json:"dueDate,omitempty"`
	LastPaidDate       *time.Time  `json:"lastPaidDate,omitempty"`
	LastPaidAmount     float64     `json:"lastPaidAmount,omitempty"`
	CreatedAt          time.Time   `json:"createdAt,omitempty"`
	UpdatedAt          time.Time   `json:"updatedAt,omitempty"`
}

// Amortization is the outcome of a payoff simulation. Months never exceeds
// MaxAmortizationMonths; Capped marks a simulation that hit the limit with
// balance remaining, which callers must check explicitly.
type Amortization struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPayments float64 `json:"totalPayments"`
	Capped        bool    `json:"capped,omitempty"`
}

const (
	StrategyMinimum    = "minimum"
	StrategyAggressive = "aggressive"
)

// Strategy is one advisory payoff option. PaysOff is false when the payment
// never clears the balance; Result is nil in that case.
type Strategy struct {
	Name           string        `json:"name"`
	MonthlyPayment float64       `json:"monthlyPayment"`
	Category       string        `json:"category"`
	PaysOff        bool          `json:"paysOff"`
	Result         *Amortization `json:"result,omitempty"`
}

const (
	DueStatusNone     = "no_date"
	DueStatusOverdue  = "overdue"
	DueStatusToday    = "due_today"
	DueStatusSoon     = "due_soon"
	DueStatusThisWeek = "due_this_week"
	DueStatusLater    = "due_later"
)

// DueClassification buckets a card's next due date relative to a reference
// date. DaysUntilDue is meaningless for status no_date.
type DueClassification struct {
	Status       string `json:"status"`
	DaysUntilDue int    `json:"daysUntilDue"`
}
