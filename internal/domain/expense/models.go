package expense

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryFood           Category = "food"
	CategoryUtilities      Category = "utilities"
	CategoryInsurance      Category = "insurance"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryEducation      Category = "education"
	CategoryPersonal       Category = "personal"
	CategoryDebt           Category = "debt"
	CategorySavings        Category = "savings"
	CategoryOther          Category = "other"
)

// Categories lists every accepted category except the implicit other bucket.
var Categories = []Category{
	CategoryHousing, CategoryTransportation, CategoryFood, CategoryUtilities,
	CategoryInsurance, CategoryHealthcare, CategoryEntertainment,
	CategoryShopping, CategoryEducation, CategoryPersonal, CategoryDebt,
	CategorySavings,
}

type Type string

const (
	TypeFixed     Type = "fixed"
	TypeRecurring Type = "recurring"
	TypeOneTime   Type = "one_time"
)

// NormalizeCategory maps a raw category to a known value, falling back to
// other rather than dropping the record.
func NormalizeCategory(raw Category) Category {
	value := Category(strings.ToLower(strings.TrimSpace(string(raw))))
	for _, c := range Categories {
		if value == c {
			return c
		}
	}
	return CategoryOther
}

// NormalizeType maps a raw expense type to a known value, falling back to
// one_time.
func NormalizeType(raw Type) Type {
	switch Type(strings.ToLower(strings.TrimSpace(string(raw)))) {
	case TypeFixed:
		return TypeFixed
	case TypeRecurring:
		return TypeRecurring
	case TypeOneTime:
		return TypeOneTime
	}
	return TypeOneTime
}

// Expense is an immutable spending record. Analytics only aggregate over
// collections of these; nothing here is ever mutated.
type Expense struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  Category  `json:"category"`
	Type      Type      `json:"type"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// MonthBucket is one calendar month of a spending trend.
type MonthBucket struct {
	Month string  `json:"month"` // YYYY-MM
	Label string  `json:"label"` // e.g. "Jun 2023"
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

const (
	SavingsExcellent = "excellent"
	SavingsGood      = "good"
	SavingsFair      = "fair"
	SavingsPoor      = "poor"
	SavingsCritical  = "critical"
)

// SavingsSummary reports the monthly savings position. SavingsRate is 0 when
// income is 0, never NaN.
type SavingsSummary struct {
	MonthlySavings float64 `json:"monthlySavings"`
	SavingsRate    float64 `json:"savingsRate"` // percent
	Status         string  `json:"status"`
}

const (
	BudgetOver         = "over"
	BudgetUnder        = "under"
	BudgetHighSpending = "high_spending"
	BudgetLowSavings   = "low_savings"
)

// Recommendation is one advisory budget finding.
type Recommendation struct {
	Category           Category `json:"category,omitempty"`
	Status             string   `json:"status"`
	ActualMonthly      float64  `json:"actualMonthly"`
	RecommendedMonthly float64  `json:"recommendedMonthly,omitempty"`
	ShareOfIncome      float64  `json:"shareOfIncome,omitempty"`   // percent
	ShareOfExpenses    float64  `json:"shareOfExpenses,omitempty"` // percent
	Message            string   `json:"message"`
}
