package expense

import (
	"math"
	"time"
)

// Total sums every expense amount.
func Total(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return round2(total)
}

// ByCategory groups expense totals per category. Unknown categories land in
// the other bucket instead of being dropped.
func ByCategory(expenses []Expense) map[Category]float64 {
	out := make(map[Category]float64)
	for _, e := range expenses {
		out[NormalizeCategory(e.Category)] += e.Amount
	}
	for category, total := range out {
		out[category] = round2(total)
	}
	return out
}

// ByType groups expense totals per expense type.
func ByType(expenses []Expense) map[Type]float64 {
	out := make(map[Type]float64)
	for _, e := range expenses {
		out[NormalizeType(e.Type)] += e.Amount
	}
	for typ, total := range out {
		out[typ] = round2(total)
	}
	return out
}

// Trend buckets expenses into exactly monthCount consecutive calendar
// months ending at now's month, oldest first. Months without expenses appear
// as zero buckets, so the output length is always monthCount.
func Trend(expenses []Expense, monthCount int, now time.Time) []MonthBucket {
	if monthCount <= 0 {
		return nil
	}

	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthCount - 1), 0)

	buckets := make([]MonthBucket, monthCount)
	index := make(map[string]int, monthCount)
	for i := range buckets {
		month := first.AddDate(0, i, 0)
		key := month.Format("2006-01")
		buckets[i] = MonthBucket{Month: key, Label: month.Format("Jan 2006")}
		index[key] = i
	}

	for _, e := range expenses {
		key := e.Date.UTC().Format("2006-01")
		if i, ok := index[key]; ok {
			buckets[i].Total = round2(buckets[i].Total + e.Amount)
			buckets[i].Count++
		}
	}
	return buckets
}

// SavingsRate derives the monthly savings position from net income and the
// expense total. Rate is 0 when income is 0 (guarded divide).
func SavingsRate(monthlyNetIncome, monthlyExpenseTotal float64) SavingsSummary {
	savings := monthlyNetIncome - monthlyExpenseTotal
	summary := SavingsSummary{MonthlySavings: round2(savings)}
	if monthlyNetIncome > 0 {
		summary.SavingsRate = round2(savings / monthlyNetIncome * 100)
	}

	switch rate := summary.SavingsRate; {
	case rate >= 20:
		summary.Status = SavingsExcellent
	case rate >= 15:
		summary.Status = SavingsGood
	case rate >= 10:
		summary.Status = SavingsFair
	case rate >= 5:
		summary.Status = SavingsPoor
	default:
		summary.Status = SavingsCritical
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
