package expense

import (
	"testing"
	"time"
)

func expenseOn(y int, m time.Month, d int, amount float64, category Category) Expense {
	return Expense{
		Name:     "test",
		Amount:   amount,
		Category: category,
		Type:     TypeOneTime,
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func TestTotal(t *testing.T) {
	expenses := []Expense{
		expenseOn(2023, time.June, 1, 100.50, CategoryFood),
		expenseOn(2023, time.June, 2, 49.50, CategoryShopping),
	}
	if got := Total(expenses); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("expected 0 for empty list, got %v", got)
	}
}

func TestByCategoryUnknownFallsToOther(t *testing.T) {
	expenses := []Expense{
		expenseOn(2023, time.June, 1, 100, CategoryFood),
		expenseOn(2023, time.June, 2, 50, CategoryFood),
		expenseOn(2023, time.June, 3, 75, "crypto"),
		expenseOn(2023, time.June, 4, 25, ""),
	}
	got := ByCategory(expenses)
	if got[CategoryFood] != 150 {
		t.Fatalf("expected food 150, got %v", got[CategoryFood])
	}
	if got[CategoryOther] != 100 {
		t.Fatalf("expected other 100, got %v", got[CategoryOther])
	}
}

func TestByType(t *testing.T) {
	expenses := []Expense{
		{Amount: 1200, Type: TypeFixed},
		{Amount: 80, Type: TypeRecurring},
		{Amount: 40, Type: "subscription"},
	}
	got := ByType(expenses)
	if got[TypeFixed] != 1200 || got[TypeRecurring] != 80 {
		t.Fatalf("unexpected grouping: %v", got)
	}
	if got[TypeOneTime] != 40 {
		t.Fatalf("expected unknown type to fall back to one_time, got %v", got)
	}
}

func TestTrendExactBucketCount(t *testing.T) {
	now := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	expenses := []Expense{
		expenseOn(2023, time.June, 1, 100, CategoryFood),
		expenseOn(2023, time.April, 10, 50, CategoryFood),
		expenseOn(2022, time.December, 25, 999, CategoryShopping), // outside window
	}

	trend := Trend(expenses, 6, now)
	if len(trend) != 6 {
		t.Fatalf("expected exactly 6 buckets, got %d", len(trend))
	}
	if trend[0].Month != "2023-01" || trend[5].Month != "2023-06" {
		t.Fatalf("expected window 2023-01..2023-06, got %s..%s", trend[0].Month, trend[5].Month)
	}
	if trend[5].Total != 100 || trend[5].Count != 1 {
		t.Fatalf("expected June total 100/count 1, got %+v", trend[5])
	}
	if trend[3].Total != 50 {
		t.Fatalf("expected April total 50, got %+v", trend[3])
	}
	// Empty months still appear as zero buckets.
	if trend[1].Total != 0 || trend[1].Count != 0 {
		t.Fatalf("expected empty February bucket, got %+v", trend[1])
	}
}

func TestTrendNoExpenses(t *testing.T) {
	trend := Trend(nil, 3, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	if len(trend) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(trend))
	}
	for _, b := range trend {
		if b.Total != 0 || b.Count != 0 {
			t.Fatalf("expected zero bucket, got %+v", b)
		}
	}
}

func TestSavingsRateBands(t *testing.T) {
	cases := []struct {
		income, expenses float64
		wantRate         float64
		wantStatus       string
	}{
		{5000, 3500, 30, SavingsExcellent},
		{5000, 4100, 18, SavingsGood},
		{5000, 4400, 12, SavingsFair},
		{5000, 4650, 7, SavingsPoor},
		{5000, 4900, 2, SavingsCritical},
		{5000, 6000, -20, SavingsCritical},
	}
	for _, tc := range cases {
		got := SavingsRate(tc.income, tc.expenses)
		if got.SavingsRate != tc.wantRate || got.Status != tc.wantStatus {
			t.Fatalf("savings(%v, %v): expected %v/%s, got %v/%s",
				tc.income, tc.expenses, tc.wantRate, tc.wantStatus, got.SavingsRate, got.Status)
		}
	}
}

func TestSavingsRateZeroIncome(t *testing.T) {
	got := SavingsRate(0, 500)
	if got.SavingsRate != 0 {
		t.Fatalf("expected rate 0 for zero income, got %v", got.SavingsRate)
	}
	if got.Status != SavingsCritical {
		t.Fatalf("expected critical status, got %s", got.Status)
	}
	if got.MonthlySavings != -500 {
		t.Fatalf("expected savings -500, got %v", got.MonthlySavings)
	}
}
