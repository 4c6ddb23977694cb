package expense

import "testing"

func findRec(recs []Recommendation, category Category, status string) *Recommendation {
	for i := range recs {
		if recs[i].Category == category && recs[i].Status == status {
			return &recs[i]
		}
	}
	return nil
}

func TestBudgetRecommendationsOverUnder(t *testing.T) {
	byCategory := map[Category]float64{
		CategoryHousing: 2000, // 40% of income, over the 30% guideline
		CategoryFood:    300,  // 6%, under the 10% guideline
	}
	recs := BudgetRecommendations(5000, byCategory)

	over := findRec(recs, CategoryHousing, BudgetOver)
	if over == nil {
		t.Fatalf("expected housing over-budget flag, got %+v", recs)
	}
	if over.RecommendedMonthly != 1500 {
		t.Fatalf("expected housing guideline 1500, got %v", over.RecommendedMonthly)
	}
	if over.ShareOfIncome != 40 {
		t.Fatalf("expected housing share 40, got %v", over.ShareOfIncome)
	}
	if findRec(recs, CategoryFood, BudgetUnder) == nil {
		t.Fatalf("expected food under-budget entry, got %+v", recs)
	}
}

func TestBudgetRecommendationsHighSpending(t *testing.T) {
	// Housing is 2000 of 2600 total: ~77% of spending.
	byCategory := map[Category]float64{
		CategoryHousing: 2000,
		CategoryFood:    300,
		CategoryOther:   300,
	}
	recs := BudgetRecommendations(10000, byCategory)

	high := findRec(recs, CategoryHousing, BudgetHighSpending)
	if high == nil {
		t.Fatalf("expected housing high-spending flag, got %+v", recs)
	}
	if high.ShareOfExpenses <= 20 {
		t.Fatalf("expected share above 20, got %v", high.ShareOfExpenses)
	}
	// The other bucket is 300/2600 (~11.5%): below the threshold.
	if findRec(recs, CategoryOther, BudgetHighSpending) != nil {
		t.Fatalf("did not expect other high-spending flag: %+v", recs)
	}
}

func TestBudgetRecommendationsLowSavings(t *testing.T) {
	recs := BudgetRecommendations(5000, map[Category]float64{CategoryHousing: 4800})
	found := false
	for _, r := range recs {
		if r.Status == BudgetLowSavings {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected low-savings warning, got %+v", recs)
	}
}

func TestBudgetRecommendationsHealthySavingsNoWarning(t *testing.T) {
	recs := BudgetRecommendations(5000, map[Category]float64{CategoryHousing: 1000})
	for _, r := range recs {
		if r.Status == BudgetLowSavings {
			t.Fatalf("did not expect low-savings warning: %+v", recs)
		}
	}
}

func TestBudgetRecommendationsZeroIncome(t *testing.T) {
	recs := BudgetRecommendations(0, map[Category]float64{CategoryFood: 200})
	// No allocation comparisons without income, but high-spending and
	// low-savings checks still run.
	if findRec(recs, CategoryFood, BudgetOver) != nil || findRec(recs, CategoryFood, BudgetUnder) != nil {
		t.Fatalf("did not expect allocation entries with zero income: %+v", recs)
	}
	if findRec(recs, CategoryFood, BudgetHighSpending) == nil {
		t.Fatalf("expected high-spending flag, got %+v", recs)
	}
}
