package credit

import (
	"errors"
	"testing"
	"time"
)

func TestUtilization(t *testing.T) {
	cases := []struct {
		balance, limit, want float64
	}{
		{0, 5000, 0},
		{2500, 5000, 50},
		{6000, 5000, 120}, // over-limit reports above 100 on purpose
		{1000, 0, 0},
		{-50, 5000, 0},
		{333, 1000, 33},
	}
	for _, tc := range cases {
		got := Utilization(Card{CurrentBalance: tc.balance, CreditLimit: tc.limit})
		if got != tc.want {
			t.Fatalf("utilization(%v/%v): expected %v, got %v", tc.balance, tc.limit, tc.want, got)
		}
	}
}

func TestMinimumPaymentEstimate(t *testing.T) {
	// 2% = 20, interest+1% = 20+10 = 30: the larger wins.
	if got := MinimumPaymentEstimate(1000, 24); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	// Floor applies for small balances.
	if got := MinimumPaymentEstimate(500, 0); got != 25 {
		t.Fatalf("expected 25 floor, got %v", got)
	}
	if got := MinimumPaymentEstimate(0, 24); got != 0 {
		t.Fatalf("expected 0 for empty balance, got %v", got)
	}
	// Never exceeds the balance itself.
	if got := MinimumPaymentEstimate(10, 24); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestAmortizeNoPayoff(t *testing.T) {
	// 24% APR on 1000 is ~20/month interest; 10/month never gains ground.
	_, err := Amortize(1000, 10, 24)
	if !errors.Is(err, ErrNoPayoff) {
		t.Fatalf("expected ErrNoPayoff, got %v", err)
	}
}

func TestAmortizeConverges(t *testing.T) {
	result, err := Amortize(1000, 100, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Months <= 0 || result.Capped {
		t.Fatalf("expected finite uncapped payoff, got %+v", result)
	}
	if result.TotalInterest <= 0 {
		t.Fatalf("expected positive interest, got %v", result.TotalInterest)
	}
	// Total payments track payment x months, short only by the final
	// month's partial payment.
	upper := 100 * float64(result.Months)
	lower := 100 * float64(result.Months-1)
	if result.TotalPayments > upper+0.01 || result.TotalPayments <= lower {
		t.Fatalf("total payments %v outside (%v, %v]", result.TotalPayments, lower, upper)
	}
	if got := result.TotalPayments - result.TotalInterest; got < 999.99 || got > 1000.01 {
		t.Fatalf("principal repaid should equal balance, got %v", got)
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	result, err := Amortize(1000, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Months != 10 {
		t.Fatalf("expected 10 months, got %d", result.Months)
	}
	if result.TotalInterest != 0 {
		t.Fatalf("expected zero interest, got %v", result.TotalInterest)
	}
}

func TestAmortizeZeroBalance(t *testing.T) {
	result, err := Amortize(0, 100, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Months != 0 {
		t.Fatalf("expected immediate payoff, got %+v", result)
	}
}

func TestAmortizeHitsSafetyCap(t *testing.T) {
	// Payment exceeds interest by a cent: convergence is real but glacial.
	result, err := Amortize(1000000, 20000.01, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Capped || result.Months != MaxAmortizationMonths {
		t.Fatalf("expected capped result at %d months, got %+v", MaxAmortizationMonths, result)
	}
}

func TestRecommendStrategies(t *testing.T) {
	card := Card{CurrentBalance: 1000, CreditLimit: 5000, InterestRate: 18, MinimumPayment: 25}
	strategies := RecommendStrategies(card)
	if len(strategies) != 4 {
		t.Fatalf("expected 4 strategies, got %d", len(strategies))
	}
	if strategies[0].Category != StrategyMinimum || strategies[0].MonthlyPayment != 25 {
		t.Fatalf("expected minimum strategy first, got %+v", strategies[0])
	}
	for i := 1; i < len(strategies); i++ {
		if strategies[i].Category != StrategyAggressive {
			t.Fatalf("entry %d: expected aggressive category, got %s", i, strategies[i].Category)
		}
		if strategies[i].MonthlyPayment <= strategies[i-1].MonthlyPayment {
			t.Fatalf("strategies not ordered by payment: %+v", strategies)
		}
	}
}

func TestRecommendStrategiesSkipsDegenerateCandidates(t *testing.T) {
	// Minimum of 200 dwarfs 5%/10% of a 1000 balance: only the 2x and 3x
	// candidates survive.
	card := Card{CurrentBalance: 1000, InterestRate: 18, MinimumPayment: 200}
	strategies := RecommendStrategies(card)
	if len(strategies) != 3 {
		t.Fatalf("expected 3 strategies, got %d: %+v", len(strategies), strategies)
	}
	if strategies[1].MonthlyPayment != 400 || strategies[2].MonthlyPayment != 600 {
		t.Fatalf("expected 2x/3x candidates, got %+v", strategies)
	}
}

func TestRecommendStrategiesEmptyBalance(t *testing.T) {
	if got := RecommendStrategies(Card{CurrentBalance: 0}); got != nil {
		t.Fatalf("expected no strategies for zero balance, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	asOf := time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)
	cards := []Card{
		{ID: "a", CurrentBalance: 2000, CreditLimit: 5000, DueDateType: DueManual, DueDate: datePtr(2023, time.June, 12)},
		{ID: "b", CurrentBalance: 1000, CreditLimit: 5000, DueDateType: DueManual, DueDate: datePtr(2023, time.June, 1)},
		{ID: "c", CurrentBalance: 0, CreditLimit: 10000, DueDateType: DueManual},
	}

	summary := Summarize(cards, asOf)
	if summary.TotalDebt != 3000 {
		t.Fatalf("expected total debt 3000, got %v", summary.TotalDebt)
	}
	if summary.TotalAvailable != 17000 {
		t.Fatalf("expected available 17000, got %v", summary.TotalAvailable)
	}
	if summary.OverallUtilization != 15 {
		t.Fatalf("expected overall utilization 15, got %v", summary.OverallUtilization)
	}
	if len(summary.DueSoon) != 1 || summary.DueSoon[0].Card.ID != "a" {
		t.Fatalf("expected card a due soon, got %+v", summary.DueSoon)
	}
	if len(summary.Overdue) != 1 || summary.Overdue[0].Card.ID != "b" {
		t.Fatalf("expected card b overdue, got %+v", summary.Overdue)
	}
}

func TestRecommendAllSkipsZeroBalanceCards(t *testing.T) {
	cards := []Card{
		{ID: "a", CurrentBalance: 2000, InterestRate: 20, MinimumPayment: 50},
		{ID: "c", CurrentBalance: 0, CreditLimit: 10000},
	}

	all := RecommendAll(cards)
	if len(all) != 1 {
		t.Fatalf("expected strategies for 1 card, got %d", len(all))
	}
	if len(all["a"]) == 0 {
		t.Fatalf("expected strategies for card a, got %+v", all)
	}
}
