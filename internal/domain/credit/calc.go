package credit

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// MaxAmortizationMonths bounds the payoff simulation at 50 years.
	MaxAmortizationMonths = 600

	minimumPaymentFloor   = 25.0
	minimumPaymentPercent = 0.02
)

var payoffTolerance = decimal.NewFromFloat(0.01)

// Utilization returns balance as a whole-number percentage of the credit
// limit. Zero when the limit is missing/non-positive or the balance is
// non-positive; deliberately uncapped above 100 so an over-limit balance is
// visible to the caller.
func Utilization(card Card) float64 {
	if card.CreditLimit <= 0 || card.CurrentBalance <= 0 {
		return 0
	}
	return math.Round(card.CurrentBalance / card.CreditLimit * 100)
}

// MinimumPaymentEstimate estimates a card minimum when the record omits one:
// the greater of 2% of balance, one month's interest plus 1% of balance, and
// a $25 floor. The result is then capped at the balance itself, so the floor
// never asks for more than clears the card outright. A heuristic, not a
// substitute for the issuer's figure.
func MinimumPaymentEstimate(balance, annualRatePercent float64) float64 {
	if balance <= 0 {
		return 0
	}
	monthlyInterest := balance * annualRatePercent / 100 / 12
	estimate := math.Max(balance*minimumPaymentPercent, monthlyInterest+balance*0.01)
	estimate = math.Max(estimate, minimumPaymentFloor)
	if estimate > balance {
		estimate = balance
	}
	return math.Round(estimate*100) / 100
}

// Amortize simulates month-by-month payoff of a balance. It returns
// ErrNoPayoff when the payment does not exceed the first month's interest.
// The simulation stops when the balance falls within one cent of zero or at
// MaxAmortizationMonths, whichever comes first; hitting the cap is reported
// as a Capped result, not an error.
func Amortize(balance, monthlyPayment, annualRatePercent float64) (Amortization, error) {
	if balance <= 0 {
		return Amortization{}, nil
	}
	if monthlyPayment <= 0 {
		return Amortization{}, ErrNoPayoff
	}

	remaining := decimal.NewFromFloat(balance)
	payment := decimal.NewFromFloat(monthlyPayment)
	monthlyRate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))

	var result Amortization
	totalInterest := decimal.Zero
	totalPayments := decimal.Zero

	for remaining.GreaterThan(payoffTolerance) {
		if result.Months >= MaxAmortizationMonths {
			result.Capped = true
			break
		}

		interest := remaining.Mul(monthlyRate)
		principal := payment.Sub(interest)
		if !principal.IsPositive() {
			return Amortization{}, ErrNoPayoff
		}

		paid := payment
		if principal.GreaterThanOrEqual(remaining) {
			// Final month: pay off the remaining balance plus its interest.
			paid = remaining.Add(interest)
			principal = remaining
		}

		remaining = remaining.Sub(principal)
		totalInterest = totalInterest.Add(interest)
		totalPayments = totalPayments.Add(paid)
		result.Months++
	}

	result.TotalInterest = totalInterest.Round(2).InexactFloat64()
	result.TotalPayments = totalPayments.Round(2).InexactFloat64()
	return result, nil
}

// RecommendStrategies builds a ranked list of payoff options for a card: the
// minimum payment first, then up to three stronger candidates drawn from
// 5%-of-balance, 10%-of-balance, 2x minimum, and 3x minimum. Candidates that
// are not strictly greater than the minimum are dropped, as are duplicates.
// At most 4 entries, ordered by increasing payment.
func RecommendStrategies(card Card) []Strategy {
	balance := card.CurrentBalance
	if balance <= 0 {
		return nil
	}

	minimum := card.MinimumPayment
	if minimum <= 0 {
		minimum = MinimumPaymentEstimate(balance, card.InterestRate)
	}

	strategies := []Strategy{makeStrategy("Minimum payment", minimum, StrategyMinimum, card)}

	candidates := []struct {
		name    string
		payment float64
	}{
		{"5% of balance", math.Round(balance*0.05*100) / 100},
		{"10% of balance", math.Round(balance*0.10*100) / 100},
		{"2x minimum", math.Round(minimum*2*100) / 100},
		{"3x minimum", math.Round(minimum*3*100) / 100},
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].payment < candidates[j].payment
	})

	for _, c := range candidates {
		if len(strategies) >= 4 {
			break
		}
		if c.payment <= minimum {
			continue
		}
		if c.payment == strategies[len(strategies)-1].MonthlyPayment {
			continue
		}
		strategies = append(strategies, makeStrategy(c.name, c.payment, StrategyAggressive, card))
	}
	return strategies
}

func makeStrategy(name string, payment float64, category string, card Card) Strategy {
	s := Strategy{Name: name, MonthlyPayment: payment, Category: category}
	result, err := Amortize(card.CurrentBalance, payment, card.InterestRate)
	if err == nil {
		s.PaysOff = !result.Capped
		s.Result = &result
	}
	return s
}
