package expense

import "fmt"

// referenceAllocation is the share of monthly net income a category should
// stay within. Savings is the 20% target the low-savings warning measures
// against.
var referenceAllocation = map[Category]float64{
	CategoryHousing:        0.30,
	CategoryTransportation: 0.15,
	CategoryFood:           0.10,
	CategoryUtilities:      0.05,
	CategoryInsurance:      0.05,
	CategoryHealthcare:     0.05,
	CategoryEntertainment:  0.05,
	CategoryShopping:       0.05,
	CategoryEducation:      0.05,
	CategoryPersonal:       0.05,
	CategoryDebt:           0.10,
	CategorySavings:        0.20,
}

// highSpendingShare flags categories dominating total spending, measured
// against total expenses rather than income.
const highSpendingShare = 20.0

const lowSavingsRate = 10.0

// BudgetRecommendations compares each category's share of income against the
// reference allocation, flags categories that dominate total spending, and
// warns when the overall savings rate falls below 10%. Advisory output only.
func BudgetRecommendations(monthlyNetIncome float64, byCategory map[Category]float64) []Recommendation {
	var recs []Recommendation

	var totalExpenses float64
	for _, amount := range byCategory {
		totalExpenses += amount
	}

	for _, category := range Categories {
		actual, ok := byCategory[category]
		if !ok || actual <= 0 {
			continue
		}
		reference, tracked := referenceAllocation[category]
		if !tracked || monthlyNetIncome <= 0 {
			continue
		}

		recommended := round2(monthlyNetIncome * reference)
		share := round2(actual / monthlyNetIncome * 100)
		status := BudgetUnder
		message := fmt.Sprintf("%s spending is within the %.0f%% guideline", category, reference*100)
		if actual > recommended {
			status = BudgetOver
			message = fmt.Sprintf("%s spending is %.1f%% of income, above the %.0f%% guideline", category, share, reference*100)
		}
		recs = append(recs, Recommendation{
			Category:           category,
			Status:             status,
			ActualMonthly:      round2(actual),
			RecommendedMonthly: recommended,
			ShareOfIncome:      share,
			Message:            message,
		})
	}

	if totalExpenses > 0 {
		for _, category := range append(append([]Category{}, Categories...), CategoryOther) {
			actual, ok := byCategory[category]
			if !ok || actual <= 0 {
				continue
			}
			share := round2(actual / totalExpenses * 100)
			if share > highSpendingShare {
				recs = append(recs, Recommendation{
					Category:        category,
					Status:          BudgetHighSpending,
					ActualMonthly:   round2(actual),
					ShareOfExpenses: share,
					Message:         fmt.Sprintf("%s is %.1f%% of total spending", category, share),
				})
			}
		}
	}

	savings := SavingsRate(monthlyNetIncome, totalExpenses)
	if savings.SavingsRate < lowSavingsRate {
		recs = append(recs, Recommendation{
			Status:        BudgetLowSavings,
			ActualMonthly: savings.MonthlySavings,
			Message:       fmt.Sprintf("savings rate is %.1f%%, below the 10%% floor", savings.SavingsRate),
		})
	}
	return recs
}
