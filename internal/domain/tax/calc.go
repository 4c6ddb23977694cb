package tax

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// Compute produces the full federal/state/payroll breakdown for a profile.
// It is a pure function of its arguments: no stored state, safe to call
// concurrently. Gross salary is assumed validated non-negative by the
// caller; a gross of 0 yields an all-zero breakdown with effective rates 0.
func Compute(profile Profile, tables RateTables) Breakdown {
	gross := decimal.NewFromFloat(profile.GrossSalaryAnnual)
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	federal := federalTax(gross, tables.FederalBrackets[profile.FilingStatus])
	state := gross.Mul(decimal.NewFromFloat(tables.StateRates[profile.State]))
	ss, medicare, additional := payrollTaxes(gross, tables)

	// Visa exemption is applied as a final override, not woven into the
	// payroll computation, so the rule stays auditable in isolation.
	if PayrollExempt(profile.VisaStatus) {
		ss, medicare, additional = decimal.Zero, decimal.Zero, decimal.Zero
	}

	total := federal.Add(state).Add(ss).Add(medicare).Add(additional)
	net := gross.Sub(total)

	b := Breakdown{
		AnnualGross:        cents(gross),
		MonthlyGross:       cents(gross.Div(twelve)),
		FederalTax:         cents(federal),
		StateTax:           cents(state),
		SocialSecurity:     cents(ss),
		Medicare:           cents(medicare),
		AdditionalMedicare: cents(additional),
		TotalTax:           cents(total),
		AnnualNet:          cents(net),
		MonthlyNet:         cents(net.Div(twelve)),
		MonthlyTax:         cents(total.Div(twelve)),
	}
	if gross.IsPositive() {
		b.EffectiveFederalRate = rate(federal, gross)
		b.EffectiveStateRate = rate(state, gross)
		b.EffectiveTotalRate = rate(total, gross)
	}
	return b
}

// federalTax walks the bracket list in ascending order, consuming income at
// each bracket's marginal rate until nothing remains. Exact marginal-rate
// taxation, no lookup-table shortcut.
func federalTax(gross decimal.Decimal, brackets []Bracket) decimal.Decimal {
	tax := decimal.Zero
	remaining := gross
	for _, bracket := range brackets {
		if !remaining.IsPositive() {
			break
		}
		width := remaining
		if bracket.Max > 0 {
			span := decimal.NewFromFloat(bracket.Max).Sub(decimal.NewFromFloat(bracket.Min))
			if span.LessThan(width) {
				width = span
			}
		}
		tax = tax.Add(width.Mul(decimal.NewFromFloat(bracket.Rate)))
		remaining = remaining.Sub(width)
	}
	return tax
}

// payrollTaxes computes Social Security (wage-capped), base Medicare, and
// additional Medicare above the threshold. Independent of filing status.
func payrollTaxes(gross decimal.Decimal, tables RateTables) (ss, medicare, additional decimal.Decimal) {
	ssBase := gross
	if cap := decimal.NewFromFloat(tables.SocialSecurityWageCap); ssBase.GreaterThan(cap) {
		ssBase = cap
	}
	ss = ssBase.Mul(decimal.NewFromFloat(tables.SocialSecurityRate))
	medicare = gross.Mul(decimal.NewFromFloat(tables.MedicareRate))

	excess := gross.Sub(decimal.NewFromFloat(tables.AdditionalMedicareThreshold))
	if excess.IsPositive() {
		additional = excess.Mul(decimal.NewFromFloat(tables.AdditionalMedicareRate))
	} else {
		additional = decimal.Zero
	}
	return ss, medicare, additional
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func rate(part, whole decimal.Decimal) float64 {
	return part.Div(whole).Round(4).InexactFloat64()
}
