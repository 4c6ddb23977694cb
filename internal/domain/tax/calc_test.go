package tax

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestComputeSingleCitizen(t *testing.T) {
	tables := DefaultRateTables()
	tables.StateRates["XX"] = 0.08

	b := Compute(Profile{
		GrossSalaryAnnual: 75000,
		State:             "XX",
		VisaStatus:        VisaCitizen,
		FilingStatus:      FilingSingle,
	}, tables)

	// Marginal walk: 11000*0.10 + 33725*0.12 + 30275*0.22
	if !almostEqual(b.FederalTax, 11807.50) {
		t.Fatalf("expected federal 11807.50, got %v", b.FederalTax)
	}
	if !almostEqual(b.StateTax, 6000) {
		t.Fatalf("expected state 6000, got %v", b.StateTax)
	}
	if !almostEqual(b.SocialSecurity, 4650) {
		t.Fatalf("expected social security 4650, got %v", b.SocialSecurity)
	}
	if !almostEqual(b.Medicare, 1087.50) {
		t.Fatalf("expected medicare 1087.50, got %v", b.Medicare)
	}
	if b.AdditionalMedicare != 0 {
		t.Fatalf("expected no additional medicare below threshold, got %v", b.AdditionalMedicare)
	}
	wantTotal := 11807.50 + 6000 + 4650 + 1087.50
	if !almostEqual(b.TotalTax, wantTotal) {
		t.Fatalf("expected total %v, got %v", wantTotal, b.TotalTax)
	}
	if !almostEqual(b.AnnualNet, 75000-wantTotal) {
		t.Fatalf("expected net %v, got %v", 75000-wantTotal, b.AnnualNet)
	}
	if !almostEqual(b.MonthlyNet, (75000-wantTotal)/12) {
		t.Fatalf("expected monthly net %v, got %v", (75000-wantTotal)/12, b.MonthlyNet)
	}
}

func TestComputeZeroGross(t *testing.T) {
	b := Compute(Profile{FilingStatus: FilingSingle, VisaStatus: VisaCitizen}, DefaultRateTables())
	if b.TotalTax != 0 || b.AnnualNet != 0 {
		t.Fatalf("expected all-zero breakdown, got %+v", b)
	}
	if b.EffectiveTotalRate != 0 {
		t.Fatalf("expected effective rate 0 for zero gross, got %v", b.EffectiveTotalRate)
	}
}

func TestFederalTaxMonotonic(t *testing.T) {
	tables := DefaultRateTables()
	prev := 0.0
	for gross := 0.0; gross <= 700000; gross += 12500 {
		b := Compute(Profile{GrossSalaryAnnual: gross, State: "TX", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, tables)
		if b.FederalTax < prev {
			t.Fatalf("federal tax decreased at gross %v: %v < %v", gross, b.FederalTax, prev)
		}
		prev = b.FederalTax
	}
}

func TestSocialSecurityWageCap(t *testing.T) {
	tables := DefaultRateTables()
	capAmount := tables.SocialSecurityWageCap * tables.SocialSecurityRate
	for _, gross := range []float64{100000, 160200, 500000, 5000000} {
		b := Compute(Profile{GrossSalaryAnnual: gross, State: "WA", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, tables)
		if b.SocialSecurity > capAmount+0.01 {
			t.Fatalf("social security %v exceeds cap %v at gross %v", b.SocialSecurity, capAmount, gross)
		}
	}
}

func TestAdditionalMedicareAboveThreshold(t *testing.T) {
	b := Compute(Profile{GrossSalaryAnnual: 300000, State: "WA", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, DefaultRateTables())
	if !almostEqual(b.AdditionalMedicare, 100000*0.009) {
		t.Fatalf("expected additional medicare 900, got %v", b.AdditionalMedicare)
	}
}

func TestVisaPayrollExemption(t *testing.T) {
	tables := DefaultRateTables()
	for _, visa := range []VisaStatus{VisaF1OPT, VisaJ1} {
		b := Compute(Profile{GrossSalaryAnnual: 250000, State: "CA", VisaStatus: visa, FilingStatus: FilingSingle}, tables)
		if b.SocialSecurity != 0 || b.Medicare != 0 || b.AdditionalMedicare != 0 {
			t.Fatalf("%s: expected zero payroll taxes, got ss=%v medicare=%v additional=%v",
				visa, b.SocialSecurity, b.Medicare, b.AdditionalMedicare)
		}
		if b.FederalTax == 0 {
			t.Fatalf("%s: federal tax should still apply", visa)
		}
	}
}

func TestVisaNonExemptPaysPayroll(t *testing.T) {
	tables := DefaultRateTables()
	for _, visa := range []VisaStatus{VisaCitizen, VisaGreenCard, VisaH1B, VisaL1, VisaTN} {
		b := Compute(Profile{GrossSalaryAnnual: 80000, State: "CA", VisaStatus: visa, FilingStatus: FilingSingle}, tables)
		if b.SocialSecurity == 0 || b.Medicare == 0 {
			t.Fatalf("%s: expected payroll taxes, got ss=%v medicare=%v", visa, b.SocialSecurity, b.Medicare)
		}
	}
}

func TestUnknownStateDefaultsToZero(t *testing.T) {
	b := Compute(Profile{GrossSalaryAnnual: 90000, State: "ZZ", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, DefaultRateTables())
	if b.StateTax != 0 {
		t.Fatalf("expected 0 state tax for unknown state, got %v", b.StateTax)
	}
}

func TestTopBracketUnbounded(t *testing.T) {
	tables := DefaultRateTables()
	low := Compute(Profile{GrossSalaryAnnual: 600000, State: "TX", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, tables)
	high := Compute(Profile{GrossSalaryAnnual: 700000, State: "TX", VisaStatus: VisaCitizen, FilingStatus: FilingSingle}, tables)
	// Above the last threshold every extra dollar is taxed at 37%.
	if !almostEqual(high.FederalTax-low.FederalTax, 100000*0.37) {
		t.Fatalf("expected 37000 marginal difference, got %v", high.FederalTax-low.FederalTax)
	}
}
