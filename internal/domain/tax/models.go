package tax

import "time"

type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHead            FilingStatus = "head"
)

type VisaStatus string

const (
	VisaCitizen   VisaStatus = "citizen"
	VisaGreenCard VisaStatus = "green_card"
	VisaH1B       VisaStatus = "h1b"
	VisaL1        VisaStatus = "l1"
	VisaF1OPT     VisaStatus = "f1_opt"
	VisaJ1        VisaStatus = "j1"
	VisaTN        VisaStatus = "tn"
)

// Profile is the user-entered paycheck configuration, immutable input to
// Compute.
type Profile struct {
	ID                string       `json:"id,omitempty"`
	UserID            string       `json:"-"`
	GrossSalaryAnnual float64      `json:"grossSalaryAnnual"`
	State             string       `json:"state"`
	VisaStatus        VisaStatus   `json:"visaStatus"`
	FilingStatus      FilingStatus `json:"filingStatus"`
	CreatedAt         time.Time    `json:"createdAt,omitempty"`
	UpdatedAt         time.Time    `json:"updatedAt,omitempty"`
}

// Breakdown is recomputed on every call and never persisted as authoritative.
// Field names are a stable contract consumed by presentation and advisory
// layers.
type Breakdown struct {
	AnnualGross          float64 `json:"annualGross"`
	MonthlyGross         float64 `json:"monthlyGross"`
	FederalTax           float64 `json:"federalTax"`
	StateTax             float64 `json:"stateTax"`
	SocialSecurity       float64 `json:"socialSecurity"`
	Medicare             float64 `json:"medicare"`
	AdditionalMedicare   float64 `json:"additionalMedicare"`
	TotalTax             float64 `json:"totalTax"`
	AnnualNet            float64 `json:"annualNet"`
	MonthlyNet           float64 `json:"monthlyNet"`
	MonthlyTax           float64 `json:"monthlyTax"`
	EffectiveFederalRate float64 `json:"effectiveFederalRate"`
	EffectiveStateRate   float64 `json:"effectiveStateRate"`
	EffectiveTotalRate   float64 `json:"effectiveTotalRate"`
}

// Bracket is a single federal bracket. Max <= 0 means no upper bound.
type Bracket struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Rate float64 `json:"rate"`
}

// RateTables carries every rate the engine needs for one tax year. It is
// injected on every call so future years can be supplied without touching
// engine logic.
type RateTables struct {
	Year                        int                        `json:"year"`
	FederalBrackets             map[FilingStatus][]Bracket `json:"federalBrackets"`
	StateRates                  map[string]float64         `json:"stateRates"`
	SocialSecurityRate          float64                    `json:"socialSecurityRate"`
	SocialSecurityWageCap       float64                    `json:"socialSecurityWageCap"`
	MedicareRate                float64                    `json:"medicareRate"`
	AdditionalMedicareRate      float64                    `json:"additionalMedicareRate"`
	AdditionalMedicareThreshold float64                    `json:"additionalMedicareThreshold"`
}

// ValidFilingStatus reports whether s is one of the accepted filing statuses.
func ValidFilingStatus(s FilingStatus) bool {
	switch s {
	case FilingSingle, FilingMarried, FilingMarriedSeparate, FilingHead:
		return true
	}
	return false
}

// ValidVisaStatus reports whether s is one of the accepted visa statuses.
func ValidVisaStatus(s VisaStatus) bool {
	switch s {
	case VisaCitizen, VisaGreenCard, VisaH1B, VisaL1, VisaF1OPT, VisaJ1, VisaTN:
		return true
	}
	return false
}

// PayrollExempt reports whether a visa status zeroes out Social Security and
// Medicare (nonresident/treaty exemption approximation).
func PayrollExempt(s VisaStatus) bool {
	return s == VisaF1OPT || s == VisaJ1
}
