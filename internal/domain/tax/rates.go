package tax

// DefaultRateTables returns the 2023 tax-year tables. Callers that need a
// different year supply their own RateTables; nothing in the engine depends
// on these specific numbers.
func DefaultRateTables() RateTables {
	return RateTables{
		Year: 2023,
		FederalBrackets: map[FilingStatus][]Bracket{
			FilingSingle: {
				{Min: 0, Max: 11000, Rate: 0.10},
				{Min: 11000, Max: 44725, Rate: 0.12},
				{Min: 44725, Max: 95375, Rate: 0.22},
				{Min: 95375, Max: 182100, Rate: 0.24},
				{Min: 182100, Max: 231250, Rate: 0.32},
				{Min: 231250, Max: 578125, Rate: 0.35},
				{Min: 578125, Max: 0, Rate: 0.37},
			},
			FilingMarried: {
				{Min: 0, Max: 22000, Rate: 0.10},
				{Min: 22000, Max: 89450, Rate: 0.12},
				{Min: 89450, Max: 190750, Rate: 0.22},
				{Min: 190750, Max: 364200, Rate: 0.24},
				{Min: 364200, Max: 462500, Rate: 0.32},
				{Min: 462500, Max: 693750, Rate: 0.35},
				{Min: 693750, Max: 0, Rate: 0.37},
			},
			FilingMarriedSeparate: {
				{Min: 0, Max: 11000, Rate: 0.10},
				{Min: 11000, Max: 44725, Rate: 0.12},
				{Min: 44725, Max: 95375, Rate: 0.22},
				{Min: 95375, Max: 182100, Rate: 0.24},
				{Min: 182100, Max: 231250, Rate: 0.32},
				{Min: 231250, Max: 346875, Rate: 0.35},
				{Min: 346875, Max: 0, Rate: 0.37},
			},
			FilingHead: {
				{Min: 0, Max: 15700, Rate: 0.10},
				{Min: 15700, Max: 59850, Rate: 0.12},
				{Min: 59850, Max: 95350, Rate: 0.22},
				{Min: 95350, Max: 182100, Rate: 0.24},
				{Min: 182100, Max: 231250, Rate: 0.32},
				{Min: 231250, Max: 578100, Rate: 0.35},
				{Min: 578100, Max: 0, Rate: 0.37},
			},
		},
		StateRates: map[string]float64{
			"AZ": 0.0250,
			"CA": 0.0930,
			"CO": 0.0440,
			"CT": 0.0699,
			"FL": 0,
			"GA": 0.0549,
			"IL": 0.0495,
			"MA": 0.0500,
			"MI": 0.0425,
			"MN": 0.0785,
			"NC": 0.0450,
			"NJ": 0.0637,
			"NV": 0,
			"NY": 0.0685,
			"OH": 0.0350,
			"OR": 0.0990,
			"PA": 0.0307,
			"TX": 0,
			"UT": 0.0465,
			"VA": 0.0575,
			"WA": 0,
			"WI": 0.0530,
		},
		SocialSecurityRate:          0.062,
		SocialSecurityWageCap:       160200,
		MedicareRate:                0.0145,
		AdditionalMedicareRate:      0.009,
		AdditionalMedicareThreshold: 200000,
	}
}

// KnownState reports whether the tables carry a rate for the given state
// code. Compute itself treats unknown states as 0% (see calc.go); write-time
// validation uses this to reject typos before they reach the engine.
func (t RateTables) KnownState(code string) bool {
	_, ok := t.StateRates[code]
	return ok
}

// States returns the state codes the tables know about.
func (t RateTables) States() []string {
	out := make([]string, 0, len(t.StateRates))
	for code := range t.StateRates {
		out = append(out, code)
	}
	return out
}
