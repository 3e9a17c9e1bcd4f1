package model

// Params is the fixed configuration of one simulation run.
type Params struct {
	Rounds           int     `yaml:"rounds"`
	CostHighSafety   float64 `yaml:"cost_high_safety"`
	CostLowSafety    float64 `yaml:"cost_low_safety"`
	ProbBiasHigh     float64 `yaml:"prob_bias_high"`
	ProbBiasLow      float64 `yaml:"prob_bias_low"`
	AuditorCheckCost float64 `yaml:"auditor_check_cost"`
	WagerAmount      float64 `yaml:"wager_amount"`
	FineAmount       float64 `yaml:"fine_amount"`
}

// DefaultParams returns the baseline game economy.
func DefaultParams() Params {
	return Params{
		Rounds:           50,
		CostHighSafety:   100,
		CostLowSafety:    40,
		ProbBiasHigh:     0.05,
		ProbBiasLow:      0.3,
		AuditorCheckCost: 5,
		WagerAmount:      50,
		FineAmount:       1000,
	}
}
