package model

// RoundRecord is the outcome of a single round. Effects are signed payoffs.
type RoundRecord struct {
	Round int

	AIInvestsHigh       bool
	AuditorPaysForCheck bool
	SignalBias          bool
	WagerPlaced         bool

	ProbBias      float64
	DetectionProb float64

	AISafetyEffect     float64
	AuditorCheckEffect float64
	AIWagerEffect      float64
	AuditorWagerEffect float64

	IncrementalAI      float64
	IncrementalAuditor float64

	CumulativeAI      float64
	CumulativeAuditor float64
}

// Result is the full output of a simulation run.
type Result struct {
	History      []RoundRecord
	FinalAI      float64
	FinalAuditor float64
}
