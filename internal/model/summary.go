package model

// Decision names a binary choice that rounds are bucketed by.
type Decision string

const (
	DecisionAIInvestsHigh       Decision = "ai_invests_high"
	DecisionAuditorPaysForCheck Decision = "auditor_pays_for_check"
	DecisionWagerPlaced         Decision = "wager_placed"
)

// Decisions returns every bucketed decision in report order.
func Decisions() []Decision {
	return []Decision{DecisionAIInvestsHigh, DecisionAuditorPaysForCheck, DecisionWagerPlaced}
}

// GroupStats holds the count and mean payoffs of one outcome group.
type GroupStats struct {
	Count      int
	AvgAI      float64
	AvgAuditor float64
}

// DecisionBuckets splits rounds by the value of one decision flag.
type DecisionBuckets struct {
	True  GroupStats
	False GroupStats
}

// BucketSummary is the aggregate view of a run's history.
type BucketSummary struct {
	AIInvestsHigh       DecisionBuckets
	AuditorPaysForCheck DecisionBuckets
	WagerPlaced         DecisionBuckets
}

// Get returns the buckets for d. Unknown decisions yield zero buckets and false.
func (s *BucketSummary) Get(d Decision) (DecisionBuckets, bool) {
	switch d {
	case DecisionAIInvestsHigh:
		return s.AIInvestsHigh, true
	case DecisionAuditorPaysForCheck:
		return s.AuditorPaysForCheck, true
	case DecisionWagerPlaced:
		return s.WagerPlaced, true
	default:
		return DecisionBuckets{}, false
	}
}
