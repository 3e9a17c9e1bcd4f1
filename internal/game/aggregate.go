package game

import "AuditGame/internal/model"

// accumulator collects one outcome group's payoffs.
type accumulator struct {
	count      int
	sumAI      float64
	sumAuditor float64
}

func (a *accumulator) add(ai, auditor float64) {
	a.count++
	a.sumAI += ai
	a.sumAuditor += auditor
}

func (a *accumulator) stats() model.GroupStats {
	if a.count == 0 {
		return model.GroupStats{}
	}
	n := float64(a.count)
	return model.GroupStats{
		Count:      a.count,
		AvgAI:      a.sumAI / n,
		AvgAuditor: a.sumAuditor / n,
	}
}

type split struct {
	yes, no accumulator
}

func (s *split) add(flag bool, ai, auditor float64) {
	if flag {
		s.yes.add(ai, auditor)
	} else {
		s.no.add(ai, auditor)
	}
}

func (s *split) buckets() model.DecisionBuckets {
	return model.DecisionBuckets{True: s.yes.stats(), False: s.no.stats()}
}

// Summarize buckets every round by each decision flag and averages the
// round's payoffs per group. Rounds without a wager count toward
// wager_placed=false with a zero payoff, isolating the wager's own effect.
func Summarize(history []model.RoundRecord) model.BucketSummary {
	var safety, check, wager split

	for i := range history {
		r := &history[i]
		safety.add(r.AIInvestsHigh, r.IncrementalAI, r.IncrementalAuditor)
		check.add(r.AuditorPaysForCheck, r.IncrementalAI, r.IncrementalAuditor)
		if r.WagerPlaced {
			wager.add(true, r.IncrementalAI, r.IncrementalAuditor)
		} else {
			wager.add(false, 0, 0)
		}
	}

	return model.BucketSummary{
		AIInvestsHigh:       safety.buckets(),
		AuditorPaysForCheck: check.buckets(),
		WagerPlaced:         wager.buckets(),
	}
}
