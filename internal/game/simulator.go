package game

import "AuditGame/internal/model"

// Detection mix used when the auditor pays for a check.
const (
	checkSensitivity   = 0.9
	checkFalsePositive = 0.1
	// Share of the wager the company recovers on a false report.
	falsePositiveRecovery = 0.5
)

// detectionProbability returns the chance a bias signal fires.
func detectionProbability(probBias float64, audited bool) float64 {
	if !audited {
		return probBias
	}
	return probBias*checkSensitivity + (1-probBias)*checkFalsePositive
}

// Simulate plays p.Rounds rounds, drawing every random choice from src.
func Simulate(p model.Params, src Source) model.Result {
	var res model.Result
	if p.Rounds <= 0 {
		return res
	}
	res.History = make([]model.RoundRecord, 0, p.Rounds)

	for i := 1; i <= p.Rounds; i++ {
		rec := playRound(p, src)
		rec.Round = i

		res.FinalAI += rec.IncrementalAI
		res.FinalAuditor += rec.IncrementalAuditor
		rec.CumulativeAI = res.FinalAI
		rec.CumulativeAuditor = res.FinalAuditor

		res.History = append(res.History, rec)
	}
	return res
}

// playRound resolves one round. Draw order: safety, audit, signal, confirmation.
func playRound(p model.Params, src Source) model.RoundRecord {
	var rec model.RoundRecord

	// Step 1: safety investment
	rec.AIInvestsHigh = src.Bool()
	if rec.AIInvestsHigh {
		rec.ProbBias = p.ProbBiasHigh
		rec.AISafetyEffect = -p.CostHighSafety
	} else {
		rec.ProbBias = p.ProbBiasLow
		rec.AISafetyEffect = -p.CostLowSafety
	}

	// Step 2: audit and signal
	rec.AuditorPaysForCheck = src.Bool()
	if rec.AuditorPaysForCheck {
		rec.AuditorCheckEffect = -p.AuditorCheckCost
	}
	rec.DetectionProb = detectionProbability(rec.ProbBias, rec.AuditorPaysForCheck)
	rec.SignalBias = src.Float64() < rec.DetectionProb

	// Step 3: wager, settled on an independent confirmation draw
	if rec.SignalBias {
		rec.WagerPlaced = true
		if src.Float64() < rec.ProbBias {
			rec.AuditorWagerEffect = p.FineAmount + p.WagerAmount
			rec.AIWagerEffect = -p.FineAmount
		} else {
			rec.AuditorWagerEffect = -p.WagerAmount
			rec.AIWagerEffect = p.WagerAmount * falsePositiveRecovery
		}
	}

	rec.IncrementalAI = rec.AISafetyEffect + rec.AIWagerEffect
	rec.IncrementalAuditor = rec.AuditorCheckEffect + rec.AuditorWagerEffect
	return rec
}
