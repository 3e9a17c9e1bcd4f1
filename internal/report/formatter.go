package report

import (
	"fmt"
	"strings"

	"AuditGame/internal/model"
)

// FormatTotals formats the final cumulative payoffs of a run.
func FormatTotals(res *model.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Final Cumulative AI Company Payoff: %g\n", res.FinalAI))
	b.WriteString(fmt.Sprintf("Final Cumulative Auditor Payoff: %g\n", res.FinalAuditor))
	return b.String()
}

// FormatSummary formats the per-decision bucket averages.
func FormatSummary(s *model.BucketSummary) string {
	var b strings.Builder
	b.WriteString("Bucket Summary (Average Outcome per Decision):\n")
	for _, d := range model.Decisions() {
		buckets, _ := s.Get(d)
		b.WriteString(fmt.Sprintf("\nDecision: %s\n", d))
		writeGroup(&b, "True", buckets.True)
		writeGroup(&b, "False", buckets.False)
	}
	return b.String()
}

func writeGroup(b *strings.Builder, label string, g model.GroupStats) {
	b.WriteString(fmt.Sprintf("  %s Decisions: Count = %d Average AI Outcome = %.4f Average Auditor Outcome = %.4f\n",
		label, g.Count, g.AvgAI, g.AvgAuditor))
}

// FormatSanityCheck reports the auditor mean for rounds without a wager, which must be zero.
func FormatSanityCheck(s *model.BucketSummary) string {
	return fmt.Sprintf("Sanity Check for 'wager_placed' Bucket (Auditor, False): %g\n", s.WagerPlaced.False.AvgAuditor)
}

// FormatRun renders the full text report of a run.
func FormatRun(runID string, seed int64, res *model.Result, s *model.BucketSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== AuditGame run %s | seed=%d rounds=%d ===\n\n", runID, seed, len(res.History)))
	b.WriteString(FormatTotals(res))
	b.WriteString("\n")
	b.WriteString(FormatSummary(s))
	b.WriteString("\n")
	b.WriteString(FormatSanityCheck(s))
	return b.String()
}
