package scheduler

import (
	"fmt"
	"io"
	"log"
	"sync"

	"AuditGame/internal/game"
	"AuditGame/internal/model"
	"AuditGame/internal/recorder"
	"AuditGame/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs simulation sweeps on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Recorder recorder.Recorder
	Params   model.Params
	Runs     int
	Out      io.Writer

	mu       sync.Mutex
	nextSeed int64
}

// NewScheduler creates a Scheduler whose first sweep starts at seed.
func NewScheduler(params model.Params, seed int64, runs int, rec recorder.Recorder, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Recorder: rec,
		Params:   params,
		Runs:     runs,
		Out:      out,
		nextSeed: seed,
	}
}

// Register adds the sweep task under the given standard cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one sweep immediately and returns the seeds it used.
func (s *Scheduler) RunNow() []int64 {
	return s.sweep()
}

func (s *Scheduler) sweepTask() {
	s.sweep()
}

// sweep plays Runs simulations on consecutive seeds. Later sweeps continue the seed sequence.
func (s *Scheduler) sweep() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("[INFO] running sweep: %d runs from seed %d", s.Runs, s.nextSeed)
	seeds := make([]int64, 0, s.Runs)
	for i := 0; i < s.Runs; i++ {
		seed := s.nextSeed
		s.nextSeed++
		RunOnce(s.Params, seed, s.Recorder, s.Out)
		seeds = append(seeds, seed)
	}
	return seeds
}

// RunOnce plays a single seeded simulation, writes its report and records it.
// Recorder failures are logged and do not abort the run.
func RunOnce(params model.Params, seed int64, rec recorder.Recorder, out io.Writer) *recorder.RunEvent {
	res := game.Simulate(params, game.NewRandSource(seed))
	summary := game.Summarize(res.History)

	evt := &recorder.RunEvent{
		RunID:   recorder.NewRunID(),
		Seed:    seed,
		Params:  params,
		Result:  &res,
		Summary: &summary,
	}

	if _, err := io.WriteString(out, report.FormatRun(evt.RunID, seed, &res, &summary)+"\n"); err != nil {
		log.Printf("[ERROR] write report: %v", err)
	}
	if err := rec.RecordRun(evt); err != nil {
		log.Printf("[ERROR] record run %s: %v", evt.RunID, err)
	}
	return evt
}
