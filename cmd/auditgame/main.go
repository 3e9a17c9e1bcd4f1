package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"AuditGame/internal/config"
	"AuditGame/internal/recorder"
	"AuditGame/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	params := cfg.Simulation.Params
	seed := cfg.Simulation.Seed

	if cfg.Schedule.SweepCron == "" {
		scheduler.RunOnce(params, seed, rec, os.Stdout)
		return
	}

	sched := scheduler.NewScheduler(params, seed, cfg.Schedule.SweepRuns, rec, os.Stdout)
	if err := sched.Register(cfg.Schedule.SweepCron); err != nil {
		log.Fatalf("[FATAL] register sweep: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Printf("[INFO] AuditGame sweeping on %q. Press Ctrl+C to stop.", cfg.Schedule.SweepCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
