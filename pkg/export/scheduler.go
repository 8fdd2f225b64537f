package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/robfig/cron/v3"

	"costguard-hq/guardian/pkg/ledger"
)

// SchedulerConfig configures periodic snapshot exports.
type SchedulerConfig struct {
	// Schedule is a cron expression ("0 * * * *") or descriptor
	// ("@hourly", "@every 15m"). Empty disables the scheduler.
	Schedule string

	// Path is the output file. Each run rewrites it with a fresh snapshot.
	Path string

	// Format selects the exporter: "json" (default) or "csv".
	Format string
}

// Scheduler writes ledger snapshots to a file on a cron schedule.
//
// Snapshots are written atomically (temp file plus rename) so a reader
// never sees a half-written report.
type Scheduler struct {
	led      *ledger.Ledger
	config   SchedulerConfig
	exporter Exporter
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a snapshot scheduler for the given ledger.
func NewScheduler(led *ledger.Ledger, config SchedulerConfig) *Scheduler {
	return &Scheduler{
		led:    led,
		config: config,
		cron:   cron.New(),
		logger: slog.Default().With("component", "export.scheduler"),
	}
}

// Start begins scheduled exporting. It validates the schedule and format,
// registers the cron job, and stops automatically when ctx is cancelled.
// A scheduler with an empty schedule starts as a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if s.config.Schedule == "" {
		s.logger.Info("export schedule not configured, skipping scheduler")
		return nil
	}

	switch s.config.Format {
	case "", "json":
		s.exporter = NewJSONExporter(true)
	case "csv":
		s.exporter = NewCSVExporter(true)
	default:
		return fmt.Errorf("unsupported export format %q", s.config.Format)
	}

	if s.config.Path == "" {
		return fmt.Errorf("export path not configured")
	}

	if _, err := cron.ParseStandard(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid export schedule %q: %w", s.config.Schedule, err)
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, s.runExport); err != nil {
		return fmt.Errorf("failed to schedule export: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("export scheduler started",
		"schedule", s.config.Schedule,
		"path", s.config.Path,
		"format", s.config.Format,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runExport writes one snapshot.
func (s *Scheduler) runExport() {
	if err := s.writeSnapshot(); err != nil {
		s.logger.Error("scheduled export failed", "error", err)
		return
	}
	s.logger.Debug("scheduled export completed",
		"path", s.config.Path,
		"requests", s.led.RequestCount(),
	)
}

// writeSnapshot exports to a temp file and renames it into place.
// The temp file lives next to the target so the rename stays on one
// filesystem.
func (s *Scheduler) writeSnapshot() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.config.Path), ".guardian-export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.exporter.Export(tmp, s.led); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.config.Path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// Stop stops the scheduler and waits for a running export to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("export scheduler stopped")
	}
}

// IsRunning reports whether the scheduler has been started.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
