package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"c4inventario/internal/config"
	"c4inventario/internal/service/export"
	"c4inventario/internal/service/inventory"
	"c4inventario/pkg/clients/backend"
)

// Scheduler runs the nightly inventory snapshot: sign in with the reporting
// account, fetch the product list, and write the full-inventory PDF into the
// output directory. A derived artifact, not authoritative state.
type Scheduler struct {
	cron   *cron.Cron
	client backend.Client
	cfg    config.ReportingConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReportingConfig, client backend.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers and starts the snapshot job.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.writeSnapshot); err != nil {
		s.logger.Error("failed to schedule inventory snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) writeSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	s.logger.Info("generating inventory snapshot")

	login, err := s.client.Login(ctx, s.cfg.Username, s.cfg.Password)
	if err != nil {
		s.logger.Error("snapshot login failed", zap.Error(err))
		return
	}

	products, err := s.client.ListProducts(ctx, login.Token)
	if err != nil {
		s.logger.Error("snapshot product fetch failed", zap.Error(err))
		return
	}

	byStatus := inventory.ComputeStats(products, nil, now).ByStatus
	document, err := export.InventoryPDF(products, byStatus, now)
	if err != nil {
		s.logger.Error("snapshot rendering failed", zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		s.logger.Error("snapshot output dir unavailable", zap.Error(err))
		return
	}

	path := filepath.Join(s.cfg.OutputDir, export.Filename("inventory_snapshot", "pdf", now))
	if err := os.WriteFile(path, document, 0o644); err != nil {
		s.logger.Error("snapshot write failed", zap.Error(err))
		return
	}

	s.logger.Info("inventory snapshot written",
		zap.String("path", path),
		zap.Int("products", len(products)),
		zap.Int("bytes", len(document)))
}
