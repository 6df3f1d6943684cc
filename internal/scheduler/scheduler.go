// Package scheduler triggers the alert pipeline on fixed cron schedules.
package scheduler

import (
	"gold-price-telegram-bot/config"
	"gold-price-telegram-bot/internal/alert"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler manages the recurring alert tasks.
type Scheduler struct {
	Cron   *cron.Cron
	Alerts *alert.Service
	cfg    config.ScheduleConfig
}

// NewScheduler creates a scheduler. With AllowOverlap disabled, a tick that
// fires while the previous run is still in flight is skipped instead of
// running concurrently.
func NewScheduler(cfg config.ScheduleConfig, svc *alert.Service) *Scheduler {
	var opts []cron.Option
	if !cfg.AllowOverlap {
		opts = append(opts, cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(log.StandardLogger())),
		))
	}

	return &Scheduler{
		Cron:   cron.New(opts...),
		Alerts: svc,
		cfg:    cfg,
	}
}

// RegisterAll registers the per-minute alert and the daily summary.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.Cron.AddFunc(s.cfg.MinuteSpec, s.minuteAlert); err != nil {
		return errors.Wrap(err, "register minute task")
	}
	if _, err := s.Cron.AddFunc(s.cfg.DailySpec, s.dailyAlert); err != nil {
		return errors.Wrap(err, "register daily task")
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("🚀 Scheduler started.")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info("Scheduler stopped.")
}

// Schedule-triggered failures are visible to operators only through the log.
func (s *Scheduler) minuteAlert() {
	log.Debug("running scheduled price alert")
	if _, err := s.Alerts.SendPriceAlert(true); err != nil {
		log.Errorf("scheduled price alert failed: %v", err)
	}
}

func (s *Scheduler) dailyAlert() {
	log.Info("sending daily price alert")
	if _, err := s.Alerts.SendPriceAlert(true); err != nil {
		log.Errorf("daily price alert failed: %v", err)
	}
}
