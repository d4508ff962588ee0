package scheduler

import (
	"context"
	"time"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/logger"

	"github.com/robfig/cron/v3"
)

// AutoRejectScheduler runs the stale-bid sweep on a cron schedule
type AutoRejectScheduler struct {
	cron  *cron.Cron
	bidUC domain.BidUsecase
}

// NewAutoRejectScheduler wires the sweep onto the given cron spec
// (e.g. "0 3 * * *").
func NewAutoRejectScheduler(spec string, bidUC domain.BidUsecase) (*AutoRejectScheduler, error) {
	s := &AutoRejectScheduler{
		cron:  cron.New(),
		bidUC: bidUC,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AutoRejectScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rejected, err := s.bidUC.AutoRejectStale(ctx)
	if err != nil {
		logger.Log.Error("auto-reject sweep failed", "error", err)
		return
	}
	logger.Log.Info("auto-reject sweep finished", "rejected", rejected)
}

func (s *AutoRejectScheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish
func (s *AutoRejectScheduler) Stop() {
	<-s.cron.Stop().Done()
}
