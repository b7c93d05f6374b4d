package workers

import (
	"context"
	"time"

	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/service"
)

// syncWorker runs the delta-sync job on a fixed interval.
type syncWorker struct {
	ctx      context.Context
	interval time.Duration
	job      service.SyncJob
	logger   *logger.Logger
}

func newSyncWorker(ctx context.Context, interval time.Duration, engine service.DeltaSyncEngine, log *logger.Logger) *syncWorker {
	return &syncWorker{
		ctx:      ctx,
		interval: interval,
		job:      service.NewSyncJob(engine, log),
		logger:   log,
	}
}

func (w *syncWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting periodic sync worker")
	w.job.Start(w.ctx, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("periodic sync worker stopped")
}
