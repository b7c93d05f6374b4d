package workers

import (
	"context"

	"github.com/ekondratev/meetsync/internal/config"
	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the background workers enabled by cfg. A zero sync
// interval disables the periodic sync worker; the engine then only runs via
// the control API.
func NewWorkers(ctx context.Context, cfg config.Workers, engine service.DeltaSyncEngine, log *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SyncInterval > 0 {
		w.workers = append(w.workers, newSyncWorker(ctx, cfg.SyncInterval, engine, log))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops all workers that expose a Stop method.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(interface{ Stop() }); ok {
			s.Stop()
		}
	}
}
