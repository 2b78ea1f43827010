package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const defaultHealthInterval = 10 * time.Second

// HealthReporter recomputes the serving status published over gRPC.
type HealthReporter interface {
	RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus
}

// HealthWorker keeps the gRPC health status in line with the storage state.
type HealthWorker struct {
	reporter HealthReporter
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthWorker(reporter HealthReporter, interval time.Duration, logger *logger.Logger) *HealthWorker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &HealthWorker{reporter: reporter, interval: interval, logger: logger}
}

// Run refreshes the status right away and then every interval. Only changes
// are logged.
func (h *HealthWorker) Run(ctx context.Context) {
	last := h.reporter.RefreshHealth(ctx)
	h.logger.Info().Str("status", last.String()).Msg("health status initialised")

	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			current := h.reporter.RefreshHealth(ctx)
			if current != last {
				h.logger.Info().Str("from", last.String()).Str("to", current.String()).Msg("health status changed")
				last = current
			}
		}
	}
}
