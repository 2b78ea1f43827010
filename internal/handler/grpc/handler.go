// Package grpc implements the gRPC transport of the project hub server: the
// standard grpc.health.v1 service reflecting whether storage is set up, and a
// request logging interceptor.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// StorageServiceName is the health service name reporting storage readiness.
// The overall ("") status follows it.
const StorageServiceName = "projecthub.Storage"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It owns the health server so that a background worker can refresh the
// serving status while the gRPC server answers checks.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Until the first [Handler.RefreshHealth]
// every service reports NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register adds the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshHealth sets SERVING once the storage is initialised and NOT_SERVING
// otherwise. It returns the status that was set.
func (h *Handler) RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.StorageService.Status(ctx).Initialized {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.setStatus(servingStatus)
	return servingStatus
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(servingStatus healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", servingStatus)
	h.health.SetServingStatus(StorageServiceName, servingStatus)
}

// UnaryLoggingInterceptor attaches a request logger carrying the trace id from
// the "x-trace-id" metadata, or a generated one, and logs every call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	l := h.logger.WithTraceID(traceID)
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
