// Package health exposes dependency health over the standard gRPC health service.
package health

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/h2credit-ledger/internal/clock"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=health

type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe is a named dependency. Its name doubles as the gRPC service name.
type Probe struct {
	Name   string
	Pinger Pinger
}

// Handler keeps the gRPC health status in step with its probes. The overall
// status ("") is SERVING only while every probe succeeds.
type Handler struct {
	server   *grpchealth.Server
	probes   []Probe
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
}

func NewHandler(logger *zap.Logger, interval, timeout time.Duration, probes ...Probe) (*Handler, error) {
	if len(probes) == 0 {
		return nil, errors.New("at least one health probe is required")
	}
	for _, p := range probes {
		if p.Name == "" || p.Pinger == nil {
			return nil, errors.New("health probe needs a name and a pinger")
		}
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	server := grpchealth.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, p := range probes {
		server.SetServingStatus(p.Name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	return &Handler{
		server:   server,
		probes:   probes,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		sleep:    clock.SleepWithContext,
	}, nil
}

func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.server)
}

// Run probes until ctx is canceled, then reports NOT_SERVING everywhere.
func (h *Handler) Run(ctx context.Context) error {
	for {
		h.Check(ctx)
		if err := h.sleep(ctx, h.interval); err != nil {
			h.server.Shutdown()
			return err
		}
	}
}

// Check runs every probe once and publishes the result.
func (h *Handler) Check(ctx context.Context) bool {
	healthy := true
	for _, p := range h.probes {
		status := healthpb.HealthCheckResponse_SERVING
		if err := h.ping(ctx, p); err != nil {
			healthy = false
			status = healthpb.HealthCheckResponse_NOT_SERVING
			h.logger.Warn("health probe failed", zap.String("probe", p.Name), zap.Error(err))
		}
		h.server.SetServingStatus(p.Name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", overall)
	return healthy
}

func (h *Handler) ping(ctx context.Context, p Probe) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return p.Pinger.Ping(ctx)
}
