package api

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/democracychain/democracy-chain/pkg/config"
)

// startHealthServer serves the standard gRPC health service for orchestrators
// that probe over gRPC. The returned func marks the service NOT_SERVING and
// stops the server.
func startHealthServer(cfg *config.GRPCConfig, logger *zap.Logger) (func(), error) {
	if !cfg.Enabled {
		return func() {}, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen grpc health on %s: %w", addr, err)
	}

	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		logger.Info("gRPC health server listening", zap.String("address", addr))
		if err := srv.Serve(lis); err != nil {
			logger.Error("gRPC health server error", zap.Error(err))
		}
	}()

	return func() {
		hs.Shutdown()
		srv.GracefulStop()
	}, nil
}
