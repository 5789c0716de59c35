package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/democracychain/democracy-chain/pkg/app/http"
	"github.com/democracychain/democracy-chain/pkg/auth"
	"github.com/democracychain/democracy-chain/pkg/config"
	"github.com/democracychain/democracy-chain/pkg/contractinfo"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
	"github.com/democracychain/democracy-chain/pkg/ethrpc"
)

const rpcPath = "/rpc"

// RouterConfig holds the components served by the registry HTTP API.
type RouterConfig struct {
	Service    service.Service
	Election   *electionstore.Election
	Sessions   *auth.SessionManager
	Challenges *auth.ChallengeStore
	Server     config.ServerConfig
	EthRPC     config.EthRPCConfig
	Monitoring config.MonitoringConfig
}

// NewRouter builds the registry HTTP API. The returned func stops the JSON-RPC
// server and must be called on shutdown.
func NewRouter(cfg *RouterConfig, logger *zap.Logger) (chi.Router, func(), error) {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}
	r.Use(apphttp.CORS(cfg.Server.CORSAllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Contract discovery
	contractinfo.NewHandler(election.ABIJSON, cfg.Election.Address, cfg.Election.Network, logger).
		RegisterRoutes(r)

	// Wallet login and election endpoints
	auth.RegisterRoutes(r, cfg.Challenges, cfg.Sessions, logger)
	service.RegisterRoutes(r, cfg.Service, auth.RequireSession(cfg.Sessions, cfg.Election.Admin), logger)

	if cfg.Monitoring.Enabled {
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	closeFn := func() {}

	// Ethereum JSON-RPC endpoints (if enabled)
	if cfg.EthRPC.Enabled {
		ethSrv, err := ethrpc.NewServer(cfg.Service, cfg.Election.Address, cfg.Election.ChainID, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create eth json-rpc server: %w", err)
		}
		handler := http.Handler(ethSrv)
		if cfg.EthRPC.RequestTimeout > 0 {
			handler = middleware.Timeout(cfg.EthRPC.RequestTimeout)(handler)
		}
		r.Handle(rpcPath, handler)
		closeFn = ethSrv.Stop

		logger.Info("Ethereum JSON-RPC endpoint enabled",
			zap.String("path", rpcPath),
			zap.Uint64("chain_id", cfg.Election.ChainID),
			zap.String("registry_address", cfg.Election.Address.Hex()),
		)
	}

	return r, closeFn, nil
}
