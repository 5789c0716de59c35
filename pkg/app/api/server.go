// Package api implements app.Runner for the registry server process.
package api

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	apphttp "github.com/democracychain/democracy-chain/pkg/app/http"
	"github.com/democracychain/democracy-chain/pkg/auth"
	"github.com/democracychain/democracy-chain/pkg/config"
	"github.com/democracychain/democracy-chain/pkg/election/service"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
	"github.com/democracychain/democracy-chain/pkg/keys"
	"github.com/democracychain/democracy-chain/pkg/pgutil"
)

const serviceName = "registry-server"

// Server holds cfg to init the registry server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new registry server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run deploys or restores the election, serves the HTTP API and blocks until an
// OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("registry server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, serviceName)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	logger.Info("Starting registry server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions, err := s.newSessionManager()
	if err != nil {
		return err
	}

	registry, deployed, err := service.Deploy(ctx, store, service.Deployment{
		Admin:                cfg.Election.AdminAddress(),
		RegistrationDeadline: cfg.Election.RegistrationDeadline,
		VotingDeadline:       cfg.Election.VotingDeadline,
		Address:              cfg.Election.RegistryAddress(),
		Network:              cfg.Election.Network,
		ChainID:              cfg.Election.ChainID,
	}, logger)
	if err != nil {
		return fmt.Errorf("deploy election: %w", err)
	}

	logger.Info("Election ready",
		zap.String("address", deployed.Address.Hex()),
		zap.String("admin", deployed.Admin.Hex()),
		zap.String("network", deployed.Network),
		zap.String("phase", registry.Phase()),
		zap.Uint64("seq", registry.Seq()),
	)

	var svc service.Service = service.NewLog(service.NewService(registry, store, deployed, logger), logger)
	if cfg.Monitoring.Enabled {
		if svc, err = service.NewInstrumented(ctx, svc); err != nil {
			return fmt.Errorf("instrument service: %w", err)
		}
	}

	router, closeRouter, err := NewRouter(&RouterConfig{
		Service:    svc,
		Election:   deployed,
		Sessions:   sessions,
		Challenges: auth.NewChallengeStore(cfg.Auth.ChallengeTTL),
		Server:     cfg.Server,
		EthRPC:     cfg.EthRPC,
		Monitoring: cfg.Monitoring,
	}, logger)
	if err != nil {
		return err
	}

	stopHealth, err := startHealthServer(&cfg.GRPC, logger)
	if err != nil {
		closeRouter()
		return err
	}

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server,
		func(context.Context) { closeRouter() },
		func(context.Context) { stopHealth() },
	)
}

// openStore connects to PostgreSQL, or returns an in-memory store when the
// database is disabled.
func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (electionstore.Store, func(), error) {
	if !s.cfg.Database.Enabled {
		logger.Warn("Database disabled, election state will not survive restarts")
		return electionstore.NewMemStore(), func() {}, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return electionstore.NewStore(db), func() { _ = db.Close() }, nil
}

func (s *Server) newSessionManager() (*auth.SessionManager, error) {
	masterKey, err := keys.MasterKeyFromEnv(s.cfg.Auth.MasterKeyEnv)
	if err != nil {
		return nil, fmt.Errorf(
			"session master key not set: %w (hint: openssl rand -base64 32)", err,
		)
	}
	signingKey, err := keys.SessionSigningKey(masterKey)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return auth.NewSessionManager(signingKey, s.cfg.Auth.JWTIssuer, s.cfg.Auth.SessionTTL)
}
