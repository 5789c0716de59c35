package ethrpc

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
)

// Server handles Ethereum JSON-RPC requests against the election registry
type Server struct {
	svc    service.Service
	logger *zap.Logger

	chainID   uint64
	address   common.Address
	abi       abi.ABI
	rpcServer *rpc.Server
}

// NewServer creates a new JSON-RPC server exposing the democracy, eth, net and
// web3 namespaces for the registry deployed at address.
func NewServer(svc service.Service, address common.Address, chainID uint64, logger *zap.Logger) (*Server, error) {
	s := &Server{
		svc:       svc,
		logger:    logger,
		chainID:   chainID,
		address:   address,
		abi:       election.ABI(),
		rpcServer: rpc.NewServer(),
	}

	apis := map[string]any{
		"democracy": NewDemocracyAPI(s),
		"eth":       NewEthAPI(s),
		"net":       &NetAPI{chainID: chainID},
		"web3":      &Web3API{},
	}
	for namespace, api := range apis {
		if err := s.rpcServer.RegisterName(namespace, api); err != nil {
			return nil, fmt.Errorf("failed to register %s API: %w", namespace, err)
		}
	}

	logger.Info("JSON-RPC server initialized",
		zap.Uint64("chain_id", chainID),
		zap.String("registry_address", address.Hex()))

	return s, nil
}

// ServeHTTP handles HTTP requests
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.rpcServer.ServeHTTP(w, r)
}

// Stop stops the underlying rpc server and closes open codecs
func (s *Server) Stop() {
	s.rpcServer.Stop()
}
