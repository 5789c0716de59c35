package ethrpc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/election/service"
)

// DemocracyAPI implements the democracy_* JSON-RPC namespace: typed reads of the
// registry state.
type DemocracyAPI struct {
	server *Server
}

// NewDemocracyAPI creates a new DemocracyAPI instance
func NewDemocracyAPI(server *Server) *DemocracyAPI {
	return &DemocracyAPI{server: server}
}

// GetCitizen returns the citizen bound to address, or an empty citizen
func (api *DemocracyAPI) GetCitizen(ctx context.Context, address common.Address) (*election.Citizen, error) {
	c, err := api.server.svc.GetCitizen(ctx, address)
	if err != nil {
		return nil, toRPCError(err)
	}
	return c, nil
}

// GetCandidate returns the candidate registered under dni, or an empty candidate
func (api *DemocracyAPI) GetCandidate(ctx context.Context, dni string) (*election.Candidate, error) {
	c, err := api.server.svc.GetCandidate(ctx, dni)
	if err != nil {
		return nil, toRPCError(err)
	}
	return c, nil
}

// GetCandidateByIndex returns the index-th declared candidate
func (api *DemocracyAPI) GetCandidateByIndex(ctx context.Context, index hexutil.Uint64) (*election.Candidate, error) {
	c, err := api.server.svc.GetCandidateByIndex(ctx, uint64(index))
	if err != nil {
		return nil, toRPCError(err)
	}
	return c, nil
}

// GetCandidateCount returns the number of declared candidates
func (api *DemocracyAPI) GetCandidateCount(ctx context.Context) (hexutil.Uint64, error) {
	n, err := api.server.svc.GetCandidateCount(ctx)
	if err != nil {
		return 0, toRPCError(err)
	}
	return hexutil.Uint64(n), nil
}

// WalletToDni returns the DNI hash address is bound to, or the zero hash
func (api *DemocracyAPI) WalletToDni(ctx context.Context, address common.Address) (common.Hash, error) {
	h, err := api.server.svc.WalletToDNI(ctx, address)
	if err != nil {
		return common.Hash{}, toRPCError(err)
	}
	return h, nil
}

// Params returns the admin and both deadlines
func (api *DemocracyAPI) Params(ctx context.Context) (*election.Params, error) {
	info, err := api.server.svc.Info(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &info.Params, nil
}

// Info returns the deployment and progress of the election
func (api *DemocracyAPI) Info(ctx context.Context) (*service.Info, error) {
	info, err := api.server.svc.Info(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	return info, nil
}

// Results returns the current tally
func (api *DemocracyAPI) Results(ctx context.Context) (*service.Results, error) {
	res, err := api.server.svc.Results(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	return res, nil
}

// GetLogs returns decoded registry logs matching args
func (api *DemocracyAPI) GetLogs(ctx context.Context, args *LogFilterArgs) ([]*service.LogEntry, error) {
	filter := &service.LogFilter{}
	if args != nil {
		filter.Event = args.Event
		filter.Wallet = args.Wallet
		filter.Limit = args.Limit
		if args.FromSeq != nil {
			from := uint64(*args.FromSeq)
			filter.From = &from
		}
		if args.ToSeq != nil {
			to := uint64(*args.ToSeq)
			filter.To = &to
		}
	}

	entries, err := api.server.svc.Logs(ctx, filter)
	if err != nil {
		return nil, toRPCError(err)
	}
	return entries, nil
}
