package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 10000
)

var hundred = decimal.NewFromInt(100)

// Service defines the election business logic exposed over HTTP and JSON-RPC.
// Mutations take the authenticated caller; reads never fail for unknown keys and
// return zero values instead.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Info(ctx context.Context) (*Info, error)
	RegisterCitizen(ctx context.Context, caller common.Address, req *CitizenRequest) (*TxResponse, error)
	AddCitizenCandidate(ctx context.Context, caller common.Address, req *CitizenRequest) (*TxResponse, error)
	AddCandidate(ctx context.Context, caller common.Address) (*TxResponse, error)
	Vote(ctx context.Context, caller common.Address, req *VoteRequest) (*TxResponse, error)
	GetCitizen(ctx context.Context, wallet common.Address) (*election.Citizen, error)
	GetCandidate(ctx context.Context, dni string) (*election.Candidate, error)
	GetCandidateByIndex(ctx context.Context, index uint64) (*election.Candidate, error)
	GetCandidateCount(ctx context.Context) (uint64, error)
	WalletToDNI(ctx context.Context, wallet common.Address) (common.Hash, error)
	ListCitizens(ctx context.Context, caller common.Address) ([]election.Citizen, error)
	Results(ctx context.Context) (*Results, error)
	Logs(ctx context.Context, filter *LogFilter) ([]*LogEntry, error)
}

type electionService struct {
	registry *election.Registry
	store    electionstore.Store
	election *electionstore.Election
	logger   *zap.Logger
}

// NewService creates the election service over a deployed registry.
func NewService(
	registry *election.Registry,
	store electionstore.Store,
	deployed *electionstore.Election,
	logger *zap.Logger,
) Service {
	return &electionService{
		registry: registry,
		store:    store,
		election: deployed,
		logger:   logger,
	}
}

func (s *electionService) Info(_ context.Context) (*Info, error) {
	params := s.registry.Params()
	info := &Info{
		Address:    s.registry.Address(),
		Network:    s.election.Network,
		ChainID:    s.election.ChainID,
		Params:     params,
		Phase:      s.registry.Phase(),
		Seq:        s.registry.Seq(),
		Citizens:   uint64(len(s.registry.Citizens())),
		Candidates: s.registry.GetCandidateCount(),
	}
	for _, c := range s.registry.Candidates() {
		info.Votes += c.VoteCount
	}
	return info, nil
}

func (s *electionService) RegisterCitizen(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (*TxResponse, error) {
	return s.mutate(ctx, func() (*election.Receipt, error) {
		return s.registry.RegisterCitizen(ctx, caller, req.DNI, req.Name)
	})
}

func (s *electionService) AddCitizenCandidate(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (*TxResponse, error) {
	return s.mutate(ctx, func() (*election.Receipt, error) {
		return s.registry.AddCitizenCandidate(ctx, caller, req.DNI, req.Name)
	})
}

func (s *electionService) AddCandidate(ctx context.Context, caller common.Address) (*TxResponse, error) {
	return s.mutate(ctx, func() (*election.Receipt, error) {
		return s.registry.AddCandidate(ctx, caller)
	})
}

func (s *electionService) Vote(ctx context.Context, caller common.Address, req *VoteRequest) (*TxResponse, error) {
	return s.mutate(ctx, func() (*election.Receipt, error) {
		return s.registry.Vote(ctx, caller, req.DNI)
	})
}

// mutate runs op against the registry. When another writer on the same store
// committed first, the registry is reloaded from the store and op runs once
// more against the fresh state. That covers both a rejected commit and a guard
// that failed on state this instance had not seen yet.
func (s *electionService) mutate(ctx context.Context, op func() (*election.Receipt, error)) (*TxResponse, error) {
	receipt, err := op()
	if err != nil && s.behind(ctx, err) {
		if err := s.reload(ctx); err != nil {
			return nil, apperrors.DependencyFailureError(err)
		}
		receipt, err = op()
	}
	if err != nil {
		return nil, mapError(err)
	}
	return s.txResponse(receipt)
}

// behind reports whether err may stem from a stale registry.
func (s *electionService) behind(ctx context.Context, err error) bool {
	if errors.Is(err, electionstore.ErrSequenceConflict) {
		return true
	}
	var regErr *election.Error
	if !errors.As(err, &regErr) {
		return false
	}
	stored, serr := s.store.GetElection(ctx)
	if serr != nil {
		s.logger.Warn("Failed to check election sequence", zap.Error(serr))
		return false
	}
	return stored.LastSeq > s.registry.Seq()
}

func (s *electionService) reload(ctx context.Context) error {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load election state: %w", err)
	}
	if err := s.registry.Reload(*state); err != nil {
		return fmt.Errorf("failed to reload election state: %w", err)
	}
	s.logger.Info("Election state reloaded after a concurrent commit", zap.Uint64("seq", state.LastSeq))
	return nil
}

func (s *electionService) GetCitizen(_ context.Context, wallet common.Address) (*election.Citizen, error) {
	c := s.registry.GetCitizen(wallet)
	return &c, nil
}

func (s *electionService) GetCandidate(_ context.Context, dni string) (*election.Candidate, error) {
	c := s.registry.GetCandidate(dni)
	return &c, nil
}

func (s *electionService) GetCandidateByIndex(_ context.Context, index uint64) (*election.Candidate, error) {
	c, err := s.registry.GetCandidateByIndex(index)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (s *electionService) GetCandidateCount(_ context.Context) (uint64, error) {
	return s.registry.GetCandidateCount(), nil
}

func (s *electionService) WalletToDNI(_ context.Context, wallet common.Address) (common.Hash, error) {
	return s.registry.WalletToDNI(wallet), nil
}

func (s *electionService) ListCitizens(_ context.Context, caller common.Address) ([]election.Citizen, error) {
	if err := s.registry.RequireAdmin(caller); err != nil {
		return nil, mapError(err)
	}
	return s.registry.Citizens(), nil
}

func (s *electionService) Results(_ context.Context) (*Results, error) {
	candidates := s.registry.Candidates()

	var total uint64
	for _, c := range candidates {
		total += c.VoteCount
	}

	res := &Results{
		Phase:      s.registry.Phase(),
		TotalVotes: total,
		Candidates: make([]CandidateResult, 0, len(candidates)),
	}
	for i, c := range candidates {
		res.Candidates = append(res.Candidates, CandidateResult{
			Position: uint64(i),
			DNI:      c.Citizen.Person.DNI,
			Name:     c.Citizen.Person.Name,
			Wallet:   c.Citizen.Person.Wallet,
			Votes:    c.VoteCount,
			Share:    share(c.VoteCount, total),
		})
	}
	return res, nil
}

func (s *electionService) Logs(ctx context.Context, filter *LogFilter) ([]*LogEntry, error) {
	if filter == nil {
		filter = &LogFilter{}
	}

	opts := []electionstore.QueryOption{electionstore.WithAddress(s.registry.Address())}
	if filter.From != nil {
		opts = append(opts, electionstore.WithFromSeq(*filter.From))
	}
	if filter.To != nil {
		opts = append(opts, electionstore.WithToSeq(*filter.To))
	}
	if filter.Event != "" {
		if _, ok := election.ABI().Events[filter.Event]; !ok {
			return nil, apperrors.BadRequestError(nil, fmt.Sprintf("unknown event %q", filter.Event))
		}
		opts = append(opts, electionstore.WithTopic0(election.EventTopic(filter.Event)))
	}
	if filter.Wallet != nil {
		opts = append(opts, electionstore.WithWallet(*filter.Wallet))
	}

	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultLogLimit
	case limit > maxLogLimit:
		limit = maxLogLimit
	}
	opts = append(opts, electionstore.WithLimit(limit))

	records, err := s.store.ListLogs(ctx, opts...)
	if err != nil {
		return nil, apperrors.DependencyFailureError(fmt.Errorf("failed to list logs: %w", err))
	}

	entries := make([]*LogEntry, 0, len(records))
	for _, rec := range records {
		entry, err := logEntry(&rec.Log, rec.Method, rec.Caller, rec.Timestamp)
		if err != nil {
			return nil, apperrors.GeneralError(err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *electionService) txResponse(r *election.Receipt) (*TxResponse, error) {
	resp := &TxResponse{
		TxHash:    r.TxHash,
		Seq:       r.Seq,
		Method:    r.Method,
		Caller:    r.Caller,
		Timestamp: r.Timestamp,
		Events:    make([]*LogEntry, 0, len(r.Logs)),
	}
	for _, l := range r.Logs {
		entry, err := logEntry(l, r.Method, r.Caller, r.Timestamp)
		if err != nil {
			return nil, apperrors.GeneralError(err)
		}
		resp.Events = append(resp.Events, entry)
	}
	return resp, nil
}

func logEntry(l *types.Log, method string, caller common.Address, ts time.Time) (*LogEntry, error) {
	ev, err := election.DecodeLog(*l)
	if err != nil {
		return nil, fmt.Errorf("failed to decode log %d/%d: %w", l.BlockNumber, l.Index, err)
	}
	return &LogEntry{
		Seq:       l.BlockNumber,
		TxHash:    l.TxHash,
		LogIndex:  l.Index,
		Address:   l.Address,
		Event:     ev.EventName(),
		Method:    method,
		Caller:    caller,
		Timestamp: ts,
		Args:      ev,
	}, nil
}

// share returns votes as a percentage of total, rounded to two decimals.
func share(votes, total uint64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromUint64(votes).
		Mul(hundred).
		Div(decimal.NewFromUint64(total)).
		Round(2)
}
