package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/democracychain/democracy-chain/internal/metrics"
	apperrors "github.com/democracychain/democracy-chain/pkg/app/errors"
	"github.com/democracychain/democracy-chain/pkg/election"
)

// instrumentedService records prometheus metrics for every Service call.
type instrumentedService struct {
	svc Service
}

// NewInstrumented wraps svc with prometheus metrics. The election gauges are
// seeded from svc.Info and kept current from accepted mutations.
func NewInstrumented(ctx context.Context, svc Service) (Service, error) {
	info, err := svc.Info(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RegisteredCitizens.Set(float64(info.Citizens))
	metrics.Candidates.Set(float64(info.Candidates))
	metrics.VotesCast.Set(float64(info.Votes))
	metrics.LastSequence.Set(float64(info.Seq))
	return &instrumentedService{svc: svc}, nil
}

func (s *instrumentedService) Info(ctx context.Context) (*Info, error) {
	defer observe("Info", time.Now())
	info, err := s.svc.Info(ctx)
	count("Info", err)
	return info, err
}

func (s *instrumentedService) RegisterCitizen(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (*TxResponse, error) {
	defer observe("RegisterCitizen", time.Now())
	resp, err := s.svc.RegisterCitizen(ctx, caller, req)
	count("RegisterCitizen", err)
	recordTx(resp, err)
	return resp, err
}

func (s *instrumentedService) AddCitizenCandidate(
	ctx context.Context,
	caller common.Address,
	req *CitizenRequest,
) (*TxResponse, error) {
	defer observe("AddCitizenCandidate", time.Now())
	resp, err := s.svc.AddCitizenCandidate(ctx, caller, req)
	count("AddCitizenCandidate", err)
	recordTx(resp, err)
	return resp, err
}

func (s *instrumentedService) AddCandidate(ctx context.Context, caller common.Address) (*TxResponse, error) {
	defer observe("AddCandidate", time.Now())
	resp, err := s.svc.AddCandidate(ctx, caller)
	count("AddCandidate", err)
	recordTx(resp, err)
	return resp, err
}

func (s *instrumentedService) Vote(ctx context.Context, caller common.Address, req *VoteRequest) (*TxResponse, error) {
	defer observe("Vote", time.Now())
	resp, err := s.svc.Vote(ctx, caller, req)
	count("Vote", err)
	recordTx(resp, err)
	return resp, err
}

func (s *instrumentedService) GetCitizen(ctx context.Context, wallet common.Address) (*election.Citizen, error) {
	defer observe("GetCitizen", time.Now())
	c, err := s.svc.GetCitizen(ctx, wallet)
	count("GetCitizen", err)
	return c, err
}

func (s *instrumentedService) GetCandidate(ctx context.Context, dni string) (*election.Candidate, error) {
	defer observe("GetCandidate", time.Now())
	c, err := s.svc.GetCandidate(ctx, dni)
	count("GetCandidate", err)
	return c, err
}

func (s *instrumentedService) GetCandidateByIndex(ctx context.Context, index uint64) (*election.Candidate, error) {
	defer observe("GetCandidateByIndex", time.Now())
	c, err := s.svc.GetCandidateByIndex(ctx, index)
	count("GetCandidateByIndex", err)
	return c, err
}

func (s *instrumentedService) GetCandidateCount(ctx context.Context) (uint64, error) {
	defer observe("GetCandidateCount", time.Now())
	n, err := s.svc.GetCandidateCount(ctx)
	count("GetCandidateCount", err)
	return n, err
}

func (s *instrumentedService) WalletToDNI(ctx context.Context, wallet common.Address) (common.Hash, error) {
	defer observe("WalletToDNI", time.Now())
	h, err := s.svc.WalletToDNI(ctx, wallet)
	count("WalletToDNI", err)
	return h, err
}

func (s *instrumentedService) ListCitizens(ctx context.Context, caller common.Address) ([]election.Citizen, error) {
	defer observe("ListCitizens", time.Now())
	list, err := s.svc.ListCitizens(ctx, caller)
	count("ListCitizens", err)
	return list, err
}

func (s *instrumentedService) Results(ctx context.Context) (*Results, error) {
	defer observe("Results", time.Now())
	res, err := s.svc.Results(ctx)
	count("Results", err)
	return res, err
}

func (s *instrumentedService) Logs(ctx context.Context, filter *LogFilter) ([]*LogEntry, error) {
	defer observe("Logs", time.Now())
	entries, err := s.svc.Logs(ctx, filter)
	count("Logs", err)
	return entries, err
}

func observe(method string, start time.Time) {
	metrics.OperationDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func count(method string, err error) {
	metrics.OperationsTotal.WithLabelValues(method, apperrors.CategoryOf(err).String()).Inc()
}

// recordTx updates the election gauges from the events of an accepted mutation.
func recordTx(resp *TxResponse, err error) {
	if err != nil || resp == nil {
		return
	}
	for _, ev := range resp.Events {
		metrics.EventsEmitted.WithLabelValues(ev.Event).Inc()
		switch ev.Event {
		case election.EventCitizenRegistered:
			metrics.RegisteredCitizens.Inc()
		case election.EventCandidateAdded:
			metrics.Candidates.Inc()
		case election.EventVoted:
			metrics.VotesCast.Inc()
		}
	}
	metrics.LastSequence.Set(float64(resp.Seq))
}
