package electionstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/democracychain/democracy-chain/pkg/election"
)

type memStore struct {
	mu         sync.RWMutex
	election   *Election
	lastSeq    uint64
	citizens   map[common.Hash]election.Citizen
	order      []common.Hash
	candidates map[common.Hash]election.CandidateEntry
	positions  []common.Hash
	logs       []*LogRecord
}

// NewMemStore creates an in-memory election store. State does not survive restarts.
func NewMemStore() Store {
	return &memStore{
		citizens:   make(map[common.Hash]election.Citizen),
		candidates: make(map[common.Hash]election.CandidateEntry),
	}
}

func (s *memStore) SaveElection(_ context.Context, e *Election) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.election == nil {
		cp := *e
		s.election = &cp
	}
	return nil
}

func (s *memStore) GetElection(_ context.Context) (*Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.election == nil {
		return nil, ErrElectionNotFound
	}
	cp := *s.election
	cp.LastSeq = s.lastSeq
	return &cp, nil
}

func (s *memStore) Commit(_ context.Context, r *election.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.election == nil {
		return ErrElectionNotFound
	}
	if r.Seq != s.lastSeq+1 {
		return fmt.Errorf("%w: seq %d after %d", ErrSequenceConflict, r.Seq, s.lastSeq)
	}

	for _, c := range r.Citizens {
		h := c.Person.DNIHash()
		if _, ok := s.citizens[h]; !ok {
			s.order = append(s.order, h)
		}
		s.citizens[h] = c
	}
	for _, e := range r.Candidates {
		if _, ok := s.candidates[e.DNIHash]; !ok {
			s.positions = append(s.positions, e.DNIHash)
		}
		s.candidates[e.DNIHash] = e
	}
	for _, l := range r.Logs {
		s.logs = append(s.logs, &LogRecord{
			Log:       *l,
			Method:    r.Method,
			Caller:    r.Caller,
			Timestamp: r.Timestamp,
		})
	}
	s.lastSeq = r.Seq
	return nil
}

func (s *memStore) LoadState(_ context.Context) (*election.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.election == nil {
		return nil, ErrElectionNotFound
	}
	state := &election.State{LastSeq: s.lastSeq}
	for _, h := range s.order {
		state.Citizens = append(state.Citizens, s.citizens[h])
	}
	for _, h := range s.positions {
		state.Candidates = append(state.Candidates, s.candidates[h])
	}
	return state, nil
}

func (s *memStore) ListLogs(_ context.Context, opts ...QueryOption) ([]*LogRecord, error) {
	options := buildOptions(opts)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*LogRecord
	for _, rec := range s.logs {
		if !options.match(&rec.Log) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
		if options.Limit > 0 && len(out) == options.Limit {
			break
		}
	}
	return out, nil
}
