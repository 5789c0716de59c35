package election

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Registry methods as recorded in receipts.
const (
	MethodRegisterCitizen     = "registerCitizen"
	MethodAddCitizenCandidate = "addCitizenCandidate"
	MethodAddCandidate        = "addCandidate"
	MethodVote                = "vote"
)

// Receipt describes one accepted mutation: the post-state of every record it touched
// and the logs it emitted.
type Receipt struct {
	Seq        uint64
	TxHash     common.Hash
	Method     string
	Caller     common.Address
	Timestamp  time.Time
	Citizens   []Citizen
	Candidates []CandidateEntry
	Logs       []*types.Log
}

// Journal persists receipts. A Commit error aborts the mutation.
//
//go:generate mockery --name Journal --output mocks --outpkg mocks --filename mock_journal.go --with-expecter
type Journal interface {
	Commit(ctx context.Context, r *Receipt) error
}

// State is a registry snapshot used to rebuild a Registry after restart.
type State struct {
	// Citizens in registration order.
	Citizens []Citizen
	// Candidates in declaration order.
	Candidates []CandidateEntry
	LastSeq    uint64
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source used for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithJournal makes every mutation commit its receipt to j before applying it.
func WithJournal(j Journal) Option {
	return func(r *Registry) { r.journal = j }
}

// WithAddress sets the address logs are emitted from.
func WithAddress(addr common.Address) Option {
	return func(r *Registry) { r.address = addr }
}

// Registry is the election state machine. All methods are safe for concurrent use;
// mutations are serialized.
type Registry struct {
	mu      sync.RWMutex
	params  Params
	address common.Address
	now     func() time.Time
	journal Journal

	citizens      map[common.Hash]*Citizen
	citizenOrder  []common.Hash
	wallets       map[common.Address]common.Hash
	candidates    map[common.Hash]*CandidateEntry
	candidateList []common.Hash
	seq           uint64
}

// New creates an empty registry administered by admin. Unless overridden with
// WithAddress, logs are emitted from the address a contract deployed by admin with
// nonce 0 would have.
func New(admin common.Address, registrationDeadline, votingDeadline uint64, opts ...Option) (*Registry, error) {
	r := newRegistry(Params{
		Admin:                admin,
		RegistrationDeadline: registrationDeadline,
		VotingDeadline:       votingDeadline,
	}, opts)

	if registrationDeadline >= votingDeadline {
		return nil, ErrInvalidDateRange
	}
	if !r.params.RegistrationOpen(r.now()) {
		return nil, ErrRegistrationAlreadyClosed
	}
	return r, nil
}

// Restore rebuilds a registry from a persisted snapshot. Deadlines are not checked
// against the clock since the election already exists.
func Restore(params Params, state State, opts ...Option) (*Registry, error) {
	if params.RegistrationDeadline >= params.VotingDeadline {
		return nil, ErrInvalidDateRange
	}
	r := newRegistry(params, opts)
	if err := r.load(state); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the in-memory state with a newer snapshot of the journal,
// e.g. after another writer committed ahead of this registry. On error the
// current state is kept.
func (r *Registry) Reload(state State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state.LastSeq < r.seq {
		return fmt.Errorf("reload: snapshot seq %d is behind %d", state.LastSeq, r.seq)
	}
	next := newRegistry(r.params, nil)
	if err := next.load(state); err != nil {
		return err
	}
	r.citizens, r.citizenOrder, r.wallets = next.citizens, next.citizenOrder, next.wallets
	r.candidates, r.candidateList = next.candidates, next.candidateList
	r.seq = next.seq
	return nil
}

func (r *Registry) load(state State) error {
	for _, c := range state.Citizens {
		h := c.Person.DNIHash()
		if _, ok := r.citizens[h]; ok {
			return fmt.Errorf("restore: duplicate citizen %s", h)
		}
		if other, ok := r.wallets[c.Person.Wallet]; ok {
			return fmt.Errorf("restore: wallet %s bound to %s and %s", c.Person.Wallet, other, h)
		}
		cp := c
		r.citizens[h] = &cp
		r.citizenOrder = append(r.citizenOrder, h)
		r.wallets[c.Person.Wallet] = h
	}
	for i, e := range state.Candidates {
		if e.Position != uint64(i) {
			return fmt.Errorf("restore: candidate %s at position %d, want %d", e.DNIHash, e.Position, i)
		}
		if c, ok := r.citizens[e.DNIHash]; !ok || !c.Registered {
			return fmt.Errorf("restore: candidate %s is not a registered citizen", e.DNIHash)
		}
		if _, ok := r.candidates[e.DNIHash]; ok {
			return fmt.Errorf("restore: duplicate candidate %s", e.DNIHash)
		}
		cp := e
		r.candidates[e.DNIHash] = &cp
		r.candidateList = append(r.candidateList, e.DNIHash)
	}
	r.seq = state.LastSeq
	return nil
}

func newRegistry(params Params, opts []Option) *Registry {
	r := &Registry{
		params:     params,
		address:    crypto.CreateAddress(params.Admin, 0),
		now:        time.Now,
		citizens:   make(map[common.Hash]*Citizen),
		wallets:    make(map[common.Address]common.Hash),
		candidates: make(map[common.Hash]*CandidateEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Params returns the immutable election parameters.
func (r *Registry) Params() Params {
	return r.params
}

// Address returns the address logs are emitted from.
func (r *Registry) Address() common.Address {
	return r.address
}

// Phase returns the election phase according to the registry clock.
func (r *Registry) Phase() string {
	return r.params.Phase(r.now())
}

// Seq returns the sequence number of the last accepted mutation.
func (r *Registry) Seq() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seq
}

// RequireAdmin fails with ErrNotAdmin unless caller is the election admin.
func (r *Registry) RequireAdmin(caller common.Address) error {
	if caller != r.params.Admin {
		return ErrNotAdmin
	}
	return nil
}

// RegisterCitizen registers the caller's wallet under dni.
func (r *Registry) RegisterCitizen(ctx context.Context, caller common.Address, dni, name string) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	citizen, err := r.checkRegistration(now, caller, dni, name)
	if err != nil {
		return nil, err
	}
	return r.apply(ctx, MethodRegisterCitizen, caller, now, mutation{
		citizens: []Citizen{citizen},
		events:   []Event{CitizenRegistered{Wallet: caller, DNI: dni}},
	})
}

// AddCitizenCandidate registers the caller under dni and declares the new citizen a candidate.
func (r *Registry) AddCitizenCandidate(ctx context.Context, caller common.Address, dni, name string) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	citizen, err := r.checkRegistration(now, caller, dni, name)
	if err != nil {
		return nil, err
	}
	h := HashDNI(dni)
	if _, ok := r.candidates[h]; ok {
		return nil, ErrCandidateAlreadyRegistered
	}
	return r.apply(ctx, MethodAddCitizenCandidate, caller, now, mutation{
		citizens:   []Citizen{citizen},
		candidates: []CandidateEntry{{DNIHash: h, Position: uint64(len(r.candidateList))}},
		events: []Event{
			CitizenRegistered{Wallet: caller, DNI: dni},
			CandidateAdded{DNI: dni, Name: name, Wallet: caller},
		},
	})
}

// AddCandidate declares the caller's existing citizen a candidate.
func (r *Registry) AddCandidate(ctx context.Context, caller common.Address) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	h, citizen, ok := r.registeredCitizen(caller)
	if !ok {
		return nil, ErrNotRegistered
	}
	if _, ok := r.candidates[h]; ok {
		return nil, ErrCandidateAlreadyRegistered
	}
	return r.apply(ctx, MethodAddCandidate, caller, now, mutation{
		candidates: []CandidateEntry{{DNIHash: h, Position: uint64(len(r.candidateList))}},
		events: []Event{
			CandidateAdded{DNI: citizen.Person.DNI, Name: citizen.Person.Name, Wallet: caller},
		},
	})
}

// Vote casts the caller's single vote for the candidate registered under candidateDNI.
func (r *Registry) Vote(ctx context.Context, caller common.Address, candidateDNI string) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !r.params.VotingOpen(now) {
		return nil, ErrVotingClosed
	}
	_, voter, ok := r.registeredCitizen(caller)
	if !ok {
		return nil, ErrNotRegistered
	}
	if voter.Voted {
		return nil, ErrAlreadyVoted
	}
	candidate, ok := r.candidates[HashDNI(candidateDNI)]
	if !ok {
		return nil, ErrNotValidCandidate
	}

	voter.Voted = true
	entry := *candidate
	entry.VoteCount++
	return r.apply(ctx, MethodVote, caller, now, mutation{
		citizens:   []Citizen{voter},
		candidates: []CandidateEntry{entry},
		events:     []Event{Voted{Voter: caller, DNI: candidateDNI}},
	})
}

// GetCitizen returns the citizen bound to wallet, or the zero value.
func (r *Registry) GetCitizen(wallet common.Address) Citizen {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.wallets[wallet]
	if !ok {
		return Citizen{}
	}
	return *r.citizens[h]
}

// GetCandidate returns the candidate registered under dni, or the zero value.
func (r *Registry) GetCandidate(dni string) Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.candidate(HashDNI(dni))
}

// GetCandidateByIndex returns the i-th declared candidate.
func (r *Registry) GetCandidateByIndex(i uint64) (Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i >= uint64(len(r.candidateList)) {
		return Candidate{}, ErrIndexOutOfRange
	}
	return r.candidate(r.candidateList[i]), nil
}

// GetCandidateCount returns the number of declared candidates.
func (r *Registry) GetCandidateCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.candidateList))
}

// Candidates returns all candidates in declaration order.
func (r *Registry) Candidates() []Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Candidate, 0, len(r.candidateList))
	for _, h := range r.candidateList {
		out = append(out, r.candidate(h))
	}
	return out
}

// WalletToDNI returns the DNI hash wallet is bound to, or the zero hash.
func (r *Registry) WalletToDNI(wallet common.Address) common.Hash {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.wallets[wallet]
}

// Citizens returns all citizens in registration order.
func (r *Registry) Citizens() []Citizen {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Citizen, 0, len(r.citizenOrder))
	for _, h := range r.citizenOrder {
		out = append(out, *r.citizens[h])
	}
	return out
}

func (r *Registry) candidate(h common.Hash) Candidate {
	entry, ok := r.candidates[h]
	if !ok {
		return Candidate{}
	}
	return Candidate{Citizen: *r.citizens[h], VoteCount: entry.VoteCount}
}

func (r *Registry) registeredCitizen(wallet common.Address) (common.Hash, Citizen, bool) {
	h, ok := r.wallets[wallet]
	if !ok {
		return common.Hash{}, Citizen{}, false
	}
	c := r.citizens[h]
	if !c.Registered {
		return common.Hash{}, Citizen{}, false
	}
	return h, *c, true
}

func (r *Registry) checkRegistration(now time.Time, caller common.Address, dni, name string) (Citizen, error) {
	if !r.params.RegistrationOpen(now) {
		return Citizen{}, ErrRegistrationClosed
	}
	if c, ok := r.citizens[HashDNI(dni)]; ok && c.Registered {
		return Citizen{}, ErrCitizenAlreadyRegistered
	}
	// A wallet binds to one identity for the lifetime of the election.
	if _, ok := r.wallets[caller]; ok {
		return Citizen{}, ErrCitizenAlreadyRegistered
	}
	return Citizen{
		Person:     Person{DNI: dni, Name: name, Wallet: caller},
		Registered: true,
	}, nil
}

type mutation struct {
	citizens   []Citizen
	candidates []CandidateEntry
	events     []Event
}

// apply builds the receipt for m, commits it to the journal and only then updates
// in-memory state. Callers hold r.mu.
func (r *Registry) apply(ctx context.Context, method string, caller common.Address, now time.Time, m mutation) (*Receipt, error) {
	seq := r.seq + 1
	receipt := &Receipt{
		Seq:        seq,
		TxHash:     receiptHash(r.address, seq, method, caller),
		Method:     method,
		Caller:     caller,
		Timestamp:  now.UTC(),
		Citizens:   m.citizens,
		Candidates: m.candidates,
	}
	for i, ev := range m.events {
		l, err := EncodeLog(r.address, ev)
		if err != nil {
			return nil, err
		}
		l.BlockNumber = seq
		l.TxHash = receipt.TxHash
		l.Index = uint(i)
		receipt.Logs = append(receipt.Logs, l)
	}

	if r.journal != nil {
		if err := r.journal.Commit(ctx, receipt); err != nil {
			return nil, fmt.Errorf("failed to commit %s: %w", method, err)
		}
	}

	for _, c := range m.citizens {
		h := c.Person.DNIHash()
		if _, ok := r.citizens[h]; !ok {
			r.citizenOrder = append(r.citizenOrder, h)
		}
		cp := c
		r.citizens[h] = &cp
		r.wallets[c.Person.Wallet] = h
	}
	for _, e := range m.candidates {
		if _, ok := r.candidates[e.DNIHash]; !ok {
			r.candidateList = append(r.candidateList, e.DNIHash)
		}
		cp := e
		r.candidates[e.DNIHash] = &cp
	}
	r.seq = seq
	return receipt, nil
}

func receiptHash(address common.Address, seq uint64, method string, caller common.Address) common.Hash {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	return crypto.Keccak256Hash(address.Bytes(), buf[:], []byte(method), caller.Bytes())
}
