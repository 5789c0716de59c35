// Package electionstore persists the election registry: the deployment record, citizens,
// candidates and the emitted event logs.
package electionstore

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/democracychain/democracy-chain/pkg/election"
)

var (
	// ErrElectionNotFound is returned before the election has been deployed.
	ErrElectionNotFound = errors.New("election not found")
	// ErrSequenceConflict is returned when a receipt does not follow the last committed one.
	ErrSequenceConflict = errors.New("receipt sequence conflict")
)

// Election is the deployment record of the registry.
type Election struct {
	Address              common.Address
	Admin                common.Address
	RegistrationDeadline uint64
	VotingDeadline       uint64
	Network              string
	ChainID              uint64
	CreatedAt            time.Time
	// LastSeq is the sequence of the last committed receipt. SaveElection ignores it.
	LastSeq uint64
}

// Params returns the registry parameters of the deployment.
func (e *Election) Params() election.Params {
	return election.Params{
		Admin:                e.Admin,
		RegistrationDeadline: e.RegistrationDeadline,
		VotingDeadline:       e.VotingDeadline,
	}
}

// LogRecord is an emitted log together with the call that produced it.
type LogRecord struct {
	Log       types.Log
	Method    string
	Caller    common.Address
	Timestamp time.Time
}

// Store defines the registry persistence operations. Commit makes every Store an
// election.Journal.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	election.Journal
	SaveElection(ctx context.Context, e *Election) error
	GetElection(ctx context.Context) (*Election, error)
	LoadState(ctx context.Context) (*election.State, error)
	ListLogs(ctx context.Context, opts ...QueryOption) ([]*LogRecord, error)
}

// QueryOptions defines options for querying logs
type QueryOptions struct {
	FromSeq *uint64
	ToSeq   *uint64
	Address *common.Address
	Topic0  *common.Hash
	Wallet  *common.Address
	Limit   int
}

// QueryOption is a functional option for querying logs
type QueryOption func(*QueryOptions)

// WithFromSeq keeps logs at or after seq
func WithFromSeq(seq uint64) QueryOption {
	return func(opts *QueryOptions) {
		opts.FromSeq = &seq
	}
}

// WithToSeq keeps logs at or before seq
func WithToSeq(seq uint64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ToSeq = &seq
	}
}

// WithAddress keeps logs emitted by addr
func WithAddress(addr common.Address) QueryOption {
	return func(opts *QueryOptions) {
		opts.Address = &addr
	}
}

// WithTopic0 keeps logs of a single event
func WithTopic0(topic common.Hash) QueryOption {
	return func(opts *QueryOptions) {
		opts.Topic0 = &topic
	}
}

// WithWallet keeps logs whose indexed wallet is addr
func WithWallet(addr common.Address) QueryOption {
	return func(opts *QueryOptions) {
		opts.Wallet = &addr
	}
}

// WithLimit caps the number of returned logs
func WithLimit(limit int) QueryOption {
	return func(opts *QueryOptions) {
		opts.Limit = limit
	}
}

func buildOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *QueryOptions) match(l *types.Log) bool {
	if o.FromSeq != nil && l.BlockNumber < *o.FromSeq {
		return false
	}
	if o.ToSeq != nil && l.BlockNumber > *o.ToSeq {
		return false
	}
	if o.Address != nil && l.Address != *o.Address {
		return false
	}
	if o.Topic0 != nil && (len(l.Topics) == 0 || l.Topics[0] != *o.Topic0) {
		return false
	}
	if o.Wallet != nil && (len(l.Topics) < 2 || l.Topics[1] != common.BytesToHash(o.Wallet.Bytes())) {
		return false
	}
	return true
}
