package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/democracychain/democracy-chain/pkg/election"
	"github.com/democracychain/democracy-chain/pkg/electionstore"
)

// DeploymentAddress returns the registry address for d: the configured address,
// or the address a contract created by the admin's first transaction would get.
func DeploymentAddress(d Deployment) common.Address {
	if d.Address != (common.Address{}) {
		return d.Address
	}
	return crypto.CreateAddress(d.Admin, 0)
}

// Deploy returns the registry backed by store. On first boot it creates the
// election from d and persists it; afterwards the stored election and state win
// over d. Every accepted mutation is committed to store.
func Deploy(
	ctx context.Context,
	store electionstore.Store,
	d Deployment,
	logger *zap.Logger,
	opts ...election.Option,
) (*election.Registry, *electionstore.Election, error) {
	stored, err := store.GetElection(ctx)
	switch {
	case errors.Is(err, electionstore.ErrElectionNotFound):
		return deploy(ctx, store, d, logger, opts)
	case err != nil:
		return nil, nil, fmt.Errorf("failed to load election: %w", err)
	}
	return restore(ctx, store, stored, d, logger, opts)
}

func deploy(
	ctx context.Context,
	store electionstore.Store,
	d Deployment,
	logger *zap.Logger,
	opts []election.Option,
) (*election.Registry, *electionstore.Election, error) {
	address := DeploymentAddress(d)
	registry, err := election.New(d.Admin, d.RegistrationDeadline, d.VotingDeadline,
		append(opts, election.WithAddress(address), election.WithJournal(store))...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create election: %w", err)
	}

	e := &electionstore.Election{
		Address:              address,
		Admin:                d.Admin,
		RegistrationDeadline: d.RegistrationDeadline,
		VotingDeadline:       d.VotingDeadline,
		Network:              d.Network,
		ChainID:              d.ChainID,
		CreatedAt:            time.Now().UTC(),
	}
	if err := store.SaveElection(ctx, e); err != nil {
		return nil, nil, fmt.Errorf("failed to save election: %w", err)
	}

	// another instance may have deployed first; its row wins
	saved, err := store.GetElection(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load election: %w", err)
	}
	if saved.Address != e.Address || saved.Params() != e.Params() {
		return restore(ctx, store, saved, d, logger, opts)
	}

	logger.Info("Election deployed",
		zap.String("address", address.Hex()),
		zap.String("admin", d.Admin.Hex()),
		zap.Uint64("registration_deadline", d.RegistrationDeadline),
		zap.Uint64("voting_deadline", d.VotingDeadline),
		zap.String("network", d.Network),
	)
	return registry, saved, nil
}

func restore(
	ctx context.Context,
	store electionstore.Store,
	stored *electionstore.Election,
	d Deployment,
	logger *zap.Logger,
	opts []election.Option,
) (*election.Registry, *electionstore.Election, error) {
	if stored.Admin != d.Admin ||
		stored.RegistrationDeadline != d.RegistrationDeadline ||
		stored.VotingDeadline != d.VotingDeadline {
		logger.Warn("Configured election differs from the deployed one, using the deployed election",
			zap.String("deployed_admin", stored.Admin.Hex()),
			zap.String("configured_admin", d.Admin.Hex()),
			zap.Uint64("deployed_registration_deadline", stored.RegistrationDeadline),
			zap.Uint64("configured_registration_deadline", d.RegistrationDeadline),
			zap.Uint64("deployed_voting_deadline", stored.VotingDeadline),
			zap.Uint64("configured_voting_deadline", d.VotingDeadline),
		)
	}

	state, err := store.LoadState(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load election state: %w", err)
	}

	registry, err := election.Restore(stored.Params(), *state,
		append(opts, election.WithAddress(stored.Address), election.WithJournal(store))...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore election: %w", err)
	}

	logger.Info("Election restored",
		zap.String("address", stored.Address.Hex()),
		zap.Uint64("seq", state.LastSeq),
		zap.Int("citizens", len(state.Citizens)),
		zap.Int("candidates", len(state.Candidates)),
	)
	return registry, stored, nil
}
