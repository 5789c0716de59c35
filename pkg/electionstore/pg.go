package electionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/democracychain/democracy-chain/pkg/election"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the election store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) SaveElection(ctx context.Context, e *Election) error {
	_, err := s.db.NewInsert().
		Model(toElectionDao(e)).
		On("CONFLICT (id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save election: %w", err)
	}
	return nil
}

func (s *pgStore) GetElection(ctx context.Context) (*Election, error) {
	dao := new(ElectionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", electionRowID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	return toElection(dao), nil
}

// Commit persists the post-state of a receipt in a single transaction. The elections
// row acts as the sequence guard: the update only matches when the receipt directly
// follows the last committed one.
func (s *pgStore) Commit(ctx context.Context, r *election.Receipt) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*ElectionDao)(nil)).
			Set("last_seq = ?", r.Seq).
			Where("id = ?", electionRowID).
			Where("last_seq = ?", r.Seq-1).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance sequence: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("failed to advance sequence: %w", err)
		} else if n != 1 {
			return fmt.Errorf("%w: seq %d", ErrSequenceConflict, r.Seq)
		}

		for _, c := range r.Citizens {
			_, err := tx.NewInsert().
				Model(toCitizenDao(c, r.Seq)).
				On("CONFLICT (dni_hash) DO UPDATE").
				Set("registered = EXCLUDED.registered").
				Set("voted = EXCLUDED.voted").
				Set("updated_at = NOW()").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert citizen: %w", err)
			}
		}

		for _, e := range r.Candidates {
			_, err := tx.NewInsert().
				Model(toCandidateDao(e)).
				On("CONFLICT (dni_hash) DO UPDATE").
				Set("vote_count = EXCLUDED.vote_count").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to upsert candidate: %w", err)
			}
		}

		if logs := toLogDaos(r); len(logs) > 0 {
			if _, err := tx.NewInsert().Model(&logs).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert logs: %w", err)
			}
		}
		return nil
	})
}

func (s *pgStore) LoadState(ctx context.Context) (*election.State, error) {
	dao := new(ElectionDao)
	err := s.db.NewSelect().
		Model(dao).
		Column("last_seq").
		Where("id = ?", electionRowID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to load sequence: %w", err)
	}

	var citizens []CitizenDao
	if err := s.db.NewSelect().
		Model(&citizens).
		Order("registered_seq ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load citizens: %w", err)
	}

	var candidates []CandidateDao
	if err := s.db.NewSelect().
		Model(&candidates).
		Order("position ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	state := &election.State{
		Citizens:   make([]election.Citizen, len(citizens)),
		Candidates: make([]election.CandidateEntry, len(candidates)),
		LastSeq:    dao.LastSeq,
	}
	for i := range citizens {
		state.Citizens[i] = toCitizen(&citizens[i])
	}
	for i := range candidates {
		state.Candidates[i] = toCandidateEntry(&candidates[i])
	}
	return state, nil
}

func (s *pgStore) ListLogs(ctx context.Context, opts ...QueryOption) ([]*LogRecord, error) {
	options := buildOptions(opts)

	var daos []ElectionLogDao
	query := s.db.NewSelect().
		Model(&daos).
		Order("seq ASC", "log_index ASC")

	if options.FromSeq != nil {
		query = query.Where("seq >= ?", *options.FromSeq)
	}
	if options.ToSeq != nil {
		query = query.Where("seq <= ?", *options.ToSeq)
	}
	if options.Address != nil {
		query = query.Where("address = ?", options.Address.Hex())
	}
	if options.Topic0 != nil {
		query = query.Where("topic0 = ?", options.Topic0.Hex())
	}
	if options.Wallet != nil {
		query = query.Where("topic1 = ?", walletTopic(*options.Wallet))
	}
	if options.Limit > 0 {
		query = query.Limit(options.Limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	records := make([]*LogRecord, len(daos))
	for i := range daos {
		records[i] = toLogRecord(&daos[i])
	}
	return records, nil
}
