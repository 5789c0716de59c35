package registrydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/democracychain/democracy-chain/pkg/electionstore"
	mghelper "github.com/democracychain/democracy-chain/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating candidates table...")
		if err := mghelper.CreateSchema(ctx, db, &electionstore.CandidateDao{}); err != nil {
			return err
		}
		// Candidates only exist for registered citizens.
		_, err := db.ExecContext(ctx,
			"ALTER TABLE candidates ADD CONSTRAINT candidates_citizen_fk FOREIGN KEY (dni_hash) REFERENCES citizens (dni_hash)")
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping candidates table...")
		return mghelper.DropTables(ctx, db, &electionstore.CandidateDao{})
	})
}
