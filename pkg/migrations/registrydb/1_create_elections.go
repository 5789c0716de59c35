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
		log.Println("creating elections table...")
		if err := mghelper.CreateSchema(ctx, db, &electionstore.ElectionDao{}); err != nil {
			return err
		}
		// A registry database holds exactly one election.
		_, err := db.ExecContext(ctx, "ALTER TABLE elections ADD CONSTRAINT elections_singleton_check CHECK (id = 1)")
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx,
			"ALTER TABLE elections ADD CONSTRAINT elections_deadlines_check CHECK (registration_deadline < voting_deadline)")
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping elections table...")
		return mghelper.DropTables(ctx, db, &electionstore.ElectionDao{})
	})
}
