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
		log.Println("creating citizens table...")
		if err := mghelper.CreateSchema(ctx, db, &electionstore.CitizenDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &electionstore.CitizenDao{}, "registered_seq")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping citizens table...")
		return mghelper.DropTables(ctx, db, &electionstore.CitizenDao{})
	})
}
