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
		log.Println("creating election_logs table...")
		if err := mghelper.CreateSchema(ctx, db, &electionstore.ElectionLogDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &electionstore.ElectionLogDao{}, "topic0", "topic1", "tx_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping election_logs table...")
		return mghelper.DropTables(ctx, db, &electionstore.ElectionLogDao{})
	})
}
