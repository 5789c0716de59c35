package migrations

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/democracychain/democracy-chain/pkg/migrations/registrydb"
	"github.com/democracychain/democracy-chain/pkg/pgutil"
	mghelper "github.com/democracychain/democracy-chain/pkg/pgutil/migrations"
)

var registryTables = []string{
	"elections",
	"citizens",
	"candidates",
	"election_logs",
}

func TestRegistryDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, registrydb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(registryTables, "bun_migrations") {
		pgutil.AssertTableExists(t, db, table)
	}

	pgutil.AssertIndexExists(t, db, "idx_citizens_registered_seq")
	pgutil.AssertIndexExists(t, db, "idx_election_logs_topic0")
	pgutil.AssertIndexExists(t, db, "idx_election_logs_topic1")
	pgutil.AssertIndexExists(t, db, "idx_election_logs_tx_hash")

	// singleton and deadline constraints
	if _, err := db.ExecContext(ctx,
		`INSERT INTO elections (id, address, admin, registration_deadline, voting_deadline, network, chain_id)
		 VALUES (2, '0x01', '0x02', 1, 2, 'localhost', 1)`); err == nil {
		t.Error("expected a second election row to be rejected")
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO elections (id, address, admin, registration_deadline, voting_deadline, network, chain_id)
		 VALUES (1, '0x01', '0x02', 5, 5, 'localhost', 1)`); err == nil {
		t.Error("expected equal deadlines to be rejected")
	}
}

func TestRegistryDBMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, registrydb.Migrations)

	var out bytes.Buffer
	for _, cmd := range []string{"init", "up", "status"} {
		if err := mghelper.RunMigrations(ctx, migrator, &out, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	if !strings.Contains(out.String(), "migrated to") {
		t.Errorf("expected migrate output, got %q", out.String())
	}

	if err := mghelper.RunMigrations(ctx, migrator, &out, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	for _, table := range registryTables {
		pgutil.AssertTableNotExists(t, db, table)
	}

	if err := mghelper.RunMigrations(ctx, migrator, &out, "sideways"); err == nil {
		t.Error("expected unknown command to fail")
	}
}

func TestMigrations_Idempotency(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, registrydb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Errorf("expected no migrations on second run, got %s", group)
	}
}
