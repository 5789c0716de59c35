// Package migrations holds schema helpers shared by the migration collections and
// the migrate command.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage: migrate [-config config.yaml] <command>

Runs <command> against the registry database:
  init    create the bun_migrations bookkeeping tables
  up      apply every pending migration as one group
  down    roll back the last applied group
  status  list applied and pending migrations
`

// Usage prints command usage and exits
func Usage() {
	fmt.Fprint(os.Stderr, usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message and the usage, then exits
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	Usage()
}

func eachModel(models []any, verb string, fn func(model any) error) error {
	for _, model := range models {
		if err := fn(model); err != nil {
			return fmt.Errorf("%s table for %T: %w", verb, model, err)
		}
	}
	return nil
}

// CreateSchema creates the tables of models, skipping existing ones.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	return eachModel(models, "create", func(model any) error {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		return err
	})
}

// DropTables drops the tables of models along with dependent objects.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	return eachModel(models, "drop", func(model any) error {
		_, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx)
		return err
	})
}

// TruncateTables empties the tables of models.
func TruncateTables(ctx context.Context, db bun.IDB, models ...any) error {
	return eachModel(models, "truncate", func(model any) error {
		_, err := db.NewTruncateTable().Model(model).Cascade().Exec(ctx)
		return err
	})
}

// CreateModelIndexes creates idx_<table>_<column> for each column.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	return createIndexes(ctx, db, model, false, columns)
}

// CreateModelUniqueIndexes is CreateModelIndexes with unique indexes.
func CreateModelUniqueIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	return createIndexes(ctx, db, model, true, columns)
}

func createIndexes(ctx context.Context, db bun.IDB, model any, unique bool, columns []string) error {
	for _, column := range columns {
		name, err := indexName(db, model, column)
		if err != nil {
			return err
		}
		q := db.NewCreateIndex().Model(model).Index(name).Column(column).IfNotExists()
		if unique {
			q = q.Unique()
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

// DropModelIndexes drops indexes created by CreateModelIndexes.
func DropModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		name, err := indexName(db, model, column)
		if err != nil {
			return err
		}
		if _, err := db.NewDropIndex().Model(model).Index(name).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("drop index %s: %w", name, err)
		}
	}
	return nil
}

func indexName(db bun.IDB, model any, column string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	table := db.NewCreateIndex().Model(model).GetTableName()
	if table == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	table = strings.NewReplacer(`"`, "", ".", "_").Replace(table)
	return "idx_" + table + "_" + column, nil
}

type command func(ctx context.Context, m *migrate.Migrator, out io.Writer) error

var commands = map[string]command{
	"init": func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		if err := m.Init(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "migration table created")
		return nil
	},
	"up": locked(func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		group, err := m.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Fprintln(out, "no new migrations to run (database is up to date)")
			return nil
		}
		fmt.Fprintf(out, "migrated to %s\n", group)
		return nil
	}),
	"down": locked(func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		group, err := m.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Fprintln(out, "no migrations to rollback")
			return nil
		}
		fmt.Fprintf(out, "rolled back %s\n", group)
		return nil
	}),
	"status": func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		ms, err := m.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "migrations: %s\n", ms)
		fmt.Fprintf(out, "unapplied migrations: %s\n", ms.Unapplied())
		fmt.Fprintf(out, "last migration group: %s\n", ms.LastGroup())
		return nil
	},
}

// locked holds the migration lock for the duration of cmd.
func locked(cmd command) command {
	return func(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
		if err := m.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if err := m.Unlock(ctx); err != nil {
				fmt.Fprintf(out, "failed to release migration lock: %v\n", err)
			}
		}()
		return cmd(ctx, m, out)
	}
}

// RunMigrations runs the migrate command in args[0], reporting progress to out.
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, out io.Writer, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown command %q, want one of %s", args[0], strings.Join(names, ", "))
	}
	return cmd(ctx, migrator, out)
}
