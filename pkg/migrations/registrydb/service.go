// Package registrydb holds all the migrations for the election registry database
package registrydb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the registry database
var Migrations = migrate.NewMigrations()
