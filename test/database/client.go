// Package database provides shared database helpers for integration tests.
package database

import (
	"testing"

	"github.com/100percenttuna/undertow/pkg/database"
	"github.com/100percenttuna/undertow/test/util"
)

// NewTestClient creates a test database client backed by a per-test schema.
// In CI (CI_DATABASE_URL set): connects to the external PostgreSQL service.
// In local dev: uses a shared testcontainer started once per package.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
