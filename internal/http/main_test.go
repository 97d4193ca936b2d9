//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/trace-service/internal/testutil"
)

// TestMain starts shared MongoDB and Postgres containers for the HTTP integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithDatabases(context.Background(), m))
}
