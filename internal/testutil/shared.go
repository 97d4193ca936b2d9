//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMu       sync.RWMutex
	sharedMongo    *Container
	sharedPostgres *Container
)

// SetupTestMainWithMongoDB starts one MongoDB container for every test in the package.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, true, false)
}

// SetupTestMainWithPostgres starts one Postgres container for every test in the package.
func SetupTestMainWithPostgres(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, false, true)
}

// SetupTestMainWithDatabases starts both containers.
func SetupTestMainWithDatabases(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, true, true)
}

func setupTestMain(ctx context.Context, m *testing.M, withMongo, withPostgres bool) int {
	sharedMu.Lock()
	if withMongo {
		c, err := SetupMongoDB(ctx)
		if err != nil {
			panic(err)
		}
		sharedMongo = c
	}
	if withPostgres {
		c, err := SetupPostgres(ctx)
		if err != nil {
			panic(err)
		}
		sharedPostgres = c
	}
	sharedMu.Unlock()

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	for _, c := range []*Container{sharedMongo, sharedPostgres} {
		if err := c.Cleanup(ctx); err != nil {
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared container: " + err.Error() + "\n")
		}
	}
	sharedMongo, sharedPostgres = nil, nil
	return code
}

// MongoURI returns the URI of the shared MongoDB container.
func MongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - use SetupTestMainWithMongoDB")
	}
	return sharedMongo.URI
}

// PostgresDSN returns the DSN of the shared Postgres container.
func PostgresDSN() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedPostgres == nil {
		panic("shared Postgres container not initialized - use SetupTestMainWithPostgres")
	}
	return sharedPostgres.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
