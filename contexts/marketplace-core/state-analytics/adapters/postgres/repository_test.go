package postgresadapter

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type statementRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *statementRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *statementRecorder) Info(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Error(context.Context, string, ...interface{}) {}

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func newDryRunDB(t *testing.T, recorder *statementRecorder) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=vyaparkendra dbname=vyaparkendra",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// A bump must be one upsert statement. A separate create-then-read leaves
// the loser of a first-activity race inside an aborted transaction: its
// insert fails with a unique violation and PostgreSQL then rejects every
// later statement in the same transaction, so the losing bump errors out
// instead of summing.
func TestApplyDeltaIsASingleUpsertStatement(t *testing.T) {
	recorder := &statementRecorder{}
	repo := NewRepository(newDryRunDB(t, recorder), nil)

	if err := repo.ApplyDelta(context.Background(), "MH", 500, 1, time.Now().UTC()); err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}

	if len(recorder.statements) != 1 {
		t.Fatalf("expected a single statement, got %d: %v", len(recorder.statements), recorder.statements)
	}

	sql := recorder.statements[0]
	if !strings.Contains(sql, `ON CONFLICT ("state") DO UPDATE`) {
		t.Fatalf("bump does not resolve the creation race in the insert itself: %s", sql)
	}
	for _, fragment := range []string{"total_revenue + ", "total_requests + "} {
		if !strings.Contains(sql, fragment) {
			t.Fatalf("conflict arm does not add %q in place: %s", fragment, sql)
		}
	}
}
