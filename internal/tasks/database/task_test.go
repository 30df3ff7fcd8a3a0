package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/tasks/model"
	"github.com/google/uuid"
)

type store interface {
	FindAll(ctx context.Context) ([]model.Task, error)
	Find(ctx context.Context, id uuid.UUID) (model.Task, error)
	Insert(ctx context.Context, task model.Task) (model.Task, error)
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

var (
	_ store = (*DB)(nil)
	_ store = (*Redis)(nil)
)

func exerciseStore(t *testing.T, s store) {
	ctx := context.Background()
	now := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)

	first, err := s.Insert(ctx, model.NewTask("first", "", "Ahmad", "2023-12-15", now))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := s.Insert(ctx, model.NewTask("second", "", "Budi", "2023-12-16", now))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second.Position <= first.Position {
		t.Errorf("positions must grow, got: %d then %d", first.Position, second.Position)
	}

	list, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Errorf("find all must keep insertion order, got: %v", list)
	}

	first.Status = model.StatusDone
	if err := s.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.Find(ctx, first.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != model.StatusDone {
		t.Errorf("status, got: %s, expected: %s", got.Status, model.StatusDone)
	}

	if n, _ := s.Count(ctx); n != 2 {
		t.Errorf("count, got: %d, expected: 2", n)
	}
	if err := s.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, first.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete, got: %v, expected: %v", err, model.ErrNotFound)
	}
	if _, err := s.Find(ctx, first.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("find deleted, got: %v, expected: %v", err, model.ErrNotFound)
	}
	missing := model.NewTask("missing", "", "", "2023-12-16", now)
	if err := s.Update(ctx, missing); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("update missing, got: %v, expected: %v", err, model.ErrNotFound)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Errorf("count, got: %d, expected: 1", n)
	}
}

func TestDB(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FileName: filepath.Join(t.TempDir(), "tasks.db"), OpenTimeout: time.Second})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close(ctx)

	s := New(db)
	list, err := s.FindAll(ctx)
	if err != nil || len(list) != 0 {
		t.Errorf("empty store, got: %v, %v", list, err)
	}
	if n, err := s.Count(ctx); err != nil || n != 0 {
		t.Errorf("empty count, got: %d, %v", n, err)
	}
	exerciseStore(t, s)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("CLSDEMO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CLSDEMO_TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer client.Close()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	exerciseStore(t, NewRedis(client))
}
