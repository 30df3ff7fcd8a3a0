package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/tasks/model"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const bucket = "task:"

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

// DB keeps tasks as JSON values in a single bucket keyed by id.
type DB struct {
	sDB *database.DB
}

func (db *DB) FindAll(_ context.Context) ([]model.Task, error) {
	var list []model.Task
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var task model.Task
			if err := json.Unmarshal(v, &task); err != nil {
				return fmt.Errorf("json unmarshal error, %q", err)
			}
			list = append(list, task)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %v", err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Position < list[j].Position
	})
	return list, nil
}

func (db *DB) Find(_ context.Context, id uuid.UUID) (model.Task, error) {
	var task model.Task
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return model.ErrNotFound
		}
		v := b.Get([]byte(id.String()))
		if v == nil {
			return model.ErrNotFound
		}
		return json.Unmarshal(v, &task)
	}); err != nil {
		return model.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	return task, nil
}

// Insert assigns the next board position to task and stores it.
func (db *DB) Insert(_ context.Context, task model.Task) (model.Task, error) {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		task.Position = seq
		bytes, err := json.Marshal(task)
		if err != nil {
			return err
		}
		if err := b.Put([]byte(task.ID.String()), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		return nil
	}); err != nil {
		return model.Task{}, fmt.Errorf("update transaction error: %w", err)
	}
	return task, nil
}

func (db *DB) Update(_ context.Context, task model.Task) error {
	bytes, err := json.Marshal(task)
	if err != nil {
		return err
	}
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil || b.Get([]byte(task.ID.String())) == nil {
			return model.ErrNotFound
		}
		return b.Put([]byte(task.ID.String()), bytes)
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}
	return nil
}

func (db *DB) Delete(_ context.Context, id uuid.UUID) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil || b.Get([]byte(id.String())) == nil {
			return model.ErrNotFound
		}
		return b.Delete([]byte(id.String()))
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}
	return nil
}

func (db *DB) Count(_ context.Context) (int, error) {
	var length int
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		length = b.Stats().KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("view transaction error: %v", err)
	}
	return length, nil
}
