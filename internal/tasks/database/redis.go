package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/go-sod/clsdemo/internal/tasks/model"
	"github.com/google/uuid"
)

const (
	redisTasksKey = "clsdemo:tasks"
	redisSeqKey   = "clsdemo:tasks:seq"
)

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Redis keeps tasks as JSON values in one hash keyed by id.
type Redis struct {
	client *redis.Client
}

func (r *Redis) FindAll(ctx context.Context) ([]model.Task, error) {
	values, err := r.client.HGetAll(ctx, redisTasksKey).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", redisTasksKey, err)
	}
	list := make([]model.Task, 0, len(values))
	for _, v := range values {
		var task model.Task
		if err := json.Unmarshal([]byte(v), &task); err != nil {
			return nil, fmt.Errorf("json unmarshal error, %q", err)
		}
		list = append(list, task)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Position < list[j].Position
	})
	return list, nil
}

func (r *Redis) Find(ctx context.Context, id uuid.UUID) (model.Task, error) {
	v, err := r.client.HGet(ctx, redisTasksKey, id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	var task model.Task
	if err := json.Unmarshal([]byte(v), &task); err != nil {
		return model.Task{}, fmt.Errorf("json unmarshal error, %q", err)
	}
	return task, nil
}

func (r *Redis) Insert(ctx context.Context, task model.Task) (model.Task, error) {
	seq, err := r.client.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return model.Task{}, fmt.Errorf("incr %s: %w", redisSeqKey, err)
	}
	task.Position = uint64(seq)
	if err := r.put(ctx, task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *Redis) Update(ctx context.Context, task model.Task) error {
	ok, err := r.client.HExists(ctx, redisTasksKey, task.ID.String()).Result()
	if err != nil {
		return fmt.Errorf("hexists %s: %w", redisTasksKey, err)
	}
	if !ok {
		return model.ErrNotFound
	}
	return r.put(ctx, task)
}

func (r *Redis) put(ctx context.Context, task model.Task) error {
	bytes, err := json.Marshal(task)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, redisTasksKey, task.ID.String(), bytes).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", redisTasksKey, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.HDel(ctx, redisTasksKey, id.String()).Result()
	if err != nil {
		return fmt.Errorf("hdel %s: %w", redisTasksKey, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *Redis) Count(ctx context.Context) (int, error) {
	n, err := r.client.HLen(ctx, redisTasksKey).Result()
	if err != nil {
		return 0, fmt.Errorf("hlen %s: %w", redisTasksKey, err)
	}
	return int(n), nil
}
