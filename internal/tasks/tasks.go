// Package tasks is the project task board: a small CRUD service over a
// pluggable store, seeded from an embedded board.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/tasks/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const defaultAssignee = "Unknown"

var (
	ErrNotFound      = model.ErrNotFound
	ErrTitleRequired = errors.New("task title is required")
	ErrInvalidInput  = errors.New("invalid task input")
)

// Store persists tasks. FindAll returns them in board order.
type Store interface {
	FindAll(ctx context.Context) ([]model.Task, error)
	Find(ctx context.Context, id uuid.UUID) (model.Task, error)
	Insert(ctx context.Context, task model.Task) (model.Task, error)
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Draft carries user supplied task fields.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
}

type Progress struct {
	Total   int     `json:"total"`
	Done    int     `json:"done"`
	Percent float64 `json:"percent"`
}

type Option func(*Board)

func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

func New(store Store, opts ...Option) *Board {
	b := &Board{store: store, now: time.Now}
	for _, f := range opts {
		f(b)
	}
	return b
}

type Board struct {
	mtx   sync.Mutex
	store Store
	now   func() time.Time
}

// Seed inserts the built-in tasks when the store is empty and reports how
// many were added.
func (b *Board) Seed(ctx context.Context) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	n, err := b.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	seed, err := SeedTasks(b.now())
	if err != nil {
		return 0, err
	}
	for _, task := range seed {
		if _, err := b.store.Insert(ctx, task); err != nil {
			return 0, fmt.Errorf("insert seed task %q: %w", task.Title, err)
		}
	}
	logging.FromContext(ctx).Infof("seeded %d tasks", len(seed))
	return len(seed), nil
}

// List returns the board. A non-empty status keeps only that column.
func (b *Board) List(ctx context.Context, status model.Status) ([]model.Task, error) {
	list, err := b.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return list, nil
	}
	filtered := list[:0]
	for _, t := range list {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (b *Board) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	return b.store.Find(ctx, id)
}

func (b *Board) Add(ctx context.Context, d Draft) (model.Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return model.Task{}, ErrTitleRequired
	}
	assignee := strings.TrimSpace(d.Assignee)
	if assignee == "" {
		assignee = defaultAssignee
	}
	now := b.now()
	due := strings.TrimSpace(d.DueDate)
	if due == "" {
		due = now.Format(model.DateLayout)
	}
	if err := validateDate(due); err != nil {
		return model.Task{}, err
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.store.Insert(ctx, model.NewTask(title, strings.TrimSpace(d.Description), assignee, due, now))
}

// Edit replaces the title and description. Blank assignee or due date keep
// the current value.
func (b *Board) Edit(ctx context.Context, id uuid.UUID, d Draft) (model.Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return model.Task{}, ErrTitleRequired
	}
	due := strings.TrimSpace(d.DueDate)
	if due != "" {
		if err := validateDate(due); err != nil {
			return model.Task{}, err
		}
	}

	return b.modify(ctx, id, func(t *model.Task) {
		t.Title = title
		t.Description = strings.TrimSpace(d.Description)
		if assignee := strings.TrimSpace(d.Assignee); assignee != "" {
			t.Assignee = assignee
		}
		if due != "" {
			t.DueDate = due
		}
	})
}

func (b *Board) Move(ctx context.Context, id uuid.UUID, status model.Status) (model.Task, error) {
	if _, err := model.ParseStatus(string(status)); err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return b.modify(ctx, id, func(t *model.Task) {
		t.Status = status
	})
}

func (b *Board) Complete(ctx context.Context, id uuid.UUID) (model.Task, error) {
	return b.Move(ctx, id, model.StatusDone)
}

func (b *Board) Delete(ctx context.Context, id uuid.UUID) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.store.Delete(ctx, id)
}

func (b *Board) modify(ctx context.Context, id uuid.UUID, fn func(*model.Task)) (model.Task, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	task, err := b.store.Find(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	fn(&task)
	task.UpdatedAt = b.now()
	if err := b.store.Update(ctx, task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (b *Board) Progress(ctx context.Context) (Progress, error) {
	list, err := b.store.FindAll(ctx)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Total: len(list)}
	for _, t := range list {
		if t.IsDone() {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Done) / float64(p.Total) * 100
	}
	return p, nil
}

// Export writes the whole board in the requested format.
func (b *Board) Export(ctx context.Context, w io.Writer, format Format) error {
	list, err := b.store.FindAll(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []model.Task{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("%w: due date must be YYYY-MM-DD, got %q", ErrInvalidInput, s)
	}
	return nil
}
