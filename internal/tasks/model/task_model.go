package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the due date format.
const DateLayout = "2006-01-02"

var ErrNotFound = errors.New("task not found")

type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

var Statuses = []Status{StatusTodo, StatusProgress, StatusDone}

func ParseStatus(s string) (Status, error) {
	for _, x := range Statuses {
		if string(x) == s {
			return x, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func NewTask(title, description, assignee, dueDate string, createdAt time.Time) Task {
	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Assignee:    assignee,
		Status:      StatusTodo,
		DueDate:     dueDate,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

type Task struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Position    uint64    `json:"position" yaml:"position"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Assignee    string    `json:"assignee" yaml:"assignee"`
	Status      Status    `json:"status" yaml:"status"`
	DueDate     string    `json:"dueDate" yaml:"dueDate"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (t Task) IsDone() bool {
	return t.Status == StatusDone
}
