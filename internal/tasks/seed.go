package tasks

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-sod/clsdemo/internal/tasks/model"
)

var (
	//go:embed seed.toml
	seedTOML string
	//go:embed timeline.toml
	timelineTOML string
)

type seedFile struct {
	Tasks []struct {
		Title       string `toml:"title"`
		Description string `toml:"description"`
		Assignee    string `toml:"assignee"`
		Status      string `toml:"status"`
		DueDate     string `toml:"due_date"`
	} `toml:"task"`
}

// SeedTasks decodes the built-in board.
func SeedTasks(now time.Time) ([]model.Task, error) {
	var f seedFile
	if _, err := toml.Decode(seedTOML, &f); err != nil {
		return nil, fmt.Errorf("decode seed tasks: %w", err)
	}
	list := make([]model.Task, 0, len(f.Tasks))
	for _, s := range f.Tasks {
		status, err := model.ParseStatus(s.Status)
		if err != nil {
			return nil, fmt.Errorf("seed task %q: %w", s.Title, err)
		}
		task := model.NewTask(s.Title, s.Description, s.Assignee, s.DueDate, now)
		task.Status = status
		list = append(list, task)
	}
	return list, nil
}

type Milestone struct {
	Date        string `json:"date" toml:"date"`
	Title       string `json:"title" toml:"title"`
	Description string `json:"description" toml:"description"`
	Completed   bool   `json:"completed" toml:"completed"`
}

// Timeline returns the static project timeline.
func Timeline() ([]Milestone, error) {
	var f struct {
		Milestones []Milestone `toml:"milestone"`
	}
	if _, err := toml.Decode(timelineTOML, &f); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	return f.Milestones, nil
}
