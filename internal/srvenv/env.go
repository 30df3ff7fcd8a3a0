package srvenv

import (
	"context"
	"fmt"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/database"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/tasks"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database   *database.DB
	classifier classifier.ProvideFn
	repository *dataset.Repository
	board      *tasks.Board
	boardClose func() error
	exporter   *prometheus.Exporter
}

func (s *SrvEnv) ProvideClassifier() classifier.ProvideFn {
	return s.classifier
}

func (s *SrvEnv) Repository() *dataset.Repository {
	return s.repository
}

func (s *SrvEnv) Board() *tasks.Board {
	return s.board
}

func (s *SrvEnv) Exporter() *prometheus.Exporter {
	return s.exporter
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

func WithClassifier(fn classifier.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.classifier = fn
		return s
	}
}

func WithRepository(repo *dataset.Repository) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.repository = repo
		return s
	}
}

// WithBoard sets the task board; closeFn releases its store on Close.
func WithBoard(board *tasks.Board, closeFn func() error) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.board = board
		s.boardClose = closeFn
		return s
	}
}

func WithExporter(exporter *prometheus.Exporter) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.exporter = exporter
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.boardClose != nil {
		if err := s.boardClose(); err != nil {
			return fmt.Errorf("close task store: %w", err)
		}
	}
	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
