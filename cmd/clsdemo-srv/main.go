package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-sod/clsdemo/internal/buildinfo"
	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/classify"
	clsdemo "github.com/go-sod/clsdemo/internal/config"
	"github.com/go-sod/clsdemo/internal/explore"
	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/server"
	"github.com/go-sod/clsdemo/internal/setup"
	"github.com/go-sod/clsdemo/internal/shutdown"
	"github.com/go-sod/clsdemo/internal/tasks"
	"golang.org/x/sync/errgroup"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		done()
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context) error {
	config := clsdemo.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if err := env.Close(context.Background()); err != nil {
			logging.FromContext(ctx).Errorf("env.Close: %v", err)
		}
	}()

	logger := logging.NewLogger(config.LogDebug)
	ctx = logging.WithLogger(ctx, logger)

	engine, err := env.ProvideClassifier()()
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}
	repo := env.Repository()

	mux := http.NewServeMux()
	nbHandler, err := classify.NewHandler(&config.Classify, engine, repo, classifier.AlgorithmNaiveBayes)
	if err != nil {
		return fmt.Errorf("classify.NewHandler: %w", err)
	}
	knnHandler, err := classify.NewHandler(&config.Classify, engine, repo, classifier.AlgorithmKNN)
	if err != nil {
		return fmt.Errorf("classify.NewHandler: %w", err)
	}
	batchHandler, err := classify.NewBatchHandler(&config.Classify, engine, repo)
	if err != nil {
		return fmt.Errorf("classify.NewBatchHandler: %w", err)
	}
	mux.Handle("/classify/naive-bayes", nbHandler)
	mux.Handle("/classify/knn", knnHandler)
	mux.Handle("/classify/batch", batchHandler)

	explore.NewHandler(&config.Explore, repo).Routes(mux)
	tasks.NewHandler(env.Board()).Routes(mux)

	mux.Handle("GET /health", server.HandleHealth(ctx))
	mux.Handle("GET /metrics", env.Exporter())

	srv, err := server.New(config.Server.Addr, server.WithMaxConns(config.Server.MaxConns))
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	grpcSrv, err := server.New(config.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("server.New grpc: %w", err)
	}
	health, hs := server.NewGRPCHealth()

	logger.Infof("listening http on %s, grpc health on %s", srv.Addr(), grpcSrv.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ServeHTTPHandler(gctx, server.WithObservability(logger, mux))
	})
	g.Go(func() error {
		return grpcSrv.ServeGRPC(gctx, health)
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		return nil
	})

	return g.Wait()
}
