// Package classify serves the classification endpoints.
package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-sod/clsdemo/internal/classifier"
	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/httputil"
	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/metric"
	"golang.org/x/sync/errgroup"
)

const maxBodyBytes = 8 * 1024 * 1024

type request struct {
	Query   *dataset.Query   `json:"query"`
	K       *int             `json:"k"`
	Dataset []dataset.Sample `json:"dataset"`
	Explain bool             `json:"explain"`
}

type batchRequest struct {
	Algorithm classifier.Algorithm `json:"algorithm"`
	Queries   []dataset.Query      `json:"queries"`
	K         *int                 `json:"k"`
	Dataset   []dataset.Sample     `json:"dataset"`
	Explain   bool                 `json:"explain"`
}

type batchResponse struct {
	Algorithm classifier.Algorithm `json:"algorithm"`
	Results   []interface{}        `json:"results"`
}

// NewHandler serves single classifications with alg. The training set is
// the request dataset when present, the repository snapshot otherwise.
func NewHandler(cfg *Config, engine *classifier.Engine, repo *dataset.Repository, alg classifier.Algorithm) (http.Handler, error) {
	if err := alg.Validate(); err != nil {
		return nil, err
	}
	return &handler{cfg: cfg, engine: engine, repo: repo, alg: alg}, nil
}

type handler struct {
	cfg    *Config
	engine *classifier.Engine
	repo   *dataset.Repository
	alg    classifier.Algorithm
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	if !decodeRequest(ctx, w, r, &req) {
		return
	}
	if req.Query == nil {
		httputil.RespBadRequest(ctx, w, `{"error": "query is required"}`)
		return
	}
	set, ok := trainingSet(ctx, w, h.cfg, h.repo, req.Dataset)
	if !ok {
		return
	}

	res, err := classifyOne(ctx, h.engine, h.alg, set, *req.Query, h.k(req.K))
	if err != nil {
		respClassifyErr(ctx, w, err)
		return
	}
	resp, err := newResponse(res, req.Explain)
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "unable to build response, %v"}`, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, resp)
}

func (h *handler) k(k *int) int {
	if k == nil {
		return h.engine.DefaultK()
	}
	return *k
}

// NewBatchHandler classifies many queries against one training set
// concurrently. Results keep the query order.
func NewBatchHandler(cfg *Config, engine *classifier.Engine, repo *dataset.Repository) (http.Handler, error) {
	return &batchHandler{cfg: cfg, engine: engine, repo: repo}, nil
}

type batchHandler struct {
	cfg    *Config
	engine *classifier.Engine
	repo   *dataset.Repository
}

func (h *batchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	if !decodeRequest(ctx, w, r, &req) {
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = classifier.AlgorithmNaiveBayes
	}
	// Only known algorithms reach the metrics tags.
	if err := req.Algorithm.Validate(); err != nil {
		respClassifyErr(ctx, w, err)
		return
	}
	if len(req.Queries) == 0 {
		httputil.RespBadRequest(ctx, w, `{"error": "queries must not be empty"}`)
		return
	}
	if len(req.Queries) > h.cfg.MaxBatch {
		httputil.RespBadRequest(ctx, w, `{"error": "queries is too large, max allowed len is %d"}`, h.cfg.MaxBatch)
		return
	}
	set, ok := trainingSet(ctx, w, h.cfg, h.repo, req.Dataset)
	if !ok {
		return
	}
	k := h.engine.DefaultK()
	if req.K != nil {
		k = *req.K
	}

	results := make([]interface{}, len(req.Queries))
	errGrp, grpCtx := errgroup.WithContext(ctx)
	for i, q := range req.Queries {
		i, q := i, q
		errGrp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			res, err := classifyOne(grpCtx, h.engine, req.Algorithm, set, q, k)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			resp, err := newResponse(res, req.Explain)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warnf("batch classification timed out after %v", h.cfg.RequestTimeout)
			httputil.RespInternalError(ctx, w, `{"error": "classification timed out"}`)
			return
		}
		respClassifyErr(ctx, w, err)
		return
	}
	httputil.RespJSON(ctx, w, http.StatusOK, batchResponse{Algorithm: req.Algorithm, Results: results})
}

func decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		httputil.RespMethodNotAllowed(ctx, w, `{"error": "method %v is not allowed"}`, r.Method)
		return false
	}
	if !httputil.RequireJSON(ctx, w, r) {
		return false
	}
	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		httputil.DecodeErr(ctx, w, err)
		return false
	}
	return true
}

func trainingSet(ctx context.Context, w http.ResponseWriter, cfg *Config, repo *dataset.Repository, samples []dataset.Sample) (dataset.TrainingSet, bool) {
	if samples == nil {
		return repo.Snapshot(), true
	}
	if len(samples) > cfg.MaxDatasetRows {
		httputil.RespBadRequest(ctx, w, `{"error": "dataset is too large, max allowed len is %d"}`, cfg.MaxDatasetRows)
		return nil, false
	}
	for i, s := range samples {
		if !s.Diabetic.Valid() {
			httputil.RespBadRequest(ctx, w, `{"error": "dataset row %d: diabetic must be 0 or 1"}`, i)
			return nil, false
		}
	}
	return dataset.TrainingSet(samples), true
}

func classifyOne(ctx context.Context, engine *classifier.Engine, alg classifier.Algorithm, set dataset.TrainingSet, q dataset.Query, k int) (classifier.Result, error) {
	start := time.Now()
	res, err := engine.Classify(alg, set, q, k)
	if err != nil {
		metric.RecordClassificationError(ctx, string(alg))
		return nil, err
	}
	metric.RecordClassification(ctx, string(alg), int(res.Predicted()), time.Since(start))
	return res, nil
}

func respClassifyErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		invalid      *classifier.InvalidParameterError
		insufficient *classifier.InsufficientDataError
	)
	switch {
	case errors.As(err, &invalid):
		httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
	case errors.Is(err, classifier.ErrEmptyTrainingSet), errors.As(err, &insufficient):
		httputil.RespUnprocessable(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
	default:
		httputil.RespInternalError(ctx, w, `{"error": "classification error, %v"}`, err)
	}
}
