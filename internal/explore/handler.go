// Package explore serves the dataset browser: the table view, the summary
// panel, CSV import and export, and the scatter plot projection.
package explore

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sod/clsdemo/internal/dataset"
	"github.com/go-sod/clsdemo/internal/httputil"
	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/plot"
)

func NewHandler(cfg *Config, repo *dataset.Repository) *Handler {
	return &Handler{cfg: cfg, repo: repo}
}

type Handler struct {
	cfg  *Config
	repo *dataset.Repository
}

type plotResponse struct {
	*plot.Table
	Hit *int `json:"hit,omitempty"`
}

// HandleList filters, sorts and paginates the current dataset. Query
// parameters: search, label, sort, order (asc|desc), page, pageSize and
// min.<column> / max.<column> bounds.
func (h *Handler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		filter, err := parseFilter(q)
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		set := filter.Apply(h.repo.Snapshot())

		if s := q.Get("sort"); s != "" {
			col, err := dataset.ParseColumn(s)
			if err != nil {
				httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
				return
			}
			set = dataset.Sorted(set, col, strings.EqualFold(q.Get("order"), "desc"))
		}

		page, err := intParam(q, "page", 1)
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		size, err := intParam(q, "pageSize", h.cfg.PageSize)
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		p, err := dataset.Paginate(set, page, size)
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, p)
	}
}

func (h *Handler) HandleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.RespJSON(r.Context(), w, http.StatusOK, dataset.Summarize(h.repo.Snapshot()))
	}
}

func (h *Handler) HandleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="diabetes_dataset.csv"`)
		if err := dataset.WriteCSV(w, h.repo.Snapshot()); err != nil {
			logging.FromContext(r.Context()).Errorf("unable to export dataset: %v", err)
		}
	}
}

// HandleUpload replaces the current dataset with the CSV request body.
func (h *Handler) HandleUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)
		defer r.Body.Close()

		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
		set, err := dataset.ReadCSV(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httputil.RespBadRequest(ctx, w, `{"error": "dataset is too large, max allowed size is %d bytes"}`, h.cfg.MaxUploadSize)
				return
			}
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		if len(set) == 0 {
			httputil.RespBadRequest(ctx, w, `{"error": "dataset has no valid rows"}`)
			return
		}
		h.repo.Replace(set)
		logger.Infof("dataset replaced with %d samples, fingerprint %s", len(set), set.Fingerprint())
		httputil.RespJSON(ctx, w, http.StatusOK, dataset.Summarize(set))
	}
}

// HandlePlot projects the filtered dataset onto a canvas. hitX and hitY,
// when given, are resolved to the closest sample.
func (h *Handler) HandlePlot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		table, err := h.project(q)
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		resp := plotResponse{Table: table}
		if q.Get("hitX") != "" || q.Get("hitY") != "" {
			x, errX := floatParam(q, "hitX", 0)
			y, errY := floatParam(q, "hitY", 0)
			if errX != nil || errY != nil {
				httputil.RespBadRequest(ctx, w, `{"error": "hitX and hitY must be numbers"}`)
				return
			}
			if idx, ok := table.HitTest(x, y, plot.DefaultHitRadius); ok {
				resp.Hit = &idx
			}
		}
		httputil.RespJSON(ctx, w, http.StatusOK, resp)
	}
}

func (h *Handler) project(q url.Values) (*plot.Table, error) {
	x, err := featureParam(q, "x", dataset.FeatureGlucose)
	if err != nil {
		return nil, err
	}
	y, err := featureParam(q, "y", dataset.FeatureBloodPressure)
	if err != nil {
		return nil, err
	}
	c := plot.DefaultCanvas
	if c.Width, err = floatParam(q, "width", c.Width); err != nil {
		return nil, err
	}
	if c.Height, err = floatParam(q, "height", c.Height); err != nil {
		return nil, err
	}
	if c.Padding, err = floatParam(q, "padding", c.Padding); err != nil {
		return nil, err
	}
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	return plot.Project(filter.Apply(h.repo.Snapshot()), x, y, c)
}

func parseFilter(q url.Values) (dataset.Filter, error) {
	f := dataset.Filter{Search: q.Get("search"), Bounds: map[dataset.Column]dataset.Bounds{}}
	if s := q.Get("label"); s != "" {
		v, err := strconv.Atoi(s)
		label := dataset.Label(v)
		if err != nil || !label.Valid() {
			return dataset.Filter{}, fmt.Errorf("label must be 0 or 1, got %q", s)
		}
		f.Label = &label
	}
	for key, values := range q {
		bound, name, ok := strings.Cut(key, ".")
		if !ok || (bound != "min" && bound != "max") || len(values) == 0 {
			continue
		}
		col, err := dataset.ParseColumn(name)
		if err != nil {
			return dataset.Filter{}, err
		}
		v, err := parseFinite(values[0])
		if err != nil {
			return dataset.Filter{}, fmt.Errorf("%s must be a finite number, got %q", key, values[0])
		}
		b := f.Bounds[col]
		if bound == "min" {
			b.Min = &v
		} else {
			b.Max = &v
		}
		f.Bounds[col] = b
	}
	return f, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, s)
	}
	return v, nil
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := parseFinite(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a finite number, got %q", key, s)
	}
	return v, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %v", v)
	}
	return v, nil
}

func featureParam(q url.Values, key string, def dataset.Feature) (dataset.Feature, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	return dataset.ParseFeature(s)
}

// Routes registers the dataset endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.Handle("GET /dataset", h.HandleList())
	mux.Handle("GET /dataset/summary", h.HandleSummary())
	mux.Handle("GET /dataset/export", h.HandleExport())
	mux.Handle("POST /dataset", h.HandleUpload())
	mux.Handle("GET /dataset/plot", h.HandlePlot())
}
