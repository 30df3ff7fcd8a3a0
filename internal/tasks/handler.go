package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sod/clsdemo/internal/httputil"
	"github.com/go-sod/clsdemo/internal/tasks/model"
	"github.com/google/uuid"
)

const maxBodyBytes = 64 * 1024

func NewHandler(board *Board) *Handler {
	return &Handler{board: board}
}

type Handler struct {
	board *Board
}

type statusRequest struct {
	Status model.Status `json:"status"`
}

// Routes registers the task board endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.Handle("GET /tasks", h.HandleList())
	mux.Handle("POST /tasks", h.HandleAdd())
	mux.Handle("GET /tasks/export", h.HandleExport())
	mux.Handle("GET /tasks/progress", h.HandleProgress())
	mux.Handle("GET /tasks/{id}", h.HandleGet())
	mux.Handle("PUT /tasks/{id}", h.HandleEdit())
	mux.Handle("DELETE /tasks/{id}", h.HandleDelete())
	mux.Handle("POST /tasks/{id}/status", h.HandleMove())
	mux.Handle("POST /tasks/{id}/complete", h.HandleComplete())
	mux.Handle("GET /timeline", h.HandleTimeline())
}

func (h *Handler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var status model.Status
		if s := r.URL.Query().Get("status"); s != "" {
			parsed, err := model.ParseStatus(s)
			if err != nil {
				httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
				return
			}
			status = parsed
		}
		list, err := h.board.List(ctx, status)
		if err != nil {
			httputil.RespInternalError(ctx, w, `{"error": "unable to list tasks, %v"}`, err)
			return
		}
		if list == nil {
			list = []model.Task{}
		}
		httputil.RespJSON(ctx, w, http.StatusOK, list)
	}
}

func (h *Handler) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		task, err := h.board.Get(ctx, id)
		if err != nil {
			respTaskErr(w, r, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, task)
	}
}

func (h *Handler) HandleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var d Draft
		if !decode(w, r, &d) {
			return
		}
		task, err := h.board.Add(ctx, d)
		if err != nil {
			respTaskErr(w, r, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusCreated, task)
	}
}

func (h *Handler) HandleEdit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		var d Draft
		if !decode(w, r, &d) {
			return
		}
		task, err := h.board.Edit(ctx, id, d)
		if err != nil {
			respTaskErr(w, r, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, task)
	}
}

func (h *Handler) HandleMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		var req statusRequest
		if !decode(w, r, &req) {
			return
		}
		task, err := h.board.Move(ctx, id, req.Status)
		if err != nil {
			respTaskErr(w, r, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, task)
	}
}

func (h *Handler) HandleComplete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		task, err := h.board.Complete(ctx, id)
		if err != nil {
			respTaskErr(w, r, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, task)
	}
}

func (h *Handler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}
		if err := h.board.Delete(r.Context(), id); err != nil {
			respTaskErr(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) HandleProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		p, err := h.board.Progress(ctx)
		if err != nil {
			httputil.RespInternalError(ctx, w, `{"error": "unable to compute progress, %v"}`, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, p)
	}
}

// HandleExport writes the board as a download, json unless format=yaml.
func (h *Handler) HandleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		format, err := ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
			return
		}
		var buf bytes.Buffer
		if err := h.board.Export(ctx, &buf, format); err != nil {
			httputil.RespInternalError(ctx, w, `{"error": "unable to export tasks, %v"}`, err)
			return
		}
		contentType := "application/json"
		if format == FormatYAML {
			contentType = "application/yaml"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks.%s"`, format))
		_, _ = w.Write(buf.Bytes())
	}
}

func (h *Handler) HandleTimeline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		list, err := Timeline()
		if err != nil {
			httputil.RespInternalError(ctx, w, `{"error": "unable to load timeline, %v"}`, err)
			return
		}
		httputil.RespJSON(ctx, w, http.StatusOK, list)
	}
}

func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.RespBadRequest(r.Context(), w, `{"error": "invalid task id %s"}`, httputil.Quote(r.PathValue("id")))
		return uuid.Nil, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	ctx := r.Context()
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

func respTaskErr(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.RespNotFound(ctx, w, `{"error": "task %s not found"}`, httputil.Quote(r.PathValue("id")))
	case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrInvalidInput):
		httputil.RespBadRequest(ctx, w, `{"error": "%s"}`, httputil.Quote(err.Error()))
	default:
		httputil.RespInternalError(ctx, w, `{"error": "task board error, %v"}`, err)
	}
}
