package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pipeline"
	"github.com/leetpulse/dskit/pkg/pointer"
)

// CacheHeader reports whether a response came from the cache.
const CacheHeader = "X-Cache"

// paletteResponse describes the color assigned to an annotation name.
type paletteResponse struct {
	Name  string `json:"name"`
	Slot  string `json:"slot"`
	Color string `json:"color"`
}

// GET /healthz
func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /v1/layout/{kind}
func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != model.KindGraph && kind != model.KindTree {
		writeError(w, http.StatusNotFound, string(errors.ErrCodeNotFound),
			fmt.Sprintf("unknown layout kind %q (valid: graph, tree)", kind))
		return
	}

	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if doc.Kind != kind {
		writeError(w, http.StatusBadRequest, string(errors.ErrCodeInvalidInput),
			fmt.Sprintf("expected a %s document, got %s", kind, doc.Kind))
		return
	}

	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	l, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := model.MarshalLayout(l)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// POST /v1/render/{format}
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	format, err := errors.ValidateFormat(chi.URLParam(r, "format"), pipeline.Formats)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	doc, err := readDocument(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	setCacheHeader(w, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// GET /v1/palette/{name}
func (s *Server) palette(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	slot := pointer.SlotFor(name)
	writeJSON(w, http.StatusOK, paletteResponse{
		Name:  name,
		Slot:  slot.String(),
		Color: s.config.Config().Palette().Color(slot),
	})
}

// fail writes err and logs it when it is not the client's fault.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statusFor(err) >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
	}
	writeErr(w, err)
}

func readDocument(r *http.Request) (model.Document, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return model.Document{}, fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return model.Document{}, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}
	return model.ParseDocument(data)
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(CacheHeader, "HIT")
	} else {
		w.Header().Set(CacheHeader, "MISS")
	}
}

// options overlays query parameters on the configured defaults. Zero
// selects the default inside pipeline.Options, so an explicit zero is
// rejected instead of being replaced; height=0 keeps its meaning of sizing
// from content.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	opts := s.config.Config().PipelineOptions()

	floats := []struct {
		key string
		dst *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"node_size", &opts.NodeSize},
		{"level_spacing", &opts.LevelSpacing},
	}
	for _, f := range floats {
		if v := q.Get(f.key); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", f.key, v)
			}
			if f.key != "height" || n != 0 {
				if err := errors.ValidateDimension(f.key, n); err != nil {
					return opts, err
				}
			}
			*f.dst = n
		}
	}

	if v := q.Get("iterations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "iterations: %q is not an integer", v)
		}
		if n < 1 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "iterations must be at least 1, got %d (omit it for the default)", n)
		}
		opts.Iterations = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"strict", &opts.Strict},
		{"sequential_ids", &opts.SequentialIDs},
		{"refresh", &opts.Refresh},
	}
	for _, b := range bools {
		if v := q.Get(b.key); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a boolean", b.key, v)
			}
			*b.dst = parsed
		}
	}

	if v := q.Get("labels"); v != "" {
		labels, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "labels: %q is not a boolean", v)
		}
		opts.NoLabels = !labels
	}
	if v := q.Get("theme"); v != "" {
		opts.Theme = v
	}
	return opts, nil
}
