package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/framechart/pkg/buildinfo"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/observability"
	"github.com/matzehuels/framechart/pkg/pipeline"
	"github.com/matzehuels/framechart/pkg/store"
)

// LayoutIDHeader names the archived layout of a rendered response.
const LayoutIDHeader = "X-Layout-ID"

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Document  string   `json:"document"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`
}

// RenderResponse is the JSON envelope answered by POST /render.
// Artifacts are base64-encoded by encoding/json.
type RenderResponse struct {
	ID           string            `json:"id"`
	DocumentHash string            `json:"document_hash"`
	Plots        int               `json:"plots"`
	Charts       int               `json:"charts"`
	LayoutCached bool              `json:"layout_cached"`
	RenderCached bool              `json:"render_cached"`
	Artifacts    map[string][]byte `json:"artifacts"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRender(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, id, err := s.render(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set(LayoutIDHeader, id)
	writeJSON(w, http.StatusOK, RenderResponse{
		ID:           id,
		DocumentHash: res.DocumentHash,
		Plots:        res.Stats.PlotCount,
		Charts:       res.Stats.ChartCount,
		LayoutCached: res.CacheInfo.LayoutHit,
		RenderCached: res.CacheInfo.RenderHit,
		Artifacts:    res.Artifacts,
	})
}

func (s *Server) handleRenderFormat(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := decodeRender(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	req.Formats = []string{format}
	res, id, err := s.render(r, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set(LayoutIDHeader, id)
	writeArtifact(w, format, res.Artifacts[format])
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleLayoutFormat(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := pipeline.Options{Formats: []string{format}, Logger: s.logger}
	if err := parseScale(r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, _, err := s.runner.RenderWithCacheInfo(r.Context(), rec.Layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, artifacts[format])
}

// render runs the pipeline and archives the layout.
func (s *Server) render(r *http.Request, req RenderRequest) (*pipeline.Result, string, error) {
	logger := s.logger.With("request", RequestIDFromContext(r.Context()))
	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document:  req.Document,
		Width:     req.Width,
		Height:    req.Height,
		Formats:   req.Formats,
		Scale:     req.Scale,
		EmbedFont: req.EmbedFont,
		Refresh:   req.Refresh,
		Logger:    logger,
	})
	if err != nil {
		return nil, "", err
	}
	rec := store.NewRecord(res.DocumentHash, res.Layout, store.DefaultTTL)
	if err := s.store.Put(r.Context(), rec); err != nil {
		return nil, "", err
	}
	return res, rec.ID, nil
}

func decodeRender(w http.ResponseWriter, r *http.Request) (RenderRequest, error) {
	var req RenderRequest
	r.Body = http.MaxBytesReader(w, r.Body, 2*pipeline.MaxDocumentSize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if req.Document == "" {
		return req, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	return req, nil
}

func parseScale(r *http.Request, opts *pipeline.Options) error {
	v := r.URL.Query().Get("scale")
	if v == "" {
		return nil
	}
	scale, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
	}
	opts.Scale = scale
	return nil
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(store.DefaultTTL/time.Second)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "err", err)
	}
	writeJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   msg,
		RequestID: RequestIDFromContext(r.Context()),
	})
}
