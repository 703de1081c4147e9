package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/raster"
	"github.com/inamate/fractal/internal/typeid"
)

const (
	maxRequestSize = 8 << 20 // 8MB
	defaultWidth   = 1280
	defaultHeight  = 720
)

// Request is the body of POST /export/png.
type Request struct {
	Document   document.Snapshot `json:"document"`
	MaxDepth   int               `json:"maxDepth"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Background string            `json:"background"`
}

type Handler struct {
	maxSize  int
	maxDepth int
}

// NewHandler creates an export handler. maxSize bounds each image side and
// maxDepth bounds the recursion depth a request may ask for.
func NewHandler(maxSize, maxDepth int) *Handler {
	return &Handler{maxSize: maxSize, maxDepth: document.ClampDepth(maxDepth)}
}

func (h *Handler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Width == 0 && req.Height == 0 {
		req.Width, req.Height = defaultWidth, defaultHeight
	}
	if req.Width <= 0 || req.Height <= 0 || req.Width > h.maxSize || req.Height > h.maxSize {
		http.Error(w, fmt.Sprintf("invalid size: must be between 1 and %d", h.maxSize), http.StatusBadRequest)
		return
	}
	if req.MaxDepth == 0 {
		req.MaxDepth = document.DefaultMaxRecursion
	}
	depth := min(document.ClampDepth(req.MaxDepth), h.maxDepth)

	snap, err := req.Document.Canonical()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := typeid.NewExportID()
	slog.Info("export started", "id", id, "regions", len(snap.Regions), "depth", depth, "width", req.Width, "height", req.Height)

	sg := raster.Painting(snap, depth, req.Width, req.Height)

	var buf bytes.Buffer
	err = raster.EncodePNG(&buf, sg, raster.Options{
		Width:      req.Width,
		Height:     req.Height,
		Background: req.Background,
	})
	if err != nil {
		slog.Error("render export", "id", id, "error", err)
		http.Error(w, fmt.Sprintf("render failed: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.png"`, id))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("export complete", "id", id, "nodes", sg.NodeCount, "size", buf.Len())
}
