package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"ringframe/internal/motion"
	"ringframe/internal/widget"
)

const maxSimulatedFrames = 600

type WidgetHandler struct {
	fps int
}

func NewWidgetHandler(fps int) *WidgetHandler {
	if fps <= 0 {
		fps = motion.DefaultFPS
	}
	return &WidgetHandler{fps: fps}
}

func (h *WidgetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/widget", h.fragment)
	r.Get("/widget.svg", h.svg)
}

func (h *WidgetHandler) fragment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.props(w, r)
	if !ok {
		return
	}
	render(w, r, widget.Component(p))
}

func (h *WidgetHandler) svg(w http.ResponseWriter, r *http.Request) {
	p, ok := h.props(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := widget.WriteSVG(&buf, p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

// props parses widget options from the query string and, when scroll is
// given, the ring angles after frames steps towards that offset.
func (h *WidgetHandler) props(w http.ResponseWriter, r *http.Request) (widget.Props, bool) {
	p, err := widget.ParseValues(widgetValues(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return widget.Props{}, false
	}
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return widget.Props{}, false
	}
	q := r.URL.Query()
	if raw := strings.TrimSpace(q.Get("scroll")); raw != "" {
		offset, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid scroll offset", http.StatusBadRequest)
			return widget.Props{}, false
		}
		frames := parseInt(q.Get("frames"), h.fps)
		if frames < 0 {
			frames = 0
		}
		if frames > maxSimulatedFrames {
			frames = maxSimulatedFrames
		}
		p.Angles = motion.Simulate(h.fps, p.Speed(), offset, frames)
	}
	return p, true
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
