package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"ringframe/internal/scroll"
	"ringframe/internal/widget"
)

type SessionHandler struct {
	store *scroll.Store
}

func NewSessionHandler(store *scroll.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.mount)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Post("/scroll", h.scroll)
		r.Get("/stream", h.stream)
		r.Post("/unmount", h.unmount)
		r.Delete("/", h.unmount)
	})
}

func (h *SessionHandler) mount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	speed, err := widget.ParseSpeed(r.FormValue("speed"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var offset float64
	if raw := strings.TrimSpace(r.FormValue("offset")); raw != "" {
		var ok bool
		if offset, ok = parseOffset(raw); !ok {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}
	sess := h.store.Mount(speed, offset)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        sess.ID,
		"fps":       h.store.FPS(),
		"speed":     sess.Speed(),
		"offset":    sess.Offset(),
		"createdAt": sess.CreatedAt,
	})
}

func parseOffset(raw string) (float64, bool) {
	offset, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return 0, false
	}
	return offset, true
}

func (h *SessionHandler) scroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	offset, ok := parseOffset(r.FormValue("offset"))
	if !ok {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}
	if err := h.store.Scroll(id, offset); err != nil {
		if errors.Is(err, scroll.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) unmount(w http.ResponseWriter, r *http.Request) {
	if !h.store.Unmount(chi.URLParam(r, "id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stream sends every rotation frame of the session as an SSE "rotation"
// event. Closing the stream unmounts the session.
func (h *SessionHandler) stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := h.store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	frames, release, err := h.store.Subscribe(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer h.store.Unmount(id)
	defer release()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	send := func(f scroll.Frame) {
		payload, _ := json.Marshal(f)
		writeSSE(w, "rotation", string(payload))
		flusher.Flush()
	}
	send(sess.Snapshot())

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case f, open := <-frames:
			if !open {
				return
			}
			send(f)
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}
