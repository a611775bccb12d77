package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ringframe/internal/handlers"
	"ringframe/internal/motion"
	"ringframe/internal/scroll"
)

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	fps := envInt("RINGFRAME_FPS", motion.DefaultFPS)
	if fps < 10 {
		fps = 10
	}
	if fps > 240 {
		fps = 240
	}
	ttl := envDuration("RINGFRAME_SESSION_TTL", 10*time.Minute)

	store := scroll.NewStore(fps)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweepSessions(ctx, store, ttl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Fatal(err)
	}

	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	// The SSE stream is long-lived, so only the short routes get a timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		handlers.NewHomeHandler().RegisterRoutes(r)
		handlers.NewWidgetHandler(fps).RegisterRoutes(r)
	})
	handlers.NewSessionHandler(store).RegisterRoutes(r)

	addr := ":" + strings.TrimSpace(os.Getenv("PORT"))
	if addr == ":" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ringframe listening on http://localhost%s fps=%d session_ttl=%s", addr, fps, ttl)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func sweepSessions(ctx context.Context, store *scroll.Store, ttl time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			store.Sweep(now.UTC(), ttl)
		}
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", name, raw, err)
		return fallback
	}
	return v
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("ignoring %s=%q", name, raw)
		return fallback
	}
	return v
}

//go:embed static/*
var embeddedStatic embed.FS
