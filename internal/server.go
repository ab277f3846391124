package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/dispatch/pkg/storage"
)

// Preview server timeouts.
const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

// PreviewHandler serves the preview document at "/" and the header image at
// its relative path. The document is rendered on every request.
func (c *Controller) PreviewHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", c.servePreview)
	if route, ok := imageRoute(c.settings.ImageRef); ok {
		file := c.settings.ImageRef
		r.Get(route, func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, file)
		})
	}

	return r
}

func (c *Controller) servePreview(w http.ResponseWriter, r *http.Request) {
	s := c.settings
	doc, err := c.renderer.Render(s.PreviewName, s.FragmentPath, s.ImageRef, s.DocLink)
	if err != nil {
		c.logger.ErrorContext(r.Context(), "preview render failed", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(doc))
}

// ServePreview serves the preview on addr until ctx is cancelled.
func (c *Controller) ServePreview(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("preview server: %w", err)
	}

	srv := &http.Server{
		Handler:           c.PreviewHandler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.logger.InfoContext(ctx, "preview server starting", slog.String("address", ln.Addr().String()))
		c.printf("Serving preview at http://%s/ (Ctrl+C to stop)\n", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		c.logger.InfoContext(context.WithoutCancel(ctx), "shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("preview server: %w", err)
	}
	return nil
}

// imageRoute maps a relative local image path to the URL path a browser
// requests for it when the preview is served from "/".
func imageRoute(ref string) (string, bool) {
	if ref == "" || storage.IsS3Ref(ref) || filepath.IsAbs(ref) || strings.Contains(ref, "://") {
		return "", false
	}
	clean := path.Clean("/" + filepath.ToSlash(ref))
	if clean == "/" || strings.Contains(ref, "..") {
		return "", false
	}
	return clean, true
}
