// Package export renders breakpoint registries into distributable artifacts.
//
// This file implements a local preview server for generated bundles. It
// serves files with no-cache headers so a regenerated stylesheet shows up on
// plain reload, and can auto-open the browser.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

// DefaultPreviewPort is the first port tried for the preview server.
const DefaultPreviewPort = 9000

// PreviewPortRange defines the range of ports probed when the default is taken.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// PreviewServer serves a generated bundle locally for previewing.
type PreviewServer struct {
	bundleDir string
	port      int
	server    *http.Server
}

// NewPreviewServer creates a preview server for the bundle in dir.
func NewPreviewServer(dir string, port int) *PreviewServer {
	return &PreviewServer{bundleDir: dir, port: port}
}

// Start starts the preview server and blocks until it stops.
func (p *PreviewServer) Start() error {
	if _, err := os.Stat(filepath.Join(p.bundleDir, IndexFile)); os.IsNotExist(err) {
		return fmt.Errorf("no %s in %s (run 'mband generate' first)", IndexFile, p.bundleDir)
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCacheMiddleware(http.FileServer(http.Dir(p.bundleDir))))
	mux.HandleFunc("/__preview__/status", p.statusHandler)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.port),
		Handler: mux,
	}
	return p.server.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and shuts it down cleanly on
// SIGINT/SIGTERM.
func (p *PreviewServer) StartWithGracefulShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the preview server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// Port returns the port the server is configured for.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the local URL of the preview server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// statusHandler reports which bundle artifacts exist, as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	artifacts := make(map[string]bool, 5)
	for _, name := range []string{IndexFile, StylesheetFile, QueriesFile, DiagramSVGFile, DiagramPNGFile} {
		_, err := os.Stat(filepath.Join(p.bundleDir, name))
		artifacts[name] = err == nil
	}
	json.NewEncoder(w).Encode(map[string]any{
		"status":     "running",
		"port":       p.port,
		"bundle_dir": p.bundleDir,
		"artifacts":  artifacts,
	})
}

// noCacheMiddleware adds headers to prevent browser caching.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// StartPreview serves the bundle in dir, auto-selecting a port when port is
// zero and opening the browser when openBrowser is set. Blocks until
// interrupted.
func StartPreview(dir string, port int, openBrowser bool) error {
	if port == 0 {
		var err error
		port, err = FindAvailablePort(PreviewPortRangeStart, PreviewPortRangeEnd)
		if err != nil {
			return fmt.Errorf("could not find available port: %w", err)
		}
	}

	server := NewPreviewServer(dir, port)
	if openBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := OpenInBrowser(server.URL()); err != nil {
				fmt.Printf("Could not open browser: %v\n", err)
				fmt.Printf("Open %s in your browser\n", server.URL())
			}
		}()
	}

	fmt.Printf("\nPreview server running at %s\n", server.URL())
	fmt.Printf("Serving: %s\n", dir)
	fmt.Println("\nPress Ctrl+C to stop")

	return server.StartWithGracefulShutdown()
}

// OpenInBrowser opens the URL with the platform's default browser.
func OpenInBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
