package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"

	"nupmerge/gen/go/nupmergeconnect"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// deriveFilename turns an optional user title into a safe download name,
// falling back to merged_YYYYMMDD_HHMMSS.pdf.
func deriveFilename(title string, at time.Time) string {
	trimmed := strings.TrimSpace(title)
	sanitized := invalidFilenameChars.ReplaceAllString(trimmed, "_")
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return "merged_" + at.Format("20060102_150405") + ".pdf"
	}
	if !strings.HasSuffix(strings.ToLower(sanitized), ".pdf") {
		sanitized += ".pdf"
	}
	return sanitized
}

// NewMux routes the RPC service, the download endpoint and CORS preflights.
func NewMux(svc *MergeService, opts ...connect.HandlerOption) http.Handler {
	mux := http.NewServeMux()
	path, handler := nupmergeconnect.NewMergeServiceHandler(svc, opts...)
	mux.Handle(path, handler)
	mux.HandleFunc("GET /download/{session}", svc.download)
	return corsMiddleware(requestLogger(svc.logger, mux))
}

func (s *MergeService) download(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session")
	entry, found, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("reading merged output", "session", id, "error", err)
		http.Error(w, "failed to read merged output", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, errNoMergedOutput.Error(), http.StatusNotFound)
		return
	}
	writePDF(w, entry.Filename, entry.Data, s.logger)
}

func writePDF(w http.ResponseWriter, filename string, data []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error("writing PDF to response", "error", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder keeps Flush reachable for connect's streaming responses.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

const rawSampleLimit = 256

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Merge requests are small; the sample helps debugging odd clients.
		if r.URL.Path == nupmergeconnect.MergeServiceMergeProcedure && logger.Enabled(r.Context(), slog.LevelDebug) {
			bodyBytes, err := io.ReadAll(r.Body)
			if err == nil {
				sample := string(bodyBytes)
				if len(sample) > rawSampleLimit {
					sample = sample[:rawSampleLimit]
				}
				logger.Debug("Merge raw request", "body", sample)
				r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			} else {
				logger.Debug("Merge raw request read error", "error", err)
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes_in", r.ContentLength,
			"duration", time.Since(start),
		)
	})
}

// Run serves srv until ctx is done or SIGINT/SIGTERM arrives, then shuts it
// down, giving in-flight requests up to timeout to finish.
func Run(ctx context.Context, srv *http.Server, logger *slog.Logger, timeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down", "addr", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := <-serverErr; err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
