package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"connectrpc.com/connect"

	"nupmerge/internal/config"
	"nupmerge/internal/imposition"
	"nupmerge/internal/outputstore"
	"nupmerge/internal/pdfdoc"
	"nupmerge/internal/server"
	"nupmerge/internal/session"
)

const (
	shutdownTimeout = 15 * time.Second
	janitorInterval = time.Minute
)

type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pdf      pdfdoc.Service
	engine   *imposition.Engine
	store    outputstore.Store
	sessions *session.Registry
	service  *server.MergeService
}

type Option func(*App)

// WithPDFService swaps the pdfcpu backend, mainly for tests.
func WithPDFService(svc pdfdoc.Service) Option {
	return func(a *App) { a.pdf = svc }
}

func New(outW io.Writer, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:    cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.pdf == nil {
		a.pdf = pdfdoc.NewPDFCPU(pdfdoc.WithRelaxedValidation(cfg.RelaxedValidation))
	}
	a.logger.Debug("Logger configured successfully.")

	store, err := outputstore.New(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to create output store: %w", err)
	}
	a.store = store
	a.logger.Debug("Output store ready.", "type", cfg.Store.Type, "ttl", cfg.Store.TTL)

	a.engine = imposition.New(a.pdf,
		imposition.WithLoadWorkers(cfg.LoadWorkers),
		imposition.WithLogger(a.logger),
	)
	a.sessions = session.NewRegistry()
	a.service = server.NewMergeService(cfg, a.sessions, a.engine, a.pdf, a.store, a.logger)
	return a, nil
}

func (a *App) Logger() *slog.Logger     { return a.logger }
func (a *App) Config() *config.Config   { return a.cfg }
func (a *App) PDF() pdfdoc.Service      { return a.pdf }
func (a *App) Store() outputstore.Store { return a.store }

// Handler is the complete HTTP surface: RPC service, download route, CORS.
func (a *App) Handler() http.Handler {
	return server.NewMux(a.service, connect.WithReadMaxBytes(int(a.cfg.MaxUploadBytes)))
}

// Serve listens on the configured address until ctx is done or the process is
// signalled, expiring idle sessions in the background.
func (a *App) Serve(ctx context.Context) error {
	if r, ok := a.store.(*outputstore.Redis); ok {
		if err := r.Ping(ctx); err != nil {
			return fmt.Errorf("output store unreachable: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.service.RunJanitor(ctx, janitorInterval)

	srv := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.Run(ctx, srv, a.logger, shutdownTimeout)
}

// MergeFiles runs one merge over files read from disk, outside any server
// session. Paths that are not PDFs by name are skipped and reported.
func (a *App) MergeFiles(ctx context.Context, paths []string, layout config.Layout, progress imposition.Progress) (*imposition.MergedDocument, []string, error) {
	uploads := make([]session.Upload, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		uploads = append(uploads, session.Upload{Name: filepath.Base(p), Data: data})
	}

	sess := session.New()
	_, rejected, err := sess.AddUploads(uploads)
	if err != nil {
		return nil, rejected, err
	}
	for _, name := range rejected {
		a.logger.Warn("skipping non-PDF input", "file", name)
	}

	a.logger.Info("merging files", "files", sess.Len(), "paper", layout.Paper.String(), "rows", layout.Grid.Rows, "cols", layout.Grid.Cols)
	merged, err := sess.Merge(ctx, a.engine, layout.Grid, layout.Paper, progress)
	if err != nil {
		return nil, rejected, err
	}
	return merged, rejected, nil
}

func (a *App) Close() error {
	return a.store.Close()
}
