package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"orderview/internal/config"
	"orderview/internal/harness"
	"orderview/internal/metrics"
	"orderview/internal/service"
	"orderview/internal/view"
)

func main() {
	cfg, args, err := config.NewView(os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	opts, err := harness.LoadOptions(cfg.OptionsFile)
	if err != nil {
		slog.Error("failed to load options", "file", cfg.OptionsFile, "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	// Data source
	var provider view.Provider
	switch cfg.DataSource {
	case config.SourceLive:
		provider = view.ClientProvider(service.NewOrdersClient(cfg.APIBaseURL))
	default:
		provider = view.StaticProvider(view.FallbackOrders())
	}

	list := view.NewOrderList(provider)
	entries := harness.Entries{
		"orderlist": view.Host{Heading: cfg.Heading, List: list},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := harness.Build(ctx, opts, entries); err != nil {
		slog.Error("build failed", "error", err)
		os.Exit(1)
	}

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "build":
		return
	case "serve":
		if err := serve(ctx, opts, reg); err != nil {
			slog.Error("dev server failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("unknown command", "command", cmd)
		os.Exit(2)
	}
}

func serve(ctx context.Context, opts harness.Options, reg *prometheus.Registry) error {
	reloader := harness.NewReloader()
	if opts.HotReload {
		go func() {
			if err := reloader.Watch(ctx, opts.Output.Directory); err != nil {
				slog.Error("live reload disabled", "error", err)
			}
		}()
	}

	srv := harness.NewServer(ctx, opts, reloader, reg)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting dev server", "addr", srv.Addr, "dir", opts.Output.Directory, "hot", opts.HotReload)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
