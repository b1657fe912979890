package harness

import (
	"context"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orderview/internal/metrics"
)

// NewDevServer serves the output directory with history API fallback,
// plus the live reload stream when hot reload is on.
func NewDevServer(opts Options, reloader *Reloader, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if opts.HotReload && reloader != nil {
		r.Get(ReloadPath, reloader.ServeHTTP)
	}

	static := metrics.Instrument("static")(historyFallback(opts.Output.Directory))
	r.Method(http.MethodGet, "/*", static)
	r.Method(http.MethodHead, "/*", static)

	return r
}

// NewServer builds the dev HTTP server. Request contexts derive from ctx, so
// cancelling it ends open live reload streams and lets Shutdown complete.
// There is no write timeout: the reload stream stays open.
func NewServer(ctx context.Context, opts Options, reloader *Reloader, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:        opts.Addr(),
		Handler:     NewDevServer(opts, reloader, gatherer),
		ReadTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
}

// historyFallback serves files from dir. Unknown extensionless paths get
// index.html so client side routes resolve.
func historyFallback(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)

		if name == "/" || path.Ext(name) != "" {
			files.ServeHTTP(w, r)
			return
		}

		if st, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err == nil && !st.IsDir() {
			files.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, IndexFile))
	})
}
