package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/observability"
	"github.com/casadopescador/console/internal/shared"
	"github.com/casadopescador/console/internal/view"
	"github.com/casadopescador/console/web"
)

// Mounter registers the routes of one console page.
type Mounter interface {
	MountRoutes(r chi.Router)
}

// Page is a resource page mounted under Path.
type Page struct {
	Path    string
	Handler Mounter
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	Templates      console.Renderer
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	Pages          []Page
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router with console defaults.
func NewRouter(params RouterParams) http.Handler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	r.Group(func(r chi.Router) {
		for _, mw := range MiddlewareStack(MiddlewareConfig{
			Logger:         logger,
			Config:         params.Config,
			SessionManager: params.SessionManager,
			CSRFManager:    params.CSRFManager,
			Metrics:        params.Metrics,
		}) {
			r.Use(mw)
		}
		r.Use(chimw.Logger)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			data := view.TemplateData{
				Title:       "Itens de Pesca",
				CurrentPath: "/",
				Data:        view.Navigation[1:],
			}
			if sess != nil {
				token, err := params.CSRFManager.EnsureToken(sess)
				if err != nil {
					logger.Error("ensure csrf token", slog.Any("error", err))
				}
				data.CSRFToken = token
				data.Flashes = sess.PopFlashes()
			}
			if err := params.Templates.Render(w, "pages/home.html", data); err != nil {
				logger.Error("render home", slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})

		for _, page := range params.Pages {
			if page.Handler == nil {
				continue
			}
			r.Route(page.Path, page.Handler.MountRoutes)
		}
	})

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
