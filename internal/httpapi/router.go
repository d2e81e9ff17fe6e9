package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the HTML pages and the JSON API under the base path of
// the configured site URL.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, InjectLogger(d.Logger), AccessLog, Recover, RateLimit(d.Limiter))

	base := d.Codec.BasePath()
	pages := PagesHandler{
		Directory:   d.Directory,
		Resolver:    d.Resolver,
		Listings:    d.Listings,
		Renderer:    d.Renderer,
		BasePath:    base,
		Slug:        d.Codec.Slug,
		ShowLetters: d.Config.Directory.ShowLetters,
		Titles:      d.titles(),
	}

	if base != "" {
		r.Get(base, pages.Index)
	}
	r.Get(base+"/", pages.Index)
	r.Get(base+"/index.php", pages.Index)
	r.Get(base+"/"+d.Codec.Slug+"/*", pages.Company)
	r.NotFound(pages.NotFound)

	r.Route(base+"/api", func(r chi.Router) {
		r.Get("/companies", CompaniesHandler{Directory: d.Directory, Codec: d.Codec}.List)

		lh := ListingsHandler{DB: d.DB, Listings: d.Listings, Hub: d.Hub}
		r.Get("/listings", lh.List)

		r.Group(func(r chi.Router) {
			r.Use(LocalOnly)
			r.Post("/listings", lh.Create)
			r.Post("/listings/{id}/filled", lh.SetFilled)
			r.Post("/listings/{id}/status", lh.SetStatus)
			r.Post("/db/checkpoint", DBHandler{DB: d.DB}.Checkpoint)
		})
	})

	r.Get(base+"/events", EventsHandler{Hub: d.Hub}.ServeSSE)

	ch := ConfigHandler{Config: d.Config, UserCfgPath: d.ConfigPath}
	r.Get(base+"/config", ch.Get)
	r.Get(base+"/config/path", ch.Path)
	r.Get(base+"/config/validate", ch.Validate)

	r.Get(base+"/healthz", HealthHandler{DB: d.DB, Hub: d.Hub}.Health)

	if d.Shutdown != nil {
		r.Method(http.MethodPost, "/shutdown", d.Shutdown)
	}

	return r
}
