package httpapi

import (
	"database/sql"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"companies-engine/internal/config"
	"companies-engine/internal/directory"
	"companies-engine/internal/events"
	"companies-engine/internal/permalink"
	"companies-engine/internal/ports"
	"companies-engine/internal/render"
	"companies-engine/internal/resolve"
	"companies-engine/internal/store"
)

type Deps struct {
	DB       *sql.DB
	Listings ports.ListingStore

	Hub    *events.Hub
	Logger *zap.Logger

	// Config is fixed for the life of the process.
	Config     config.Config
	ConfigPath string

	Directory *directory.Service
	Resolver  *resolve.Resolver
	Renderer  *render.Renderer
	Codec     *permalink.Codec

	// Limiter is nil when rate limiting is disabled.
	Limiter *ClientLimiter

	// Shutdown is mounted at POST /shutdown when set.
	Shutdown http.Handler
}

// NewDeps wires the directory components for cfg on top of db.
func NewDeps(db *sql.DB, cfg config.Config, hub *events.Hub, logger *zap.Logger) (Deps, error) {
	if db == nil {
		return Deps{}, fmt.Errorf("httpapi: db is required")
	}
	if hub == nil {
		hub = events.NewHub()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	listings := store.NewListings(db, cfg.Store.QueryTimeout)
	codec := permalink.New(cfg.Site.BaseURL, cfg.Directory.Slug, cfg.Directory.Permalinks, cfg.Directory.TrailingSlash)
	renderer, err := render.New(codec)
	if err != nil {
		return Deps{}, err
	}

	var limiter *ClientLimiter
	if cfg.Limits.RequestsPerSecond > 0 {
		limiter = NewClientLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)
	}

	return Deps{
		DB:        db,
		Listings:  listings,
		Hub:       hub,
		Logger:    logger,
		Config:    cfg,
		Directory: directory.NewService(directory.NewAggregator(listings), directory.NewGrouper()),
		Resolver:  resolve.New(listings, cfg.Directory.HideFilledPositions),
		Renderer:  renderer,
		Codec:     codec,
		Limiter:   limiter,
	}, nil
}

func (d Deps) titles() resolve.TitleContext {
	return resolve.TitleContext{
		SiteName:        d.Config.Site.Name,
		SiteDescription: d.Config.Site.Description,
		Separator:       d.Config.Site.TitleSeparator,
	}
}
