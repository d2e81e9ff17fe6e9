package httpapi

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"companies-engine/internal/directory"
	"companies-engine/internal/domain"
	"companies-engine/internal/logging"
	"companies-engine/internal/permalink"
	"companies-engine/internal/ports"
	"companies-engine/internal/render"
	"companies-engine/internal/resolve"
)

const (
	directoryPageTitle = "Companies"
	notFoundPageTitle  = "Page not found"
)

// PagesHandler serves the HTML directory and company pages.
type PagesHandler struct {
	Directory   *directory.Service
	Resolver    *resolve.Resolver
	Listings    ports.ListingStore
	Renderer    *render.Renderer
	BasePath    string
	Slug        string
	ShowLetters bool
	Titles      resolve.TitleContext
}

// Index shows the directory, or a company when the slug query parameter is set.
func (h PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	if raw, ok := permalink.IdentifierFromQuery(r.URL.RawQuery, h.Slug); ok {
		h.serveCompany(w, r, raw)
		return
	}
	h.serveDirectory(w, r)
}

// Company serves {base}/{slug}/{identifier}.
func (h PagesHandler) Company(w http.ResponseWriter, r *http.Request) {
	raw, ok := permalink.IdentifierFromPath(r.URL.EscapedPath(), h.BasePath, h.Slug)
	if !ok {
		h.NotFound(w, r)
		return
	}
	h.serveCompany(w, r, raw)
}

func (h PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, render.NotFoundView{Title: resolve.PageTitle(notFoundPageTitle, h.Titles)})
}

// companyNotFound keeps the company's archive title on the 404 page.
func (h PagesHandler) companyNotFound(w http.ResponseWriter, r *http.Request, company string) {
	if company == "" {
		h.NotFound(w, r)
		return
	}
	h.notFound(w, r, render.NotFoundView{
		Title:   resolve.DocumentTitle(company, h.Titles),
		Heading: resolve.ArchiveTitle(company),
	})
}

func (h PagesHandler) notFound(w http.ResponseWriter, r *http.Request, v render.NotFoundView) {
	if err := h.Renderer.NotFound(w, v); err != nil {
		logging.FromContext(r.Context()).Error("render not found page", zap.Error(err))
	}
}

func (h PagesHandler) serveDirectory(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.Directory.Buckets(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	titles := h.Titles
	titles.Home = true
	err = h.Renderer.Directory(w, render.DirectoryView{
		Title:       resolve.PageTitle(directoryPageTitle, titles),
		ShowLetters: h.showLetters(r),
		Buckets:     buckets,
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("render directory", zap.Error(err))
	}
}

// showLetters applies a per-request show_letters override to the configured default.
func (h PagesHandler) showLetters(r *http.Request) bool {
	v := r.URL.Query().Get("show_letters")
	if v == "" {
		return h.ShowLetters
	}
	show, err := strconv.ParseBool(v)
	if err != nil {
		return h.ShowLetters
	}
	return show
}

func (h PagesHandler) serveCompany(w http.ResponseWriter, r *http.Request, raw string) {
	ctx := r.Context()
	res, err := h.Resolver.Resolve(ctx, resolve.Intent{Identifier: raw, Present: true, MainQuery: true})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if res.State != resolve.Resolved {
		h.companyNotFound(w, r, res.CompanyName)
		return
	}

	// The page shows every listing the resolver counted.
	q := res.Query
	q.Limit = domain.NoLimit
	listings, err := h.Listings.ListListings(ctx, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	err = h.Renderer.SingleCompany(w, render.CompanyView{
		Title:    resolve.DocumentTitle(res.CompanyName, h.Titles),
		Company:  res.CompanyName,
		Listings: listings,
	})
	if err != nil {
		logging.FromContext(ctx).Error("render company", zap.String("company", res.CompanyName), zap.Error(err))
	}
}

func (h PagesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("directory request failed", zap.Error(err))
	if rerr := h.Renderer.Failure(w); rerr != nil {
		logging.FromContext(r.Context()).Error("render failure page", zap.Error(rerr))
	}
}
