// Package render writes the directory, company and error pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"companies-engine/internal/domain"
	"companies-engine/internal/permalink"
	"companies-engine/internal/resolve"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	pageDirectory = "directory"
	pageCompany   = "company"
	pageNotFound  = "notfound"
	pageError     = "error"
)

// DirectoryView is the data behind the overview page.
type DirectoryView struct {
	Title       string
	ShowLetters bool
	// Letters is always the full label sequence; Buckets only the non-empty ones.
	Letters []string
	Buckets domain.Buckets
}

type CompanyView struct {
	Title    string
	Company  string
	Listings []domain.Listing
}

// Heading is the archive title shown above the listings.
func (v CompanyView) Heading() string {
	return resolve.ArchiveTitle(v.Company)
}

// NotFoundView backs the 404 page. Heading is empty unless a company was asked for.
type NotFoundView struct {
	Title   string
	Heading string
}

type page struct {
	Title     string
	BodyClass string
	View      any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
	codec *permalink.Codec
}

func New(codec *permalink.Codec) (*Renderer, error) {
	if codec == nil {
		return nil, fmt.Errorf("render: codec is required")
	}
	r := &Renderer{pages: map[string]*template.Template{}, codec: codec}

	base, err := template.New("layout").Funcs(template.FuncMap{
		"profileURL": codec.ProfileURL,
	}).ParseFS(templateFS, "templates/layout.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse layout: %w", err)
	}
	for _, name := range []string{pageDirectory, pageCompany, pageNotFound, pageError} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Directory renders the grouped overview. Empty buckets are not listed.
func (r *Renderer) Directory(w http.ResponseWriter, v DirectoryView) error {
	if len(v.Letters) == 0 {
		v.Letters = domain.BucketLabels()
	}
	v.Buckets = v.Buckets.NonEmpty()
	return r.write(w, http.StatusOK, pageDirectory, page{Title: v.Title, BodyClass: "companies", View: v})
}

// SingleCompany renders one company's listings under its archive heading.
func (r *Renderer) SingleCompany(w http.ResponseWriter, v CompanyView) error {
	return r.write(w, http.StatusOK, pageCompany, page{Title: v.Title, BodyClass: "company", View: v})
}

func (r *Renderer) NotFound(w http.ResponseWriter, v NotFoundView) error {
	return r.write(w, http.StatusNotFound, pageNotFound, page{Title: v.Title, BodyClass: "error404", View: v})
}

// Failure is shown when the listing store cannot be reached. It carries no detail.
func (r *Renderer) Failure(w http.ResponseWriter) error {
	return r.write(w, http.StatusServiceUnavailable, pageError, page{Title: "Temporarily unavailable", BodyClass: "error503"})
}

func (r *Renderer) write(w http.ResponseWriter, status int, name string, p page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
