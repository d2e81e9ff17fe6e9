package httpapi

import (
	"net/http"

	"companies-engine/internal/directory"
	"companies-engine/internal/permalink"
)

type CompaniesHandler struct {
	Directory *directory.Service
	Codec     *permalink.Codec
}

type companyJSON struct {
	Name         string `json:"name"`
	OpenListings int    `json:"open_listings"`
	URL          string `json:"url"`
}

type bucketJSON struct {
	Label     string        `json:"label"`
	Companies []companyJSON `json:"companies"`
}

// List returns every bucket, empty ones included, with profile URLs.
func (h CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.Directory.Buckets(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	out := make([]bucketJSON, 0, len(buckets))
	for _, b := range buckets {
		bj := bucketJSON{Label: b.Label, Companies: make([]companyJSON, 0, len(b.Companies))}
		for _, c := range b.Companies {
			bj.Companies = append(bj.Companies, companyJSON{
				Name:         c.Name,
				OpenListings: c.OpenListingCount,
				URL:          h.Codec.ProfileURL(c.Name),
			})
		}
		out = append(out, bj)
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"buckets": out,
		"total":   buckets.Len(),
	})
}
