package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
	"companies-engine/internal/events"
	"companies-engine/internal/logging"
	"companies-engine/internal/ports"
	"companies-engine/internal/store"
)

const maxListingBody = 64 << 10

// ListingsHandler exposes listing reads and the few writes a job board
// front end needs. Writes go straight to the database.
type ListingsHandler struct {
	DB       *sql.DB
	Listings ports.ListingStore
	Hub      *events.Hub
}

type createListingRequest struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Status   string `json:"status"`
	Filled   bool   `json:"filled"`
	Date     string `json:"date"`
}

type filledRequest struct {
	Filled *bool `json:"filled"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// List answers GET /api/listings?company=&status=&open=&limit=.
func (h ListingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.ListingQuery{
		PostType:    domain.PostTypeJobListing,
		Status:      domain.StatusPublish,
		CompanyName: q.Get("company"),
	}
	if s := strings.TrimSpace(q.Get("status")); s != "" {
		if !validStatus(s) {
			WriteAppError(w, r, apperr.Validationf("unknown status %q", s))
			return
		}
		query.Status = s
	}
	if v := q.Get("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			WriteAppError(w, r, apperr.Validation("open must be a boolean"))
			return
		}
		query.ExcludeFilled = open
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			WriteAppError(w, r, apperr.Validation("limit must be a positive integer"))
			return
		}
		query.Limit = n
	}

	listings, err := h.Listings.ListListings(r.Context(), query)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	WriteJSON(w, http.StatusOK, listings)
}

func (h ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteAppError(w, r, err)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Company = strings.TrimSpace(req.Company)
	if req.Title == "" {
		WriteAppError(w, r, apperr.Validation("title is required"))
		return
	}
	if req.Status != "" && !validStatus(req.Status) {
		WriteAppError(w, r, apperr.Validationf("unknown status %q", req.Status))
		return
	}

	l, err := store.InsertListing(r.Context(), h.DB, store.ListingInsert{
		CompanyName: req.Company,
		Title:       req.Title,
		Location:    req.Location,
		URL:         req.URL,
		Status:      req.Status,
		Filled:      req.Filled,
		Date:        req.Date,
	})
	if err != nil {
		WriteAppError(w, r, apperr.MapStoreError(err))
		return
	}

	h.Hub.PublishChange(RequestIDFrom(r.Context()), events.TypeListingCreated, events.ChangeOf(l))
	logging.FromContext(r.Context()).Info("listing created",
		zap.Int64("id", l.ID),
		zap.String("company", l.CompanyName),
	)
	WriteJSON(w, http.StatusCreated, l)
}

// SetFilled marks a listing filled; {"filled": false} reopens it. An empty
// body means filled.
func (h ListingsHandler) SetFilled(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(w, r)
	if !ok {
		return
	}
	var req filledRequest
	if err := decodeBody(r, &req, true); err != nil {
		WriteAppError(w, r, err)
		return
	}
	filled := req.Filled == nil || *req.Filled

	if err := store.SetFilled(r.Context(), h.DB, id, filled); err != nil {
		WriteAppError(w, r, writeError(id, err))
		return
	}
	h.afterUpdate(w, r, id, events.TypeListingFilled)
}

func (h ListingsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteAppError(w, r, err)
		return
	}
	if !validStatus(req.Status) {
		WriteAppError(w, r, apperr.Validationf("unknown status %q", req.Status))
		return
	}

	if err := store.SetStatus(r.Context(), h.DB, id, req.Status); err != nil {
		WriteAppError(w, r, writeError(id, err))
		return
	}
	h.afterUpdate(w, r, id, events.TypeListingStatus)
}

func (h ListingsHandler) afterUpdate(w http.ResponseWriter, r *http.Request, id int64, typ string) {
	l, err := store.GetListing(r.Context(), h.DB, id)
	if err != nil {
		WriteAppError(w, r, writeError(id, err))
		return
	}
	h.Hub.PublishChange(RequestIDFrom(r.Context()), typ, events.ChangeOf(l))
	WriteJSON(w, http.StatusOK, l)
}

func listingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteAppError(w, r, apperr.Validation("invalid id"))
		return 0, false
	}
	return id, true
}

func writeError(id int64, err error) error {
	if errors.Is(err, store.ErrListingNotFound) {
		return apperr.NotFoundf("listing %d not found", id)
	}
	return apperr.MapStoreError(err)
}

func validStatus(s string) bool {
	return s == domain.StatusPublish || s == domain.StatusDraft
}

func decodeBody(r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxListingBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Validationf("invalid JSON: %v", err)
	}
	if dec.More() {
		return apperr.Validation("invalid JSON: trailing data")
	}
	return nil
}
