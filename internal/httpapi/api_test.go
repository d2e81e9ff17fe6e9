package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companies-engine/internal/domain"
	"companies-engine/internal/events"
)

type companiesResponse struct {
	Buckets []bucketJSON `json:"buckets"`
	Total   int          `json:"total"`
}

func getCompanies(t *testing.T, h http.Handler) companiesResponse {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/api/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out companiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func bucket(resp companiesResponse, label string) []companyJSON {
	for _, b := range resp.Buckets {
		if b.Label == label {
			return b.Companies
		}
	}
	return nil
}

func TestCompaniesAPI(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	resp := getCompanies(t, h)
	require.Len(t, resp.Buckets, 27)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, "A", resp.Buckets[0].Label)
	assert.Equal(t, domain.CatchAllBucket, resp.Buckets[26].Label)
	assert.NotNil(t, bucket(resp, "Q"), "empty buckets serialize as []")

	a := bucket(resp, "A")
	require.Len(t, a, 2)
	assert.Equal(t, companyJSON{Name: "Acme & Co", OpenListings: 1, URL: "https://site.test/company/Acme%20%26%20Co/"}, a[0])
}

func TestCreateAndFillListing(t *testing.T) {
	h, d := newTestRouter(t, nil)
	sub := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(sub)

	rec := do(t, h, http.MethodPost, "/api/listings", `{"company":"Beta Labs","title":"Go Developer","location":"Remote"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Beta Labs", created.CompanyName)
	assert.Equal(t, domain.StatusPublish, created.Status)

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(<-sub), &evt))
	assert.Equal(t, events.TypeListingCreated, evt.Type)

	beta := bucket(getCompanies(t, h), "B")
	require.Len(t, beta, 1)
	assert.Equal(t, 1, beta[0].OpenListings)

	rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/listings/%d/filled", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var filled domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filled))
	assert.True(t, filled.Filled)

	require.NoError(t, json.Unmarshal([]byte(<-sub), &evt))
	assert.Equal(t, events.TypeListingFilled, evt.Type)

	assert.Empty(t, bucket(getCompanies(t, h), "B"), "a company with only filled listings drops out")

	rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/listings/%d/filled", created.ID), `{"filled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, bucket(getCompanies(t, h), "B"), 1)
}

func TestSetStatus(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/api/listings?company=Zeta%20Corp", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var zeta []domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zeta))
	require.Len(t, zeta, 2)

	for _, l := range zeta {
		rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/listings/%d/status", l.ID), `{"status":"draft"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Empty(t, bucket(getCompanies(t, h), "Z"))
}

func TestListingsAPIFilters(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	var got []domain.Listing
	rec := do(t, h, http.MethodGet, "/api/listings?company=Alpha%20Inc&open=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	rec = do(t, h, http.MethodGet, "/api/listings?company=Ghost%20LLC&status=draft", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	rec = do(t, h, http.MethodGet, "/api/listings?company=Nobody", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListingsAPIErrors(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"missing title", http.MethodPost, "/api/listings", `{"company":"X"}`, http.StatusBadRequest, "validation"},
		{"unknown field", http.MethodPost, "/api/listings", `{"title":"X","salary":1}`, http.StatusBadRequest, "validation"},
		{"bad status", http.MethodPost, "/api/listings/1/status", `{"status":"trash"}`, http.StatusBadRequest, "validation"},
		{"bad id", http.MethodPost, "/api/listings/abc/filled", "", http.StatusBadRequest, "validation"},
		{"unknown listing", http.MethodPost, "/api/listings/9999/filled", "", http.StatusNotFound, "not_found"},
		{"bad limit", http.MethodGet, "/api/listings?limit=-1", "", http.StatusBadRequest, "validation"},
		{"bad open flag", http.MethodGet, "/api/listings?open=maybe", "", http.StatusBadRequest, "validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code)
			var apiErr APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.code, apiErr.Error.Code)
		})
	}
}

func TestWritesAreLocalOnly(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	req := newRemoteRequest(http.MethodPost, "/api/listings", `{"title":"X"}`)
	rec := serve(h, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = newRemoteRequest(http.MethodGet, "/api/companies", "")
	assert.Equal(t, http.StatusOK, serve(h, req).Code)
}
