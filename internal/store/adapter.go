package store

import (
	"context"
	"database/sql"
	"time"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
	"companies-engine/internal/ports"
)

const DefaultQueryTimeout = 5 * time.Second

var _ ports.ListingStore = (*Listings)(nil)

// Listings serves the directory core. Each query runs under Timeout and every
// failure, expiry included, is reported as store_unavailable.
type Listings struct {
	DB      *sql.DB
	Timeout time.Duration
}

func NewListings(db *sql.DB, timeout time.Duration) *Listings {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &Listings{DB: db, Timeout: timeout}
}

func (l *Listings) DistinctCompanyNames(ctx context.Context, postType, status string) ([]string, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()
	names, err := DistinctCompanyNames(ctx, l.DB, postType, status)
	if err != nil {
		return nil, apperr.MapStoreError(err)
	}
	return names, nil
}

func (l *Listings) CountListings(ctx context.Context, q domain.ListingQuery) (int, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()
	n, err := CountListings(ctx, l.DB, q)
	if err != nil {
		return 0, apperr.MapStoreError(err)
	}
	return n, nil
}

func (l *Listings) ListListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()
	out, err := ListListings(ctx, l.DB, q)
	if err != nil {
		return nil, apperr.MapStoreError(err)
	}
	return out, nil
}

func (l *Listings) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.Timeout <= 0 {
		return context.WithTimeout(ctx, DefaultQueryTimeout)
	}
	return context.WithTimeout(ctx, l.Timeout)
}
