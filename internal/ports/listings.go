// Package ports holds the interfaces the directory core consumes.
package ports

import (
	"context"

	"companies-engine/internal/domain"
)

// ListingStore is the read side of the listing store.
type ListingStore interface {
	// DistinctCompanyNames returns each non-empty company name on listings with the
	// given post type and status once, ordered ascending by name.
	DistinctCompanyNames(ctx context.Context, postType, status string) ([]string, error)
	CountListings(ctx context.Context, q domain.ListingQuery) (int, error)
	ListListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)
}
