// Package directory derives the company directory from listings: which
// companies are hiring now, and how they file into alphabetical buckets.
package directory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
	"companies-engine/internal/logging"
	"companies-engine/internal/ports"
)

// Aggregator builds the count-annotated company list. It keeps no state between
// calls; every Aggregate reads the store afresh.
type Aggregator struct {
	Store ports.ListingStore
}

func NewAggregator(store ports.ListingStore) *Aggregator {
	return &Aggregator{Store: store}
}

// Aggregate returns every company with at least one published, unfilled listing,
// in the store's name order. Companies whose listings are all filled are dropped.
// A store failure aborts the whole call; no partial list is returned.
func (a *Aggregator) Aggregate(ctx context.Context) ([]domain.Company, error) {
	log := logging.FromContext(ctx)

	names, err := a.Store.DistinctCompanyNames(ctx, domain.PostTypeJobListing, domain.StatusPublish)
	if err != nil {
		return nil, fmt.Errorf("aggregate companies: %w", apperr.MapStoreError(err))
	}

	companies := make([]domain.Company, 0, len(names))
	for i, name := range names {
		if name == "" {
			log.Warn("skipping company",
				zap.String("reason", string(apperr.CodeEmptyCompanyName)),
				zap.Error(apperr.EmptyCompanyName(i)),
			)
			continue
		}

		n, err := a.Store.CountListings(ctx, domain.OpenListingsFor(name))
		if err != nil {
			return nil, fmt.Errorf("count listings for %q: %w", name, apperr.MapStoreError(err))
		}
		if n == 0 {
			continue
		}
		companies = append(companies, domain.Company{Name: name, OpenListingCount: n})
	}

	log.Debug("companies aggregated", zap.Int("distinct", len(names)), zap.Int("hiring", len(companies)))
	return companies, nil
}
