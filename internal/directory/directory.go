package directory

import (
	"context"

	"companies-engine/internal/domain"
)

// Service runs the overview pipeline: aggregate, then group.
type Service struct {
	Aggregator *Aggregator
	Grouper    *Grouper
}

func NewService(a *Aggregator, g *Grouper) *Service {
	return &Service{Aggregator: a, Grouper: g}
}

func (s *Service) Buckets(ctx context.Context) (domain.Buckets, error) {
	companies, err := s.Aggregator.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return s.Grouper.Group(companies), nil
}
