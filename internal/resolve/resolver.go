// Package resolve turns an incoming company identifier into a listing
// predicate and decides whether the company page or the not-found page applies.
package resolve

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
	"companies-engine/internal/logging"
	"companies-engine/internal/permalink"
	"companies-engine/internal/ports"
)

type State int

const (
	Idle State = iota
	IdentifierPresent
	Resolved
	NotFound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case IdentifierPresent:
		return "identifier_present"
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the request ends in a company or not-found page.
func (s State) Terminal() bool {
	return s == Resolved || s == NotFound
}

// Intent describes the request as seen by the route matcher.
type Intent struct {
	// Identifier is the raw, still percent-encoded company identifier.
	Identifier string
	Present    bool
	MainQuery  bool
	Admin      bool
}

// Resolution is the outcome of one request.
type Resolution struct {
	State       State
	CompanyName string
	Query       domain.ListingQuery
	Count       int
}

// BuildQuery returns the predicate for one company's listings. Filled listings
// are excluded only when hideFilled is set.
func BuildQuery(companyName string, hideFilled bool) domain.ListingQuery {
	return domain.ListingQuery{
		PostType:      domain.PostTypeJobListing,
		Status:        domain.StatusPublish,
		CompanyName:   companyName,
		ExcludeFilled: hideFilled,
	}
}

type Resolver struct {
	Store      ports.ListingStore
	HideFilled bool
}

func New(store ports.ListingStore, hideFilled bool) *Resolver {
	return &Resolver{Store: store, HideFilled: hideFilled}
}

// Resolve runs the state machine for one request. Requests that never leave
// Idle come back with State Idle and a nil error. A malformed identifier is
// NotFound; only store failures are returned as errors.
func (r *Resolver) Resolve(ctx context.Context, in Intent) (Resolution, error) {
	if !in.Present || in.Identifier == "" || !in.MainQuery || in.Admin {
		return Resolution{State: Idle}, nil
	}
	res := Resolution{State: IdentifierPresent}
	log := logging.FromContext(ctx)

	name, err := permalink.Decode(in.Identifier)
	if err != nil {
		log.Info("company identifier rejected",
			zap.String("identifier", in.Identifier),
			zap.String("reason", string(apperr.CodeMalformedIdentifier)),
		)
		res.State = NotFound
		return res, nil
	}
	res.CompanyName = name
	if name == "" {
		res.State = NotFound
		return res, nil
	}
	res.Query = BuildQuery(name, r.HideFilled)

	n, err := r.Store.CountListings(ctx, res.Query)
	if err != nil {
		return res, fmt.Errorf("resolve %q: %w", name, apperr.MapStoreError(err))
	}
	res.Count = n
	if n > 0 {
		res.State = Resolved
	} else {
		res.State = NotFound
	}
	return res, nil
}
