package resolve

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
	"companies-engine/internal/mocks"
	"companies-engine/internal/store"
)

func mainIntent(identifier string) Intent {
	return Intent{Identifier: identifier, Present: true, MainQuery: true}
}

func TestBuildQuery(t *testing.T) {
	q := BuildQuery("Acme & Co", false)
	assert.Equal(t, domain.ListingQuery{
		PostType:    domain.PostTypeJobListing,
		Status:      domain.StatusPublish,
		CompanyName: "Acme & Co",
	}, q)

	assert.True(t, BuildQuery("Acme", true).ExcludeFilled)
}

func TestResolveStaysIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := New(mocks.NewMockListingStore(ctrl), false)

	for name, in := range map[string]Intent{
		"absent":        {},
		"empty":         {Present: true, MainQuery: true},
		"not main":      {Identifier: "Acme", Present: true},
		"admin request": {Identifier: "Acme", Present: true, MainQuery: true, Admin: true},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := r.Resolve(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, Idle, res.State)
			assert.False(t, res.State.Terminal())
		})
	}
}

func TestResolveResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockListingStore(ctrl)
	st.EXPECT().CountListings(gomock.Any(), BuildQuery("Acme & Co", true)).Return(2, nil)

	res, err := New(st, true).Resolve(context.Background(), mainIntent("Acme%20%26%20Co"))
	require.NoError(t, err)
	assert.Equal(t, Resolved, res.State)
	assert.Equal(t, "Acme & Co", res.CompanyName)
	assert.Equal(t, 2, res.Count)
	assert.True(t, res.Query.ExcludeFilled)
}

func TestResolveNotFoundWhenNoListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockListingStore(ctrl)
	st.EXPECT().CountListings(gomock.Any(), BuildQuery("Ghost LLC", false)).Return(0, nil)

	res, err := New(st, false).Resolve(context.Background(), mainIntent("Ghost%20LLC"))
	require.NoError(t, err)
	assert.Equal(t, NotFound, res.State)
	assert.Equal(t, "Ghost LLC", res.CompanyName)
	assert.True(t, res.State.Terminal())
}

func TestResolveMalformedIdentifierIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockListingStore(ctrl)

	res, err := New(st, false).Resolve(context.Background(), mainIntent("Acme%zz"))
	require.NoError(t, err)
	assert.Equal(t, NotFound, res.State)
	assert.Empty(t, res.CompanyName)
}

func TestResolveStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockListingStore(ctrl)
	st.EXPECT().CountListings(gomock.Any(), gomock.Any()).Return(0, errors.New("disk I/O error"))

	_, err := New(st, false).Resolve(context.Background(), mainIntent("Acme"))
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeStoreUnavailable))
}

func TestResolveHideFilledAgainstSQLite(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "resolve.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))

	ctx := context.Background()
	_, err = store.InsertListing(ctx, db.Pool, store.ListingInsert{CompanyName: "A/B Corp", Title: "Filled", Filled: true})
	require.NoError(t, err)

	listings := store.NewListings(db.Pool, time.Second)

	shown, err := New(listings, false).Resolve(ctx, mainIntent("A%2FB%20Corp"))
	require.NoError(t, err)
	assert.Equal(t, Resolved, shown.State)

	hidden, err := New(listings, true).Resolve(ctx, mainIntent("A%2FB%20Corp"))
	require.NoError(t, err)
	assert.Equal(t, NotFound, hidden.State)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "state(9)", State(9).String())
}
