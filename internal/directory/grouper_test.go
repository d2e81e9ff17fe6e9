package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companies-engine/internal/domain"
)

func TestBucketKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme", "A"},
		{"acme", "A"},
		{"zeta", "Z"},
		{"3M", domain.CatchAllBucket},
		{"42 Studios", domain.CatchAllBucket},
		{"&Partners", domain.CatchAllBucket},
		{"北京公司", domain.CatchAllBucket},
		{"Ärzte GmbH", domain.CatchAllBucket},
		{"", domain.CatchAllBucket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketKey(tt.name))
		})
	}
}

func TestGroupSpansFullLabelSequence(t *testing.T) {
	got := NewGrouper().Group(nil)
	require.Len(t, got, 27)
	for i, label := range domain.BucketLabels() {
		assert.Equal(t, label, got[i].Label)
		assert.NotNil(t, got[i].Companies)
		assert.Empty(t, got[i].Companies)
	}
}

func TestGroupEveryCompanyInExactlyOneBucket(t *testing.T) {
	companies := []domain.Company{
		{Name: "3M", OpenListingCount: 1},
		{Name: "42 Studios", OpenListingCount: 2},
		{Name: "Acme", OpenListingCount: 1},
		{Name: "acme", OpenListingCount: 1},
		{Name: "Beta", OpenListingCount: 5},
		{Name: "北京公司", OpenListingCount: 1},
	}

	got := NewGrouper().Group(companies)
	assert.Equal(t, len(companies), got.Len())

	for _, c := range companies {
		hits := 0
		for _, b := range got {
			for _, bc := range b.Companies {
				if bc == c {
					hits++
					assert.Equal(t, BucketKey(c.Name), b.Label)
				}
			}
		}
		assert.Equal(t, 1, hits, "company %q", c.Name)
	}

	assert.Equal(t, []domain.Company{{Name: "Acme", OpenListingCount: 1}, {Name: "acme", OpenListingCount: 1}}, got.Get("A"))
	assert.Equal(t, []string{"3M", "42 Studios", "北京公司"}, names(got.Get(domain.CatchAllBucket)))
}

func TestGroupKeepsInputOrder(t *testing.T) {
	companies := []domain.Company{
		{Name: "Aardvark", OpenListingCount: 1},
		{Name: "Alpha", OpenListingCount: 1},
		{Name: "Azure", OpenListingCount: 1},
	}
	got := NewGrouper().Group(companies)
	assert.Equal(t, []string{"Aardvark", "Alpha", "Azure"}, names(got.Get("A")))
}

func TestGroupSkipsEmptyName(t *testing.T) {
	got := NewGrouper().Group([]domain.Company{{Name: "", OpenListingCount: 1}})
	assert.Zero(t, got.Len())
}

func TestGroupCustomKeyFunc(t *testing.T) {
	g := &Grouper{KeyFn: func(name string) string {
		if name == "Override" {
			return "Z"
		}
		return "not-a-label"
	}}

	got := g.Group([]domain.Company{{Name: "Override", OpenListingCount: 1}, {Name: "Acme", OpenListingCount: 1}})
	assert.Equal(t, []string{"Override"}, names(got.Get("Z")))
	assert.Equal(t, []string{"Acme"}, names(got.Get(domain.CatchAllBucket)))
}

func TestNilGrouperUsesDefaultKey(t *testing.T) {
	var g *Grouper
	got := g.Group([]domain.Company{{Name: "beta", OpenListingCount: 1}})
	assert.Equal(t, []string{"beta"}, names(got.Get("B")))
}

func names(cs []domain.Company) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}
