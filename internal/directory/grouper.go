package directory

import (
	"unicode/utf8"

	"companies-engine/internal/domain"
)

// KeyFunc maps a company name to its bucket label.
type KeyFunc func(name string) string

// BucketKey files a name under the uppercase form of its first character when
// that character is an ASCII letter, and under "0-9" otherwise. The first
// character is decoded as a rune so multi-byte names never split mid-sequence.
func BucketKey(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	switch {
	case r >= 'A' && r <= 'Z':
		return string(r)
	case r >= 'a' && r <= 'z':
		return string(r - 'a' + 'A')
	default:
		return domain.CatchAllBucket
	}
}

type Grouper struct {
	// KeyFn overrides BucketKey. Labels outside A..Z fall into "0-9".
	KeyFn KeyFunc
}

func NewGrouper() *Grouper {
	return &Grouper{KeyFn: BucketKey}
}

// Group files companies into the full A..Z, 0-9 sequence. Input order is kept
// inside each bucket, so name-sorted input gives name-sorted buckets.
func (g *Grouper) Group(companies []domain.Company) domain.Buckets {
	keyFn := BucketKey
	if g != nil && g.KeyFn != nil {
		keyFn = g.KeyFn
	}

	labels := domain.BucketLabels()
	index := make(map[string]int, len(labels))
	out := make(domain.Buckets, len(labels))
	for i, l := range labels {
		index[l] = i
		out[i] = domain.Bucket{Label: l, Companies: []domain.Company{}}
	}
	catchAll := index[domain.CatchAllBucket]

	for _, c := range companies {
		if c.Name == "" {
			continue
		}
		i, ok := index[keyFn(c.Name)]
		if !ok {
			i = catchAll
		}
		out[i].Companies = append(out[i].Companies, c)
	}
	return out
}
