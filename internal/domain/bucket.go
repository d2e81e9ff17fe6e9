package domain

// CatchAllBucket holds every company whose name does not start with an ASCII letter.
const CatchAllBucket = "0-9"

// BucketLabels returns the fixed navigation sequence A..Z, 0-9.
func BucketLabels() []string {
	labels := make([]string, 0, 27)
	for c := 'A'; c <= 'Z'; c++ {
		labels = append(labels, string(c))
	}
	return append(labels, CatchAllBucket)
}

type Bucket struct {
	Label     string    `json:"label"`
	Companies []Company `json:"companies"`
}

// Buckets is always the full label sequence, in order.
type Buckets []Bucket

// Get returns the companies filed under label, or nil for an unknown label.
func (bs Buckets) Get(label string) []Company {
	for _, b := range bs {
		if b.Label == label {
			return b.Companies
		}
	}
	return nil
}

func (bs Buckets) NonEmpty() Buckets {
	out := make(Buckets, 0, len(bs))
	for _, b := range bs {
		if len(b.Companies) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Len counts companies across all buckets.
func (bs Buckets) Len() int {
	n := 0
	for _, b := range bs {
		n += len(b.Companies)
	}
	return n
}
