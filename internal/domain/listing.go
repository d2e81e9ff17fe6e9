package domain

const (
	PostTypeJobListing = "job_listing"

	StatusPublish = "publish"
	StatusDraft   = "draft"
)

// Listing is a job posting as stored. The directory only ever reads these.
type Listing struct {
	ID          int64  `json:"id"`
	PostType    string `json:"postType"`
	Status      string `json:"status"`
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Filled      bool   `json:"filled"`
	Date        string `json:"date"`
}

// ListingQuery is a fully specified listing predicate.
// An empty CompanyName means no company filter.
type ListingQuery struct {
	PostType      string
	Status        string
	CompanyName   string
	ExcludeFilled bool
	// Limit caps ListListings. Zero means the store default, NoLimit means every row.
	Limit int
}

const NoLimit = -1

// OpenListingsFor is the predicate behind a company's open listing count.
func OpenListingsFor(company string) ListingQuery {
	return ListingQuery{
		PostType:      PostTypeJobListing,
		Status:        StatusPublish,
		CompanyName:   company,
		ExcludeFilled: true,
	}
}
