package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"companies-engine/internal/apperr"
	"companies-engine/internal/domain"
)

const dateLayout = "2006-01-02 15:04:05"

var ErrListingNotFound = errors.New("listing not found")

type ListingInsert struct {
	PostType    string
	Status      string
	CompanyName string
	Title       string
	Location    string
	URL         string
	Filled      bool
	Date        string
}

// InsertListing cleans whitespace in the text fields, canonicalizes the URL
// and fills in post type, status and date when they are empty.
func InsertListing(ctx context.Context, db *sql.DB, in ListingInsert) (domain.Listing, error) {
	in.CompanyName = cleanText(in.CompanyName)
	in.Title = cleanText(in.Title)
	in.Location = normalizeLocation(in.Location)
	in.URL = canonicalURL(in.URL)
	if in.Title == "" {
		return domain.Listing{}, apperr.Validation("insert listing: title is required")
	}
	if in.PostType == "" {
		in.PostType = domain.PostTypeJobListing
	}
	if in.Status == "" {
		in.Status = domain.StatusPublish
	}
	if in.Date == "" {
		in.Date = time.Now().UTC().Format(dateLayout)
	}

	res, err := db.ExecContext(ctx, `
INSERT INTO listings(post_type, status, company_name, title, location, url, filled, date)
VALUES(?,?,?,?,?,?,?,?);`,
		in.PostType, in.Status, in.CompanyName, in.Title, in.Location, in.URL, boolInt(in.Filled), in.Date,
	)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	id, _ := res.LastInsertId()

	return domain.Listing{
		ID:          id,
		PostType:    in.PostType,
		Status:      in.Status,
		CompanyName: in.CompanyName,
		Title:       in.Title,
		Location:    in.Location,
		URL:         in.URL,
		Filled:      in.Filled,
		Date:        in.Date,
	}, nil
}

func SetFilled(ctx context.Context, db *sql.DB, id int64, filled bool) error {
	res, err := db.ExecContext(ctx, `UPDATE listings SET filled = ? WHERE id = ?;`, boolInt(filled), id)
	if err != nil {
		return fmt.Errorf("set filled: %w", err)
	}
	return requireOneRow(res)
}

func SetStatus(ctx context.Context, db *sql.DB, id int64, status string) error {
	res, err := db.ExecContext(ctx, `UPDATE listings SET status = ? WHERE id = ?;`, status, id)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return requireOneRow(res)
}

func DeleteListing(ctx context.Context, db *sql.DB, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return requireOneRow(res)
}

// CleanupOldListings drops listings dated before now-age.
func CleanupOldListings(ctx context.Context, db *sql.DB, age time.Duration) (deleted int64, err error) {
	cutoff := time.Now().UTC().Add(-age).Format(dateLayout)
	res, err := db.ExecContext(ctx, `DELETE FROM listings WHERE date < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old listings: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// SeedListings inserts a small fixed data set for local use.
func SeedListings(ctx context.Context, db *sql.DB) ([]domain.Listing, error) {
	seed := []ListingInsert{
		{CompanyName: "Zeta Corp", Title: "SRE / Platform Engineer", Location: "Dallas-Fort Worth, TX", URL: "https://example.com/zeta/sre"},
		{CompanyName: "Zeta Corp", Title: "Backend Engineer (Go)", Location: "Remote", URL: "https://example.com/zeta/go"},
		{CompanyName: "Alpha Inc", Title: "Data Engineer", Location: "Austin, TX", URL: "https://example.com/alpha/data"},
		{CompanyName: "Alpha Inc", Title: "Support Lead", Location: "Austin, TX", URL: "https://example.com/alpha/support", Filled: true},
		{CompanyName: "7 Eleven", Title: "Store Systems Developer", Location: "Irving, TX", URL: "https://example.com/7eleven/dev"},
		{CompanyName: "Acme & Co", Title: "Product Designer", Location: "Remote", URL: "https://example.com/acme/design"},
		{CompanyName: "北京公司", Title: "Localization Engineer", Location: "Beijing", URL: "https://example.com/beijing/l10n"},
		{CompanyName: "Ghost LLC", Title: "Draft Role", Status: domain.StatusDraft},
	}

	out := make([]domain.Listing, 0, len(seed))
	for _, in := range seed {
		l, err := InsertListing(ctx, db, in)
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrListingNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
