package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"companies-engine/internal/domain"
)

const defaultListLimit = 500

// DistinctCompanyNames returns each non-empty company name once, case-insensitively
// ordered. The binary tie-break keeps "acme" and "Acme" in a stable order.
func DistinctCompanyNames(ctx context.Context, db *sql.DB, postType, status string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
SELECT company_name
FROM listings
WHERE post_type = ?
  AND status = ?
  AND company_name != ''
GROUP BY company_name
ORDER BY company_name COLLATE NOCASE ASC, company_name ASC;
`, postType, status)
	if err != nil {
		return nil, fmt.Errorf("distinct company names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func CountListings(ctx context.Context, db *sql.DB, q domain.ListingQuery) (int, error) {
	where, args := whereClause(q)
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings `+where+`;`, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

func ListListings(ctx context.Context, db *sql.DB, q domain.ListingQuery) ([]domain.Listing, error) {
	limit := q.Limit
	switch {
	case limit == domain.NoLimit:
		// SQLite treats a negative LIMIT as unbounded.
	case limit <= 0:
		limit = defaultListLimit
	}
	where, args := whereClause(q)
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, `
SELECT id, post_type, status, company_name, title, location, url, filled, date
FROM listings
`+where+`
ORDER BY date DESC, id DESC
LIMIT ?;
`, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var filled int
		if err := rows.Scan(
			&l.ID,
			&l.PostType,
			&l.Status,
			&l.CompanyName,
			&l.Title,
			&l.Location,
			&l.URL,
			&filled,
			&l.Date,
		); err != nil {
			return nil, err
		}
		l.Filled = filled == 1
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// whereClause renders q as a WHERE clause. Only fixed column names are emitted;
// all values are bound.
func whereClause(q domain.ListingQuery) (string, []any) {
	var conds []string
	var args []any
	if q.PostType != "" {
		conds = append(conds, "post_type = ?")
		args = append(args, q.PostType)
	}
	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, q.Status)
	}
	if q.CompanyName != "" {
		conds = append(conds, "company_name = ?")
		args = append(args, q.CompanyName)
	}
	if q.ExcludeFilled {
		conds = append(conds, "filled != 1")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// GetListing returns one listing by id, or ErrListingNotFound.
func GetListing(ctx context.Context, db *sql.DB, id int64) (domain.Listing, error) {
	var l domain.Listing
	var filled int
	err := db.QueryRowContext(ctx, `
SELECT id, post_type, status, company_name, title, location, url, filled, date
FROM listings
WHERE id = ?;
`, id).Scan(&l.ID, &l.PostType, &l.Status, &l.CompanyName, &l.Title, &l.Location, &l.URL, &filled, &l.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return domain.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	l.Filled = filled == 1
	return l, nil
}
