package domain

import "strconv"

// Company is derived from listings on every directory request.
type Company struct {
	Name             string `json:"name"`
	OpenListingCount int    `json:"open_listings"`
}

// Label is the "{name} ({count})" text shown in the directory.
func (c Company) Label() string {
	return c.Name + " (" + strconv.Itoa(c.OpenListingCount) + ")"
}
