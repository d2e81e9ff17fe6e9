// Package mocks provides gomock implementations of the ports used by the directory core.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=listing_store_mock.go companies-engine/internal/ports ListingStore
