package domain

import "errors"

var (
	// ErrNoResults is returned when a pricing run completes but every
	// category failed or yielded nothing. Distinct from a run error: the
	// caller should render "no results, refine your terms" instead of an
	// empty table.
	ErrNoResults = errors.New("no results found")

	// ErrSearchFailed is returned when a marketplace search for one
	// category could not be completed
	ErrSearchFailed = errors.New("marketplace search failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownProfile is returned when a requested build profile does
	// not exist in the catalog
	ErrUnknownProfile = errors.New("unknown build profile")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
