package types

import "errors"

// Domain errors shared across the fetch and storage layers
var (
	// ErrNotFound indicates a package or document does not exist in the
	// registry or local store.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedEcosystem indicates a request named an ecosystem the
	// server has no fetcher for.
	ErrUnsupportedEcosystem = errors.New("unsupported ecosystem")

	// ErrEmptyPackageName indicates a request with a missing package name.
	ErrEmptyPackageName = errors.New("package name cannot be empty")
)
