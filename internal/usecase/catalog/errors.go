// Package catalog provides use cases for managing authors, magazines and articles.
// It implements registration, publishing, edits and aggregate statistics on top of
// the catalog repository, and records logs and metrics for every operation.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
// Each is returned wrapped together with entity.ErrNotFound.
var (
	// ErrAuthorNotFound indicates that no author has the requested ID.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that no magazine has the requested ID.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrArticleNotFound indicates that no article has the requested ID.
	ErrArticleNotFound = errors.New("article not found")
)
