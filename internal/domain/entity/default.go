package entity

import "sync"

// Process-wide registry used by the package-level constructors.
var (
	defaultMu       sync.Mutex
	defaultRegistry = NewRegistry()
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. A nil argument installs a fresh empty one.
func SetDefault(r *Registry) {
	if r == nil {
		r = NewRegistry()
	}
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
}

// ResetDefault clears the process-wide registry. Tests call it between scenarios.
func ResetDefault() {
	Default().Reset()
}

// NewAuthor registers an author in the default registry.
func NewAuthor(name string) (*Author, error) {
	return Default().NewAuthor(name)
}

// NewMagazine registers a magazine in the default registry.
func NewMagazine(name, category string) (*Magazine, error) {
	return Default().NewMagazine(name, category)
}

// NewArticle registers an article in the default registry.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	return Default().NewArticle(author, magazine, title)
}

// TopPublisher reports the top publisher of the default registry.
func TopPublisher() *Magazine {
	return Default().TopPublisher()
}
