package entity

import (
	"sync"

	"github.com/google/uuid"
)

// Registry owns the ordered, append-only collections of every Author, Magazine
// and Article created through it. Relationship queries scan these collections
// on every call; nothing is cached on the entities themselves.
//
// A single RWMutex guards appends, reference updates and scans together, so a
// scan never observes a half-finished append.
type Registry struct {
	mu        sync.RWMutex
	authors   []*Author
	magazines []*Magazine
	articles  []*Article
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewAuthor validates name and registers a new Author.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := ValidateText("name", name); err != nil {
		return nil, err
	}

	a := &Author{id: uuid.New(), name: name, reg: r}

	r.mu.Lock()
	r.authors = append(r.authors, a)
	r.mu.Unlock()
	return a, nil
}

// NewMagazine validates name and category and registers a new Magazine.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	m := &Magazine{id: uuid.New(), name: name, category: category, reg: r}

	r.mu.Lock()
	r.magazines = append(r.magazines, m)
	r.mu.Unlock()
	return m, nil
}

// NewArticle validates title, author and magazine, in that order, and
// registers a new Article. Nothing is registered when validation fails.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := ValidateText("title", title); err != nil {
		return nil, err
	}
	if err := r.checkAuthor(author); err != nil {
		return nil, err
	}
	if err := r.checkMagazine(magazine); err != nil {
		return nil, err
	}

	a := &Article{id: uuid.New(), title: title, author: author, magazine: magazine, reg: r}

	r.mu.Lock()
	r.articles = append(r.articles, a)
	r.mu.Unlock()
	return a, nil
}

// Authors returns every registered author in creation order.
func (r *Registry) Authors() []*Author {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Author(nil), r.authors...)
}

// Magazines returns every registered magazine in creation order.
func (r *Registry) Magazines() []*Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Magazine(nil), r.magazines...)
}

// Articles returns every registered article in creation order.
func (r *Registry) Articles() []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Article(nil), r.articles...)
}

// AuthorByID returns the author with the given ID or ErrNotFound.
func (r *Registry) AuthorByID(id uuid.UUID) (*Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.authors {
		if a.id == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// MagazineByID returns the magazine with the given ID or ErrNotFound.
func (r *Registry) MagazineByID(id uuid.UUID) (*Magazine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.magazines {
		if m.id == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

// ArticleByID returns the article with the given ID or ErrNotFound.
func (r *Registry) ArticleByID(id uuid.UUID) (*Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.id == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// TopPublisher returns the magazine with the most articles, or nil when no
// article exists. When several magazines share the maximum count the one
// created first wins.
func (r *Registry) TopPublisher() *Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.articles) == 0 {
		return nil
	}

	counts := make(map[*Magazine]int, len(r.magazines))
	for _, a := range r.articles {
		counts[a.magazine]++
	}

	var top *Magazine
	best := -1
	for _, m := range r.magazines {
		if c := counts[m]; c > best {
			top, best = m, c
		}
	}
	return top
}

// Reset empties all three collections. Entities created before the reset
// keep working but no longer appear in any query result.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authors = nil
	r.magazines = nil
	r.articles = nil
}

// scan runs fn over the article collection under the read lock.
// fn must not call back into locking methods of the registry.
func (r *Registry) scan(fn func(articles []*Article)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.articles)
}

func (r *Registry) checkAuthor(a *Author) error {
	if a == nil {
		return typeError("author", "must be an Author")
	}
	if a.reg != r {
		return typeError("author", "belongs to a different registry")
	}
	return nil
}

func (r *Registry) checkMagazine(m *Magazine) error {
	if m == nil {
		return typeError("magazine", "must be a Magazine")
	}
	if m.reg != r {
		return typeError("magazine", "belongs to a different registry")
	}
	return nil
}
