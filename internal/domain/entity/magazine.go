package entity

import "github.com/google/uuid"

// Magazine is a named, categorised publication that hosts articles.
// Name and category may change at any time but are validated on every
// write; a rejected write leaves the previous value in place.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	reg      *Registry
}

// ID returns the identifier assigned at construction.
func (m *Magazine) ID() uuid.UUID {
	return m.id
}

// Name returns the current name.
func (m *Magazine) Name() string {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return m.name
}

// SetName replaces the name if it is 2 to 16 characters long.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.reg.mu.Lock()
	m.name = name
	m.reg.mu.Unlock()
	return nil
}

// Category returns the current category.
func (m *Magazine) Category() string {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return m.category
}

// SetCategory replaces the category if it is non-empty.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.reg.mu.Lock()
	m.category = category
	m.reg.mu.Unlock()
	return nil
}

// Articles returns the articles published in m, in creation order.
func (m *Magazine) Articles() []*Article {
	var out []*Article
	m.reg.scan(func(all []*Article) {
		out = filterArticles(all, m.hosts)
	})
	return out
}

// Contributors returns the distinct authors with at least one article in m.
// Callers should rely on membership, not position.
func (m *Magazine) Contributors() []*Author {
	var out []*Author
	m.reg.scan(func(all []*Article) {
		out = distinct(project(filterArticles(all, m.hosts), (*Article).authorRef))
	})
	return out
}

// ArticleTitles returns the titles of m's articles in creation order.
// The result is empty, not nil, when m has no articles.
func (m *Magazine) ArticleTitles() []string {
	var out []string
	m.reg.scan(func(all []*Article) {
		out = project(filterArticles(all, m.hosts), func(x *Article) string { return x.title })
	})
	return out
}

// ContributingAuthors returns the distinct authors with more than two
// articles in m. Counts are per magazine, not global.
func (m *Magazine) ContributingAuthors() []*Author {
	out := make([]*Author, 0)
	m.reg.scan(func(all []*Article) {
		authors := project(filterArticles(all, m.hosts), (*Article).authorRef)

		counts := make(map[*Author]int, len(authors))
		for _, a := range authors {
			counts[a]++
		}
		for _, a := range distinct(authors) {
			if counts[a] > 2 {
				out = append(out, a)
			}
		}
	})
	return out
}

func (m *Magazine) hosts(x *Article) bool {
	return x.magazine == m
}
