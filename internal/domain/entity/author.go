package entity

import "github.com/google/uuid"

// Author is a named party that writes articles.
// The name is fixed at construction. An author keeps no list of its
// articles; every relationship is derived from the article registry.
type Author struct {
	id   uuid.UUID
	name string
	reg  *Registry
}

// ID returns the identifier assigned at construction.
func (a *Author) ID() uuid.UUID {
	return a.id
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// SetName always fails: an author's name cannot change.
func (a *Author) SetName(string) error {
	return immutableError("name")
}

// Articles returns the articles written by a, in creation order.
func (a *Author) Articles() []*Article {
	var out []*Article
	a.reg.scan(func(all []*Article) {
		out = filterArticles(all, a.wrote)
	})
	return out
}

// Magazines returns the distinct magazines a has written for.
// Callers should rely on membership, not position.
func (a *Author) Magazines() []*Magazine {
	var out []*Magazine
	a.reg.scan(func(all []*Article) {
		mine := filterArticles(all, a.wrote)
		out = distinct(project(mine, func(x *Article) *Magazine { return x.magazine }))
	})
	return out
}

// AddArticle creates an article by a for magazine.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return a.reg.NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines a has written
// for, or nil when a has no articles.
func (a *Author) TopicAreas() []string {
	var out []string
	a.reg.scan(func(all []*Article) {
		mine := filterArticles(all, a.wrote)
		if len(mine) == 0 {
			return
		}
		out = distinct(project(mine, func(x *Article) string { return x.magazine.category }))
	})
	return out
}

func (a *Author) wrote(x *Article) bool {
	return x.author == a
}
