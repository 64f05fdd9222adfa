// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and the Article join entity, the Registry that
// owns every instance, and the domain-specific errors raised by validation.
package entity

import "github.com/google/uuid"

// Article binds exactly one Author to exactly one Magazine under a title.
// The title is fixed for the article's life; author and magazine may be
// reassigned to other entities of the same registry.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
	reg      *Registry
}

// ID returns the identifier assigned at construction.
func (a *Article) ID() uuid.UUID {
	return a.id
}

// Title returns the article title.
func (a *Article) Title() string {
	return a.title
}

// SetTitle always fails: a title cannot change.
func (a *Article) SetTitle(string) error {
	return immutableError("title")
}

// Author returns the current author.
func (a *Article) Author() *Author {
	a.reg.mu.RLock()
	defer a.reg.mu.RUnlock()
	return a.author
}

// SetAuthor reassigns the article to author.
func (a *Article) SetAuthor(author *Author) error {
	if err := a.reg.checkAuthor(author); err != nil {
		return err
	}
	a.reg.mu.Lock()
	a.author = author
	a.reg.mu.Unlock()
	return nil
}

// Magazine returns the current magazine.
func (a *Article) Magazine() *Magazine {
	a.reg.mu.RLock()
	defer a.reg.mu.RUnlock()
	return a.magazine
}

// SetMagazine moves the article to magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := a.reg.checkMagazine(magazine); err != nil {
		return err
	}
	a.reg.mu.Lock()
	a.magazine = magazine
	a.reg.mu.Unlock()
	return nil
}

// authorRef reads the author without locking; callers hold the registry lock.
func (a *Article) authorRef() *Author {
	return a.author
}
