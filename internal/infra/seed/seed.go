// Package seed loads catalog fixtures described in YAML into a registry.
//
// Entities are referenced by document-local keys:
//
//	authors:
//	  - key: carry
//	    name: Carry Bradshaw
//	magazines:
//	  - key: vogue
//	    name: Vogue
//	    category: Fashion
//	articles:
//	  - author: carry
//	    magazine: vogue
//	    title: Dating life in NYC
//
// A document is validated as a whole before anything is registered.
package seed

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/entity"
)

// Document is the YAML representation of a catalog.
type Document struct {
	Authors   []AuthorSpec   `yaml:"authors"`
	Magazines []MagazineSpec `yaml:"magazines"`
	Articles  []ArticleSpec  `yaml:"articles"`
}

// AuthorSpec describes one author.
type AuthorSpec struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// MagazineSpec describes one magazine.
type MagazineSpec struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSpec describes one article by author and magazine key.
type ArticleSpec struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Catalog holds the entities created by Load, indexed by document key.
type Catalog struct {
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	// Articles follows document order.
	Articles []*entity.Article
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &doc, nil
}

// Validate checks keys and field values without touching any registry.
func (d *Document) Validate() error {
	authors := make(map[string]struct{}, len(d.Authors))
	for i, a := range d.Authors {
		if err := checkKey(authors, "authors", i, a.Key); err != nil {
			return err
		}
		if err := entity.ValidateText("name", a.Name); err != nil {
			return fmt.Errorf("authors[%d]: %w", i, err)
		}
	}

	magazines := make(map[string]struct{}, len(d.Magazines))
	for i, m := range d.Magazines {
		if err := checkKey(magazines, "magazines", i, m.Key); err != nil {
			return err
		}
		if err := entity.ValidateMagazineName(m.Name); err != nil {
			return fmt.Errorf("magazines[%d]: %w", i, err)
		}
		if err := entity.ValidateCategory(m.Category); err != nil {
			return fmt.Errorf("magazines[%d]: %w", i, err)
		}
	}

	for i, a := range d.Articles {
		if _, ok := authors[a.Author]; !ok {
			return fmt.Errorf("articles[%d]: author %q: %w", i, a.Author, entity.ErrNotFound)
		}
		if _, ok := magazines[a.Magazine]; !ok {
			return fmt.Errorf("articles[%d]: magazine %q: %w", i, a.Magazine, entity.ErrNotFound)
		}
		if err := entity.ValidateText("title", a.Title); err != nil {
			return fmt.Errorf("articles[%d]: %w", i, err)
		}
	}
	return nil
}

// Apply validates the document and registers every entity in reg.
// A rejected document matches entity.ErrValidationFailed.
func (d *Document) Apply(reg *entity.Registry) (*Catalog, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrValidationFailed, err)
	}

	c := &Catalog{
		Authors:   make(map[string]*entity.Author, len(d.Authors)),
		Magazines: make(map[string]*entity.Magazine, len(d.Magazines)),
		Articles:  make([]*entity.Article, 0, len(d.Articles)),
	}
	for _, a := range d.Authors {
		author, err := reg.NewAuthor(a.Name)
		if err != nil {
			return nil, fmt.Errorf("author %q: %w", a.Key, err)
		}
		c.Authors[a.Key] = author
	}
	for _, m := range d.Magazines {
		magazine, err := reg.NewMagazine(m.Name, m.Category)
		if err != nil {
			return nil, fmt.Errorf("magazine %q: %w", m.Key, err)
		}
		c.Magazines[m.Key] = magazine
	}
	for i, a := range d.Articles {
		article, err := reg.NewArticle(c.Authors[a.Author], c.Magazines[a.Magazine], a.Title)
		if err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		c.Articles = append(c.Articles, article)
	}
	return c, nil
}

// Load parses, validates and applies a YAML document to reg.
func Load(reg *entity.Registry, r io.Reader) (*Catalog, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return doc.Apply(reg)
}

func checkKey(seen map[string]struct{}, section string, i int, key string) error {
	if key == "" {
		return fmt.Errorf("%s[%d]: key is required: %w", section, i, entity.ErrInvalidInput)
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("%s[%d]: duplicate key %q: %w", section, i, key, entity.ErrInvalidInput)
	}
	seen[key] = struct{}{}
	return nil
}
