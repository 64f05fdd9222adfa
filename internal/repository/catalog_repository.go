package repository

import (
	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// CatalogRepository is the registry the catalog use cases operate on.
// *entity.Registry satisfies it.
type CatalogRepository interface {
	// NewAuthor, NewMagazine and NewArticle validate and register a new entity.
	// A validation failure registers nothing and returns an *entity.ValidationError.
	NewAuthor(name string) (*entity.Author, error)
	NewMagazine(name, category string) (*entity.Magazine, error)
	NewArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error)

	// Authors, Magazines and Articles return snapshots in creation order.
	Authors() []*entity.Author
	Magazines() []*entity.Magazine
	Articles() []*entity.Article

	// AuthorByID, MagazineByID and ArticleByID return entity.ErrNotFound for unknown IDs.
	AuthorByID(id uuid.UUID) (*entity.Author, error)
	MagazineByID(id uuid.UUID) (*entity.Magazine, error)
	ArticleByID(id uuid.UUID) (*entity.Article, error)

	// TopPublisher returns the magazine with the most articles, or nil when there are none.
	TopPublisher() *entity.Magazine
}

var _ CatalogRepository = (*entity.Registry)(nil)
