package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
)

// PublishInput represents the input parameters for publishing a new article.
type PublishInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// UpdateMagazineInput represents the input parameters for editing a magazine.
// Fields with nil values will not be updated.
type UpdateMagazineInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
}

// ReassignInput represents the input parameters for moving an article to a
// different author and/or magazine. Fields with nil values will not be updated.
type ReassignInput struct {
	ArticleID  uuid.UUID
	AuthorID   *uuid.UUID
	MagazineID *uuid.UUID
}

// AuthorProfile gathers everything derivable about one author.
type AuthorProfile struct {
	Author    *entity.Author
	Articles  []*entity.Article
	Magazines []*entity.Magazine
	// TopicAreas is nil when the author has no articles.
	TopicAreas []string
}

// MagazineStats summarises one magazine.
type MagazineStats struct {
	Magazine            *entity.Magazine
	ArticleCount        int
	Titles              []string
	Contributors        []*entity.Author
	ContributingAuthors []*entity.Author
}

// Stats summarises the whole catalog.
type Stats struct {
	Authors      int
	Magazines    int
	Articles     int
	TopPublisher *entity.Magazine
	// PerMagazine follows magazine creation order.
	PerMagazine []MagazineStats
}

// Service provides catalog use cases.
// It delegates storage and relationship queries to the repository.
// When Logger is nil the logger carried by the context is used.
type Service struct {
	Repo   repository.CatalogRepository
	Logger *slog.Logger
}

// RegisterAuthor creates a new author.
// Returns an *entity.ValidationError if the name is malformed.
func (s *Service) RegisterAuthor(ctx context.Context, name string) (_ *entity.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.RegisterAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	author, err := s.Repo.NewAuthor(name)
	if err != nil {
		s.rejected(ctx, "register author", err)
		return nil, fmt.Errorf("register author: %w", err)
	}

	metrics.RecordEntityCreated(metrics.KindAuthor)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.KindAuthor, author.ID()).
		Info("author registered", slog.String("name", author.Name()))
	return author, nil
}

// RegisterMagazine creates a new magazine.
// Returns an *entity.ValidationError if the name or category is invalid.
func (s *Service) RegisterMagazine(ctx context.Context, name, category string) (_ *entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.RegisterMagazine", attribute.String("magazine.name", name))
	defer func() { tracing.EndSpan(span, err) }()

	magazine, err := s.Repo.NewMagazine(name, category)
	if err != nil {
		s.rejected(ctx, "register magazine", err)
		return nil, fmt.Errorf("register magazine: %w", err)
	}

	metrics.RecordEntityCreated(metrics.KindMagazine)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.KindMagazine, magazine.ID()).
		Info("magazine registered",
			slog.String("name", magazine.Name()),
			slog.String("category", magazine.Category()))
	return magazine, nil
}

// Publish creates an article by an existing author in an existing magazine.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unknown IDs.
func (s *Service) Publish(ctx context.Context, in PublishInput) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.Publish",
		attribute.String("author.id", in.AuthorID.String()),
		attribute.String("magazine.id", in.MagazineID.String()))
	defer func() { tracing.EndSpan(span, err) }()

	author, err := s.author(in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}
	magazine, err := s.magazine(in.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}

	article, err := s.Repo.NewArticle(author, magazine, in.Title)
	if err != nil {
		s.rejected(ctx, "publish article", err)
		return nil, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordEntityCreated(metrics.KindArticle)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.KindArticle, article.ID()).
		Info("article published",
			slog.String("title", article.Title()),
			slog.String("author_id", author.ID().String()),
			slog.String("magazine_id", magazine.ID().String()))
	return article, nil
}

// UpdateMagazine renames and/or recategorises a magazine.
// Every provided value is validated before any is applied, so a rejected
// update leaves the magazine untouched.
func (s *Service) UpdateMagazine(ctx context.Context, in UpdateMagazineInput) (_ *entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.UpdateMagazine", attribute.String("magazine.id", in.ID.String()))
	defer func() { tracing.EndSpan(span, err) }()

	magazine, err := s.magazine(in.ID)
	if err != nil {
		return nil, fmt.Errorf("update magazine: %w", err)
	}

	if in.Name != nil {
		if err := entity.ValidateMagazineName(*in.Name); err != nil {
			s.rejected(ctx, "update magazine", err)
			return nil, fmt.Errorf("update magazine: %w", err)
		}
	}
	if in.Category != nil {
		if err := entity.ValidateCategory(*in.Category); err != nil {
			s.rejected(ctx, "update magazine", err)
			return nil, fmt.Errorf("update magazine: %w", err)
		}
	}

	logger := logging.WithEntity(s.logger(ctx), metrics.KindMagazine, magazine.ID())
	if in.Name != nil {
		if err := magazine.SetName(*in.Name); err != nil {
			return nil, fmt.Errorf("update magazine: %w", err)
		}
		metrics.RecordEntityUpdate(metrics.KindMagazine, "name")
		logger.Info("magazine renamed", slog.String("name", *in.Name))
	}
	if in.Category != nil {
		if err := magazine.SetCategory(*in.Category); err != nil {
			return nil, fmt.Errorf("update magazine: %w", err)
		}
		metrics.RecordEntityUpdate(metrics.KindMagazine, "category")
		logger.Info("magazine recategorised", slog.String("category", *in.Category))
	}
	return magazine, nil
}

// ReassignArticle moves an article to another author and/or magazine.
// All IDs are resolved before anything changes.
func (s *Service) ReassignArticle(ctx context.Context, in ReassignInput) (_ *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.ReassignArticle", attribute.String("article.id", in.ArticleID.String()))
	defer func() { tracing.EndSpan(span, err) }()

	article, err := s.article(in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("reassign article: %w", err)
	}

	var author *entity.Author
	if in.AuthorID != nil {
		if author, err = s.author(*in.AuthorID); err != nil {
			return nil, fmt.Errorf("reassign article: %w", err)
		}
	}
	var magazine *entity.Magazine
	if in.MagazineID != nil {
		if magazine, err = s.magazine(*in.MagazineID); err != nil {
			return nil, fmt.Errorf("reassign article: %w", err)
		}
	}

	logger := logging.WithEntity(s.logger(ctx), metrics.KindArticle, article.ID())
	if author != nil {
		if err := article.SetAuthor(author); err != nil {
			s.rejected(ctx, "reassign article", err)
			return nil, fmt.Errorf("reassign article: %w", err)
		}
		metrics.RecordEntityUpdate(metrics.KindArticle, "author")
		logger.Info("article author changed", slog.String("author_id", author.ID().String()))
	}
	if magazine != nil {
		if err := article.SetMagazine(magazine); err != nil {
			s.rejected(ctx, "reassign article", err)
			return nil, fmt.Errorf("reassign article: %w", err)
		}
		metrics.RecordEntityUpdate(metrics.KindArticle, "magazine")
		logger.Info("article magazine changed", slog.String("magazine_id", magazine.ID().String()))
	}
	return article, nil
}

// AuthorProfile returns the articles, magazines and topic areas of an author.
// Returns ErrAuthorNotFound for an unknown ID.
func (s *Service) AuthorProfile(ctx context.Context, id uuid.UUID) (_ *AuthorProfile, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.AuthorProfile", attribute.String("author.id", id.String()))
	defer func() { tracing.EndSpan(span, err) }()

	author, err := s.author(id)
	if err != nil {
		return nil, fmt.Errorf("author profile: %w", err)
	}

	profile := &AuthorProfile{
		Author:     author,
		Articles:   author.Articles(),
		Magazines:  author.Magazines(),
		TopicAreas: author.TopicAreas(),
	}
	s.logger(ctx).Debug("author profile computed",
		slog.String("author_id", id.String()),
		slog.Int("articles", len(profile.Articles)))
	return profile, nil
}

// Stats computes aggregate statistics for the whole catalog.
func (s *Service) Stats(ctx context.Context) Stats {
	ctx, span := tracing.StartSpan(ctx, "catalog.Stats")
	defer span.End()

	start := time.Now()

	magazines := s.Repo.Magazines()
	stats := Stats{
		Authors:      len(s.Repo.Authors()),
		Magazines:    len(magazines),
		Articles:     len(s.Repo.Articles()),
		TopPublisher: s.Repo.TopPublisher(),
		PerMagazine:  make([]MagazineStats, 0, len(magazines)),
	}
	for _, m := range magazines {
		titles := m.ArticleTitles()
		stats.PerMagazine = append(stats.PerMagazine, MagazineStats{
			Magazine:            m,
			ArticleCount:        len(titles),
			Titles:              titles,
			Contributors:        m.Contributors(),
			ContributingAuthors: m.ContributingAuthors(),
		})
	}

	elapsed := time.Since(start)
	metrics.RecordStatsDuration(elapsed)

	attrs := []any{
		slog.Int("authors", stats.Authors),
		slog.Int("magazines", stats.Magazines),
		slog.Int("articles", stats.Articles),
		slog.Duration("elapsed", elapsed),
	}
	if stats.TopPublisher != nil {
		attrs = append(attrs, slog.String("top_publisher", stats.TopPublisher.Name()))
	}
	s.logger(ctx).Debug("catalog stats computed", attrs...)
	return stats
}

func (s *Service) author(id uuid.UUID) (*entity.Author, error) {
	a, err := s.Repo.AuthorByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthorNotFound, err)
	}
	return a, nil
}

func (s *Service) magazine(id uuid.UUID) (*entity.Magazine, error) {
	m, err := s.Repo.MagazineByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMagazineNotFound, err)
	}
	return m, nil
}

func (s *Service) article(id uuid.UUID) (*entity.Article, error) {
	a, err := s.Repo.ArticleByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArticleNotFound, err)
	}
	return a, nil
}

// rejected records and logs a validation failure.
func (s *Service) rejected(ctx context.Context, op string, err error) {
	field := ""
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		field = validationErr.Field
	}
	metrics.RecordValidationFailure(field)
	s.logger(ctx).Warn("catalog write rejected",
		slog.String("operation", op),
		slog.String("field", field),
		slog.Any("error", err))
}

func (s *Service) refreshSize() {
	metrics.UpdateRegistrySize(len(s.Repo.Authors()), len(s.Repo.Magazines()), len(s.Repo.Articles()))
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}
