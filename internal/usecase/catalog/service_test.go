package catalog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	catalogUC "magazine-catalog/internal/usecase/catalog"
)

/*────────────────────  helpers  ────────────────────*/

func newService(t *testing.T) (*catalogUC.Service, *entity.Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	reg := entity.NewRegistry()
	svc := &catalogUC.Service{
		Repo:   reg,
		Logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	return svc, reg, &buf
}

func ptr[T any](v T) *T { return &v }

/*────────────────────  registration  ────────────────────*/

func TestService_RegisterAuthor(t *testing.T) {
	svc, reg, logs := newService(t)
	before := testutil.ToFloat64(metrics.EntitiesCreatedTotal.WithLabelValues(metrics.KindAuthor))

	author, err := svc.RegisterAuthor(context.Background(), "Carry Bradshaw")
	require.NoError(t, err)

	assert.Equal(t, "Carry Bradshaw", author.Name())
	assert.Equal(t, []*entity.Author{author}, reg.Authors())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EntitiesCreatedTotal.WithLabelValues(metrics.KindAuthor)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AuthorsTotal))
	assert.Contains(t, logs.String(), "author registered")
	assert.Contains(t, logs.String(), author.ID().String())
}

func TestService_RegisterMagazine_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		magName  string
		category string
		field    string
		kind     error
	}{
		{"name too short", "A", "Fashion", "name", entity.ErrOutOfRange},
		{"name too long", "New Yorker Plus X", "Fashion", "name", entity.ErrOutOfRange},
		{"empty category", "Vogue", "", "category", entity.ErrOutOfRange},
		{"malformed name", "\xff\xff", "Fashion", "name", entity.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reg, logs := newService(t)
			before := testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues(tt.field))

			m, err := svc.RegisterMagazine(context.Background(), tt.magName, tt.category)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.kind)

			var validationErr *entity.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			assert.Empty(t, reg.Magazines())
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues(tt.field)))
			assert.Contains(t, logs.String(), "catalog write rejected")
		})
	}
}

func TestService_LoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	svc := &catalogUC.Service{Repo: entity.NewRegistry()}
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	_, err := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "author registered")
}

/*────────────────────  publishing  ────────────────────*/

func TestService_Publish(t *testing.T) {
	svc, reg, _ := newService(t)
	ctx := context.Background()

	carry, err := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	require.NoError(t, err)
	vogue, err := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	require.NoError(t, err)

	article, err := svc.Publish(ctx, catalogUC.PublishInput{
		AuthorID:   carry.ID(),
		MagazineID: vogue.ID(),
		Title:      "How to wear a tutu with style",
	})
	require.NoError(t, err)

	assert.Same(t, carry, article.Author())
	assert.Same(t, vogue, article.Magazine())
	assert.Equal(t, []*entity.Article{article}, reg.Articles())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ArticlesTotal))
}

func TestService_Publish_UnknownIDs(t *testing.T) {
	svc, reg, _ := newService(t)
	ctx := context.Background()
	carry, err := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	require.NoError(t, err)
	vogue, err := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      catalogUC.PublishInput
		wantErr error
	}{
		{"unknown author", catalogUC.PublishInput{AuthorID: uuid.New(), MagazineID: vogue.ID()}, catalogUC.ErrAuthorNotFound},
		{"unknown magazine", catalogUC.PublishInput{AuthorID: carry.ID(), MagazineID: uuid.New()}, catalogUC.ErrMagazineNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := svc.Publish(ctx, tt.in)
			assert.Nil(t, article)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, entity.ErrNotFound)
			assert.Empty(t, reg.Articles())
		})
	}
}

/*────────────────────  edits  ────────────────────*/

func TestService_UpdateMagazine(t *testing.T) {
	tests := []struct {
		name         string
		in           func(id uuid.UUID) catalogUC.UpdateMagazineInput
		wantErr      error
		wantName     string
		wantCategory string
	}{
		{
			name: "rename and recategorise",
			in: func(id uuid.UUID) catalogUC.UpdateMagazineInput {
				return catalogUC.UpdateMagazineInput{ID: id, Name: ptr("New Yorker"), Category: ptr("Life Style")}
			},
			wantName:     "New Yorker",
			wantCategory: "Life Style",
		},
		{
			name: "category only",
			in: func(id uuid.UUID) catalogUC.UpdateMagazineInput {
				return catalogUC.UpdateMagazineInput{ID: id, Category: ptr("Life Style")}
			},
			wantName:     "Vogue",
			wantCategory: "Life Style",
		},
		{
			name: "invalid category keeps valid name unapplied",
			in: func(id uuid.UUID) catalogUC.UpdateMagazineInput {
				return catalogUC.UpdateMagazineInput{ID: id, Name: ptr("New Yorker"), Category: ptr("")}
			},
			wantErr:      entity.ErrOutOfRange,
			wantName:     "Vogue",
			wantCategory: "Fashion",
		},
		{
			name: "invalid name",
			in: func(id uuid.UUID) catalogUC.UpdateMagazineInput {
				return catalogUC.UpdateMagazineInput{ID: id, Name: ptr("A")}
			},
			wantErr:      entity.ErrOutOfRange,
			wantName:     "Vogue",
			wantCategory: "Fashion",
		},
		{
			name: "unknown magazine",
			in: func(uuid.UUID) catalogUC.UpdateMagazineInput {
				return catalogUC.UpdateMagazineInput{ID: uuid.New(), Name: ptr("New Yorker")}
			},
			wantErr:      catalogUC.ErrMagazineNotFound,
			wantName:     "Vogue",
			wantCategory: "Fashion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t)
			ctx := context.Background()
			vogue, err := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
			require.NoError(t, err)

			_, err = svc.UpdateMagazine(ctx, tt.in(vogue.ID()))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantName, vogue.Name())
			assert.Equal(t, tt.wantCategory, vogue.Category())
		})
	}
}

func TestService_ReassignArticle(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	carry, _ := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	nathaniel, _ := svc.RegisterAuthor(ctx, "Nathaniel Hawthorne")
	vogue, _ := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	ad, _ := svc.RegisterMagazine(ctx, "AD", "Architecture")

	article, err := svc.Publish(ctx, catalogUC.PublishInput{AuthorID: carry.ID(), MagazineID: vogue.ID(), Title: "Dating life in NYC"})
	require.NoError(t, err)

	_, err = svc.ReassignArticle(ctx, catalogUC.ReassignInput{
		ArticleID:  article.ID(),
		AuthorID:   ptr(nathaniel.ID()),
		MagazineID: ptr(uuid.New()),
	})
	assert.ErrorIs(t, err, catalogUC.ErrMagazineNotFound)
	assert.Same(t, carry, article.Author(), "nothing changes when any ID is unknown")
	assert.Same(t, vogue, article.Magazine())

	_, err = svc.ReassignArticle(ctx, catalogUC.ReassignInput{
		ArticleID:  article.ID(),
		AuthorID:   ptr(nathaniel.ID()),
		MagazineID: ptr(ad.ID()),
	})
	require.NoError(t, err)
	assert.Same(t, nathaniel, article.Author())
	assert.Same(t, ad, article.Magazine())
	assert.Empty(t, carry.Articles())
	assert.Equal(t, []string{"Dating life in NYC"}, ad.ArticleTitles())

	_, err = svc.ReassignArticle(ctx, catalogUC.ReassignInput{ArticleID: uuid.New()})
	assert.ErrorIs(t, err, catalogUC.ErrArticleNotFound)
}

/*────────────────────  queries  ────────────────────*/

func TestService_AuthorProfile(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	carry, _ := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	loner, _ := svc.RegisterAuthor(ctx, "Loner")
	vogue, _ := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	ad, _ := svc.RegisterMagazine(ctx, "AD", "Architecture")
	for _, in := range []catalogUC.PublishInput{
		{AuthorID: carry.ID(), MagazineID: vogue.ID(), Title: "How to wear a tutu with style"},
		{AuthorID: carry.ID(), MagazineID: ad.ID(), Title: "2023 Eccentric Design Trends"},
	} {
		_, err := svc.Publish(ctx, in)
		require.NoError(t, err)
	}

	profile, err := svc.AuthorProfile(ctx, carry.ID())
	require.NoError(t, err)
	assert.Len(t, profile.Articles, 2)
	assert.ElementsMatch(t, []*entity.Magazine{vogue, ad}, profile.Magazines)
	assert.ElementsMatch(t, []string{"Fashion", "Architecture"}, profile.TopicAreas)

	empty, err := svc.AuthorProfile(ctx, loner.ID())
	require.NoError(t, err)
	assert.Empty(t, empty.Articles)
	assert.Nil(t, empty.TopicAreas)

	_, err = svc.AuthorProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, catalogUC.ErrAuthorNotFound)
}

func TestService_Stats(t *testing.T) {
	svc, _, logs := newService(t)
	ctx := context.Background()

	empty := svc.Stats(ctx)
	assert.Nil(t, empty.TopPublisher)
	assert.Empty(t, empty.PerMagazine)

	carry, _ := svc.RegisterAuthor(ctx, "Carry Bradshaw")
	nathaniel, _ := svc.RegisterAuthor(ctx, "Nathaniel Hawthorne")
	vogue, _ := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	ad, _ := svc.RegisterMagazine(ctx, "AD", "Architecture")
	for _, in := range []catalogUC.PublishInput{
		{AuthorID: carry.ID(), MagazineID: vogue.ID(), Title: "How to wear a tutu with style"},
		{AuthorID: carry.ID(), MagazineID: vogue.ID(), Title: "How to be single and happy"},
		{AuthorID: carry.ID(), MagazineID: vogue.ID(), Title: "Dating life in NYC"},
		{AuthorID: nathaniel.ID(), MagazineID: ad.ID(), Title: "2023 Eccentric Design Trends"},
	} {
		_, err := svc.Publish(ctx, in)
		require.NoError(t, err)
	}

	stats := svc.Stats(ctx)
	assert.Equal(t, 2, stats.Authors)
	assert.Equal(t, 2, stats.Magazines)
	assert.Equal(t, 4, stats.Articles)
	assert.Same(t, vogue, stats.TopPublisher)
	require.Len(t, stats.PerMagazine, 2)

	vs := stats.PerMagazine[0]
	assert.Same(t, vogue, vs.Magazine)
	assert.Equal(t, 3, vs.ArticleCount)
	if diff := cmp.Diff([]string{
		"How to wear a tutu with style",
		"How to be single and happy",
		"Dating life in NYC",
	}, vs.Titles); diff != "" {
		t.Errorf("Titles mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []*entity.Author{carry}, vs.Contributors)
	assert.Equal(t, []*entity.Author{carry}, vs.ContributingAuthors)

	as := stats.PerMagazine[1]
	assert.Same(t, ad, as.Magazine)
	assert.Equal(t, 1, as.ArticleCount)
	assert.Empty(t, as.ContributingAuthors)

	assert.Contains(t, logs.String(), "catalog stats computed")
	assert.Contains(t, logs.String(), `"top_publisher":"Vogue"`)
}

/*────────────────────  tracing  ────────────────────*/

func TestService_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	svc, _, _ := newService(t)
	ctx := context.Background()

	vogue, err := svc.RegisterMagazine(ctx, "Vogue", "Fashion")
	require.NoError(t, err)
	_, err = svc.Publish(ctx, catalogUC.PublishInput{AuthorID: uuid.New(), MagazineID: vogue.ID(), Title: "Dating life in NYC"})
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "catalog.RegisterMagazine", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, "catalog.Publish", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}
