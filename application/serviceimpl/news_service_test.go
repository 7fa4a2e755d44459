package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
)

// fakeNewsRepo is an in-memory NewsRepository.
type fakeNewsRepo struct {
	items map[uuid.UUID]*models.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{items: make(map[uuid.UUID]*models.News)}
}

func (f *fakeNewsRepo) Create(_ context.Context, news *models.News) error {
	news.ID = uuid.New()
	cp := *news
	f.items[news.ID] = &cp
	return nil
}

func (f *fakeNewsRepo) Update(_ context.Context, id uuid.UUID, news *models.News) error {
	existing, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Title = news.Title
	existing.Content = news.Content
	existing.Slug = news.Slug
	existing.Excerpt = news.Excerpt
	existing.ThumbnailURL = news.ThumbnailURL
	existing.Category = news.Category
	existing.Status = news.Status
	existing.PublishedAt = news.PublishedAt
	return nil
}

func (f *fakeNewsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeNewsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.News, error) {
	news, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *news
	return &cp, nil
}

func (f *fakeNewsRepo) GetPublishedBySlug(_ context.Context, slug string) (*models.News, error) {
	for _, news := range f.items {
		if news.Slug == slug && news.Status == models.NewsStatusPublished {
			cp := *news
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNewsRepo) List(_ context.Context, status *models.NewsStatus, offset, limit int) ([]models.News, int64, error) {
	out := []models.News{}
	for _, news := range f.items {
		if status != nil && news.Status != *status {
			continue
		}
		out = append(out, *news)
	}
	return out, int64(len(out)), nil
}

func (f *fakeNewsRepo) ListPublished(_ context.Context, offset, limit int) ([]models.News, int64, error) {
	out := []models.News{}
	for _, news := range f.items {
		if news.Status == models.NewsStatusPublished {
			out = append(out, *news)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	return out, int64(len(out)), nil
}

func (f *fakeNewsRepo) SlugExists(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for id, news := range f.items {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if news.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func validNewsRequest() *dto.NewsRequest {
	return &dto.NewsRequest{
		Title:        "Pembangunan Jalan Desa Dimulai",
		Content:      "<p>" + strings.Repeat("a", 120) + "</p>",
		Category:     "pembangunan",
		Status:       "draft",
		ThumbnailURL: "https://cdn.example.com/news-images/thumb.jpg",
	}
}

func TestNewsCreate(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("slug and excerpt are derived", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		got, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)
		assert.Equal(t, "pembangunan-jalan-desa-dimulai", got.Slug)
		assert.NotContains(t, got.Excerpt, "<p>")
		assert.Equal(t, "draft", got.Status)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("duplicate title gets a numbered slug", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		first, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)
		second, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)
		third, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)

		assert.Equal(t, "pembangunan-jalan-desa-dimulai", first.Slug)
		assert.Equal(t, "pembangunan-jalan-desa-dimulai-2", second.Slug)
		assert.Equal(t, "pembangunan-jalan-desa-dimulai-3", third.Slug)
	})

	t.Run("publishing at create sets published_at", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		req := validNewsRequest()
		req.Status = "published"

		got, err := svc.Create(ctx, author, req)
		require.NoError(t, err)
		require.NotNil(t, got.PublishedAt)
	})

	t.Run("content under stripped minimum is rejected", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		req := validNewsRequest()
		req.Content = "<p><strong>" + strings.Repeat("a", 99) + "</strong></p>"

		_, err := svc.Create(ctx, author, req)
		assert.Error(t, err)
	})
}

func TestNewsPublishOnce(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("first publish sets the timestamp, later saves keep it", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		draft, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)
		require.Nil(t, draft.PublishedAt)

		req := validNewsRequest()
		req.Status = "published"
		published, err := svc.Update(ctx, draft.ID, req)
		require.NoError(t, err)
		require.NotNil(t, published.PublishedAt)
		firstPublish := *published.PublishedAt

		// Edit the published article.
		req.Content = "<p>" + strings.Repeat("b", 150) + "</p>"
		edited, err := svc.Update(ctx, draft.ID, req)
		require.NoError(t, err)
		require.NotNil(t, edited.PublishedAt)
		assert.Equal(t, firstPublish, *edited.PublishedAt)
	})

	t.Run("unpublishing clears the timestamp", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		req := validNewsRequest()
		req.Status = "published"
		article, err := svc.Create(ctx, author, req)
		require.NoError(t, err)
		require.NotNil(t, article.PublishedAt)

		req.Status = "draft"
		unpublished, err := svc.Update(ctx, article.ID, req)
		require.NoError(t, err)
		assert.Nil(t, unpublished.PublishedAt)

		req.Status = "published"
		republished, err := svc.Update(ctx, article.ID, req)
		require.NoError(t, err)
		require.NotNil(t, republished.PublishedAt)
	})
}

func TestNewsUpdateSlug(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("unchanged title keeps the slug", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		article, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)

		req := validNewsRequest()
		req.Category = "umum"
		updated, err := svc.Update(ctx, article.ID, req)
		require.NoError(t, err)
		assert.Equal(t, article.Slug, updated.Slug)
	})

	t.Run("new title re-derives the slug", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		article, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)

		req := validNewsRequest()
		req.Title = "Festival Budaya Tahunan"
		updated, err := svc.Update(ctx, article.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "festival-budaya-tahunan", updated.Slug)
	})
}

func TestNewsPublicVisibility(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("draft is not reachable by slug", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		article, err := svc.Create(ctx, author, validNewsRequest())
		require.NoError(t, err)

		_, err = svc.GetPublishedBySlug(ctx, article.Slug)
		assert.Error(t, err)
	})

	t.Run("published article is reachable by slug", func(t *testing.T) {
		repo := newFakeNewsRepo()
		svc := NewNewsService(repo)

		req := validNewsRequest()
		req.Status = "published"
		article, err := svc.Create(ctx, author, req)
		require.NoError(t, err)

		got, err := svc.GetPublishedBySlug(ctx, article.Slug)
		require.NoError(t, err)
		assert.Equal(t, article.ID, got.ID)
	})
}
