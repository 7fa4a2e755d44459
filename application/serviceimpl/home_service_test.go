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
	"desa-profil-backend/pkg/config"
)

// fakeHeroRepo is an in-memory HeroRepository.
type fakeHeroRepo struct {
	items map[uuid.UUID]*models.HeroSection
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{items: make(map[uuid.UUID]*models.HeroSection)}
}

func (f *fakeHeroRepo) Create(_ context.Context, hero *models.HeroSection) error {
	hero.ID = uuid.New()
	cp := *hero
	f.items[hero.ID] = &cp
	return nil
}

func (f *fakeHeroRepo) Update(_ context.Context, id uuid.UUID, hero *models.HeroSection) error {
	existing, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	hero.ID = id
	cp := *hero
	cp.CreatedAt = existing.CreatedAt
	f.items[id] = &cp
	return nil
}

func (f *fakeHeroRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeHeroRepo) GetByID(_ context.Context, id uuid.UUID) (*models.HeroSection, error) {
	hero, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *hero
	return &cp, nil
}

func (f *fakeHeroRepo) List(_ context.Context) ([]models.HeroSection, error) {
	out := make([]models.HeroSection, 0, len(f.items))
	for _, h := range f.items {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakeHeroRepo) GetActive(_ context.Context) (*models.HeroSection, error) {
	var best *models.HeroSection
	for _, h := range f.items {
		if !h.IsActive {
			continue
		}
		if best == nil || h.DisplayOrder < best.DisplayOrder {
			best = h
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeHeroRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	hero, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	hero.IsActive = active
	return nil
}

// fakeProfileRepo and fakeDemographicsRepo hold singleton records.
type fakeProfileRepo struct {
	profile *models.VillageProfile
}

func (f *fakeProfileRepo) Get(_ context.Context) (*models.VillageProfile, error) {
	if f.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.profile
	return &cp, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *models.VillageProfile) error {
	if f.profile != nil {
		profile.ID = f.profile.ID
	} else {
		profile.ID = uuid.New()
	}
	cp := *profile
	f.profile = &cp
	return nil
}

type fakeDemographicsRepo struct {
	demographics *models.VillageDemographics
}

func (f *fakeDemographicsRepo) Get(_ context.Context) (*models.VillageDemographics, error) {
	if f.demographics == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.demographics
	return &cp, nil
}

func (f *fakeDemographicsRepo) Upsert(_ context.Context, demographics *models.VillageDemographics) error {
	if f.demographics != nil {
		demographics.ID = f.demographics.ID
	} else {
		demographics.ID = uuid.New()
	}
	cp := *demographics
	f.demographics = &cp
	return nil
}

func newHomeFixture() (*fakeHeroRepo, *fakeProfileRepo, *fakeDemographicsRepo, *fakeOfficialRepo, *fakeDestinationRepo, *fakeNewsRepo, *HomeServiceImpl) {
	heroRepo := newFakeHeroRepo()
	profileRepo := &fakeProfileRepo{}
	demoRepo := &fakeDemographicsRepo{}
	officialRepo := newFakeOfficialRepo()
	destRepo := newFakeDestinationRepo()
	newsRepo := newFakeNewsRepo()

	home := NewHomeService(
		NewHeroService(heroRepo),
		NewProfileService(profileRepo),
		NewDemographicsService(demoRepo),
		NewOfficialService(officialRepo),
		NewDestinationService(destRepo),
		NewNewsService(newsRepo),
		nil, // cache disabled in tests
		config.CacheConfig{RevalidateSeconds: 60},
	).(*HomeServiceImpl)

	return heroRepo, profileRepo, demoRepo, officialRepo, destRepo, newsRepo, home
}

func TestHomeAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty site builds an aggregate with nil singletons", func(t *testing.T) {
		_, _, _, _, _, _, home := newHomeFixture()

		got, err := home.GetHome(ctx)
		require.NoError(t, err)
		assert.Nil(t, got.Hero)
		assert.Nil(t, got.Profile)
		assert.Nil(t, got.Demographics)
		assert.Empty(t, got.Officials)
		assert.Empty(t, got.Destinations)
		assert.Empty(t, got.LatestNews)
		assert.False(t, got.GeneratedAt.IsZero())
	})

	t.Run("only the lowest ordered active hero is shown", func(t *testing.T) {
		heroRepo, _, _, _, _, _, home := newHomeFixture()
		heroSvc := NewHeroService(heroRepo)

		_, err := heroSvc.Create(ctx, &dto.HeroRequest{
			Title: "Inactive", CTAText: "Lihat", CTALink: "/a",
			ImageURL: "https://cdn.example.com/hero-images/a.jpg",
			IsActive: false, DisplayOrder: 0,
		})
		require.NoError(t, err)
		active, err := heroSvc.Create(ctx, &dto.HeroRequest{
			Title: "Active Second", CTAText: "Lihat", CTALink: "/b",
			ImageURL: "https://cdn.example.com/hero-images/b.jpg",
			IsActive: true, DisplayOrder: 2,
		})
		require.NoError(t, err)
		first, err := heroSvc.Create(ctx, &dto.HeroRequest{
			Title: "Active First", CTAText: "Lihat", CTALink: "/c",
			ImageURL: "https://cdn.example.com/hero-images/c.jpg",
			IsActive: true, DisplayOrder: 1,
		})
		require.NoError(t, err)

		got, err := home.GetHome(ctx)
		require.NoError(t, err)
		require.NotNil(t, got.Hero)
		assert.Equal(t, first.ID, got.Hero.ID)
		assert.NotEqual(t, active.ID, got.Hero.ID)
	})

	t.Run("only published news appears", func(t *testing.T) {
		_, _, _, _, _, newsRepo, home := newHomeFixture()
		newsSvc := NewNewsService(newsRepo)
		author := uuid.New()

		draft := validNewsRequest()
		_, err := newsSvc.Create(ctx, author, draft)
		require.NoError(t, err)

		published := validNewsRequest()
		published.Title = "Berita Terbit"
		published.Status = "published"
		_, err = newsSvc.Create(ctx, author, published)
		require.NoError(t, err)

		got, err := home.GetHome(ctx)
		require.NoError(t, err)
		require.Len(t, got.LatestNews, 1)
		assert.Equal(t, "berita-terbit", got.LatestNews[0].Slug)
	})
}

func TestHeroSetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle flips only the active flag", func(t *testing.T) {
		heroRepo := newFakeHeroRepo()
		svc := NewHeroService(heroRepo)

		created, err := svc.Create(ctx, &dto.HeroRequest{
			Title: "Selamat Datang", CTAText: "Jelajahi", CTALink: "/wisata",
			ImageURL: "https://cdn.example.com/hero-images/x.jpg",
		})
		require.NoError(t, err)
		assert.False(t, created.IsActive)

		require.NoError(t, svc.SetActive(ctx, created.ID, true))

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		assert.Equal(t, created.Title, got.Title)
	})
}

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("second save updates the same singleton", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		svc := NewProfileService(repo)

		req := &dto.ProfileRequest{
			VillageName: "Desa Sukamaju",
			SubDistrict: "Kec. Pujon",
			District:    "Kab. Malang",
			Province:    "Jawa Timur",
			PostalCode:  "65391",
			AreaSize:    350.5,
			History:     "<p>" + strings.Repeat("s", 120) + "</p>",
		}

		first, err := svc.Upsert(ctx, req)
		require.NoError(t, err)

		req.VillageName = "Desa Sukamaju Baru"
		second, err := svc.Upsert(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Desa Sukamaju Baru", second.VillageName)
	})

	t.Run("bad postal code is rejected", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		svc := NewProfileService(repo)

		_, err := svc.Upsert(ctx, &dto.ProfileRequest{
			VillageName: "Desa",
			SubDistrict: "Kec",
			District:    "Kab",
			Province:    "Prov",
			PostalCode:  "123",
			AreaSize:    10,
			History:     strings.Repeat("s", 120),
		})
		assert.Error(t, err)
	})
}
