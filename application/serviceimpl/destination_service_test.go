package serviceimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/pkg/apperr"
)

// fakeDestinationRepo is an in-memory DestinationRepository.
type fakeDestinationRepo struct {
	destinations map[uuid.UUID]*models.TouristDestination
	writes       int
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: make(map[uuid.UUID]*models.TouristDestination)}
}

func (f *fakeDestinationRepo) CreateWithChildren(_ context.Context, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error {
	f.writes++
	dest.ID = uuid.New()
	for i := range images {
		images[i].ID = uuid.New()
		images[i].DestinationID = dest.ID
		images[i].DisplayOrder = i
	}
	for i := range umkm {
		umkm[i].ID = uuid.New()
		umkm[i].DestinationID = dest.ID
		umkm[i].DisplayOrder = i
	}
	dest.Images = images
	dest.UMKM = umkm
	f.destinations[dest.ID] = dest
	return nil
}

func (f *fakeDestinationRepo) UpdateWithChildren(_ context.Context, id uuid.UUID, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error {
	f.writes++
	existing, ok := f.destinations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = dest.Name
	existing.Description = dest.Description
	existing.Location = dest.Location
	existing.Category = dest.Category
	existing.Facilities = dest.Facilities
	existing.MapsURL = dest.MapsURL
	for i := range images {
		images[i].ID = uuid.New()
		images[i].DestinationID = id
		images[i].DisplayOrder = i
	}
	for i := range umkm {
		umkm[i].ID = uuid.New()
		umkm[i].DestinationID = id
		umkm[i].DisplayOrder = i
	}
	existing.Images = images
	existing.UMKM = umkm
	return nil
}

func (f *fakeDestinationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.destinations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.destinations, id)
	return nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TouristDestination, error) {
	dest, ok := f.destinations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dest, nil
}

func (f *fakeDestinationRepo) List(_ context.Context, offset, limit int) ([]models.TouristDestination, int64, error) {
	out := make([]models.TouristDestination, 0, len(f.destinations))
	for _, d := range f.destinations {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDestinationRepo) UpdateImageOrder(_ context.Context, destinationID uuid.UUID, orderedIDs []uuid.UUID) error {
	dest, ok := f.destinations[destinationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	byID := make(map[uuid.UUID]models.DestinationImage, len(dest.Images))
	for _, img := range dest.Images {
		byID[img.ID] = img
	}
	reordered := make([]models.DestinationImage, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		img := byID[id]
		img.DisplayOrder = i
		reordered = append(reordered, img)
	}
	dest.Images = reordered
	return nil
}

func (f *fakeDestinationRepo) GetImages(_ context.Context, destinationID uuid.UUID) ([]models.DestinationImage, error) {
	dest, ok := f.destinations[destinationID]
	if !ok {
		return nil, nil
	}
	return dest.Images, nil
}

func validDestinationRequest() *dto.DestinationRequest {
	return &dto.DestinationRequest{
		Name:        "Air Terjun Coban Rondo",
		Description: strings.Repeat("a", 50),
		Location:    "Dusun Krajan",
		Category:    "alam",
		Images: []dto.DestinationImageInput{
			{ImageURL: "https://cdn.example.com/destination-images/1.jpg"},
		},
	}
}

func TestDestinationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request with one image succeeds", func(t *testing.T) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		got, err := svc.Create(ctx, validDestinationRequest())
		require.NoError(t, err)
		require.Len(t, got.Images, 1)
		assert.Equal(t, 0, got.Images[0].DisplayOrder)
	})

	t.Run("no images is rejected before any write", func(t *testing.T) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		req := validDestinationRequest()
		req.Images = nil

		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, 0, repo.writes)
	})

	t.Run("eleven images is rejected", func(t *testing.T) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		req := validDestinationRequest()
		req.Images = nil
		for i := 0; i < 11; i++ {
			req.Images = append(req.Images, dto.DestinationImageInput{ImageURL: "https://cdn.example.com/x.jpg"})
		}

		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "images", ve.Field)
		assert.Equal(t, 0, repo.writes)
	})

	t.Run("forty nine character description is rejected on the description field", func(t *testing.T) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		req := validDestinationRequest()
		req.Description = strings.Repeat("a", 49)

		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "description", ve.Field)
	})

	t.Run("images get dense order from slice position", func(t *testing.T) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		req := validDestinationRequest()
		req.Images = []dto.DestinationImageInput{
			{ImageURL: "https://cdn.example.com/a.jpg"},
			{ImageURL: "https://cdn.example.com/b.jpg"},
			{ImageURL: "https://cdn.example.com/c.jpg"},
		}

		got, err := svc.Create(ctx, req)
		require.NoError(t, err)
		require.Len(t, got.Images, 3)
		for i, img := range got.Images {
			assert.Equal(t, i, img.DisplayOrder)
		}
	})
}

func TestDestinationCommitImageOrder(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeDestinationRepo, uuid.UUID, []uuid.UUID) {
		repo := newFakeDestinationRepo()
		svc := NewDestinationService(repo)

		req := validDestinationRequest()
		req.Images = []dto.DestinationImageInput{
			{ImageURL: "https://cdn.example.com/a.jpg"},
			{ImageURL: "https://cdn.example.com/b.jpg"},
			{ImageURL: "https://cdn.example.com/c.jpg"},
		}
		got, err := svc.Create(ctx, req)
		require.NoError(t, err)

		ids := make([]uuid.UUID, 0, len(got.Images))
		for _, img := range got.Images {
			ids = append(ids, img.ID)
		}
		return repo, got.ID, ids
	}

	t.Run("permutation commit rewrites dense ranks", func(t *testing.T) {
		repo, destID, ids := setup(t)
		svc := NewDestinationService(repo)

		reordered := []uuid.UUID{ids[2], ids[0], ids[1]}
		require.NoError(t, svc.CommitImageOrder(ctx, destID, reordered))

		dest, err := svc.GetByID(ctx, destID)
		require.NoError(t, err)
		assert.Equal(t, reordered[0], dest.Images[0].ID)
		assert.Equal(t, reordered[1], dest.Images[1].ID)
		assert.Equal(t, reordered[2], dest.Images[2].ID)
		for i, img := range dest.Images {
			assert.Equal(t, i, img.DisplayOrder)
		}
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		repo, destID, ids := setup(t)
		svc := NewDestinationService(repo)

		err := svc.CommitImageOrder(ctx, destID, ids[:2])
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("foreign id is rejected", func(t *testing.T) {
		repo, destID, ids := setup(t)
		svc := NewDestinationService(repo)

		foreign := append([]uuid.UUID{}, ids[:2]...)
		foreign = append(foreign, uuid.New())

		err := svc.CommitImageOrder(ctx, destID, foreign)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo, destID, ids := setup(t)
		svc := NewDestinationService(repo)

		err := svc.CommitImageOrder(ctx, destID, []uuid.UUID{ids[0], ids[0], ids[1]})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}
