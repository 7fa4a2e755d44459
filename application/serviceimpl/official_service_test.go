package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/pkg/apperr"
)

// fakeOfficialRepo is an in-memory OfficialRepository.
type fakeOfficialRepo struct {
	items map[uuid.UUID]*models.Official
}

func newFakeOfficialRepo() *fakeOfficialRepo {
	return &fakeOfficialRepo{items: make(map[uuid.UUID]*models.Official)}
}

func (f *fakeOfficialRepo) Create(_ context.Context, official *models.Official) error {
	official.ID = uuid.New()
	cp := *official
	f.items[official.ID] = &cp
	return nil
}

func (f *fakeOfficialRepo) Update(_ context.Context, id uuid.UUID, official *models.Official) error {
	existing, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = official.Name
	existing.Position = official.Position
	existing.NIP = official.NIP
	existing.PhotoURL = official.PhotoURL
	existing.StartPeriod = official.StartPeriod
	existing.EndPeriod = official.EndPeriod
	return nil
}

func (f *fakeOfficialRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeOfficialRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Official, error) {
	official, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *official
	return &cp, nil
}

func (f *fakeOfficialRepo) List(_ context.Context) ([]models.Official, error) {
	out := make([]models.Official, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakeOfficialRepo) Reorder(_ context.Context, orderedIDs []uuid.UUID) error {
	for i, id := range orderedIDs {
		official, ok := f.items[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		official.DisplayOrder = i
	}
	return nil
}

// flakyOfficialRepo fails List on demand to exercise the densify path.
type flakyOfficialRepo struct {
	*fakeOfficialRepo
	failList bool
}

func (f *flakyOfficialRepo) List(ctx context.Context) ([]models.Official, error) {
	if f.failList {
		return nil, errors.New("connection refused")
	}
	return f.fakeOfficialRepo.List(ctx)
}

func TestOfficialCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new officials append to the end", func(t *testing.T) {
		repo := newFakeOfficialRepo()
		svc := NewOfficialService(repo)

		first, err := svc.Create(ctx, &dto.OfficialRequest{Name: "Budi Santoso", Position: "Kepala Desa"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, &dto.OfficialRequest{Name: "Siti Aminah", Position: "Sekretaris Desa"})
		require.NoError(t, err)

		assert.Equal(t, 0, first.DisplayOrder)
		assert.Equal(t, 1, second.DisplayOrder)
	})

	t.Run("bad NIP is rejected", func(t *testing.T) {
		repo := newFakeOfficialRepo()
		svc := NewOfficialService(repo)

		nip := "12345"
		_, err := svc.Create(ctx, &dto.OfficialRequest{Name: "Budi", Position: "Kaur", NIP: &nip})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("period dates are parsed", func(t *testing.T) {
		repo := newFakeOfficialRepo()
		svc := NewOfficialService(repo)

		start := "2024-01-01"
		end := "2029-12-31"
		got, err := svc.Create(ctx, &dto.OfficialRequest{
			Name: "Budi", Position: "Kepala Desa",
			StartPeriod: &start, EndPeriod: &end,
		})
		require.NoError(t, err)
		require.NotNil(t, got.StartPeriod)
		assert.Equal(t, 2024, got.StartPeriod.Year())
		require.NotNil(t, got.EndPeriod)
		assert.Equal(t, 2029, got.EndPeriod.Year())
	})
}

func TestOfficialReorder(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeOfficialRepo, []uuid.UUID) {
		repo := newFakeOfficialRepo()
		svc := NewOfficialService(repo)

		names := []string{"A", "B", "C"}
		ids := make([]uuid.UUID, 0, len(names))
		for _, name := range names {
			got, err := svc.Create(ctx, &dto.OfficialRequest{Name: name, Position: "Kaur"})
			require.NoError(t, err)
			ids = append(ids, got.ID)
		}
		return repo, ids
	}

	t.Run("full permutation commits dense ranks", func(t *testing.T) {
		repo, ids := seed(t)
		svc := NewOfficialService(repo)

		require.NoError(t, svc.Reorder(ctx, []uuid.UUID{ids[2], ids[0], ids[1]}))

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids[2], list[0].ID)
		assert.Equal(t, ids[0], list[1].ID)
		assert.Equal(t, ids[1], list[2].ID)
		for i, o := range list {
			assert.Equal(t, i, o.DisplayOrder)
		}
	})

	t.Run("partial id set is rejected", func(t *testing.T) {
		repo, ids := seed(t)
		svc := NewOfficialService(repo)

		err := svc.Reorder(ctx, ids[:2])
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo, ids := seed(t)
		svc := NewOfficialService(repo)

		err := svc.Reorder(ctx, []uuid.UUID{ids[0], ids[0], ids[1]})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("delete succeeds even when densify cannot run", func(t *testing.T) {
		base, ids := seed(t)
		repo := &flakyOfficialRepo{fakeOfficialRepo: base, failList: true}
		svc := NewOfficialService(repo)

		require.NoError(t, svc.Delete(ctx, ids[0]))

		_, err := base.GetByID(ctx, ids[0])
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete densifies the remaining order", func(t *testing.T) {
		repo, ids := seed(t)
		svc := NewOfficialService(repo)

		require.NoError(t, svc.Delete(ctx, ids[0]))

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for i, o := range list {
			assert.Equal(t, i, o.DisplayOrder)
		}
	})
}
