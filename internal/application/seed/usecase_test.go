package seed_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simonik/internal/application/seed"
	catdom "simonik/internal/domain/category"
	inddom "simonik/internal/domain/indicator"
	setdom "simonik/internal/domain/settings"
)

// ------------------------------------------------------------
// In-memory fakes
// ------------------------------------------------------------

type memCategoryRepo struct {
	created   []catdom.Category
	createErr error
	listErr   error
}

func (m *memCategoryRepo) Create(_ context.Context, c catdom.Category) (catdom.Category, error) {
	if m.createErr != nil {
		return catdom.Category{}, m.createErr
	}
	c.ID = fmt.Sprintf("cat-%d", len(m.created))
	m.created = append(m.created, c)
	return c, nil
}

func (m *memCategoryRepo) ListIDs(_ context.Context, limit int) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var ids []string
	for i, c := range m.created {
		if i == limit {
			break
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}

type memIndicatorRepo struct {
	created   []inddom.Indicator
	createErr error
}

func (m *memIndicatorRepo) Create(_ context.Context, i inddom.Indicator) (inddom.Indicator, error) {
	if m.createErr != nil {
		return inddom.Indicator{}, m.createErr
	}
	i.ID = fmt.Sprintf("ind-%d", len(m.created))
	m.created = append(m.created, i)
	return i, nil
}

type memSettingsRepo struct {
	saves int
	last  setdom.AppSettings
}

func (m *memSettingsRepo) Save(_ context.Context, s setdom.AppSettings) error {
	m.saves++
	m.last = s
	return nil
}

// ------------------------------------------------------------
// Tests
// ------------------------------------------------------------

func TestRunSeedsEverything(t *testing.T) {
	ctx := context.Background()
	cats := &memCategoryRepo{}
	inds := &memIndicatorRepo{}
	sets := &memSettingsRepo{}

	uc := seed.NewUsecase(cats, inds, sets)
	require.NoError(t, uc.Run(ctx))

	// 5 categories + 8 indicators + 1 settings = 14 writes, zero deletes.
	assert.Len(t, cats.created, 5)
	assert.Len(t, inds.created, 8)
	assert.Equal(t, 1, sets.saves)

	t.Run("IndicatorsReferenceSeededCategories", func(t *testing.T) {
		wantRefs := []string{"cat-0", "cat-0", "cat-0", "cat-1", "cat-2", "cat-1", "cat-3", "cat-4"}
		for i, ind := range inds.created {
			require.NotNil(t, ind.CategoryID, "indicator %d", i)
			assert.Equal(t, wantRefs[i], *ind.CategoryID, "indicator %d", i)
		}
	})

	t.Run("SettingsDefaults", func(t *testing.T) {
		assert.Equal(t, "Institut Teknologi dan Kesehatan Mahardika", sets.last.InstitutionName)
		assert.Nil(t, sets.last.LogoURL)
		assert.Nil(t, sets.last.KopURL)
		assert.Equal(t, 14.0, sets.last.FontSize)
	})
}

// With no categories in the store, indicator seeding warns and proceeds
// with nil references instead of failing.
func TestCreateIndicatorsWithoutCategories(t *testing.T) {
	ctx := context.Background()
	cats := &memCategoryRepo{} // nothing seeded
	inds := &memIndicatorRepo{}

	uc := seed.NewUsecase(cats, inds, &memSettingsRepo{})
	require.NoError(t, uc.CreateIndicators(ctx))

	require.Len(t, inds.created, 8)
	for i, ind := range inds.created {
		assert.Nil(t, ind.CategoryID, "indicator %d", i)
	}
}

func TestRunStopsOnFirstError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")

	t.Run("CategoryCreateFails", func(t *testing.T) {
		cats := &memCategoryRepo{createErr: boom}
		inds := &memIndicatorRepo{}
		uc := seed.NewUsecase(cats, inds, &memSettingsRepo{})

		err := uc.Run(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, inds.created, "indicator seeding must not run after a category failure")
	})

	t.Run("CategoryReadBackFails", func(t *testing.T) {
		cats := &memCategoryRepo{listErr: boom}
		inds := &memIndicatorRepo{}
		uc := seed.NewUsecase(cats, inds, &memSettingsRepo{})

		err := uc.CreateIndicators(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, inds.created)
	})

	t.Run("IndicatorCreateFails", func(t *testing.T) {
		cats := &memCategoryRepo{}
		sets := &memSettingsRepo{}
		uc := seed.NewUsecase(cats, &memIndicatorRepo{createErr: boom}, sets)

		err := uc.Run(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, cats.created, 5, "categories written before the failure stand (no rollback)")
		assert.Zero(t, sets.saves, "settings must not be written after an indicator failure")
	})
}

// Running the seeder twice duplicates categories and indicators (no dedup
// by design) but still leaves a single settings document.
func TestRunTwiceDuplicatesReferenceData(t *testing.T) {
	ctx := context.Background()
	cats := &memCategoryRepo{}
	inds := &memIndicatorRepo{}
	sets := &memSettingsRepo{}

	uc := seed.NewUsecase(cats, inds, sets)
	require.NoError(t, uc.Run(ctx))
	require.NoError(t, uc.Run(ctx))

	assert.Len(t, cats.created, 10)
	assert.Len(t, inds.created, 16)
	assert.Equal(t, 2, sets.saves, "settings is overwritten in place, not duplicated")
}
