package products

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

type failingStore struct{}

func (failingStore) List(context.Context) ([]ProductDTO, error) {
	return nil, errors.New("catalog offline")
}

func (failingStore) FindByID(context.Context, uuid.UUID) (*ProductDTO, error) {
	return nil, errors.New("catalog offline")
}

func TestFeaturedReturnsFirstProducts(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()
	svc, err := NewService(NewRepository(catalog), 0)
	require.NoError(t, err)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, defaultFeaturedLimit)
	for i, p := range featured {
		assert.Equal(t, catalog[i].ID, p.ID)
	}
}

func TestFeaturedSmallCatalog(t *testing.T) {
	t.Parallel()
	svc, err := NewService(NewRepository(DefaultCatalog()[:2]), 6)
	require.NoError(t, err)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 2)
}

func TestGetProduct(t *testing.T) {
	t.Parallel()
	svc, err := NewService(NewRepository(DefaultCatalog()), 3)
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), ProductID("Yoga Mat"))
	require.NoError(t, err)
	assert.Equal(t, "Yoga Mat", p.Name)
	assert.Equal(t, "24.99", p.Price.StringFixed(2))

	_, err = svc.Get(context.Background(), uuid.New())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.Get(context.Background(), uuid.Nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestRepositorySkipsDuplicates(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()
	repo := NewRepository(append(catalog, catalog[0]))
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(catalog))
}

func TestStoreFailuresAreDependencyErrors(t *testing.T) {
	t.Parallel()
	svc, err := NewService(failingStore{}, 6)
	require.NoError(t, err)

	_, err = svc.Featured(context.Background())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	_, err = NewService(nil, 6)
	assert.Error(t, err)
}
