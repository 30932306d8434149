package service_test

import (
	"context"
	"testing"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository/memory"
	"waltgoat/walker-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewExerciseService(catalog.Default())

	all, err := svc.ListExercises(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, catalog.Default().Len())

	legs, err := svc.ListExercises(ctx, "gambe")
	require.NoError(t, err)
	require.NotEmpty(t, legs)
	for _, ex := range legs {
		assert.Equal(t, domain.CategoryLegs, ex.Category)
	}

	_, err = svc.ListExercises(ctx, "Yoga")
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	ex, err := svc.GetExerciseByID(ctx, "ex_step_up")
	require.NoError(t, err)
	assert.Equal(t, "ex_step_up", ex.ID)

	_, err = svc.GetExerciseByID(ctx, "ex_missing")
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)

	assert.Len(t, svc.Categories(ctx), 7)
	assert.Len(t, svc.Bands(ctx), 5)
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	builtin, err := service.LoadCatalog(ctx, service.CatalogSourceBuiltin, nil)
	require.NoError(t, err)

	// an unseeded store has nothing to load
	_, err = service.LoadCatalog(ctx, service.CatalogSourceStore, store.Exercises())
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	n, err := store.Exercises().SeedIfEmpty(ctx, catalog.Builtin())
	require.NoError(t, err)
	assert.Equal(t, builtin.Len(), n)

	fromStore, err := service.LoadCatalog(ctx, service.CatalogSourceStore, store.Exercises())
	require.NoError(t, err)
	assert.Equal(t, builtin.All(), fromStore.All())

	_, err = service.LoadCatalog(ctx, "s3", nil)
	assert.Error(t, err)
}
