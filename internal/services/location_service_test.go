package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planttracker/internal/models"
)

func TestLocationService_SaveRequiresPlantID(t *testing.T) {
	store := newFakeLocationStore()
	svc := NewLocationService(store)

	_, err := svc.Save(&models.Location{LocationName: "Desk"})
	assert.ErrorIs(t, err, ErrMissingPlantID)
	assert.Empty(t, store.rows)
}

func TestLocationService_NamesAreIndependentRows(t *testing.T) {
	store := newFakeLocationStore()
	svc := NewLocationService(store)

	_, err := svc.Save(&models.Location{PlantID: 1, LocationName: "Desk", LightLevel: "low"})
	require.NoError(t, err)
	_, err = svc.Save(&models.Location{PlantID: 1, LocationName: "Window", LightLevel: "bright"})
	require.NoError(t, err)

	assert.Len(t, store.rows, 2)

	// Updating one name must not touch the other.
	_, err = svc.Save(&models.Location{PlantID: 1, LocationName: "Desk", LightLevel: "medium"})
	require.NoError(t, err)

	desk, err := svc.Get(1, "Desk")
	require.NoError(t, err)
	require.NotNil(t, desk)
	assert.Equal(t, "medium", desk.LightLevel)

	window, err := svc.Get(1, "Window")
	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, "bright", window.LightLevel)
}

func TestLocationService_EmptyNameIsAValidKey(t *testing.T) {
	store := newFakeLocationStore()
	svc := NewLocationService(store)

	_, err := svc.Save(&models.Location{PlantID: 2, LocationName: "", LightLevel: "low"})
	require.NoError(t, err)

	got, err := svc.Get(2, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "low", got.LightLevel)
}

func TestLocationService_ListScopedToPlant(t *testing.T) {
	store := newFakeLocationStore()
	svc := NewLocationService(store)

	_, err := svc.Save(&models.Location{PlantID: 1, LocationName: "Desk"})
	require.NoError(t, err)
	_, err = svc.Save(&models.Location{PlantID: 2, LocationName: "Desk"})
	require.NoError(t, err)

	got, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PlantID)
}

func TestLocationService_DeleteByCompositeKey(t *testing.T) {
	store := newFakeLocationStore()
	svc := NewLocationService(store)

	_, err := svc.Save(&models.Location{PlantID: 1, LocationName: "Desk"})
	require.NoError(t, err)
	_, err = svc.Save(&models.Location{PlantID: 1, LocationName: "Window"})
	require.NoError(t, err)

	affected, err := svc.Delete(1, "Desk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	remaining, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Window", remaining[0].LocationName)
}

func TestLocationService_DeleteMissingReturnsZero(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	affected, err := svc.Delete(1, "Attic")
	require.NoError(t, err)
	assert.Zero(t, affected)
}
