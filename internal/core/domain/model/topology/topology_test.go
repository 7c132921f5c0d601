package topology_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/topology"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitHub(t *testing.T) {
	t.Run("should create hub with trimmed fields", func(t *testing.T) {
		id := kernel.NewUUID()

		hub, err := topology.NewTransitHub(id, "  North Hub ", " Dock 4 ")

		require.NoError(t, err)
		require.NoError(t, hub.Validate())
		assert.True(t, hub.ID().IsEqual(id))
		assert.Equal(t, "North Hub", hub.Name())
		assert.Equal(t, "Dock 4", hub.Location())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var id kernel.UUID

		hub, err := topology.NewTransitHub(id, " ", "")

		require.Error(t, err)
		assert.Nil(t, hub)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var hub topology.TransitHub
		var nilHub *topology.TransitHub

		assert.Equal(t, topology.ErrTransitHubIsNotConstructed, hub.Validate())
		assert.Equal(t, topology.ErrTransitHubIsNotConstructed, nilHub.Validate())
	})
}

func TestNewPickupPoint(t *testing.T) {
	hubID := kernel.NewUUID()

	t.Run("should create point attached to hub", func(t *testing.T) {
		point, err := topology.NewPickupPoint(kernel.NewUUID(), "Point A", "12 Main St", hubID)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.True(t, point.Hub().IsEqual(hubID))
		assert.True(t, point.BelongsTo(hubID))
		assert.False(t, point.BelongsTo(kernel.NewUUID()))
	})

	t.Run("should require hub", func(t *testing.T) {
		var noHub kernel.UUID

		point, err := topology.NewPickupPoint(kernel.NewUUID(), "Point A", "12 Main St", noHub)

		assert.Nil(t, point)
		require.ErrorIs(t, err, topology.ErrHubIsRequired)
	})

	t.Run("should require name and location", func(t *testing.T) {
		_, err := topology.NewPickupPoint(kernel.NewUUID(), "", "", hubID)

		require.ErrorIs(t, err, topology.ErrNameIsRequired)
		require.ErrorIs(t, err, topology.ErrLocationIsRequired)
	})
}
