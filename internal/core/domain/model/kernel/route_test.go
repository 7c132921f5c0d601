package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	from := kernel.NewUUID()
	to := kernel.NewUUID()

	t.Run("should keep both endpoints", func(t *testing.T) {
		r, err := kernel.NewRoute(from, to)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.From().IsEqual(from))
		assert.True(t, r.To().IsEqual(to))
		assert.True(t, r.Touches(from))
		assert.True(t, r.Touches(to))
		assert.False(t, r.Touches(kernel.NewUUID()))
	})

	t.Run("should reject a zero-length route", func(t *testing.T) {
		_, err := kernel.NewRoute(from, from)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pickupTo")
	})

	t.Run("should reject missing endpoints", func(t *testing.T) {
		var missing kernel.UUID

		_, err := kernel.NewRoute(missing, to)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var r kernel.Route
		require.Error(t, r.Validate())
	})
}
