package order_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringAndParse(t *testing.T) {
	names := map[order.Status]string{
		order.Pending:    "pending",
		order.Delivering: "delivering",
		order.Delivered:  "delivered",
		order.Cancelled:  "cancelled",
	}

	for status, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, status.String())

			parsed, err := order.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	assert.Equal(t, "unknown", order.Unknown.String())
	_, err := order.ParseStatus("delivering1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
		t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		apply   func(order.Status) (order.Status, error)
		want    order.Status
		wantErr bool
	}{
		{"pending to delivering", order.Pending, order.Status.MarkDelivering, order.Delivering, false},
		{"delivering to delivering", order.Delivering, order.Status.MarkDelivering, order.Unknown, true},
		{"pending to delivered", order.Pending, order.Status.Deliver, order.Delivered, false},
		{"delivering to delivered", order.Delivering, order.Status.Deliver, order.Delivered, false},
		{"delivered to delivered", order.Delivered, order.Status.Deliver, order.Unknown, true},
		{"cancelled to delivered", order.Cancelled, order.Status.Deliver, order.Unknown, true},
		{"pending to cancelled", order.Pending, order.Status.Cancel, order.Cancelled, false},
		{"delivering to cancelled", order.Delivering, order.Status.Cancel, order.Cancelled, false},
		{"delivered to cancelled", order.Delivered, order.Status.Cancel, order.Unknown, true},
		{"cancelled to cancelled", order.Cancelled, order.Status.Cancel, order.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.IsType(t, &errs.InvalidTransitionError{}, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("error names both ends", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		assert.EqualError(t, err, "invalid transition: status cannot change from delivered to cancelled")
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Delivering.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}
