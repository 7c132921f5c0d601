package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "7f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "7f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause names the param", func(t *testing.T) {
		cause := errors.New("no rows")
		err := errs.NewObjectNotFoundErrorWithCause("pickupPoint", "Cau Giay", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: pickupPoint, ID is: Cau Giay (cause: no rows)",
			err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	cause := errors.New("not an address")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("email", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email (cause: not an address)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("weight", -2, 0, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -2 is weight, min value is 0, max value is 1000",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("charge", -1, 0, "unbounded", cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -1 is charge, min value is 0, max value is unbounded (cause: not an address)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("receiverAddress"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: receiverAddress",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("sendDate", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: sendDate (cause: not an address)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}

	t.Run("out of range keeps its bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -1, 0, "unbounded")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, "unbounded", err.Max)
	})

	t.Run("values stay on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("receiverAddress", "12 Hang Bai\nHa Noi", 0, 10)

		assert.Contains(t, err.Error(), "12 Hang Bai Ha Noi")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("status", stringer("delivered"), stringer("cancelled"))

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "cancelled", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: status cannot change from delivered to cancelled", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal status")
		err := errs.NewInvalidTransitionErrorWithCause("status", stringer("pending"), stringer("delivering3"), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: status cannot change from pending to delivering3 (cause: terminal status)",
			err.Error())
	})
}

func TestIntegrityViolationError(t *testing.T) {
	t.Run("NewIntegrityViolationError", func(t *testing.T) {
		err := errs.NewIntegrityViolationError("package", "already linked")

		assert.Equal(t, "package", err.ParamName)
		assert.Equal(t, "integrity violation: package is already linked", err.Error())
		assert.Equal(t, errs.ErrIntegrityViolation, err.Unwrap())
	})

	t.Run("NewIntegrityViolationErrorWithCause without value", func(t *testing.T) {
		cause := errors.New("foreign key violation")
		err := errs.NewIntegrityViolationErrorWithCause("pickup_from", nil, cause)

		assert.Equal(t, "integrity violation: pickup_from (cause: foreign key violation)", err.Error())
	})
}

func TestPartialFailureError(t *testing.T) {
	t.Run("NewPartialFailureError", func(t *testing.T) {
		cause := errors.New("commit failed")
		err := errs.NewPartialFailureError("add order to package", cause)

		assert.Equal(t, "add order to package", err.Operation)
		assert.Equal(t,
			"partial failure: add order to package must be retried as a whole (cause: commit failed)",
			err.Error())
		assert.Equal(t, []error{errs.ErrPartialFailure, cause}, err.Unwrap())
		require.ErrorIs(t, err, cause)
	})

	t.Run("typed cause stays reachable", func(t *testing.T) {
		err := error(errs.NewPartialFailureError("addOrderToPackage",
			errs.NewIntegrityViolationError("package", "x")))

		require.ErrorIs(t, err, errs.ErrPartialFailure)
		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		var integrity *errs.IntegrityViolationError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, "package", integrity.ParamName)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPartialFailureError("advancePackage", nil)

		assert.Equal(t, []error{errs.ErrPartialFailure}, err.Unwrap())
		assert.Equal(t, "partial failure: advancePackage must be retried as a whole", err.Error())
	})
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestEveryKindUnwrapsToItsSentinel(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{errs.NewObjectNotFoundError("package", "p1"), errs.ErrObjectNotFound},
		{errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{errs.NewValueIsOutOfRangeError("weight", -1, 0, 10), errs.ErrValueIsOutOfRange},
		{errs.NewValueIsRequiredError("sender"), errs.ErrValueIsRequired},
		{errs.NewInvalidTransitionError("status", stringer("delivered"), stringer("pending")), errs.ErrInvalidTransition},
		{errs.NewIntegrityViolationError("email", "lan@example.com"), errs.ErrIntegrityViolation},
		{errs.NewPartialFailureError("advancePackage", errors.New("commit failed")), errs.ErrPartialFailure},
	}

	for _, tt := range tests {
		require.ErrorIs(t, tt.err, tt.sentinel)
		assert.NotEmpty(t, tt.sentinel.Error())
	}
}
