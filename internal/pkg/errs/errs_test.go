package errs_test

import (
	"errors"
	"testing"

	"fooddispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: must be positive)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "customerId", err.ParamName)
	assert.Equal(t, "value is required: customerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValidationError(t *testing.T) {
	t.Run("aggregates_all_issues_in_order", func(t *testing.T) {
		err := errs.NewValidationError()
		err.Append("menu item %s not found", "a1")
		err.Append("menu item %s not found", "b2")
		err.Append("quantity for %s must be positive, got %d", "c3", -1)

		assert.True(t, err.HasIssues())
		assert.Len(t, err.Issues, 3)
		assert.Equal(t,
			"validation failed: menu item a1 not found; menu item b2 not found; "+
				"quantity for c3 must be positive, got -1",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("empty_error_has_no_issues", func(t *testing.T) {
		err := errs.NewValidationError()
		assert.False(t, err.HasIssues())
	})

	t.Run("constructor_accepts_initial_issues", func(t *testing.T) {
		err := errs.NewValidationError("items must not be empty")
		assert.True(t, err.HasIssues())
		assert.Equal(t, "validation failed: items must not be empty", err.Error())
	})
}

func TestJobUnavailableError(t *testing.T) {
	err := errs.NewJobUnavailableError("9e8d")

	assert.Equal(t, "9e8d", err.OrderID)
	assert.Equal(t, "job unavailable: order 9e8d is not pending or already has a courier", err.Error())
	assert.ErrorIs(t, err, errs.ErrJobUnavailable)
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("cancel", "Delivering")

	assert.Equal(t, "invalid transition: cannot cancel an order in status Delivering", err.Error())
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("confirm receipt", "caller is not the owning customer")

	assert.Equal(t, "forbidden: confirm receipt: caller is not the owning customer", err.Error())
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestStorageFailureError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := errs.NewStorageFailureError("commit", cause)

	assert.Equal(t, "storage failure: commit (cause: deadlock detected)", err.Error())
	assert.ErrorIs(t, err, errs.ErrStorageFailure)
}

func TestSanitizeRemovesNewlines(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("note", errors.New("line1\nline2"))
	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "line1 line2")
}
