package guard_test

import (
	"errors"
	"testing"

	"fooddispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type claimRequest struct {
		courier string
		guard   guard.ConstructorGuard
	}

	var errClaimRequestNotConstructed = errors.New("claimRequest must be created via newClaimRequest")

	newClaimRequest := func(courier string) (claimRequest, error) {
		if courier == "" {
			return claimRequest{}, errors.New("courier is required")
		}
		return claimRequest{
			courier: courier,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		req, err := newClaimRequest("courier-11")

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errClaimRequestNotConstructed))
		assert.Equal(t, "courier-11", req.courier)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var req claimRequest // zero value

		err := req.guard.Validate(errClaimRequestNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errClaimRequestNotConstructed, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
