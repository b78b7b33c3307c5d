package order_test

import (
	"fmt"
	"testing"

	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.OutForDelivery))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})

	t.Run("wire strings match the lifecycle contract", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "PROCESSING", order.Processing.String())
		assert.Equal(t, "OUT_FOR_DELIVERY", order.OutForDelivery.String())
		assert.Equal(t, "DELIVERED", order.Delivered.String())
		assert.Equal(t, "CANCELLED", order.Cancelled.String())
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.StatusUnknown,
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every wire string", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Processing, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
			_, err := order.ParseStatus(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Processing, order.OutForDelivery, order.Delivered, order.Cancelled,
	}

	legal := map[order.Status][]order.Status{
		order.Pending:        {order.Pending, order.Processing, order.Cancelled},
		order.Processing:     {order.Processing, order.OutForDelivery, order.Cancelled},
		order.OutForDelivery: {order.OutForDelivery, order.Delivered, order.Cancelled},
		order.Delivered:      {},
		order.Cancelled:      {},
	}

	for from, targets := range legal {
		allowed := make(map[order.Status]bool, len(targets))
		for _, target := range targets {
			allowed[target] = true
		}

		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, allowed[to], from.CanTransitionTo(to))
			})
		}
	}

	t.Run("invalid statuses never transition", func(t *testing.T) {
		assert.False(t, order.StatusUnknown.CanTransitionTo(order.Pending))
		assert.False(t, order.Pending.CanTransitionTo(order.StatusUnknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal transitions return the target", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, next)
	})

	t.Run("cancel from any non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Processing, order.OutForDelivery} {
			next, err := from.TransitionTo(order.Cancelled)

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("skipping ahead is rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Delivered)

		require.Error(t, err)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "PENDING -> DELIVERED")
	})

	t.Run("moving backward is rejected", func(t *testing.T) {
		_, err := order.OutForDelivery.TransitionTo(order.Processing)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range []order.Status{
				order.Pending, order.Processing, order.OutForDelivery, order.Delivered, order.Cancelled,
			} {
				_, err := from.TransitionTo(to)

				require.ErrorIs(t, err, errs.ErrInvalidTransition,
					"%s -> %s should be rejected", from, to)
			}
		}
	})

	t.Run("invalid target is rejected as invalid value", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.StatusUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
