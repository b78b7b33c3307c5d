package commands

import (
	"context"

	"beverage/internal/core/domain/model/kernel"
)

// OrderTransitionResult reports the outcome of one order within a batch
// status change. Err is nil when the order transitioned (or already held the
// target status) and carries the per-order failure otherwise.
type OrderTransitionResult struct {
	OrderID kernel.UUID
	Err     error
}

// TransitionOrdersCommandHandler applies a batch status change order by
// order. Each order runs in its own transaction: one order failing its
// transition check does not roll back the orders that succeeded.
type TransitionOrdersCommandHandler struct {
	orderHandler TransitionOrderCommandHandler
}

// NewTransitionOrdersCommandHandler creates a handler for batch status changes.
func NewTransitionOrdersCommandHandler(uowFactory FulfillmentUoWFactory) TransitionOrdersCommandHandler {
	return TransitionOrdersCommandHandler{
		orderHandler: NewTransitionOrderCommandHandler(uowFactory),
	}
}

// Handle processes the batch command and returns one result per requested
// order, in the order's position in the batch. The returned error covers
// failures of the batch itself, not of individual orders.
func (h TransitionOrdersCommandHandler) Handle(
	ctx context.Context,
	command TransitionOrdersCommand,
) ([]OrderTransitionResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	results := make([]OrderTransitionResult, 0, len(command.OrderIDs()))
	for _, orderID := range command.OrderIDs() {
		single, err := NewTransitionOrderCommand(orderID, command.NewStatus())
		if err != nil {
			return nil, err
		}

		results = append(results, OrderTransitionResult{
			OrderID: orderID,
			Err:     h.orderHandler.Handle(ctx, single),
		})
	}

	return results, nil
}
