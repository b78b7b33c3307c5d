package commands

import (
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand represents a request to place a beverage order for a
// restaurant. The per-size minimum quantity is enforced by the order
// aggregate against the catalog policy, not here: the command only rejects
// values that can never be valid.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), restaurantID, catalog.Size1L, 60, "back entrance")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	size         catalog.Size
	quantity     int
	notes        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new beverage order.
// Validates that both IDs are valid, the size is a known bottle size, and
// the quantity is positive.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	size catalog.Size,
	quantity int,
	notes string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRestaurantID(restaurantID),
		command.setSize(size),
		command.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the ordering restaurant.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Size returns the requested bottle size.
func (c PlaceOrderCommand) Size() catalog.Size {
	return c.size
}

// Quantity returns the number of bottles requested.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// Notes returns the free-form delivery notes.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setSize(size catalog.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

// placedNotificationMessage builds the confirmation entry recorded in the
// restaurant's notification log when an order is placed.
func placedNotificationMessage(orderID kernel.UUID) string {
	return "Order #" + orderID.String() + " placed successfully."
}
