package catalog

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

// ErrBottleIsNotConstructed is returned when a Bottle instance was not created
// through NewBottle or RestoreBottle. This ensures all bottles are validated.
var ErrBottleIsNotConstructed = errors.New("Bottle must be created via NewBottle constructor")

// Bottle is a catalog entry binding a unique size to its current price.
// Bottles are reference data: they are never deleted while any order
// references them, and price changes never rewrite existing orders.
//
// Bottle maintains these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid size from the closed enumeration
//   - Price is non-negative (enforced by the Money value object)
type Bottle struct {
	id    kernel.UUID
	size  Size
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewBottle creates a catalog entry for the given size and price.
// Returns a validation error if the id or size is invalid.
func NewBottle(id kernel.UUID, size Size, price kernel.Money) (*Bottle, error) {
	bottle := &Bottle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bottle.setID(id),
		bottle.setSize(size),
	); err != nil {
		return nil, err
	}

	bottle.price = price
	return bottle, nil
}

// RestoreBottle reconstructs a Bottle from persistent storage.
// Unlike NewBottle it carries no business meaning of its own; it exists so
// repositories can rebuild validated entities from rows.
func RestoreBottle(id kernel.UUID, size Size, price kernel.Money) (*Bottle, error) {
	return NewBottle(id, size, price)
}

// Validate ensures the Bottle was created through a constructor.
func (b *Bottle) Validate() error {
	if b == nil {
		return ErrBottleIsNotConstructed
	}
	return b.guard.Validate(ErrBottleIsNotConstructed)
}

// ID returns the bottle's unique identifier.
func (b *Bottle) ID() kernel.UUID {
	return b.id
}

// Size returns the bottle size.
func (b *Bottle) Size() Size {
	return b.size
}

// Price returns the current price per bottle.
func (b *Bottle) Price() kernel.Money {
	return b.price
}

// MinimumQuantity returns the ordering minimum for this bottle's size.
func (b *Bottle) MinimumQuantity() int {
	return MinimumQuantity(b.size)
}

// ChangePrice sets a new price for the bottle. Only future subtotal
// computations observe the new price; existing orders keep their quantity
// and bottle reference untouched.
func (b *Bottle) ChangePrice(price kernel.Money) {
	b.price = price
}

func (b *Bottle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bottle) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}
