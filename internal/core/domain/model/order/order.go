package order

import (
	"errors"
	"fmt"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a restaurant's bottle order. It is the aggregate root that
// manages the order lifecycle from placement through fulfillment or cancellation.
//
// Order maintains these invariants:
//   - Belongs to exactly one restaurant and references exactly one catalog bottle
//   - Quantity is at or above the per-size catalog minimum
//   - The placement timestamp is set once and never changes
//   - Status only moves along the lifecycle graph (see Status); the sole
//     exception is the documented ForceSetStatus administrative override
//
// The subtotal is not part of the aggregate state: it is derived on demand
// from the quantity and the current catalog price via Subtotal.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	bottleID     kernel.UUID
	size         catalog.Size
	quantity     int
	status       Status
	placedAt     time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - restaurantID: the owning restaurant
//   - bottleID, size: the referenced catalog entry
//   - quantity: number of bottles; must satisfy the per-size catalog minimum
//   - notes: optional free text
//   - placedAt: placement timestamp, captured once
//
// A quantity below catalog.MinimumQuantity(size) fails with a validation
// error whose message cites the size and its minimum.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	bottleID kernel.UUID,
	size catalog.Size,
	quantity int,
	notes string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setBottle(bottleID, size),
		o.setQuantity(quantity),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its persisted status. The quantity minimum is not re-checked
// here: the policy applies at placement time and must not invalidate
// historical orders if the policy later tightens.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	bottleID kernel.UUID,
	size catalog.Size,
	quantity int,
	status Status,
	notes string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setBottle(bottleID, size),
		o.setPlacedAt(placedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	o.quantity = quantity
	o.status = status
	o.notes = notes
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// BottleID returns the referenced catalog entry's identifier.
func (o *Order) BottleID() kernel.UUID {
	return o.bottleID
}

// Size returns the bottle size of the referenced catalog entry.
func (o *Order) Size() catalog.Size {
	return o.size
}

// Quantity returns the number of bottles ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Subtotal derives the order total from the quantity and the given unit
// price. The price is the catalog's current price for the order's bottle;
// it is intentionally a parameter so the value is never cached on the
// aggregate.
func (o *Order) Subtotal(unitPrice kernel.Money) kernel.Money {
	return unitPrice.MulInt(o.quantity)
}

// Transition moves the order to newStatus if the lifecycle graph allows it.
//
// Returns an InvalidTransitionError and leaves the order untouched when the
// move is illegal. Re-applying the current non-terminal status succeeds as
// a no-op.
func (o *Order) Transition(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ForceSetStatus overrides the lifecycle status without consulting the
// transition graph. It exists as an explicit administrative escape hatch
// for correcting order state out-of-band; every normal caller must use
// Transition instead. The status value itself must still be valid.
func (o *Order) ForceSetStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setBottle(bottleID kernel.UUID, size catalog.Size) error {
	if err := bottleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bottleID", err)
	}
	if err := size.Validate(); err != nil {
		return err
	}
	o.bottleID = bottleID
	o.size = size
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if minQty := catalog.MinimumQuantity(o.size); quantity < minQty {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("Minimum for %s is %d bottles", o.size, minQty))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
