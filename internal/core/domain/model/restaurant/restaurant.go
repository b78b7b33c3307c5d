// Package restaurant provides the Restaurant aggregate: the account-owned
// profile that places orders and receives notifications. Exactly one
// restaurant exists per account; the identity provider that maps a session
// to a restaurant is an external collaborator.
package restaurant

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the aggregate root for a customer account's profile.
// Address and phone are optional; the display name is required.
type Restaurant struct {
	id      kernel.UUID
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant profile.
func NewRestaurant(id kernel.UUID, name, address, phone string) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.address = address
	r.phone = phone
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage.
func RestoreRestaurant(id kernel.UUID, name, address, phone string) (*Restaurant, error) {
	return NewRestaurant(id, name, address, phone)
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the delivery address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// UpdateProfile replaces the profile fields. The name stays required.
func (r *Restaurant) UpdateProfile(name, address, phone string) error {
	if err := r.setName(name); err != nil {
		return err
	}
	r.address = address
	r.phone = phone
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
