package delivery

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var (
	// ErrPersonNameIsRequired is returned when creating a delivery person without a name.
	ErrPersonNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPersonIsNotConstructed is returned when using an improperly initialized Person.
	ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")
)

// Person is a delivery person. New people start active; deactivation blocks
// future assignments without touching existing ones.
type Person struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool

	guard guard.ConstructorGuard
}

// NewPerson creates an active delivery person.
func NewPerson(id kernel.UUID, name, phone string) (*Person, error) {
	p := &Person{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.phone = phone
	return p, nil
}

// RestorePerson reconstructs a Person from persistent storage.
func RestorePerson(id kernel.UUID, name, phone string, active bool) (*Person, error) {
	p, err := NewPerson(id, name, phone)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the Person was created through a constructor.
func (p *Person) Validate() error {
	if p == nil {
		return ErrPersonIsNotConstructed
	}
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

// ID returns the person's unique identifier.
func (p *Person) ID() kernel.UUID {
	return p.id
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// Phone returns the contact phone number.
func (p *Person) Phone() string {
	return p.phone
}

// Active reports whether the person can receive new assignments.
func (p *Person) Active() bool {
	return p.active
}

// Deactivate blocks the person from receiving new assignments.
func (p *Person) Deactivate() {
	p.active = false
}

// Activate re-enables the person for new assignments.
func (p *Person) Activate() {
	p.active = true
}

func (p *Person) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setName(name string) error {
	if name == "" {
		return ErrPersonNameIsRequired
	}
	p.name = name
	return nil
}
