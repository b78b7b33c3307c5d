// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery person and delivery assignment persistence.
package deliveryrepo

import (
	"time"

	"beverage/internal/core/domain/model/delivery"
	"beverage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PersonDTO represents the database structure for persisting delivery people.
type PersonDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(150);not null"`
	Phone  string    `gorm:"type:varchar(20)"`
	Active bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for delivery person rows.
func (PersonDTO) TableName() string {
	return "delivery_people"
}

// AssignmentDTO represents the database structure for persisting delivery
// assignments. The unique index on the order enforces at most one active
// assignment per order.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PersonID   uuid.UUID `gorm:"type:uuid;index;not null"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for delivery assignment rows.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

func personFromDomain(person *delivery.Person) PersonDTO {
	return PersonDTO{
		ID:     person.ID().Bytes(),
		Name:   person.Name(),
		Phone:  person.Phone(),
		Active: person.Active(),
	}
}

func personToDomain(dto PersonDTO) (*delivery.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestorePerson(id, dto.Name, dto.Phone, dto.Active)
}

func assignmentFromDomain(assignment *delivery.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         assignment.ID().Bytes(),
		OrderID:    assignment.OrderID().Bytes(),
		PersonID:   assignment.PersonID().Bytes(),
		AssignedAt: assignment.AssignedAt(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	personID, err := kernel.UUIDFromBytes(dto.PersonID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAssignment(id, orderID, personID, dto.AssignedAt)
}
