package deliveryrepo

import (
	"context"
	"errors"

	"beverage/internal/core/domain/model/delivery"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// AddPerson saves a new delivery person to the database.
func (r *GormDeliveryRepository) AddPerson(ctx context.Context, person *delivery.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := personFromDomain(person)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("delivery person "+person.ID().String()+" already exists", err)
		}
		return err
	}

	return nil
}

// UpdatePerson saves an existing delivery person to the database.
func (r *GormDeliveryRepository) UpdatePerson(ctx context.Context, person *delivery.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := personFromDomain(person)
	result := r.db.WithContext(ctx).
		Model(&PersonDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery person", person.ID().String())
	}

	return nil
}

// GetPerson retrieves a delivery person by ID.
func (r *GormDeliveryRepository) GetPerson(ctx context.Context, id kernel.UUID) (*delivery.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return personToDomain(dto)
}

// RemovePerson deletes a delivery person.
// Returns a conflict error while assignments still reference the person.
func (r *GormDeliveryRepository) RemovePerson(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&PersonDTO{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause(
				"delivery person "+id.String()+" is referenced by assignments", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery person", id.String())
	}

	return nil
}

// AddAssignment saves a new delivery assignment.
// Returns a conflict error if the order already has an assignment, and a
// not found error if the order or person does not exist.
func (r *GormDeliveryRepository) AddAssignment(ctx context.Context, assignment *delivery.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(assignment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"order "+assignment.OrderID().String()+" is already assigned", err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause(
				"assignment reference", assignment.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// GetAssignmentByOrder retrieves the delivery assignment for an order.
func (r *GormDeliveryRepository) GetAssignmentByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// RemoveAssignmentByOrder deletes the delivery assignment for an order.
// Removing an order with no assignment is a no-op.
func (r *GormDeliveryRepository) RemoveAssignmentByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Delete(&AssignmentDTO{}).Error
}
