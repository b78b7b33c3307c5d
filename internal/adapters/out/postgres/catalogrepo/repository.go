package catalogrepo

import (
	"context"
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Add saves a new bottle to the catalog.
// Returns a conflict error if the size is already listed.
func (r *GormCatalogRepository) Add(ctx context.Context, bottle *catalog.Bottle) error {
	if err := bottle.Validate(); err != nil {
		return err
	}

	dto := fromDomain(bottle)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("size "+dto.Size+" is already in the catalog", err)
		}
		return err
	}

	return nil
}

// Update saves an existing bottle to the catalog.
func (r *GormCatalogRepository) Update(ctx context.Context, bottle *catalog.Bottle) error {
	if err := bottle.Validate(); err != nil {
		return err
	}

	dto := fromDomain(bottle)
	result := r.db.WithContext(ctx).Model(&BottleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bottle", bottle.ID().String())
	}

	return nil
}

// GetBySize retrieves the catalog bottle for a size.
func (r *GormCatalogRepository) GetBySize(ctx context.Context, size catalog.Size) (*catalog.Bottle, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	var dto BottleDTO
	if err := r.db.WithContext(ctx).First(&dto, "size = ?", size.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bottle", size.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every bottle in the catalog ordered by size.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]*catalog.Bottle, error) {
	var dtos []BottleDTO
	if err := r.db.WithContext(ctx).Order("size").Find(&dtos).Error; err != nil {
		return nil, err
	}

	bottles := make([]*catalog.Bottle, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bottles = append(bottles, b)
	}

	return bottles, nil
}

// Remove deletes the catalog bottle for a size.
// Returns a conflict error when existing orders still reference the bottle.
func (r *GormCatalogRepository) Remove(ctx context.Context, size catalog.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("size = ?", size.String()).Delete(&BottleDTO{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause("bottle "+size.String()+" is referenced by orders", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bottle", size.String())
	}

	return nil
}
