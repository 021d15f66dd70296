package menurepo

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"
	"fooddispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuCatalog implements MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// ResolveMenuItems looks up the given ids in one query. Ids without a row
// are absent from the result; the caller decides whether that is an error.
func (r *GormMenuCatalog) ResolveMenuItems(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]menu.Item, error) {
	if len(ids) == 0 {
		return map[kernel.UUID]menu.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, errs.NewStorageFailureError("resolve menu items", err)
	}

	resolved := make(map[kernel.UUID]menu.Item, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		resolved[item.ID()] = item
	}

	return resolved, nil
}
