// Package itemrepo implements catalog item persistence, including the stock
// ledger's conditional decrement.
package itemrepo

import (
	"time"

	"withus/internal/core/domain/model/item"
	"withus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
// Category is indexed for the catalog's category filter.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	ImageURL      string
	Price         float64
	Category      string `gorm:"index"`
	StockQuantity int
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		ImageURL:      aggregate.ImageURL(),
		Price:         aggregate.Price(),
		Category:      aggregate.Category(),
		StockQuantity: aggregate.StockQuantity(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(
		id, dto.Name, dto.Description, dto.ImageURL,
		dto.Price, dto.Category, dto.StockQuantity, dto.CreatedAt,
	)
}
