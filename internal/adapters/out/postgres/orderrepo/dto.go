// Package orderrepo implements order persistence, mapping the order
// aggregate onto its relational representation.
package orderrepo

import (
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. UserID is indexed for the per-user order history; status for
// the admin overview filters.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	ItemID             uuid.UUID `gorm:"type:uuid;index"`
	ServiceType        string
	Status             int `gorm:"index"`
	Quantity           int
	TotalPrice         float64
	DeliveryAddress    string
	ScheduledTime      *time.Time
	MobileNumber       string
	CancellationReason string
	CreatedAt          time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		UserID:             aggregate.UserID().Bytes(),
		ItemID:             aggregate.ItemID().Bytes(),
		ServiceType:        aggregate.ServiceType().String(),
		Status:             int(aggregate.Status()),
		Quantity:           aggregate.Quantity(),
		TotalPrice:         aggregate.TotalPrice(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		ScheduledTime:      aggregate.ScheduledTime(),
		MobileNumber:       aggregate.MobileNumber(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := order.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, userID, itemID,
		serviceType,
		order.Status(dto.Status),
		dto.Quantity,
		dto.TotalPrice,
		dto.DeliveryAddress,
		dto.ScheduledTime,
		dto.MobileNumber,
		dto.CancellationReason,
		dto.CreatedAt,
	)
}
