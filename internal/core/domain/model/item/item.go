// Package item contains the catalog item aggregate. Items carry the live
// stock counter; the counter itself is only ever decremented through the
// stock reservation in the item repository, never through this aggregate.
package item

import (
	"errors"
	"fmt"
	"time"

	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a purchasable catalog entry.
//
// Invariants:
//   - price is strictly positive
//   - stock quantity is never negative
type Item struct {
	id            kernel.UUID
	name          string
	description   string
	imageURL      string
	price         float64
	category      string
	stockQuantity int
	createdAt     time.Time

	isConstructed bool
}

// NewItem creates a catalog item with validated attributes.
func NewItem(
	id kernel.UUID, name, description, imageURL string, price float64, category string, stockQuantity int,
) (*Item, error) {
	i := &Item{
		description:   description,
		imageURL:      imageURL,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setPrice(price),
		i.setCategory(category),
		i.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(
	id kernel.UUID, name, description, imageURL string, price float64,
	category string, stockQuantity int, createdAt time.Time,
) (*Item, error) {
	i, err := NewItem(id, name, description, imageURL, price, category, stockQuantity)
	if err != nil {
		return nil, err
	}

	i.createdAt = createdAt
	return i, nil
}

// Validate ensures the instance came from a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// ImageURL returns the catalog image location.
func (i *Item) ImageURL() string {
	return i.imageURL
}

// Price returns the current unit price. Orders snapshot this value at
// creation time and never recompute it.
func (i *Item) Price() float64 {
	return i.price
}

// Category returns the catalog category.
func (i *Item) Category() string {
	return i.category
}

// StockQuantity returns the available stock as of the last read.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// CreatedAt returns the catalog entry timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	i.stockQuantity = stockQuantity
	return nil
}
