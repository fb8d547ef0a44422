package queries

import (
	"errors"

	"withus/internal/pkg/guard"
)

var ErrGetItemCategoriesQueryIsNotConstructed = errors.New(
	"GetItemCategoriesQuery must be created via NewGetItemCategoriesQuery constructor",
)

// GetItemCategoriesQuery retrieves the distinct catalog categories.
// This is a parameterless query used to build category filters.
type GetItemCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemCategoriesQuery creates a query for the category list.
func NewGetItemCategoriesQuery() GetItemCategoriesQuery {
	return GetItemCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetItemCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetItemCategoriesQueryIsNotConstructed)
}
