package queries_test

import (
	"testing"

	"withus/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetItemsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetItemsQuery("kitchen", 0, 20)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "kitchen", query.Category())
	assert.Equal(t, 0, query.Offset())
	assert.Equal(t, 20, query.Limit())
}

func TestNewGetItemsQuery_ZeroLimitGetsDefault(t *testing.T) {
	query, err := queries.NewGetItemsQuery("", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultItemsLimit, query.Limit())
}

func TestNewGetItemsQuery_NegativeOffset(t *testing.T) {
	_, err := queries.NewGetItemsQuery("", -1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrPaginationIsInvalid)
}

func TestNewGetItemsQuery_NegativeLimit(t *testing.T) {
	_, err := queries.NewGetItemsQuery("", 0, -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrPaginationIsInvalid)
}

func TestGetItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetItemsQueryIsNotConstructed)
}
