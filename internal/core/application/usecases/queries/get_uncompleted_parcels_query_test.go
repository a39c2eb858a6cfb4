package queries_test

import (
	"testing"

	"parcels/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUncompletedParcelsQuery_Valid(t *testing.T) {
	query := queries.NewGetUncompletedParcelsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUncompletedParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUncompletedParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedParcelsQueryIsNotConstructed)
}
