package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryCommand_Valid(t *testing.T) {
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewConfirmDeliveryCommand(parcelID, "AB12CD")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ParcelID().IsEqual(parcelID))
	assert.Equal(t, "AB12CD", cmd.Code())
}

func TestNewConfirmDeliveryCommand_InvalidArguments(t *testing.T) {
	t.Run("zero parcel ID", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(kernel.UUID{}, "AB12CD")
		require.Error(t, err)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestConfirmDeliveryCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.ConfirmDeliveryCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrConfirmDeliveryCommandIsNotConstructed)
}
