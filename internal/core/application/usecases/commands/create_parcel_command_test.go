package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_Valid(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		testDestination("Av. Insurgentes 1457", "CDMX"),
		testSchedule(),
		testAgent("sender-1"),
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "sender-1", cmd.CreatedBy().String())
}

func TestNewCreateParcelCommand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		parcelID    kernel.UUID
		destination kernel.Destination
		schedule    kernel.ScheduleWindow
		createdBy   kernel.AgentID
	}{
		{
			name:        "zero parcel ID",
			destination: testDestination("Calle 5", "Monterrey"),
			schedule:    testSchedule(),
			createdBy:   testAgent("sender-1"),
		},
		{
			name:      "zero destination",
			parcelID:  kernel.NewUUID(),
			schedule:  testSchedule(),
			createdBy: testAgent("sender-1"),
		},
		{
			name:        "zero schedule",
			parcelID:    kernel.NewUUID(),
			destination: testDestination("Calle 5", "Monterrey"),
			createdBy:   testAgent("sender-1"),
		},
		{
			name:        "zero creator",
			parcelID:    kernel.NewUUID(),
			destination: testDestination("Calle 5", "Monterrey"),
			schedule:    testSchedule(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateParcelCommand(tt.parcelID, tt.destination, tt.schedule, tt.createdBy)
			require.Error(t, err)
		})
	}
}

func TestCreateParcelCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateParcelCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
