package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReserveCommand_ValidInput(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewReserveCommand(vehicle.SUV, start, 5)
	require.NoError(t, err)
	assert.Equal(t, vehicle.SUV, cmd.Category())
	assert.Equal(t, start, cmd.StartTime())
	assert.Equal(t, 5, cmd.Days())
}

func TestNewReserveCommand_ZeroStartTimeAllowed(t *testing.T) {
	cmd, err := commands.NewReserveCommand(vehicle.Sedan, time.Time{}, 1)
	require.NoError(t, err)
	assert.True(t, cmd.StartTime().IsZero())
}

func TestNewReserveCommand_InvalidCategory(t *testing.T) {
	_, err := commands.NewReserveCommand(vehicle.UnknownCategory, time.Time{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReserveCommand_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -3} {
		_, err := commands.NewReserveCommand(vehicle.Sedan, time.Time{}, days)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestReserveCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.ReserveCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReserveCommandIsNotConstructed)
}
