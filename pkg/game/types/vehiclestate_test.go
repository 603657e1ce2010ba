package types

import (
	"testing"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func newTestVehicle(x float64, y float64) *VehicleState {
	v := NewVehicleState(x, y, false)
	space := resolv.NewSpace(int(constants.MapWidth), int(constants.MapHeight), 16, 16)
	space.Add(v.Object)
	return v
}

func TestVehicleState_ThrottleAndBrake(t *testing.T) {
	v := newTestVehicle(1000, 1000)

	v.Update(1.0, 1.0, 0)
	assert.Greater(t, v.Speed, 0.0)
	assert.LessOrEqual(t, v.Speed, constants.VehicleMaxSpeed)

	// full throttle eventually pins the speed at the cap
	for i := 0; i < 10; i++ {
		v.Update(1.0, 1.0, 0)
	}
	assert.Equal(t, constants.VehicleMaxSpeed, v.Speed)

	// braking through zero goes into reverse, capped at half speed
	for i := 0; i < 10; i++ {
		v.Update(1.0, -1.0, 0)
	}
	assert.Equal(t, -constants.VehicleMaxSpeed/2, v.Speed)
}

func TestVehicleState_CoastsToStop(t *testing.T) {
	v := newTestVehicle(1000, 1000)
	v.Speed = 100

	for i := 0; i < 300; i++ {
		v.Update(1.0/60, 0, 0)
	}

	assert.Equal(t, 0.0, v.Speed)
}

func TestVehicleState_TurnScalesWithSpeed(t *testing.T) {
	slow := newTestVehicle(1000, 1000)
	slow.Speed = 50
	fast := newTestVehicle(1000, 1000)
	fast.Speed = constants.VehicleMaxSpeed

	slow.Update(0.1, 0, 1.0)
	fast.Update(0.1, 0, 1.0)

	assert.Less(t, slow.Heading, fast.Heading)
}

func TestVehicleState_StationaryDoesNotTurn(t *testing.T) {
	v := newTestVehicle(1000, 1000)

	v.Update(0.1, 0, 1.0)

	assert.Equal(t, 0.0, v.Heading)
}

func TestVehicleState_ClampedToMap(t *testing.T) {
	v := newTestVehicle(constants.MapWidth-20, 1000)
	v.Speed = constants.VehicleMaxSpeed

	v.Update(1.0, 1.0, 0)

	assert.Equal(t, constants.MapWidth-constants.MapMargin, v.Position.X)
}
