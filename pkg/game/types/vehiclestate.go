package types

import (
	"math"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type VehicleState struct {
	Position   kinematic.Vector
	Heading    float64
	Speed      float64
	MaxSpeed   float64
	OccupantID uint32
	Stolen     bool
	Police     bool
	Health     int16
	Object     *resolv.Object
}

func NewVehicleState(positionX float64, positionY float64, police bool) *VehicleState {
	return &VehicleState{
		Position: kinematic.Vector{
			X: positionX,
			Y: positionY,
		},
		MaxSpeed: constants.VehicleMaxSpeed,
		Police:   police,
		Health:   constants.VehicleMaxHealth,
		Object: resolv.NewObject(positionX-constants.VehicleWidth/2, positionY-constants.VehicleHeight/2,
			constants.VehicleWidth, constants.VehicleHeight, CollisionSpaceTagVehicle),
	}
}

// Occupied returns true if the vehicle has a driver.
func (v *VehicleState) Occupied() bool {
	return v.OccupantID != 0
}

// Update advances the vehicle one tick. Throttle and steer are driver
// inputs in [-1, 1]; an unoccupied vehicle is static and passes zeroes.
func (v *VehicleState) Update(deltaTime float64, throttle float64, steer float64) {
	switch {
	case throttle > 0:
		v.Speed = kinematic.Clamp(kinematic.FinalVelocity(v.Speed, deltaTime, throttle*constants.VehicleAccel),
			-v.MaxSpeed/2, v.MaxSpeed)
	case throttle < 0:
		v.Speed = kinematic.Clamp(kinematic.FinalVelocity(v.Speed, deltaTime, throttle*constants.VehicleBrake),
			-v.MaxSpeed/2, v.MaxSpeed)
	default:
		// coast
		v.Speed -= v.Speed * constants.VehicleFriction * deltaTime
		if math.Abs(v.Speed) < 1 {
			v.Speed = 0
		}
	}

	// Turning authority scales with speed
	if v.Speed != 0 {
		v.Heading += steer * constants.VehicleTurnRate * (v.Speed / v.MaxSpeed) * deltaTime
	}

	dx := math.Cos(v.Heading) * v.Speed * deltaTime
	dy := math.Sin(v.Heading) * v.Speed * deltaTime

	// Check for collisions
	if v.Object != nil {
		if collision := v.Object.Check(dx, dy, CollisionSpaceTagBuilding); collision != nil {
			dx = 0
			dy = 0
			v.Speed = 0
		}
	}

	v.Position.X = kinematic.Clamp(v.Position.X+dx, constants.MapMargin, constants.MapWidth-constants.MapMargin)
	v.Position.Y = kinematic.Clamp(v.Position.Y+dy, constants.MapMargin, constants.MapHeight-constants.MapMargin)

	v.SyncObject()
}

// TakeDamage reduces the vehicle's health, clamped at zero.
func (v *VehicleState) TakeDamage(damage int16) {
	v.Health -= damage
	if v.Health < 0 {
		v.Health = 0
	}
}

// SyncObject moves the collision object to the vehicle's position.
func (v *VehicleState) SyncObject() {
	if v.Object == nil {
		return
	}
	v.Object.Position.X = v.Position.X - constants.VehicleWidth/2
	v.Object.Position.Y = v.Position.Y - constants.VehicleHeight/2
	v.Object.Update()
}

// Copy returns a copy of the vehicle state with an empty object reference.
func (v *VehicleState) Copy() *VehicleState {
	return &VehicleState{
		Position:   v.Position,
		Heading:    v.Heading,
		Speed:      v.Speed,
		MaxSpeed:   v.MaxSpeed,
		OccupantID: v.OccupantID,
		Stolen:     v.Stolen,
		Police:     v.Police,
		Health:     v.Health,
	}
}
