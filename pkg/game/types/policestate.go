package types

import (
	"math"
	"math/rand"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type PoliceAlert uint8

const (
	PoliceAlertPatrol PoliceAlert = iota
	PoliceAlertPursuing
)

func (a PoliceAlert) String() string {
	switch a {
	case PoliceAlertPatrol:
		return "patrol"
	case PoliceAlertPursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

type PoliceState struct {
	Position  kinematic.Vector
	Heading   float64
	Speed     float64
	MaxSpeed  float64
	Alert     PoliceAlert
	Hitpoints int16
	Object    *resolv.Object

	disengage float64
	wander    float64
}

func NewPoliceState(positionX float64, positionY float64) *PoliceState {
	return &PoliceState{
		Position: kinematic.Vector{
			X: positionX,
			Y: positionY,
		},
		MaxSpeed:  constants.PolicePursuitSpeed,
		Hitpoints: constants.PoliceHitpoints,
		Object: resolv.NewObject(positionX-constants.PoliceWidth/2, positionY-constants.PoliceHeight/2,
			constants.PoliceWidth, constants.PoliceHeight, CollisionSpaceTagPolice),
	}
}

// TakeDamage reduces the agent's hitpoints.
func (s *PoliceState) TakeDamage(damage int16) {
	s.Hitpoints -= damage
}

func (s *PoliceState) IsDead() bool {
	return s.Hitpoints <= 0
}

// DisengageTime returns how long the player has continuously been
// beyond the disengage radius.
func (s *PoliceState) DisengageTime() float64 {
	return s.disengage
}

func (s *PoliceState) ResetDisengage() {
	s.disengage = 0
}

func (s *PoliceState) AdvanceDisengage(deltaTime float64) {
	s.disengage += deltaTime
}

// Pursue steers the agent toward the target at its own max speed,
// with a clamped per-tick turn rate.
func (s *PoliceState) Pursue(deltaTime float64, target kinematic.Vector) {
	desired := s.Position.AngleTo(target)
	diff := kinematic.AngleDifference(s.Heading, desired)
	maxTurn := constants.PoliceTurnRate * deltaTime
	s.Heading += kinematic.Clamp(diff, -maxTurn, maxTurn)

	s.Speed = kinematic.FinalVelocity(s.Speed, deltaTime, constants.PoliceAccel)
	if s.Speed > s.MaxSpeed {
		s.Speed = s.MaxSpeed
	}

	s.advance(deltaTime)
}

// Wander moves the agent at patrol speed with occasional random
// heading changes.
func (s *PoliceState) Wander(deltaTime float64, rng *rand.Rand) {
	s.wander -= deltaTime
	if s.wander <= 0 {
		s.Heading += (rng.Float64() - 0.5) * math.Pi
		s.wander = 2 + rng.Float64()*4
	}
	s.Speed = constants.PolicePatrolSpeed
	s.advance(deltaTime)
}

func (s *PoliceState) advance(deltaTime float64) {
	dx := math.Cos(s.Heading) * s.Speed * deltaTime
	dy := math.Sin(s.Heading) * s.Speed * deltaTime

	if s.Object != nil {
		if collision := s.Object.Check(dx, dy, CollisionSpaceTagBuilding); collision != nil {
			// blocked, turn away next tick
			s.Heading += math.Pi / 2
			s.Speed = 0
			dx = 0
			dy = 0
		}
	}

	s.Position.X = kinematic.Clamp(s.Position.X+dx, constants.MapMargin, constants.MapWidth-constants.MapMargin)
	s.Position.Y = kinematic.Clamp(s.Position.Y+dy, constants.MapMargin, constants.MapHeight-constants.MapMargin)

	s.SyncObject()
}

// SyncObject moves the collision object to the agent's position.
func (s *PoliceState) SyncObject() {
	if s.Object == nil {
		return
	}
	s.Object.Position.X = s.Position.X - constants.PoliceWidth/2
	s.Object.Position.Y = s.Position.Y - constants.PoliceHeight/2
	s.Object.Update()
}

// Copy returns a copy of the police state with an empty object reference.
func (s *PoliceState) Copy() *PoliceState {
	return &PoliceState{
		Position:  s.Position,
		Heading:   s.Heading,
		Speed:     s.Speed,
		MaxSpeed:  s.MaxSpeed,
		Alert:     s.Alert,
		Hitpoints: s.Hitpoints,
		disengage: s.disengage,
		wander:    s.wander,
	}
}
