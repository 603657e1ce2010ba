package types

import (
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/google/uuid"
)

type MissionPhase uint8

const (
	MissionInactive MissionPhase = iota
	MissionActive
	MissionCompleted
)

func (p MissionPhase) String() string {
	switch p {
	case MissionInactive:
		return "inactive"
	case MissionActive:
		return "active"
	case MissionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MissionState tracks the current steal-and-deliver job.
// ID, TargetVehicleID, DropOff and Reward are valid only while the
// mission is active.
type MissionState struct {
	Phase           MissionPhase
	ID              uuid.UUID
	TargetVehicleID uint32
	DropOff         kinematic.Vector
	Reward          int
}

func NewMissionState() *MissionState {
	return &MissionState{
		Phase: MissionInactive,
	}
}
