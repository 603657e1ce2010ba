package game

import (
	"fmt"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/log"
	"github.com/google/uuid"
)

// startMission begins a steal-and-deliver job: take a marked vehicle to
// a drop-off point. Starting while a mission is active is a no-op.
func (gm *GameManager) startMission() {
	mission := gm.gameState.Mission
	if mission.Phase == types.MissionActive {
		gm.hud.Push("Finish the current job first")
		return
	}

	targetID := gm.pickMissionTarget()
	if targetID == 0 {
		gm.hud.Push("No jobs available right now")
		return
	}

	mission.Phase = types.MissionActive
	mission.ID = uuid.New()
	mission.TargetVehicleID = targetID
	mission.DropOff = kinematic.Vector{
		X: constants.MissionDropOffMargin + gm.rng.Float64()*(constants.MapWidth-2*constants.MissionDropOffMargin),
		Y: constants.MissionDropOffMargin + gm.rng.Float64()*(constants.MapHeight-2*constants.MissionDropOffMargin),
	}
	mission.Reward = constants.MissionRewardBase + gm.rng.Intn(constants.MissionRewardSpread)

	log.Info("Mission %s started: vehicle %d to (%.0f, %.0f) for $%d",
		mission.ID, targetID, mission.DropOff.X, mission.DropOff.Y, mission.Reward)
	gm.hud.Push("New job: steal the marked car and deliver it")
}

// pickMissionTarget chooses a random unoccupied civilian vehicle, or 0
// when there is none.
func (gm *GameManager) pickMissionTarget() uint32 {
	candidates := make([]uint32, 0, len(gm.gameState.Vehicles))
	for id, vehicleState := range gm.gameState.Vehicles {
		if vehicleState.Police || vehicleState.Occupied() {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[gm.rng.Intn(len(candidates))]
}

// updateMission checks for delivery and pays out. A completed mission
// stays visible for one frame before resetting.
func (gm *GameManager) updateMission() {
	mission := gm.gameState.Mission

	switch mission.Phase {
	case types.MissionCompleted:
		*mission = *types.NewMissionState()
	case types.MissionActive:
		playerState := gm.gameState.Player
		if !playerState.Driving() || playerState.Mount.VehicleID != mission.TargetVehicleID {
			return
		}
		vehicleState, ok := gm.gameState.Vehicles[mission.TargetVehicleID]
		if !ok {
			return
		}
		if vehicleState.Position.DistanceTo(mission.DropOff) > constants.DropOffRadius {
			return
		}

		playerState.Money += mission.Reward
		mission.Phase = types.MissionCompleted
		log.Info("Mission %s completed for $%d", mission.ID, mission.Reward)
		gm.hud.Push(fmt.Sprintf("Job done! +$%d", mission.Reward))
	}
}
