package game

import (
	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/repositories/models"
)

// SaveSnapshotFromPlayer extracts the persisted subset of the player
// state.
func SaveSnapshotFromPlayer(playerState *types.PlayerState) *models.SaveSnapshot {
	return &models.SaveSnapshot{
		X:      playerState.Position.X,
		Y:      playerState.Position.Y,
		Health: playerState.Health,
		Money:  playerState.Money,
	}
}

// ApplySnapshotToPlayer restores the persisted fields onto the player,
// sanitizing out-of-range values from old or hand-edited save data.
func ApplySnapshotToPlayer(snapshot *models.SaveSnapshot, playerState *types.PlayerState) {
	playerState.Position.X = kinematic.Clamp(snapshot.X, constants.MapMargin, constants.MapWidth-constants.MapMargin)
	playerState.Position.Y = kinematic.Clamp(snapshot.Y, constants.MapMargin, constants.MapHeight-constants.MapMargin)
	playerState.Health = clampInt(snapshot.Health, 0, constants.PlayerMaxHealth)
	playerState.Money = snapshot.Money
	if playerState.Money < 0 {
		playerState.Money = 0
	}
}

// RenderViewFromState builds the immutable per-frame view of the world.
func RenderViewFromState(gameState *types.GameState, messages []string, minimap bool) *types.RenderView {
	playerState := gameState.Player
	view := &types.RenderView{
		Timestamp: gameState.Timestamp,
		Player: types.PlayerView{
			Position: playerState.Position,
			Heading:  playerState.Heading,
			Health:   playerState.Health,
			Money:    playerState.Money,
			Weapon:   playerState.Weapon,
			Ammo:     playerState.Ammo[playerState.Weapon],
			Mount:    playerState.Mount,
		},
		Vehicles: make(map[uint32]types.VehicleView, len(gameState.Vehicles)),
		Police:   make(map[uint32]types.PoliceView, len(gameState.Police)),
		Bullets:  make([]types.BulletView, 0, len(gameState.Bullets)),
		Mission: types.MissionView{
			Phase:           gameState.Mission.Phase,
			ID:              gameState.Mission.ID,
			TargetVehicleID: gameState.Mission.TargetVehicleID,
			DropOff:         gameState.Mission.DropOff,
			Reward:          gameState.Mission.Reward,
		},
		Wanted:   gameState.Wanted,
		Messages: messages,
		Minimap:  minimap,
	}

	for id, vehicleState := range gameState.Vehicles {
		view.Vehicles[id] = types.VehicleView{
			Position: vehicleState.Position,
			Heading:  vehicleState.Heading,
			Speed:    vehicleState.Speed,
			Stolen:   vehicleState.Stolen,
			Police:   vehicleState.Police,
			Occupied: vehicleState.Occupied(),
		}
	}
	for id, policeState := range gameState.Police {
		view.Police[id] = types.PoliceView{
			Position: policeState.Position,
			Heading:  policeState.Heading,
			Alert:    policeState.Alert,
		}
	}
	for _, bulletState := range gameState.Bullets {
		view.Bullets = append(view.Bullets, types.BulletView{Position: bulletState.Position})
	}

	return view
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
