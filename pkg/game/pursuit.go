package game

import (
	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/log"
)

// updatePolice advances every police agent one tick and handles the
// patrol/pursuit transitions.
func (gm *GameManager) updatePolice(deltaTime float64) {
	playerState := gm.gameState.Player
	playerHot := gm.playerIsHot()

	for id, policeState := range gm.gameState.Police {
		distance := policeState.Position.DistanceTo(playerState.Position)

		switch policeState.Alert {
		case types.PoliceAlertPatrol:
			if playerHot && distance <= constants.DetectionRadius {
				policeState.Alert = types.PoliceAlertPursuing
				policeState.ResetDisengage()
				log.Debug("Police agent %d spotted the player", id)
			}
		case types.PoliceAlertPursuing:
			// Pursuit is sticky: it lapses only after the player has
			// stayed out of reach for a while
			if distance > constants.DisengageRadius {
				policeState.AdvanceDisengage(deltaTime)
				if policeState.DisengageTime() >= constants.DisengageDuration {
					policeState.Alert = types.PoliceAlertPatrol
					policeState.ResetDisengage()
					log.Debug("Police agent %d lost the player", id)
				}
			} else {
				policeState.ResetDisengage()
			}
		}

		switch policeState.Alert {
		case types.PoliceAlertPursuing:
			policeState.Pursue(deltaTime, playerState.Position)
		default:
			policeState.Wander(deltaTime, gm.rng)
		}

		gm.resolvePoliceContact(policeState, deltaTime)
	}
}

// playerIsHot reports whether the player currently draws police
// attention: a live wanted level, a recent shot, or a stolen ride.
func (gm *GameManager) playerIsHot() bool {
	if gm.gameState.Wanted > 0 {
		return true
	}
	playerState := gm.gameState.Player
	if playerState.FiredRecently() {
		return true
	}
	if playerState.Driving() {
		if vehicleState, ok := gm.gameState.Vehicles[playerState.Mount.VehicleID]; ok && vehicleState.Stolen {
			return true
		}
	}
	return false
}

// resolvePoliceContact applies contact damage when a pursuing agent
// reaches the player.
func (gm *GameManager) resolvePoliceContact(policeState *types.PoliceState, deltaTime float64) {
	if policeState.Alert != types.PoliceAlertPursuing {
		return
	}
	playerState := gm.gameState.Player
	if policeState.Object == nil || playerState.Object == nil {
		return
	}
	if !policeState.Object.SharesCells(playerState.Object) {
		return
	}
	damage := int(constants.PoliceContactDamagePerSecond * deltaTime)
	if damage < 1 {
		damage = 1
	}
	playerState.TakeDamage(damage)
}
