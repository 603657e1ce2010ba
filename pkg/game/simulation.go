package game

import (
	"context"
	"math"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/log"
	"github.com/getawaygame/getaway/pkg/repositories"
	"github.com/getawaygame/getaway/pkg/workers"
)

// updatePlayer advances the player one tick. While driving, the mounted
// vehicle does the moving and the player tracks it.
func (gm *GameManager) updatePlayer(deltaTime float64) {
	playerState := gm.gameState.Player
	playerState.Update(deltaTime)

	if playerState.Driving() {
		vehicleState, ok := gm.gameState.Vehicles[playerState.Mount.VehicleID]
		if !ok {
			log.Error("Player mounted in unknown vehicle %d", playerState.Mount.VehicleID)
			playerState.Mount = types.Mount{Kind: types.MountOnFoot}
			return
		}
		// InputY is screen-down positive, so forward throttle is -Y
		vehicleState.Update(deltaTime, -gm.moveInput.InputY, gm.moveInput.InputX)
		playerState.Position = vehicleState.Position
		playerState.Heading = vehicleState.Heading
		playerState.SyncObject()
		return
	}

	direction := kinematic.Vector{X: gm.moveInput.InputX, Y: gm.moveInput.InputY}.Normalized()
	dx := direction.X * constants.PlayerSpeed * deltaTime
	dy := direction.Y * constants.PlayerSpeed * deltaTime

	// Axis-separated checks let the player slide along walls
	if playerState.Object != nil {
		if collision := playerState.Object.Check(dx, 0, types.CollisionSpaceTagBuilding); collision != nil {
			dx = 0
		}
		if collision := playerState.Object.Check(0, dy, types.CollisionSpaceTagBuilding); collision != nil {
			dy = 0
		}
	}

	playerState.Position.X = kinematic.Clamp(playerState.Position.X+dx, constants.MapMargin, constants.MapWidth-constants.MapMargin)
	playerState.Position.Y = kinematic.Clamp(playerState.Position.Y+dy, constants.MapMargin, constants.MapHeight-constants.MapMargin)
	playerState.SyncObject()
}

// aim points the player at the target. Heading is vehicle-controlled
// while driving.
func (gm *GameManager) aim(target kinematic.Vector) {
	playerState := gm.gameState.Player
	if playerState.Driving() {
		return
	}
	playerState.Heading = playerState.Position.AngleTo(target)
}

// toggleMount enters the nearest vehicle in reach, or exits the current
// one.
func (gm *GameManager) toggleMount() {
	playerState := gm.gameState.Player

	if playerState.Driving() {
		vehicleState, ok := gm.gameState.Vehicles[playerState.Mount.VehicleID]
		if ok {
			vehicleState.OccupantID = 0
			side := vehicleState.Heading + math.Pi/2
			offset := constants.VehicleHeight/2 + constants.PlayerWidth/2 + constants.VehicleExitOffset
			playerState.Position = vehicleState.Position.Add(kinematic.FromAngle(side).Scale(offset))
			playerState.Position.X = kinematic.Clamp(playerState.Position.X, constants.MapMargin, constants.MapWidth-constants.MapMargin)
			playerState.Position.Y = kinematic.Clamp(playerState.Position.Y, constants.MapMargin, constants.MapHeight-constants.MapMargin)
		}
		playerState.Mount = types.Mount{Kind: types.MountOnFoot}
		playerState.SyncObject()
		return
	}

	vehicleID, vehicleState := gm.nearestVehicle(playerState.Position, constants.InteractRadius)
	if vehicleState == nil {
		return
	}
	if vehicleState.Police {
		gm.hud.Push("The cruiser is locked")
		return
	}
	if vehicleState.Occupied() {
		return
	}

	vehicleState.OccupantID = types.PlayerHandle
	vehicleState.Stolen = true
	playerState.Mount = types.Mount{Kind: types.MountDriving, VehicleID: vehicleID}
	playerState.Position = vehicleState.Position
	playerState.SyncObject()

	mission := gm.gameState.Mission
	if mission.Phase == types.MissionActive && vehicleID == mission.TargetVehicleID {
		gm.hud.Push("That's the one! Get it to the drop-off")
	}
}

// nearestVehicle returns the closest vehicle within maxDistance of the
// position, or (0, nil) if there is none.
func (gm *GameManager) nearestVehicle(position kinematic.Vector, maxDistance float64) (uint32, *types.VehicleState) {
	var bestID uint32
	var best *types.VehicleState
	bestDistance := maxDistance
	for id, vehicleState := range gm.gameState.Vehicles {
		distance := position.DistanceTo(vehicleState.Position)
		if distance <= bestDistance {
			bestID = id
			best = vehicleState
			bestDistance = distance
		}
	}
	return bestID, best
}

// fireWeapon spawns projectiles toward the target and raises the wanted
// level. A shot is refused while the weapon is cooling down or empty.
func (gm *GameManager) fireWeapon(target kinematic.Vector) {
	playerState := gm.gameState.Player

	if playerState.Weapon == types.WeaponUnarmed {
		return
	}
	if playerState.FireCooldown > 0 {
		return
	}
	if playerState.Ammo[playerState.Weapon] <= 0 {
		gm.hud.Push("Out of ammo")
		return
	}

	angle := playerState.Position.AngleTo(target)
	if !playerState.Driving() {
		playerState.Heading = angle
	}

	switch playerState.Weapon {
	case types.WeaponPistol:
		muzzle := playerState.Position.Add(kinematic.FromAngle(angle).Scale(constants.BulletMuzzleOffset))
		gm.gameState.AddBullet(types.NewBulletState(muzzle, angle,
			constants.PistolBulletSpeed, constants.PistolBulletTTL, constants.PistolDamage))
	case types.WeaponShotgun:
		for i := 0; i < constants.ShotgunPellets; i++ {
			pelletAngle := angle + (gm.rng.Float64()*2-1)*constants.ShotgunSpread
			muzzle := playerState.Position.Add(kinematic.FromAngle(pelletAngle).Scale(constants.BulletMuzzleOffset))
			gm.gameState.AddBullet(types.NewBulletState(muzzle, pelletAngle,
				constants.ShotgunBulletSpeed, constants.ShotgunBulletTTL, constants.ShotgunDamage))
		}
	}

	playerState.Ammo[playerState.Weapon]--
	playerState.FireCooldown = playerState.Weapon.Cooldown()
	playerState.MarkFired()
	gm.gameState.Wanted = kinematic.Clamp(gm.gameState.Wanted+1, 0, constants.MaxWanted)
}

// switchWeapon selects a weapon slot. Armed slots are locked while
// their ammo reserve is empty.
func (gm *GameManager) switchWeapon(weapon types.Weapon) {
	if weapon >= types.WeaponCount {
		log.Warn("Ignoring switch to unknown weapon %d", weapon)
		return
	}
	playerState := gm.gameState.Player
	if playerState.Weapon == weapon {
		return
	}
	if weapon != types.WeaponUnarmed && playerState.Ammo[weapon] <= 0 {
		gm.hud.Push("No ammo for " + weapon.String())
		return
	}
	playerState.Weapon = weapon
	gm.hud.Push("Equipped " + weapon.String())
}

// updateBullets advances all bullets and resolves their hits.
func (gm *GameManager) updateBullets(deltaTime float64) {
	for id, bulletState := range gm.gameState.Bullets {
		bulletState.Update(deltaTime)
		if bulletState.Expired() {
			gm.gameState.RemoveBullet(id)
			continue
		}
		if bulletState.Object != nil {
			if collision := bulletState.Object.Check(0, 0, types.CollisionSpaceTagBuilding); collision != nil {
				gm.gameState.RemoveBullet(id)
				continue
			}
		}
		gm.resolveBulletHit(id, bulletState)
	}
}

// resolveBulletHit applies the first police or vehicle hit for the
// bullet, removing the bullet on impact.
func (gm *GameManager) resolveBulletHit(bulletID uint32, bulletState *types.BulletState) {
	if bulletState.Object == nil {
		return
	}

	for policeID, policeState := range gm.gameState.Police {
		if policeState.Object == nil || !bulletState.Object.SharesCells(policeState.Object) {
			continue
		}
		policeState.TakeDamage(bulletState.Damage)
		gm.gameState.RemoveBullet(bulletID)
		if policeState.IsDead() {
			gm.gameState.RemovePolice(policeID)
			log.Debug("Police agent %d down", policeID)
		}
		return
	}

	mountedID := gm.gameState.Player.Mount.VehicleID
	for vehicleID, vehicleState := range gm.gameState.Vehicles {
		if gm.gameState.Player.Driving() && vehicleID == mountedID {
			continue
		}
		if vehicleState.Object == nil || !bulletState.Object.SharesCells(vehicleState.Object) {
			continue
		}
		vehicleState.TakeDamage(bulletState.Damage)
		gm.gameState.RemoveBullet(bulletID)
		return
	}
}

// updateWanted decays the wanted level and spawns reinforcements while
// police attention persists.
func (gm *GameManager) updateWanted(deltaTime float64) {
	gameState := gm.gameState
	if gameState.Wanted <= 0 {
		gm.reinforce = constants.ReinforceBaseInterval
		return
	}

	gameState.Wanted = math.Max(0, gameState.Wanted-constants.WantedDecayPerSecond*deltaTime)

	gm.reinforce -= deltaTime
	if gm.reinforce > 0 {
		return
	}
	gm.spawnReinforcement()
	gm.reinforce = math.Max(constants.ReinforceMinInterval,
		constants.ReinforceBaseInterval-gameState.Wanted*2)
}

// spawnReinforcement adds a pursuing police agent at a random map edge.
func (gm *GameManager) spawnReinforcement() {
	inset := constants.PoliceHeight
	var position kinematic.Vector
	switch gm.rng.Intn(4) {
	case 0:
		position = kinematic.Vector{X: gm.rng.Float64() * constants.MapWidth, Y: inset}
	case 1:
		position = kinematic.Vector{X: gm.rng.Float64() * constants.MapWidth, Y: constants.MapHeight - inset}
	case 2:
		position = kinematic.Vector{X: inset, Y: gm.rng.Float64() * constants.MapHeight}
	default:
		position = kinematic.Vector{X: constants.MapWidth - inset, Y: gm.rng.Float64() * constants.MapHeight}
	}

	policeState := types.NewPoliceState(position.X, position.Y)
	policeState.Alert = types.PoliceAlertPursuing
	id := gm.gameState.AddPolice(policeState)
	log.Info("Police reinforcement %d arrived at wanted level %.1f", id, gm.gameState.Wanted)
	gm.hud.Push("Police reinforcements arrived")
}

// requestSave snapshots the player and hands it to the save worker
// without blocking the game loop.
func (gm *GameManager) requestSave() {
	request := workers.SaveSnapshotRequest{
		Timestamp: gm.gameState.Timestamp,
		Snapshot:  SaveSnapshotFromPlayer(gm.gameState.Player),
	}
	select {
	case gm.saveRequestChan <- request:
		log.Debug("Queued save request")
	default:
		log.Warn("Save request channel is full, dropping request")
		gm.hud.Push("Save failed")
	}
}

// loadSnapshot restores the persisted player fields in place. Only
// position, health, and money come back; the rest of the world is left
// as it is. A mounted player is dismounted so the restored position
// sticks.
func (gm *GameManager) loadSnapshot(ctx context.Context) {
	snapshot, err := gm.repository.Load(ctx)
	if err != nil {
		switch {
		case repositories.IsNotFound(err):
			gm.hud.Push("No saved game")
		case repositories.IsMalformed(err):
			log.Error("Save data is malformed: %v", err)
			gm.hud.Push("Save data is corrupted")
		default:
			log.Error("Failed to load snapshot: %v", err)
			gm.hud.Push("Load failed")
		}
		return
	}

	playerState := gm.gameState.Player
	if playerState.Driving() {
		if vehicleState, ok := gm.gameState.Vehicles[playerState.Mount.VehicleID]; ok {
			vehicleState.OccupantID = 0
		}
		playerState.Mount = types.Mount{Kind: types.MountOnFoot}
	}
	ApplySnapshotToPlayer(snapshot, playerState)
	playerState.SyncObject()
	gm.hud.Push("Game loaded")
}
