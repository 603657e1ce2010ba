package game

import (
	"testing"
	"time"

	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/queue"
	"github.com/getawaygame/getaway/pkg/repositories"
	"github.com/getawaygame/getaway/pkg/workers"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameManager(t *testing.T, repository repositories.Repository, saveRequestChan chan workers.SaveSnapshotRequest) *GameManager {
	t.Helper()

	collisionSpace := resolv.NewSpace(int(constants.MapWidth), int(constants.MapHeight), 64, 64)
	gameState := types.NewGameState(collisionSpace)
	gameState.SetPlayer(types.NewPlayerState(constants.PlayerStartingX, constants.PlayerStartingY))

	return NewGameManager(NewGameManagerOptions{
		IntentQueue:      queue.NewInMemoryQueue(64),
		Repository:       repository,
		GameState:        gameState,
		SaveRequestChan:  saveRequestChan,
		NoticeChan:       make(chan string, 4),
		GameLoopInterval: time.Second / 60,
		Seed:             42,
	})
}

func addVehicleAt(gm *GameManager, x float64, y float64, police bool) (uint32, *types.VehicleState) {
	vehicleState := types.NewVehicleState(x, y, police)
	id := gm.gameState.AddVehicle(vehicleState)
	return id, vehicleState
}

func TestUpdatePlayer_ClampedToMap(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	gm.gameState.Player.Position = kinematic.Vector{X: 20, Y: 20}
	gm.gameState.Player.SyncObject()
	gm.moveInput = types.MoveIntent{InputX: -1, InputY: -1}

	for i := 0; i < 10; i++ {
		gm.updatePlayer(0.25)
	}

	assert.Equal(t, constants.MapMargin, gm.gameState.Player.Position.X)
	assert.Equal(t, constants.MapMargin, gm.gameState.Player.Position.Y)
}

func TestUpdatePlayer_DiagonalNotFaster(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	start := gm.gameState.Player.Position
	gm.moveInput = types.MoveIntent{InputX: 1, InputY: 1}

	gm.updatePlayer(0.1)

	moved := gm.gameState.Player.Position.DistanceTo(start)
	assert.InDelta(t, constants.PlayerSpeed*0.1, moved, 0.001)
}

func TestToggleMount_EnterExitRoundTrip(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	vehicleID, vehicleState := addVehicleAt(gm, playerState.Position.X+30, playerState.Position.Y, false)

	gm.toggleMount()

	require.True(t, playerState.Driving())
	assert.Equal(t, vehicleID, playerState.Mount.VehicleID)
	assert.Equal(t, types.PlayerHandle, vehicleState.OccupantID)
	assert.True(t, vehicleState.Stolen)

	gm.toggleMount()

	assert.False(t, playerState.Driving())
	assert.Equal(t, uint32(0), vehicleState.OccupantID)
	assert.LessOrEqual(t, playerState.Position.DistanceTo(vehicleState.Position), constants.InteractRadius+constants.VehicleWidth)
}

func TestToggleMount_OutOfReach(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	addVehicleAt(gm, playerState.Position.X+constants.InteractRadius+10, playerState.Position.Y, false)

	gm.toggleMount()

	assert.False(t, playerState.Driving())
}

func TestToggleMount_PoliceCruiserLocked(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	_, vehicleState := addVehicleAt(gm, playerState.Position.X+30, playerState.Position.Y, true)

	gm.toggleMount()

	assert.False(t, playerState.Driving())
	assert.Equal(t, uint32(0), vehicleState.OccupantID)
}

func TestFireWeapon_PistolSpawnsOneBullet(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	target := playerState.Position.Add(kinematic.Vector{X: 300})

	gm.fireWeapon(target)

	assert.Len(t, gm.gameState.Bullets, 1)
	assert.Equal(t, constants.PlayerStartingPistolAmmo-1, playerState.Ammo[types.WeaponPistol])
	assert.Equal(t, constants.PistolCooldown, playerState.FireCooldown)
	assert.True(t, playerState.FiredRecently())
	assert.Equal(t, 1.0, gm.gameState.Wanted)

	// a second shot is refused while the weapon cools down
	gm.fireWeapon(target)
	assert.Len(t, gm.gameState.Bullets, 1)
	assert.Equal(t, 1.0, gm.gameState.Wanted)
}

func TestFireWeapon_ShotgunSpawnsPellets(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	playerState.Weapon = types.WeaponShotgun

	gm.fireWeapon(playerState.Position.Add(kinematic.Vector{X: 300}))

	assert.Len(t, gm.gameState.Bullets, constants.ShotgunPellets)
	assert.Equal(t, constants.PlayerStartingShotgunAmmo-1, playerState.Ammo[types.WeaponShotgun])
}

func TestFireWeapon_EmptyWeapon(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player
	playerState.Ammo[types.WeaponPistol] = 0

	gm.fireWeapon(playerState.Position.Add(kinematic.Vector{X: 300}))

	assert.Empty(t, gm.gameState.Bullets)
	assert.Equal(t, 0.0, gm.gameState.Wanted)
	assert.False(t, playerState.FiredRecently())
	assert.Contains(t, gm.hud.Texts(), "Out of ammo")
}

func TestFireWeapon_Unarmed(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	gm.gameState.Player.Weapon = types.WeaponUnarmed

	gm.fireWeapon(kinematic.Vector{X: 100, Y: 100})

	assert.Empty(t, gm.gameState.Bullets)
}

func TestSwitchWeapon(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	playerState := gm.gameState.Player

	gm.switchWeapon(types.WeaponShotgun)
	assert.Equal(t, types.WeaponShotgun, playerState.Weapon)

	// unknown slots are ignored
	gm.switchWeapon(types.Weapon(9))
	assert.Equal(t, types.WeaponShotgun, playerState.Weapon)

	// empty slots are locked
	playerState.Ammo[types.WeaponPistol] = 0
	gm.switchWeapon(types.WeaponPistol)
	assert.Equal(t, types.WeaponShotgun, playerState.Weapon)

	// unarmed is always available
	gm.switchWeapon(types.WeaponUnarmed)
	assert.Equal(t, types.WeaponUnarmed, playerState.Weapon)
}

func TestUpdateBullets_ExpireByTTL(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	gm.gameState.AddBullet(types.NewBulletState(kinematic.Vector{X: 500, Y: 500}, 0, 100, 0.1, 10))

	gm.updateBullets(0.2)

	assert.Empty(t, gm.gameState.Bullets)
}

func TestUpdateWanted_Decays(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	gm.gameState.Wanted = 2.0

	gm.updateWanted(1.0)

	assert.InDelta(t, 2.0-constants.WantedDecayPerSecond, gm.gameState.Wanted, 0.0001)
}

func TestUpdateWanted_SpawnsReinforcements(t *testing.T) {
	gm := newTestGameManager(t, nil, nil)
	gm.gameState.Wanted = 3.0

	// burn down the reinforcement timer
	for i := 0; i < 13; i++ {
		gm.updateWanted(1.0)
	}

	require.NotEmpty(t, gm.gameState.Police)
	for _, policeState := range gm.gameState.Police {
		assert.Equal(t, types.PoliceAlertPursuing, policeState.Alert)
	}
}

func TestRequestSave(t *testing.T) {
	saveRequestChan := make(chan workers.SaveSnapshotRequest, 1)
	gm := newTestGameManager(t, nil, saveRequestChan)
	playerState := gm.gameState.Player
	playerState.Position = kinematic.Vector{X: 123, Y: 456}
	playerState.Health = 70
	playerState.Money = 1500

	gm.requestSave()

	require.Len(t, saveRequestChan, 1)
	request := <-saveRequestChan
	assert.Equal(t, 123.0, request.Snapshot.X)
	assert.Equal(t, 456.0, request.Snapshot.Y)
	assert.Equal(t, 70, request.Snapshot.Health)
	assert.Equal(t, 1500, request.Snapshot.Money)
}

func TestRequestSave_ChannelFull(t *testing.T) {
	saveRequestChan := make(chan workers.SaveSnapshotRequest, 1)
	saveRequestChan <- workers.SaveSnapshotRequest{}
	gm := newTestGameManager(t, nil, saveRequestChan)

	gm.requestSave()

	assert.Len(t, saveRequestChan, 1)
	assert.Contains(t, gm.hud.Texts(), "Save failed")
}
