package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/getawaygame/getaway/pkg/collisions"
	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/log"
	"github.com/getawaygame/getaway/pkg/queue"
	"github.com/getawaygame/getaway/pkg/repositories"
	"github.com/getawaygame/getaway/pkg/state"
	"github.com/getawaygame/getaway/pkg/workers"
)

type GameManager struct {
	intentQueue      queue.Queue
	repository       repositories.Repository
	gameState        *types.GameState
	cityMap          *collisions.CityMap
	stateManager     state.Manager
	saveRequestChan  chan<- workers.SaveSnapshotRequest
	noticeChan       <-chan string
	gameLoopInterval time.Duration
	rng              *rand.Rand

	hud       *hudLog
	moveInput types.MoveIntent
	minimap   bool
	reinforce float64
	quit      bool
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	IntentQueue      queue.Queue
	Repository       repositories.Repository
	GameState        *types.GameState
	CityMap          *collisions.CityMap
	StateManager     state.Manager
	SaveRequestChan  chan<- workers.SaveSnapshotRequest
	NoticeChan       <-chan string
	GameLoopInterval time.Duration
	Seed             int64
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		intentQueue:      opts.IntentQueue,
		repository:       opts.Repository,
		gameState:        opts.GameState,
		cityMap:          opts.CityMap,
		stateManager:     opts.StateManager,
		saveRequestChan:  opts.SaveRequestChan,
		noticeChan:       opts.NoticeChan,
		gameLoopInterval: opts.GameLoopInterval,
		rng:              rand.New(rand.NewSource(opts.Seed)),
		hud:              newHUDLog(),
		minimap:          true,
		reinforce:        constants.ReinforceBaseInterval,
	}
}

// Start starts the game loop. It returns when the context is cancelled
// or a quit intent is processed.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.initializeGameState(ctx); err != nil {
		return fmt.Errorf("failed to initialize game state: %v", err)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	deltaTime := gm.gameLoopInterval.Seconds()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			if err := gm.gameTick(ctx, t, deltaTime); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
			if gm.quit {
				log.Info("Quit requested, stopping game loop")
				return nil
			}
		}
	}
}

func (gm *GameManager) initializeGameState(_ context.Context) error {
	playerState := types.NewPlayerState(constants.PlayerStartingX, constants.PlayerStartingY)
	gm.gameState.SetPlayer(playerState)

	for i := 0; i < constants.NumVehicles; i++ {
		position := gm.randomSpawn(constants.VehicleWidth, constants.VehicleHeight)
		gm.gameState.AddVehicle(types.NewVehicleState(position.X, position.Y, false))
	}
	for i := 0; i < constants.NumPoliceVehicles; i++ {
		position := gm.randomSpawn(constants.VehicleWidth, constants.VehicleHeight)
		gm.gameState.AddVehicle(types.NewVehicleState(position.X, position.Y, true))
	}
	for i := 0; i < constants.NumPolice; i++ {
		position := gm.randomSpawn(constants.PoliceWidth, constants.PoliceHeight)
		gm.gameState.AddPolice(types.NewPoliceState(position.X, position.Y))
	}

	gm.hud.Push("Welcome! Q: mission | E: enter | K: save | L: load")

	return nil
}

// randomSpawn picks a position clear of buildings, giving up after a
// few attempts in favor of the last candidate.
func (gm *GameManager) randomSpawn(width float64, height float64) kinematic.Vector {
	var position kinematic.Vector
	for i := 0; i < 10; i++ {
		position = kinematic.Vector{
			X: 50 + gm.rng.Float64()*(constants.MapWidth-100),
			Y: 50 + gm.rng.Float64()*(constants.MapHeight-100),
		}
		if gm.cityMap == nil || !gm.cityMap.CollidesBuilding(position.X-width/2, position.Y-height/2, width, height) {
			break
		}
	}
	return position
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time, deltaTime float64) error {
	deltaTime = clampDeltaTime(deltaTime)
	gm.gameState.Timestamp = t.UnixMilli()

	gm.drainNotices()
	gm.processIntents(ctx)
	gm.updatePlayer(deltaTime)
	gm.updateBullets(deltaTime)
	gm.updatePolice(deltaTime)
	gm.updateWanted(deltaTime)
	gm.updateMission()
	gm.hud.Update(deltaTime)

	return gm.publishView(ctx)
}

// processIntents drains all pending intents from the queue and applies
// them to the game state.
func (gm *GameManager) processIntents(ctx context.Context) {
	pendingIntents, err := gm.intentQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read intents: %v", err)
		return
	}
	for _, item := range pendingIntents {
		switch intent := item.(type) {
		case *types.MoveIntent:
			gm.moveInput = *intent
		case *types.AimIntent:
			gm.aim(intent.Target)
		case *types.FireIntent:
			gm.fireWeapon(intent.Target)
		case *types.EnterExitIntent:
			gm.toggleMount()
		case *types.SwitchWeaponIntent:
			gm.switchWeapon(intent.Weapon)
		case *types.StartMissionIntent:
			gm.startMission()
		case *types.SaveIntent:
			gm.requestSave()
		case *types.LoadIntent:
			gm.loadSnapshot(ctx)
		case *types.ToggleMinimapIntent:
			gm.minimap = !gm.minimap
		case *types.QuitIntent:
			gm.quit = true
		default:
			log.Error("Unhandled intent type: %T", intent)
		}
	}
}

// drainNotices pulls pending worker notices into the HUD.
func (gm *GameManager) drainNotices() {
	for {
		select {
		case notice := <-gm.noticeChan:
			gm.hud.Push(notice)
		default:
			return
		}
	}
}

// publishView builds the read-only render view for this frame and
// publishes it for renderers.
func (gm *GameManager) publishView(ctx context.Context) error {
	if gm.stateManager == nil {
		return nil
	}
	view := RenderViewFromState(gm.gameState, gm.hud.Texts(), gm.minimap)
	if err := gm.stateManager.Set(ctx, view); err != nil {
		return fmt.Errorf("failed to publish render view: %v", err)
	}
	return nil
}

// clampDeltaTime keeps the timestep in a sane range: never negative,
// and capped so a stalled host loop cannot teleport entities.
func clampDeltaTime(deltaTime float64) float64 {
	return kinematic.Clamp(deltaTime, 0, constants.MaxDeltaTime)
}
