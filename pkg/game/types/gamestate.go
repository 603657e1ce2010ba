package types

import "github.com/solarlune/resolv"

// GameState is the world: every entity table, the mission, and the
// collision space. It is exclusively owned by the game loop; renderers
// only ever see the published RenderView.
type GameState struct {
	// Timestamp is the time at which the game state was generated
	Timestamp int64
	// Player is the single player character
	Player *PlayerState
	// Vehicles maps vehicle handles to vehicle states
	Vehicles map[uint32]*VehicleState
	// Police maps police handles to police agent states
	Police map[uint32]*PoliceState
	// Bullets maps bullet handles to in-flight bullets
	Bullets map[uint32]*BulletState
	// Mission is the current mission state
	Mission *MissionState
	// Wanted is the police attention level
	Wanted float64
	// CollisionSpace is a resolv.Space used for collision detection
	CollisionSpace *resolv.Space

	nextHandle uint32
}

func NewGameState(collisionSpace *resolv.Space) *GameState {
	return &GameState{
		Vehicles:       make(map[uint32]*VehicleState),
		Police:         make(map[uint32]*PoliceState),
		Bullets:        make(map[uint32]*BulletState),
		Mission:        NewMissionState(),
		CollisionSpace: collisionSpace,
		nextHandle:     PlayerHandle,
	}
}

// SetPlayer installs the player and adds it to the collision space.
func (g *GameState) SetPlayer(state *PlayerState) {
	g.Player = state
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Add(state.Object)
	}
}

// AddVehicle assigns a handle to the vehicle and adds it to the
// collision space.
func (g *GameState) AddVehicle(state *VehicleState) uint32 {
	id := g.allocHandle()
	g.Vehicles[id] = state
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Add(state.Object)
	}
	return id
}

// AddPolice assigns a handle to the police agent and adds it to the
// collision space.
func (g *GameState) AddPolice(state *PoliceState) uint32 {
	id := g.allocHandle()
	g.Police[id] = state
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Add(state.Object)
	}
	return id
}

// RemovePolice deletes the police agent and its collision object.
func (g *GameState) RemovePolice(id uint32) {
	state, ok := g.Police[id]
	if !ok {
		return
	}
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Remove(state.Object)
	}
	delete(g.Police, id)
}

// AddBullet assigns a handle to the bullet and adds it to the
// collision space.
func (g *GameState) AddBullet(state *BulletState) uint32 {
	id := g.allocHandle()
	g.Bullets[id] = state
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Add(state.Object)
	}
	return id
}

// RemoveBullet deletes the bullet and its collision object.
func (g *GameState) RemoveBullet(id uint32) {
	state, ok := g.Bullets[id]
	if !ok {
		return
	}
	if g.CollisionSpace != nil && state.Object != nil {
		g.CollisionSpace.Remove(state.Object)
	}
	delete(g.Bullets, id)
}

func (g *GameState) allocHandle() uint32 {
	g.nextHandle++
	return g.nextHandle
}
