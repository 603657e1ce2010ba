package types

import "github.com/getawaygame/getaway/pkg/kinematic"

// Intents are the discrete decoded player actions for one tick,
// produced by the input mapper and drained by the game loop.

// MoveIntent carries the held movement input. On foot InputX/InputY is
// a direction; while driving InputY is throttle (negative is forward,
// matching screen-up) and InputX is steering.
type MoveIntent struct {
	InputX float64
	InputY float64
}

// AimIntent points the player at a position in map coordinates.
type AimIntent struct {
	Target kinematic.Vector
}

// FireIntent fires the current weapon toward a position in map
// coordinates.
type FireIntent struct {
	Target kinematic.Vector
}

// EnterExitIntent toggles the player's mount state.
type EnterExitIntent struct{}

// SwitchWeaponIntent selects a weapon slot.
type SwitchWeaponIntent struct {
	Weapon Weapon
}

// StartMissionIntent requests a new mission.
type StartMissionIntent struct{}

// SaveIntent requests a snapshot save.
type SaveIntent struct{}

// LoadIntent requests a snapshot load.
type LoadIntent struct{}

// ToggleMinimapIntent flips the minimap flag in the render view.
type ToggleMinimapIntent struct{}

// QuitIntent ends the frame loop.
type QuitIntent struct{}
