package models

// SaveSnapshot is the persisted subset of the player state. Nothing
// else about the world is saved: loading restores these fields and
// leaves vehicles, police, and missions untouched.
type SaveSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
	Money  int     `json:"money"`
}
