package types

import (
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/google/uuid"
)

// RenderView is the read-only snapshot of the world published once per
// frame for renderers and HUDs. It is immutable once published.
type RenderView struct {
	Timestamp int64                   `json:"timestamp"`
	Player    PlayerView              `json:"player"`
	Vehicles  map[uint32]VehicleView  `json:"vehicles"`
	Police    map[uint32]PoliceView   `json:"police"`
	Bullets   []BulletView            `json:"bullets"`
	Mission   MissionView             `json:"mission"`
	Wanted    float64                 `json:"wanted"`
	Messages  []string                `json:"messages"`
	Minimap   bool                    `json:"minimap"`
}

type PlayerView struct {
	Position kinematic.Vector `json:"position"`
	Heading  float64          `json:"heading"`
	Health   int              `json:"health"`
	Money    int              `json:"money"`
	Weapon   Weapon           `json:"weapon"`
	Ammo     int              `json:"ammo"`
	Mount    Mount            `json:"mount"`
}

type VehicleView struct {
	Position kinematic.Vector `json:"position"`
	Heading  float64          `json:"heading"`
	Speed    float64          `json:"speed"`
	Stolen   bool             `json:"stolen"`
	Police   bool             `json:"police"`
	Occupied bool             `json:"occupied"`
}

type PoliceView struct {
	Position kinematic.Vector `json:"position"`
	Heading  float64          `json:"heading"`
	Alert    PoliceAlert      `json:"alert"`
}

type BulletView struct {
	Position kinematic.Vector `json:"position"`
}

type MissionView struct {
	Phase           MissionPhase     `json:"phase"`
	ID              uuid.UUID        `json:"id,omitempty"`
	TargetVehicleID uint32           `json:"targetVehicleId,omitempty"`
	DropOff         kinematic.Vector `json:"dropOff"`
	Reward          int              `json:"reward"`
}
