package types

import "github.com/getawaygame/getaway/pkg/game/constants"

const (
	CollisionSpaceTagPlayer   string = "player"
	CollisionSpaceTagVehicle  string = "vehicle"
	CollisionSpaceTagPolice   string = "police"
	CollisionSpaceTagBullet   string = "bullet"
	CollisionSpaceTagBuilding string = "building"
)

// PlayerHandle is the occupant handle representing the player.
// Entity handles are never zero; zero means "no reference".
const PlayerHandle uint32 = 1

type Weapon uint8

const (
	WeaponUnarmed Weapon = iota
	WeaponPistol
	WeaponShotgun

	WeaponCount = 3
)

func (w Weapon) String() string {
	switch w {
	case WeaponUnarmed:
		return "unarmed"
	case WeaponPistol:
		return "pistol"
	case WeaponShotgun:
		return "shotgun"
	default:
		return "unknown"
	}
}

// Cooldown returns the time between shots for the weapon.
func (w Weapon) Cooldown() float64 {
	switch w {
	case WeaponPistol:
		return constants.PistolCooldown
	case WeaponShotgun:
		return constants.ShotgunCooldown
	default:
		return 0
	}
}

type MountKind uint8

const (
	MountOnFoot MountKind = iota
	MountDriving
)

// Mount is the player's mount state. VehicleID is valid only when
// Kind is MountDriving.
type Mount struct {
	Kind      MountKind `json:"kind"`
	VehicleID uint32    `json:"vehicleId,omitempty"`
}
