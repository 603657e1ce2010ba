package types

import (
	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type PlayerState struct {
	Position     kinematic.Vector
	Heading      float64
	Health       int
	Money        int
	Weapon       Weapon
	Ammo         [WeaponCount]int
	FireCooldown float64
	Mount        Mount
	Object       *resolv.Object

	// recentFire counts down from the last shot; while positive the
	// player still registers as having fired recently.
	recentFire float64
}

func NewPlayerState(positionX float64, positionY float64) *PlayerState {
	p := &PlayerState{
		Position: kinematic.Vector{
			X: positionX,
			Y: positionY,
		},
		Health: constants.PlayerMaxHealth,
		Weapon: WeaponPistol,
		Mount:  Mount{Kind: MountOnFoot},
		Object: resolv.NewObject(positionX-constants.PlayerWidth/2, positionY-constants.PlayerHeight/2,
			constants.PlayerWidth, constants.PlayerHeight, CollisionSpaceTagPlayer),
	}
	p.Ammo[WeaponPistol] = constants.PlayerStartingPistolAmmo
	p.Ammo[WeaponShotgun] = constants.PlayerStartingShotgunAmmo
	return p
}

// Driving returns true if the player is mounted in a vehicle.
func (p *PlayerState) Driving() bool {
	return p.Mount.Kind == MountDriving
}

// FiredRecently returns true while the recent-fire window is open.
func (p *PlayerState) FiredRecently() bool {
	return p.recentFire > 0
}

// MarkFired opens the recent-fire window.
func (p *PlayerState) MarkFired() {
	p.recentFire = constants.RecentFireWindow
}

// Update advances the player's timers.
func (p *PlayerState) Update(deltaTime float64) {
	if p.FireCooldown > 0 {
		p.FireCooldown -= deltaTime
		if p.FireCooldown < 0 {
			p.FireCooldown = 0
		}
	}
	if p.recentFire > 0 {
		p.recentFire -= deltaTime
		if p.recentFire < 0 {
			p.recentFire = 0
		}
	}
}

// TakeDamage reduces the player's health, clamped to [0, max].
func (p *PlayerState) TakeDamage(damage int) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > constants.PlayerMaxHealth {
		p.Health = constants.PlayerMaxHealth
	}
}

// SyncObject moves the collision object to the player's position.
func (p *PlayerState) SyncObject() {
	if p.Object == nil {
		return
	}
	p.Object.Position.X = p.Position.X - constants.PlayerWidth/2
	p.Object.Position.Y = p.Position.Y - constants.PlayerHeight/2
	p.Object.Update()
}

// Copy returns a copy of the player state with an empty object reference.
func (p *PlayerState) Copy() *PlayerState {
	return &PlayerState{
		Position:     p.Position,
		Heading:      p.Heading,
		Health:       p.Health,
		Money:        p.Money,
		Weapon:       p.Weapon,
		Ammo:         p.Ammo,
		FireCooldown: p.FireCooldown,
		Mount:        p.Mount,
		recentFire:   p.recentFire,
	}
}
