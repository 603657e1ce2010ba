package types

import (
	"github.com/getawaygame/getaway/pkg/game/constants"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type BulletState struct {
	Position kinematic.Vector
	Velocity kinematic.Vector
	TTL      float64
	Damage   int16
	Object   *resolv.Object
}

func NewBulletState(position kinematic.Vector, angle float64, speed float64, ttl float64, damage int16) *BulletState {
	return &BulletState{
		Position: position,
		Velocity: kinematic.FromAngle(angle).Scale(speed),
		TTL:      ttl,
		Damage:   damage,
		Object: resolv.NewObject(position.X-constants.BulletSize/2, position.Y-constants.BulletSize/2,
			constants.BulletSize, constants.BulletSize, CollisionSpaceTagBullet),
	}
}

// Update advances the bullet one tick.
func (b *BulletState) Update(deltaTime float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
	b.TTL -= deltaTime
	b.SyncObject()
}

// Expired returns true when the bullet has run out of flight time or
// left the map.
func (b *BulletState) Expired() bool {
	if b.TTL <= 0 {
		return true
	}
	return b.Position.X < 0 || b.Position.X > constants.MapWidth ||
		b.Position.Y < 0 || b.Position.Y > constants.MapHeight
}

// SyncObject moves the collision object to the bullet's position.
func (b *BulletState) SyncObject() {
	if b.Object == nil {
		return
	}
	b.Object.Position.X = b.Position.X - constants.BulletSize/2
	b.Object.Position.Y = b.Position.Y - constants.BulletSize/2
	b.Object.Update()
}
