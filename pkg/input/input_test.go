package input

import (
	"testing"

	gametypes "github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_EdgeTriggeredKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want interface{}
	}{
		{
			name: "enter exit",
			key:  KeyE,
			want: &gametypes.EnterExitIntent{},
		},
		{
			name: "pistol slot",
			key:  Key1,
			want: &gametypes.SwitchWeaponIntent{Weapon: gametypes.WeaponPistol},
		},
		{
			name: "shotgun slot",
			key:  Key2,
			want: &gametypes.SwitchWeaponIntent{Weapon: gametypes.WeaponShotgun},
		},
		{
			name: "start mission",
			key:  KeyQ,
			want: &gametypes.StartMissionIntent{},
		},
		{
			name: "save",
			key:  KeyK,
			want: &gametypes.SaveIntent{},
		},
		{
			name: "load",
			key:  KeyL,
			want: &gametypes.LoadIntent{},
		},
		{
			name: "quit",
			key:  KeyEscape,
			want: &gametypes.QuitIntent{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queue.NewInMemoryQueue(8)
			m := NewMapper(q)

			m.HandleKey(KeyEvent{Key: tt.key, Down: true})
			m.HandleKey(KeyEvent{Key: tt.key, Down: false})

			messages, err := q.ReadAllMessages()
			require.NoError(t, err)
			require.Len(t, messages, 1, "key up must not enqueue a second intent")
			assert.Equal(t, tt.want, messages[0])
		})
	}
}

func TestMapper_FlushHeldMovement(t *testing.T) {
	q := queue.NewInMemoryQueue(8)
	m := NewMapper(q)

	m.HandleKey(KeyEvent{Key: KeyW, Down: true})
	m.HandleKey(KeyEvent{Key: KeyD, Down: true})
	m.HandleMouseMove(kinematic.Vector{X: 100, Y: 200})
	m.Flush()

	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, &gametypes.MoveIntent{InputX: 1, InputY: -1}, messages[0])
	assert.Equal(t, &gametypes.AimIntent{Target: kinematic.Vector{X: 100, Y: 200}}, messages[1])

	// releasing the keys clears the movement
	m.HandleKey(KeyEvent{Key: KeyW, Down: false})
	m.HandleKey(KeyEvent{Key: KeyD, Down: false})
	m.Flush()

	messages, err = q.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, &gametypes.MoveIntent{InputX: 0, InputY: 0}, messages[0])
}

func TestMapper_FirePressAndHold(t *testing.T) {
	q := queue.NewInMemoryQueue(8)
	m := NewMapper(q)

	m.HandleMouseMove(kinematic.Vector{X: 50, Y: 60})
	m.HandleMouseButton(true)

	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, &gametypes.FireIntent{Target: kinematic.Vector{X: 50, Y: 60}}, messages[0])

	// held button keeps firing on flush
	m.Flush()
	messages, err = q.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, &gametypes.FireIntent{Target: kinematic.Vector{X: 50, Y: 60}}, messages[2])

	// released button stops
	m.HandleMouseButton(false)
	m.Flush()
	messages, err = q.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, messages, 2)
}
