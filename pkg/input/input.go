package input

import (
	"context"
	"sync"
	"time"

	gametypes "github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/kinematic"
	"github.com/getawaygame/getaway/pkg/queue"
)

// Key names for raw device events. Frontends translate whatever their
// windowing layer reports into these.
const (
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyW      = "w"
	KeyA      = "a"
	KeyS      = "s"
	KeyD      = "d"
	KeyE      = "e"
	KeyQ      = "q"
	KeyK      = "k"
	KeyL      = "l"
	KeyM      = "m"
	Key1      = "1"
	Key2      = "2"
	KeyEscape = "escape"
)

// KeyEvent is a raw key transition from the input device.
type KeyEvent struct {
	Key  string
	Down bool
}

// Mapper translates raw device events into intents on the shared
// queue. Edge-triggered actions are enqueued as their key goes down;
// held movement and aim state is enqueued once per frame by Flush.
// Mapper is safe for concurrent use.
type Mapper struct {
	queue queue.Queue

	mu        sync.Mutex
	held      map[string]bool
	mouse     kinematic.Vector
	mouseDown bool
}

func NewMapper(q queue.Queue) *Mapper {
	return &Mapper{
		queue: q,
		held:  make(map[string]bool),
	}
}

// HandleKey processes a raw key transition.
func (m *Mapper) HandleKey(event KeyEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch event.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyW, KeyA, KeyS, KeyD:
		m.held[event.Key] = event.Down
		return
	}

	if !event.Down {
		return
	}

	switch event.Key {
	case KeyE:
		m.queue.Enqueue(&gametypes.EnterExitIntent{})
	case Key1:
		m.queue.Enqueue(&gametypes.SwitchWeaponIntent{Weapon: gametypes.WeaponPistol})
	case Key2:
		m.queue.Enqueue(&gametypes.SwitchWeaponIntent{Weapon: gametypes.WeaponShotgun})
	case KeyQ:
		m.queue.Enqueue(&gametypes.StartMissionIntent{})
	case KeyK:
		m.queue.Enqueue(&gametypes.SaveIntent{})
	case KeyL:
		m.queue.Enqueue(&gametypes.LoadIntent{})
	case KeyM:
		m.queue.Enqueue(&gametypes.ToggleMinimapIntent{})
	case KeyEscape:
		m.queue.Enqueue(&gametypes.QuitIntent{})
	}
}

// HandleMouseMove records the cursor position in map coordinates.
func (m *Mapper) HandleMouseMove(position kinematic.Vector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = position
}

// HandleMouseButton processes a primary button transition. A press
// fires immediately; while held, Flush keeps firing and the weapon
// cooldown paces the shots.
func (m *Mapper) HandleMouseButton(down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if down && !m.mouseDown {
		m.queue.Enqueue(&gametypes.FireIntent{Target: m.mouse})
	}
	m.mouseDown = down
}

// Flush enqueues the held movement, aim, and autofire state for one
// frame. Frontends call this once per frame, or use Run.
func (m *Mapper) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var x, y float64
	if m.held[KeyW] || m.held[KeyUp] {
		y -= 1
	}
	if m.held[KeyS] || m.held[KeyDown] {
		y += 1
	}
	if m.held[KeyA] || m.held[KeyLeft] {
		x -= 1
	}
	if m.held[KeyD] || m.held[KeyRight] {
		x += 1
	}

	m.queue.Enqueue(&gametypes.MoveIntent{InputX: x, InputY: y})
	m.queue.Enqueue(&gametypes.AimIntent{Target: m.mouse})
	if m.mouseDown {
		m.queue.Enqueue(&gametypes.FireIntent{Target: m.mouse})
	}
}

// Run flushes the held input state at the given interval until the
// context is cancelled.
func (m *Mapper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Flush()
		}
	}
}
