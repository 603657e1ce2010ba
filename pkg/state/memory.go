package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/getawaygame/getaway/pkg/game/types"
)

type InMemoryManager struct {
	lock sync.RWMutex
	view *gametypes.RenderView
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{}
}

// Get returns the last published view. Views are built fresh every tick
// and never mutated after publishing, so no copy is made.
func (m *InMemoryManager) Get(ctx context.Context) (*gametypes.RenderView, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.view == nil {
		return nil, fmt.Errorf("no view has been published")
	}
	return m.view, nil
}

func (m *InMemoryManager) Set(ctx context.Context, view *gametypes.RenderView) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if view == nil {
		return fmt.Errorf("view is nil")
	}

	m.view = view
	return nil
}
