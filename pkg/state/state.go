package state

import (
	"context"

	gametypes "github.com/getawaygame/getaway/pkg/game/types"
)

// Manager provides shared access to the latest render view.
// Implementations must be thread-safe: the game loop publishes with Set
// after each tick and renderers read with Get.
type Manager interface {
	// Get returns the most recently published render view.
	Get(ctx context.Context) (*gametypes.RenderView, error)
	// Set publishes a render view.
	Set(ctx context.Context, view *gametypes.RenderView) error
}
