package repositories

import (
	"context"

	"github.com/getawaygame/getaway/pkg/repositories/models"
)

// DefaultSavePath is where the file backend stores the snapshot.
const DefaultSavePath = "getaway_save.json"

type Repository interface {
	Close(ctx context.Context) error
	// Save writes the snapshot, overwriting any prior one.
	Save(ctx context.Context, snapshot *models.SaveSnapshot) error
	// Load reads the most recent snapshot. Returns ErrNotFound if no
	// snapshot has ever been saved and ErrMalformed if the stored
	// record cannot be decoded.
	Load(ctx context.Context) (*models.SaveSnapshot, error)
}
