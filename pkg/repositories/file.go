package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/getawaygame/getaway/pkg/repositories/models"
)

// FileRepository stores the snapshot as a single JSON record on disk.
// A missing file is the valid "no save yet" state, not corruption.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
	}
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) Save(ctx context.Context, snapshot *models.SaveSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	if err := os.WriteFile(r.path, b, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %v", err)
	}

	return nil
}

func (r *FileRepository) Load(ctx context.Context) (*models.SaveSnapshot, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read snapshot file: %v", err)
	}

	snapshot := &models.SaveSnapshot{}
	if err := json.Unmarshal(b, snapshot); err != nil {
		return nil, &ErrMalformed{Reason: err.Error()}
	}

	return snapshot, nil
}
