package workers

import (
	"context"

	"github.com/getawaygame/getaway/pkg/log"
	"github.com/getawaygame/getaway/pkg/repositories"
	"github.com/getawaygame/getaway/pkg/repositories/models"
)

// SaveSnapshotRequest asks the worker to persist a snapshot.
type SaveSnapshotRequest struct {
	Timestamp int64
	Snapshot  *models.SaveSnapshot
}

// SaveWorker persists snapshots off the game loop. The outcome of each
// request is reported on the notice channel as a HUD message; a failed
// save never stops the game.
type SaveWorker struct {
	repository repositories.Repository
	requests   <-chan SaveSnapshotRequest
	notices    chan<- string
}

type NewSaveWorkerOptions struct {
	Repository repositories.Repository
	Requests   <-chan SaveSnapshotRequest
	Notices    chan<- string
}

func NewSaveWorker(opts NewSaveWorkerOptions) *SaveWorker {
	return &SaveWorker{
		repository: opts.Repository,
		requests:   opts.Requests,
		notices:    opts.Notices,
	}
}

func (w *SaveWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case request := <-w.requests:
			w.save(ctx, request)
		}
	}
}

func (w *SaveWorker) save(ctx context.Context, request SaveSnapshotRequest) {
	if err := w.repository.Save(ctx, request.Snapshot); err != nil {
		log.Error("Failed to save snapshot: %v", err)
		w.notify("Save failed")
		return
	}
	log.Debug("Saved snapshot from timestamp %d", request.Timestamp)
	w.notify("Game saved")
}

func (w *SaveWorker) notify(text string) {
	select {
	case w.notices <- text:
	default:
		log.Warn("Notice channel is full, dropping: %s", text)
	}
}
