package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/getawaygame/getaway/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockRepository) Save(ctx context.Context, snapshot *models.SaveSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *mockRepository) Load(ctx context.Context) (*models.SaveSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SaveSnapshot), args.Error(1)
}

func TestSaveWorker_Save(t *testing.T) {
	tests := []struct {
		name       string
		saveErr    error
		wantNotice string
	}{
		{
			name:       "successful save",
			saveErr:    nil,
			wantNotice: "Game saved",
		},
		{
			name:       "failed save",
			saveErr:    fmt.Errorf("disk full"),
			wantNotice: "Save failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &models.SaveSnapshot{X: 10, Y: 20, Health: 80, Money: 500}
			repo := &mockRepository{}
			repo.On("Save", mock.Anything, snapshot).Return(tt.saveErr).Once()

			requests := make(chan SaveSnapshotRequest, 1)
			notices := make(chan string, 1)
			worker := NewSaveWorker(NewSaveWorkerOptions{
				Repository: repo,
				Requests:   requests,
				Notices:    notices,
			})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go worker.Start(ctx)

			requests <- SaveSnapshotRequest{Timestamp: 1, Snapshot: snapshot}

			select {
			case notice := <-notices:
				assert.Equal(t, tt.wantNotice, notice)
			case <-time.After(time.Second):
				require.Fail(t, "timed out waiting for notice")
			}
			repo.AssertExpectations(t)
		})
	}
}
