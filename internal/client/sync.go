package client

import (
	"context"
	"sync"

	"patient-record-service/internal/models"

	"go.uber.org/zap"
)

// recordLister is the part of the API client the sync state depends on.
type recordLister interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
}

// SyncState holds the last-fetched full record list as the client's working
// copy. The store remains the authority: every mutation round-trips through
// the service, except the local removal applied after a confirmed delete.
type SyncState struct {
	mu       sync.RWMutex
	api      recordLister
	patients []models.Patient
	logger   *zap.Logger
}

func NewSyncState(api recordLister, logger *zap.Logger) *SyncState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncState{
		api:    api,
		logger: logger,
	}
}

// Refresh replaces the working copy with the service's current list. On
// failure the prior copy is retained and the error returned; there is no
// automatic retry.
func (s *SyncState) Refresh(ctx context.Context) error {
	patients, err := s.api.ListPatients(ctx)
	if err != nil {
		s.logger.Warn("Refresh failed, keeping prior working copy", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.patients = patients
	s.mu.Unlock()

	s.logger.Debug("Working copy refreshed", zap.Int("count", len(patients)))
	return nil
}

// RemoveLocal drops the record with the given internal key from the working
// copy without a server round-trip. Used after a confirmed delete; if the
// delete failed undetected, local and server state diverge until the next
// Refresh.
func (s *SyncState) RemoveLocal(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.patients[:0]
	for _, p := range s.patients {
		if p.ID != key {
			filtered = append(filtered, p)
		}
	}
	s.patients = filtered
}

// Snapshot returns a copy of the current working copy.
func (s *SyncState) Snapshot() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Patient, len(s.patients))
	copy(snapshot, s.patients)
	return snapshot
}

// Len returns the size of the working copy.
func (s *SyncState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}
