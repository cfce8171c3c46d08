package services

import (
	"encoding/json"
	"fmt"
	"time"

	"coffeejournal/internal/models"
	"coffeejournal/internal/wizard"
	"github.com/rs/zerolog"
)

type PendingSubmissionStore interface {
	Save(slot string, snapshot []byte, timestamp time.Time) error
	Get(slot string) (models.PendingSubmission, bool, error)
	Delete(slot string) error
	Has(slot string) (bool, error)
}

// PendingService stages wizard snapshots for clients that are not signed in
// yet. Each slot holds at most one snapshot.
type PendingService struct {
	store  PendingSubmissionStore
	logger zerolog.Logger
}

func NewPendingService(store PendingSubmissionStore, logger zerolog.Logger) *PendingService {
	return &PendingService{store: store, logger: logger}
}

// Stage serializes the snapshot and stores it under the slot, replacing any
// previous snapshot there.
func (service *PendingService) Stage(slot string, snapshot wizard.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode pending snapshot: %w", err)
	}
	if err := service.store.Save(slot, payload, snapshot.Timestamp); err != nil {
		service.logger.Error().Err(err).Str("slot", slot).Msg("staging pending submission failed")
		return err
	}
	service.logger.Debug().Str("slot", slot).Msg("pending submission staged")
	return nil
}

// Restore loads and decodes the staged snapshot for the slot. A corrupt
// snapshot is dropped rather than returned.
func (service *PendingService) Restore(slot string) (wizard.Snapshot, bool, error) {
	entry, found, err := service.store.Get(slot)
	if err != nil {
		return wizard.Snapshot{}, false, err
	}
	if !found {
		return wizard.Snapshot{}, false, nil
	}

	snapshot := wizard.Snapshot{}
	if err := json.Unmarshal(entry.Snapshot, &snapshot); err != nil {
		service.logger.Warn().Err(err).Str("slot", slot).Msg("dropping unreadable pending submission")
		if deleteErr := service.store.Delete(slot); deleteErr != nil {
			return wizard.Snapshot{}, false, deleteErr
		}
		return wizard.Snapshot{}, false, nil
	}
	return snapshot, true, nil
}

func (service *PendingService) Discard(slot string) error {
	return service.store.Delete(slot)
}

func (service *PendingService) Exists(slot string) (bool, error) {
	return service.store.Has(slot)
}
