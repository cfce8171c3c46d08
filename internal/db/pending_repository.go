package db

import (
	"time"

	"coffeejournal/internal/models"
	"gorm.io/gorm"
)

// PendingSubmissionRepository persists staged wizard snapshots. Each slot
// holds at most one snapshot; saving again overwrites the previous one.
type PendingSubmissionRepository struct {
	database *gorm.DB
}

func NewPendingSubmissionRepository(database *gorm.DB) *PendingSubmissionRepository {
	return &PendingSubmissionRepository{database: database}
}

func (repo *PendingSubmissionRepository) Save(slot string, snapshot []byte, timestamp time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing := models.PendingSubmission{}
		result := tx.Where("slot = ?", slot).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			entry := models.PendingSubmission{
				Slot:      slot,
				Snapshot:  snapshot,
				Timestamp: timestamp,
			}
			return tx.Create(&entry).Error
		}
		existing.Snapshot = snapshot
		existing.Timestamp = timestamp
		return tx.Save(&existing).Error
	})
}

func (repo *PendingSubmissionRepository) Get(slot string) (models.PendingSubmission, bool, error) {
	entry := models.PendingSubmission{}
	result := repo.database.Where("slot = ?", slot).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.PendingSubmission{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PendingSubmission{}, false, nil
	}
	return entry, true, nil
}

func (repo *PendingSubmissionRepository) Delete(slot string) error {
	return repo.database.Where("slot = ?", slot).Delete(&models.PendingSubmission{}).Error
}

func (repo *PendingSubmissionRepository) Has(slot string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.PendingSubmission{}).
		Where("slot = ?", slot).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
