package db

import (
	"coffeejournal/internal/models"
	"gorm.io/gorm"
)

type TastingRepository struct {
	database *gorm.DB
}

func NewTastingRepository(database *gorm.DB) *TastingRepository {
	return &TastingRepository{database: database}
}

// ListByUser returns the user's tastings, most recent first.
func (repo *TastingRepository) ListByUser(userID uint) ([]models.Tasting, error) {
	tastings := make([]models.Tasting, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tastings).Error; err != nil {
		return nil, err
	}
	return tastings, nil
}

func (repo *TastingRepository) FindByIDForUser(tastingID uint, userID uint) (models.Tasting, bool, error) {
	entry := models.Tasting{}
	result := repo.database.
		Where("id = ? AND user_id = ?", tastingID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.Tasting{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Tasting{}, false, nil
	}
	return entry, true, nil
}

func (repo *TastingRepository) Create(entry *models.Tasting) error {
	return repo.database.Create(entry).Error
}

func (repo *TastingRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Tasting{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
