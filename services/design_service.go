package services

import (
	"errors"
	"fmt"

	"github.com/Rambadrinathan/vatika-studio/database"
	"github.com/Rambadrinathan/vatika-studio/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxFreeRenditions is how many generations a user gets before payment.
const MaxFreeRenditions = 5

var ErrRenditionsExhausted = errors.New("free renditions exhausted")

// DesignService persists generated designs. A design is keyed by
// (user_id, budget, space_type): saving the same combination again replaces
// the prior render.
type DesignService struct{}

func NewDesignService() *DesignService {
	return &DesignService{}
}

// Save upserts the design row for this user, budget and space type.
func (d *DesignService) Save(userID uint, budget int, spaceType, renderURL, prompt string) (*models.Design, error) {
	design := models.Design{
		UserID:    userID,
		Budget:    budget,
		SpaceType: spaceType,
		RenderURL: renderURL,
		Prompt:    prompt,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "budget"}, {Name: "space_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"render_url", "prompt", "updated_at"}),
	}).Create(&design).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save design: %w", err)
	}
	return &design, nil
}

// List returns the user's saved designs, newest first.
func (d *DesignService) List(userID uint) ([]models.Design, error) {
	var designs []models.Design
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&designs).Error; err != nil {
		return nil, fmt.Errorf("failed to load designs: %w", err)
	}
	return designs, nil
}

// Delete removes one design by its (budget, space type) key.
func (d *DesignService) Delete(userID uint, budget int, spaceType string) error {
	result := database.DB.Where("user_id = ? AND budget = ? AND space_type = ?", userID, budget, spaceType).
		Delete(&models.Design{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete design: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ConsumeRendition atomically spends one free rendition. Returns
// ErrRenditionsExhausted once the quota is used up.
func (d *DesignService) ConsumeRendition(userID uint) error {
	result := database.DB.Model(&models.User{}).
		Where("id = ? AND renditions_used < ?", userID, MaxFreeRenditions).
		UpdateColumn("renditions_used", gorm.Expr("renditions_used + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to update rendition count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRenditionsExhausted
	}
	return nil
}
