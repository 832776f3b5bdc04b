package repository

import (
	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

// CampaignAssigneeRepository handles database operations for campaign assignees
type CampaignAssigneeRepository struct {
	db *gorm.DB
}

// NewCampaignAssigneeRepository creates a new campaign assignee repository
func NewCampaignAssigneeRepository(db *gorm.DB) *CampaignAssigneeRepository {
	return &CampaignAssigneeRepository{db: db}
}

// Create creates a new campaign assignment
func (r *CampaignAssigneeRepository) Create(assignee *models.CampaignAssignee) error {
	return r.db.Create(assignee).Error
}

// GetByID retrieves an assignment with its user joined
func (r *CampaignAssigneeRepository) GetByID(id uint) (*models.CampaignAssignee, error) {
	var assignee models.CampaignAssignee
	if err := r.db.Preload("User").First(&assignee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assignee, nil
}

// GetActiveByCampaignAndUser retrieves the active assignment of a user in a campaign
func (r *CampaignAssigneeRepository) GetActiveByCampaignAndUser(campaignID, userID uint) (*models.CampaignAssignee, error) {
	var assignee models.CampaignAssignee
	err := r.db.Preload("User").
		Where("campaign_id = ? AND user_id = ? AND is_active = ?", campaignID, userID, true).
		First(&assignee).Error
	if err != nil {
		return nil, err
	}
	return &assignee, nil
}

// GetActiveByCampaignID retrieves the active assignments of a campaign, oldest first
func (r *CampaignAssigneeRepository) GetActiveByCampaignID(campaignID uint) ([]models.CampaignAssignee, error) {
	var assignees []models.CampaignAssignee
	err := r.db.Preload("User").
		Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Order("assigned_at ASC, id ASC").
		Find(&assignees).Error
	return assignees, err
}

// GetActiveByUserID retrieves the active assignments of a user with their campaigns
func (r *CampaignAssigneeRepository) GetActiveByUserID(userID uint) ([]models.CampaignAssignee, error) {
	var assignees []models.CampaignAssignee
	err := r.db.Preload("Campaign").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("assigned_at DESC").
		Find(&assignees).Error
	return assignees, err
}

// Update applies a partial update to an assignment
func (r *CampaignAssigneeRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.CampaignAssignee{}).Where("id = ?", id).Updates(updates).Error
}

// Deactivate clears the active flag of a user's assignment in a campaign.
// It reports whether an active row was found.
func (r *CampaignAssigneeRepository) Deactivate(campaignID, userID uint) (bool, error) {
	result := r.db.Model(&models.CampaignAssignee{}).
		Where("campaign_id = ? AND user_id = ? AND is_active = ?", campaignID, userID, true).
		Update("is_active", false)
	return result.RowsAffected > 0, result.Error
}
