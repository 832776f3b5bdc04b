package repository

import (
	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// UpdateTotalLeads stores the derived lead count of a campaign
func (r *CampaignRepository) UpdateTotalLeads(id uint, total int64) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).Update("total_leads", total).Error
}
