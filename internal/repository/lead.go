package repository

import (
	"crm-backend/internal/database/models"

	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves leads with pagination, newest first
func (r *LeadRepository) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// FindByEmail retrieves the first lead in any campaign with this email, ignoring case
func (r *LeadRepository) FindByEmail(email string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.Order("id ASC").First(&lead, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByPhone retrieves the first lead in any campaign with exactly this phone
func (r *LeadRepository) FindByPhone(phone string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.Order("id ASC").First(&lead, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update applies a partial update to a lead
func (r *LeadRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Lead{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a lead
func (r *LeadRepository) Delete(id uint) error {
	return r.db.Delete(&models.Lead{}, id).Error
}

// GetByAssignment retrieves the leads held by a campaign assignment
func (r *LeadRepository) GetByAssignment(assignmentID uint) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("assigned_to = ?", assignmentID).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// GetUnassignedByCampaign retrieves the leads of a campaign that nobody holds
func (r *LeadRepository) GetUnassignedByCampaign(campaignID uint) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("campaign_id = ? AND assigned_to IS NULL", campaignID).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// CountByCampaign counts the leads of a campaign
func (r *LeadRepository) CountByCampaign(campaignID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}
