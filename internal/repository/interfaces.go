package repository

import (
	"crm-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the read access this service has to users
type UserRepositoryInterface interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	Create(campaign *models.Campaign) error
	GetByID(id uint) (*models.Campaign, error)
	UpdateTotalLeads(id uint, total int64) error
}

// CampaignAssigneeRepositoryInterface defines the interface for campaign assignee repository operations
type CampaignAssigneeRepositoryInterface interface {
	Create(assignee *models.CampaignAssignee) error
	GetByID(id uint) (*models.CampaignAssignee, error)
	GetActiveByCampaignAndUser(campaignID, userID uint) (*models.CampaignAssignee, error)
	GetActiveByCampaignID(campaignID uint) ([]models.CampaignAssignee, error)
	GetActiveByUserID(userID uint) ([]models.CampaignAssignee, error)
	Update(id uint, updates map[string]interface{}) error
	Deactivate(campaignID, userID uint) (bool, error)
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uint) (*models.Lead, error)
	GetAll(limit, offset int) ([]models.Lead, int64, error)
	FindByEmail(email string) (*models.Lead, error)
	FindByPhone(phone string) (*models.Lead, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	GetByAssignment(assignmentID uint) ([]models.Lead, error)
	GetUnassignedByCampaign(campaignID uint) ([]models.Lead, error)
	CountByCampaign(campaignID uint) (int64, error)
}

// AssigneeLeadRepositoryInterface defines the interface for assignee-lead audit operations
type AssigneeLeadRepositoryInterface interface {
	Create(record *models.AssigneeLead, changedBy *uint) error
	GetByID(id uint) (*models.AssigneeLead, error)
	GetCurrentByLeadID(leadID uint) (*models.AssigneeLead, error)
	GetCurrentByCampaignID(campaignID uint) ([]models.AssigneeLead, error)
	GetCurrentByAssigneeID(assigneeID uint) ([]models.AssigneeLead, error)
	GetHistoryByLeadID(leadID uint) ([]models.AssigneeLead, error)
	GetEventsByLeadID(leadID uint) ([]models.AssigneeLeadEvent, error)
	Transition(id uint, to models.LeadStatus, notes *string, changedBy *uint) error
	Reassign(leadID, campaignID, newAssigneeID, assignmentID uint, assignedBy *uint, notes *string) (*models.AssigneeLead, error)
	Close(leadID uint, note string, changedBy *uint) error
	GetStageStats() ([]models.StageStats, error)
}
