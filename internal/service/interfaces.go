package service

import (
	"context"
	"io"

	"crm-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadImportServiceInterface defines the interface for bulk lead imports
type LeadImportServiceInterface interface {
	Import(ctx context.Context, req *BulkImportRequest, actingUserID uint) (*BulkImportResponse, error)
	ImportSpreadsheet(ctx context.Context, campaignID uint, callers []uint, filename string, r io.Reader, actingUserID uint) (*BulkImportResponse, error)
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	CreateLead(ctx context.Context, req *CreateLeadRequest, actingUserID uint) (*LeadResponse, error)
	GetLead(id uint) (*LeadResponse, error)
	GetAllLeads(limit, offset int) (*LeadListResponse, error)
	UpdateLead(id uint, req *UpdateLeadRequest) (*LeadResponse, error)
	DeleteLead(id uint) error
	AssignLead(leadID, userID, actingUserID uint) (*LeadResponse, error)
	UnassignLead(leadID, actingUserID uint) (*LeadResponse, error)
	BulkAssign(req *BulkAssignRequest, actingUserID uint) ([]BulkAssignResult, error)
	GetLeadsByAssignment(assignmentID uint) ([]LeadResponse, error)
	GetUnassignedLeads(campaignID uint) ([]LeadResponse, error)
}

// CampaignAssigneeServiceInterface defines the interface for campaign assignee service
type CampaignAssigneeServiceInterface interface {
	AssignUser(req *AssignUserRequest, actingUserID uint) (*CampaignAssigneeResponse, error)
	GetByCampaign(campaignID uint) ([]CampaignAssigneeResponse, error)
	GetByUser(userID uint) ([]CampaignAssigneeResponse, error)
	Update(id uint, req *UpdateCampaignAssigneeRequest) (*CampaignAssigneeResponse, error)
	Remove(campaignID, userID uint) error
}

// AssigneeLeadServiceInterface defines the interface for assignee-lead service
type AssigneeLeadServiceInterface interface {
	GetByCampaign(campaignID uint) ([]AssigneeLeadResponse, error)
	GetByAssignee(userID uint) ([]AssigneeLeadResponse, error)
	GetByLead(leadID uint) (*AssigneeLeadResponse, error)
	GetHistory(leadID uint) (*LeadHistoryResponse, error)
	UpdateStatus(id uint, req *UpdateStatusRequest, actingUserID uint) (*AssigneeLeadResponse, error)
	GetStageStats() ([]models.StageStats, error)
}
