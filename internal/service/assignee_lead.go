package service

import (
	"errors"
	"fmt"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AssigneeLeadService exposes the assignee-lead audit trail and its status lifecycle
type AssigneeLeadService struct {
	repo      repository.AssigneeLeadRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// NewAssigneeLeadService creates a new assignee-lead service
func NewAssigneeLeadService(
	repo repository.AssigneeLeadRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *AssigneeLeadService {
	return &AssigneeLeadService{
		repo:      repo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// UpdateStatusRequest represents a status transition of an assignee-lead record
type UpdateStatusRequest struct {
	Status models.LeadStatus `json:"status" validate:"required"`
	Notes  *string           `json:"notes,omitempty"`
}

// AssigneeLeadResponse represents an assignee-lead record
type AssigneeLeadResponse struct {
	ID           uint              `json:"id"`
	CampaignID   uint              `json:"campaign_id"`
	AssigneeID   uint              `json:"assignee_id"`
	AssigneeName string            `json:"assignee_name,omitempty"`
	LeadID       uint              `json:"lead_id"`
	LeadEmail    *string           `json:"lead_email,omitempty"`
	LeadPhone    *string           `json:"lead_phone,omitempty"`
	AssignedBy   *uint             `json:"assigned_by,omitempty"`
	Status       models.LeadStatus `json:"status"`
	Notes        *string           `json:"notes,omitempty"`
	AssignedAt   string            `json:"assigned_at"`
}

// LeadHistoryResponse holds every record of a lead and the transitions between them
type LeadHistoryResponse struct {
	LeadID  uint                       `json:"lead_id"`
	Records []AssigneeLeadResponse     `json:"records"`
	Events  []models.AssigneeLeadEvent `json:"events"`
}

// GetByCampaign lists the current records of a campaign
func (s *AssigneeLeadService) GetByCampaign(campaignID uint) ([]AssigneeLeadResponse, error) {
	records, err := s.repo.GetCurrentByCampaignID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignee leads: %w", err)
	}
	return toAssigneeLeadResponses(records), nil
}

// GetByAssignee lists the current records held by a user
func (s *AssigneeLeadService) GetByAssignee(userID uint) ([]AssigneeLeadResponse, error) {
	records, err := s.repo.GetCurrentByAssigneeID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignee leads: %w", err)
	}
	return toAssigneeLeadResponses(records), nil
}

// GetByLead returns the current record of a lead
func (s *AssigneeLeadService) GetByLead(leadID uint) (*AssigneeLeadResponse, error) {
	record, err := s.repo.GetCurrentByLeadID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssigneeLeadNotFound
		}
		return nil, fmt.Errorf("failed to get assignee lead: %w", err)
	}
	return toAssigneeLeadResponse(record), nil
}

// GetHistory returns all records and transitions of a lead, oldest first
func (s *AssigneeLeadService) GetHistory(leadID uint) (*LeadHistoryResponse, error) {
	if _, err := s.leadRepo.GetByID(leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	records, err := s.repo.GetHistoryByLeadID(leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead history: %w", err)
	}
	events, err := s.repo.GetEventsByLeadID(leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead events: %w", err)
	}
	return &LeadHistoryResponse{LeadID: leadID, Records: toAssigneeLeadResponses(records), Events: events}, nil
}

// UpdateStatus moves a record along its lifecycle
func (s *AssigneeLeadService) UpdateStatus(id uint, req *UpdateStatusRequest, actingUserID uint) (*AssigneeLeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("status", "is required")
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssigneeLeadNotFound
		}
		return nil, fmt.Errorf("failed to get assignee lead: %w", err)
	}
	if !record.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, record.Status, req.Status)
	}

	if err := s.repo.Transition(id, req.Status, req.Notes, userRef(actingUserID)); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	record.Status = req.Status
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	return toAssigneeLeadResponse(record), nil
}

// GetStageStats returns per-assignee counts by lifecycle stage
func (s *AssigneeLeadService) GetStageStats() ([]models.StageStats, error) {
	stats, err := s.repo.GetStageStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get stage statistics: %w", err)
	}
	return stats, nil
}

func toAssigneeLeadResponse(r *models.AssigneeLead) *AssigneeLeadResponse {
	resp := &AssigneeLeadResponse{
		ID:         r.ID,
		CampaignID: r.CampaignID,
		AssigneeID: r.AssigneeID,
		LeadID:     r.LeadID,
		AssignedBy: r.AssignedBy,
		Status:     r.Status,
		Notes:      r.Notes,
		AssignedAt: r.AssignedAt.Format(time.RFC3339),
	}
	if r.Assignee != nil {
		resp.AssigneeName = r.Assignee.Name
	}
	if r.Lead != nil {
		resp.LeadEmail = r.Lead.Email
		resp.LeadPhone = r.Lead.Phone
	}
	return resp
}

func toAssigneeLeadResponses(records []models.AssigneeLead) []AssigneeLeadResponse {
	out := make([]AssigneeLeadResponse, len(records))
	for i := range records {
		out[i] = *toAssigneeLeadResponse(&records[i])
	}
	return out
}
