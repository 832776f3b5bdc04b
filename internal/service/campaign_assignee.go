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

// CampaignAssigneeService handles business logic for campaign assignments
type CampaignAssigneeService struct {
	repo         repository.CampaignAssigneeRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	validator    *validator.Validate
}

// NewCampaignAssigneeService creates a new campaign assignee service
func NewCampaignAssigneeService(
	repo repository.CampaignAssigneeRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *CampaignAssigneeService {
	return &CampaignAssigneeService{
		repo:         repo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		validator:    validator,
	}
}

// AssignUserRequest represents the request to add a user to a campaign
type AssignUserRequest struct {
	CampaignID     uint                `json:"campaign_id" validate:"required"`
	UserID         uint                `json:"user_id" validate:"required"`
	RoleInCampaign models.CampaignRole `json:"role_in_campaign,omitempty"`
}

// UpdateCampaignAssigneeRequest represents a partial update of an assignment
type UpdateCampaignAssigneeRequest struct {
	RoleInCampaign Optional[models.CampaignRole] `json:"role_in_campaign" swaggertype:"string"`
	IsActive       Optional[bool]                `json:"is_active" swaggertype:"boolean"`
}

// CampaignAssigneeResponse represents an assignment together with its user
type CampaignAssigneeResponse struct {
	ID             uint                `json:"id"`
	CampaignID     uint                `json:"campaign_id"`
	CampaignName   string              `json:"campaign_name,omitempty"`
	UserID         uint                `json:"user_id"`
	UserName       string              `json:"user_name,omitempty"`
	UserEmail      string              `json:"user_email,omitempty"`
	UserInitials   string              `json:"user_initials,omitempty"`
	UserRole       models.UserRole     `json:"user_role,omitempty"`
	AssignedBy     *uint               `json:"assigned_by,omitempty"`
	RoleInCampaign models.CampaignRole `json:"role_in_campaign"`
	IsActive       bool                `json:"is_active"`
	AssignedAt     string              `json:"assigned_at"`
}

// AssignUser adds a user to a campaign. A user may hold only one active assignment per campaign.
func (s *CampaignAssigneeService) AssignUser(req *AssignUserRequest, actingUserID uint) (*CampaignAssigneeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("campaign_id and user_id are required: %v", err))
	}
	role := req.RoleInCampaign
	if role == "" {
		role = models.CampaignRoleCaller
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidCampaignRole
	}

	if _, err := s.campaignRepo.GetByID(req.CampaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to verify campaign: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	_, err := s.repo.GetActiveByCampaignAndUser(req.CampaignID, req.UserID)
	if err == nil {
		return nil, apperrors.ErrCampaignAssigneeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}

	assignee := &models.CampaignAssignee{
		CampaignID:     req.CampaignID,
		UserID:         req.UserID,
		AssignedBy:     userRef(actingUserID),
		RoleInCampaign: role,
		IsActive:       true,
		AssignedAt:     time.Now(),
	}
	if err := s.repo.Create(assignee); err != nil {
		return nil, fmt.Errorf("failed to create campaign assignee: %w", err)
	}

	created, err := s.repo.GetByID(assignee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload campaign assignee: %w", err)
	}
	return toCampaignAssigneeResponse(created), nil
}

// GetByCampaign lists the active assignees of a campaign
func (s *CampaignAssigneeService) GetByCampaign(campaignID uint) ([]CampaignAssigneeResponse, error) {
	if _, err := s.campaignRepo.GetByID(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to verify campaign: %w", err)
	}
	assignees, err := s.repo.GetActiveByCampaignID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign assignees: %w", err)
	}
	return toCampaignAssigneeResponses(assignees), nil
}

// GetByUser lists the campaigns a user is actively assigned to
func (s *CampaignAssigneeService) GetByUser(userID uint) ([]CampaignAssigneeResponse, error) {
	assignees, err := s.repo.GetActiveByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user campaigns: %w", err)
	}
	return toCampaignAssigneeResponses(assignees), nil
}

// Update changes the role or active flag of an assignment
func (s *CampaignAssigneeService) Update(id uint, req *UpdateCampaignAssigneeRequest) (*CampaignAssigneeResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to get campaign assignee: %w", err)
	}

	updates := make(map[string]interface{})
	if req.RoleInCampaign.Set {
		if req.RoleInCampaign.Null || !req.RoleInCampaign.Value.IsValid() {
			return nil, apperrors.ErrInvalidCampaignRole
		}
		updates["role_in_campaign"] = req.RoleInCampaign.Value
	}
	if req.IsActive.Set {
		if req.IsActive.Null {
			return nil, apperrors.NewValidationError("is_active", "must not be null")
		}
		if req.IsActive.Value && !current.IsActive {
			// only one active assignment per user and campaign
			active, err := s.repo.GetActiveByCampaignAndUser(current.CampaignID, current.UserID)
			if err == nil && active.ID != id {
				return nil, apperrors.ErrCampaignAssigneeExists
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing assignment: %w", err)
			}
		}
		updates["is_active"] = req.IsActive.Value
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update campaign assignee: %w", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload campaign assignee: %w", err)
	}
	return toCampaignAssigneeResponse(updated), nil
}

// Remove deactivates a user's assignment in a campaign. The row is kept for history.
func (s *CampaignAssigneeService) Remove(campaignID, userID uint) error {
	found, err := s.repo.Deactivate(campaignID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove campaign assignee: %w", err)
	}
	if !found {
		return apperrors.ErrCampaignAssigneeNotFound
	}
	return nil
}

func toCampaignAssigneeResponse(a *models.CampaignAssignee) *CampaignAssigneeResponse {
	resp := &CampaignAssigneeResponse{
		ID:             a.ID,
		CampaignID:     a.CampaignID,
		UserID:         a.UserID,
		AssignedBy:     a.AssignedBy,
		RoleInCampaign: a.RoleInCampaign,
		IsActive:       a.IsActive,
		AssignedAt:     a.AssignedAt.Format(time.RFC3339),
	}
	if a.User != nil {
		resp.UserName = a.User.Name
		resp.UserEmail = a.User.Email
		resp.UserInitials = a.User.Initials
		resp.UserRole = a.User.Role
	}
	if a.Campaign != nil {
		resp.CampaignName = a.Campaign.Name
	}
	return resp
}

func toCampaignAssigneeResponses(assignees []models.CampaignAssignee) []CampaignAssigneeResponse {
	out := make([]CampaignAssigneeResponse, len(assignees))
	for i := range assignees {
		out[i] = *toCampaignAssigneeResponse(&assignees[i])
	}
	return out
}
