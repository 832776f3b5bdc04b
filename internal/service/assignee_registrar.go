package service

import (
	"errors"
	"fmt"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"gorm.io/gorm"
)

// AssigneeRegistrar makes sure a user holds an active assignment in a campaign
type AssigneeRegistrar struct {
	assigneeRepo repository.CampaignAssigneeRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	userRepo     repository.UserRepositoryInterface
}

// NewAssigneeRegistrar creates a new assignee registrar
func NewAssigneeRegistrar(
	assigneeRepo repository.CampaignAssigneeRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *AssigneeRegistrar {
	return &AssigneeRegistrar{
		assigneeRepo: assigneeRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
	}
}

// EnsureAssignee returns the active assignment of userID in campaignID, creating a caller
// assignment recorded as made by actingUserID when none exists. created reports which happened.
func (r *AssigneeRegistrar) EnsureAssignee(campaignID, userID, actingUserID uint) (*models.CampaignAssignee, bool, error) {
	existing, err := r.assigneeRepo.GetActiveByCampaignAndUser(campaignID, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up campaign assignee: %w", err)
	}

	if _, err := r.campaignRepo.GetByID(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrCampaignNotFound
		}
		return nil, false, fmt.Errorf("failed to verify campaign: %w", err)
	}
	if _, err := r.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrUserNotFound
		}
		return nil, false, fmt.Errorf("failed to verify user: %w", err)
	}

	assignee := &models.CampaignAssignee{
		CampaignID:     campaignID,
		UserID:         userID,
		RoleInCampaign: models.CampaignRoleCaller,
		IsActive:       true,
		AssignedAt:     time.Now(),
	}
	if actingUserID != 0 {
		assignee.AssignedBy = &actingUserID
	}
	if err := r.assigneeRepo.Create(assignee); err != nil {
		return nil, false, fmt.Errorf("failed to create campaign assignee: %w", err)
	}

	// Re-read so the joined user name is available to callers
	created, err := r.assigneeRepo.GetByID(assignee.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload campaign assignee: %w", err)
	}
	return created, true, nil
}
