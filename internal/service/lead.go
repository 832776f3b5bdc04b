package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LeadService handles business logic for single leads and their assignment
type LeadService struct {
	leadRepo         repository.LeadRepositoryInterface
	assigneeLeadRepo repository.AssigneeLeadRepositoryInterface
	assigneeRepo     repository.CampaignAssigneeRepositoryInterface
	campaignRepo     repository.CampaignRepositoryInterface
	registrar        *AssigneeRegistrar
	duplicates       *DuplicateChecker
	validator        *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepositoryInterface,
	assigneeLeadRepo repository.AssigneeLeadRepositoryInterface,
	assigneeRepo repository.CampaignAssigneeRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	registrar *AssigneeRegistrar,
	duplicates *DuplicateChecker,
	validator *validator.Validate,
) *LeadService {
	return &LeadService{
		leadRepo:         leadRepo,
		assigneeLeadRepo: assigneeLeadRepo,
		assigneeRepo:     assigneeRepo,
		campaignRepo:     campaignRepo,
		registrar:        registrar,
		duplicates:       duplicates,
		validator:        validator,
	}
}

// LeadInput carries the contact fields of a lead as sent by clients
type LeadInput struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	AltPhone      *string `json:"alt_phone,omitempty"`
	AddressLine   *string `json:"address_line,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Country       *string `json:"country,omitempty"`
	Zip           *string `json:"zip,omitempty"`
	Rating        *int    `json:"rating,omitempty"`
	CurrentStatus *string `json:"current_status,omitempty"`
}

func (l LeadInput) email() string {
	if l.Email == nil {
		return ""
	}
	return *l.Email
}

func (l LeadInput) phone() string {
	if l.Phone == nil {
		return ""
	}
	return *l.Phone
}

func (l LeadInput) toModel(campaignID uint) *models.Lead {
	return &models.Lead{
		FirstName:     l.FirstName,
		LastName:      l.LastName,
		Email:         trimmed(l.Email),
		Phone:         trimmed(l.Phone),
		AltPhone:      l.AltPhone,
		AddressLine:   l.AddressLine,
		City:          l.City,
		State:         l.State,
		Country:       l.Country,
		Zip:           l.Zip,
		Rating:        l.Rating,
		CurrentStatus: l.CurrentStatus,
		CampaignID:    campaignID,
	}
}

// trimmed stores contact keys the way duplicate checks compare them
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// CreateLeadRequest represents the request to create a single lead.
// AssignedTo is a user id; the user is registered as a caller of the campaign if needed.
type CreateLeadRequest struct {
	LeadInput
	CampaignID uint  `json:"campaign_id" validate:"required"`
	AssignedTo *uint `json:"assigned_to,omitempty"`
}

// UpdateLeadRequest represents a partial update of a lead's contact fields.
// Absent fields are left alone and null clears the column.
type UpdateLeadRequest struct {
	FirstName     Optional[string] `json:"first_name" swaggertype:"string"`
	LastName      Optional[string] `json:"last_name" swaggertype:"string"`
	Email         Optional[string] `json:"email" swaggertype:"string"`
	Phone         Optional[string] `json:"phone" swaggertype:"string"`
	AltPhone      Optional[string] `json:"alt_phone" swaggertype:"string"`
	AddressLine   Optional[string] `json:"address_line" swaggertype:"string"`
	City          Optional[string] `json:"city" swaggertype:"string"`
	State         Optional[string] `json:"state" swaggertype:"string"`
	Country       Optional[string] `json:"country" swaggertype:"string"`
	Zip           Optional[string] `json:"zip" swaggertype:"string"`
	Rating        Optional[int]    `json:"rating" swaggertype:"integer"`
	CurrentStatus Optional[string] `json:"current_status" swaggertype:"string"`
}

func (r *UpdateLeadRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	r.FirstName.apply(updates, "first_name")
	r.LastName.apply(updates, "last_name")
	if r.Email.Set && !r.Email.Null {
		r.Email.Value = strings.TrimSpace(r.Email.Value)
	}
	r.Email.apply(updates, "email")
	if r.Phone.Set && !r.Phone.Null {
		r.Phone.Value = strings.TrimSpace(r.Phone.Value)
	}
	r.Phone.apply(updates, "phone")
	r.AltPhone.apply(updates, "alt_phone")
	r.AddressLine.apply(updates, "address_line")
	r.City.apply(updates, "city")
	r.State.apply(updates, "state")
	r.Country.apply(updates, "country")
	r.Zip.apply(updates, "zip")
	r.Rating.apply(updates, "rating")
	r.CurrentStatus.apply(updates, "current_status")
	return updates
}

// BulkAssignRequest represents the request to hand several leads to one user
type BulkAssignRequest struct {
	LeadIDs    []uint `json:"lead_ids" validate:"required,min=1"`
	AssigneeID uint   `json:"assignee_id" validate:"required"`
}

// BulkAssignResult reports the outcome for one lead of a bulk assignment
type BulkAssignResult struct {
	LeadID  uint   `json:"lead_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// LeadResponse represents a lead returned by the API
type LeadResponse struct {
	ID            uint    `json:"id"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	AltPhone      *string `json:"alt_phone"`
	AddressLine   *string `json:"address_line"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Country       *string `json:"country"`
	Zip           *string `json:"zip"`
	Rating        *int    `json:"rating"`
	CurrentStatus *string `json:"current_status"`
	CampaignID    uint    `json:"campaign_id"`
	AssignedTo    *uint   `json:"assigned_to"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// LeadListResponse represents a page of leads
type LeadListResponse struct {
	Leads  []LeadResponse `json:"leads"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateLead creates a lead, optionally assigning it to a user of the campaign
func (s *LeadService) CreateLead(ctx context.Context, req *CreateLeadRequest, actingUserID uint) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("campaign_id is required: %v", err))
	}

	if _, err := s.campaignRepo.GetByID(req.CampaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to verify campaign: %w", err)
	}

	dup, err := s.duplicates.FindDuplicate(req.email(), req.phone())
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, apperrors.ErrDuplicateLead
	}

	var assignment *models.CampaignAssignee
	if req.AssignedTo != nil {
		assignment, _, err = s.registrar.EnsureAssignee(req.CampaignID, *req.AssignedTo, actingUserID)
		if err != nil {
			return nil, err
		}
	}

	lead := req.toModel(req.CampaignID)
	if assignment != nil {
		lead.AssignedTo = &assignment.ID
	}
	if err := s.leadRepo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if assignment != nil {
		note := fmt.Sprintf("Lead assigned during creation by user %d", actingUserID)
		record := &models.AssigneeLead{
			CampaignID: req.CampaignID,
			AssigneeID: assignment.UserID,
			LeadID:     lead.ID,
			AssignedBy: userRef(actingUserID),
			Notes:      &note,
		}
		if err := s.assigneeLeadRepo.Create(record, userRef(actingUserID)); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("lead_id", lead.ID).Error("Failed to create assignee lead record")
		}
	}

	return toLeadResponse(lead), nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(id uint) (*LeadResponse, error) {
	lead, err := s.getLead(id)
	if err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetAllLeads retrieves leads with pagination
func (s *LeadService) GetAllLeads(limit, offset int) (*LeadListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	leads, total, err := s.leadRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	return &LeadListResponse{Leads: toLeadResponses(leads), Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateLead applies the fields present in req
func (s *LeadService) UpdateLead(id uint, req *UpdateLeadRequest) (*LeadResponse, error) {
	if _, err := s.getLead(id); err != nil {
		return nil, err
	}
	if req.Rating.Set && !req.Rating.Null && req.Rating.Value < 0 {
		return nil, apperrors.NewValidationError("rating", "must not be negative")
	}
	if req.Email.Set && !req.Email.Null {
		if err := s.checkContactFree(id, req.Email.Value, ""); err != nil {
			return nil, err
		}
	}
	if req.Phone.Set && !req.Phone.Null {
		if err := s.checkContactFree(id, "", req.Phone.Value); err != nil {
			return nil, err
		}
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := s.leadRepo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update lead: %w", err)
		}
	}
	return s.GetLead(id)
}

// checkContactFree rejects an email or phone already held by a lead other than id.
// Blank values are not contact keys and always pass.
func (s *LeadService) checkContactFree(id uint, email, phone string) error {
	dup, err := s.duplicates.FindDuplicate(email, phone)
	if err != nil {
		return err
	}
	if dup != nil && dup.ID != id {
		return apperrors.ErrDuplicateLead
	}
	return nil
}

// DeleteLead removes a lead
func (s *LeadService) DeleteLead(id uint) error {
	if _, err := s.getLead(id); err != nil {
		return err
	}
	if err := s.leadRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// AssignLead hands a lead to a user who is an active assignee of the lead's campaign.
// The previous holder's audit record is closed and a Fresh one is opened.
func (s *LeadService) AssignLead(leadID, userID, actingUserID uint) (*LeadResponse, error) {
	lead, err := s.getLead(leadID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assigneeRepo.GetActiveByCampaignAndUser(lead.CampaignID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidAssignee
		}
		return nil, fmt.Errorf("failed to look up campaign assignee: %w", err)
	}

	current, err := s.assigneeLeadRepo.GetCurrentByLeadID(leadID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get current assignee lead: %w", err)
	}
	if err == nil && current.Status == models.LeadStatusWon {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	note := fmt.Sprintf("Lead reassigned by user %d", actingUserID)
	if _, err := s.assigneeLeadRepo.Reassign(leadID, lead.CampaignID, userID, assignment.ID, userRef(actingUserID), &note); err != nil {
		return nil, fmt.Errorf("failed to reassign lead: %w", err)
	}
	return s.GetLead(leadID)
}

// UnassignLead clears a lead's assignment and closes its current audit record
func (s *LeadService) UnassignLead(leadID, actingUserID uint) (*LeadResponse, error) {
	if _, err := s.getLead(leadID); err != nil {
		return nil, err
	}
	if err := s.assigneeLeadRepo.Close(leadID, "Unassigned", userRef(actingUserID)); err != nil {
		return nil, fmt.Errorf("failed to unassign lead: %w", err)
	}
	return s.GetLead(leadID)
}

// BulkAssign assigns each lead in turn, reporting per-lead failures
func (s *LeadService) BulkAssign(req *BulkAssignRequest, actingUserID uint) ([]BulkAssignResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("lead_ids and assignee_id are required: %v", err))
	}

	results := make([]BulkAssignResult, 0, len(req.LeadIDs))
	for _, leadID := range req.LeadIDs {
		result := BulkAssignResult{LeadID: leadID, Success: true}
		if _, err := s.AssignLead(leadID, req.AssigneeID, actingUserID); err != nil {
			result.Success = false
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results, nil
}

// GetLeadsByAssignment retrieves the leads held by a campaign assignment
func (s *LeadService) GetLeadsByAssignment(assignmentID uint) ([]LeadResponse, error) {
	if _, err := s.assigneeRepo.GetByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to get campaign assignee: %w", err)
	}
	leads, err := s.leadRepo.GetByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	return toLeadResponses(leads), nil
}

// GetUnassignedLeads retrieves the leads of a campaign that nobody holds
func (s *LeadService) GetUnassignedLeads(campaignID uint) ([]LeadResponse, error) {
	if _, err := s.campaignRepo.GetByID(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to verify campaign: %w", err)
	}
	leads, err := s.leadRepo.GetUnassignedByCampaign(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	return toLeadResponses(leads), nil
}

func (s *LeadService) getLead(id uint) (*models.Lead, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

func toLeadResponse(l *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:            l.ID,
		FirstName:     l.FirstName,
		LastName:      l.LastName,
		Email:         l.Email,
		Phone:         l.Phone,
		AltPhone:      l.AltPhone,
		AddressLine:   l.AddressLine,
		City:          l.City,
		State:         l.State,
		Country:       l.Country,
		Zip:           l.Zip,
		Rating:        l.Rating,
		CurrentStatus: l.CurrentStatus,
		CampaignID:    l.CampaignID,
		AssignedTo:    l.AssignedTo,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     l.UpdatedAt.Format(time.RFC3339),
	}
}

func toLeadResponses(leads []models.Lead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i := range leads {
		out[i] = *toLeadResponse(&leads[i])
	}
	return out
}
