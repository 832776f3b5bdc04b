package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/metrics"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	duplicateLeadMessage = "Duplicate found in database (email or phone)"
	noAssigneesMessage   = "no assignees available"
)

// LeadImportService imports batches of leads into a campaign and spreads them over its callers
type LeadImportService struct {
	leadRepo         repository.LeadRepositoryInterface
	assigneeLeadRepo repository.AssigneeLeadRepositoryInterface
	campaignRepo     repository.CampaignRepositoryInterface
	assigneeRepo     repository.CampaignAssigneeRepositoryInterface
	registrar        *AssigneeRegistrar
	duplicates       *DuplicateChecker
	planner          *DistributionPlanner
	sheets           *LeadSheetParser
	validator        *validator.Validate
	maxLeads         int
}

// NewLeadImportService creates a new lead import service. maxLeads <= 0 disables the batch size limit.
func NewLeadImportService(
	leadRepo repository.LeadRepositoryInterface,
	assigneeLeadRepo repository.AssigneeLeadRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	assigneeRepo repository.CampaignAssigneeRepositoryInterface,
	registrar *AssigneeRegistrar,
	duplicates *DuplicateChecker,
	planner *DistributionPlanner,
	validator *validator.Validate,
	maxLeads int,
) *LeadImportService {
	return &LeadImportService{
		leadRepo:         leadRepo,
		assigneeLeadRepo: assigneeLeadRepo,
		campaignRepo:     campaignRepo,
		assigneeRepo:     assigneeRepo,
		registrar:        registrar,
		duplicates:       duplicates,
		planner:          planner,
		sheets:           NewLeadSheetParser(),
		validator:        validator,
		maxLeads:         maxLeads,
	}
}

// BulkImportRequest represents the request to import leads into a campaign
type BulkImportRequest struct {
	Campaign uint        `json:"campaign" validate:"required"`
	Leads    []LeadInput `json:"leads" validate:"required"`
	Callers  []uint      `json:"callers"`
}

// LeadImportError reports a lead that was not imported
type LeadImportError struct {
	Lead  LeadInput `json:"lead"`
	Error string    `json:"error"`
}

// LeadAssignment reports which user received an imported lead
type LeadAssignment struct {
	LeadID       uint   `json:"lead_id"`
	AssigneeID   uint   `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
}

// DistributionSummary describes how the batch was spread. LeadsPerCaller is rounded up.
type DistributionSummary struct {
	TotalLeads     int `json:"total_leads"`
	TotalCallers   int `json:"total_callers"`
	LeadsPerCaller int `json:"leads_per_caller"`
}

// BulkImportResponse represents the outcome of a bulk import
type BulkImportResponse struct {
	Success             bool                `json:"success"`
	InsertedCount       int                 `json:"inserted_count"`
	ErrorCount          int                 `json:"error_count"`
	Errors              []LeadImportError   `json:"errors"`
	AssigneesAdded      int                 `json:"assignees_added"`
	AssigneeIDs         []uint              `json:"assignee_ids"`
	LeadAssignments     []LeadAssignment    `json:"lead_assignments"`
	DistributionSummary DistributionSummary `json:"distribution_summary"`
}

// Import creates the leads of req in its campaign, assigning them round-robin to the
// requested callers after a shuffle. Duplicates and insert failures are reported per lead.
// When no assignee is available the returned response lists every lead as failed and the
// error is ErrNoAssigneesAvailable.
func (s *LeadImportService) Import(ctx context.Context, req *BulkImportRequest, actingUserID uint) (*BulkImportResponse, error) {
	return s.run(ctx, req, actingUserID, metrics.SourceJSON)
}

// ImportSpreadsheet parses an uploaded .xlsx or .csv file and imports its rows like Import
func (s *LeadImportService) ImportSpreadsheet(ctx context.Context, campaignID uint, callers []uint, filename string, r io.Reader, actingUserID uint) (*BulkImportResponse, error) {
	leads, err := s.sheets.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	req := &BulkImportRequest{Campaign: campaignID, Leads: leads, Callers: callers}
	return s.run(ctx, req, actingUserID, metrics.SourceSpreadsheet)
}

func (s *LeadImportService) run(ctx context.Context, req *BulkImportRequest, actingUserID uint, source string) (*BulkImportResponse, error) {
	start := time.Now()
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": req.Campaign,
		"leads":       len(req.Leads),
		"callers":     len(req.Callers),
		"source":      source,
	})

	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("campaign and leads array are required: %v", err))
	}
	if s.maxLeads > 0 && len(req.Leads) > s.maxLeads {
		return nil, apperrors.ErrTooManyLeads
	}

	if _, err := s.campaignRepo.GetByID(req.Campaign); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to verify campaign: %w", err)
	}

	resp := &BulkImportResponse{
		Errors:          []LeadImportError{},
		AssigneeIDs:     []uint{},
		LeadAssignments: []LeadAssignment{},
	}

	assignees, err := s.resolveAssignees(ctx, req, actingUserID, resp)
	if err != nil {
		return nil, err
	}

	resp.DistributionSummary = DistributionSummary{
		TotalLeads:     len(req.Leads),
		TotalCallers:   len(assignees),
		LeadsPerCaller: LeadsPerCaller(len(req.Leads), len(assignees)),
	}

	if len(assignees) == 0 {
		for _, lead := range req.Leads {
			resp.Errors = append(resp.Errors, LeadImportError{Lead: lead, Error: noAssigneesMessage})
		}
		resp.ErrorCount = len(resp.Errors)
		log.Warn("Bulk import aborted: no assignees available")
		metrics.RecordImport(metrics.ImportOutcome{
			Source:      source,
			Failed:      resp.ErrorCount,
			NoAssignees: true,
			Duration:    time.Since(start),
		})
		return resp, apperrors.ErrNoAssigneesAvailable
	}

	plan, err := s.planner.Plan(req.Leads, assignees)
	if err != nil {
		return nil, err
	}

	duplicates, failed := 0, 0
	for _, planned := range plan {
		dup, err := s.duplicates.FindDuplicate(planned.Lead.email(), planned.Lead.phone())
		if err != nil {
			return nil, fmt.Errorf("bulk import aborted after %d leads: %w", resp.InsertedCount, err)
		}
		if dup != nil {
			duplicates++
			resp.Errors = append(resp.Errors, LeadImportError{Lead: planned.Lead, Error: duplicateLeadMessage})
			continue
		}

		assignee := planned.Assignee
		lead := planned.Lead.toModel(req.Campaign)
		lead.AssignedTo = &assignee.ID
		if err := s.leadRepo.Create(lead); err != nil {
			failed++
			log.WithError(err).Warn("Failed to create lead during bulk import")
			resp.Errors = append(resp.Errors, LeadImportError{Lead: planned.Lead, Error: err.Error()})
			continue
		}
		resp.InsertedCount++

		name := assigneeName(&assignee)
		note := fmt.Sprintf("Lead assigned during bulk import to caller %s", name)
		record := &models.AssigneeLead{
			CampaignID: req.Campaign,
			AssigneeID: assignee.UserID,
			LeadID:     lead.ID,
			AssignedBy: userRef(actingUserID),
			Status:     models.LeadStatusFresh,
			Notes:      &note,
		}
		if err := s.assigneeLeadRepo.Create(record, userRef(actingUserID)); err != nil {
			metrics.RecordAuditFailure()
			log.WithError(err).WithField("lead_id", lead.ID).Error("Failed to create assignee lead record")
		}

		resp.LeadAssignments = append(resp.LeadAssignments, LeadAssignment{
			LeadID:       lead.ID,
			AssigneeID:   assignee.UserID,
			AssigneeName: name,
		})
	}

	resp.ErrorCount = len(resp.Errors)
	resp.Success = true
	s.refreshCampaignTotal(req.Campaign, log)

	metrics.RecordImport(metrics.ImportOutcome{
		Source:         source,
		Inserted:       resp.InsertedCount,
		Duplicates:     duplicates,
		Failed:         failed,
		AssigneesAdded: resp.AssigneesAdded,
		Duration:       time.Since(start),
	})
	log.WithFields(map[string]interface{}{
		"inserted":        resp.InsertedCount,
		"errors":          resp.ErrorCount,
		"assignees_added": resp.AssigneesAdded,
	}).Info("Bulk import completed")

	return resp, nil
}

// resolveAssignees registers the requested callers in order, skipping failures and repeats.
// Without callers the campaign's current active assignees are used.
func (s *LeadImportService) resolveAssignees(ctx context.Context, req *BulkImportRequest, actingUserID uint, resp *BulkImportResponse) ([]models.CampaignAssignee, error) {
	if len(req.Callers) == 0 {
		assignees, err := s.assigneeRepo.GetActiveByCampaignID(req.Campaign)
		if err != nil {
			return nil, fmt.Errorf("failed to load campaign assignees: %w", err)
		}
		return assignees, nil
	}

	log := logger.WithContext(ctx)
	seen := make(map[uint]bool, len(req.Callers))
	assignees := make([]models.CampaignAssignee, 0, len(req.Callers))
	for _, userID := range req.Callers {
		if seen[userID] {
			continue
		}
		assignee, created, err := s.registrar.EnsureAssignee(req.Campaign, userID, actingUserID)
		if err != nil {
			log.WithError(err).WithField("caller_id", userID).Warn("Skipping caller that could not be assigned to campaign")
			continue
		}
		seen[userID] = true
		assignees = append(assignees, *assignee)
		if created {
			resp.AssigneesAdded++
			resp.AssigneeIDs = append(resp.AssigneeIDs, assignee.ID)
		}
	}
	return assignees, nil
}

func (s *LeadImportService) refreshCampaignTotal(campaignID uint, log *logger.Logger) {
	total, err := s.leadRepo.CountByCampaign(campaignID)
	if err == nil {
		err = s.campaignRepo.UpdateTotalLeads(campaignID, total)
	}
	if err != nil {
		log.WithError(err).Warn("Failed to refresh campaign lead total")
	}
}

func assigneeName(a *models.CampaignAssignee) string {
	if name := strings.TrimSpace(a.DisplayName()); name != "" {
		return name
	}
	return fmt.Sprintf("Caller %d", a.UserID)
}

func userRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
