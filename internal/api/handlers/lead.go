package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	service service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{service: service}
}

// CreateLead handles POST /api/v1/leads
// @Summary Create a lead
// @Description Create a single lead in a campaign. When assigned_to is given the user is registered as a caller of the campaign and receives the lead.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse "Created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Campaign or user not found"
// @Failure 409 {object} ErrorResponse "Duplicate lead"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead, err := h.service.CreateLead(c.Request.Context(), &req, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/leads
// @Summary List leads
// @Tags leads
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.LeadListResponse "Page of leads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, err := h.service.GetAllLeads(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to get leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /api/v1/leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} service.LeadResponse "Lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := uintParam(c, "id", "lead ID")
	if !ok {
		return
	}

	lead, err := h.service.GetLead(id)
	if err != nil {
		respondError(c, err, "Failed to get lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /api/v1/leads/:id
// @Summary Update lead
// @Description Partial update. Fields left out are unchanged and null clears a field.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param lead body service.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} service.LeadResponse "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Email or phone belongs to another lead"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := uintParam(c, "id", "lead ID")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead, err := h.service.UpdateLead(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /api/v1/leads/:id
// @Summary Delete lead
// @Tags leads
// @Param id path int true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := uintParam(c, "id", "lead ID")
	if !ok {
		return
	}

	if err := h.service.DeleteLead(id); err != nil {
		respondError(c, err, "Failed to delete lead")
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignLead handles PUT /api/v1/leads/:id/assign/:user_id
// @Summary Assign lead to a user
// @Description Hand the lead to an active assignee of its campaign. The previous holder's record is closed as Lost.
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} service.LeadResponse "Assigned lead"
// @Failure 400 {object} ErrorResponse "User is not an active assignee of the campaign"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Lead already won"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/assign/{user_id} [put]
func (h *LeadHandler) AssignLead(c *gin.Context) {
	id, ok := uintParam(c, "id", "lead ID")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "user_id", "user ID")
	if !ok {
		return
	}

	lead, err := h.service.AssignLead(id, userID, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to assign lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UnassignLead handles PUT /api/v1/leads/:id/unassign
// @Summary Unassign lead
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} service.LeadResponse "Unassigned lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/unassign [put]
func (h *LeadHandler) UnassignLead(c *gin.Context) {
	id, ok := uintParam(c, "id", "lead ID")
	if !ok {
		return
	}

	lead, err := h.service.UnassignLead(id, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to unassign lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// BulkAssign handles POST /api/v1/leads/bulk-assign
// @Summary Assign several leads to one user
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.BulkAssignRequest true "Lead ids and assignee"
// @Success 200 {object} map[string]interface{} "Per-lead results"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/bulk-assign [post]
func (h *LeadHandler) BulkAssign(c *gin.Context) {
	var req service.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	results, err := h.service.BulkAssign(&req, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to assign leads")
		return
	}

	assigned := 0
	for _, r := range results {
		if r.Success {
			assigned++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"assigned": assigned,
		"failed":   len(results) - assigned,
		"results":  results,
	})
}

// GetLeadsByAssignment handles GET /api/v1/leads/assignee/:assignment_id
// @Summary List leads held by a campaign assignment
// @Tags leads
// @Produce json
// @Param assignment_id path int true "Campaign assignee ID"
// @Success 200 {array} service.LeadResponse "Leads"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Campaign assignee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/assignee/{assignment_id} [get]
func (h *LeadHandler) GetLeadsByAssignment(c *gin.Context) {
	assignmentID, ok := uintParam(c, "assignment_id", "assignment ID")
	if !ok {
		return
	}

	leads, err := h.service.GetLeadsByAssignment(assignmentID)
	if err != nil {
		respondError(c, err, "Failed to get leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetUnassignedLeads handles GET /api/v1/campaigns/:id/leads/unassigned
// @Summary List unassigned leads of a campaign
// @Tags leads
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {array} service.LeadResponse "Leads"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/leads/unassigned [get]
func (h *LeadHandler) GetUnassignedLeads(c *gin.Context) {
	campaignID, ok := uintParam(c, "id", "campaign ID")
	if !ok {
		return
	}

	leads, err := h.service.GetUnassignedLeads(campaignID)
	if err != nil {
		respondError(c, err, "Failed to get leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}
