package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssigneeLeadHandler exposes the lead assignment audit trail
type AssigneeLeadHandler struct {
	service service.AssigneeLeadServiceInterface
}

// NewAssigneeLeadHandler creates a new assignee lead handler
func NewAssigneeLeadHandler(service service.AssigneeLeadServiceInterface) *AssigneeLeadHandler {
	return &AssigneeLeadHandler{service: service}
}

// GetByCampaign handles GET /api/v1/assignee-leads/campaign/:campaign_id
// @Summary Current assignee-lead records of a campaign
// @Tags assignee-leads
// @Produce json
// @Param campaign_id path int true "Campaign ID"
// @Success 200 {array} service.AssigneeLeadResponse "Records"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/campaign/{campaign_id} [get]
func (h *AssigneeLeadHandler) GetByCampaign(c *gin.Context) {
	campaignID, ok := uintParam(c, "campaign_id", "campaign ID")
	if !ok {
		return
	}

	records, err := h.service.GetByCampaign(campaignID)
	if err != nil {
		respondError(c, err, "Failed to get assignee leads")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByAssignee handles GET /api/v1/assignee-leads/assignee/:user_id
// @Summary Current assignee-lead records of a user
// @Tags assignee-leads
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} service.AssigneeLeadResponse "Records"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/assignee/{user_id} [get]
func (h *AssigneeLeadHandler) GetByAssignee(c *gin.Context) {
	userID, ok := uintParam(c, "user_id", "user ID")
	if !ok {
		return
	}

	records, err := h.service.GetByAssignee(userID)
	if err != nil {
		respondError(c, err, "Failed to get assignee leads")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByLead handles GET /api/v1/assignee-leads/lead/:lead_id
// @Summary Current assignee-lead record of a lead
// @Tags assignee-leads
// @Produce json
// @Param lead_id path int true "Lead ID"
// @Success 200 {object} service.AssigneeLeadResponse "Record"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "No current record"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/lead/{lead_id} [get]
func (h *AssigneeLeadHandler) GetByLead(c *gin.Context) {
	leadID, ok := uintParam(c, "lead_id", "lead ID")
	if !ok {
		return
	}

	record, err := h.service.GetByLead(leadID)
	if err != nil {
		respondError(c, err, "Failed to get assignee lead")
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetHistory handles GET /api/v1/assignee-leads/lead/:lead_id/history
// @Summary Full assignment history of a lead
// @Tags assignee-leads
// @Produce json
// @Param lead_id path int true "Lead ID"
// @Success 200 {object} service.LeadHistoryResponse "History"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/lead/{lead_id}/history [get]
func (h *AssigneeLeadHandler) GetHistory(c *gin.Context) {
	leadID, ok := uintParam(c, "lead_id", "lead ID")
	if !ok {
		return
	}

	history, err := h.service.GetHistory(leadID)
	if err != nil {
		respondError(c, err, "Failed to get lead history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// UpdateStatus handles PUT /api/v1/assignee-leads/:id/status
// @Summary Move an assignee-lead record to a new status
// @Tags assignee-leads
// @Accept json
// @Produce json
// @Param id path int true "Assignee lead ID"
// @Param request body service.UpdateStatusRequest true "New status and notes"
// @Success 200 {object} service.AssigneeLeadResponse "Updated record"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/{id}/status [put]
func (h *AssigneeLeadHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id", "assignee lead ID")
	if !ok {
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.UpdateStatus(id, &req, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetStageStats handles GET /api/v1/assignee-leads/stats/stages
// @Summary Lead counts per assignee and stage
// @Tags assignee-leads
// @Produce json
// @Success 200 {array} models.StageStats "Statistics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignee-leads/stats/stages [get]
func (h *AssigneeLeadHandler) GetStageStats(c *gin.Context) {
	stats, err := h.service.GetStageStats()
	if err != nil {
		respondError(c, err, "Failed to get stage statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
