package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignAssigneeHandler handles HTTP requests for campaign assignments
type CampaignAssigneeHandler struct {
	service service.CampaignAssigneeServiceInterface
}

// NewCampaignAssigneeHandler creates a new campaign assignee handler
func NewCampaignAssigneeHandler(service service.CampaignAssigneeServiceInterface) *CampaignAssigneeHandler {
	return &CampaignAssigneeHandler{service: service}
}

// AssignUser handles POST /api/v1/campaign-assignees
// @Summary Add a user to a campaign
// @Tags campaign-assignees
// @Accept json
// @Produce json
// @Param request body service.AssignUserRequest true "Campaign, user and role"
// @Success 201 {object} service.CampaignAssigneeResponse "Created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Campaign or user not found"
// @Failure 409 {object} ErrorResponse "User already assigned"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaign-assignees [post]
func (h *CampaignAssigneeHandler) AssignUser(c *gin.Context) {
	var req service.AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignee, err := h.service.AssignUser(&req, actingUser(c))
	if err != nil {
		respondError(c, err, "Failed to assign user to campaign")
		return
	}

	c.JSON(http.StatusCreated, assignee)
}

// GetByCampaign handles GET /api/v1/campaign-assignees/campaign/:campaign_id
// @Summary List active assignees of a campaign
// @Tags campaign-assignees
// @Produce json
// @Param campaign_id path int true "Campaign ID"
// @Success 200 {array} service.CampaignAssigneeResponse "Assignees"
// @Failure 400 {object} ErrorResponse "Invalid campaign ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaign-assignees/campaign/{campaign_id} [get]
func (h *CampaignAssigneeHandler) GetByCampaign(c *gin.Context) {
	campaignID, ok := uintParam(c, "campaign_id", "campaign ID")
	if !ok {
		return
	}

	assignees, err := h.service.GetByCampaign(campaignID)
	if err != nil {
		respondError(c, err, "Failed to get campaign assignees")
		return
	}

	c.JSON(http.StatusOK, assignees)
}

// GetByUser handles GET /api/v1/campaign-assignees/user/:user_id
// @Summary List active campaign assignments of a user
// @Tags campaign-assignees
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} service.CampaignAssigneeResponse "Assignments"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaign-assignees/user/{user_id} [get]
func (h *CampaignAssigneeHandler) GetByUser(c *gin.Context) {
	userID, ok := uintParam(c, "user_id", "user ID")
	if !ok {
		return
	}

	assignments, err := h.service.GetByUser(userID)
	if err != nil {
		respondError(c, err, "Failed to get user campaigns")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// Update handles PUT /api/v1/campaign-assignees/:id
// @Summary Update an assignment
// @Description Change the role in campaign or the active flag
// @Tags campaign-assignees
// @Accept json
// @Produce json
// @Param id path int true "Campaign assignee ID"
// @Param request body service.UpdateCampaignAssigneeRequest true "Fields to change"
// @Success 200 {object} service.CampaignAssigneeResponse "Updated assignment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Campaign assignee not found"
// @Failure 409 {object} ErrorResponse "User already assigned"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaign-assignees/{id} [put]
func (h *CampaignAssigneeHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id", "campaign assignee ID")
	if !ok {
		return
	}

	var req service.UpdateCampaignAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignee, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update campaign assignee")
		return
	}

	c.JSON(http.StatusOK, assignee)
}

// Remove handles DELETE /api/v1/campaign-assignees/campaign/:campaign_id/user/:user_id
// @Summary Remove a user from a campaign
// @Description Deactivates the assignment; leads keep their history
// @Tags campaign-assignees
// @Produce json
// @Param campaign_id path int true "Campaign ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Assignment removed"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Campaign assignee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaign-assignees/campaign/{campaign_id}/user/{user_id} [delete]
func (h *CampaignAssigneeHandler) Remove(c *gin.Context) {
	campaignID, ok := uintParam(c, "campaign_id", "campaign ID")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "user_id", "user ID")
	if !ok {
		return
	}

	if err := h.service.Remove(campaignID, userID); err != nil {
		respondError(c, err, "Failed to remove campaign assignee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed from campaign"})
}
