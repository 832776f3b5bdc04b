package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadImportHandler handles bulk lead imports
type LeadImportHandler struct {
	service        service.LeadImportServiceInterface
	maxUploadBytes int64
}

// NewLeadImportHandler creates a new lead import handler. Uploads larger than maxUploadBytes are refused.
func NewLeadImportHandler(service service.LeadImportServiceInterface, maxUploadBytes int64) *LeadImportHandler {
	return &LeadImportHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// BulkImport handles POST /api/v1/leads/bulk
// @Summary Bulk import leads into a campaign
// @Description Inserts every non-duplicate lead, registering the given callers on the campaign and spreading the leads round-robin over them after a shuffle. Without callers the campaign's active assignees are used.
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.BulkImportRequest true "Campaign, leads and callers"
// @Success 201 {object} service.BulkImportResponse "Import outcome"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 422 {object} service.BulkImportResponse "No assignees available"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/bulk [post]
func (h *LeadImportHandler) BulkImport(c *gin.Context) {
	var req service.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Import(c.Request.Context(), &req, actingUser(c))
	h.respond(c, resp, err)
}

// BulkUpload handles POST /api/v1/leads/bulk/upload
// @Summary Bulk import leads from a spreadsheet
// @Description Parses an .xlsx or .csv upload (header row required) and imports its rows like the JSON bulk import
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx or .csv)"
// @Param campaign formData int true "Campaign ID"
// @Param callers formData string false "Comma separated caller user ids"
// @Success 201 {object} service.BulkImportResponse "Import outcome"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Failure 422 {object} service.BulkImportResponse "No assignees available"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/bulk/upload [post]
func (h *LeadImportHandler) BulkUpload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}

	campaignID, err := strconv.ParseUint(c.PostForm("campaign"), 10, 64)
	if err != nil || campaignID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	callers, err := parseCallers(c.PostFormArray("callers"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callers", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload", "details": err.Error()})
		return
	}
	defer file.Close()

	resp, err := h.service.ImportSpreadsheet(c.Request.Context(), uint(campaignID), callers, fileHeader.Filename, file, actingUser(c))
	h.respond(c, resp, err)
}

func (h *LeadImportHandler) respond(c *gin.Context, resp *service.BulkImportResponse, err error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAssigneesAvailable) && resp != nil {
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
		logger.FromGinContext(c).WithError(err).Error("Bulk import failed")
		respondError(c, err, "Failed to import leads")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// parseCallers accepts repeated form values as well as comma separated lists
func parseCallers(values []string) ([]uint, error) {
	var callers []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			callers = append(callers, uint(id))
		}
	}
	return callers, nil
}
