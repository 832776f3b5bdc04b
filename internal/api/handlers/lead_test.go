package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	handler := handlers.NewLeadHandler(suite.mockService)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(supervisorID)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	leads := v1.Group("/leads")
	{
		leads.POST("/bulk-assign", handler.BulkAssign)
		leads.POST("", handler.CreateLead)
		leads.GET("", handler.ListLeads)
		leads.GET("/assignee/:assignment_id", handler.GetLeadsByAssignment)
		leads.GET("/:id", handler.GetLead)
		leads.PUT("/:id", handler.UpdateLead)
		leads.DELETE("/:id", handler.DeleteLead)
		leads.PUT("/:id/assign/:user_id", handler.AssignLead)
		leads.PUT("/:id/unassign", handler.UnassignLead)
	}
	v1.GET("/campaigns/:id/leads/unassigned", handler.GetUnassignedLeads)
}

func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) TestCreateLead() {
	assignment := uint(42)
	suite.mockService.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), supervisorID).
		DoAndReturn(func(_ context.Context, req *service.CreateLeadRequest, _ uint) (*service.LeadResponse, error) {
			suite.Equal(uint(5), req.CampaignID)
			suite.Equal("a@x.com", *req.Email)
			return &service.LeadResponse{ID: 100, CampaignID: 5, Email: req.Email, AssignedTo: &assignment}, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{
		"campaign_id": 5, "email": "a@x.com", "assigned_to": 10,
	})

	var resp service.LeadResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(uint(100), resp.ID)
	suite.Equal(uint(42), *resp.AssignedTo)
}

func (suite *LeadHandlerTestSuite) TestCreateLead_Duplicate() {
	suite.mockService.EXPECT().CreateLead(gomock.Any(), gomock.Any(), supervisorID).Return(nil, apperrors.ErrDuplicateLead)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{"campaign_id": 5, "email": "a@x.com"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
}

func (suite *LeadHandlerTestSuite) TestListLeads() {
	suite.mockService.EXPECT().GetAllLeads(20, 40).Return(&service.LeadListResponse{Total: 61, Limit: 20, Offset: 40}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads?limit=20&offset=40", nil)

	var resp service.LeadListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(int64(61), resp.Total)
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	suite.mockService.EXPECT().GetLead(uint(100)).Return(&service.LeadResponse{ID: 100}, nil)
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/100", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().GetLead(uint(101)).Return(nil, apperrors.ErrLeadNotFound)
	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/101", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "lead not found")

	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid lead ID")
}

func (suite *LeadHandlerTestSuite) TestUpdateLead_PassesTriState() {
	suite.mockService.EXPECT().
		UpdateLead(uint(100), gomock.Any()).
		DoAndReturn(func(_ uint, req *service.UpdateLeadRequest) (*service.LeadResponse, error) {
			suite.True(req.City.Set)
			suite.Equal("Pune", req.City.Value)
			suite.True(req.Zip.Null)
			suite.False(req.Email.Set)
			return &service.LeadResponse{ID: 100}, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100", map[string]interface{}{"city": "Pune", "zip": nil})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LeadHandlerTestSuite) TestDeleteLead() {
	suite.mockService.EXPECT().DeleteLead(uint(100)).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/leads/100", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *LeadHandlerTestSuite) TestAssignLead() {
	suite.mockService.EXPECT().AssignLead(uint(100), uint(11), supervisorID).Return(&service.LeadResponse{ID: 100}, nil)
	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100/assign/11", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().AssignLead(uint(100), uint(12), supervisorID).Return(nil, apperrors.ErrInvalidAssignee)
	w = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100/assign/12", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "not an active assignee")

	suite.mockService.EXPECT().AssignLead(uint(100), uint(13), supervisorID).Return(nil, apperrors.ErrInvalidStatusTransition)
	w = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100/assign/13", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100/assign/0", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid user ID")
}

func (suite *LeadHandlerTestSuite) TestUnassignLead() {
	suite.mockService.EXPECT().UnassignLead(uint(100), supervisorID).Return(&service.LeadResponse{ID: 100}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/100/unassign", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LeadHandlerTestSuite) TestBulkAssign_Counts() {
	suite.mockService.EXPECT().BulkAssign(gomock.Any(), supervisorID).Return([]service.BulkAssignResult{
		{LeadID: 1, Success: true},
		{LeadID: 2, Success: false, Error: "lead not found"},
		{LeadID: 3, Success: true},
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/bulk-assign", map[string]interface{}{"lead_ids": []uint{1, 2, 3}, "assignee_id": 10})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(float64(2), resp["assigned"])
	suite.Equal(float64(1), resp["failed"])
}

func (suite *LeadHandlerTestSuite) TestListingsByParent() {
	suite.mockService.EXPECT().GetLeadsByAssignment(uint(42)).Return([]service.LeadResponse{{ID: 1}}, nil)
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/assignee/42", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().GetUnassignedLeads(uint(5)).Return(nil, errors.New("db down"))
	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/campaigns/5/leads/unassigned", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get")
}

func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
