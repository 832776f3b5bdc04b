package handlers_test

import (
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CampaignAssigneeHandlerTestSuite defines the test suite for CampaignAssigneeHandler
type CampaignAssigneeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCampaignAssigneeServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CampaignAssigneeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCampaignAssigneeServiceInterface(suite.ctrl)
	handler := handlers.NewCampaignAssigneeHandler(suite.mockService)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(supervisorID)
	group := suite.httpSuite.Router.Group("/api/v1/campaign-assignees")
	{
		group.POST("", handler.AssignUser)
		group.GET("/campaign/:campaign_id", handler.GetByCampaign)
		group.GET("/user/:user_id", handler.GetByUser)
		group.PUT("/:id", handler.Update)
		group.DELETE("/campaign/:campaign_id/user/:user_id", handler.Remove)
	}
}

func (suite *CampaignAssigneeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignAssigneeHandlerTestSuite) TestAssignUser() {
	suite.mockService.EXPECT().
		AssignUser(&service.AssignUserRequest{CampaignID: 5, UserID: 10, RoleInCampaign: models.CampaignRoleManager}, supervisorID).
		Return(&service.CampaignAssigneeResponse{ID: 7, CampaignID: 5, UserID: 10, RoleInCampaign: models.CampaignRoleManager, IsActive: true}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/campaign-assignees", map[string]interface{}{
		"campaign_id": 5, "user_id": 10, "role_in_campaign": "manager",
	})

	var resp service.CampaignAssigneeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(uint(7), resp.ID)
}

func (suite *CampaignAssigneeHandlerTestSuite) TestAssignUser_Conflict() {
	suite.mockService.EXPECT().AssignUser(gomock.Any(), supervisorID).Return(nil, apperrors.ErrCampaignAssigneeExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/campaign-assignees", map[string]interface{}{"campaign_id": 5, "user_id": 10})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
}

func (suite *CampaignAssigneeHandlerTestSuite) TestListings() {
	suite.mockService.EXPECT().GetByCampaign(uint(5)).Return([]service.CampaignAssigneeResponse{{ID: 1}, {ID: 2}}, nil)
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/campaign-assignees/campaign/5", nil)
	var byCampaign []service.CampaignAssigneeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &byCampaign)
	suite.Len(byCampaign, 2)

	suite.mockService.EXPECT().GetByCampaign(uint(9)).Return(nil, apperrors.ErrCampaignNotFound)
	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/campaign-assignees/campaign/9", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.mockService.EXPECT().GetByUser(uint(10)).Return([]service.CampaignAssigneeResponse{}, nil)
	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/campaign-assignees/user/10", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/campaign-assignees/user/-1", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid user ID")
}

func (suite *CampaignAssigneeHandlerTestSuite) TestUpdate() {
	suite.mockService.EXPECT().
		Update(uint(7), gomock.Any()).
		DoAndReturn(func(_ uint, req *service.UpdateCampaignAssigneeRequest) (*service.CampaignAssigneeResponse, error) {
			suite.True(req.IsActive.Set)
			suite.False(req.IsActive.Value)
			suite.False(req.RoleInCampaign.Set)
			return &service.CampaignAssigneeResponse{ID: 7}, nil
		})
	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/campaign-assignees/7", map[string]interface{}{"is_active": false})
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().Update(uint(7), gomock.Any()).Return(nil, apperrors.ErrInvalidCampaignRole)
	w = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/campaign-assignees/7", map[string]interface{}{"role_in_campaign": "boss"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid campaign role")
}

func (suite *CampaignAssigneeHandlerTestSuite) TestRemove() {
	suite.mockService.EXPECT().Remove(uint(5), uint(10)).Return(nil)
	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/campaign-assignees/campaign/5/user/10", nil)
	var resp map[string]string
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("User removed from campaign", resp["message"])

	suite.mockService.EXPECT().Remove(uint(5), uint(11)).Return(apperrors.ErrCampaignAssigneeNotFound)
	w = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/campaign-assignees/campaign/5/user/11", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestCampaignAssigneeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignAssigneeHandlerTestSuite))
}
