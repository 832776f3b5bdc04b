package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-backend/internal/api/handlers"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const supervisorID uint = 3

func strPtr(s string) *string { return &s }

// LeadImportHandlerTestSuite defines the test suite for LeadImportHandler
type LeadImportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadImportServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *LeadImportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadImportServiceInterface(suite.ctrl)
	handler := handlers.NewLeadImportHandler(suite.mockService, 1<<10)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(supervisorID)
	leads := suite.httpSuite.Router.Group("/api/v1/leads")
	leads.POST("/bulk", handler.BulkImport)
	leads.POST("/bulk/upload", handler.BulkUpload)
}

func (suite *LeadImportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadImportHandlerTestSuite) TestBulkImport_Success() {
	suite.mockService.EXPECT().
		Import(gomock.Any(), gomock.Any(), supervisorID).
		DoAndReturn(func(_ context.Context, req *service.BulkImportRequest, _ uint) (*service.BulkImportResponse, error) {
			suite.Equal(uint(5), req.Campaign)
			suite.Equal([]uint{10, 11}, req.Callers)
			suite.Len(req.Leads, 2)
			return &service.BulkImportResponse{Success: true, InsertedCount: 2, AssigneesAdded: 2, AssigneeIDs: []uint{10, 11}}, nil
		})

	body := service.BulkImportRequest{
		Campaign: 5,
		Callers:  []uint{10, 11},
		Leads:    []service.LeadInput{{Email: strPtr("a@x.com")}, {Phone: strPtr("555")}},
	}
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/bulk", body)

	var resp service.BulkImportResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.True(resp.Success)
	suite.Equal(2, resp.InsertedCount)
	suite.Equal([]uint{10, 11}, resp.AssigneeIDs)
}

func (suite *LeadImportHandlerTestSuite) TestBulkImport_NoAssigneesReturnsBody() {
	failed := &service.BulkImportResponse{
		ErrorCount: 1,
		Errors:     []service.LeadImportError{{Lead: service.LeadInput{Email: strPtr("a@x.com")}, Error: "no assignees available"}},
	}
	suite.mockService.EXPECT().Import(gomock.Any(), gomock.Any(), supervisorID).Return(failed, apperrors.ErrNoAssigneesAvailable)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/bulk", map[string]interface{}{
		"campaign": 5, "leads": []map[string]string{{"email": "a@x.com"}},
	})

	var resp service.BulkImportResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusUnprocessableEntity, &resp)
	suite.False(resp.Success)
	suite.Equal(1, resp.ErrorCount)
}

func (suite *LeadImportHandlerTestSuite) TestBulkImport_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"campaign not found", apperrors.ErrCampaignNotFound, http.StatusNotFound},
		{"validation", apperrors.ErrTooManyLeads, http.StatusBadRequest},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Import(gomock.Any(), gomock.Any(), supervisorID).Return(nil, tc.err)
			w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/bulk", map[string]interface{}{"campaign": 5, "leads": []interface{}{}})
			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *LeadImportHandlerTestSuite) TestBulkImport_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/bulk", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(w, req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid request body")
}

func (suite *LeadImportHandlerTestSuite) TestBulkUpload_Success() {
	csv := []byte("email\na@x.com\n")
	suite.mockService.EXPECT().
		ImportSpreadsheet(gomock.Any(), uint(5), []uint{10, 11, 12}, "leads.csv", gomock.Any(), supervisorID).
		DoAndReturn(func(_ context.Context, _ uint, _ []uint, _ string, r io.Reader, _ uint) (*service.BulkImportResponse, error) {
			got, err := io.ReadAll(r)
			suite.Require().NoError(err)
			suite.Equal(csv, got)
			return &service.BulkImportResponse{Success: true, InsertedCount: 1}, nil
		})

	w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload",
		map[string]string{"campaign": "5", "callers": "10, 11,12"}, "file", "leads.csv", csv)

	var resp service.BulkImportResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(1, resp.InsertedCount)
}

func (suite *LeadImportHandlerTestSuite) TestBulkUpload_Rejections() {
	suite.Run("missing file", func() {
		w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload", map[string]string{"campaign": "5"}, "", "", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "file is required")
	})

	suite.Run("bad campaign", func() {
		w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload", map[string]string{"campaign": "five"}, "file", "leads.csv", []byte("email\n"))
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid campaign ID")
	})

	suite.Run("bad callers", func() {
		w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload", map[string]string{"campaign": "5", "callers": "10,x"}, "file", "leads.csv", []byte("email\n"))
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid callers")
	})

	suite.Run("too large", func() {
		w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload", map[string]string{"campaign": "5"}, "file", "leads.csv", bytes.Repeat([]byte("a"), 4<<10))
		assert.Equal(suite.T(), http.StatusRequestEntityTooLarge, w.Code)
	})

	suite.Run("unsupported file", func() {
		suite.mockService.EXPECT().
			ImportSpreadsheet(gomock.Any(), uint(5), gomock.Nil(), "leads.pdf", gomock.Any(), supervisorID).
			Return(nil, apperrors.ErrUnsupportedFileType)
		w := suite.httpSuite.MakeMultipartRequest("/api/v1/leads/bulk/upload", map[string]string{"campaign": "5"}, "file", "leads.pdf", []byte("%PDF"))
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "unsupported file type")
	})
}

func TestLeadImportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadImportHandlerTestSuite))
}
