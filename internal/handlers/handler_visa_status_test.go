package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/dto"
	"github.com/visadesk/visa_desk_app/internal/handlers"
	"github.com/visadesk/visa_desk_app/internal/middleware"
)

// --- Mock VisaService ---
type MockVisaService struct {
	mock.Mock
}

func (m *MockVisaService) GetVisaStatus(ctx context.Context, auth domain.AuthContext, targetUserID string) (*dto.VisaStatusResponse, error) {
	args := m.Called(ctx, auth, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VisaStatusResponse), args.Error(1)
}

func (m *MockVisaService) ReviewDocument(ctx context.Context, auth domain.AuthContext, targetUserID string, docType string, req dto.ReviewDocumentRequest) (*dto.VisaStatusResponse, error) {
	args := m.Called(ctx, auth, targetUserID, docType, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VisaStatusResponse), args.Error(1)
}

func (m *MockVisaService) NotifyNextStep(ctx context.Context, auth domain.AuthContext, targetUserID string, req dto.NotifyRequest) error {
	args := m.Called(ctx, auth, targetUserID, req)
	return args.Error(0)
}

func (m *MockVisaService) UploadDocument(ctx context.Context, auth domain.AuthContext, docType string, filename, contentType string, content []byte) (*dto.UploadDocumentResponse, error) {
	args := m.Called(ctx, auth, docType, filename, contentType, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadDocumentResponse), args.Error(1)
}

var _ portssvc.VisaSvcFacade = (*MockVisaService)(nil)

// --- Mock RosterService ---
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) ListEmployees(ctx context.Context, auth domain.AuthContext, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	args := m.Called(ctx, auth, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEmployeesResponse), args.Error(1)
}

var _ portssvc.RosterSvcFacade = (*MockRosterService)(nil)

// --- Test Suite ---
type VisaStatusHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockVisaService   *MockVisaService
	mockRosterService *MockRosterService
	jwtSecret         string
}

// generateTestToken creates a signed JWT carrying the given subject and role.
func (suite *VisaStatusHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	claims := middleware.Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "visa-desk-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *VisaStatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockVisaService = new(MockVisaService)
	suite.mockRosterService = new(MockRosterService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterVisaStatusRoutes(v1, suite.mockVisaService, suite.mockRosterService)
}

func (suite *VisaStatusHandlerTestSuite) doRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VisaStatusHandlerTestSuite) TestListEmployees_Success() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	expected := &dto.ListEmployeesResponse{
		Employees: []dto.EmployeeRowResponse{
			{Profile: dto.VisaStatusResponse{UserID: "emp-1", OverallStatus: "pending"}, Title: "Engineer"},
		},
		Total: 1,
	}
	suite.mockRosterService.On("ListEmployees", mock.Anything, mock.MatchedBy(func(auth domain.AuthContext) bool {
		return auth.UserID == "hr-1" && auth.Role == domain.RoleHR
	}), mock.AnythingOfType("dto.ListEmployeesParams")).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/visa-status?sort=endSoon", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEmployeesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Total)
	suite.mockRosterService.AssertExpectations(suite.T())
}

func (suite *VisaStatusHandlerTestSuite) TestListEmployees_InvalidSortRejected() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)

	w := suite.doRequest(http.MethodGet, "/api/v1/visa-status?sort=alphabetical", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRosterService.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisaStatusHandlerTestSuite) TestListEmployees_EmployeeForbidden() {
	token := suite.generateTestToken("emp-1", domain.RoleEmployee)
	suite.mockRosterService.On("ListEmployees", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/visa-status", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *VisaStatusHandlerTestSuite) TestListEmployees_NoToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/visa-status", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *VisaStatusHandlerTestSuite) TestReviewDocument_Success() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	body, _ := json.Marshal(dto.ReviewDocumentRequest{Status: "approved"})
	expected := &dto.VisaStatusResponse{UserID: "emp-1", OverallStatus: "pending"}
	suite.mockVisaService.On("ReviewDocument", mock.Anything, mock.MatchedBy(func(auth domain.AuthContext) bool {
		return auth.UserID == "hr-1"
	}), "emp-1", "optReceipt", mock.AnythingOfType("dto.ReviewDocumentRequest")).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/visa-status/emp-1/documents/optReceipt/review", token, body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockVisaService.AssertExpectations(suite.T())
}

func (suite *VisaStatusHandlerTestSuite) TestReviewDocument_InvalidStatusRejectedByBinding() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	body := []byte(`{"status":"maybe"}`)

	w := suite.doRequest(http.MethodPatch, "/api/v1/visa-status/emp-1/documents/optReceipt/review", token, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVisaService.AssertNotCalled(suite.T(), "ReviewDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisaStatusHandlerTestSuite) TestReviewDocument_InvalidTransitionConflict() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	body, _ := json.Marshal(dto.ReviewDocumentRequest{Status: "approved"})
	suite.mockVisaService.On("ReviewDocument", mock.Anything, mock.Anything, "emp-1", "i20", mock.Anything).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/visa-status/emp-1/documents/i20/review", token, body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *VisaStatusHandlerTestSuite) TestNotifyNextStep_Success() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	body, _ := json.Marshal(dto.NotifyRequest{NextStep: "Upload OPT EAD"})
	suite.mockVisaService.On("NotifyNextStep", mock.Anything, mock.Anything, "emp-1", mock.MatchedBy(func(req dto.NotifyRequest) bool {
		return req.NextStep == "Upload OPT EAD"
	})).Return(nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/visa-status/emp-1/notify", token, body)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockVisaService.AssertExpectations(suite.T())
}

func (suite *VisaStatusHandlerTestSuite) TestNotifyNextStep_MissingBodyRejected() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)

	w := suite.doRequest(http.MethodPost, "/api/v1/visa-status/emp-1/notify", token, []byte(`{}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVisaService.AssertNotCalled(suite.T(), "NotifyNextStep", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisaStatusHandlerTestSuite) TestGetVisaStatus_NotFound() {
	token := suite.generateTestToken("hr-1", domain.RoleHR)
	suite.mockVisaService.On("GetVisaStatus", mock.Anything, mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/visa-status/ghost", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestVisaStatusHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VisaStatusHandlerTestSuite))
}
