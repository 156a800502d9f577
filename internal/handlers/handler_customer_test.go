package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
	"github.com/manoja-HA/nexus-banking-platform/internal/handlers"
	"github.com/manoja-HA/nexus-banking-platform/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Test Suite Setup ---

type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCustomerService
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockCustomerService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Customer: suite.mockService,
	})
}

func (suite *CustomerHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Returns200() {
	customerID := uuid.NewString()

	suite.mockService.On("CreateCustomer", mock.Anything, "Grace").Return(&domain.Customer{
		CustomerID: customerID,
		Name:       "Grace",
	}, nil).Once()

	w := suite.performRequest(http.MethodPost, "/customers", gin.H{"name": "Grace"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(customerID, resp.ID)
	suite.Equal("Grace", resp.Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_DuplicateNameMapsTo400() {
	suite.mockService.On("CreateCustomer", mock.Anything, "Grace").
		Return(nil, apperrors.New(apperrors.KindConstraintViolation, "Customer already exists")).Once()

	w := suite.performRequest(http.MethodPost, "/customers", gin.H{"name": "Grace"})

	suite.Equal(http.StatusBadRequest, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Customer already exists", body["detail"])
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_MissingNameRejected() {
	w := suite.performRequest(http.MethodPost, "/customers", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCustomer", mock.Anything, mock.Anything)
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
