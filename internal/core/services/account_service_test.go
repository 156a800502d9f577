package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/domain"
	"github.com/manoja-HA/nexus-banking-platform/internal/core/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo     *MockAccountRepository
	mockCustomerRepo    *MockCustomerRepository
	mockTransferService *MockTransferService
	service             *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockTransferService = new(MockTransferService)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCustomerRepo, suite.mockTransferService)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success_NoDeposit() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateAccountRequest{CustomerID: customerID}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID, Name: "Ada"}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.CustomerID == customerID &&
			a.Status == domain.AccountActive &&
			a.CurrentBalance.IsZero() &&
			a.Version == 1
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.True(strings.HasPrefix(account.AccountNumber, "DE-"))
	suite.True(account.CurrentBalance.IsZero())
	suite.mockTransferService.AssertNotCalled(suite.T(), "CreateTransfer", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success_WithInitialDeposit() {
	ctx := context.Background()
	customerID := uuid.NewString()
	deposit := decimal.RequireFromString("500.00")
	req := dto.CreateAccountRequest{CustomerID: customerID, InitialDeposit: deposit}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()

	var createdAccountID string
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Run(func(args mock.Arguments) {
		createdAccountID = args.Get(1).(domain.Account).AccountID
	}).Return(nil).Once()

	suite.mockTransferService.On("CreateTransfer", ctx, mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
		return r.SourceAccountID == r.DestinationAccountID &&
			r.TransferType == domain.TransferInitialDeposit &&
			r.Description == "Initial deposit" &&
			r.Amount.Equal(deposit)
	})).Return(&domain.Transfer{TransferID: uuid.NewString(), Status: domain.TransferCompleted}, nil).Once()

	suite.mockAccountRepo.On("FindAccountByID", ctx, mock.AnythingOfType("string")).Return(&domain.Account{
		AccountID:      uuid.NewString(),
		CustomerID:     customerID,
		CurrentBalance: deposit,
		Status:         domain.AccountActive,
	}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.CurrentBalance.Equal(deposit))
	suite.NotEmpty(createdAccountID)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeDepositRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CustomerID:     uuid.NewString(),
		InitialDeposit: decimal.RequireFromString("-1.00"),
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(apperrors.IsKind(err, apperrors.KindNegativeDeposit))
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CustomerNotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()
	notFound := apperrors.New(apperrors.KindCustomerNotFound, "Customer not found")

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, notFound).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{CustomerID: customerID})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(apperrors.IsKind(err, apperrors.KindCustomerNotFound))
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	notFound := apperrors.New(apperrors.KindAccountNotFound, "Account not found")

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, notFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(apperrors.IsKind(err, apperrors.KindAccountNotFound))
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Status: domain.AccountActive},
		{AccountID: uuid.NewString(), Status: domain.AccountClosed},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
