package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/core/services"
	"github.com/visadesk/visa_desk_app/internal/dto"
	"github.com/visadesk/visa_desk_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockProfileRepo *MockProfileRepository
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockProfileRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_EmployeeGetsProfile() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:  "newhire",
		Password:  "password123",
		Name:      "New Hire",
		Email:     "new@example.com",
		VisaClass: "opt",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "newhire").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "newhire" && u.Role == domain.RoleEmployee && u.PasswordHash != "password123"
	})).Return(nil).Once()
	suite.mockProfileRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.EmployeeProfile) bool {
		return p.VisaClass == domain.VisaClassOPT && p.OnboardingStatus == domain.OnboardingPending
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_HRSkipsProfile() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "hradmin",
		Password: "password123",
		Name:     "HR Admin",
		Email:    "hr@example.com",
		Role:     "hr",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "hradmin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleHR, user.Role)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u-1", Username: "taken"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterRequest{Username: "taken", Password: "password123"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Username: "newhire", PasswordHash: hash, Role: domain.RoleEmployee}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "newhire").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "newhire", "password123")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Username: "newhire", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "newhire").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "newhire", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "password123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
