package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/core/services"
	"github.com/visadesk/visa_desk_app/internal/dto"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockProfileRepo *MockProfileRepository
	service         portssvc.RosterSvcFacade
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewRosterService(suite.mockProfileRepo)
}

func rosterProfile(userID, name, email, title string, createdAt time.Time, visaEnd *time.Time) domain.EmployeeProfile {
	p := domain.EmployeeProfile{
		UserID:           userID,
		Name:             name,
		Email:            email,
		Title:            title,
		VisaClass:        domain.VisaClassOPT,
		VisaEndDate:      visaEnd,
		OnboardingStatus: domain.OnboardingApproved,
		Visa:             domain.NewVisaProfile(userID, domain.VisaClassOPT),
	}
	p.CreatedAt = createdAt
	return p
}

func timePtr(t time.Time) *time.Time { return &t }

func (suite *RosterServiceTestSuite) userIDs(resp *dto.ListEmployeesResponse) []string {
	ids := make([]string, len(resp.Employees))
	for i, row := range resp.Employees {
		ids[i] = row.Profile.UserID
	}
	return ids
}

func (suite *RosterServiceTestSuite) TestListEmployees_EmployeeForbidden() {
	ctx := context.Background()

	resp, err := suite.service.ListEmployees(ctx, employeeAuth("emp-1"), dto.ListEmployeesParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
}

func (suite *RosterServiceTestSuite) TestListEmployees_BareRequestReturnsAllNewestFirst() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-old", "Old Timer", "old@example.com", "Engineer", now.Add(-72*time.Hour), nil),
		rosterProfile("emp-new", "New Hire", "new@example.com", "Engineer", now.Add(-1*time.Hour), nil),
		rosterProfile("emp-mid", "Mid Hire", "mid@example.com", "Analyst", now.Add(-24*time.Hour), nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{})

	suite.Require().NoError(err)
	suite.Equal(3, resp.Total)
	suite.Equal([]string{"emp-new", "emp-mid", "emp-old"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_EndSoonNilDatesSortOldest() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-2030", "Far End", "far@example.com", "", now, timePtr(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))),
		rosterProfile("emp-nil", "No End", "none@example.com", "", now, nil),
		rosterProfile("emp-2025", "Near End", "near@example.com", "", now, timePtr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Sort: "endSoon"})

	suite.Require().NoError(err)
	// Missing dates count as epoch zero, so they lead the ascending order.
	suite.Equal([]string{"emp-nil", "emp-2025", "emp-2030"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_EndLateNilDatesSortLast() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-nil", "No End", "none@example.com", "", now, nil),
		rosterProfile("emp-2025", "Near End", "near@example.com", "", now, timePtr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))),
		rosterProfile("emp-2030", "Far End", "far@example.com", "", now, timePtr(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Sort: "endLate"})

	suite.Require().NoError(err)
	suite.Equal([]string{"emp-2030", "emp-2025", "emp-nil"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_Last7Window() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-recent", "Recent", "recent@example.com", "", now.Add(-48*time.Hour), nil),
		rosterProfile("emp-stale", "Stale", "stale@example.com", "", now.AddDate(0, 0, -20), nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Sort: "last7"})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Total)
	suite.Equal([]string{"emp-recent"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_Last30Window() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-recent", "Recent", "recent@example.com", "", now.AddDate(0, 0, -20), nil),
		rosterProfile("emp-stale", "Stale", "stale@example.com", "", now.AddDate(0, 0, -45), nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Sort: "last30"})

	suite.Require().NoError(err)
	suite.Equal([]string{"emp-recent"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_TitleFilterCaseInsensitive() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-1", "A", "a@example.com", "Software Engineer", now, nil),
		rosterProfile("emp-2", "B", "b@example.com", "Analyst", now, nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Title: "software engineer"})

	suite.Require().NoError(err)
	suite.Equal([]string{"emp-1"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_SearchOverNameAndEmail() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-1", "Alice Zhang", "alice@example.com", "", now, nil),
		rosterProfile("emp-2", "Bob Lee", "bob@corp.example.com", "", now, nil),
		rosterProfile("emp-3", "Carol", "carol@zhang.dev", "", now, nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Search: "zhang"})

	suite.Require().NoError(err)
	suite.Equal(2, resp.Total)
}

func (suite *RosterServiceTestSuite) TestListEmployees_OverallStatusFilter() {
	ctx := context.Background()
	now := time.Now()
	submitted := rosterProfile("emp-1", "A", "a@example.com", "", now, nil)
	submitted.Visa.Documents[domain.DocOPTReceipt] = domain.DocumentRecord{FileID: "file-1"}
	fresh := rosterProfile("emp-2", "B", "b@example.com", "", now, nil)
	suite.mockProfileRepo.On("ListProfiles", ctx).Return([]domain.EmployeeProfile{submitted, fresh}, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{OverallStatus: "pending"})

	suite.Require().NoError(err)
	suite.Equal([]string{"emp-1"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_PaginationAfterSort() {
	ctx := context.Background()
	now := time.Now()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-1", "A", "a@example.com", "", now.Add(-3*time.Hour), nil),
		rosterProfile("emp-2", "B", "b@example.com", "", now.Add(-2*time.Hour), nil),
		rosterProfile("emp-3", "C", "c@example.com", "", now.Add(-1*time.Hour), nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Limit: 1, Offset: 1})

	suite.Require().NoError(err)
	// Total reflects the filtered set, not the page.
	suite.Equal(3, resp.Total)
	suite.Equal([]string{"emp-2"}, suite.userIDs(resp))
}

func (suite *RosterServiceTestSuite) TestListEmployees_OffsetPastEnd() {
	ctx := context.Background()
	profiles := []domain.EmployeeProfile{
		rosterProfile("emp-1", "A", "a@example.com", "", time.Now(), nil),
	}
	suite.mockProfileRepo.On("ListProfiles", ctx).Return(profiles, nil).Once()

	resp, err := suite.service.ListEmployees(ctx, hrAuth(), dto.ListEmployeesParams{Offset: 10})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Total)
	suite.Empty(resp.Employees)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
