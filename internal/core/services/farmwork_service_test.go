package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/core/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// --- Mock FarmWorkRepository ---

type MockFarmWorkRepository struct {
	mock.Mock
}

var _ portsrepo.FarmWorkRepositoryFacade = (*MockFarmWorkRepository)(nil)

func (m *MockFarmWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.FarmWork, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmWork), args.Error(1)
}

func (m *MockFarmWorkRepository) ListWorksByFarmer(ctx context.Context, farmerUsername string) ([]domain.FarmWork, error) {
	args := m.Called(ctx, farmerUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FarmWork), args.Error(1)
}

func (m *MockFarmWorkRepository) ListActiveWorksInArea(ctx context.Context, area, state string, notBefore time.Time) ([]domain.FarmWork, error) {
	args := m.Called(ctx, area, state, notBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FarmWork), args.Error(1)
}

func (m *MockFarmWorkRepository) ListWorksByApplicant(ctx context.Context, labourUsername string) ([]domain.FarmWork, error) {
	args := m.Called(ctx, labourUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FarmWork), args.Error(1)
}

func (m *MockFarmWorkRepository) SaveWork(ctx context.Context, work domain.FarmWork) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockFarmWorkRepository) AppendApplication(ctx context.Context, workID string, app domain.LabourApplication) error {
	args := m.Called(ctx, workID, app)
	return args.Error(0)
}

func (m *MockFarmWorkRepository) RemoveApplication(ctx context.Context, workID, labourUsername string) error {
	args := m.Called(ctx, workID, labourUsername)
	return args.Error(0)
}

func (m *MockFarmWorkRepository) CancelWork(ctx context.Context, workID, farmerUsername string, cancelledAt time.Time) error {
	args := m.Called(ctx, workID, farmerUsername, cancelledAt)
	return args.Error(0)
}

func (m *MockFarmWorkRepository) DeleteWork(ctx context.Context, workID, farmerUsername string) error {
	args := m.Called(ctx, workID, farmerUsername)
	return args.Error(0)
}

func (m *MockFarmWorkRepository) CompleteExpiredWorks(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserReader ---

type MockUserReader struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock CropReader ---

type MockCropReader struct {
	mock.Mock
}

var _ portsrepo.CropReader = (*MockCropReader)(nil)

func (m *MockCropReader) ListCropsByUsername(ctx context.Context, username string) ([]domain.UserCrop, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCrop), args.Error(1)
}

func (m *MockCropReader) ListCropNames(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock WorkEventNotifier ---

type MockNotifier struct {
	mock.Mock
}

var _ portssvc.WorkEventNotifierSvc = (*MockNotifier)(nil)

func (m *MockNotifier) NotifyWorkEvent(ctx context.Context, userID string, role domain.UserRole, event domain.NotificationEventType, work *domain.FarmWork, message, relatedUserID string) error {
	args := m.Called(ctx, userID, role, event, work, message, relatedUserID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type FarmWorkServiceTestSuite struct {
	suite.Suite
	mockWorkRepo *MockFarmWorkRepository
	mockUserRepo *MockUserReader
	mockCropRepo *MockCropReader
	mockNotifier *MockNotifier
	now          time.Time
	service      portssvc.FarmWorkSvcFacade
}

func (suite *FarmWorkServiceTestSuite) SetupTest() {
	suite.mockWorkRepo = new(MockFarmWorkRepository)
	suite.mockUserRepo = new(MockUserReader)
	suite.mockCropRepo = new(MockCropReader)
	suite.mockNotifier = new(MockNotifier)
	suite.now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	suite.rebuildService()
}

func (suite *FarmWorkServiceTestSuite) rebuildService() {
	suite.service = services.NewFarmWorkServiceWithClock(
		suite.mockWorkRepo,
		suite.mockUserRepo,
		suite.mockCropRepo,
		suite.mockNotifier,
		func() time.Time { return suite.now },
	)
}

func (suite *FarmWorkServiceTestSuite) farmer() *domain.User {
	return &domain.User{
		Username: "ramesh",
		Role:     domain.RoleFarmer,
		Area:     "Nashik",
		State:    "Maharashtra",
	}
}

func (suite *FarmWorkServiceTestSuite) activeWork(workDate time.Time) *domain.FarmWork {
	return &domain.FarmWork{
		WorkID:             "work-1",
		FarmerUsername:     "ramesh",
		CropName:           "Tomato",
		WorkType:           domain.WorkTypeHarvesting,
		LaboursRequired:    3,
		WorkDate:           workDate,
		Area:               "Nashik",
		State:              "Maharashtra",
		Status:             domain.WorkStatusActive,
		LabourApplications: []domain.LabourApplication{},
		CreatedAt:          suite.now.Add(-24 * time.Hour),
	}
}

// --- PostWork ---

func (suite *FarmWorkServiceTestSuite) TestPostWork_Success() {
	ctx := context.Background()
	req := dto.CreateFarmWorkRequest{
		CropName:        "Tomato",
		WorkType:        "harvesting",
		LaboursRequired: 5,
		WorkDate:        "2026-09-03",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ramesh").Return(suite.farmer(), nil).Once()
	suite.mockCropRepo.On("ListCropNames", ctx, "ramesh").Return([]string{"Tomato", "Onion"}, nil).Once()
	suite.mockWorkRepo.On("SaveWork", ctx, mock.AnythingOfType("domain.FarmWork")).Return(nil).Once()
	suite.mockNotifier.On("NotifyWorkEvent", ctx, "ramesh", domain.RoleFarmer, domain.EventCreation,
		mock.AnythingOfType("*domain.FarmWork"), mock.AnythingOfType("string"), "").Return(nil).Once()

	work, err := suite.service.PostWork(ctx, "ramesh", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(work)
	suite.NotEmpty(work.WorkID)
	suite.Equal(domain.WorkStatusActive, work.Status)
	suite.Equal("Nashik", work.Area)
	suite.Equal("Maharashtra", work.State)
	suite.Empty(work.LabourApplications)
	suite.mockWorkRepo.AssertExpectations(suite.T())
}

func (suite *FarmWorkServiceTestSuite) TestPostWork_UnregisteredCrop() {
	ctx := context.Background()
	req := dto.CreateFarmWorkRequest{
		CropName:        "Mango",
		WorkType:        "harvesting",
		LaboursRequired: 2,
		WorkDate:        "2026-09-03",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ramesh").Return(suite.farmer(), nil).Once()
	suite.mockCropRepo.On("ListCropNames", ctx, "ramesh").Return([]string{"Tomato"}, nil).Once()

	work, err := suite.service.PostWork(ctx, "ramesh", req)

	suite.Nil(work)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "SaveWork", mock.Anything, mock.Anything)
}

func (suite *FarmWorkServiceTestSuite) TestPostWork_WorkDateToday() {
	ctx := context.Background()
	req := dto.CreateFarmWorkRequest{
		CropName:        "Tomato",
		WorkType:        "weeding",
		LaboursRequired: 2,
		WorkDate:        "2026-09-01", // today relative to the pinned clock
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ramesh").Return(suite.farmer(), nil).Once()

	work, err := suite.service.PostWork(ctx, "ramesh", req)

	suite.Nil(work)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Apply ---

func (suite *FarmWorkServiceTestSuite) TestApply_Success() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("AppendApplication", ctx, "work-1", mock.AnythingOfType("domain.LabourApplication")).Return(nil).Once()
	suite.mockNotifier.On("NotifyWorkEvent", ctx, mock.Anything, mock.Anything, domain.EventApplication,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	err := suite.service.Apply(ctx, "work-1", "suresh", "suresh", "Suresh Kumar", "9876543210")

	suite.Require().NoError(err)
	suite.mockWorkRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *FarmWorkServiceTestSuite) TestApply_AtCutoffInstant() {
	ctx := context.Background()
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	work := suite.activeWork(workDate)

	// 23:00 on the day before the work date is still allowed.
	suite.now = domain.ApplicationCutoff(workDate)
	suite.rebuildService()

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("AppendApplication", ctx, "work-1", mock.AnythingOfType("domain.LabourApplication")).Return(nil).Once()
	suite.mockNotifier.On("NotifyWorkEvent", ctx, mock.Anything, mock.Anything, domain.EventApplication,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	suite.NoError(suite.service.Apply(ctx, "work-1", "suresh", "suresh", "", "9876543210"))
}

func (suite *FarmWorkServiceTestSuite) TestApply_AfterCutoff() {
	ctx := context.Background()
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	work := suite.activeWork(workDate)

	suite.now = domain.ApplicationCutoff(workDate).Add(time.Millisecond)
	suite.rebuildService()

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Apply(ctx, "work-1", "suresh", "suresh", "", "9876543210")

	suite.ErrorIs(err, apperrors.ErrDeadlinePassed)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "AppendApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FarmWorkServiceTestSuite) TestApply_OwnPosting() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Apply(ctx, "work-1", "ramesh", "ramesh", "", "9876543210")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FarmWorkServiceTestSuite) TestApply_LostRaceForLastSlot() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("AppendApplication", ctx, "work-1", mock.AnythingOfType("domain.LabourApplication")).
		Return(apperrors.ErrCapacityFull).Once()

	err := suite.service.Apply(ctx, "work-1", "suresh", "suresh", "", "9876543210")

	suite.ErrorIs(err, apperrors.ErrCapacityFull)
	suite.mockNotifier.AssertNotCalled(suite.T(), "NotifyWorkEvent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FarmWorkServiceTestSuite) TestApply_NotActive() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	work.Status = domain.WorkStatusCancelled

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Apply(ctx, "work-1", "suresh", "suresh", "", "9876543210")

	suite.ErrorIs(err, apperrors.ErrNotActive)
}

// --- Withdraw ---

func (suite *FarmWorkServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	work.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}}

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("RemoveApplication", ctx, "work-1", "suresh").Return(nil).Once()
	suite.mockNotifier.On("NotifyWorkEvent", ctx, mock.Anything, mock.Anything, domain.EventWithdrawal,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	suite.NoError(suite.service.Withdraw(ctx, "work-1", "suresh"))
	suite.mockWorkRepo.AssertExpectations(suite.T())
}

func (suite *FarmWorkServiceTestSuite) TestWithdraw_AtCutoffInstant() {
	ctx := context.Background()
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	work := suite.activeWork(workDate)
	work.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}}

	// 23:59:59.999 on the day before the work date is still allowed.
	suite.now = domain.ModificationCutoff(workDate)
	suite.rebuildService()

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("RemoveApplication", ctx, "work-1", "suresh").Return(nil).Once()
	suite.mockNotifier.On("NotifyWorkEvent", ctx, mock.Anything, mock.Anything, domain.EventWithdrawal,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	suite.NoError(suite.service.Withdraw(ctx, "work-1", "suresh"))
}

func (suite *FarmWorkServiceTestSuite) TestWithdraw_OnWorkDay() {
	ctx := context.Background()
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	work := suite.activeWork(workDate)
	work.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}}

	// Midnight of the work date itself is one millisecond past the cutoff.
	suite.now = workDate
	suite.rebuildService()

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Withdraw(ctx, "work-1", "suresh")

	suite.ErrorIs(err, apperrors.ErrDeadlinePassed)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "RemoveApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FarmWorkServiceTestSuite) TestWithdraw_NeverApplied() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Withdraw(ctx, "work-1", "suresh")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Cancel ---

func (suite *FarmWorkServiceTestSuite) TestCancel_NotifiesEveryApplicant() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	work.LabourApplications = []domain.LabourApplication{
		{LabourUsername: "suresh"},
		{LabourUsername: "mahesh"},
	}

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()
	suite.mockWorkRepo.On("CancelWork", ctx, "work-1", "ramesh", suite.now).Return(nil).Once()
	// Owner plus both applicants.
	suite.mockNotifier.On("NotifyWorkEvent", ctx, mock.Anything, mock.Anything, domain.EventCancellation,
		mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

	suite.NoError(suite.service.Cancel(ctx, "work-1", "ramesh"))
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *FarmWorkServiceTestSuite) TestCancel_NotOwner() {
	ctx := context.Background()
	work := suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Cancel(ctx, "work-1", "someone-else")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "CancelWork", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FarmWorkServiceTestSuite) TestCancel_AfterCutoff() {
	ctx := context.Background()
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	work := suite.activeWork(workDate)

	suite.now = domain.ModificationCutoff(workDate).Add(time.Millisecond)
	suite.rebuildService()

	suite.mockWorkRepo.On("FindWorkByID", ctx, "work-1").Return(work, nil).Once()

	err := suite.service.Cancel(ctx, "work-1", "ramesh")

	suite.ErrorIs(err, apperrors.ErrDeadlinePassed)
}

// --- Sweep and dashboards ---

func (suite *FarmWorkServiceTestSuite) TestSweepExpired_UsesStartOfToday() {
	ctx := context.Background()
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	suite.mockWorkRepo.On("CompleteExpiredWorks", ctx, today).Return(int64(2), nil).Once()

	count, err := suite.service.SweepExpired(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
	suite.mockWorkRepo.AssertExpectations(suite.T())
}

func (suite *FarmWorkServiceTestSuite) TestFarmerDashboard_PartitionsAndCounts() {
	ctx := context.Background()
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	active := *suite.activeWork(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	active.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}}
	done := *suite.activeWork(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	done.WorkID = "work-2"
	done.Status = domain.WorkStatusCompleted
	done.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}, {LabourUsername: "mahesh"}}

	suite.mockWorkRepo.On("CompleteExpiredWorks", ctx, today).Return(int64(0), nil).Once()
	suite.mockWorkRepo.On("ListWorksByFarmer", ctx, "ramesh").Return([]domain.FarmWork{active, done}, nil).Once()

	dashboard, err := suite.service.FarmerDashboard(ctx, "ramesh")

	suite.Require().NoError(err)
	suite.Len(dashboard.ActiveWorks, 1)
	suite.Len(dashboard.PastWorks, 1)
	suite.Equal(3, dashboard.TotalApplications)
}

func (suite *FarmWorkServiceTestSuite) TestListAvailableWorks_FiltersFullAppliedAndOwn() {
	ctx := context.Background()
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	workDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	open := *suite.activeWork(workDate)
	full := *suite.activeWork(workDate)
	full.WorkID = "work-2"
	full.LaboursRequired = 1
	full.LabourApplications = []domain.LabourApplication{{LabourUsername: "mahesh"}}
	applied := *suite.activeWork(workDate)
	applied.WorkID = "work-3"
	applied.LabourApplications = []domain.LabourApplication{{LabourUsername: "suresh"}}
	own := *suite.activeWork(workDate)
	own.WorkID = "work-4"
	own.FarmerUsername = "suresh"

	labour := &domain.User{Username: "suresh", Role: domain.RoleLabour, Area: "Nashik", State: "Maharashtra"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "suresh").Return(labour, nil).Once()
	suite.mockWorkRepo.On("ListActiveWorksInArea", ctx, "Nashik", "Maharashtra", today).
		Return([]domain.FarmWork{open, full, applied, own}, nil).Once()

	available, err := suite.service.ListAvailableWorks(ctx, "suresh")

	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal("work-1", available[0].WorkID)
}

func TestFarmWorkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FarmWorkServiceTestSuite))
}
