package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// farmWorkService implements the farm work lifecycle: posting, application
// matching with atomic capacity enforcement, withdrawal, cancellation, the
// expiry sweep and the role dashboards.
type farmWorkService struct {
	BaseService
	workRepo portsrepo.FarmWorkRepositoryFacade
	userRepo portsrepo.UserReader
	cropRepo portsrepo.CropReader
	notifier portssvc.WorkEventNotifierSvc
	now      func() time.Time
}

// NewFarmWorkService creates a new farm work service.
func NewFarmWorkService(
	workRepo portsrepo.FarmWorkRepositoryFacade,
	userRepo portsrepo.UserReader,
	cropRepo portsrepo.CropReader,
	notifier portssvc.WorkEventNotifierSvc,
) portssvc.FarmWorkSvcFacade {
	return &farmWorkService{
		workRepo: workRepo,
		userRepo: userRepo,
		cropRepo: cropRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// NewFarmWorkServiceWithClock creates a farm work service with an injected
// clock. Used by tests to pin the deadline checks to known instants.
func NewFarmWorkServiceWithClock(
	workRepo portsrepo.FarmWorkRepositoryFacade,
	userRepo portsrepo.UserReader,
	cropRepo portsrepo.CropReader,
	notifier portssvc.WorkEventNotifierSvc,
	now func() time.Time,
) portssvc.FarmWorkSvcFacade {
	svc := &farmWorkService{
		workRepo: workRepo,
		userRepo: userRepo,
		cropRepo: cropRepo,
		notifier: notifier,
		now:      now,
	}
	return svc
}

var _ portssvc.FarmWorkSvcFacade = (*farmWorkService)(nil)

func (s *farmWorkService) GetWork(ctx context.Context, workID string) (*domain.FarmWork, error) {
	return s.workRepo.FindWorkByID(ctx, workID)
}

func (s *farmWorkService) ListFarmerWorks(ctx context.Context, farmerUsername string) ([]domain.FarmWork, error) {
	return s.workRepo.ListWorksByFarmer(ctx, farmerUsername)
}

func (s *farmWorkService) ListAvailableWorks(ctx context.Context, labourUsername string) ([]domain.FarmWork, error) {
	labour, err := s.userRepo.FindUserByUsername(ctx, labourUsername)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	works, err := s.workRepo.ListActiveWorksInArea(ctx, labour.Area, labour.State, today)
	if err != nil {
		return nil, err
	}

	available := []domain.FarmWork{}
	for _, w := range works {
		if w.FarmerUsername == labourUsername {
			continue
		}
		if w.IsFull() || w.HasApplicant(labourUsername) {
			continue
		}
		available = append(available, w)
	}
	return available, nil
}

func (s *farmWorkService) ListAppliedWorks(ctx context.Context, labourUsername string) ([]domain.FarmWork, error) {
	return s.workRepo.ListWorksByApplicant(ctx, labourUsername)
}

func (s *farmWorkService) PostWork(ctx context.Context, farmerUsername string, req dto.CreateFarmWorkRequest) (*domain.FarmWork, error) {
	farmer, err := s.userRepo.FindUserByUsername(ctx, farmerUsername)
	if err != nil {
		return nil, err
	}

	workType := domain.WorkType(req.WorkType)
	if !workType.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown work type " + req.WorkType)
	}
	if req.LaboursRequired < domain.MinLaboursRequired || req.LaboursRequired > domain.MaxLaboursRequired {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf(
			"laboursRequired must be between %d and %d", domain.MinLaboursRequired, domain.MaxLaboursRequired))
	}

	workDate, err := time.ParseInLocation("2006-01-02", req.WorkDate, s.now().Location())
	if err != nil {
		return nil, apperrors.NewValidationFailedError("workDate must be YYYY-MM-DD")
	}
	if workDate.Before(domain.MinWorkDate(s.now())) {
		return nil, apperrors.NewValidationFailedError("workDate must be tomorrow or later")
	}

	cropNames, err := s.cropRepo.ListCropNames(ctx, farmerUsername)
	if err != nil {
		return nil, err
	}
	registered := false
	for _, name := range cropNames {
		if name == req.CropName {
			registered = true
			break
		}
	}
	if !registered {
		return nil, apperrors.NewValidationFailedError("crop " + req.CropName + " is not registered on your profile")
	}

	work := domain.FarmWork{
		WorkID:             uuid.NewString(),
		FarmerUsername:     farmerUsername,
		CropName:           req.CropName,
		WorkType:           workType,
		LaboursRequired:    req.LaboursRequired,
		WorkDate:           workDate,
		AdditionalDetails:  req.AdditionalDetails,
		Area:               farmer.Area,
		State:              farmer.State,
		Status:             domain.WorkStatusActive,
		LabourApplications: []domain.LabourApplication{},
		CreatedAt:          s.now(),
	}
	if err := s.workRepo.SaveWork(ctx, work); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "farm work posted",
		"work_id", work.WorkID, "farmer", farmerUsername, "work_date", req.WorkDate)

	s.notify(ctx, farmerUsername, domain.RoleFarmer, domain.EventCreation, &work,
		fmt.Sprintf("You posted %s for %s on %s.", work.WorkName(), work.CropName, req.WorkDate), "")
	return &work, nil
}

func (s *farmWorkService) Apply(ctx context.Context, workID, labourUsername, name, fullName, mobile string) error {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if work.FarmerUsername == labourUsername {
		return apperrors.NewValidationFailedError("you cannot apply to your own posting")
	}
	if !work.IsActive() {
		return apperrors.ErrNotActive
	}
	if !work.CanAcceptApplications(s.now()) {
		return apperrors.ErrDeadlinePassed
	}

	app := domain.LabourApplication{
		LabourUsername: labourUsername,
		Name:           name,
		FullName:       fullName,
		Mobile:         mobile,
		AppliedAt:      s.now(),
	}
	// Capacity, duplicate and status checks are re-evaluated atomically in the
	// repository; the reads above only produce friendlier early errors.
	if err := s.workRepo.AppendApplication(ctx, workID, app); err != nil {
		return err
	}

	s.LogInfo(ctx, "labour applied to farm work", "work_id", workID, "labour", labourUsername)

	s.notify(ctx, work.FarmerUsername, domain.RoleFarmer, domain.EventApplication, work,
		fmt.Sprintf("%s applied to your %s for %s.", labourUsername, work.WorkName(), work.CropName), labourUsername)
	s.notify(ctx, labourUsername, domain.RoleLabour, domain.EventApplication, work,
		fmt.Sprintf("You applied to %s for %s posted by %s.", work.WorkName(), work.CropName, work.FarmerUsername), work.FarmerUsername)
	return nil
}

func (s *farmWorkService) Withdraw(ctx context.Context, workID, labourUsername string) error {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if !work.IsActive() {
		return apperrors.ErrNotActive
	}
	if !work.HasApplicant(labourUsername) {
		return apperrors.NewNotFoundError("you have not applied to this work")
	}
	if !work.CanModify(s.now()) {
		return apperrors.ErrDeadlinePassed
	}

	if err := s.workRepo.RemoveApplication(ctx, workID, labourUsername); err != nil {
		return err
	}

	s.LogInfo(ctx, "labour withdrew from farm work", "work_id", workID, "labour", labourUsername)

	s.notify(ctx, work.FarmerUsername, domain.RoleFarmer, domain.EventWithdrawal, work,
		fmt.Sprintf("%s withdrew from your %s for %s.", labourUsername, work.WorkName(), work.CropName), labourUsername)
	s.notify(ctx, labourUsername, domain.RoleLabour, domain.EventWithdrawal, work,
		fmt.Sprintf("You withdrew from %s for %s.", work.WorkName(), work.CropName), work.FarmerUsername)
	return nil
}

func (s *farmWorkService) Cancel(ctx context.Context, workID, farmerUsername string) error {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return err
	}
	if work.FarmerUsername != farmerUsername {
		return apperrors.ErrForbidden
	}
	if !work.IsActive() {
		return apperrors.ErrNotActive
	}
	if !work.CanModify(s.now()) {
		return apperrors.ErrDeadlinePassed
	}

	cancelledAt := s.now()
	if err := s.workRepo.CancelWork(ctx, workID, farmerUsername, cancelledAt); err != nil {
		return err
	}
	work.Status = domain.WorkStatusCancelled
	work.CancelledAt = &cancelledAt

	s.LogInfo(ctx, "farm work cancelled",
		"work_id", workID, "farmer", farmerUsername, "applicants", len(work.LabourApplications))

	s.notify(ctx, farmerUsername, domain.RoleFarmer, domain.EventCancellation, work,
		fmt.Sprintf("You cancelled %s for %s.", work.WorkName(), work.CropName), "")
	for _, app := range work.LabourApplications {
		s.notify(ctx, app.LabourUsername, domain.RoleLabour, domain.EventCancellation, work,
			fmt.Sprintf("%s cancelled the %s for %s you applied to.", farmerUsername, work.WorkName(), work.CropName), farmerUsername)
	}
	return nil
}

func (s *farmWorkService) Delete(ctx context.Context, workID, farmerUsername string) error {
	if err := s.workRepo.DeleteWork(ctx, workID, farmerUsername); err != nil {
		return err
	}
	s.LogInfo(ctx, "farm work deleted", "work_id", workID, "farmer", farmerUsername)
	return nil
}

func (s *farmWorkService) SweepExpired(ctx context.Context) (int64, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.workRepo.CompleteExpiredWorks(ctx, today)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.LogInfo(ctx, "expiry sweep completed postings", "count", count)
	}
	return count, nil
}

func (s *farmWorkService) FarmerDashboard(ctx context.Context, farmerUsername string) (*domain.FarmerDashboard, error) {
	if _, err := s.SweepExpired(ctx); err != nil {
		return nil, err
	}

	works, err := s.workRepo.ListWorksByFarmer(ctx, farmerUsername)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.FarmerDashboard{
		ActiveWorks: []domain.FarmWork{},
		PastWorks:   []domain.FarmWork{},
	}
	for _, w := range works {
		if w.IsActive() {
			dashboard.ActiveWorks = append(dashboard.ActiveWorks, w)
		} else {
			dashboard.PastWorks = append(dashboard.PastWorks, w)
		}
		dashboard.TotalApplications += len(w.LabourApplications)
	}
	return dashboard, nil
}

func (s *farmWorkService) LabourDashboard(ctx context.Context, labourUsername string) (*domain.LabourDashboard, error) {
	if _, err := s.SweepExpired(ctx); err != nil {
		return nil, err
	}

	applied, err := s.workRepo.ListWorksByApplicant(ctx, labourUsername)
	if err != nil {
		return nil, err
	}
	available, err := s.ListAvailableWorks(ctx, labourUsername)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.LabourDashboard{
		AppliedActive: []domain.FarmWork{},
		AppliedPast:   []domain.FarmWork{},
		AvailableJobs: len(available),
	}
	for _, w := range applied {
		if w.IsActive() {
			dashboard.AppliedActive = append(dashboard.AppliedActive, w)
		} else {
			dashboard.AppliedPast = append(dashboard.AppliedPast, w)
		}
	}
	return dashboard, nil
}

// notify records a lifecycle notification. Failures are logged and swallowed so
// that notification trouble never rolls back the triggering operation.
func (s *farmWorkService) notify(ctx context.Context, userID string, role domain.UserRole, event domain.NotificationEventType, work *domain.FarmWork, message, relatedUserID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyWorkEvent(ctx, userID, role, event, work, message, relatedUserID); err != nil {
		s.LogWarn(ctx, "failed to record notification",
			"user_id", userID, "event", string(event), "error", err)
	}
}
