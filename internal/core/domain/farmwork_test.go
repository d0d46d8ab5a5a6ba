package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMinWorkDate(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)

	min := domain.MinWorkDate(now)

	assert.Equal(t, date(2026, time.September, 2), min)
}

func TestMinWorkDate_LateEvening(t *testing.T) {
	now := time.Date(2026, time.September, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, date(2026, time.September, 2), domain.MinWorkDate(now))
}

func TestModificationCutoff(t *testing.T) {
	workDate := date(2026, time.September, 5)

	cutoff := domain.ModificationCutoff(workDate)

	assert.Equal(t, time.Date(2026, time.September, 4, 23, 59, 59, 999000000, time.UTC), cutoff)
}

func TestApplicationCutoff(t *testing.T) {
	workDate := date(2026, time.September, 5)

	cutoff := domain.ApplicationCutoff(workDate)

	assert.Equal(t, time.Date(2026, time.September, 4, 23, 0, 0, 0, time.UTC), cutoff)
}

func TestCanModify_Boundaries(t *testing.T) {
	work := &domain.FarmWork{WorkDate: date(2026, time.September, 5)}
	cutoff := domain.ModificationCutoff(work.WorkDate)

	assert.True(t, work.CanModify(cutoff.Add(-time.Hour)))
	assert.True(t, work.CanModify(cutoff), "the cutoff instant itself is still allowed")
	assert.False(t, work.CanModify(cutoff.Add(time.Millisecond)))
	assert.False(t, work.CanModify(work.WorkDate), "midnight on the work day is too late")
}

func TestCanAcceptApplications_Boundaries(t *testing.T) {
	work := &domain.FarmWork{WorkDate: date(2026, time.September, 5)}
	cutoff := domain.ApplicationCutoff(work.WorkDate)

	assert.True(t, work.CanAcceptApplications(cutoff.Add(-time.Minute)))
	assert.True(t, work.CanAcceptApplications(cutoff), "the cutoff instant itself is still allowed")
	assert.False(t, work.CanAcceptApplications(cutoff.Add(time.Millisecond)))
}

func TestApplicationCutoffPrecedesModificationCutoff(t *testing.T) {
	workDate := date(2026, time.September, 5)

	assert.True(t, domain.ApplicationCutoff(workDate).Before(domain.ModificationCutoff(workDate)))
}

func TestIsFull(t *testing.T) {
	work := &domain.FarmWork{
		LaboursRequired: 2,
		LabourApplications: []domain.LabourApplication{
			{LabourUsername: "suresh"},
		},
	}

	assert.False(t, work.IsFull())

	work.LabourApplications = append(work.LabourApplications, domain.LabourApplication{LabourUsername: "mahesh"})
	assert.True(t, work.IsFull())
}

func TestHasApplicant(t *testing.T) {
	work := &domain.FarmWork{
		LabourApplications: []domain.LabourApplication{
			{LabourUsername: "suresh"},
		},
	}

	assert.True(t, work.HasApplicant("suresh"))
	assert.False(t, work.HasApplicant("mahesh"))
}

func TestWorkStatusIsTerminal(t *testing.T) {
	assert.False(t, domain.WorkStatusActive.IsTerminal())
	assert.True(t, domain.WorkStatusCompleted.IsTerminal())
	assert.True(t, domain.WorkStatusCancelled.IsTerminal())
}

func TestWorkTypeIsValid(t *testing.T) {
	assert.True(t, domain.WorkTypeHarvesting.IsValid())
	assert.True(t, domain.WorkTypePestControl.IsValid())
	assert.False(t, domain.WorkType("fishing").IsValid())
	assert.False(t, domain.WorkType("").IsValid())
}

func TestWorkName(t *testing.T) {
	work := &domain.FarmWork{WorkType: domain.WorkTypeWeeding}

	assert.Equal(t, "weeding work", work.WorkName())
}
