package domain

import "time"

// WorkType enumerates the kinds of farm work a posting can describe.
type WorkType string

const (
	WorkTypePlanting        WorkType = "planting"
	WorkTypeHarvesting      WorkType = "harvesting"
	WorkTypeWeeding         WorkType = "weeding"
	WorkTypeIrrigation      WorkType = "irrigation"
	WorkTypeFertilizing     WorkType = "fertilizing"
	WorkTypePestControl     WorkType = "pest-control"
	WorkTypeLandPreparation WorkType = "land-preparation"
	WorkTypeOther           WorkType = "other"
)

// ValidWorkTypes is the closed set of accepted work types.
var ValidWorkTypes = []WorkType{
	WorkTypePlanting,
	WorkTypeHarvesting,
	WorkTypeWeeding,
	WorkTypeIrrigation,
	WorkTypeFertilizing,
	WorkTypePestControl,
	WorkTypeLandPreparation,
	WorkTypeOther,
}

// IsValid reports whether t is a member of the work type enumeration.
func (t WorkType) IsValid() bool {
	for _, v := range ValidWorkTypes {
		if t == v {
			return true
		}
	}
	return false
}

// WorkStatus is the lifecycle state of a farm work posting.
// active is the only non-terminal state; completed and cancelled are terminal.
type WorkStatus string

const (
	WorkStatusActive    WorkStatus = "active"
	WorkStatusCompleted WorkStatus = "completed"
	WorkStatusCancelled WorkStatus = "cancelled"
)

// IsTerminal reports whether no further transition may leave this status.
func (s WorkStatus) IsTerminal() bool {
	return s == WorkStatusCompleted || s == WorkStatusCancelled
}

// LabourApplication is a labourer's application embedded in a FarmWork.
type LabourApplication struct {
	LabourUsername string    `json:"labourUsername"`
	Name           string    `json:"name"`
	FullName       string    `json:"fullName"`
	Mobile         string    `json:"mobile"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// FarmWork is a farm work posting created by a farmer. Applications are embedded
// in insertion order; the count never exceeds LaboursRequired.
type FarmWork struct {
	WorkID             string              `json:"workId"`
	FarmerUsername     string              `json:"farmerUsername"`
	CropName           string              `json:"cropName"`
	WorkType           WorkType            `json:"workType"`
	LaboursRequired    int                 `json:"laboursRequired"`
	WorkDate           time.Time           `json:"workDate"`
	AdditionalDetails  string              `json:"additionalDetails"`
	Area               string              `json:"area"`
	State              string              `json:"state"`
	Status             WorkStatus          `json:"status"`
	LabourApplications []LabourApplication `json:"labourApplications"`
	CreatedAt          time.Time           `json:"createdAt"`
	CancelledAt        *time.Time          `json:"cancelledAt,omitempty"`
}

// MinLaboursRequired and MaxLaboursRequired bound the capacity of a posting.
const (
	MinLaboursRequired = 1
	MaxLaboursRequired = 50
)

// MinWorkDate returns the earliest permitted work date relative to now:
// tomorrow at 00:00. A posting for today or earlier is rejected.
func MinWorkDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// ModificationCutoff returns the instant after which the posting can no longer
// be cancelled by the farmer or withdrawn from by a labourer: 23:59:59.999 on
// the day before the work date.
func ModificationCutoff(workDate time.Time) time.Time {
	y, m, d := workDate.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, workDate.Location())
	return midnight.Add(-time.Millisecond)
}

// ApplicationCutoff returns the instant after which new applications are no
// longer accepted: 23:00 on the day before the work date.
func ApplicationCutoff(workDate time.Time) time.Time {
	y, m, d := workDate.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, workDate.Location())
	return midnight.Add(-time.Hour)
}

// IsActive reports whether the posting still accepts mutations.
func (w *FarmWork) IsActive() bool {
	return w.Status == WorkStatusActive
}

// IsFull reports whether every labour slot has been filled.
func (w *FarmWork) IsFull() bool {
	return len(w.LabourApplications) >= w.LaboursRequired
}

// HasApplicant reports whether the given labourer already applied.
func (w *FarmWork) HasApplicant(labourUsername string) bool {
	for _, app := range w.LabourApplications {
		if app.LabourUsername == labourUsername {
			return true
		}
	}
	return false
}

// CanModify reports whether cancellation/withdrawal is still permitted at now.
// The boundary instant itself is permitted.
func (w *FarmWork) CanModify(now time.Time) bool {
	return !now.After(ModificationCutoff(w.WorkDate))
}

// CanAcceptApplications reports whether the application cutoff has not passed.
func (w *FarmWork) CanAcceptApplications(now time.Time) bool {
	return !now.After(ApplicationCutoff(w.WorkDate))
}

// WorkName is the human-readable label used in notification messages.
func (w *FarmWork) WorkName() string {
	return string(w.WorkType) + " work"
}
