package domain

// FarmerDashboard partitions a farmer's postings and totals their applications.
type FarmerDashboard struct {
	ActiveWorks       []FarmWork `json:"activeWorks"`
	PastWorks         []FarmWork `json:"pastWorks"`
	TotalApplications int        `json:"totalApplications"`
}

// LabourDashboard summarises a labourer's view of their area: the works they
// applied to (split by status) and how many active in-area postings they could
// still apply to.
type LabourDashboard struct {
	AppliedActive []FarmWork `json:"appliedActive"`
	AppliedPast   []FarmWork `json:"appliedPast"`
	AvailableJobs int        `json:"availableJobs"`
}
