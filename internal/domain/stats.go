package domain

// Stats aggregates portal-wide counters.
type Stats struct {
	TotalJobs            int
	TotalApplications    int
	TotalStudents        int
	TotalEmployers       int
	ApplicationsByStatus map[ApplicationStatus]int
}
