package domain

// StudentProfile holds academic details for a student account.
type StudentProfile struct {
	UserID         string
	Department     string
	CGPA           float64
	GraduationYear int
	ResumeURL      string
}

// EmployerProfile holds company details for an employer account.
type EmployerProfile struct {
	UserID      string
	CompanyName string
	Industry    string
	Website     string
	IsApproved  bool
}
