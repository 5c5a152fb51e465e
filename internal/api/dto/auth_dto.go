package dto

import (
	"time"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
)

// StudentDetailsRequest is the student profile part of a registration.
type StudentDetailsRequest struct {
	Department     string  `json:"department"`
	CGPA           float64 `json:"cgpa"`
	GraduationYear int     `json:"graduation_year"`
	ResumeURL      string  `json:"resume_url"`
}

// EmployerDetailsRequest is the employer profile part of a registration.
type EmployerDetailsRequest struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username        string                  `json:"username"`
	Password        string                  `json:"password"`
	Role            string                  `json:"role"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	StudentDetails  *StudentDetailsRequest  `json:"student_details"`
	EmployerDetails *EmployerDetailsRequest `json:"employer_details"`
}

// ToInput maps the payload to the service input.
func (r RegisterRequest) ToInput() service.RegisterInput {
	input := service.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		Role:     domain.Role(r.Role),
		Name:     r.Name,
		Email:    r.Email,
	}
	if d := r.StudentDetails; d != nil {
		input.Student = &service.StudentDetails{
			Department:     d.Department,
			CGPA:           d.CGPA,
			GraduationYear: d.GraduationYear,
			ResumeURL:      d.ResumeURL,
		}
	}
	if d := r.EmployerDetails; d != nil {
		input.Employer = &service.EmployerDetails{
			CompanyName: d.CompanyName,
			Industry:    d.Industry,
			Website:     d.Website,
		}
	}
	return input
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account. The password hash is never exposed.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"created_at"`
}

// StudentProfileResponse view.
type StudentProfileResponse struct {
	Department     string  `json:"department"`
	CGPA           float64 `json:"cgpa"`
	GraduationYear int     `json:"graduation_year"`
	ResumeURL      string  `json:"resume_url,omitempty"`
}

// EmployerProfileResponse view.
type EmployerProfileResponse struct {
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	IsApproved  bool   `json:"is_approved"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the current user together with their profile.
type MeResponse struct {
	User     UserResponse             `json:"user"`
	Student  *StudentProfileResponse  `json:"student_profile,omitempty"`
	Employer *EmployerProfileResponse `json:"employer_profile,omitempty"`
}

// NewUserResponse maps a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewStudentProfileResponse maps a student profile; nil stays nil.
func NewStudentProfileResponse(profile *domain.StudentProfile) *StudentProfileResponse {
	if profile == nil {
		return nil
	}
	return &StudentProfileResponse{
		Department:     profile.Department,
		CGPA:           profile.CGPA,
		GraduationYear: profile.GraduationYear,
		ResumeURL:      profile.ResumeURL,
	}
}

// NewEmployerProfileResponse maps an employer profile; nil stays nil.
func NewEmployerProfileResponse(profile *domain.EmployerProfile) *EmployerProfileResponse {
	if profile == nil {
		return nil
	}
	return &EmployerProfileResponse{
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		Industry:    profile.Industry,
		Website:     profile.Website,
		IsApproved:  profile.IsApproved,
	}
}
