package domain

import (
	"strings"
	"time"
)

// Job is a position posted by an employer.
type Job struct {
	ID           string
	EmployerID   string
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       string
	PostedAt     time.Time
}

// Tags splits the comma-delimited requirements.
func (j Job) Tags() []string {
	parts := strings.Split(j.Requirements, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
