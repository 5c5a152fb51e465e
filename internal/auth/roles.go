package auth

import (
	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// Operation names a guarded action of the portal.
type Operation string

const (
	OpListJobs                Operation = "jobs:list"
	OpGetJob                  Operation = "jobs:get"
	OpCreateJob               Operation = "jobs:create"
	OpListApplications        Operation = "applications:list"
	OpCreateApplication       Operation = "applications:create"
	OpUpdateApplicationStatus Operation = "applications:update_status"
	OpViewStats               Operation = "stats:view"
	OpSetEmployerApproval     Operation = "employers:set_approval"
)

// RoleSet is an unordered set of roles.
type RoleSet map[domain.Role]struct{}

// NewRoleSet builds a set from roles.
func NewRoleSet(roles ...domain.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (s RoleSet) Contains(role domain.Role) bool {
	_, ok := s[role]
	return ok
}

var permissions = map[Operation]RoleSet{
	OpListJobs:                NewRoleSet(domain.Roles()...),
	OpGetJob:                  NewRoleSet(domain.Roles()...),
	OpCreateJob:               NewRoleSet(domain.RoleEmployer),
	OpListApplications:        NewRoleSet(domain.Roles()...),
	OpCreateApplication:       NewRoleSet(domain.RoleStudent),
	OpUpdateApplicationStatus: NewRoleSet(domain.RoleEmployer, domain.RoleAdmin, domain.RoleOfficer),
	OpViewStats:               NewRoleSet(domain.RoleAdmin, domain.RoleOfficer),
	OpSetEmployerApproval:     NewRoleSet(domain.RoleAdmin, domain.RoleOfficer),
}

// AllowedRoles returns the roles permitted to perform op.
func AllowedRoles(op Operation) (RoleSet, bool) {
	set, ok := permissions[op]
	return set, ok
}

// Authorize succeeds iff user holds one of the required roles.
func Authorize(user *domain.User, required RoleSet) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !required.Contains(user.Role) {
		return apperrors.NewForbidden("insufficient role")
	}
	return nil
}

// AuthorizeOperation checks user against the permission table. Unknown operations are denied.
func AuthorizeOperation(user *domain.User, op Operation) error {
	required, ok := AllowedRoles(op)
	if !ok {
		required = RoleSet{}
	}
	return Authorize(user, required)
}
