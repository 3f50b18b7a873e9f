package service

import (
	"fmt"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

// RoleAuthorizer gates operations by session role. Owner and Editor may
// mutate the tree; Viewer is read/search-only. The tree engine itself has no
// concept of identity - all enforcement happens here, above it.
type RoleAuthorizer struct{}

// NewRoleAuthorizer creates a role authorizer.
func NewRoleAuthorizer() *RoleAuthorizer {
	return &RoleAuthorizer{}
}

// RequireReader checks the role permits read and search operations.
func (a *RoleAuthorizer) RequireReader(role models.Role) error {
	if !models.ValidRole(role) {
		return &domain.ForbiddenError{Message: fmt.Sprintf("unknown role %q", role)}
	}
	return nil
}

// RequireEditor checks the role permits state-changing operations.
func (a *RoleAuthorizer) RequireEditor(role models.Role) error {
	if !models.ValidRole(role) {
		return &domain.ForbiddenError{Message: fmt.Sprintf("unknown role %q", role)}
	}
	if !role.CanMutate() {
		return &domain.ForbiddenError{Message: "viewer role cannot modify the document tree"}
	}
	return nil
}

func notFoundFolder(id string) error {
	return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
}
