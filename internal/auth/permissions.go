package auth

import (
	"errors"

	"rishta_backend/internal/models"
)

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// IsModeratorOrHigher reports whether the claims can act on moderation queues.
func IsModeratorOrHigher(claims *Claims) bool {
	return claims.Role == models.UserRoleModerator || claims.Role == models.UserRoleAdmin
}

// ValidateRole rejects roles outside the known set.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleMember, models.UserRoleModerator, models.UserRoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
