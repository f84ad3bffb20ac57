package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"rishta_backend/internal/models"
)

// registerCustomRules registers the domain validation tags on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error, not a
			// request error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-profile-status", validateProfileStatus)
	mustRegister("is-report-status", validateReportStatus)
	mustRegister("is-relationship-goal", validateRelationshipGoal)
	mustRegister("is-marital-status", validateMaritalStatus)
	mustRegister("is-habit-frequency", validateHabitFrequency)
	mustRegister("is-report-reason", validateReportReason)
}

// Empty values pass every rule; 'required' handles presence separately.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleMember, models.UserRoleModerator, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateProfileStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProfileStatus(value) {
	case models.ProfileStatusPending, models.ProfileStatusApproved, models.ProfileStatusRejected:
		return true
	default:
		return false
	}
}

func validateReportStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReportStatus(value) {
	case models.ReportStatusPending, models.ReportStatusResolved, models.ReportStatusDismissed:
		return true
	default:
		return false
	}
}

func validateRelationshipGoal(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "Marriage", "Friendship", "Undecided":
		return true
	default:
		return false
	}
}

func validateMaritalStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "single", "divorced", "widowed":
		return true
	default:
		return false
	}
}

func validateHabitFrequency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "never", "occasionally", "regularly":
		return true
	default:
		return false
	}
}

func validateReportReason(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "fake_profile", "inappropriate_content", "harassment", "scam", "underage", "other":
		return true
	default:
		return false
	}
}
