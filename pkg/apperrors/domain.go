package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common business-logic errors.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the current state forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for invalid status transitions.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth & user status ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Profiles & discovery ---

var ErrProfileNotApproved = New(
	CodeInvalidStatus,
	"profile",
	"Profile has not been approved yet",
	http.StatusForbidden,
)

var ErrProfileIncomplete = New(
	CodeInvalidOperation,
	"profile",
	"Profile is incomplete. Add a birth date and location before discovery.",
	http.StatusBadRequest,
)

var ErrPremiumRequired = New(
	CodeForbidden,
	"subscription",
	"This filter requires a premium subscription",
	http.StatusForbidden,
)

// --- Interactions & moderation ---

var ErrSelfInteraction = New(
	CodeInvalidOperation,
	"interaction",
	"Cannot like or pass on yourself",
	http.StatusBadRequest,
)

var ErrUserBlocked = New(
	CodeForbidden,
	"moderation",
	"Interaction with a blocked user is not allowed",
	http.StatusForbidden,
)

var ErrReportAlreadyResolved = New(
	CodeInvalidStatus,
	"moderation",
	"Report has already been resolved",
	http.StatusConflict,
)

// --- Referrals ---

var ErrInvalidReferralCode = New(
	CodeNotFound,
	"referral",
	"Referral code not found",
	http.StatusBadRequest,
)

var ErrSelfReferral = New(
	CodeInvalidOperation,
	"referral",
	"You cannot redeem your own referral code",
	http.StatusBadRequest,
)

var ErrReferralAlreadyRedeemed = New(
	CodeAlreadyExists,
	"referral",
	"A referral has already been redeemed for this account",
	http.StatusConflict,
)

// --- Subscriptions ---

var ErrSubscriptionCancelled = New(
	CodeInvalidOperation,
	"subscription",
	"Subscription is already cancelled",
	http.StatusBadRequest,
)

var ErrNoActiveSubscription = New(
	CodeNotFound,
	"subscription",
	"No active subscription",
	http.StatusNotFound,
)
