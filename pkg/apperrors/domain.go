package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common domain errors.

// ErrNotFound wraps a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation creates a 400 for operations the business rules forbid.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus creates a 400 for bad lifecycle transitions.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidOTP - the submitted code does not match the one sent.
var ErrInvalidOTP = New(
	CodeInvalidOTP,
	"auth",
	"Invalid OTP",
	http.StatusUnauthorized,
)

// ErrInvalidToken - malformed or expired access token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - operation is not available for the caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Campaigns ---

// ErrCampaignNotFound - campaign id does not exist in the catalog.
var ErrCampaignNotFound = New(
	CodeNotFound,
	"campaign",
	"Campaign not found",
	http.StatusNotFound,
)

// ErrInvalidCampaignStatus - lifecycle transition not allowed.
var ErrInvalidCampaignStatus = New(
	CodeInvalidStatus,
	"campaign",
	"Operation not allowed for the current campaign status",
	http.StatusConflict,
)

// --- Users & subscriptions ---

// ErrUserNotFound - user id does not exist.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrInvalidSubscriptionPlan - plan must be monthly or yearly at purchase time.
var ErrInvalidSubscriptionPlan = New(
	CodeValidationFailed,
	"subscription",
	"Invalid subscription plan",
	http.StatusBadRequest,
)
