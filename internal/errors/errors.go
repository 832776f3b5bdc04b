package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this campaign and user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrCampaignNotFound         = &NotFoundError{Entity: "campaign"}
	ErrLeadNotFound             = &NotFoundError{Entity: "lead"}
	ErrCampaignAssigneeNotFound = &NotFoundError{Entity: "campaign assignee"}
	ErrAssigneeLeadNotFound     = &NotFoundError{Entity: "assignee lead"}
)

// Already Exists Errors
var (
	ErrCampaignAssigneeExists = &AlreadyExistsError{Entity: "campaign assignee", Context: "for this campaign and user"}
	ErrDuplicateLead          = &AlreadyExistsError{Entity: "lead", Context: "with this email or phone"}
)

// Business Logic Errors
var (
	ErrNoAssigneesAvailable    = errors.New("no assignees available")
	ErrInvalidAssignee         = errors.New("user is not an active assignee of the lead's campaign")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrInvalidCampaignRole     = errors.New("invalid campaign role")
	ErrTooManyLeads            = &ValidationError{Field: "leads", Message: "too many leads in one import"}
	ErrUnsupportedFileType     = &ValidationError{Field: "file", Message: "unsupported file type, expected .xlsx or .csv"}
	ErrEmptySpreadsheet        = &ValidationError{Field: "file", Message: "spreadsheet has no data rows"}
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
