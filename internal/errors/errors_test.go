package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "campaign"}
		assert.Equal(t, "campaign not found", err.Error())
	})

	t.Run("errors.Is matches on entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "lead"}, ErrLeadNotFound))
		assert.False(t, errors.Is(ErrLeadNotFound, ErrCampaignNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("import: %w", ErrCampaignNotFound)
		assert.True(t, errors.Is(err, ErrCampaignNotFound))
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrNoAssigneesAvailable))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "campaign assignee already exists for this campaign and user", ErrCampaignAssigneeExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "lead"}
		assert.Equal(t, "lead already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDuplicateLead))
		assert.False(t, IsAlreadyExists(ErrLeadNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "campaign", Message: "is required"}
		assert.Equal(t, "validation error: campaign - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("leads", "required")))
		assert.True(t, IsValidation(fmt.Errorf("upload: %w", ErrUnsupportedFileType)))
		assert.True(t, IsValidation(ErrTooManyLeads))
		assert.False(t, IsValidation(ErrCampaignNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.True(t, IsAuthentication(NewAuthenticationError("nope")))
	assert.False(t, IsAuthentication(ErrInvalidStatus))
	assert.Equal(t, "authorization header required", ErrMissingAuthHeader.Error())
}

func TestConstructors(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("thing")))
	assert.True(t, IsAlreadyExists(NewAlreadyExistsError("thing", "")))
}
