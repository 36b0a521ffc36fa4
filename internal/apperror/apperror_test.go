package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesSurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("idea", "idea-9"), ErrNotFound},
		{"validation", Validation("content is required"), ErrValidation},
		{"store", Store("inserting comment", errors.New("connection reset")), ErrStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handling request: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			var appErr *AppError
			require.True(t, errors.As(wrapped, &appErr))
			assert.NotEmpty(t, appErr.Message)
		})
	}
}

func TestNotFoundMessageNamesResource(t *testing.T) {
	err := NotFound("team", "team-1")
	assert.Equal(t, "team not found with id team-1", err.Error())
}
