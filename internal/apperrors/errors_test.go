package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found", NotFound("campaign not found"), CodeNotFound},
		{"validation", Validation("name is required"), CodeValidation},
		{"unauthorized", Unauthorized("missing token"), CodeUnauthorized},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("issue not found")), CodeNotFound},
		{"plain error", errors.New("connection refused"), CodeInternal},
		{"nil is internal", nil, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("CodeOf() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("block not found")
	if err.Error() != "block not found" {
		t.Errorf("Error() = %q, want %q", err.Error(), "block not found")
	}
}
