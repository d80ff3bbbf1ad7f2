//go:build unit
// +build unit

package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Validate(t *testing.T) {
	tests := []struct {
		name       string
		submission Submission
		expected   []string
	}{
		{
			name:       "valid submission",
			submission: Submission{Username: "Jane", Email: "jane@example.com", Description: "Question"},
			expected:   []string{},
		},
		{
			name:       "missing username",
			submission: Submission{Email: "jane@example.com", Description: "Question"},
			expected:   []string{MsgUsernameRequired},
		},
		{
			name:       "missing email",
			submission: Submission{Username: "Jane", Description: "Question"},
			expected:   []string{MsgEmailRequired},
		},
		{
			name:       "malformed email",
			submission: Submission{Username: "Jane", Email: "not-an-email", Description: "Question"},
			expected:   []string{MsgEmailInvalid},
		},
		{
			name:       "missing description",
			submission: Submission{Username: "Jane", Email: "jane@example.com"},
			expected:   []string{MsgDescriptionRequired},
		},
		{
			name:       "all fields empty",
			submission: Submission{},
			expected:   []string{MsgUsernameRequired, MsgEmailRequired, MsgDescriptionRequired},
		},
		{
			name:       "malformed email and missing description",
			submission: Submission{Username: "Jane", Email: "jane@", Description: ""},
			expected:   []string{MsgEmailInvalid, MsgDescriptionRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.submission.Validate()

			assert.Equal(t, tt.expected, result.Messages())
			assert.Equal(t, len(tt.expected) == 0, result.Valid())
		})
	}
}

func TestSubmission_Validate_FieldsOfFailures(t *testing.T) {
	result := (&Submission{}).Validate()

	fields := make([]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{FieldUsername, FieldEmail, FieldDescription}, fields)
}

func TestSubmission_TemplateData(t *testing.T) {
	s := &Submission{Username: "Jane", Email: "jane@example.com", Description: "Question"}

	assert.Equal(t, map[string]any{"username": "Jane", "description": "Question"}, s.TemplateData())
}
