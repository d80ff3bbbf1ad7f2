//go:build unit
// +build unit

package mail

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		message   Message
		shouldErr bool
	}{
		{
			name:      "text and html",
			message:   Message{From: "noreply@example.com", To: "jane@example.com", Subject: "Hi", Text: "hi", HTML: "<p>hi</p>"},
			shouldErr: false,
		},
		{
			name:      "text only",
			message:   Message{From: "noreply@example.com", To: "jane@example.com", Subject: "Hi", Text: "hi"},
			shouldErr: false,
		},
		{
			name:      "no body",
			message:   Message{From: "noreply@example.com", To: "jane@example.com", Subject: "Hi"},
			shouldErr: true,
		},
		{
			name:      "missing sender",
			message:   Message{To: "jane@example.com", Subject: "Hi", Text: "hi"},
			shouldErr: true,
		},
		{
			name:      "malformed recipient",
			message:   Message{From: "noreply@example.com", To: "jane", Subject: "Hi", Text: "hi"},
			shouldErr: true,
		},
		{
			name:      "missing subject",
			message:   Message{From: "noreply@example.com", To: "jane@example.com", Text: "hi"},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
