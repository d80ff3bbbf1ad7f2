package contact

import "context"

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit validates the submission and, when every check passes, sends the
	// confirmation mail to the submitted address. A non-nil error is only
	// returned for delivery failures; validation failures are reported through
	// the result.
	Submit(ctx context.Context, submission *Submission) (*ValidationResult, error)
}
