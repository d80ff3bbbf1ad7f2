package contact

import (
	"github.com/MGTheTrain/contact-web/internal/pkg/validators"
)

// Flash messages queued by the contact workflow
const (
	MsgUsernameRequired    = "User name is required"
	MsgEmailRequired       = "Email address is required"
	MsgEmailInvalid        = "Please a correct email address"
	MsgDescriptionRequired = "Inquiry details cannot be empty"
	MsgConfirmationSent    = "Confirmation email was sent to your email address. Thank you!"
)

// Confirmation mail parameters
const (
	ConfirmationSubject  = "Thank you for your inquiry!"
	ConfirmationTemplate = "contact_mail"
)

// Form field names
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldDescription = "description"
)

// Submission is one contact form post. It only lives for the duration of a request.
type Submission struct {
	Username    string `form:"username"`
	Email       string `form:"email"`
	Description string `form:"description"`
}

// FieldFailure ties a failed check to the form field it concerns
type FieldFailure struct {
	Field   string
	Message string
}

// ValidationResult collects every failed check in evaluation order
type ValidationResult struct {
	Failures []FieldFailure
}

// Valid reports whether all checks passed.
func (r *ValidationResult) Valid() bool {
	return len(r.Failures) == 0
}

// Messages returns the failure messages in evaluation order.
func (r *ValidationResult) Messages() []string {
	messages := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		messages = append(messages, f.Message)
	}
	return messages
}

func (r *ValidationResult) fail(field, message string) {
	r.Failures = append(r.Failures, FieldFailure{Field: field, Message: message})
}

// Validate runs the four independent field checks. An empty email only reports
// MsgEmailRequired; the format check runs on non-empty addresses.
func (s *Submission) Validate() *ValidationResult {
	result := &ValidationResult{}

	if s.Username == "" {
		result.fail(FieldUsername, MsgUsernameRequired)
	}

	switch validators.ValidateEmail(s.Email).Reason {
	case validators.EmailEmpty:
		result.fail(FieldEmail, MsgEmailRequired)
	case validators.EmailMalformed:
		result.fail(FieldEmail, MsgEmailInvalid)
	}

	if s.Description == "" {
		result.fail(FieldDescription, MsgDescriptionRequired)
	}

	return result
}

// TemplateData returns the substitutions used to render the confirmation mail.
func (s *Submission) TemplateData() map[string]any {
	return map[string]any{
		FieldUsername:    s.Username,
		FieldDescription: s.Description,
	}
}
