package validators

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// EmailReason enumerates why an address was rejected
type EmailReason int

const (
	// EmailOK means the address passed every check
	EmailOK EmailReason = iota
	// EmailEmpty means no address was given
	EmailEmpty
	// EmailMalformed means the address does not follow the email address grammar
	EmailMalformed
)

// String returns a lower-case name for the reason.
func (r EmailReason) String() string {
	switch r {
	case EmailOK:
		return "ok"
	case EmailEmpty:
		return "empty"
	case EmailMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// EmailResult is the outcome of ValidateEmail
type EmailResult struct {
	Address string
	Reason  EmailReason
}

// Valid reports whether the address was accepted.
func (r EmailResult) Valid() bool {
	return r.Reason == EmailOK
}

var (
	emailValidate     *validator.Validate
	emailValidateOnce sync.Once
)

func sharedValidator() *validator.Validate {
	emailValidateOnce.Do(func() {
		emailValidate = validator.New()
	})
	return emailValidate
}

// ValidateEmail checks address against the email address grammar. Surrounding
// whitespace is not trimmed: " jane@example.com" is malformed.
func ValidateEmail(address string) EmailResult {
	if address == "" {
		return EmailResult{Address: address, Reason: EmailEmpty}
	}

	if strings.TrimSpace(address) != address {
		return EmailResult{Address: address, Reason: EmailMalformed}
	}

	if err := sharedValidator().Var(address, "email"); err != nil {
		return EmailResult{Address: address, Reason: EmailMalformed}
	}

	return EmailResult{Address: address, Reason: EmailOK}
}
