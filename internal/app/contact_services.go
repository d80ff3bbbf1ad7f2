package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/domain/contact"
	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"
)

// contactService implements the ContactService interface
type contactService struct {
	sender mail.Sender
	logger logger.Logger
}

// NewContactService creates a new contactService instance
func NewContactService(sender mail.Sender, logger logger.Logger) (contact.ContactService, error) {
	if sender == nil {
		return nil, fmt.Errorf("mail sender is required")
	}
	return &contactService{
		sender: sender,
		logger: logger,
	}, nil
}

// Submit validates the submission and sends the confirmation mail when it is valid.
// Delivery errors are returned as-is to the caller.
func (s *contactService) Submit(ctx context.Context, submission *contact.Submission) (*contact.ValidationResult, error) {
	result := submission.Validate()
	if !result.Valid() {
		s.logger.Info("Rejected contact submission with ", len(result.Failures), " failed checks")
		return result, nil
	}

	if err := s.sender.Send(ctx,
		submission.Email,
		contact.ConfirmationSubject,
		contact.ConfirmationTemplate,
		submission.TemplateData(),
	); err != nil {
		return result, err
	}

	s.logger.Info("Sent contact confirmation to ", submission.Email)
	return result, nil
}
