package mail

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Message is a rendered mail ready to be handed to a Transport
type Message struct {
	From    string `validate:"required,email"`
	To      string `validate:"required,email"`
	Subject string `validate:"required"`
	Text    string `validate:"required_without=HTML"`
	HTML    string `validate:"required_without=Text"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
