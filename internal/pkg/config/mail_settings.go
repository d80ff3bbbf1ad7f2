package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// MailSettings holds the parameters of the outgoing mail transport
type MailSettings struct {
	Transport     string        `mapstructure:"transport" validate:"required,oneof=smtp log"`
	Server        string        `mapstructure:"server"`
	Port          int           `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	UseTLS        bool          `mapstructure:"use_tls"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	DefaultSender string        `mapstructure:"default_sender" validate:"omitempty,email"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}

	if s.Transport == MailTransportSMTP {
		if s.Server == "" {
			return fmt.Errorf("mail server is required for smtp transport")
		}
		if s.Port == 0 {
			return fmt.Errorf("mail port is required for smtp transport")
		}
		if s.DefaultSender == "" {
			return fmt.Errorf("default sender is required for smtp transport")
		}
		if s.Username != "" && s.Password == "" {
			return fmt.Errorf("mail password is required when a username is set")
		}
	}

	return nil
}
