package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrUserNotFound is returned when no user matches the requested ID
var ErrUserNotFound = errors.New("user not found")

// User entity
type User struct {
	ID        string    `validate:"required,uuid4"`
	Username  string    `validate:"required,min=1,max=255"`
	Email     string    `validate:"required,email,max=255"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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

// UserQuery holds the paging options used when listing users
type UserQuery struct {
	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`
}

// NewUserQuery returns a query listing every user.
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
