package user

import (
	"fmt"
	"strings"
)

const MinPasswordLen = 6

// Validator checks form input before it goes anywhere near the network.
// A failed check means the request is never dispatched.
type Validator interface {
	ValidateCreate(name, email, password string) error
	ValidateUpdate(name, email string) error
}

type FormValidator struct{}

func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// ValidateCreate validates input for a new account: all three fields are
// required and the password has a minimum length.
func (v *FormValidator) ValidateCreate(name, email, password string) error {
	if err := v.ValidateUpdate(name, email); err != nil {
		return err
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

// ValidateUpdate validates the fields an edit may change: name and email.
func (v *FormValidator) ValidateUpdate(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}

	if err := validateEmail(email); err != nil {
		return err
	}

	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email must look like name@domain")
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.Contains(domain, "@") {
		return fmt.Errorf("email must look like name@domain")
	}

	if strings.ContainsAny(email, " \t") {
		return fmt.Errorf("email must not contain spaces")
	}

	return nil
}
