package member

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail checks that email is a bare address usable as a notification target.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidMember)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMember, err)
	}
	// Reject display-name forms such as "Name <a@b.c>".
	if addr.Address != email {
		return fmt.Errorf("%w: email must be a bare address", ErrInvalidMember)
	}
	return nil
}

// Validate checks the member's invariants.
func (m *Member) Validate() error {
	if m == nil {
		return ErrInvalidMember
	}
	if m.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidMember)
	}
	return ValidateEmail(m.Email)
}
