// Package contact validates contact form submissions and hands them to a
// delivery service.
package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Form fields
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var (
	// ErrNotConfigured is returned by senders with no delivery service.
	ErrNotConfigured = errors.New("contact delivery is not configured")
	// ErrDeliveryFailed is returned when the service rejects or drops a message.
	ErrDeliveryFailed = errors.New("message delivery failed")
)

// Form is a contact form submission.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Errors maps a field to its validation message.
type Errors map[string]string

// Validate checks required fields and the email shape. It returns an empty
// map when the form is valid.
func (f Form) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Email is invalid"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = "Message is required"
	}
	return errs
}

// Valid reports whether the form passes validation.
func (f Form) Valid() bool {
	return len(f.Validate()) == 0
}

// Sender delivers a validated form.
type Sender interface {
	Send(ctx context.Context, f Form) error
}

// NoopSender refuses every message.
type NoopSender struct{}

// Send always returns ErrNotConfigured.
func (NoopSender) Send(context.Context, Form) error {
	return ErrNotConfigured
}
