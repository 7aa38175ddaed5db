// Package contact turns the landing page contact form into a message for
// the agency: either a prefilled mail in the user's mail client or a POST
// to a webhook.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

var (
	ErrIncomplete = errors.New("incomplete contact form")
	ErrCanceled   = errors.New("contact form canceled")
)

const subjectPrefix = "ODAS Contact — "

// Status lines shown to the user when a submission does not go through.
const (
	StatusIncomplete = "Please complete all fields."
	StatusFailed     = "Sorry, your message could not be sent."
)

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrIncomplete
	}
	return nil
}

func (s Submission) Subject() string {
	return subjectPrefix + s.Name
}

// Body is the plain-text mail body.
func (s Submission) Body() string {
	return strings.Join([]string{
		fmt.Sprintf("From: %s (%s)", s.Name, s.Email),
		"",
		s.Message,
	}, "\n")
}

// Relay delivers a validated submission somewhere.
type Relay interface {
	Send(ctx context.Context, s Submission) error
	// Acknowledgement is the status line shown after a successful Send.
	Acknowledgement() string
}

type Form struct {
	relay Relay
}

func NewForm(relay Relay) *Form {
	return &Form{relay: relay}
}

// Submit normalizes and validates s, hands it to the relay and returns the
// status line for the user.
func (f *Form) Submit(ctx context.Context, s Submission) (string, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return StatusIncomplete, err
	}

	if err := f.relay.Send(ctx, s); err != nil {
		log.Printf("contact: relay failed: %v", err)
		return StatusFailed, fmt.Errorf("send contact form: %w", err)
	}

	log.Printf("contact: submission from %s relayed", s.Email)
	return f.relay.Acknowledgement(), nil
}
