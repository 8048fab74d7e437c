// Package services – submission validation
//
// This file implements the pure validation step applied to every contact form
// submission before anything is persisted or sent. It has no side effects and
// no dependencies beyond the regexp package.
package services

import (
	"regexp"
	"strings"
)

// emailRE is a syntactic sanity check only: one or more characters that are
// neither whitespace nor '@', an '@', a domain part containing at least one
// dot. It rejects obviously malformed addresses but does not attempt full
// RFC 5322 validation or deliverability checks.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmissionInput is a candidate contact form submission prior to validation.
// Name, Email, Phone and Service are independently mandatory; Message is
// optional free text.
type SubmissionInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ValidateSubmission checks a candidate submission and returns nil when it is
// acceptable for persistence.
//
// It returns ErrMissingFields when any of name, email, phone, or service is
// empty after trimming whitespace, and ErrInvalidEmail when the email does
// not match the validation pattern. There is no partial acceptance.
// Missing fields are reported before email syntax, matching the order the
// checks are applied.
func ValidateSubmission(in SubmissionInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Service) == "" {
		return ErrMissingFields
	}
	if !emailRE.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}
