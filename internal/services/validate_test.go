package services

import (
	"errors"
	"testing"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+254 700 000000",
		Service: "auto insurance",
		Message: "Please call me back.",
	}
}

func TestValidateSubmission_OK(t *testing.T) {
	if err := ValidateSubmission(validInput()); err != nil {
		t.Fatalf("ValidateSubmission: %v", err)
	}
}

func TestValidateSubmission_MessageOptional(t *testing.T) {
	in := validInput()
	in.Message = ""
	if err := ValidateSubmission(in); err != nil {
		t.Fatalf("empty message should be accepted: %v", err)
	}
}

func TestValidateSubmission_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmissionInput)
	}{
		{"no name", func(in *SubmissionInput) { in.Name = "" }},
		{"no email", func(in *SubmissionInput) { in.Email = "" }},
		{"no phone", func(in *SubmissionInput) { in.Phone = "" }},
		{"no service", func(in *SubmissionInput) { in.Service = "" }},
		{"whitespace name", func(in *SubmissionInput) { in.Name = "   " }},
		{"whitespace service", func(in *SubmissionInput) { in.Service = "\t\n" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if err := ValidateSubmission(in); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	bad := []string{
		"plainaddress",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"two words@example.com",
		"jane@exa mple.com",
		"jane@@example.com",
	}
	for _, email := range bad {
		in := validInput()
		in.Email = email
		if err := ValidateSubmission(in); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestValidateSubmission_MissingBeforeInvalidEmail(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Email = "not-an-email"
	if err := ValidateSubmission(in); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("missing field should be reported first, got %v", err)
	}
}
