package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateRegister(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Username
	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	// Email
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	// Password
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidatePerformance enforces the required fields of a new performance
// record.
func ValidatePerformance(date, venue, conductor, ensembleName, instrument, subPart string, pieces []string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(date) == "" {
		errs.Add("date", "Date is required")
	} else if !dateRegex.MatchString(date) {
		errs.Add("date", "Date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(venue) == "" {
		errs.Add("venue", "Venue is required")
	}
	if strings.TrimSpace(conductor) == "" {
		errs.Add("conductor", "Conductor is required")
	}
	if strings.TrimSpace(ensembleName) == "" {
		errs.Add("ensemble_name", "Ensemble name is required")
	}
	if strings.TrimSpace(instrument) == "" {
		errs.Add("instrument", "Instrument is required")
	}
	if strings.TrimSpace(subPart) == "" {
		errs.Add("sub_part", "Sub part is required")
	}
	if len(pieces) == 0 {
		errs.Add("pieces", "At least one program piece is required")
	}

	return errs
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
