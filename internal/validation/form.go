package validation

import (
	"regexp"
	"sort"
	"strings"
)

// EmailPattern простая проверка формата email: что-то@что-то.что-то
var EmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 4
)

// Field names used as keys of FieldErrors
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldEmail           = "email"
	FieldConfirmPassword = "confirmPassword"
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

// Error joins messages in field order so the output is stable.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

// err returns nil for an empty set so callers can return it directly
func (e FieldErrors) err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateLogin проверяет поля формы входа
func ValidateLogin(username, password string) error {
	errs := FieldErrors{}
	validateCredentials(errs, username, password)
	return errs.err()
}

// ValidateRegistration проверяет поля формы регистрации
func ValidateRegistration(username, password, confirmPassword, email string) error {
	errs := FieldErrors{}
	validateCredentials(errs, username, password)

	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !EmailPattern.MatchString(email) {
		errs[FieldEmail] = "Email is invalid"
	}

	if password != confirmPassword {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	return errs.err()
}

func validateCredentials(errs FieldErrors, username, password string) {
	if strings.TrimSpace(username) == "" {
		errs[FieldUsername] = "Username is required"
	} else if len(username) < MinUsernameLen {
		errs[FieldUsername] = "Username must be at least 3 characters"
	}

	if strings.TrimSpace(password) == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < MinPasswordLen {
		errs[FieldPassword] = "Password must be at least 4 characters"
	}
}
