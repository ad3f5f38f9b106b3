// Package users implements the user directory rules layered on top of the
// generic catalog store: field validation, uniqueness checks, and the
// protected main-admin record.
package users

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
)

var (
	// ErrProtected guards the main admin from delete and deactivate.
	ErrProtected = errors.New("the main administrator account is protected")

	// ErrNotConfirmed is returned when a delete arrives without the
	// caller-supplied confirmation flag.
	ErrNotConfirmed = errors.New("deletion not confirmed")
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
)

// ValidationError carries per-field messages back to the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Validate checks candidate against format rules and against every OTHER
// user in the directory. When editing (isNew=false) the candidate's own
// record is excluded from uniqueness checks, so saving a user unchanged
// never reports a conflict. Returns nil when the candidate is clean.
func Validate(candidate *model.User, existing []*model.User, isNew bool) *ValidationError {
	fields := make(map[string]string)

	if strings.TrimSpace(candidate.FirstName) == "" {
		fields["first_name"] = "first name is required"
	}
	if strings.TrimSpace(candidate.LastName) == "" {
		fields["last_name"] = "last name is required"
	}
	switch {
	case strings.TrimSpace(candidate.Username) == "":
		fields["username"] = "username is required"
	case !usernameRe.MatchString(candidate.Username):
		fields["username"] = "username may only contain letters, digits and underscores"
	}
	switch {
	case strings.TrimSpace(candidate.Email) == "":
		fields["email"] = "email is required"
	case !emailRe.MatchString(candidate.Email):
		fields["email"] = "email address is not valid"
	}
	if strings.TrimSpace(candidate.Phone) == "" {
		fields["phone"] = "phone is required"
	}

	for _, u := range existing {
		if !isNew && u.Key() == candidate.Key() {
			continue
		}
		if _, taken := fields["username"]; !taken && strings.EqualFold(u.Username, candidate.Username) {
			fields["username"] = "username is already taken"
		}
		if _, taken := fields["email"]; !taken && strings.EqualFold(u.Email, candidate.Email) {
			fields["email"] = "email is already registered"
		}
		if _, taken := fields["phone"]; !taken && u.Phone == candidate.Phone {
			fields["phone"] = "phone number is already registered"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Delete removes the user with the given id. The main admin can never be
// deleted, for any directory state; everyone else additionally requires the
// confirmation flag the UI collects before destructive actions.
func Delete(users []*model.User, id int64, confirmed bool) ([]*model.User, error) {
	if id == model.MainAdminID {
		return users, ErrProtected
	}
	if !confirmed {
		return users, ErrNotConfirmed
	}
	return catalog.Remove(users, id), nil
}

// ToggleStatus flips active↔inactive on a copy of the matching user and
// returns it. The main admin cannot be deactivated.
func ToggleStatus(users []*model.User, id int64) (*model.User, error) {
	if id == model.MainAdminID {
		return nil, ErrProtected
	}
	u, ok := catalog.FindByID(users, id)
	if !ok {
		return nil, catalog.ErrNotFound
	}
	updated := u.Clone()
	if updated.Status == model.StatusActive {
		updated.Status = model.StatusInactive
	} else {
		updated.Status = model.StatusActive
	}
	return updated, nil
}

// NextID allocates max(existing ids)+1. Id 1 is reserved for the main admin,
// so an otherwise-empty directory starts customers and staff at 2.
func NextID(users []*model.User) int64 {
	id := catalog.NextID(users)
	if id < 2 {
		return 2
	}
	return id
}
