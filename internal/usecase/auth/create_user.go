package auth

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// CreateUser is the admin-only registration form.
type CreateUser struct {
	repo  ProfileRepository
	audit audit.Recorder
}

func NewCreateUser(repo ProfileRepository, audit audit.Recorder) *CreateUser {
	return &CreateUser{repo: repo, audit: audit}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	sess session.Session,
	in RegisterInput,
	isAdmin bool,
) (*dto.ProfileDTO, error) {

	if !sess.IsAdmin {
		return nil, httperr.ErrBusiness("forbidden")
	}

	p, err := newProfile(in, isAdmin)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &sess.UserID,
		Action:   "profile_created_by_admin",
		Entity:   "profile",
		EntityID: &p.ID,
		Metadata: map[string]any{"is_admin": isAdmin},
	})

	out := dto.NewProfileDTO(p)
	return &out, nil
}

// EnsureAdmin creates the bootstrap admin on startup when it is missing.
// An existing profile with that email is left as is.
func EnsureAdmin(
	ctx context.Context,
	repo ProfileRepository,
	email string,
	password string,
	log logrus.FieldLogger,
) error {

	if email == "" || password == "" {
		return nil
	}

	p, err := newProfile(RegisterInput{Email: email, Password: password, FullName: "Admin"}, true)
	if err != nil {
		return err
	}

	err = repo.Create(ctx, p)
	switch {
	case err == nil:
		log.WithField("email", p.Email).Info("bootstrap admin created")
		return nil
	case httperr.IsBusiness(err, "email_already_exists"):
		return nil
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}
}
