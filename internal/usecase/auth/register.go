package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
	"github.com/BruksfildServices01/agenda-hub/internal/validators"
)

const MinPasswordLength = 6

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo   ProfileRepository
	tokens *session.Tokens
	audit  audit.Recorder
}

func NewRegister(
	repo ProfileRepository,
	tokens *session.Tokens,
	audit audit.Recorder,
) *Register {
	return &Register{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*dto.AuthDTO, error) {

	p, err := newProfile(in, false)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "profile_registered",
		Entity:   "profile",
		EntityID: &p.ID,
	})

	return issue(uc.tokens, p)
}

// newProfile validates the sign-up fields and hashes the password.
func newProfile(in RegisterInput, isAdmin bool) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, httperr.ErrBusiness("weak_password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		IsAdmin:      isAdmin,
	}, nil
}

func issue(tokens *session.Tokens, p *models.Profile) (*dto.AuthDTO, error) {
	token, sess, err := tokens.Issue(p)
	if err != nil {
		return nil, err
	}
	return &dto.AuthDTO{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		Profile:   dto.NewProfileDTO(p),
	}, nil
}
