package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

type Login struct {
	repo   ProfileRepository
	tokens *session.Tokens
}

func NewLogin(repo ProfileRepository, tokens *session.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute answers invalid_credentials for both an unknown email and a
// wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*dto.AuthDTO, error) {

	p, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if httperr.IsBusiness(err, "profile_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return issue(uc.tokens, p)
}
