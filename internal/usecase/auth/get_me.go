package auth

import (
	"context"

	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

type GetMe struct {
	repo ProfileRepository
}

func NewGetMe(repo ProfileRepository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, sess session.Session) (*dto.ProfileDTO, error) {
	p, err := uc.repo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	out := dto.NewProfileDTO(p)
	return &out, nil
}
