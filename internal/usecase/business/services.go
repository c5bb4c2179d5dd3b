package business

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// ======================================================
// INPUT
// ======================================================

// ServicePatch carries the fields to change; nil means keep.
type ServicePatch struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	IsActive    *bool
}

func (p ServicePatch) apply(s *models.Service) {
	if p.Name != nil {
		s.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		if d := strings.TrimSpace(*p.Description); d != "" {
			s.Description = &d
		} else {
			s.Description = nil
		}
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}

func validateService(s *models.Service) map[string]string {
	fields := map[string]string{}
	if s.Name == "" {
		fields["name"] = "El nombre es obligatorio"
	}
	if s.Price < 0 {
		fields["price"] = "El precio no puede ser negativo"
	}
	if s.Duration < 1 {
		fields["duration"] = "La duración debe ser de al menos 1 minuto"
	}
	return fields
}

func toServiceDTO(s models.Service) dto.ServiceDTO {
	return dto.NewServiceDTO(s, domain.FormatDuration(s.Duration))
}

// ======================================================
// LIST
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	sess session.Session,
	businessID uuid.UUID,
) ([]dto.ServiceDTO, error) {

	if _, err := uc.repo.GetForOwner(ctx, businessID, sess.UserID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListServices(ctx, businessID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, toServiceDTO(s))
	}
	return out, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo domain.Repository
	writeEffects
}

func NewCreateService(
	repo domain.Repository,
	cache Invalidator,
	audit audit.Recorder,
	log logrus.FieldLogger,
) *CreateService {
	return &CreateService{
		repo:         repo,
		writeEffects: writeEffects{cache: cache, audit: audit, log: log},
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	sess session.Session,
	businessID uuid.UUID,
	in ServicePatch,
) (*dto.ServiceDTO, error) {

	if _, err := uc.repo.GetForOwner(ctx, businessID, sess.UserID); err != nil {
		return nil, err
	}

	s := &models.Service{BusinessID: businessID, IsActive: true}
	in.apply(s)
	if fields := validateService(s); len(fields) > 0 {
		return nil, httperr.ValidationError{Fields: fields}
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.after(ctx, audit.Event{
		BusinessID: &businessID,
		UserID:     &sess.UserID,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &s.ID,
	})

	out := toServiceDTO(*s)
	return &out, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateService struct {
	repo domain.Repository
	writeEffects
}

func NewUpdateService(
	repo domain.Repository,
	cache Invalidator,
	audit audit.Recorder,
	log logrus.FieldLogger,
) *UpdateService {
	return &UpdateService{
		repo:         repo,
		writeEffects: writeEffects{cache: cache, audit: audit, log: log},
	}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	sess session.Session,
	serviceID uuid.UUID,
	patch ServicePatch,
) (*dto.ServiceDTO, error) {

	s, err := uc.repo.GetServiceForOwner(ctx, serviceID, sess.UserID)
	if err != nil {
		return nil, err
	}

	patch.apply(s)
	if fields := validateService(s); len(fields) > 0 {
		return nil, httperr.ValidationError{Fields: fields}
	}

	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	uc.after(ctx, audit.Event{
		BusinessID: &s.BusinessID,
		UserID:     &sess.UserID,
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   &s.ID,
	})

	out := toServiceDTO(*s)
	return &out, nil
}
