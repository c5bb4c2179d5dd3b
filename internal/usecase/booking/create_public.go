package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicInput struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublic records a booking request from the public business page.
// It does not check opening hours or overlapping bookings.
type CreatePublic struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreatePublic(
	repo domain.Repository,
	audit audit.Recorder,
) *CreatePublic {
	return &CreatePublic{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublic) Execute(
	ctx context.Context,
	in CreatePublicInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Customer fields
	// --------------------------------------------------
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	email := strings.ToLower(strings.TrimSpace(in.CustomerEmail))

	if name == "" || email == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_customer_data")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	// --------------------------------------------------
	// 2. Date / time
	// --------------------------------------------------
	start, err := time.Parse("2006-01-02 15:04", in.Date+" "+in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Service
	// --------------------------------------------------
	svc, err := uc.repo.GetActiveService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(svc.Duration) * time.Minute)
	if end.YearDay() != start.YearDay() || end.Year() != start.Year() {
		return nil, httperr.ErrBusiness("ends_after_midnight")
	}

	// --------------------------------------------------
	// 4. Customer (get or create)
	// --------------------------------------------------
	customer, err := uc.repo.GetOrCreateCustomer(ctx, name, email, phone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Booking
	// --------------------------------------------------
	b := &models.Booking{
		BusinessID:  in.BusinessID,
		ServiceID:   svc.ID,
		CustomerID:  customer.ID,
		BookingDate: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:   start.Format("15:04"),
		EndTime:     end.Format("15:04"),
		Status:      string(domain.InitialStatus()),
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		b.Notes = &notes
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: &in.BusinessID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	b.Service = *svc
	b.Customer = *customer
	return b, nil
}
