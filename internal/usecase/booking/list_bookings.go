package booking

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/links"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "2/1/2006"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	sess session.Session,
) ([]dto.BookingListDTO, error) {

	rows, err := uc.repo.ListForOwner(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, ToListDTO(b))
	}
	return out, nil
}

// ToListDTO renders one booking row: badge, es-ES date and the WhatsApp
// reminder link for its customer.
func ToListDTO(b models.Booking) dto.BookingListDTO {
	badge := domain.BadgeFor(b.Status)
	dateLabel := b.BookingDate.Format(displayDate)

	return dto.BookingListDTO{
		ID:          b.ID,
		BookingDate: b.BookingDate.Format(isoDate),
		DateLabel:   dateLabel,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(domain.Normalize(b.Status)),
		Badge:       dto.BadgeDTO{Label: badge.Label, Variant: badge.Variant},
		Notes:       dto.StringOrEmpty(b.Notes),
		Customer: dto.BookingCustomerDTO{
			ID:    b.Customer.ID,
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		Service: dto.BookingServiceDTO{
			ID:    b.Service.ID,
			Name:  b.Service.Name,
			Price: b.Service.Price,
		},
		Business: dto.BookingBusinessDTO{
			ID:   b.Business.ID,
			Name: b.Business.Name,
		},
		ReminderURL: links.WhatsApp(
			b.Customer.Phone,
			links.ReminderMessage(b.Customer.Name, dateLabel, b.StartTime),
		),
	}
}
