package customer

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/customer"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/links"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// ListCustomers walks owner -> businesses -> bookings -> customers so an
// owner only ever sees people who booked with one of their businesses.
type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(
	ctx context.Context,
	sess session.Session,
	query string,
) (*dto.CustomerListDTO, error) {

	out := &dto.CustomerListDTO{
		Data:  []dto.CustomerListItemDTO{},
		Query: query,
	}

	businessIDs, err := uc.repo.BusinessIDsForOwner(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if len(businessIDs) == 0 {
		return out, nil
	}

	customerIDs, err := uc.repo.CustomerIDsForBusinesses(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	if len(customerIDs) == 0 {
		return out, nil
	}

	all, err := uc.repo.ListByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	out.Total = len(all)

	for _, c := range domain.Filter(all, query) {
		out.Data = append(out.Data, dto.CustomerListItemDTO{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			CreatedAt:  c.CreatedAt,
			MessageURL: links.WhatsApp(c.Phone, links.RebookMessage(c.Name)),
			CallURL:    links.Tel(c.Phone),
		})
	}
	out.Shown = len(out.Data)

	return out, nil
}
