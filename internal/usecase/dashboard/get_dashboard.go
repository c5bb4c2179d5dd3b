package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
	"github.com/BruksfildServices01/agenda-hub/internal/timezone"
)

type BusinessLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Business, error)
}

type BookingCounter interface {
	CountForBusinessesOnDate(ctx context.Context, businessIDs []uuid.UUID, date time.Time) (int64, error)
}

type CustomerIDLister interface {
	CustomerIDsForBusinesses(ctx context.Context, businessIDs []uuid.UUID) ([]uuid.UUID, error)
}

// AdminLookup reads the stored admin flag; the token claim may be stale.
type AdminLookup interface {
	IsAdmin(ctx context.Context, profileID uuid.UUID) (bool, error)
}

type GetDashboard struct {
	businesses BusinessLister
	bookings   BookingCounter
	customers  CustomerIDLister
	admins     AdminLookup
	now        func() time.Time
}

// NewGetDashboard accepts a nil admins, in which case the session flag is used.
func NewGetDashboard(
	businesses BusinessLister,
	bookings BookingCounter,
	customers CustomerIDLister,
	admins AdminLookup,
) *GetDashboard {
	return &GetDashboard{
		businesses: businesses,
		bookings:   bookings,
		customers:  customers,
		admins:     admins,
		now:        time.Now,
	}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	sess session.Session,
) (*dto.DashboardDTO, error) {

	businesses, err := uc.businesses.ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	isAdmin := sess.IsAdmin
	if uc.admins != nil {
		if isAdmin, err = uc.admins.IsAdmin(ctx, sess.UserID); err != nil {
			return nil, err
		}
	}

	out := &dto.DashboardDTO{
		GreetingName: sess.DisplayName(),
		IsAdmin:      isAdmin,
		Businesses:   make([]dto.BusinessSummaryDTO, 0, len(businesses)),
		Shortcuts:    Shortcuts(isAdmin),
	}

	ids := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
		out.Businesses = append(out.Businesses, dto.BusinessSummaryDTO{
			ID:          b.ID,
			Name:        b.Name,
			Description: dto.StringOrEmpty(b.Description),
			Email:       b.Email,
			Phone:       b.Phone,
			Address:     b.Address,
			LogoURL:     b.LogoURL,
			CreatedAt:   b.CreatedAt,
		})
	}
	out.Stats.Businesses = len(businesses)

	if len(ids) == 0 {
		return out, nil
	}

	today, err := uc.bookingsToday(ctx, businesses)
	if err != nil {
		return nil, err
	}
	out.Stats.BookingsToday = today

	customerIDs, err := uc.customers.CustomerIDsForBusinesses(ctx, ids)
	if err != nil {
		return nil, err
	}
	out.Stats.Customers = len(customerIDs)

	return out, nil
}

// bookingsToday counts each business against its own local date.
func (uc *GetDashboard) bookingsToday(
	ctx context.Context,
	businesses []models.Business,
) (int64, error) {

	now := uc.now()
	byDate := map[time.Time][]uuid.UUID{}
	for _, b := range businesses {
		d := timezone.DateIn(now, b.Timezone)
		byDate[d] = append(byDate[d], b.ID)
	}

	var total int64
	for d, ids := range byDate {
		n, err := uc.bookings.CountForBusinessesOnDate(ctx, ids, d)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Shortcuts are the dashboard's navigation buttons.
func Shortcuts(isAdmin bool) []dto.ShortcutDTO {
	out := []dto.ShortcutDTO{
		{Key: "bookings", Label: "Ver Reservas", Path: "/bookings"},
		{Key: "customers", Label: "Gestionar Clientes", Path: "/customers"},
		{Key: "services", Label: "Mis Servicios", Path: "/services"},
		{Key: "profile", Label: "Mi Perfil", Path: "/profile"},
		{Key: "new_business", Label: "Agregar Negocio", Path: "/business/new"},
	}
	if isAdmin {
		out = append(out, dto.ShortcutDTO{Key: "admin_register", Label: "Registrar Usuario", Path: "/admin/register"})
	}
	return out
}
