package directory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/links"
	"github.com/BruksfildServices01/agenda-hub/internal/metrics"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// CardServices is how many services a directory card lists inline.
const CardServices = 3

// Cache stores directory payloads per generation. Version is read once
// per request so a write racing an Invalidate never fills the new
// generation with rows read before it.
type Cache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64, query string) ([]byte, bool, error)
	Set(ctx context.Context, version int64, query string, payload []byte) error
	Invalidate(ctx context.Context) error
}

type Reader interface {
	ListDirectory(ctx context.Context, query string) ([]models.Business, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*models.Business, error)
}

// ======================================================
// LIST
// ======================================================

type ListDirectory struct {
	repo  Reader
	cache Cache
	log   logrus.FieldLogger
}

// NewListDirectory accepts a nil cache.
func NewListDirectory(repo Reader, cache Cache, log logrus.FieldLogger) *ListDirectory {
	return &ListDirectory{repo: repo, cache: cache, log: log}
}

// Execute returns every business matching query. Cache failures are
// logged and the store is queried directly.
func (uc *ListDirectory) Execute(
	ctx context.Context,
	query string,
) (*dto.DirectoryDTO, error) {

	term := strings.TrimSpace(query)

	version, cacheable := uc.cacheVersion(ctx)
	if cacheable {
		if cached, ok := uc.fromCache(ctx, version, term); ok {
			return cached, nil
		}
	}

	rows, err := uc.repo.ListDirectory(ctx, term)
	if err != nil {
		return nil, err
	}

	out := &dto.DirectoryDTO{
		Data:  make([]dto.DirectoryCardDTO, 0, len(rows)),
		Total: len(rows),
		Query: term,
	}
	for _, b := range rows {
		out.Data = append(out.Data, ToCard(b))
	}

	if cacheable {
		uc.toCache(ctx, version, term, out)
	}
	return out, nil
}

func (uc *ListDirectory) cacheVersion(ctx context.Context) (int64, bool) {
	if uc.cache == nil {
		return 0, false
	}

	v, err := uc.cache.Version(ctx)
	if err != nil {
		metrics.DirectoryCacheLookup("error")
		uc.log.WithError(err).Warn("directory cache read failed")
		return 0, false
	}
	return v, true
}

func (uc *ListDirectory) fromCache(ctx context.Context, version int64, term string) (*dto.DirectoryDTO, bool) {
	raw, hit, err := uc.cache.Get(ctx, version, term)
	if err != nil {
		metrics.DirectoryCacheLookup("error")
		uc.log.WithError(err).Warn("directory cache read failed")
		return nil, false
	}
	if !hit {
		metrics.DirectoryCacheLookup("miss")
		return nil, false
	}
	metrics.DirectoryCacheLookup("hit")

	var out dto.DirectoryDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		uc.log.WithError(err).Warn("directory cache entry unreadable")
		return nil, false
	}
	return &out, true
}

func (uc *ListDirectory) toCache(ctx context.Context, version int64, term string, out *dto.DirectoryDTO) {
	raw, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, version, term, raw); err != nil {
		uc.log.WithError(err).Warn("directory cache write failed")
	}
}

// ToCard shows the first CardServices services and counts the rest.
func ToCard(b models.Business) dto.DirectoryCardDTO {
	card := dto.DirectoryCardDTO{
		ID:          b.ID,
		Name:        b.Name,
		Description: dto.StringOrEmpty(b.Description),
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		LogoURL:     b.LogoURL,
		Services:    []dto.ServiceDTO{},
	}

	for i, s := range b.Services {
		if i == CardServices {
			card.MoreServices = len(b.Services) - CardServices
			break
		}
		card.Services = append(card.Services, dto.NewServiceDTO(s, domain.FormatDuration(s.Duration)))
	}
	return card
}

// ======================================================
// DETAIL
// ======================================================

type GetBusiness struct {
	repo Reader
}

func NewGetBusiness(repo Reader) *GetBusiness {
	return &GetBusiness{repo: repo}
}

func (uc *GetBusiness) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*dto.BusinessDetailDTO, error) {

	b, err := uc.repo.GetPublic(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.BusinessDetailDTO{
		ID:          b.ID,
		Name:        b.Name,
		Description: dto.StringOrEmpty(b.Description),
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		Timezone:    b.Timezone,
		LogoURL:     b.LogoURL,
		Hours:       dto.ScheduleRows(domain.ScheduleOrDefault(b.BusinessHours)),
		Services:    make([]dto.ServiceDTO, 0, len(b.Services)),
	}
	if b.Phone != "" {
		out.CallURL = links.Tel(b.Phone)
	}
	for _, s := range b.Services {
		out.Services = append(out.Services, dto.NewServiceDTO(s, domain.FormatDuration(s.Duration)))
	}
	return out, nil
}
