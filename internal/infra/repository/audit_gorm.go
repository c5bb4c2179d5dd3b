package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	f audit.Filter,
) ([]models.AuditLog, int64, error) {

	f = f.Normalize()
	db := r.db.WithContext(ctx)

	// --------------------------------------------------
	// Base query (always scoped to the owner)
	// --------------------------------------------------
	q := db.
		Model(&models.AuditLog{}).
		Where("user_id = ? OR business_id IN (?)", ownerID, ownedBusinesses(db, ownerID))

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}

	return logs, total, nil
}

// Compile-time check
var _ audit.Reader = (*AuditGormRepository)(nil)
