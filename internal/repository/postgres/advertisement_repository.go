package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type advertisementRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAdvertisementRepository(db *DB) repository.AdvertisementRepository {
	return &advertisementRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *advertisementRepository) GetActive(ctx context.Context, now time.Time) ([]domain.Advertisement, error) {
	query := `
		SELECT id, title, subtitle, image, button_text, button_url,
		       start_date, end_date, is_active, priority, created_at
		FROM advertisements
		WHERE is_active = true
		  AND start_date <= $1
		  AND end_date > $1
		ORDER BY priority DESC
	`

	var ads []domain.Advertisement
	if err := r.db.SelectContext(ctx, &ads, query, now); err != nil {
		r.logger.Error("Failed to get active advertisements", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return ads, nil
}
