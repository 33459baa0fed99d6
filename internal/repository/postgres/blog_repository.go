package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type blogRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBlogRepository(db *DB) repository.BlogRepository {
	return &blogRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *blogRepository) GetPublishedByCity(ctx context.Context, cityID int64) ([]domain.Blog, error) {
	query := `
		SELECT
			b.id, b.title, b.thumbnail, c.name AS city_name, b.content,
			b.is_published, b.created_at,
			COALESCE(array_agg(bi.image) FILTER (WHERE bi.image IS NOT NULL), '{}') AS images
		FROM blogs b
		JOIN cities c ON c.id = b.city_id
		LEFT JOIN blog_images bi ON bi.blog_id = b.id
		WHERE b.city_id = $1 AND b.is_published = true
		GROUP BY b.id, c.name
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, cityID)
	if err != nil {
		r.logger.Error("Failed to get blogs by city", zap.Int64("city_id", cityID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Thumbnail, &b.CityName, &b.Content,
			&b.IsPublished, &b.CreatedAt, pq.Array(&b.Images),
		); err != nil {
			r.logger.Error("Failed to scan blog row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Blog rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return blogs, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	query := `
		SELECT
			b.id, b.title, b.thumbnail, COALESCE(c.name, '') AS city_name, b.content,
			b.is_published, b.created_at,
			COALESCE(array_agg(bi.image) FILTER (WHERE bi.image IS NOT NULL), '{}') AS images
		FROM blogs b
		LEFT JOIN cities c ON c.id = b.city_id
		LEFT JOIN blog_images bi ON bi.blog_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, c.name
	`

	var b domain.Blog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Thumbnail, &b.CityName, &b.Content,
		&b.IsPublished, &b.CreatedAt, pq.Array(&b.Images),
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBlogNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get blog by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &b, nil
}
