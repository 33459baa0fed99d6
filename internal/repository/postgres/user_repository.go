package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, password_hash, profile_image, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.Phone, user.PasswordHash, user.ProfileImage,
		user.IsActive, user.DateJoined,
	)
	if err != nil {
		r.logger.Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, password_hash, profile_image, is_active, date_joined
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, password_hash, profile_image, is_active, date_joined
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		r.logger.Error("Failed to check user existence", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, profile_image = $5, is_active = $6
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Phone,
		user.ProfileImage, user.IsActive,
	)
	if err != nil {
		r.logger.Error("Failed to update user", zap.String("id", user.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		r.logger.Error("Failed to update password", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *userRepository) CreateResetCode(ctx context.Context, code *domain.PasswordResetCode) error {
	query := `
		INSERT INTO password_reset_codes (user_id, code, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, code.UserID, code.Code, code.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create reset code", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *userRepository) GetLatestResetCode(ctx context.Context, userID uuid.UUID) (*domain.PasswordResetCode, error) {
	query := `
		SELECT id, user_id, code, created_at
		FROM password_reset_codes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code domain.PasswordResetCode
	err := r.db.GetContext(ctx, &code, query, userID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrInvalidResetCode
	}
	if err != nil {
		r.logger.Error("Failed to get reset code", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &code, nil
}

func (r *userRepository) DeleteResetCodes(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM password_reset_codes WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete reset codes", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
