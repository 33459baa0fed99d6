package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImage - заглушка для пользователей без аватара
const DefaultProfileImage = "https://res.cloudinary.com/the-proton-guy/image/upload/v1660906962/6215195_0_pjwqfq.webp"

// ResetCodeTTL - срок действия кода восстановления пароля
const ResetCodeTTL = 10 * time.Minute

// User - аккаунт пользователя мобильного приложения
type User struct {
	ID           uuid.UUID `json:"-" db:"id"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ProfileImage string    `json:"profile_image" db:"profile_image"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	DateJoined   time.Time `json:"date_joined" db:"date_joined"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ProfileImageURL возвращает аватар пользователя или заглушку
func (u User) ProfileImageURL() string {
	if u.ProfileImage != "" {
		return u.ProfileImage
	}
	return DefaultProfileImage
}

// PasswordResetCode - одноразовый код восстановления пароля
type PasswordResetCode struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}

// IsValid проверяет, не истек ли код
func (c PasswordResetCode) IsValid(now time.Time) bool {
	return !c.CreatedAt.Before(now.Add(-ResetCodeTTL))
}
