package dto

import (
	"time"

	"github.com/tourism-backend/internal/domain"
)

// UserProfile - публичное представление пользователя
type UserProfile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profile_image"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

// NewUserProfile - преобразование доменного пользователя в профиль
func NewUserProfile(u *domain.User) UserProfile {
	return UserProfile{
		ID:           u.ID.String(),
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImageURL(),
		IsActive:     u.IsActive,
		DateJoined:   u.DateJoined,
	}
}

// TokenPair - пара JWT токенов
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse - ответ на регистрацию и вход
type AuthResponse struct {
	User   UserProfile `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}

// CitiesResponse - список поддерживаемых городов
type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
	Total  int           `json:"total"`
}

// BlogListResponse - список опубликованных статей блога города
type BlogListResponse struct {
	Blogs []domain.Blog `json:"blogs"`
	Total int           `json:"total"`
}

// AdvertisementsResponse - активные рекламные баннеры
type AdvertisementsResponse struct {
	Advertisements []domain.Advertisement `json:"advertisements"`
	Total          int                    `json:"total"`
}

// ThreadsResponse - список диалогов пользователя с AI-гидом
type ThreadsResponse struct {
	Threads []domain.Thread `json:"threads"`
	Total   int             `json:"total"`
}

// ThreadMessagesResponse - история сообщений диалога
type ThreadMessagesResponse struct {
	ThreadID string                 `json:"thread_id"`
	Messages []domain.ThreadMessage `json:"messages"`
	Total    int                    `json:"total"`
}
