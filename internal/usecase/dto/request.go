package dto

// FeedRequest - запрос на построение фида мест по интересам
type FeedRequest struct {
	CityName  string   `json:"city_name" validate:"required,min=2"`
	Interests []string `json:"interests" validate:"required,min=1,max=10,dive,min=2"`
	Randomize bool     `json:"randomize"`
}

// RegisterRequest - запрос на регистрацию пользователя
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Password  string `json:"password" validate:"required,min=5"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest - запрос на обновление профиля
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}

// PasswordResetRequest - запрос на отправку кода сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyResetCodeRequest - запрос на проверку кода сброса
type VerifyResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ResetPasswordRequest - запрос на установку нового пароля по коду
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=5"`
}

// GuideMessageRequest - сообщение пользователя AI-гиду
type GuideMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}
