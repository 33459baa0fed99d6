package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/domain/repository"
	"github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/usecase/dto"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AuthUseCase - use case аккаунтов: регистрация, вход, токены,
// восстановление пароля
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailRepo repository.MailRepository
	logger   *zap.Logger
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase - создание нового AuthUseCase
func NewAuthUseCase(
	userRepo repository.UserRepository,
	mailRepo repository.MailRepository,
	logger *zap.Logger,
	jwtCfg config.JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		mailRepo: mailRepo,
		logger:   logger,
		jwtCfg:   jwtCfg,
	}
}

// Register - регистрация нового пользователя
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !utils.IsValidEmail(email) {
		return nil, errors.ErrInvalidEmail
	}
	if len(req.Password) < 5 {
		return nil, errors.ErrWeakPassword
	}
	if req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone) {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid phone number",
		})
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := uc.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return &dto.AuthResponse{
		User:   dto.NewUserProfile(user),
		Tokens: *tokens,
	}, nil
}

// Login - вход по email и паролю
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, errors.ErrInvalidCredentials
	}

	tokens, err := uc.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:   dto.NewUserProfile(user),
		Tokens: *tokens,
	}, nil
}

// Refresh - обновление пары токенов по refresh токену
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	userID, err := uc.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	// Пользователь должен существовать и быть активным
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.ErrUnauthorized
	}

	return uc.issueTokens(user.ID)
}

// ValidateAccessToken - проверка access токена, возвращает ID пользователя
func (uc *AuthUseCase) ValidateAccessToken(token string) (uuid.UUID, error) {
	return uc.parseToken(token, tokenTypeAccess)
}

// GetProfile - профиль пользователя
func (uc *AuthUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := dto.NewUserProfile(user)
	return &profile, nil
}

// UpdateProfile - частичное обновление профиля
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		if *req.Phone != "" && !utils.IsValidPhoneNumber(*req.Phone) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"reason": "invalid phone number",
			})
		}
		user.Phone = *req.Phone
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	profile := dto.NewUserProfile(user)
	return &profile, nil
}

// RequestPasswordReset - генерация и отправка кода восстановления
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		uc.logger.Error("Failed to generate reset code", zap.Error(err))
		return errors.ErrInternalServer
	}

	// Старые коды теряют силу при выдаче нового
	if err := uc.userRepo.DeleteResetCodes(ctx, user.ID); err != nil {
		return err
	}

	resetCode := &domain.PasswordResetCode{
		UserID:    user.ID,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.userRepo.CreateResetCode(ctx, resetCode); err != nil {
		return err
	}

	if err := uc.mailRepo.SendPasswordResetCode(user.Email, code); err != nil {
		uc.logger.Error("Failed to send reset code email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return errors.ErrInternalServer
	}

	return nil
}

// VerifyResetCode - проверка действительности кода восстановления
func (uc *AuthUseCase) VerifyResetCode(ctx context.Context, email, code string) error {
	_, err := uc.findValidResetCode(ctx, email, code)
	return err
}

// ResetPassword - установка нового пароля по действительному коду
func (uc *AuthUseCase) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := uc.findValidResetCode(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}

	if len(req.NewPassword) < 5 {
		return errors.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return errors.ErrInternalServer
	}

	if err := uc.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	return uc.userRepo.DeleteResetCodes(ctx, user.ID)
}

func (uc *AuthUseCase) findValidResetCode(ctx context.Context, email, code string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	resetCode, err := uc.userRepo.GetLatestResetCode(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if resetCode.Code != code || !resetCode.IsValid(time.Now().UTC()) {
		return nil, errors.ErrInvalidResetCode
	}

	return user, nil
}

func (uc *AuthUseCase) issueTokens(userID uuid.UUID) (*dto.TokenPair, error) {
	access, err := uc.signToken(userID, tokenTypeAccess, uc.jwtCfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.signToken(userID, tokenTypeRefresh, uc.jwtCfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (uc *AuthUseCase) signToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtCfg.Secret))
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return "", errors.ErrInternalServer
	}
	return signed, nil
}

func (uc *AuthUseCase) parseToken(tokenString, expectedType string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return []byte(uc.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	if tokenType, _ := claims["type"].(string); tokenType != expectedType {
		return uuid.Nil, errors.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.ErrUnauthorized
	}

	return userID, nil
}
