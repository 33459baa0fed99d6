package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain"
	apperrors "github.com/tourism-backend/internal/pkg/errors"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) CreateResetCode(ctx context.Context, code *domain.PasswordResetCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockUserRepository) GetLatestResetCode(ctx context.Context, userID uuid.UUID) (*domain.PasswordResetCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetCode), args.Error(1)
}

func (m *MockUserRepository) DeleteResetCodes(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMailRepository is a mock of MailRepository
type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SendPasswordResetCode(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func newAuthUseCase(users *MockUserRepository, mail *MockMailRepository) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, mail, zap.NewNop(), testJWTConfig())
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	validReq := dto.RegisterRequest{
		Email:     "anna@example.com",
		FirstName: "Anna",
		LastName:  "Petrova",
		Password:  "secret123",
	}

	t.Run("success returns profile and tokens", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("ExistsByEmail", ctx, "anna@example.com").Return(false, nil)
		mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		resp, err := uc.Register(ctx, validReq)

		assert.NoError(t, err)
		assert.Equal(t, "anna@example.com", resp.User.Email)
		assert.Equal(t, domain.DefaultProfileImage, resp.User.ProfileImage)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("ExistsByEmail", ctx, "anna@example.com").Return(true, nil)

		resp, err := uc.Register(ctx, validReq)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrEmailInUse, err)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := newAuthUseCase(&MockUserRepository{}, &MockMailRepository{})

		req := validReq
		req.Password = "abcd"
		resp, err := uc.Register(ctx, req)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrWeakPassword, err)
	})

	t.Run("blacklisted email is rejected", func(t *testing.T) {
		uc := newAuthUseCase(&MockUserRepository{}, &MockMailRepository{})

		req := validReq
		req.Email = "do-not-respond@example.com"
		resp, err := uc.Register(ctx, req)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidEmail, err)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	t.Run("success", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "Anna@Example.com", Password: "secret123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "anna@example.com", Password: "wrong"})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}

func TestAuthUseCase_Tokens(t *testing.T) {
	ctx := context.Background()

	t.Run("access token round trip", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
		user := &domain.User{
			ID:           uuid.New(),
			Email:        "anna@example.com",
			PasswordHash: string(hash),
			IsActive:     true,
		}
		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "anna@example.com", Password: "secret123"})
		assert.NoError(t, err)

		userID, err := uc.ValidateAccessToken(resp.Tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)

		// Refresh токен не проходит как access
		_, err = uc.ValidateAccessToken(resp.Tokens.RefreshToken)
		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		uc := newAuthUseCase(&MockUserRepository{}, &MockMailRepository{})

		_, err := uc.ValidateAccessToken("not-a-token")
		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})
}

func TestAuthUseCase_PasswordReset(t *testing.T) {
	ctx := context.Background()

	user := &domain.User{
		ID:    uuid.New(),
		Email: "anna@example.com",
	}

	t.Run("request generates code and sends email", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		mockMail := &MockMailRepository{}
		uc := newAuthUseCase(mockUsers, mockMail)

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)
		mockUsers.On("DeleteResetCodes", ctx, user.ID).Return(nil)
		mockUsers.On("CreateResetCode", ctx, mock.MatchedBy(func(c *domain.PasswordResetCode) bool {
			return c.UserID == user.ID && len(c.Code) == 6
		})).Return(nil)
		mockMail.On("SendPasswordResetCode", "anna@example.com", mock.AnythingOfType("string")).Return(nil)

		err := uc.RequestPasswordReset(ctx, "anna@example.com")

		assert.NoError(t, err)
		mockMail.AssertExpectations(t)
	})

	t.Run("valid code passes verification", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)
		mockUsers.On("GetLatestResetCode", ctx, user.ID).Return(&domain.PasswordResetCode{
			UserID:    user.ID,
			Code:      "123456",
			CreatedAt: time.Now().UTC(),
		}, nil)

		err := uc.VerifyResetCode(ctx, "anna@example.com", "123456")
		assert.NoError(t, err)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)
		mockUsers.On("GetLatestResetCode", ctx, user.ID).Return(&domain.PasswordResetCode{
			UserID:    user.ID,
			Code:      "123456",
			CreatedAt: time.Now().UTC().Add(-11 * time.Minute),
		}, nil)

		err := uc.VerifyResetCode(ctx, "anna@example.com", "123456")
		assert.Equal(t, apperrors.ErrInvalidResetCode, err)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)
		mockUsers.On("GetLatestResetCode", ctx, user.ID).Return(&domain.PasswordResetCode{
			UserID:    user.ID,
			Code:      "123456",
			CreatedAt: time.Now().UTC(),
		}, nil)

		err := uc.VerifyResetCode(ctx, "anna@example.com", "654321")
		assert.Equal(t, apperrors.ErrInvalidResetCode, err)
	})

	t.Run("reset updates password and clears codes", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := newAuthUseCase(mockUsers, &MockMailRepository{})

		mockUsers.On("GetByEmail", ctx, "anna@example.com").Return(user, nil)
		mockUsers.On("GetLatestResetCode", ctx, user.ID).Return(&domain.PasswordResetCode{
			UserID:    user.ID,
			Code:      "123456",
			CreatedAt: time.Now().UTC(),
		}, nil)
		mockUsers.On("UpdatePassword", ctx, user.ID, mock.AnythingOfType("string")).Return(nil)
		mockUsers.On("DeleteResetCodes", ctx, user.ID).Return(nil)

		err := uc.ResetPassword(ctx, dto.ResetPasswordRequest{
			Email:       "anna@example.com",
			Code:        "123456",
			NewPassword: "newsecret",
		})

		assert.NoError(t, err)
		mockUsers.AssertCalled(t, "UpdatePassword", ctx, user.ID, mock.AnythingOfType("string"))
		mockUsers.AssertCalled(t, "DeleteResetCodes", ctx, user.ID)
	})
}
