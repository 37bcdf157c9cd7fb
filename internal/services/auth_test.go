package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	tests := []struct {
		name         string
		email        string
		role         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantRole     string
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			role:     "business_owner",
			wantRole: models.RoleBusinessOwner,
		},
		{
			name:     "role defaults to consumer",
			email:    "dave@example.com",
			role:     "",
			wantRole: models.RoleConsumer,
		},
		{
			name:    "unknown role rejected",
			email:   "mallory@example.com",
			role:    "superuser",
			wantErr: services.ErrInvalidRole,
		},
		{
			name:         "email already registered",
			email:        "bob@example.com",
			role:         "consumer",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrEmailTaken,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			role:      "consumer",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			role:      "consumer",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != services.ErrInvalidRole {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if tt.existingUser == nil && tt.readerErr == nil && tt.wantErr != services.ErrInvalidRole {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.UserDB) error {
						assert.Equal(t, tt.email, user.Email)
						assert.Equal(t, tt.wantRole, user.Role)
						assert.NotEqual(t, "pass12345", user.PasswordHash)
						return tt.writerErr
					})
			}

			user, err := svc.Register(context.Background(), tt.email, "pass12345", tt.role, "Jane", "Doe")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.wantRole, user.Role)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pass12345"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:       userID,
		Email:        "alice@example.com",
		PasswordHash: string(hashed),
		Role:         models.RoleConsumer,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		dbUser    *models.UserDB
		readerErr error
		tokenErr  error
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "pass12345",
			dbUser:   user,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "pass12345",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			dbUser:   user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "pass12345",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "token generation error",
			email:    "alice@example.com",
			password: "pass12345",
			dbUser:   user,
			tokenErr: errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.dbUser, tt.readerErr)

			if tt.dbUser != nil && tt.readerErr == nil && tt.password == "pass12345" {
				if tt.tokenErr != nil {
					mockTokens.EXPECT().
						Generate(gomock.Any(), userID, tt.email, models.RoleConsumer).
						Return("", "", tt.tokenErr)
				} else {
					mockTokens.EXPECT().
						Generate(gomock.Any(), userID, tt.email, models.RoleConsumer).
						Return("access", "refresh", nil)
				}
			}

			pair, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, pair)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", pair.AccessToken)
				assert.Equal(t, "refresh", pair.RefreshToken)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "alice@example.com", Role: models.RoleConsumer}
	claims := &jwt.Claims{UserID: userID, Email: "alice@example.com", Role: models.RoleConsumer}

	t.Run("successful refresh", func(t *testing.T) {
		mockTokens.EXPECT().
			GetRefreshClaims(gomock.Any(), "old-refresh").
			Return(claims, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)
		mockTokens.EXPECT().
			Generate(gomock.Any(), userID, "alice@example.com", models.RoleConsumer).
			Return("new-access", "new-refresh", nil)

		pair, err := svc.Refresh(context.Background(), "old-refresh")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", pair.AccessToken)
		assert.Equal(t, "new-refresh", pair.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockTokens.EXPECT().
			GetRefreshClaims(gomock.Any(), "garbage").
			Return(nil, errors.New("token is malformed"))

		pair, err := svc.Refresh(context.Background(), "garbage")
		assert.ErrorIs(t, err, services.ErrInvalidRefreshToken)
		assert.Nil(t, pair)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		mockTokens.EXPECT().
			GetRefreshClaims(gomock.Any(), "orphaned").
			Return(claims, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		pair, err := svc.Refresh(context.Background(), "orphaned")
		assert.ErrorIs(t, err, services.ErrInvalidRefreshToken)
		assert.Nil(t, pair)
	})
}
