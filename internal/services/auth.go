package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/localbiz/marketplace-api/internal/apperrors"
	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

// Operational errors surfaced by the auth service.
var (
	ErrEmailTaken          = apperrors.New("email already registered", http.StatusConflict)
	ErrInvalidRole         = apperrors.New("invalid role", http.StatusBadRequest)
	ErrInvalidCredentials  = apperrors.New("invalid email or password", http.StatusUnauthorized)
	ErrInvalidRefreshToken = apperrors.New("invalid refresh token", http.StatusUnauthorized)
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	UpdateProfile(ctx context.Context, user *models.UserDB) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenGenerator defines an interface for issuing and refreshing token pairs.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (access, refresh string, err error)
	GetRefreshClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenPairDTO is the token set returned to clients after login/refresh.
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration, login, and token refresh.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user account with a unique email and a whitelisted
// role. The password is hashed before storing.
func (svc *AuthService) Register(ctx context.Context, email, password, role, firstName, lastName string) (*models.User, error) {
	if role == "" {
		role = models.RoleConsumer
	}
	if !models.ValidRoles[role] {
		logger.Log.Errorw("rejected registration with unknown role", "role", role)
		return nil, ErrInvalidRole
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, EventUserRegistered, user.UserID.String(), map[string]string{
		"email": user.Email,
		"role":  user.Role,
	})

	return user.ToUser(), nil
}

// Login authenticates a user and returns an access/refresh token pair.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*TokenPairDTO, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := svc.tokens.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return nil, err
	}

	return &TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and issues a fresh token pair. The user
// must still exist; claims are re-read from the database so a role change
// takes effect on refresh.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPairDTO, error) {
	claims, err := svc.tokens.GetRefreshClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("refresh token rejected", "err", err)
		return nil, ErrInvalidRefreshToken
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	access, refresh, err := svc.tokens.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return nil, err
	}

	return &TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
