package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and logout. Accounts live in the
// database; everything session-scoped (profile, log, flags) is reset through
// the collaborating services on logout.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	profiles  *ProfileService
	logs      *LogService
	sessions  *SessionStore
}

func NewAuthService(db *gorm.DB, jwtSecret string, profiles *ProfileService, logs *LogService, sessions *SessionStore) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		profiles:  profiles,
		logs:      logs,
		sessions:  sessions,
	}
}

// Register creates an account with a factory-default profile and returns a
// signed token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique email index catches registrations that race past the
		// lookup above, and emails held by soft-deleted accounts.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUserExists
		}
		return "", err
	}

	s.profiles.Create(ctx, user.ID, name, email)
	s.sessions.SetAuthenticated(ctx, user.ID, true)

	return s.generateToken(user.ID)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	s.sessions.SetAuthenticated(ctx, user.ID, true)
	return s.generateToken(user.ID)
}

// Logout clears all session-scoped state: the log, the profile (back to
// factory defaults) and the stored session keys, auth flag last.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) {
	s.logs.Reset(ctx, userID)
	s.profiles.Reset(ctx, userID)
	s.sessions.Clear(ctx, userID)
	s.logs.Forget(userID)
	s.profiles.Forget(userID)
}

func (s *AuthService) generateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &types.TokenClaims{UserID: userID}, nil
}
