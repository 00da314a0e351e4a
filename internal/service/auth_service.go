package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
)

// --- Error Definitions ---
var (
	ErrInvalidCredentials = errors.New("email, password and role are required")
	ErrInvalidRole        = errors.New("role must be personal or student")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
)

// AuthService handles the stubbed login round-trip: any well-formed
// credentials are accepted after a simulated network delay, and a user
// record is fabricated for the requested role. The session record is
// kept in local storage; the issued JWT carries the id and role.
type AuthService interface {
	Login(ctx context.Context, email, password string, role domain.Role) (token string, user *domain.User, err error)
	Logout()
	CurrentUser() (*domain.User, bool)
	GetJWTSecret() string
}

type authService struct {
	kv               storage.KeyValue
	jwtSecret        string
	jwtExpiration    time.Duration
	simulatedLatency time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(kv storage.KeyValue, jwtSecret string, jwtExpiration, simulatedLatency time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		kv:               kv,
		jwtSecret:        jwtSecret,
		jwtExpiration:    jwtExpiration,
		simulatedLatency: simulatedLatency,
	}
}

// Login accepts any credentials and fabricates the user record.
func (s *authService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	if email == "" || password == "" || role == "" {
		return "", nil, ErrInvalidCredentials
	}
	if role != domain.RolePersonal && role != domain.RoleStudent {
		return "", nil, ErrInvalidRole
	}

	// Simulated round-trip; a cancelled caller is respected.
	if s.simulatedLatency > 0 {
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-time.After(s.simulatedLatency):
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	name := "Aluno Demo"
	if role == domain.RolePersonal {
		name = "Personal Trainer"
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		AvatarURL:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", email),
		CreatedAt:    time.Now(),
	}

	s.kv.Set(storage.KeyUser, user)

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Logout discards the stored session record.
func (s *authService) Logout() {
	s.kv.Remove(storage.KeyUser)
}

// CurrentUser returns the persisted session record, if any.
func (s *authService) CurrentUser() (*domain.User, bool) {
	var user domain.User
	if !s.kv.Get(storage.KeyUser, &user) {
		return nil, false
	}
	return &user, true
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "personalfit",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
