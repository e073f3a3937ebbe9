package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pulseboard/internal/models"
	"pulseboard/internal/repository"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30

	defaultTokenTTL = 7 * 24 * time.Hour
)

// TokenConfig carries the signing secret and token lifetime from config.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	users  repository.Users
	tokens TokenConfig
}

func NewAuthService(users repository.Users, tokens TokenConfig) *AuthService {
	if tokens.TTL <= 0 {
		tokens.TTL = defaultTokenTTL
	}
	return &AuthService{users: users, tokens: tokens}
}

var _ Authorization = (*AuthService)(nil)

// Claims defines the JWT payload: user id + username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// Register creates a new account and issues a token. The email is stored
// lowercased and trimmed; the password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: username, email, password required", ErrValidation)
	}
	if n := len(username); n < minUsernameLen || n > maxUsernameLen {
		return AuthResult{}, fmt.Errorf("%w: username must be %d-%d characters", ErrValidation, minUsernameLen, maxUsernameLen)
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, ErrConflict
	}

	hash, err := hashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(id, username)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token: token,
		User:  models.User{ID: id, Username: username, Email: email},
	}, nil
}

// Login accepts an email (case-insensitive) or username plus password and
// issues a fresh token. Any mismatch yields the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (AuthResult, error) {
	identifier := strings.TrimSpace(emailOrUsername)
	if identifier == "" || password == "" {
		return AuthResult{}, fmt.Errorf("%w: missing fields", ErrValidation)
	}

	u, err := s.users.FindByEmailOrUsername(ctx, strings.ToLower(identifier), identifier)
	if err != nil {
		return AuthResult{}, err
	}
	if u == nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID, u.Username)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: *u}, nil
}

// ParseToken verifies a JWT and returns the identity it carries.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}
	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// Profile returns the stored public profile for a token subject.
func (s *AuthService) Profile(ctx context.Context, userID int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokens.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString([]byte(s.tokens.Secret))
}
