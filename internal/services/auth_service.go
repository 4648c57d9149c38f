package services

import (
	"fmt"
	"time"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session identifies the authenticated caller of a request. It is an explicit
// value passed into service calls; there is no ambient current-user state.
type Session struct {
	UserID   string
	Username string
	TokenID  string
}

// TokenResult is the outcome of a successful login.
type TokenResult struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresIn int64  `json:"expires_in"` // seconds until expiry
}

// AuthService authenticates credentials and issues revocable bearer tokens.
// Every issued JWT has a persisted AccessToken record keyed by its jti claim;
// a token without a live record is treated as revoked.
type AuthService struct {
	users     repositories.UserRepository
	tokens    repositories.TokenRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates the credentials and issues a signed bearer token.
func (s *AuthService) Login(username, password string) (*TokenResult, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	tokenID := uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":      tokenID,
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      expiresAt.Unix(),
		"iat":      now.Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, apperrors.Persistence("Failed to issue token", err)
	}

	record := &models.AccessToken{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(record); err != nil {
		return nil, apperrors.Persistence("Failed to issue token", err)
	}

	return &TokenResult{
		Token:     signed,
		Type:      "bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken verifies the token signature and claims, requires a live
// (unrevoked) token record, and returns the session it represents.
func (s *AuthService) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	tokenID, _ := claims["jti"].(string)
	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	if tokenID == "" || userID == "" {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	// A revoked token has no record left.
	if _, err := s.tokens.GetByID(tokenID); err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return &Session{
		UserID:   userID,
		Username: username,
		TokenID:  tokenID,
	}, nil
}

// Logout revokes every token issued to the session's user. Failures are
// reported with a deliberately vague message; revocation internals never
// reach the client.
func (s *AuthService) Logout(session *Session) error {
	if session == nil {
		return apperrors.Revocation("Unable to complete logout. Please try again later.", nil)
	}
	if err := s.tokens.DeleteByUser(session.UserID); err != nil {
		return apperrors.Revocation("Unable to complete logout. Please try again later.", err)
	}
	return nil
}
