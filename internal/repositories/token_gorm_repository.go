package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// Create persists a new access-token record.
func (r *GORMTokenRepository) Create(token *models.AccessToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create access token: %w", err)
	}
	return nil
}

// GetByID retrieves an access-token record by its ID (the jti claim).
func (r *GORMTokenRepository) GetByID(id string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.db.First(&token, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access token %s: %w", id, err)
	}
	return &token, nil
}

// DeleteByUser removes every access-token record for a user. Deleting zero
// rows is not an error; the user may simply hold no live tokens.
func (r *GORMTokenRepository) DeleteByUser(userID string) error {
	if err := r.db.Delete(&models.AccessToken{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete access tokens for user %s: %w", userID, err)
	}
	return nil
}
