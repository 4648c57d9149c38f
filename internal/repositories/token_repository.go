package repositories

import "gudang/internal/models"

// TokenRepository defines the interface for access-token records. A token is
// live while its record exists; deleting the records for a user revokes every
// token issued to them.
type TokenRepository interface {
	Create(token *models.AccessToken) error
	GetByID(id string) (*models.AccessToken, error)
	DeleteByUser(userID string) error
}
