package models

import "time"

// AccessToken is the persisted record behind an issued bearer token. The ID is
// the token's jti claim; logout deletes every record for a user, which revokes
// all of that user's outstanding tokens at once.
type AccessToken struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
