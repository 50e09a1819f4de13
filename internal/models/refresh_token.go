package models

import "time"

// RefreshToken stores the sha256 hash of a rotating refresh token issued to
// a staff session. The plaintext token is only ever held by the client.
type RefreshToken struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	AdminID           uint       `gorm:"index;not null" json:"admin_id"`
	TokenHash         string     `gorm:"uniqueIndex;size:64;not null" json:"-"`
	ExpiresAt         time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt         *time.Time `json:"revoked_at,omitempty"`
	ReplacedByTokenID uint       `json:"-"`
	CreatedByIP       string     `gorm:"size:45" json:"-"`
	UserAgent         string     `gorm:"size:500" json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
