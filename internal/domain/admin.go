package domain

import "time"

// AdminUser is a back-office account. There are no roles: every account has
// full access to the admin surface.
type AdminUser struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

// Session is the server-side record behind an issued token. Revoking the row
// invalidates the token immediately, regardless of its expiry claim.
type Session struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	AdminUserID int64      `gorm:"column:admin_user_id" json:"admin_user_id"`
	ExpiresAt   time.Time  `gorm:"column:expires_at" json:"expires_at"`
	RevokedAt   *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
