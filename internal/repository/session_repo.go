package repository

import (
	"context"
	"time"

	"desaadmin/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, sess *domain.Session) error {
	return translateError(r.db.WithContext(ctx).Create(sess).Error)
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var sess domain.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sess).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &sess, nil
}

// Revoke marks the session as revoked. Revoking an already revoked session
// is a no-op, not an error.
func (r *SessionRepository) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now)
	return translateError(res.Error)
}

// DeleteExpired removes sessions that can never validate again. Used by the
// cleanup command.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at IS NOT NULL", now).
		Delete(&domain.Session{})
	return res.RowsAffected, translateError(res.Error)
}
