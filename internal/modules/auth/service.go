package auth

import (
	"context"
	"errors"
	"time"

	"desaadmin/internal/domain"
	"desaadmin/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository defines admin account data access.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
}

// SessionRepository defines session data access.
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Revoke(ctx context.Context, id string) error
}

type tokenIssuer interface {
	GenerateToken(adminID int64, sessionID string) (string, error)
}

// Service contains authentication business logic: credential exchange,
// session lifecycle and revocation notification.
type Service struct {
	admins     AdminRepository
	sessions   SessionRepository
	jwt        tokenIssuer
	hub        *Hub
	sessionTTL time.Duration
}

func NewService(admins AdminRepository, sessions SessionRepository, jwt tokenIssuer, hub *Hub, sessionTTL time.Duration) *Service {
	return &Service{
		admins:     admins,
		sessions:   sessions,
		jwt:        jwt,
		hub:        hub,
		sessionTTL: sessionTTL,
	}
}

// Login exchanges email/password for a token backed by a session row.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.AdminUser, string, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:          uuid.NewString(),
		AdminUserID: admin.ID,
		ExpiresAt:   time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(admin.ID, sess.ID)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// Logout revokes the session and pushes a revocation event to any connected
// subscriber, so other tabs of the same session drop out without a reload.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.NotifyRevoked(sessionID)
	}
	return nil
}

// ValidateSession implements middleware.SessionValidator. Every failure mode
// (missing row, revoked, expired, lookup error) denies access.
func (s *Service) ValidateSession(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if sess.RevokedAt != nil {
		return ErrSessionRevoked
	}
	if !time.Now().Before(sess.ExpiresAt) {
		return ErrSessionExpired
	}
	return nil
}

// CurrentAdmin returns the account behind an authenticated request.
func (s *Service) CurrentAdmin(ctx context.Context, adminID int64) (*domain.AdminUser, error) {
	return s.admins.GetByID(ctx, adminID)
}
