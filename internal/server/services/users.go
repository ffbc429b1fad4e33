// Package services contains server-side business logic. UserService handles
// accounts and the sessions that back client tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/cryptox"
	"github.com/dmitrijs2005/heritagewatch/internal/dbx"
	"github.com/dmitrijs2005/heritagewatch/internal/server/auth"
	"github.com/dmitrijs2005/heritagewatch/internal/server/config"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/repomanager"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// SessionGrant is what a successful login hands back to the client.
type SessionGrant struct {
	SessionID string
	UserID    string
	Email     string
	Token     string
	Expires   time.Time
}

// Principal identifies the caller of an authenticated request.
type Principal struct {
	UserID    string
	SessionID string
}

type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
	now                     func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
		now:                     time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Malformed emails and short passwords yield
// common.ErrorValidation, a taken email common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLength)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	user := &models.User{Email: email, Salt: salt, PasswordHash: cryptox.HashPassword(pw, salt)}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// CreateSession checks the credentials and opens a new session. Unknown
// emails and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) CreateSession(ctx context.Context, email, password string) (*SessionGrant, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keep the response time close to the wrong-password path
			cryptox.CheckPassword(pw, common.GenerateRandByteArray(cryptox.SaltSize), nil)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !cryptox.CheckPassword(pw, user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	var grant *SessionGrant
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		session, err := s.repomanager.Sessions(tx).Create(ctx, user.ID, s.now().Add(s.sessionValidityDuration))
		if err != nil {
			return err
		}
		token, _, err := auth.GenerateToken(user.ID, session.ID, s.jwtSecret, s.sessionValidityDuration)
		if err != nil {
			return err
		}
		grant = &SessionGrant{
			SessionID: session.ID,
			UserID:    user.ID,
			Email:     user.Email,
			Token:     token,
			Expires:   session.Expires,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return grant, nil
}

// Authenticate resolves a session token. Expired, revoked and forged tokens
// all wrap common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrSessionRevoked)
		}
		return nil, common.ErrorInternal
	}
	if session.UserID != claims.UserID {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrInvalidToken)
	}
	if session.Expired(s.now()) {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrTokenExpired)
	}

	return &Principal{UserID: claims.UserID, SessionID: session.ID}, nil
}

// AuthenticateSession resolves the session id clients send in
// X-Authentication.
func (s *UserService) AuthenticateSession(ctx context.Context, sessionID string) (*Principal, error) {
	if !isUUID(sessionID) {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrSessionRevoked)
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrSessionRevoked)
		}
		return nil, common.ErrorInternal
	}
	if session.Expired(s.now()) {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrTokenExpired)
	}

	return &Principal{UserID: session.UserID, SessionID: session.ID}, nil
}

// DeleteSession revokes one of the caller's sessions.
func (s *UserService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if !isUUID(sessionID) {
		return common.ErrorNotFound
	}
	return s.repomanager.Sessions(s.db).Delete(ctx, userID, sessionID)
}

// PurgeExpiredSessions drops sessions past their expiry.
func (s *UserService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx, s.now())
}
