package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/heritagewatch/internal/client/session"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
)

// SessionManager owns the session lifecycle.
//
// Contract:
//   - Login: authenticate, persist the record, publish Authenticated.
//   - RestoreSession: publish whatever the local store holds, without asking
//     the service whether the session is still valid.
//   - Logout: revoke remotely (best effort) and clear local state.
//   - Expire: clear local state after the service rejected the session.
type SessionManager interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	RestoreSession(ctx context.Context) session.State
	Logout(ctx context.Context)
	Expire(ctx context.Context)
	Current() session.State
	Ping(ctx context.Context) error
}

type sessionManager struct {
	client    client.Client
	store     *localstore.Store
	presenter Presenter
	logger    logging.Logger

	mu    sync.Mutex
	state session.State
}

func NewSessionManager(c client.Client, store *localstore.Store, p Presenter, logger logging.Logger) SessionManager {
	return &sessionManager{
		client:    c,
		store:     store,
		presenter: p,
		logger:    logger.With("module", "session"),
	}
}

func (m *sessionManager) Current() session.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *sessionManager) setState(s session.State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
	m.presenter.SessionChanged(s)
}

func (m *sessionManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx)
}

func (m *sessionManager) Register(ctx context.Context, email, password string) error {
	if err := m.client.Register(ctx, email, password); err != nil {
		m.logger.Error(ctx, "register failed", "email", email, "error", err)
		return err
	}
	return nil
}

// Login rejections are shown as a fixed message; transport failures are
// only logged. Nothing is persisted unless the service accepted the
// credentials.
func (m *sessionManager) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s, err := m.client.CreateSession(ctx, email, password)
	if err != nil {
		var re *client.RemoteError
		if errors.As(err, &re) || errors.Is(err, client.ErrUnauthorized) {
			m.logger.Warn(ctx, "login rejected", "email", email, "error", err)
			m.presenter.Alert(WrongPasswordMessage)
			return nil, err
		}
		m.logger.Error(ctx, "login failed", "email", email, "error", err)
		return nil, err
	}

	if err := m.store.SaveSession(ctx, s); err != nil {
		m.logger.Error(ctx, "failed to persist session", "error", err)
	}

	m.setState(session.LoggedIn(*s))
	m.logger.Info(ctx, "logged in", "email", s.Email, "session_id", s.ID)
	return s, nil
}

func (m *sessionManager) RestoreSession(ctx context.Context) session.State {
	s, err := m.store.Session(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to read stored session", "error", err)
	}

	state := session.Anonymous()
	if s.Valid() {
		state = session.LoggedIn(*s)
	}
	m.setState(state)
	return state
}

func (m *sessionManager) Logout(ctx context.Context) {
	if s, ok := m.Current().Session(); ok {
		if err := m.client.DeleteSession(ctx, s.ID, s.ID); err != nil {
			m.logger.Warn(ctx, "remote session revocation failed", "session_id", s.ID, "error", err)
		}
	}
	m.clear(ctx)
	m.logger.Info(ctx, "logged out")
}

func (m *sessionManager) Expire(ctx context.Context) {
	m.logger.Warn(ctx, "session rejected by service, signing out")
	m.clear(ctx)
}

func (m *sessionManager) clear(ctx context.Context) {
	if err := m.store.DeleteSession(ctx); err != nil {
		m.logger.Error(ctx, "failed to delete stored session", "error", err)
	}
	if err := m.store.DeleteReports(ctx); err != nil {
		m.logger.Error(ctx, "failed to delete cached reports", "error", err)
	}
	m.setState(session.Anonymous())
	m.presenter.ReportsChanged([]models.Report{})
}
