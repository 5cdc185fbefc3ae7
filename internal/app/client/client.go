package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"userpanel/internal/app/client/config"
	"userpanel/internal/domain/user"
)

// App wires the client together: session store, HTTP adapter, synchronizer,
// edit session and guard share one token slot and one logger.
type App struct {
	config  *config.Config
	log     *slog.Logger
	session *SessionStore
	api     *httpClient
	sync    *Synchronizer
	edit    *EditSession
	guard   *Guard
}

// New builds the client. The session hydrates from the token file, so a
// login from a previous run is picked up here. confirm guards deletes; a nil
// confirm refuses them.
func New(cfg *config.Config, log *slog.Logger, confirm ConfirmFunc) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	session := NewSessionStore(cfg.TokenPath, log)
	api := NewHTTPClient(cfg, session, log)
	syncer := NewSynchronizer(api, session, user.NewFormValidator(), log, confirm)

	app := &App{
		config:  cfg,
		log:     log,
		session: session,
		api:     api,
		sync:    syncer,
		edit:    NewEditSession(syncer, log),
		guard:   NewGuard(session),
	}

	if session.Token() != "" {
		log.Debug("existing session restored")
	}

	return app, nil
}

func (a *App) Session() *SessionStore {
	return a.session
}

func (a *App) Synchronizer() *Synchronizer {
	return a.sync
}

func (a *App) EditSession() *EditSession {
	return a.edit
}

func (a *App) Guard() *Guard {
	return a.guard
}

// IsAuthenticated reports whether a session token is present.
func (a *App) IsAuthenticated() bool {
	return a.session.Token() != ""
}

// Login authenticates against the backend and persists the session token.
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.SetToken(token); err != nil {
		return err
	}

	a.log.Info("logged in", "email", email)
	return nil
}

// Register creates an account without requiring a session. It is the guest
// flow; creating users from the list view goes through the synchronizer.
func (a *App) Register(ctx context.Context, req user.CreateRequest) (user.User, error) {
	v := user.NewFormValidator()
	if err := v.ValidateCreate(req.Name, req.Email, req.Password); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created, err := a.api.Register(ctx, req)
	if err != nil {
		return user.User{}, err
	}

	a.log.Info("account registered", "email", created.Email)
	return created, nil
}

// Logout destroys the session.
func (a *App) Logout() error {
	if err := a.session.Clear(); err != nil {
		return err
	}

	a.log.Info("logged out")
	return nil
}
