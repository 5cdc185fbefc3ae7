package client

import (
	"context"
	"errors"
	gosync "sync"

	"golang.org/x/exp/slog"

	"userpanel/internal/domain/user"
)

// EditMode is the state of the single shared form: at most one create or
// edit can be active at a time.
type EditMode int

const (
	ModeIdle EditMode = iota
	ModeCreating
	ModeEditing
)

func (m EditMode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "idle"
	}
}

// ErrNoActiveForm means Submit was called with nothing open.
var ErrNoActiveForm = errors.New("no form is open")

// FormInput is what the shared form collects. Password is only read in
// creating mode; an edit never sends it.
type FormInput struct {
	Name     string
	Email    string
	Password string
}

// EditSession tracks the create-vs-edit slot driving the shared form and
// routes its submit outcome into the synchronizer. Opening a new session
// while one is active replaces it, no questions asked.
type EditSession struct {
	sync *Synchronizer
	log  *slog.Logger

	mu     gosync.Mutex
	mode   EditMode
	target user.User
}

func NewEditSession(sync *Synchronizer, log *slog.Logger) *EditSession {
	return &EditSession{
		sync: sync,
		log:  log,
	}
}

func (e *EditSession) Mode() EditMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Target returns the record being edited. The form pre-fills from it; in
// creating or idle mode there is none and the form starts empty.
func (e *EditSession) Target() (user.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeEditing {
		return user.User{}, false
	}
	return e.target, true
}

// OpenCreate switches the form to a blank create, implicitly cancelling
// whatever was active.
func (e *EditSession) OpenCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeCreating
	e.target = user.User{}
}

// OpenEdit switches the form to editing the given record.
func (e *EditSession) OpenEdit(u user.User) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeEditing
	e.target = u
}

// Cancel closes the form without submitting.
func (e *EditSession) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeIdle
	e.target = user.User{}
}

// Submit routes the form content to create or update depending on mode.
// Success closes the form; failure keeps it open for correction.
func (e *EditSession) Submit(ctx context.Context, form FormInput) error {
	e.mu.Lock()
	mode := e.mode
	target := e.target
	e.mu.Unlock()

	var err error
	switch mode {
	case ModeCreating:
		_, err = e.sync.Create(ctx, user.CreateRequest{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
	case ModeEditing:
		_, err = e.sync.Update(ctx, target.ID, user.UpdateRequest{
			Name:  form.Name,
			Email: form.Email,
		})
	default:
		return ErrNoActiveForm
	}

	if err != nil {
		e.log.Debug("form submit failed", "mode", mode.String(), "error", err)
		return err
	}

	e.mu.Lock()
	// Only close the form if nobody re-opened it while the call was in flight.
	if e.mode == mode && e.target.ID == target.ID {
		e.mode = ModeIdle
		e.target = user.User{}
	}
	e.mu.Unlock()

	return nil
}
