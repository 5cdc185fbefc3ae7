package client

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"

	"golang.org/x/exp/slog"

	"userpanel/internal/domain/user"
)

// QueryState identifies the list the synchronizer is tracking: a page number
// and an optional search filter. Changing either replaces the list wholesale
// on the next refresh; old and new pages are never merged.
type QueryState struct {
	Page   int
	Search string
}

// ConfirmFunc is the gate in front of destructive operations. The delete
// request is issued only after it returns true.
type ConfirmFunc func(id int) bool

// Synchronizer owns the canonical in-memory user list for the active query
// and reconciles it with the backend after every mutation.
type Synchronizer struct {
	api       *httpClient
	session   *SessionStore
	validator user.Validator
	log       *slog.Logger
	confirm   ConfirmFunc

	mu       gosync.Mutex
	query    QueryState
	fetchSeq uint64
	list     []user.User
}

func NewSynchronizer(api *httpClient, session *SessionStore, validator user.Validator, log *slog.Logger, confirm ConfirmFunc) *Synchronizer {
	return &Synchronizer{
		api:       api,
		session:   session,
		validator: validator,
		log:       log,
		confirm:   confirm,
		query:     QueryState{Page: 1},
	}
}

// Query returns the query the list currently tracks.
func (s *Synchronizer) Query() QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Users returns a snapshot of the current list.
func (s *Synchronizer) Users() []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]user.User, len(s.list))
	copy(out, s.list)
	return out
}

// Refresh fetches the list for the given query and installs the result.
// Last query wins: if another Refresh starts before this one resolves, the
// older result is discarded on arrival and the list is left to the newer one.
func (s *Synchronizer) Refresh(ctx context.Context, query QueryState) error {
	if query.Page < 1 {
		query.Page = 1
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.query = query
	s.mu.Unlock()

	users, err := s.api.ListUsers(ctx, query)
	if err != nil {
		s.noteAuthFailure(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		s.log.Debug("discarding stale fetch result",
			"page", query.Page,
			"search", query.Search,
		)
		return nil
	}

	s.list = dedupeByID(users)
	return nil
}

// Create registers a new account and appends it to the list. The local list
// reflects the new record before Create returns.
func (s *Synchronizer) Create(ctx context.Context, req user.CreateRequest) (user.User, error) {
	if err := s.validator.ValidateCreate(req.Name, req.Email, req.Password); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created, err := s.api.Register(ctx, req)
	if err != nil {
		s.noteAuthFailure(err)
		return user.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexByID(s.list, created.ID); i >= 0 {
		s.list[i] = created
	} else {
		s.list = append(s.list, created)
	}

	s.log.Info("user created", "id", created.ID, "email", created.Email)
	return created, nil
}

// Update changes an account's name/email and replaces the matching local
// entry. A record missing locally is not an error; it raced with a delete
// and the change shows up on the next refresh.
func (s *Synchronizer) Update(ctx context.Context, id int, req user.UpdateRequest) (user.User, error) {
	if err := s.validator.ValidateUpdate(req.Name, req.Email); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	updated, err := s.api.UpdateUser(ctx, id, req)
	if err != nil {
		s.noteAuthFailure(err)
		return user.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexByID(s.list, updated.ID); i >= 0 {
		s.list[i] = updated
	}

	s.log.Info("user updated", "id", updated.ID)
	return updated, nil
}

// Remove deletes an account after the confirmation gate approves it.
// Deleting an identifier the backend no longer knows is treated as success.
func (s *Synchronizer) Remove(ctx context.Context, id int) error {
	if s.confirm == nil || !s.confirm(id) {
		s.log.Debug("delete declined", "id", id)
		return ErrCancelled
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.noteAuthFailure(err)
			return err
		}
		// Already gone on the backend; fall through and drop it locally.
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexByID(s.list, id); i >= 0 {
		s.list = append(s.list[:i], s.list[i+1:]...)
	}

	s.log.Info("user deleted", "id", id)
	return nil
}

// noteAuthFailure is the one place an error has a global side effect: a
// rejected credential invalidates the whole session.
func (s *Synchronizer) noteAuthFailure(err error) {
	if !errors.Is(err, ErrAuth) {
		return
	}

	if cerr := s.session.Clear(); cerr != nil {
		s.log.Warn("failed to clear session after auth failure", "error", cerr)
		return
	}

	s.log.Warn("session rejected by server, credentials cleared")
}

func indexByID(list []user.User, id int) int {
	for i, u := range list {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// dedupeByID keeps the first occurrence of every identifier, preserving
// order. The local list must never hold two entries with the same id, even
// when the backend misbehaves.
func dedupeByID(list []user.User) []user.User {
	seen := make(map[int]struct{}, len(list))
	out := list[:0:0]

	for _, u := range list {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}

	return out
}
