package client

import (
	"errors"
	"fmt"
	"net/http"

	"userpanel/internal/domain/user"
)

var (
	// ErrNetwork means no response reached the client at all.
	ErrNetwork = errors.New("server unreachable")
	// ErrServer covers 5xx responses.
	ErrServer = errors.New("server error")
	// ErrAuth means the backend rejected the credential on a protected call.
	ErrAuth = errors.New("session is no longer valid")
	// ErrConflict means the backend refused a create because the email is taken.
	ErrConflict = errors.New("email already registered")
	// ErrProtocol means the response body matched no accepted shape.
	ErrProtocol = errors.New("unexpected response from server")
	// ErrValidation means the input never left the client.
	ErrValidation = errors.New("invalid input")
	// ErrCancelled means the user declined the confirmation gate.
	ErrCancelled = errors.New("operation cancelled")
)

// ClientError carries a 4xx response: the status code and whatever message
// the backend put in the body.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.Status)
}

// Is maps well-known statuses onto the package sentinels so callers can use
// errors.Is without inspecting codes themselves.
func (e *ClientError) Is(target error) bool {
	switch target {
	case ErrAuth:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrConflict:
		return e.Status == http.StatusConflict
	case user.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
