package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"userpanel/internal/domain/user"
)

// The backend has been observed answering list requests three ways: a bare
// array, {"data":[...]} and {"usuarios":[...]}. All response-shape guessing
// lives here so no call site has to.

type listEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Users json.RawMessage `json:"usuarios"`
}

type userEnvelope struct {
	Data json.RawMessage `json:"data"`
	User json.RawMessage `json:"usuario"`
}

func decodeUserList(body []byte) ([]user.User, error) {
	payload := bytes.TrimSpace(body)

	if bytes.HasPrefix(payload, []byte("{")) {
		var env listEnvelope
		if err := json.Unmarshal(payload, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
		}

		switch {
		case env.Data != nil:
			payload = bytes.TrimSpace(env.Data)
		case env.Users != nil:
			payload = bytes.TrimSpace(env.Users)
		default:
			return nil, fmt.Errorf("%w: object carries no user array", ErrProtocol)
		}
	}

	if !bytes.HasPrefix(payload, []byte("[")) {
		return nil, fmt.Errorf("%w: expected a user array", ErrProtocol)
	}

	var users []user.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	return users, nil
}

func decodeUser(body []byte) (user.User, error) {
	payload := bytes.TrimSpace(body)

	if !bytes.HasPrefix(payload, []byte("{")) {
		return user.User{}, fmt.Errorf("%w: expected a user object", ErrProtocol)
	}

	var env userEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	switch {
	case env.Data != nil && bytes.HasPrefix(bytes.TrimSpace(env.Data), []byte("{")):
		payload = env.Data
	case env.User != nil && bytes.HasPrefix(bytes.TrimSpace(env.User), []byte("{")):
		payload = env.User
	}

	var u user.User
	if err := json.Unmarshal(payload, &u); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	if u.ID == 0 {
		return user.User{}, fmt.Errorf("%w: user object carries no id", ErrProtocol)
	}

	return u, nil
}
