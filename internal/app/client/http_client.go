package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"userpanel/internal/app/client/config"
	"userpanel/internal/domain/user"
)

type httpClient struct {
	client    *http.Client
	session   *SessionStore
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, session *SessionStore, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		session:   session,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "UserPanel-Client/1.0",
	}
}

// Login exchanges credentials for a session token.
func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	req := user.LoginRequest{
		Email:    email,
		Password: password,
	}

	body, err := h.doRequest(ctx, http.MethodPost, "/usuarios/login", nil, req)
	if err != nil {
		return "", err
	}

	var loginResp user.LoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil || loginResp.Token == "" {
		return "", fmt.Errorf("%w: login response carried no token", ErrProtocol)
	}

	return loginResp.Token, nil
}

// Register creates an account and returns the created record.
func (h *httpClient) Register(ctx context.Context, req user.CreateRequest) (user.User, error) {
	body, err := h.doRequest(ctx, http.MethodPost, "/usuarios/register", nil, req)
	if err != nil {
		return user.User{}, err
	}

	return decodeUser(body)
}

// ListUsers fetches one page of accounts, optionally filtered by search text.
func (h *httpClient) ListUsers(ctx context.Context, query QueryState) ([]user.User, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	if query.Search != "" {
		params.Set("q", query.Search)
	}

	body, err := h.doRequest(ctx, http.MethodGet, "/usuarios", params, nil)
	if err != nil {
		return nil, err
	}

	return decodeUserList(body)
}

// UpdateUser changes an account's name and email.
func (h *httpClient) UpdateUser(ctx context.Context, id int, req user.UpdateRequest) (user.User, error) {
	body, err := h.doRequest(ctx, http.MethodPut, "/usuarios/"+strconv.Itoa(id), nil, req)
	if err != nil {
		return user.User{}, err
	}

	return decodeUser(body)
}

// DeleteUser removes an account. The backend answers 2xx with an empty body.
func (h *httpClient) DeleteUser(ctx context.Context, id int) error {
	_, err := h.doRequest(ctx, http.MethodDelete, "/usuarios/"+strconv.Itoa(id), nil, nil)
	return err
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, params url.Values, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	reqURL := h.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	// The token comes from the session store on every call, so a login or
	// logout elsewhere in the process is picked up immediately.
	if token := h.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return h.parseResponse(resp)
}

func (h *httpClient) parseResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	h.log.Debug("received response",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, &ClientError{
			Status:  resp.StatusCode,
			Message: errorMessage(body),
		}
	}

	return body, nil
}

func errorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if errResp.Error != "" {
		return errResp.Error
	}
	return errResp.Message
}
