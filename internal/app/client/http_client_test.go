package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"userpanel/internal/app/client/config"
	"userpanel/internal/domain/user"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Env:           config.EnvLocal,
		ServerAddress: strings.TrimPrefix(serverURL, "http://"),
	}
}

func testSession(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(filepath.Join(t.TempDir(), "token"), testLogger())
}

func TestHTTPClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string

	r := chi.NewRouter()
	r.Get("/usuarios", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	session := testSession(t)
	h := NewHTTPClient(testConfig(srv.URL), session, testLogger())

	// Without a session the call goes out unauthenticated.
	_, err := h.ListUsers(context.Background(), QueryState{Page: 1})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	// After a login elsewhere in the process the adapter picks the token up
	// by itself; nobody sets a header manually.
	require.NoError(t, session.SetToken("tok-123"))

	_, err = h.ListUsers(context.Background(), QueryState{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestHTTPClient_QueryParameters(t *testing.T) {
	var gotQuery string

	r := chi.NewRouter()
	r.Get("/usuarios", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

	_, err := h.ListUsers(context.Background(), QueryState{Page: 3, Search: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "page=3&q=ana", gotQuery)

	// An empty search text is no filter at all.
	_, err = h.ListUsers(context.Background(), QueryState{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "page=1", gotQuery)
}

func TestHTTPClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"token expirado"}`, sentinel: ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, sentinel: ErrAuth},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"email ja cadastrado"}`, sentinel: ErrConflict},
		{name: "not found", status: http.StatusNotFound, body: `{}`, sentinel: user.ErrNotFound},
		{name: "internal error", status: http.StatusInternalServerError, body: `boom`, sentinel: ErrServer},
		{name: "bad gateway", status: http.StatusBadGateway, body: ``, sentinel: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

			_, err := h.ListUsers(context.Background(), QueryState{Page: 1})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestHTTPClient_ClientErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"email ja cadastrado"}`))
	}))
	defer srv.Close()

	h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

	_, err := h.Register(context.Background(), user.CreateRequest{
		Name: "Ana", Email: "ana@x.com", Password: "secret1",
	})
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusConflict, clientErr.Status)
	assert.Equal(t, "email ja cadastrado", clientErr.Message)
}

func TestHTTPClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // nothing is listening anymore

	h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

	_, err := h.ListUsers(context.Background(), QueryState{Page: 1})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPClient_Login(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/usuarios/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"token":"tok-abc"}`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

	token, err := h.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestHTTPClient_LoginWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

	_, err := h.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestHTTPClient_ListEnvelopes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{
			name: "bare array",
			body: `[{"id":1,"nome":"Ana","email":"ana@x.com"}]`,
			want: 1,
		},
		{
			name: "data envelope",
			body: `{"data":[{"id":1,"nome":"Ana","email":"ana@x.com"},{"id":2,"nome":"Bia","email":"bia@x.com"}]}`,
			want: 2,
		},
		{
			name: "usuarios envelope",
			body: `{"usuarios":[{"id":7,"nome":"Iva","email":"iva@x.com"}]}`,
			want: 1,
		},
		{
			name: "empty bare array",
			body: `[]`,
			want: 0,
		},
		{
			name:    "object without any known key",
			body:    `{"count":3}`,
			wantErr: ErrProtocol,
		},
		{
			name:    "envelope holding a non-array",
			body:    `{"data":{"id":1}}`,
			wantErr: ErrProtocol,
		},
		{
			name:    "scalar",
			body:    `42`,
			wantErr: ErrProtocol,
		},
		{
			name:    "garbage",
			body:    `<html>oops</html>`,
			wantErr: ErrProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

			users, err := h.ListUsers(context.Background(), QueryState{Page: 1})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, users, tt.want)
		})
	}
}

func TestHTTPClient_UpdateDecodesRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare object", body: `{"id":5,"nome":"Novo","email":"novo@x.com"}`},
		{name: "data envelope", body: `{"data":{"id":5,"nome":"Novo","email":"novo@x.com"}}`},
		{name: "usuario envelope", body: `{"usuario":{"id":5,"nome":"Novo","email":"novo@x.com"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

			u, err := h.UpdateUser(context.Background(), 5, user.UpdateRequest{Name: "Novo", Email: "novo@x.com"})
			require.NoError(t, err)
			assert.Equal(t, 5, u.ID)
			assert.Equal(t, "Novo", u.Name)
		})
	}

	t.Run("object without id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		h := NewHTTPClient(testConfig(srv.URL), testSession(t), testLogger())

		_, err := h.UpdateUser(context.Background(), 5, user.UpdateRequest{Name: "Novo", Email: "novo@x.com"})
		assert.ErrorIs(t, err, ErrProtocol)
	})
}
