package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyIDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "good-token", body["idToken"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users":[{"localId":"uid-123","email":"ada@example.com","displayName":"Ada Lovelace"}]}`))
	}))
	defer srv.Close()

	svc := NewIdentityService(srv.URL, "test-key")
	ident, err := svc.VerifyIDToken(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, "uid-123", ident.UID)
	assert.Equal(t, "ada@example.com", ident.Email)
	assert.Equal(t, "Ada Lovelace", ident.Name)
}

func TestVerifyIDTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_ID_TOKEN"}}`))
	}))
	defer srv.Close()

	svc := NewIdentityService(srv.URL, "test-key")
	_, err := svc.VerifyIDToken(context.Background(), "bad-token")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestVerifyIDTokenNoAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	}))
	defer srv.Close()

	svc := NewIdentityService(srv.URL, "test-key")
	_, err := svc.VerifyIDToken(context.Background(), "orphan-token")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestVerifyIDTokenEmpty(t *testing.T) {
	svc := NewIdentityService("http://127.0.0.1:0", "test-key")
	_, err := svc.VerifyIDToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
