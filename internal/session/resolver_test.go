package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/api"
	"shopfront/internal/types"
)

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := api.New(srv.URL, time.Second)
	require.NoError(t, err)
	return client
}

func TestResolve(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/profile", r.URL.Path)
			w.Write([]byte(`{"id":1,"username":"alice","role":"ADMIN"}`))
		})

		user := NewResolver(client).Resolve(context.Background())
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsAdmin())
	})

	t.Run("unauthenticated yields nil", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		assert.Nil(t, NewResolver(client).Resolve(context.Background()))
	})

	t.Run("server error also yields nil", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		assert.Nil(t, NewResolver(client).Resolve(context.Background()))
	})
}

func TestRequireUser(t *testing.T) {
	assert.Equal(t, GateLogin, RequireUser(nil))
	assert.Equal(t, GateAllowed, RequireUser(&types.User{Role: types.RoleCustomer}))
}

func TestRequireAdmin(t *testing.T) {
	// Missing session and wrong role both go home; they are not distinguished.
	assert.Equal(t, GateHome, RequireAdmin(nil))
	assert.Equal(t, GateHome, RequireAdmin(&types.User{Role: types.RoleCustomer}))
	assert.Equal(t, GateAllowed, RequireAdmin(&types.User{Role: types.RoleAdmin}))
}
