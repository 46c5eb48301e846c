package nav

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/api"
)

func TestBadgeLabel(t *testing.T) {
	var b Badge
	assert.Equal(t, "Cart (0)", b.Label())

	b.Set(3)
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, "Cart (3)", b.Label())
}

func TestRefresh(t *testing.T) {
	t.Run("counts cart lines", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"id":1,"quantity":2,"product":{"id":1,"name":"Mug","price":10}},
				{"id":2,"quantity":1,"product":{"id":2,"name":"Pen","price":5}}
			]`))
		}))
		t.Cleanup(srv.Close)
		client, err := api.New(srv.URL, time.Second)
		require.NoError(t, err)

		// The badge counts lines, not units.
		assert.Equal(t, 2, Refresh(context.Background(), client))
	})

	t.Run("failure yields zero", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)
		client, err := api.New(srv.URL, time.Second)
		require.NoError(t, err)

		assert.Equal(t, 0, Refresh(context.Background(), client))
	})
}
