package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/models"
)

func TestRemoteStore_GetMapsStatusCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/node", r.URL.Path)
		switch r.URL.Query().Get("path") {
		case "exists":
			_ = json.NewEncoder(w).Encode(models.Node{Path: "exists", Value: []byte("v"), Version: 3})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := NewRemoteStore(RemoteConfig{BaseURL: srv.URL})
	ctx := context.Background()

	node, err := r.Get(ctx, []string{"exists"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), node.Version)
	assert.Equal(t, []byte("v"), node.Value)

	_, err = r.Get(ctx, []string{"missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteStore_PutSendsExpectedVersionAndMapsConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		switch r.Header.Get("X-Expected-Version") {
		case "1":
			_ = json.NewEncoder(w).Encode(models.Node{Path: r.URL.Query().Get("path"), Version: 2})
		default:
			w.WriteHeader(http.StatusConflict)
		}
	}))
	defer srv.Close()

	r := NewRemoteStore(RemoteConfig{BaseURL: srv.URL})
	ctx := context.Background()

	node, err := r.Put(ctx, []string{"doc"}, []byte("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), node.Version)

	_, err = r.Put(ctx, []string{"doc"}, []byte("x"), 7)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestRemoteStore_AuthenticateSignsChallenge(t *testing.T) {
	identity, err := crypto.GenerateIdentity("alice")
	require.NoError(t, err)

	var sawAuthHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/session":
			var req sessionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, identity.UserID, req.UserID)
			assert.NotEmpty(t, req.Signature)
			_ = json.NewEncoder(w).Encode(sessionResponse{Token: "test-token"})
		case "/api/node":
			sawAuthHeader = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(models.Node{Version: 1})
		}
	}))
	defer srv.Close()

	r := NewRemoteStore(RemoteConfig{BaseURL: srv.URL})
	ctx := context.Background()

	require.NoError(t, r.Authenticate(ctx, identity))

	_, err = r.Get(ctx, []string{"any"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", sawAuthHeader)
}

func TestRemoteStore_SubscribeDeliversWatchEvents(t *testing.T) {
	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/watch", r.URL.Path)
		polls++
		if polls == 1 {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"cursor": 5,
				"nodes":  []models.Node{{Path: "docs/d1", Version: 2}},
			})
			return
		}
		// later polls hang until the client goes away
		<-r.Context().Done()
	}))
	defer srv.Close()

	r := NewRemoteStore(RemoteConfig{BaseURL: srv.URL})

	events := make(chan models.Node, 1)
	cancel, err := r.Subscribe(context.Background(), []string{"docs", "d1"}, func(n models.Node) {
		events <- n
	})
	require.NoError(t, err)
	defer cancel()

	select {
	case n := <-events:
		assert.Equal(t, "docs/d1", n.Path)
		assert.Equal(t, uint64(2), n.Version)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}
