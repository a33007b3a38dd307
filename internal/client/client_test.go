package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/services"
)

// fakeAPI mimics the server's auth contract: one valid token, 401 otherwise.
func fakeAPI(t *testing.T, validToken *atomic.Value) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+validToken.Load().(string)
	}
	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	// Go 1.21's ServeMux has no method patterns; guard explicitly.
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		})
	}

	handle(http.MethodPost, "/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token": validToken.Load().(string),
			"user":         User{ID: 7, Name: "Alice", Email: body["email"], Coins: 3},
		})
	})
	handle(http.MethodGet, "/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"notifications": []services.NotificationView{{ID: 1, Title: "hello"}},
		})
	})
	handle(http.MethodPost, "/api/roads", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		var in services.RoadInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if len(in.Coordinates) < 2 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at least 2 points are required"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"road": Road{ID: 42, Name: in.Name, Type: in.Type, Coordinates: in.Coordinates, Status: "pending"},
		})
	})
	handle(http.MethodGet, "/api/roads/approved", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"roads": []Road{{ID: 1, Name: "Main St", Status: "approved"}},
		})
	})
	handle(http.MethodGet, "/api/pois/approved", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"pois": []POI{{ID: 2, Name: "Corner Cafe", Status: "approved"}},
		})
	})

	return httptest.NewServer(mux)
}

func TestLoginStoresCredential(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "tok-1", c.Token())
	require.True(t, sess.Active())
	require.Equal(t, "Alice", sess.User().Name)

	views, err := c.Notifications(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
}

func TestLoginFailureLeavesNoCredential(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, apperrors.ErrAuth)
	require.Empty(t, c.Token())
}

func TestAuthExpiryTearsDownSession(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.True(t, sess.Active())

	// Server-side invalidation: next call gets a 401.
	tok.Store("tok-2")
	_, err = c.Notifications(context.Background())
	require.ErrorIs(t, err, apperrors.ErrAuth)

	// Credential cleared, session context canceled.
	require.Empty(t, c.Token())
	require.False(t, sess.Active())
}

func TestSubmitDraftRoundTrip(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	draft := NewRoadDraft()

	// Cannot advance with fewer than 2 points; no request is made.
	_, err = sess.Submit(context.Background(), draft, "Main St", "highway")
	require.True(t, apperrors.IsValidation(err))

	require.NoError(t, draft.Tracker.Add(35.70, 51.40))
	require.NoError(t, draft.Tracker.Add(35.71, 51.41))

	road, err := sess.Submit(context.Background(), draft, "Main St", "highway")
	require.NoError(t, err)
	require.Equal(t, "pending", road.Status)
	require.Equal(t, "Main St", road.Name)
}

func TestFetchMapSnapshot(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	snap, err := c.FetchMapSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Roads, 1)
	require.Len(t, snap.POIs, 1)
	require.False(t, snap.Taken.IsZero())
}

func TestLogoutClearsCredential(t *testing.T) {
	var tok atomic.Value
	tok.Store("tok-1")
	srv := fakeAPI(t, &tok)
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	sess.Logout()
	require.Empty(t, c.Token())
	require.False(t, sess.Active())
}
