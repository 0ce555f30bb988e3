package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/apperr"
)

func TestRemoteResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/me", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"userId":12,"username":"ana","role":"Tourist"}`))
		case "Bearer empty":
			w.Write([]byte(`{}`))
		default:
			http.Error(w, "invalid token", http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	svc := NewAuthService(srv.URL, 2*time.Second)
	ctx := context.Background()

	identity, err := svc.Resolve(ctx, "Bearer good")
	require.NoError(t, err)
	assert.EqualValues(t, 12, identity.UserID)
	assert.Equal(t, "ana", identity.Username)
	assert.Equal(t, "Tourist", identity.Role)

	for _, header := range []string{"", "Bearer bad", "Bearer empty"} {
		_, err := svc.Resolve(ctx, header)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden), "header %q", header)
	}
}

func TestRemoteResolveCollaboratorDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // resolver must treat a dead collaborator as "no identity"

	svc := NewAuthService(srv.URL, time.Second)
	_, err := svc.Resolve(context.Background(), "Bearer good")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestFollowerClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer good", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/follow/followedByMe":
			w.Write([]byte(`[{"id":2,"username":"marko","followedByMe":true},{"id":5,"username":"ivan","followedByMe":true}]`))
		case "/api/follow/followedByMe/2":
			w.Write([]byte(`{"value":true}`))
		case "/api/follow/followedByMe/9":
			w.Write([]byte(`{"value":false}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := NewFollowerService(srv.URL, 2*time.Second)
	ctx := context.Background()

	ids, err := svc.FollowedByMe(ctx, "Bearer good")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, ids)

	follows, err := svc.IsFollowedByMe(ctx, "Bearer good", 2)
	require.NoError(t, err)
	assert.True(t, follows)

	follows, err = svc.IsFollowedByMe(ctx, "Bearer good", 9)
	require.NoError(t, err)
	assert.False(t, follows)
}

func TestFollowerClientUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewFollowerService(srv.URL, time.Second)

	_, err := svc.IsFollowedByMe(context.Background(), "Bearer good", 2)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstream))

	_, err = svc.FollowedByMe(context.Background(), "Bearer good")
	assert.True(t, apperr.IsKind(err, apperr.KindUpstream))
}
