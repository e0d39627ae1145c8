package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	c.SetToken("session-token")
	require.NoError(t, c.Get(context.Background(), "/rest/v1/tasks", nil))

	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestClientUnauthorizedBecomesAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	err := c.Get(context.Background(), "/rest/v1/tasks", nil)

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestClientRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"id":"t1","title":"Ship v1"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	var rows []taskRow
	require.NoError(t, c.Get(context.Background(), "/rest/v1/tasks", &rows))

	assert.Equal(t, 2, attempts)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ship v1", rows[0].Title)
}

func TestClientGivesUpWithoutWaitingAfterFinalRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	c.maxRetries = 0

	start := time.Now()
	err := c.Get(context.Background(), "/rest/v1/tasks", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted retries")
	assert.Contains(t, err.Error(), "rate limited")
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), 5*time.Second,
		"the final 429 must not sleep out its Retry-After")
}

func TestClientSurfacesProviderErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"column does not exist"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	err := c.Get(context.Background(), "/rest/v1/tasks", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "column does not exist")
	assert.False(t, IsAuthError(err))
}

func TestProviderSelectEncodesFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewProvider(NewClient(srv.URL, "anon-key"))
	var rows []taskRow
	require.NoError(t, p.Select(context.Background(), "tasks", SelectOptions{
		Eq:      map[string]string{"status": "Todo"},
		OrderBy: "deadline",
		Limit:   10,
	}, &rows))

	assert.Contains(t, gotQuery, "status=eq.Todo")
	assert.Contains(t, gotQuery, "order=deadline.asc")
	assert.Contains(t, gotQuery, "limit=10")
}

func TestProviderInsertAndUpdateAndDelete(t *testing.T) {
	var gotMethods []string
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		gotPaths = append(gotPaths, r.URL.RequestURI())
		w.Write([]byte(`{"id":"t1","title":"Ship v1"}`))
	}))
	defer srv.Close()

	p := NewProvider(NewClient(srv.URL, "anon-key"))
	ctx := context.Background()

	var out taskRow
	require.NoError(t, p.Insert(ctx, "tasks", taskRow{Title: "Ship v1"}, &out))
	assert.Equal(t, "t1", out.ID)

	require.NoError(t, p.Update(ctx, "tasks", "t1", map[string]string{"title": "v2"}, nil))
	require.NoError(t, p.Delete(ctx, "tasks", "t1"))

	assert.Equal(t, []string{"POST", "PATCH", "DELETE"}, gotMethods)
	assert.Equal(t, "/rest/v1/tasks", gotPaths[0])
	assert.Equal(t, "/rest/v1/tasks?id=eq.t1", gotPaths[1])
	assert.Equal(t, "/rest/v1/tasks?id=eq.t1", gotPaths[2])
}

func TestAuthSessionChangeDispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	auth := NewAuth(NewClient(srv.URL, "anon-key"), nil)

	var seen []*Session
	auth.OnSessionChange(func(s *Session) { seen = append(seen, s) })

	auth.dispatch(&Session{UserID: "u1"})
	auth.dispatch(nil)

	require.Len(t, seen, 2)
	assert.Equal(t, "u1", seen[0].UserID)
	assert.Nil(t, seen[1], "nil session signals signed out")
}
