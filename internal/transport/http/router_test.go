package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chat-nosql/internal/config"
	jwtinfra "github.com/go-chat-nosql/internal/infrastructure/jwt"
	"github.com/go-chat-nosql/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		AllowedOrigins: []string{"*"},
	}
	provider, err := jwtinfra.NewProvider(cfg)
	require.NoError(t, err)

	mem := store.NewMemory()
	require.NoError(t, store.EnsureChannels(context.Background(), mem, []store.SeedChannel{
		{Name: "general"},
		{Name: "staff", IsLocked: true},
	}))

	srv := httptest.NewServer(NewRouter(cfg, &Deps{Store: mem, JWTProvider: provider}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*nethttp.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := nethttp.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func registerUser(t *testing.T, srv *httptest.Server, name string) string {
	t.Helper()
	resp, body := doJSON(t, "POST", srv.URL+"/api/register", "", map[string]string{
		"name": name, "password": "password123",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestGuestPostsAndReadsOpenChannel(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, "POST", srv.URL+"/api/channel/general/send", "", map[string]string{"content": "hi"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["timestamp"])

	resp, body = doJSON(t, "GET", srv.URL+"/api/channel/general", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	msgs, _ := body["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "hi", msg["content"])
	assert.Equal(t, "guest", msg["senderId"])
}

func TestLockedChannelMatrix(t *testing.T) {
	srv := newTestServer(t)
	u1 := registerUser(t, srv, "u1-name")
	u2 := registerUser(t, srv, "u2-name")

	// Guest send: 403.
	resp, _ := doJSON(t, "POST", srv.URL+"/api/channel/staff/send", "", map[string]string{"content": "hi"})
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	// Authenticated send: 201.
	resp, _ = doJSON(t, "POST", srv.URL+"/api/channel/staff/send", u1, map[string]string{"content": "ok"})
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	// Guest read: 403.
	resp, _ = doJSON(t, "GET", srv.URL+"/api/channel/staff", "", nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	// Different authenticated user reads and sees u1's message.
	resp, body := doJSON(t, "GET", srv.URL+"/api/channel/staff", u2, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	msgs, _ := body["messages"].([]interface{})
	require.Len(t, msgs, 1)
	assert.Equal(t, "ok", msgs[0].(map[string]interface{})["content"])
}

func TestDmRequiresAuthAndIsSymmetric(t *testing.T) {
	srv := newTestServer(t)
	u1 := registerUser(t, srv, "alice")
	u2 := registerUser(t, srv, "bob")

	// Anonymous DM access is rejected.
	resp, _ := doJSON(t, "GET", srv.URL+"/api/dm/whoever", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	resp, _ = doJSON(t, "POST", srv.URL+"/api/dm/whoever/send", "", map[string]string{"content": "hey"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	// Resolve ids from the directory.
	resp, body := doJSON(t, "GET", srv.URL+"/api/users", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	users, _ := body["users"].([]interface{})
	require.Len(t, users, 2)
	ids := map[string]string{}
	for _, u := range users {
		m := u.(map[string]interface{})
		ids[m["name"].(string)] = m["id"].(string)
	}

	resp, _ = doJSON(t, "POST", fmt.Sprintf("%s/api/dm/%s/send", srv.URL, ids["bob"]), u1, map[string]string{"content": "hey"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	// Bob reads the thread with roles reversed and sees the same message.
	resp, body = doJSON(t, "GET", fmt.Sprintf("%s/api/dm/%s", srv.URL, ids["alice"]), u2, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	msgs, _ := body["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "hey", msg["content"])
	assert.Equal(t, ids["alice"], msg["senderId"])
}

func TestValidationAndErrorMapping(t *testing.T) {
	srv := newTestServer(t)

	// Empty message content.
	resp, _ := doJSON(t, "POST", srv.URL+"/api/channel/general/send", "", map[string]string{"content": "   "})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	// Unknown channel.
	resp, _ = doJSON(t, "GET", srv.URL+"/api/channel/nope", "", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	// Short password on register.
	resp, _ = doJSON(t, "POST", srv.URL+"/api/register", "", map[string]string{"name": "x", "password": "short"})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	// Duplicate registration.
	registerUser(t, srv, "carol")
	resp, _ = doJSON(t, "POST", srv.URL+"/api/register", "", map[string]string{"name": "carol", "password": "password123"})
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)

	// Wrong password on login.
	resp, _ = doJSON(t, "POST", srv.URL+"/api/login", "", map[string]string{"name": "carol", "password": "wrongpass1"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestCreateChannelEndpoint(t *testing.T) {
	srv := newTestServer(t)
	u1 := registerUser(t, srv, "dave")

	resp, _ := doJSON(t, "POST", srv.URL+"/api/channels", "", map[string]interface{}{"name": "ops"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, "POST", srv.URL+"/api/channels", u1, map[string]interface{}{"name": "ops", "isLocked": true})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	ch := body["channel"].(map[string]interface{})
	assert.Equal(t, "ops", ch["name"])
	assert.Equal(t, true, ch["isLocked"])

	resp, body = doJSON(t, "GET", srv.URL+"/api/channels", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	chans, _ := body["channels"].([]interface{})
	assert.Len(t, chans, 3)
}
