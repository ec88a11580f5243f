package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api", 5*time.Second)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, data any, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"data":    data,
		"message": message,
	})
	require.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		writeEnvelope(t, w, http.StatusOK, true, map[string]any{
			"user":  map[string]any{"id": "u1", "email": creds.Email},
			"token": "tok",
		}, "")
	})

	payload, err := c.Login(context.Background(), models.LoginCredentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "u1", payload.User.ID)
	assert.Equal(t, "tok", payload.Token)
}

func TestLogin_StructuredRejection(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, false, nil, "Invalid email or password")
	})

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Invalid email or password", se.Message)
}

// A 200 with success=false is still a structured rejection.
func TestLogin_SuccessFalseOn200(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, nil, "Account locked")
	})

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Account locked", se.Message)
}

func TestLogin_RejectionWithoutMessageUsesFallback(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusInternalServerError, false, nil, "")
	})

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Login failed", se.Message)
}

func TestLogin_MalformedBodyIsTransportError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestLogin_ConnectionRefusedIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewHTTPClient(srv.URL+"/api", time.Second)

	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestRegister_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		writeEnvelope(t, w, http.StatusCreated, true, map[string]any{
			"user":  map[string]any{"id": "u2", "email": "bob@example.com"},
			"token": "tok2",
		}, "")
	})

	payload, err := c.Register(context.Background(), models.RegisterData{Email: "bob@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "u2", payload.User.ID)
	assert.Equal(t, "tok2", payload.Token)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, true, map[string]any{"id": "u1", "firstName": "Alice"}, "")
	})

	user, err := c.Profile(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestUpdateProfile_OmitsEmptyPatchFields(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"firstName": "Alicia"}, body)

		writeEnvelope(t, w, http.StatusOK, true, map[string]any{"id": "u1", "firstName": "Alicia"}, "")
	})

	user, err := c.UpdateProfile(context.Background(), "tok", models.ProfilePatch{FirstName: "Alicia"})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.FirstName)
}

func TestLogout_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, true, nil, "")
	})

	require.NoError(t, c.Logout(context.Background(), "tok"))
}

func TestRefresh_ReturnsNewToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rtok", body["refreshToken"])

		writeEnvelope(t, w, http.StatusOK, true, map[string]any{"token": "fresh"}, "")
	})

	token, err := c.Refresh(context.Background(), "rtok")

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestDo_ContextCancellation(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Login(ctx, models.LoginCredentials{Email: "a@b.c", Password: "x"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
}
