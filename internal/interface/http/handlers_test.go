package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakapradana/goaltrack/internal/application"
	"github.com/rakapradana/goaltrack/internal/infrastructure/memory"
	handlers "github.com/rakapradana/goaltrack/internal/interface/http"
	"github.com/rakapradana/goaltrack/internal/router"
	"github.com/rakapradana/goaltrack/internal/router/modules"
	"github.com/rakapradana/goaltrack/pkg/helpers"
	"github.com/rakapradana/goaltrack/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestEngine wires the real route modules against in-memory repositories.
func newTestEngine(jwtTTL time.Duration) (*gin.Engine, *helpers.JWTManager) {
	logger := quietLogger()
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: jwtTTL}

	authSvc := application.NewAuthService(memory.NewUserRepository(), jwt, nil, logger)
	goalSvc := application.NewGoalService(memory.NewGoalRepository(), logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	reg.Add(modules.NewGoalModule(handlers.NewGoalHandler(goalSvc, logger), jwt))
	reg.RegisterAll()
	return engine, jwt
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func registerUser(t *testing.T, engine *gin.Engine, username, email string) (id, token string) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username, "email": email, "password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	e := decode(t, w)
	require.NoError(t, json.Unmarshal(e.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.User.ID, data.Token
}

func TestRegister(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "alice@x.com", "password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	e := decode(t, w)
	assert.True(t, e.Success)

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "impostor", "email": "alice@x.com", "password": "password2",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email already registered", decode(t, w).Message)
	})

	t.Run("invalid payload", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "bob", "password": "password1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)
	registerUser(t, engine, "alice", "alice@x.com")

	t.Run("unknown email", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "nobody@x.com", "password": "password1",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "alice@x.com", "password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "alice@x.com", "password": "password1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.NotEmpty(t, data.Token)
	})
}

func TestProfile_NeverLeaksPassword(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)
	_, token := registerUser(t, engine, "alice", "alice@x.com")

	w := doJSON(t, engine, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@x.com")
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$") // bcrypt prefix
}

func TestProtectedEcho(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)
	id, token := registerUser(t, engine, "alice", "alice@x.com")

	w := doJSON(t, engine, http.MethodGet, "/api/protected", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, id, data.UserID)
}

func TestAuthGate(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/goals", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/goals", "not.a.jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiring, _ := newTestEngine(-1 * time.Second)
		_, token := registerUser(t, expiring, "alice", "alice@x.com")
		w := doJSON(t, expiring, http.MethodGet, "/api/goals", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGoalCRUD(t *testing.T) {
	engine, _ := newTestEngine(time.Hour)
	aliceID, alice := registerUser(t, engine, "alice", "alice@x.com")
	_, bob := registerUser(t, engine, "bob", "bob@x.com")

	// empty text is a validation error
	w := doJSON(t, engine, http.MethodPost, "/api/goals", alice, gin.H{"text": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// create
	w = doJSON(t, engine, http.MethodPost, "/api/goals", alice, gin.H{"text": "run 5k"})
	require.Equal(t, http.StatusCreated, w.Code)
	var goal struct {
		ID     string `json:"id"`
		Text   string `json:"text"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &goal))
	assert.Equal(t, aliceID, goal.UserID)

	// bob cannot see alice's goals
	w = doJSON(t, engine, http.MethodGet, "/api/goals", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeGoals(t, w))

	// a missing goal is 404 regardless of caller
	w = doJSON(t, engine, http.MethodPut, "/api/goals/missing-id", bob, gin.H{"text": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// an existing foreign goal is 403, not 404: existence before authorization
	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/goals/%s", goal.ID), bob, gin.H{"text": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/goals/%s", goal.ID), bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// owner update
	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/goals/%s", goal.ID), alice, gin.H{"text": "run 10k"})
	require.Equal(t, http.StatusOK, w.Code)

	// owner delete acknowledges with the id
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/goals/%s", goal.ID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ack struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &ack))
	assert.Equal(t, goal.ID, ack.ID)

	// list is empty afterwards
	w = doJSON(t, engine, http.MethodGet, "/api/goals", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeGoals(t, w))
}

// decodeGoals tolerates the envelope omitting an empty data array.
func decodeGoals(t *testing.T, w *httptest.ResponseRecorder) []json.RawMessage {
	t.Helper()
	e := decode(t, w)
	if len(e.Data) == 0 {
		return nil
	}
	var goals []json.RawMessage
	require.NoError(t, json.Unmarshal(e.Data, &goals))
	return goals
}
