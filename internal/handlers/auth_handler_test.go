package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Prabhat-16/Careerion-Backend/internal/auth"
	"github.com/Prabhat-16/Careerion-Backend/internal/middleware"
	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserStore backs the auth handler tests without a database.
type memoryUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[uint]*models.User{}, nextID: 1}
}

func (m *memoryUserStore) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserStore) FindByID(id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memoryUserStore) Update(user *models.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUserStore) Delete(id uint) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUserStore) List(p repository.ListParams) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func authRouter() (*gin.Engine, *memoryUserStore) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := newMemoryUserStore()
	tokens := auth.NewTokenService("test-secret")
	users := services.NewUserService(store, tokens, nil, log)
	handler := NewAuthHandler(users)

	r := gin.New()
	r.POST("/api/auth/signup", handler.Signup)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(tokens), handler.Me)
	return r, store
}

func TestSignupHTTP_Success(t *testing.T) {
	r, store := authRouter()

	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Jane", "email": "jane@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string          `json:"message"`
		Token   string          `json:"token"`
		User    json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	// password never serialized
	assert.NotContains(t, strings.ToLower(string(body.User)), "password")
	assert.NotContains(t, string(body.User), "hunter22")

	stored, err := store.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
}

func TestSignupHTTP_ShortPassword(t *testing.T) {
	r, _ := authRouter()
	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Jane", "email": "jane@example.com", "password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 6 characters")
}

func TestSignupHTTP_MissingFields(t *testing.T) {
	r, _ := authRouter()
	w := postJSON(r, "/api/auth/signup", gin.H{"email": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupHTTP_DuplicateEmail(t *testing.T) {
	r, _ := authRouter()
	payload := gin.H{"name": "Jane", "email": "jane@example.com", "password": "hunter22"}

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/signup", payload).Code)

	w := postJSON(r, "/api/auth/signup", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLoginHTTP_WrongCredentialsShareBody(t *testing.T) {
	r, _ := authRouter()
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/signup", gin.H{
		"name": "Jane", "email": "jane@example.com", "password": "hunter22",
	}).Code)

	unknown := postJSON(r, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "hunter22"})
	wrongPw := postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "nope123"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestMeHTTP(t *testing.T) {
	r, _ := authRouter()

	signup := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Jane", "email": "jane@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, signup.Code)
	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(signup.Body.Bytes(), &created))

	// no token
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// tampered token
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+created.Token+"tampered")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+created.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
}

func TestLogoutHTTP(t *testing.T) {
	r, _ := authRouter()
	w := postJSON(r, "/api/auth/logout", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)
}
