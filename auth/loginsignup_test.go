package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyago/db"
	"voyago/globals"
	"voyago/middleware"
	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	byEmail map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.UserID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return db.ErrDuplicate
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

type authResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error"`
	User    struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func testHandler(t *testing.T) (*Handler, *fakeUsers) {
	t.Helper()
	cfg := &globals.Config{JWTSecret: []byte("test-secret"), BcryptCost: bcrypt.MinCost}
	users := newFakeUsers()
	db.Users = users
	return NewHandler(cfg, middleware.NewTokenService(cfg)), users
}

func doRegister(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, authResponse) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Register(w, r, nil)
	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func doLogin(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, authResponse) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, r, nil)
	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRegisterSuccess(t *testing.T) {
	h, _ := testHandler(t)

	w, resp := doRegister(t, h, `{"name":"Ada","email":"ada@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.Equal(t, "ada@x.com", resp.User.Email)
	require.NotEmpty(t, resp.User.ID)

	// the returned token must verify to the new user's id
	subject, err := h.Tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	h, users := testHandler(t)

	doRegister(t, h, `{"name":"Ada","email":"ada@x.com","password":"secret1"}`)

	stored := users.byEmail["ada@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	// the hash must not leak through serialization
	out, err := json.Marshal(stored)
	require.NoError(t, err)
	assert.NotContains(t, string(out), stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"ada@x.com","password":"secret1"}`},
		{"missing email", `{"name":"Ada","password":"secret1"}`},
		{"missing password", `{"name":"Ada","email":"ada@x.com"}`},
		{"email without at sign", `{"name":"Ada","email":"ada.x.com","password":"secret1"}`},
		{"password too short", `{"name":"Ada","email":"ada@x.com","password":"12345"}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := testHandler(t)
			w, resp := doRegister(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _ := testHandler(t)

	w, _ := doRegister(t, h, `{"name":"Ada","email":"ada@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// second registration fails regardless of the other fields
	w, resp := doRegister(t, h, `{"name":"Someone Else","email":"ada@x.com","password":"different9"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestLoginSuccess(t *testing.T) {
	h, _ := testHandler(t)

	_, registered := doRegister(t, h, `{"name":"Ada","email":"ada@x.com","password":"secret1"}`)

	w, resp := doLogin(t, h, `{"email":"ada@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	subject, err := h.Tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, subject)
}

func TestLoginWrongCredentialsIndistinguishable(t *testing.T) {
	h, _ := testHandler(t)
	doRegister(t, h, `{"name":"Ada","email":"ada@x.com","password":"secret1"}`)

	wWrongPass, respWrongPass := doLogin(t, h, `{"email":"ada@x.com","password":"wrongpass"}`)
	wUnknown, respUnknown := doLogin(t, h, `{"email":"nobody@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	// identical message in both cases so accounts cannot be enumerated
	assert.Equal(t, respWrongPass.Error, respUnknown.Error)
	assert.Equal(t, wWrongPass.Body.String(), wUnknown.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	h, _ := testHandler(t)

	w, resp := doLogin(t, h, `{"email":"ada@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}
