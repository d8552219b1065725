package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() *TokenService {
	return NewTokenService(&globals.Config{JWTSecret: []byte("test-secret")})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	ts := testTokenService()

	token, err := ts.Issue("u12345")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u12345", userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	ts := testTokenService()
	other := NewTokenService(&globals.Config{JWTSecret: []byte("other-secret")})

	token, err := other.Issue("u12345")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	ts := testTokenService()

	_, err := ts.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	ts := testTokenService()

	claims := &Claims{
		UserID: "u12345",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(expired)
	assert.Error(t, err)
}

func TestVerifyMissingSubject(t *testing.T) {
	ts := testTokenService()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	ts := testTokenService()

	var gotUserID string
	next := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	}

	token, err := ts.Issue("u12345")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			r := httptest.NewRequest(http.MethodGet, "/api/itineraries/my-plans", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			ts.Authenticate(next)(w, r, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u12345", gotUserID)
			} else {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
