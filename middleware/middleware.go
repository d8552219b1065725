package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"voyago/globals"
	"voyago/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Tokens are valid for 30 days from issuance.
const tokenTTL = 30 * 24 * time.Hour

// JWT claims
type Claims struct {
	UserID string `json:"userid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity tokens. The signing secret
// comes from the process configuration and never rotates at runtime.
type TokenService struct {
	secret []byte
}

func NewTokenService(cfg *globals.Config) *TokenService {
	return &TokenService{secret: cfg.JWTSecret}
}

func (ts *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify returns the subject user id of a valid token. Malformed, expired and
// wrongly signed tokens all fail; callers do not distinguish the cases.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return ts.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// Authenticate gates a handler behind bearer-token verification. On success
// the subject user id is stored in the request context; the user record is
// not re-checked against the store.
func (ts *TokenService) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		userID, err := ts.Verify(tokenString[7:])
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, userID)
		next(w, r.WithContext(ctx), ps)
	}
}
