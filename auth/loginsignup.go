package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// Both unknown email and wrong password return this exact message so callers
// cannot enumerate accounts.
const invalidCredentials = "Invalid email or password"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input registerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}
	if !strings.Contains(input.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if len(input.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Pre-check for a friendlier error; the unique index still backstops races.
	if _, err := db.Users.FindByEmail(ctx, input.Email); err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "This email address is already in use")
		return
	} else if !errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), h.BcryptCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := &models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := db.Users.Insert(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			utils.RespondWithError(w, http.StatusBadRequest, "This email address is already in use")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Name); err != nil {
		log.Printf("Failed to cache username: %v", err)
	}

	tokenString, err := h.Tokens.Issue(user.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"token":   tokenString,
		"user": utils.M{
			"id":    user.UserID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide your email and password")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	storedUser, err := db.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	tokenString, err := h.Tokens.Issue(storedUser.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   tokenString,
		"user": utils.M{
			"id":    storedUser.UserID,
			"name":  storedUser.Name,
			"email": storedUser.Email,
		},
	})
}
