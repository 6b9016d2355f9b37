package handlers

import (
	"errors"
	"net/http"

	"github.com/lucasvieira94/nola-god-level/internal/auth"
	"github.com/lucasvieira94/nola-god-level/internal/models"
	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler godoc
// @Summary Register new user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		writeError(w, http.StatusBadRequest, "username or password too short")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := userRepo.CreateUser(r.Context(), models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
	})
	if errors.Is(err, repo.ErrDuplicateUsername) {
		writeError(w, http.StatusConflict, "username already exists")
		return
	}
	if err != nil {
		log.Error("user registration failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByUsername(r.Context(), creds.Username)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
