package handler

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/AGILEDROP/working-plusplus/internal/database"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// Login authentifie un compte dashboard (email + mot de passe) et ouvre une
// session. Les tokens de session protègent les endpoints d'écriture.
func Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Email == "" || payload.Password == "" {
		utils.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := r.Context()

	var userID, passwordHash string
	err := database.DB.QueryRow(ctx,
		`SELECT id, password_hash FROM users
		 WHERE email=$1 AND password_hash IS NOT NULL AND deleted_at IS NULL`,
		payload.Email,
	).Scan(&userID, &passwordHash)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(payload.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, userID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"token": token})
}

// Logout invalide la session courante.
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.Message(w, "logged out")
}
