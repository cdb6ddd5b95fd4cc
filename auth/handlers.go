package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mineshop/apperr"
	"mineshop/middleware"
	"mineshop/models"
	"mineshop/session"
	"mineshop/store"
	"mineshop/utils"

	"mineshop/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const accessTokenTTL = 12 * time.Hour

// Handler carries the auth endpoints' dependencies.
type Handler struct {
	Store      store.Store
	Challenges *Challenges
}

func NewHandler(st store.Store) *Handler {
	return &Handler{Store: st, Challenges: NewChallenges()}
}

// GET /api/auth/challenge
func (h *Handler) Challenge(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Challenges.New())
}

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := Register(r.Context(), h.Store, in, h.Challenges)
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	token, err := generateAccessToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusCreated, map[string]any{
		"token":  token,
		"userid": user.UserID,
		"user":   publicUser(user),
	}, "Registration successful", nil)
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || input.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := Login(r.Context(), h.Store, input.Username, input.Password)
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), "Invalid username or password")
		return
	}

	token, err := generateAccessToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token":  token,
		"userid": user.UserID,
		"user":   publicUser(user),
	}, "Login successful", nil)
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := Logout(r.Context(), h.Store); err != nil {
		log.Printf("logout: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}

// POST /api/auth/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
		Confirm     string `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := ChangePassword(r.Context(), h.Store, userID, input.OldPassword, input.NewPassword, input.Confirm); err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Password changed", nil)
}

// GET /api/auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := session.Resolve(r.Context(), h.Store)
	if user == nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"anonymous": true})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, publicUser(*user))
}

func generateAccessToken(user models.User) (string, error) {
	role := []string{"user"}
	if user.IsAdmin {
		role = append(role, "admin")
	}

	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// publicUser strips the credential material from API responses.
func publicUser(u models.User) map[string]any {
	return map[string]any{
		"id":           u.UserID,
		"username":     u.Username,
		"email":        u.Email,
		"isAdmin":      u.IsAdmin,
		"balance":      u.Balance,
		"purchases":    u.Purchases,
		"registeredAt": u.RegisteredAt,
	}
}
