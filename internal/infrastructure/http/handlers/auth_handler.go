package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Sloan357/task-management-api/internal/application/auth"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register *auth.RegisterUser
	login    *auth.Login
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, login *auth.Login, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		validate: validator.New(),
		log:      log,
	}
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,min=1,max=50"`
		Email    string `json:"email" validate:"required,email,max=255"`
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid signup fields")
		return
	}
	user, err := h.register.Execute(r.Context(), auth.RegisterUserInput{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	middleware.RecordAuthAttempt("signup", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	h.log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(timeFormat),
		UpdatedAt: user.UpdatedAt.Format(timeFormat),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,max=50"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid login fields")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Username: body.Username,
		Password: body.Password,
	})
	middleware.RecordAuthAttempt("login", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"expires_in":   result.ExpiresIn,
	})
}
