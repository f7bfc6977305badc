package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rambadrinathan/vatika-studio/logger"
	"github.com/Rambadrinathan/vatika-studio/middleware"
	"github.com/Rambadrinathan/vatika-studio/services"
	"github.com/Rambadrinathan/vatika-studio/util"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newAuthService() *services.AuthService {
	return services.NewAuthService(middleware.JWTSecret(), util.GenerateJWT)
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email and password are required"})
		return
	}

	user, token, err := newAuthService().Register(req.Email, req.Name, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}

	logger.Info("User registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"user": user, "token": token})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, token, err := newAuthService().Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to log in user", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
}
