package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/server/users"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, pair, err := s.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondData(w, http.StatusOK, toAuthDTO(user, pair))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, pair, err := s.userService.Register(r.Context(), users.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			respondError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			respondError(w, http.StatusConflict, "An account with this email already exists")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	respondData(w, http.StatusCreated, toAuthDTO(user, pair))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {

	userID := userIDFromContext(r.Context())

	if err := s.userService.Logout(r.Context(), userID); err != nil {
		s.logger.Error(r.Context(), "logout failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondData(w, http.StatusOK, nil)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		respondError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	_, pair, err := s.userService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		s.logger.Error(r.Context(), "refresh failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"expiresAt":    pair.ExpiresAt,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {

	user, err := s.userService.Profile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "profile lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondData(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {

	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
		DateOfBirth string `json:"dateOfBirth"`
		Avatar      string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.userService.UpdateProfile(r.Context(), userIDFromContext(r.Context()), users.ProfilePatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		Avatar:      req.Avatar,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "profile update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	respondData(w, http.StatusOK, toUserDTO(user))
}
