package api

import (
	"encoding/json"
	"net/http"

	apperrors "carrental/internal/errors"
)

type ProvisionVehiclesRequest struct {
	Category string `json:"category" validate:"required"`
	Count    int    `json:"count" validate:"required,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	httpErr := apperrors.FromDomain(err)
	writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
