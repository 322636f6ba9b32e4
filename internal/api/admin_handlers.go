package api

import (
	"encoding/json"
	"net/http"

	"carrental/internal/domain"
	"carrental/internal/entities"
	"carrental/internal/service"

	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	Service  *service.AdminService
	validate *validator.Validate
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc, validate: validator.New()}
}

// ProvisionVehicles adds a batch of vehicles of one category to the fleet.
func (h *AdminHandler) ProvisionVehicles(w http.ResponseWriter, r *http.Request) {
	var req ProvisionVehiclesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		badRequest(w, err.Error())
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	fleet, err := h.Service.ProvisionVehicles(category, req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fleet)
}

func (h *AdminHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.ListVehicles()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Service.ListReservations()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]entities.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, entities.ToReservationResponse(res))
	}
	writeJSON(w, http.StatusOK, out)
}

// Reset wipes all reservations and vehicles. Environment resets only.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Reset(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "all reservations and vehicles deleted"})
}
