package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carrental/internal/domain"
	"carrental/internal/entities"
	"carrental/internal/service"
	"carrental/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserReservationHandler struct {
	Service  *service.ReservationService
	Notify   *service.NotifyService
	validate *validator.Validate
}

func NewUserReservationHandler(svc *service.ReservationService, notify *service.NotifyService) *UserReservationHandler {
	return &UserReservationHandler{Service: svc, Notify: notify, validate: validator.New()}
}

// GetOptions lists one quote per category, cheapest first.
// GET /api/options?from_date=2025-01-01&to_date=2025-01-03&mileage=100&license_years=4
func (h *UserReservationHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromDate, err := utils.ParseDate(q.Get("from_date"))
	if err != nil {
		badRequest(w, "invalid from_date")
		return
	}
	toDate, err := utils.ParseDate(q.Get("to_date"))
	if err != nil {
		badRequest(w, "invalid to_date")
		return
	}
	mileage, err := parseIntParam(q.Get("mileage"))
	if err != nil {
		badRequest(w, "invalid mileage")
		return
	}
	licenseYears, err := parseIntParam(q.Get("license_years"))
	if err != nil {
		badRequest(w, "invalid license_years")
		return
	}

	options, err := h.Service.GetOptions(fromDate, toDate, mileage, licenseYears)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// CreateReservation books a specific vehicle when vehicle_id is set,
// otherwise the first free vehicle of the requested category.
func (h *UserReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		badRequest(w, err.Error())
		return
	}
	// date format is enforced by the validator above
	fromDate, _ := utils.ParseDate(req.FromDate)
	toDate, _ := utils.ParseDate(req.ToDate)

	var (
		res *domain.Reservation
		err error
	)
	if req.VehicleID != "" {
		vehicleID, parseErr := uuid.Parse(req.VehicleID)
		if parseErr != nil {
			badRequest(w, "invalid vehicle_id")
			return
		}
		res, err = h.Service.ReserveByVehicleID(vehicleID, fromDate, toDate, req.Mileage, req.LicenseYears)
	} else {
		category, parseErr := domain.ParseCategory(req.Category)
		if parseErr != nil {
			writeError(w, parseErr)
			return
		}
		res, err = h.Service.ReserveByCategory(category, fromDate, toDate, req.Mileage, req.LicenseYears)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	h.Notify.ReservationChanged(req.Contact, res, "confirmed")
	writeJSON(w, http.StatusCreated, entities.ToReservationResponse(res))
}

func (h *UserReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	res, err := h.Service.GetReservation(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ToReservationResponse(res))
}

// UpdateReservation rebooks the same vehicle with new parameters. The old
// reservation is gone even when the new range is rejected.
func (h *UserReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	var req entities.ModifyReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		badRequest(w, err.Error())
		return
	}
	fromDate, _ := utils.ParseDate(req.FromDate)
	toDate, _ := utils.ParseDate(req.ToDate)

	res, err := h.Service.ModifyReservation(id, fromDate, toDate, req.Mileage, req.LicenseYears)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Notify.ReservationChanged(req.Contact, res, "updated")
	writeJSON(w, http.StatusOK, entities.ToReservationResponse(res))
}

func (h *UserReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	var req entities.CancelReservationRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // contact body is optional

	res, err := h.Service.CancelReservation(id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Notify.ReservationChanged(req.Contact, res, "cancelled")
	writeJSON(w, http.StatusOK, entities.ToReservationResponse(res))
}

func reservationID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func parseIntParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
