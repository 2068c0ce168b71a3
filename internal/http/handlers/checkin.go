package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/checkin"
	"github.com/hongminglow/field-checkin/internal/http/respond"
	"github.com/hongminglow/field-checkin/internal/models/dto"
)

// CheckinHandler exposes the employee check-in lifecycle.
type CheckinHandler struct {
	svc *checkin.Service
}

// NewCheckinHandler constructs the handler.
func NewCheckinHandler(svc *checkin.Service) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

// Register attaches check-in routes, all behind authn.
func (h *CheckinHandler) Register(mux *http.ServeMux, authn Middleware) {
	mux.Handle("GET /api/checkin/clients", authn(http.HandlerFunc(h.handleClients)))
	mux.Handle("GET /api/checkin/active", authn(http.HandlerFunc(h.handleActive)))
	mux.Handle("GET /api/checkin/history", authn(http.HandlerFunc(h.handleHistory)))
	mux.Handle("POST /api/checkin", authn(http.HandlerFunc(h.handleStart)))
	mux.Handle("PUT /api/checkin/checkout", authn(http.HandlerFunc(h.handleStop)))
}

func (h *CheckinHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	var req dto.CheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	res, err := h.svc.Start(r.Context(), identity.UserID, checkin.StartRequest{
		ClientID:  int64(req.ClientID),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
	})
	if err != nil {
		writeCheckinError(w, r, "check-in failed", err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Checked in successfully", dto.CheckinResponse{
		ID:                 res.Checkin.ID,
		DistanceFromClient: res.Checkin.DistanceFromClient,
		Warning:            res.Warning,
		Message:            "Checked in successfully",
	})
}

func (h *CheckinHandler) handleStop(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	closed, err := h.svc.Stop(r.Context(), identity.UserID)
	if err != nil {
		writeCheckinError(w, r, "checkout failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, "Checked out successfully", closed)
}

func (h *CheckinHandler) handleActive(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	active, err := h.svc.Active(r.Context(), identity.UserID)
	if err != nil {
		respond.Internal(w, r, "failed to fetch active check-in", err)
		return
	}
	respond.JSON(w, http.StatusOK, "", active)
}

func (h *CheckinHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	q := r.URL.Query()
	rows, err := h.svc.History(r.Context(), identity.UserID, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeCheckinError(w, r, "failed to fetch history", err)
		return
	}
	respond.JSON(w, http.StatusOK, "", rows)
}

func (h *CheckinHandler) handleClients(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	clients, err := h.svc.Clients(r.Context(), identity.UserID)
	if err != nil {
		respond.Internal(w, r, "failed to fetch clients", err)
		return
	}
	respond.JSON(w, http.StatusOK, "", clients)
}

func writeCheckinError(w http.ResponseWriter, r *http.Request, fallback string, err error) {
	switch {
	case errors.Is(err, checkin.ErrClientRequired),
		errors.Is(err, checkin.ErrAlreadyCheckedIn),
		errors.Is(err, checkin.ErrInvalidDate):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkin.ErrNotAssigned):
		respond.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, checkin.ErrNoActiveCheckin):
		respond.Error(w, http.StatusNotFound, err.Error())
	default:
		respond.Internal(w, r, fallback, err)
	}
}
