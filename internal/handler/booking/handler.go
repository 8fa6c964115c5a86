package booking

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/model/booking"
	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
	bookingService "github.com/mindbridge/campus-care/backend/internal/service/booking"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Handler exposes the appointment wizard.
type Handler struct {
	bookingSvc *bookingService.Service
	slots      *booking.SlotCatalog
	logger     *zap.Logger
}

// New creates a booking handler.
func New(bookingSvc *bookingService.Service, slots *booking.SlotCatalog, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{bookingSvc: bookingSvc, slots: slots, logger: logger}
}

// RegisterRoutes mounts the booking routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/time-slots", h.handleListSlots)
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.handleStart)
		r.Route("/{bookingID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/counselor", h.handleSelectCounselor)
			r.Put("/schedule", h.handleSchedule)
			r.Put("/notes", h.handleNotes)
			r.Post("/advance", h.handleAdvance)
			r.Post("/back", h.handleBack)
			r.Get("/summary", h.handleSummary)
			r.Post("/confirm", h.handleConfirm)
			r.Post("/cancel", h.handleCancel)
		})
	})
}

type counselorRequest struct {
	CounselorID string `json:"counselorId" validate:"required"`
}

type scheduleRequest struct {
	Date        *booking.Date `json:"date"`
	TimeSlot    string        `json:"timeSlot"`
	SessionType string        `json:"sessionType" validate:"omitempty,oneof=online phone in-person"`
}

type notesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

func (h *Handler) handleListSlots(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.slots.List())
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	state, err := h.bookingSvc.Start(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, state)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	state, err := h.bookingSvc.Get(r.Context(), chi.URLParam(r, "bookingID"))
	h.respondState(w, state, err)
}

func (h *Handler) handleSelectCounselor(w http.ResponseWriter, r *http.Request) {
	var payload counselorRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	state, err := h.bookingSvc.SelectCounselor(r.Context(), chi.URLParam(r, "bookingID"), payload.CounselorID)
	h.respondState(w, state, err)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var payload scheduleRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Date == nil && payload.TimeSlot == "" && payload.SessionType == "" {
		utils.RespondError(w, http.StatusBadRequest, "one of date, timeSlot or sessionType is required")
		return
	}
	state, err := h.bookingSvc.UpdateSchedule(r.Context(), chi.URLParam(r, "bookingID"), bookingService.ScheduleUpdate{
		Date:        payload.Date,
		TimeSlot:    payload.TimeSlot,
		SessionType: counselor.SessionType(payload.SessionType),
	})
	h.respondState(w, state, err)
}

func (h *Handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	var payload notesRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	state, err := h.bookingSvc.SetNotes(r.Context(), chi.URLParam(r, "bookingID"), payload.Notes)
	h.respondState(w, state, err)
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	state, err := h.bookingSvc.Advance(r.Context(), chi.URLParam(r, "bookingID"))
	if errors.Is(err, bookingService.ErrNotReady) {
		utils.RespondJSON(w, http.StatusConflict, map[string]any{
			"error": err.Error(),
			"state": state,
		})
		return
	}
	h.respondState(w, state, err)
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	state, err := h.bookingSvc.Back(r.Context(), chi.URLParam(r, "bookingID"))
	h.respondState(w, state, err)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.bookingSvc.Summary(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.bookingSvc.Confirm(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, confirmation)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	state, err := h.bookingSvc.Cancel(r.Context(), chi.URLParam(r, "bookingID"))
	h.respondState(w, state, err)
}

func (h *Handler) respondState(w http.ResponseWriter, state bookingService.State, err error) {
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, state)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingService.ErrBookingNotFound):
		utils.RespondError(w, http.StatusNotFound, "booking not found")
	case errors.Is(err, bookingService.ErrCounselorNotFound),
		errors.Is(err, bookingService.ErrDateInPast),
		errors.Is(err, bookingService.ErrSlotUnavailable),
		errors.Is(err, bookingService.ErrInvalidSessionType):
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, bookingService.ErrWrongStep), errors.Is(err, bookingService.ErrNotReady):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("booking request failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
