package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventboard/internal/logger"
	"eventboard/internal/models"
	"eventboard/internal/participation"
	"eventboard/internal/session"
	"eventboard/internal/utils"
)

type ParticipationService interface {
	SignUp(ctx context.Context, eventID, userID int64) error
	EventInfo(ctx context.Context, eventID int64) ([]models.ParticipantInfo, error)
}

type Handler struct {
	Participation ParticipationService
	Logger        *logger.Logger
}

func NewHandler(service ParticipationService, log *logger.Logger) *Handler {
	return &Handler{Participation: service, Logger: log}
}

// SignUp handles POST /sign-up/{id}. The user id comes from the session the
// auth gate already decoded.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid event id"))
		return
	}

	s, _ := session.FromContext(r.Context())

	err = h.Participation.SignUp(r.Context(), eventID, s.UserID)
	switch {
	case err == participation.ErrAlreadySignedUp:
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("You are already signed up for this event"))
	case err != nil:
		h.Logger.Error("SIGNUP", fmt.Sprintf("Failed to sign up for event: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to sign up for the event"))
	default:
		utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Successfully signed up"))
	}
}

// EventInfo handles GET /event-info/{id}: the public participant listing.
// The response is a bare JSON array, empty when nobody signed up.
func (h *Handler) EventInfo(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, []models.ParticipantInfo{})
		return
	}

	infos, err := h.Participation.EventInfo(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("SIGNUP", fmt.Sprintf("Failed to fetch participants: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, []models.ParticipantInfo{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, infos)
}
