package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"eventboard/internal/events"
	"eventboard/internal/logger"
	"eventboard/internal/models"
	"eventboard/internal/utils"
)

type EventService interface {
	ListEvents(ctx context.Context, page, limit int) (*models.EventPage, error)
	AddEvent(ctx context.Context, name, date, location string) error
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, name, date, location string) error
	DeleteEvent(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	EventService EventService
	Logger       *logger.Logger
}

func NewHandler(service EventService, log *logger.Logger) *Handler {
	return &Handler{EventService: service, Logger: log}
}

// List handles GET /events. Unparseable page/limit fall back to the defaults;
// zero and negative values pass through untouched.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", events.DefaultPage)
	limit := queryInt(r, "limit", events.DefaultLimit)

	result, err := h.EventService.ListEvents(r.Context(), page, limit)
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to fetch events: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch events"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// Add handles POST /add. Success redirects to the listing page; validation
// and store failures answer with JSON.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "All fields are required"})
		return
	}

	name := r.PostFormValue("name")
	date := r.PostFormValue("date")
	location := r.PostFormValue("location")

	err := h.EventService.AddEvent(r.Context(), name, date, location)
	switch {
	case err == events.ErrMissingFields, err == events.ErrInvalidLocation:
		utils.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to add event: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to add event"})
	default:
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// EditForm handles GET /edit/{id}: returns the event for the edit form. A
// store error falls back to the listing instead of surfacing.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	event, err := h.EventService.GetEvent(r.Context(), id)
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to fetch event for edit: %v", err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.WriteJSON(w, http.StatusOK, event)
}

// Edit handles POST /edit/{id}: overwrites the row with whatever was
// submitted and bounces back to the listing, or back to the form on error.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/edit/"+idParam, http.StatusFound)
		return
	}

	err = h.EventService.UpdateEvent(r.Context(), id,
		r.PostFormValue("name"), r.PostFormValue("date"), r.PostFormValue("location"))
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to update event: %v", err))
		http.Redirect(w, r, "/edit/"+idParam, http.StatusFound)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete handles POST /delete/{id} and reports which of the three outcomes
// happened: removed, not found, or store failure.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	found, err := h.EventService.DeleteEvent(r.Context(), id)
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to delete event: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to delete the event."))
		return
	}
	if !found {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Event deleted"))
}

// ShareQR handles GET /events/{id}/qr: a PNG QR code pointing at the public
// event-info endpoint, for printing on posters.
func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	if _, err := h.EventService.GetEvent(r.Context(), id); err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	target := fmt.Sprintf("%s://%s/event-info/%d", scheme, r.Host, id)

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to generate QR code: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Failed to generate QR code"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return defaultValue
	}
	return value
}
