package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eventboard/internal/logger"
	"eventboard/internal/models"
	"eventboard/internal/session"
	"eventboard/internal/users"
	"eventboard/internal/utils"
)

type UserService interface {
	Register(ctx context.Context, name, surname, email, ageValue string) (*models.User, error)
	Login(ctx context.Context, name, email string) (*models.User, error)
	AdminLogin(ctx context.Context, name, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Handler owns the account endpoints and the session lifecycle around them.
// Auth failures on these form endpoints answer with plain text, matching the
// contract the front ends consume.
type Handler struct {
	Users    UserService
	Sessions session.Store
	Cookies  *session.Cookies
	Logger   *logger.Logger
}

func NewHandler(service UserService, store session.Store, cookies *session.Cookies, log *logger.Logger) *Handler {
	return &Handler{Users: service, Sessions: store, Cookies: cookies, Logger: log}
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, users.ErrMissingFields.Error(), http.StatusBadRequest)
		return
	}

	_, err := h.Users.Register(r.Context(),
		r.PostFormValue("name"), r.PostFormValue("surname"),
		r.PostFormValue("email"), r.PostFormValue("age"))
	switch {
	case err == users.ErrMissingFields, err == users.ErrInvalidAge, err == users.ErrEmailExists:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.Logger.Error("USERS", fmt.Sprintf("Failed to register user: %v", err))
		http.Error(w, "Server error.", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Login handles POST /login: on a match, the session carries the user's id
// and display name.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, users.ErrInvalidCredentials.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Users.Login(r.Context(), r.PostFormValue("name"), r.PostFormValue("email"))
	if err == users.ErrInvalidCredentials {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Error during login: %v", err))
		http.Error(w, "Unexpected error", http.StatusInternalServerError)
		return
	}

	s := h.currentOrNewSession(r)
	s.UserID = user.ID
	s.UserName = user.Name

	if err := h.saveSession(w, r, s); err != nil {
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout: destroys the server-side session and expires
// the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, err := h.Cookies.Read(r); err == nil {
		if err := h.Sessions.Destroy(r.Context(), id); err != nil {
			h.Logger.Error("SESSION", fmt.Sprintf("Error during logout: %v", err))
			http.Error(w, "Unexpected error", http.StatusInternalServerError)
			return
		}
	}

	h.Cookies.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// AdminLoginForm handles GET /admin-login. The form itself lives in the
// external presentation layer; this is the data contract behind it.
func (h *Handler) AdminLoginForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Admin login"))
}

// AdminLogin handles POST /admin-login: same (name, email) lookup as login
// plus the role check, setting a distinct admin id on the session.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid name or email", http.StatusBadRequest)
		return
	}

	user, err := h.Users.AdminLogin(r.Context(), r.PostFormValue("name"), r.PostFormValue("email"))
	if err == users.ErrInvalidCredentials {
		http.Error(w, "Invalid name or email", http.StatusBadRequest)
		return
	}
	if err == users.ErrNotAdmin {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Error during admin login: %v", err))
		http.Error(w, "Unexpected error", http.StatusInternalServerError)
		return
	}

	s := h.currentOrNewSession(r)
	s.AdminID = user.ID

	if err := h.saveSession(w, r, s); err != nil {
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// AdminList handles GET /admin: every user, unpaginated.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Failed to fetch users: %v", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": list})
}

// AdminDelete handles POST /admin/delete/{id}: deletes without an existence
// check and redirects back to the listing either way.
func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	if err := h.Users.DeleteUser(r.Context(), id); err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Failed to delete user: %v", err))
		http.Error(w, "Unexpected error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

// currentOrNewSession reuses the request's decoded session when there is
// one, so admin login can stack onto a regular login and vice versa.
func (h *Handler) currentOrNewSession(r *http.Request) *session.Session {
	if s, ok := session.FromContext(r.Context()); ok {
		copied := *s
		return &copied
	}
	return &session.Session{ID: uuid.New().String()}
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, s *session.Session) error {
	if err := h.Sessions.Save(r.Context(), s); err != nil {
		h.Logger.Error("SESSION", fmt.Sprintf("Failed to save session: %v", err))
		http.Error(w, "Unexpected error", http.StatusInternalServerError)
		return err
	}
	if err := h.Cookies.Issue(w, s.ID); err != nil {
		h.Logger.Error("SESSION", fmt.Sprintf("Failed to issue session cookie: %v", err))
		http.Error(w, "Unexpected error", http.StatusInternalServerError)
		return err
	}
	return nil
}
