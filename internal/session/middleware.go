package session

import (
	"fmt"
	"net/http"

	"eventboard/internal/i18n"
	"eventboard/internal/logger"
	"eventboard/internal/utils"
)

// Localizer translates gate messages. *i18n.Translator satisfies it; a nil
// Localizer falls back to the English defaults.
type Localizer interface {
	T(locale, key string, data map[string]any) string
}

// Gate decodes the session cookie and enforces the auth requirements of the
// route groups. The decoded session travels on the request context so
// handlers never touch the store directly.
type Gate struct {
	Store      Store
	Cookies    *Cookies
	Logger     *logger.Logger
	Translator Localizer
}

func NewGate(store Store, cookies *Cookies, log *logger.Logger, translator Localizer) *Gate {
	return &Gate{Store: store, Cookies: cookies, Logger: log, Translator: translator}
}

// Load resolves the cookie to a stored session and attaches it to the
// context. Requests without a valid session pass through untouched.
func (g *Gate) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := g.Cookies.Read(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		s, err := g.Store.Get(r.Context(), id)
		if err != nil {
			if err != ErrNoSession {
				g.Logger.Error("SESSION", fmt.Sprintf("Failed to load session: %v", err))
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}

// RequireUser short-circuits requests without an authenticated user. JSON
// clients get a 401 body, everyone else a redirect to /login.
func (g *Gate) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := FromContext(r.Context())
		if s.Authenticated() {
			next.ServeHTTP(w, r)
			return
		}

		g.Logger.LogSecurity("UNAUTHORIZED", fmt.Sprintf("%s %s", r.Method, r.URL.Path))

		if utils.WantsJSON(r) {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.ErrorResponse(g.message(r, "must_login", "You must be logged in!")))
			return
		}

		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

// RequireAdmin short-circuits requests without an admin session by
// redirecting to the admin login form.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := FromContext(r.Context())
		if s.Admin() {
			next.ServeHTTP(w, r)
			return
		}

		g.Logger.LogSecurity("UNAUTHORIZED_ADMIN", fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		http.Redirect(w, r, "/admin-login", http.StatusFound)
	})
}

func (g *Gate) message(r *http.Request, key, fallback string) string {
	if g.Translator == nil {
		return fallback
	}
	return g.Translator.T(i18n.LocaleFromContext(r.Context()), key, nil)
}
