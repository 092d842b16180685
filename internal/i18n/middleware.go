package i18n

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
)

const langCookie = "lang"

// Cookie lifetime matches the original 900000 ms.
const langCookieMaxAge = 900

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Turkish,
})

// Middleware resolves the request locale from the lang cookie, then the
// Accept-Language header, then the default, and stores it in the context.
func Middleware(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := ""
			if cookie, err := r.Cookie(langCookie); err == nil && Supported(cookie.Value) {
				locale = cookie.Value
			}
			if locale == "" {
				if accept := r.Header.Get("Accept-Language"); accept != "" {
					if tag, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tag) > 0 {
						matched, _, _ := matcher.Match(tag...)
						base, _ := matched.Base()
						if Supported(base.String()) {
							locale = base.String()
						}
					}
				}
			}
			if locale == "" {
				locale = defaultLocale
			}

			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}

// SetLangHandler handles GET/POST /set-lang/{lang}: validates the language,
// sets the cookie and redirects back to the referring page.
func SetLangHandler(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !Supported(lang) {
		http.Error(w, "Invalid language selection", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     langCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   langCookieMaxAge,
		HttpOnly: true,
	})

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusFound)
}
