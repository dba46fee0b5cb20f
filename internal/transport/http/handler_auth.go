package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appauth "token-arcade/internal/app/auth"
)

type AuthHandlers struct {
	authSvc *appauth.Service
}

func NewAuthHandlers(authSvc *appauth.Service) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

func (h *AuthHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricLoginTotal.Add(1)
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricLoginErrors.Add(1)
			writeHTTPError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		result, err := h.authSvc.Login(r.Context(), body.Username, body.Password)
		if err != nil {
			metricLoginErrors.Add(1)
			switch {
			case errors.Is(err, appauth.ErrInvalidRequest), errors.Is(err, appauth.ErrInvalidCredentials):
				writeHTTPError(w, http.StatusUnauthorized, "Invalid credentials")
			case errors.Is(err, appauth.ErrBanned):
				writeHTTPError(w, http.StatusForbidden, "This account has been banned.")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    result.Token,
			Path:     "/",
			Expires:  result.Expires,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"isAdmin": result.Player.IsAdmin,
		})
	}
}

func (h *AuthHandlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if err := h.authSvc.Logout(r.Context(), cookie.Value); err != nil {
				writeHTTPError(w, http.StatusInternalServerError, "Could not log out.")
				return
			}
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, map[string]any{"message": "Logout successful"})
	}
}
