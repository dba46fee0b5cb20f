package httptransport

import "net/http"

type PlayerHandlers struct{}

func NewPlayerHandlers() *PlayerHandlers {
	return &PlayerHandlers{}
}

// Me returns the authenticated player's profile, balance included. The
// session middleware already loaded the row.
func (h *PlayerHandlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, ok := PlayerFromContext(r.Context())
		if !ok {
			writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"username": player.Username,
			"balance":  player.Balance,
		})
	}
}
