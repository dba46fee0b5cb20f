package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"token-arcade/internal/logging"
	"token-arcade/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "arcade_session"

type playerContextKey struct{}

func PlayerFromContext(ctx context.Context) (*store.Player, bool) {
	player, ok := ctx.Value(playerContextKey{}).(*store.Player)
	return player, ok
}

func APILogMiddleware() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), &slog.HandlerOptions{})),
		&httplog.Options{
			Level:              slog.LevelInfo,
			Schema:             httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogRequestBody:     func(*http.Request) bool { return false },
			LogResponseBody:    func(*http.Request) bool { return false },
			LogRequestHeaders:  []string{},
			LogResponseHeaders: []string{},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				rc := chi.RouteContext(req.Context())
				route := req.URL.Path
				if rc != nil && rc.RoutePattern() != "" {
					route = rc.RoutePattern()
				}
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("method", req.Method),
					slog.String("route", route),
					slog.String("path", req.URL.Path),
				}
			},
		},
	)
}

// SessionAuthMiddleware resolves the session cookie to a player and puts it
// on the request context. Unknown or expired sessions get a 401.
func SessionAuthMiddleware(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			player, err := st.GetSessionPlayer(r.Context(), cookie.Value)
			if err != nil {
				writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			ctx := context.WithValue(r.Context(), playerContextKey{}, player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NotBannedMiddleware sits on the game routes so a ban takes effect on the
// very next play, not the next login.
func NotBannedMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			player, ok := PlayerFromContext(r.Context())
			if !ok {
				writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if player.IsBanned {
				writeHTTPError(w, http.StatusForbidden, "This account has been banned.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnlyMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			player, ok := PlayerFromContext(r.Context())
			if !ok || !player.IsAdmin {
				writeHTTPError(w, http.StatusForbidden, "Forbidden: Admins only")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
