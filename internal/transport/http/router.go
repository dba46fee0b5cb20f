package httptransport

import (
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	appadmin "token-arcade/internal/app/admin"
	appauth "token-arcade/internal/app/auth"
	appgames "token-arcade/internal/app/games"
	"token-arcade/internal/config"
	"token-arcade/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	authSvc := appauth.NewService(st, cfg.SessionTTLHours)
	gamesSvc := appgames.NewService(st)
	adminSvc := appadmin.NewService(st)

	authHandlers := NewAuthHandlers(authSvc)
	playerHandlers := NewPlayerHandlers()
	gameHandlers := NewGameHandlers(gamesSvc)
	adminHandlers := NewAdminHandlers(adminSvc, cfg.InitialBalance)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", HealthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/login", authHandlers.Login())
		r.Post("/logout", authHandlers.Logout())

		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(st))
			r.Get("/player", playerHandlers.Me())

			r.Group(func(r chi.Router) {
				r.Use(NotBannedMiddleware())
				r.Post("/games/slot-machine/spin", gameHandlers.SlotSpin())
				r.Post("/games/roulette/spin", gameHandlers.RouletteSpin())
			})

			r.Group(func(r chi.Router) {
				r.Use(AdminOnlyMiddleware())
				r.Get("/admin/players", adminHandlers.Players())
				r.Post("/admin/players", adminHandlers.CreatePlayer())
				r.Put("/admin/players/{player_id}", adminHandlers.UpdatePlayer())
				r.Get("/admin/transactions/all", adminHandlers.Transactions())
				r.Get("/admin/admin-actions", adminHandlers.AdminActions())
				r.Get("/admin/debug/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		log.Warn().Str("path", cfg.StaticDir).Msg("static directory not found; skipping catch-all static route")
	}
	return r
}

func HealthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
