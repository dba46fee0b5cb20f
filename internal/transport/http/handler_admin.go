package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appadmin "token-arcade/internal/app/admin"

	"github.com/go-chi/chi/v5"
)

type AdminHandlers struct {
	adminSvc       *appadmin.Service
	defaultBalance float64
}

func NewAdminHandlers(adminSvc *appadmin.Service, defaultBalance float64) *AdminHandlers {
	return &AdminHandlers{adminSvc: adminSvc, defaultBalance: defaultBalance}
}

func (h *AdminHandlers) Players() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		items, err := h.adminSvc.ListPlayers(r.Context(), limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "Failed to fetch players")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *AdminHandlers) Transactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		if r.URL.Query().Get("limit") == "" {
			limit = 200
		}
		items, err := h.adminSvc.ListTransactions(r.Context(), limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "Failed to fetch transactions")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *AdminHandlers) AdminActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		if r.URL.Query().Get("limit") == "" {
			limit = 100
		}
		items, err := h.adminSvc.ListAdminActions(r.Context(), limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "Failed to fetch admin actions")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *AdminHandlers) CreatePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, ok := PlayerFromContext(r.Context())
		if !ok {
			writeHTTPError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}
		var body struct {
			Username string   `json:"username"`
			Password string   `json:"password"`
			Balance  *float64 `json:"balance"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		balance := h.defaultBalance
		if body.Balance != nil {
			balance = *body.Balance
		}
		_, err := h.adminSvc.CreatePlayer(r.Context(), admin.ID, body.Username, body.Password, balance)
		if err != nil {
			switch {
			case errors.Is(err, appadmin.ErrInvalidRequest):
				writeHTTPError(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, appadmin.ErrUsernameTaken):
				writeHTTPError(w, http.StatusConflict, "Username already exists")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "Error creating player")
			}
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Player created successfully"})
	}
}

func (h *AdminHandlers) UpdatePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, ok := PlayerFromContext(r.Context())
		if !ok {
			writeHTTPError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}
		playerID := chi.URLParam(r, "player_id")
		var body struct {
			Balance  *float64 `json:"balance"`
			IsBanned *bool    `json:"is_banned"`
			Password *string  `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		err := h.adminSvc.UpdatePlayer(r.Context(), admin.ID, playerID, appadmin.UpdatePlayerInput{
			Balance:  body.Balance,
			IsBanned: body.IsBanned,
			Password: body.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, appadmin.ErrInvalidRequest):
				writeHTTPError(w, http.StatusBadRequest, "No valid fields to update")
			case errors.Is(err, appadmin.ErrNotFound):
				writeHTTPError(w, http.StatusNotFound, "Player not found")
			default:
				writeHTTPError(w, http.StatusInternalServerError, "Error updating player")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "Player updated successfully"})
	}
}
