package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appgames "token-arcade/internal/app/games"
	"token-arcade/internal/game/roulette"
)

type GameHandlers struct {
	gamesSvc *appgames.Service
}

func NewGameHandlers(gamesSvc *appgames.Service) *GameHandlers {
	return &GameHandlers{gamesSvc: gamesSvc}
}

func (h *GameHandlers) SlotSpin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricSlotSpinTotal.Add(1)
		player, ok := PlayerFromContext(r.Context())
		if !ok {
			writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		var body struct {
			Wager int64 `json:"wager"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricSpinRejectedTotal.Add(1)
			writeHTTPError(w, http.StatusBadRequest, "Invalid wager")
			return
		}
		resp, err := h.gamesSvc.SpinSlots(r.Context(), player.ID, body.Wager)
		if err != nil {
			writeSpinError(w, err, "Invalid wager")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *GameHandlers) RouletteSpin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricRouletteSpinTotal.Add(1)
		player, ok := PlayerFromContext(r.Context())
		if !ok {
			writeHTTPError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		var body struct {
			Bets roulette.BetSet `json:"bets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricSpinRejectedTotal.Add(1)
			writeHTTPError(w, http.StatusBadRequest, "Invalid bets format")
			return
		}
		resp, err := h.gamesSvc.SpinRoulette(r.Context(), player.ID, body.Bets)
		if err != nil {
			writeSpinError(w, err, "Invalid bets format")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeSpinError(w http.ResponseWriter, err error, invalidMsg string) {
	switch {
	case errors.Is(err, appgames.ErrInvalidRequest):
		metricSpinRejectedTotal.Add(1)
		writeHTTPError(w, http.StatusBadRequest, invalidMsg)
	case errors.Is(err, appgames.ErrInsufficientFunds):
		metricSettleFailureTotal.Add(1)
		writeHTTPError(w, http.StatusBadRequest, "Insufficient Arcade Tokens")
	default:
		metricSettleFailureTotal.Add(1)
		writeHTTPError(w, http.StatusInternalServerError, "Server error during game play")
	}
}
