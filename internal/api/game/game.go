package game

import (
	"net/http"
	"strconv"

	"snakes_backend/internal/api/apierr"
	dto "snakes_backend/internal/api/dto/game"
	"snakes_backend/internal/api/middleware"
	"snakes_backend/internal/converter"
	"snakes_backend/internal/service"
	"snakes_backend/pkg/req"
	"snakes_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv service.GameService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.BetRequest](w, r)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	bet, err := converter.ToPlaceBet(payload)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	view, err := h.serv.PlaceBet(r.Context(), sessionID, bet)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundViewResponse(view))
}

func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.serv.Roll(r.Context(), sessionID)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToRoundViewResponse(view))
}

func (h *Handler) NewRound(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.serv.NewRound(r.Context(), sessionID)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundViewResponse(view))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.serv.State(r.Context(), sessionID)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundViewResponse(view))
}

// History отдает завершенные раунды сессии, limit - необязательный параметр
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.serv.History(r.Context(), sessionID, limit)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func (h *Handler) Board(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(h.serv.Board()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
	}
	return sessionID, ok
}
