package agreement

import (
	"net/http"

	"snakes_backend/internal/api/apierr"
	dto "snakes_backend/internal/api/dto/agreement"
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

// Agree принимает согласие с условиями, открывает сессию
// и возвращает session_id и access_token
func (h *Handler) Agree(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AgreementRequest](w, r)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Agree(r.Context(), payload.Accepted)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToAgreementResponse(*data))
}

// End закрывает текущую сессию
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return
	}

	if err := h.serv.EndSession(r.Context(), sessionID); err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
