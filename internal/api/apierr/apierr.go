// Package apierr переводит ошибки сервисов в HTTP статусы
package apierr

import (
	"errors"
	"net/http"

	"snakes_backend/internal/service/game"
	"snakes_backend/internal/service/round"
	"snakes_backend/pkg/resp"

	"go.uber.org/zap"
)

// Status - HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, round.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, round.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, game.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, game.ErrConsentDeclined):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Write - пишет ошибку в ответ. Внутренние ошибки логируются и не раскрываются клиенту
func Write(w http.ResponseWriter, log *zap.Logger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		resp.WriteError(w, status, http.StatusText(status))
		return
	}
	resp.WriteError(w, status, err.Error())
}
