package middleware

import (
	"context"
	"net/http"
	"strings"

	"snakes_backend/internal/api/apierr"
	"snakes_backend/internal/service"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ConsentAuth - пропускает только запросы с действующим токеном согласия.
// Токен берется из Authorization: Bearer или из параметра token (для WebSocket)
func ConsentAuth(serv service.GameService, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := serv.Authorize(tokenFromRequest(r))
			if err != nil {
				apierr.Write(w, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionID - ID сессии, положенный ConsentAuth
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
