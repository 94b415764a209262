package agreement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snakes_backend/internal/api/middleware"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service"
	"snakes_backend/internal/service/game"
)

type fakeService struct {
	service.GameService
	ended string
}

func (f *fakeService) Agree(_ context.Context, accepted bool) (*model.AgreementData, error) {
	if !accepted {
		return nil, game.ErrConsentDeclined
	}
	return &model.AgreementData{SessionID: "s1", AccessToken: "tok"}, nil
}

func (f *fakeService) EndSession(_ context.Context, sessionID string) error {
	if sessionID != "s1" {
		return game.ErrSessionNotFound
	}
	f.ended = sessionID
	return nil
}

// TestAgree ensures consent opens a session and refusal is forbidden.
func TestAgree(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeService{}})

	tcs := map[string]struct {
		body string
		want int
	}{
		"accepted":  {`{"accepted":true}`, http.StatusCreated},
		"declined":  {`{"accepted":false}`, http.StatusForbidden},
		"malformed": {`{"accepted":`, http.StatusBadRequest},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Agree(rec, httptest.NewRequest(http.MethodPost, "/agreement", strings.NewReader(tc.body)))
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.want, rec.Body)
			}
		})
	}

	rec := httptest.NewRecorder()
	h.Agree(rec, httptest.NewRequest(http.MethodPost, "/agreement", strings.NewReader(`{"accepted":true}`)))
	if body := rec.Body.String(); !strings.Contains(body, `"session_id":"s1"`) || !strings.Contains(body, `"access_token":"tok"`) {
		t.Fatalf("body = %s", body)
	}
}

// TestEnd ensures the session from the request context is closed.
func TestEnd(t *testing.T) {
	f := &fakeService{}
	h := NewHandler(HandlerDeps{Serv: f})

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rec := httptest.NewRecorder()
	h.End(rec, req.WithContext(middleware.WithSessionID(req.Context(), "s1")))
	if rec.Code != http.StatusNoContent || f.ended != "s1" {
		t.Fatalf("status = %d ended = %q, want 204 s1", rec.Code, f.ended)
	}

	rec = httptest.NewRecorder()
	h.End(rec, httptest.NewRequest(http.MethodDelete, "/session", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without session = %d, want 401", rec.Code)
	}
}
