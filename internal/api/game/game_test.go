package game

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"snakes_backend/internal/api/middleware"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service"
	svcgame "snakes_backend/internal/service/game"
	"snakes_backend/internal/service/round"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

const (
	testToken   = "good-token"
	testSession = "session-1"
)

// fakeService is a scripted GameService for handler tests.
type fakeService struct {
	service.GameService

	betErr  error
	lastBet model.PlaceBet
	limit   int
	view    model.RoundView
	events  chan model.Event
}

func (f *fakeService) Authorize(tok string) (string, error) {
	if tok != testToken {
		return "", svcgame.ErrUnauthorized
	}
	return testSession, nil
}

func (f *fakeService) PlaceBet(_ context.Context, _ string, req model.PlaceBet) (model.RoundView, error) {
	f.lastBet = req
	if f.betErr != nil {
		return model.RoundView{}, f.betErr
	}
	return f.view, nil
}

func (f *fakeService) Roll(context.Context, string) (model.RoundView, error) {
	return model.RoundView{}, round.ErrInvalidState
}

func (f *fakeService) State(_ context.Context, sessionID string) (model.RoundView, error) {
	if sessionID != testSession {
		return model.RoundView{}, svcgame.ErrSessionNotFound
	}
	return f.view, nil
}

func (f *fakeService) History(_ context.Context, _ string, limit int) ([]model.RoundRecord, error) {
	f.limit = limit
	return []model.RoundRecord{{Round: 2, Bet: decimal.NewFromInt(10), Multiplier: decimal.NewFromInt(4), Profit: decimal.NewFromInt(30)}}, nil
}

func (f *fakeService) Subscribe(string) (<-chan model.Event, func(), error) {
	return f.events, func() {}, nil
}

func newRouter(f *fakeService) http.Handler {
	h := NewHandler(HandlerDeps{Serv: f})
	r := chi.NewRouter()
	r.Route("/game", func(rr chi.Router) {
		rr.Use(middleware.ConsentAuth(f, nil))
		rr.Post("/bet", h.Bet)
		rr.Post("/roll", h.Roll)
		rr.Get("/state", h.State)
		rr.Get("/history", h.History)
		rr.Get("/events", h.Events)
	})
	return r
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestBetReturnsView ensures a valid bet is parsed exactly and the view is rendered with two decimals.
func TestBetReturnsView(t *testing.T) {
	f := &fakeService{view: model.RoundView{
		Round:      1,
		State:      model.StateReady,
		BetAmount:  decimal.RequireFromString("50"),
		Multiplier: decimal.NewFromInt(1),
		Balance:    decimal.RequireFromString("50"),
	}}
	rec := do(t, newRouter(f), http.MethodPost, "/game/bet", `{"amount":"50.00"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if !f.lastBet.Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("bet amount = %s, want 50", f.lastBet.Amount)
	}

	var body struct {
		State      string `json:"state"`
		BetAmount  string `json:"bet_amount"`
		Multiplier string `json:"multiplier"`
	}
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.State != "ready" || body.BetAmount != "50.00" || body.Multiplier != "1.00x" {
		t.Fatalf("body = %+v", body)
	}
}

// TestErrorStatuses ensures service errors map to their HTTP statuses.
func TestErrorStatuses(t *testing.T) {
	tcs := map[string]struct {
		betErr error
		method string
		target string
		body   string
		want   int
	}{
		"bet too small":        {round.ErrBetTooSmall, http.MethodPost, "/game/bet", `{"amount":"5"}`, http.StatusBadRequest},
		"insufficient balance": {round.ErrInsufficientBalance, http.MethodPost, "/game/bet", `{"amount":"500"}`, http.StatusBadRequest},
		"not a number":         {nil, http.MethodPost, "/game/bet", `{"amount":"ten"}`, http.StatusBadRequest},
		"malformed body":       {nil, http.MethodPost, "/game/bet", `{`, http.StatusBadRequest},
		"roll out of state":    {nil, http.MethodPost, "/game/roll", ``, http.StatusConflict},
		"bad limit":            {nil, http.MethodGet, "/game/history?limit=x", ``, http.StatusBadRequest},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := &fakeService{betErr: tc.betErr}
			rec := do(t, newRouter(f), tc.method, tc.target, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.want, rec.Body)
			}
		})
	}
}

// TestRequiresToken ensures game endpoints reject missing or foreign tokens.
func TestRequiresToken(t *testing.T) {
	router := newRouter(&fakeService{})

	for _, header := range []string{"", "Bearer wrong", "Basic " + testToken} {
		req := httptest.NewRequest(http.MethodGet, "/game/state", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Authorization %q: status = %d, want 401", header, rec.Code)
		}
	}
}

// TestHistoryPassesLimit ensures the limit query reaches the service.
func TestHistoryPassesLimit(t *testing.T) {
	f := &fakeService{}
	rec := do(t, newRouter(f), http.MethodGet, "/game/history?limit=5", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if f.limit != 5 {
		t.Fatalf("limit = %d, want 5", f.limit)
	}
	if !strings.Contains(rec.Body.String(), `"multiplier":"4.00x"`) {
		t.Fatalf("body = %s, want multiplier 4.00x", rec.Body)
	}
}

// TestEventsStream ensures engine events reach a websocket client authorized by query token.
func TestEventsStream(t *testing.T) {
	f := &fakeService{events: make(chan model.Event, 2)}
	srv := httptest.NewServer(newRouter(f))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/game/events?token=" + testToken
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	f.events <- model.Event{SessionID: testSession, Seq: 7, Kind: model.EventRoundResolved, Result: model.ResultWin}
	close(f.events)

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev struct {
		Seq    uint64 `json:"seq"`
		Kind   string `json:"kind"`
		Result string `json:"result"`
	}
	if err := jsoniter.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Seq != 7 || ev.Kind != "round_resolved" || ev.Result != "win" {
		t.Fatalf("event = %+v", ev)
	}

	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("read after session close = %v, want normal closure", err)
	}
}
