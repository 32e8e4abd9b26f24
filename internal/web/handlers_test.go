package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jaminalder/codex-klondike/internal/app"
)

func newTestServer(t *testing.T) (*app.Service, http.Handler) {
	t.Helper()
	s := app.NewService(nil)
	s.SetDeal(13, func() int64 { return 42 })
	h := NewServer(s)
	return s, h
}

func TestIndexPage(t *testing.T) {
	_, h := newTestServer(t)
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<form") || !strings.Contains(body, "action=\"/game\"") {
		t.Fatalf("index should contain deal form; got body: %q", body)
	}
}

func TestCreateRedirectsToGame(t *testing.T) {
	_, h := newTestServer(t)
	req := httptest.NewRequest("POST", "/game", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther && rr.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	loc := rr.Result().Header.Get("Location")
	if !strings.HasPrefix(loc, "/game/") {
		t.Fatalf("expected redirect to /game/{id}, got %q", loc)
	}
}

func TestGamePageShowsBoardAndSSE(t *testing.T) {
	svc, h := newTestServer(t)
	ses, _ := svc.CreateGame()

	req := httptest.NewRequest("GET", "/game/"+url.PathEscape(ses.ID), nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "id=\"board\"") || !strings.Contains(body, "Pile 1") {
		t.Fatalf("expected board in page; got body: %q", body)
	}
	if !strings.Contains(body, "hx-ext=\"sse\"") || !strings.Contains(body, "/game/"+ses.ID+"/events") {
		t.Fatalf("expected SSE wiring in page; got body: %q", body)
	}
}

func TestUnknownGameIs404(t *testing.T) {
	_, h := newTestServer(t)
	req := httptest.NewRequest("GET", "/game/nope", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDrawEndpointUpdatesStateAndReturnsFragment(t *testing.T) {
	svc, h := newTestServer(t)
	ses, _ := svc.CreateGame()

	req := httptest.NewRequest("POST", "/game/"+ses.ID+"/draw", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "id=\"board\"") {
		t.Fatalf("expected board fragment, got %q", rr.Body.String())
	}
	latest, _ := svc.Get(ses.ID)
	if len(latest.Board.Waste) != 1 || latest.Moves != 1 {
		t.Fatalf("draw not applied: waste=%d moves=%d", len(latest.Board.Waste), latest.Moves)
	}
}

func TestIllegalMoveShowsAlert(t *testing.T) {
	svc, h := newTestServer(t)
	ses, _ := svc.CreateGame()

	// the waste is empty right after the deal
	form := url.Values{"src": {"w"}, "dst": {"t0"}, "count": {"1"}}
	req := httptest.NewRequest("POST", "/game/"+ses.ID+"/move", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Illegal move") {
		t.Fatalf("expected illegal-move alert, got %q", rr.Body.String())
	}
	latest, _ := svc.Get(ses.ID)
	if latest.Moves != 0 {
		t.Fatalf("rejected move must not change state, moves=%d", latest.Moves)
	}
}

func TestMalformedTokensShowImproperInput(t *testing.T) {
	svc, h := newTestServer(t)
	ses, _ := svc.CreateGame()

	form := url.Values{"src": {"bogus"}, "dst": {"t0"}, "count": {"1"}}
	req := httptest.NewRequest("POST", "/game/"+ses.ID+"/move", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), "Improper input") {
		t.Fatalf("expected improper-input alert, got %q", rr.Body.String())
	}
}

func TestFoundationEndpoint(t *testing.T) {
	svc, h := newTestServer(t)
	// rank-1 deal: every top card is an ace
	svc.SetDeal(1, func() int64 { return 7 })
	ses, _ := svc.CreateGame()

	form := url.Values{"src": {"t0"}}
	req := httptest.NewRequest("POST", "/game/"+ses.ID+"/foundation", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	latest, _ := svc.Get(ses.ID)
	total := 0
	for _, f := range latest.Board.Foundations {
		total += len(f)
	}
	if total != 1 {
		t.Fatalf("expected one card on the foundations, got %d", total)
	}
}

func TestEventsEndpointSSEHeaders(t *testing.T) {
	_, h := newTestServer(t)
	// create a game via POST
	reqCreate := httptest.NewRequest("POST", "/game", nil)
	rrCreate := httptest.NewRecorder()
	h.ServeHTTP(rrCreate, reqCreate)
	loc := rrCreate.Result().Header.Get("Location")
	if loc == "" {
		t.Fatalf("missing redirect location")
	}
	// Request SSE
	req := httptest.NewRequest("GET", loc+"/events", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Result().Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "text/event-stream") {
		io.Copy(io.Discard, rr.Result().Body)
		t.Fatalf("expected text/event-stream, got %q", ct)
	}
}

func TestParseRef(t *testing.T) {
	cases := []struct {
		tok string
		ok  bool
	}{
		{"w", true},
		{"s", true},
		{"f2", true},
		{"t6", true},
		{"x1", false},
		{"f", false},
		{"tx", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseRef(tc.tok)
		if tc.ok && err != nil {
			t.Fatalf("parseRef(%q) unexpected error: %v", tc.tok, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("parseRef(%q) should fail", tc.tok)
		}
	}
}
