package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockLens/internal/domain/models"
	"StockLens/internal/usecase"
	xlogger "StockLens/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

func dialSession(t *testing.T, src *fakeSource) *websocket.Conn {
	t.Helper()
	uc := usecase.NewAnalyzeUseCase(src, nil, noMetrics{}, nil)
	e := echo.New()
	NewSessionHandler(xlogger.Nop(), uc).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/session"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

// readUntil reads state messages until pred matches.
func readUntil(t *testing.T, conn *websocket.Conn, pred func(ServerMessage) bool) ServerMessage {
	t.Helper()
	for i := 0; i < 10; i++ {
		if msg := readMsg(t, conn); pred(msg) {
			return msg
		}
	}
	t.Fatal("expected message not received")
	return ServerMessage{}
}

func TestSessionWS_InitialMessages(t *testing.T) {
	conn := dialSession(t, &fakeSource{})

	if msg := readMsg(t, conn); msg.Type != "periods" || len(msg.Periods) != 6 {
		t.Fatalf("unexpected first message %+v", msg)
	}
	msg := readMsg(t, conn)
	if msg.Type != "state" || msg.State.Period != models.DefaultPeriod || msg.State.CanSubmit {
		t.Fatalf("unexpected initial state %+v", msg.State)
	}
	if msg.View != nil {
		t.Fatal("expected no view before any document")
	}
}

func TestSessionWS_SubmitRendersView(t *testing.T) {
	src := &fakeSource{doc: testDoc()}
	conn := dialSession(t, src)
	readMsg(t, conn)
	readMsg(t, conn)

	if err := conn.WriteJSON(ClientMessage{Type: "submit", Ticker: "aapl", Period: "6mo"}); err != nil {
		t.Fatal(err)
	}

	msg := readUntil(t, conn, func(m ServerMessage) bool {
		return m.Type == "state" && !m.State.Loading && m.View != nil
	})
	if msg.State.Ticker != "AAPL" || msg.State.Period != "6mo" || msg.State.Error != "" {
		t.Fatalf("unexpected state %+v", msg.State)
	}
	if msg.View.RSI == nil || msg.View.RSI.State != string(models.RSIOverbought) {
		t.Fatalf("unexpected view %+v", msg.View)
	}
}

func TestSessionWS_FailureSurfacesDetail(t *testing.T) {
	src := &fakeSource{err: &models.UpstreamError{StatusCode: 404, Detail: "Ticker not found"}}
	conn := dialSession(t, src)
	readMsg(t, conn)
	readMsg(t, conn)

	_ = conn.WriteJSON(ClientMessage{Type: "ticker", Ticker: "zzzz"})
	_ = conn.WriteJSON(ClientMessage{Type: "submit"})

	msg := readUntil(t, conn, func(m ServerMessage) bool {
		return m.Type == "state" && m.State.Error != ""
	})
	if msg.State.Error != "Ticker not found" || msg.View != nil || msg.State.Loading {
		t.Fatalf("unexpected failure state %+v", msg)
	}
}

func TestSessionWS_EmptyTickerSubmitIsIgnored(t *testing.T) {
	src := &fakeSource{doc: testDoc()}
	conn := dialSession(t, src)
	readMsg(t, conn)
	readMsg(t, conn)

	_ = conn.WriteJSON(ClientMessage{Type: "submit"})
	_ = conn.WriteJSON(ClientMessage{Type: "bogus"})

	msg := readMsg(t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected only the error reply, got %+v", msg)
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected no fetch, got %v", src.calls)
	}
}
