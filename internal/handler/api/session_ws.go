package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"StockLens/internal/domain/models"
	"StockLens/internal/services/indicators"
	"StockLens/internal/usecase"
	xlogger "StockLens/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
	wsReadLimit  = 4096
	wsSendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ClientMessage is sent by the browser. Submit may carry ticker and period.
type ClientMessage struct {
	Type   string `json:"type"`
	Ticker string `json:"ticker,omitempty"`
	Period string `json:"period,omitempty"`
}

type sessionStateDTO struct {
	models.SessionState
	CanSubmit bool `json:"can_submit"`
}

// ServerMessage is pushed after every state transition.
type ServerMessage struct {
	Type    string            `json:"type"`
	State   *sessionStateDTO  `json:"state,omitempty"`
	View    *models.ChartView `json:"view,omitempty"`
	Periods []models.Period   `json:"periods,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// SessionHandler runs one usecase.Session per WebSocket connection.
type SessionHandler struct {
	logger  *xlogger.Logger
	fetcher usecase.Fetcher
}

func NewSessionHandler(logger *xlogger.Logger, fetcher usecase.Fetcher) *SessionHandler {
	return &SessionHandler{logger: logger, fetcher: fetcher}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/session", h.Serve)
}

func (h *SessionHandler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", xlogger.Error(err))
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := h.logger.With(xlogger.String("remote", c.RealIP()))
	sc := &sessionConn{
		conn:    conn,
		session: usecase.NewSession(h.fetcher, l),
		send:    make(chan []byte, wsSendBuffer),
		ctx:     ctx,
		cancel:  cancel,
		logger:  l,
	}
	sc.session.OnChange(sc.pushState)

	go sc.writePump()
	sc.push(ServerMessage{Type: "periods", Periods: models.Periods()})
	sc.pushState(sc.session.State())
	sc.readPump()
	return nil
}

type sessionConn struct {
	conn    *websocket.Conn
	session *usecase.Session
	send    chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *xlogger.Logger
}

// StateMessage renders a snapshot through the chart pipeline.
func StateMessage(st models.SessionState) ServerMessage {
	return ServerMessage{
		Type:  "state",
		State: &sessionStateDTO{SessionState: st, CanSubmit: st.CanSubmit()},
		View:  indicators.BuildView(st.Document),
	}
}

func (sc *sessionConn) pushState(st models.SessionState) {
	sc.push(StateMessage(st))
}

func (sc *sessionConn) push(msg ServerMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		sc.logger.Error("ws marshal failed", xlogger.Error(err))
		return
	}
	select {
	case sc.send <- b:
	case <-sc.ctx.Done():
	}
}

func (sc *sessionConn) readPump() {
	defer func() {
		sc.cancel()
		sc.conn.Close()
		sc.logger.Debug("ws session closed")
	}()

	sc.conn.SetReadLimit(wsReadLimit)
	_ = sc.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	sc.conn.SetPongHandler(func(string) error {
		return sc.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		_, raw, err := sc.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			sc.push(ServerMessage{Type: "error", Error: "invalid message"})
			continue
		}

		switch msg.Type {
		case "ticker":
			sc.session.SetTicker(msg.Ticker)
		case "period":
			sc.session.SetPeriod(msg.Period)
		case "submit":
			if msg.Ticker != "" {
				sc.session.SetTicker(msg.Ticker)
			}
			if msg.Period != "" {
				sc.session.SetPeriod(msg.Period)
			}
			go sc.session.Submit(sc.ctx)
		default:
			sc.push(ServerMessage{Type: "error", Error: "unknown message type: " + msg.Type})
		}
	}
}

func (sc *sessionConn) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		sc.conn.Close()
	}()

	for {
		select {
		case b := <-sc.send:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := sc.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				sc.cancel()
				return
			}
		case <-ticker.C:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := sc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sc.cancel()
				return
			}
		case <-sc.ctx.Done():
			_ = sc.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
