package usecase

import (
	"context"
	"sync"

	"StockLens/internal/domain/models"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/util"
)

// Event is one transition of a session.
type Event interface {
	isEvent()
}

type TickerChanged struct{ Ticker string }

type PeriodChanged struct{ Period string }

// RequestStarted marks a fetch for the current ticker and period as in flight.
type RequestStarted struct{ Token uint64 }

// RequestSucceeded and RequestFailed carry the ticker and period the fetch
// was issued for.
type RequestSucceeded struct {
	Token    uint64
	Ticker   string
	Period   string
	Document *models.AnalysisDocument
}

type RequestFailed struct {
	Token   uint64
	Ticker  string
	Period  string
	Message string
}

func (TickerChanged) isEvent()    {}
func (PeriodChanged) isEvent()    {}
func (RequestStarted) isEvent()   {}
func (RequestSucceeded) isEvent() {}
func (RequestFailed) isEvent()    {}

// NewSessionState returns the initial state: no ticker, default period.
func NewSessionState() models.SessionState {
	return models.SessionState{Period: models.DefaultPeriod}
}

// Reduce applies ev to s and returns the next state. Completions whose token
// is not the latest issued one leave s untouched. A latest completion for a
// ticker or period the user has since changed only clears Loading.
func Reduce(s models.SessionState, ev Event) models.SessionState {
	switch e := ev.(type) {
	case TickerChanged:
		s.Ticker = util.NormalizeTicker(e.Ticker)
	case PeriodChanged:
		if e.Period != "" {
			s.Period = e.Period
		}
	case RequestStarted:
		s.RequestID = e.Token
		s.Loading = true
		s.Error = ""
	case RequestSucceeded:
		if e.Token != s.RequestID {
			return s
		}
		s.Loading = false
		if !sameRequest(s, e.Ticker, e.Period) {
			return s
		}
		s.Error = ""
		s.Document = e.Document
	case RequestFailed:
		if e.Token != s.RequestID {
			return s
		}
		s.Loading = false
		if !sameRequest(s, e.Ticker, e.Period) {
			return s
		}
		s.Error = e.Message
		s.Document = nil
	}
	return s
}

// sameRequest reports whether s still shows the ticker and period a fetch was issued for.
func sameRequest(s models.SessionState, ticker, period string) bool {
	return s.Ticker == ticker && s.Period == period
}

// Fetcher loads one analysis document.
type Fetcher interface {
	Fetch(ctx context.Context, ticker, period string) (*models.AnalysisDocument, error)
}

// Session owns the state of one interactive client. Every transition goes
// through Reduce. Listeners are called one at a time and never receive a
// snapshot older than one they already saw, so the last snapshot delivered
// is always the current state.
type Session struct {
	fetcher Fetcher
	l       *applogger.Logger

	mu        sync.Mutex
	state     models.SessionState
	seq       uint64
	nextToken uint64
	listeners []func(models.SessionState)

	// notifyMu serialises delivery; delivered is the seq of the last snapshot sent.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewSession starts in NewSessionState. A nil logger discards output.
func NewSession(fetcher Fetcher, l *applogger.Logger) *Session {
	if l == nil {
		l = applogger.Nop()
	}
	return &Session{fetcher: fetcher, l: l, state: NewSessionState()}
}

// State returns the current snapshot.
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers fn to receive new snapshots. fn must not change the
// session itself.
func (s *Session) OnChange(fn func(models.SessionState)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Session) SetTicker(ticker string) models.SessionState {
	return s.dispatch(TickerChanged{Ticker: ticker})
}

func (s *Session) SetPeriod(period string) models.SessionState {
	return s.dispatch(PeriodChanged{Period: period})
}

// Submit fetches the current ticker and period. With an empty ticker it does
// nothing. Only the latest submission's result is applied.
func (s *Session) Submit(ctx context.Context) models.SessionState {
	s.mu.Lock()
	if s.state.Ticker == "" {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.nextToken++
	token := s.nextToken
	ticker, period := s.state.Ticker, s.state.Period
	s.applyLocked(RequestStarted{Token: token})

	doc, err := s.fetcher.Fetch(ctx, ticker, period)
	if cur := s.State(); cur.RequestID != token || !sameRequest(cur, ticker, period) {
		s.l.Debug("dropping stale session result",
			applogger.String("ticker", ticker),
			applogger.String("period", period),
			applogger.Uint64("token", token),
		)
	}
	if err != nil {
		return s.dispatch(RequestFailed{Token: token, Ticker: ticker, Period: period, Message: ErrorMessage(err)})
	}
	return s.dispatch(RequestSucceeded{Token: token, Ticker: ticker, Period: period, Document: doc})
}

func (s *Session) dispatch(ev Event) models.SessionState {
	s.mu.Lock()
	return s.applyLocked(ev)
}

// applyLocked must be called with mu held; it releases mu before notifying.
func (s *Session) applyLocked(ev Event) models.SessionState {
	prev := s.state
	next := Reduce(prev, ev)
	if next == prev {
		s.mu.Unlock()
		return next
	}
	s.state = next
	s.seq++
	seq := s.seq
	listeners := append([]func(models.SessionState){}, s.listeners...)
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	// a newer snapshot overtook this one
	if seq <= s.delivered {
		return next
	}
	s.delivered = seq
	for _, fn := range listeners {
		fn(next)
	}
	return next
}
