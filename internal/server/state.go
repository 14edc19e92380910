package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/janpfeifer/GoSpider/internal/game"
	"k8s.io/klog/v2"
)

// ServerState keeps track of the live game sessions.
//
// Each websocket connection owns exactly one session, and its game lives only
// as long as the connection.
type ServerState struct {
	Address string // Address the server is listening on, set by Run.

	mu       sync.RWMutex
	Sessions map[string]*Session

	difficulty   game.Difficulty
	newRNG       func() *rand.Rand
	pingInterval time.Duration
}

// Session is one player's game, bound to a websocket connection.
type Session struct {
	ID   string
	Conn *websocket.Conn

	// Game is only accessed by the connection's read loop.
	Game *game.GameState
}

// Option configures a ServerState.
type Option func(*ServerState)

// WithDifficulty sets the difficulty of games started without an explicit one.
func WithDifficulty(d game.Difficulty) Option {
	return func(s *ServerState) { s.difficulty = d }
}

// WithSeed makes the shuffles reproducible: session number i uses the seed (seed, i).
// A zero seed keeps the default random shuffles.
func WithSeed(seed uint64) Option {
	return func(s *ServerState) {
		if seed == 0 {
			return
		}
		var mu sync.Mutex
		var count uint64
		s.newRNG = func() *rand.Rand {
			mu.Lock()
			defer mu.Unlock()
			count++
			return rand.New(rand.NewPCG(seed, count))
		}
	}
}

// WithPingInterval sets how often idle connections are pinged. Zero disables pings.
func WithPingInterval(d time.Duration) Option {
	return func(s *ServerState) { s.pingInterval = d }
}

// NewServerState creates an empty server state.
func NewServerState(opts ...Option) *ServerState {
	s := &ServerState{
		Sessions:     make(map[string]*Session),
		difficulty:   game.OneSuit,
		newRNG:       func() *rand.Rand { return nil },
		pingInterval: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NumSessions returns the number of connected sessions.
func (s *ServerState) NumSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Sessions)
}

// CloseAll closes every connection, ending their sessions.
func (s *ServerState) CloseAll() {
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.Sessions))
	for _, session := range s.Sessions {
		sessions = append(sessions, session)
	}
	s.mu.RUnlock()
	for _, session := range sessions {
		session.Conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// HandleWS upgrades the connection and runs the session until the client disconnects.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		klog.Errorf("HandleWS: failed to accept websocket: %v", err)
		return
	}
	defer conn.CloseNow()

	session := &Session{ID: uuid.NewString(), Conn: conn}
	s.mu.Lock()
	s.Sessions[session.ID] = session
	s.mu.Unlock()
	klog.Infof("Session %s: connected from %s", session.ID, r.RemoteAddr)

	defer func() {
		s.mu.Lock()
		delete(s.Sessions, session.ID)
		s.mu.Unlock()
		klog.Infof("Session %s: disconnected", session.ID)
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	if s.pingInterval > 0 {
		go s.pingLoop(ctx, session)
	}

	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if status := websocket.CloseStatus(err); status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return
			}
			if !errors.Is(err, context.Canceled) {
				klog.Errorf("Session %s: read error: %v", session.ID, err)
			}
			return
		}
		klog.V(1).Infof("Session %s: received %s", session.ID, msg.Type)

		reply := s.handleMessage(session, msg)
		if reply == nil {
			continue
		}
		if err := writeMessage(ctx, conn, *reply); err != nil {
			klog.Errorf("Session %s: write error: %v", session.ID, err)
			return
		}
	}
}

// handleMessage applies a client message to the session's game and returns the reply, if any.
func (s *ServerState) handleMessage(session *Session, msg game.WsMessage) *game.WsMessage {
	p, err := msg.Parse()
	if err != nil {
		klog.Warningf("Session %s: bad message: %v", session.ID, err)
		return errorMessage(err.Error())
	}

	switch m := p.(type) {
	case *game.NewGameMessage:
		d := m.Difficulty
		if d == 0 {
			d = s.difficulty
		}
		g, err := game.NewGame(d, s.newRNG())
		if err != nil {
			return errorMessage(err.Error())
		}
		session.Game = g
		klog.Infof("Session %s: new game with %s", session.ID, d)
		return stateMessage(g, "")

	case *game.ClickMessage:
		if session.Game == nil {
			return errorMessage("no game in progress")
		}
		next, outcome, err := session.Game.Click(m.Column, m.Index)
		if err != nil {
			return stateMessage(session.Game, game.Explain(err))
		}
		session.Game = next
		klog.V(1).Infof("Session %s: click (%d, %d): %s", session.ID, m.Column, m.Index, outcome.Kind)
		return stateMessage(next, s.outcomeNotice(session, outcome))

	case *game.DealMessage:
		if session.Game == nil {
			return errorMessage("no game in progress")
		}
		next, outcome, err := session.Game.Deal()
		if err != nil {
			// A refused deal leaves the game as it was; the player is told why.
			return stateMessage(session.Game, game.Explain(err))
		}
		session.Game = next
		return stateMessage(next, s.outcomeNotice(session, outcome))

	case *game.PongMessage:
		klog.V(2).Infof("Session %s: pong, rtt=%s", session.ID, time.Since(time.Unix(0, m.ServerTime)))
		return nil

	case *game.PingMessage:
		pong, _ := game.NewWsMessage(game.MsgTypePong, game.PongMessage{ServerTime: m.ServerTime})
		return &pong

	default:
		return errorMessage("unexpected message type " + string(msg.Type))
	}
}

// outcomeNotice logs completed runs and wins, and returns the text shown to the player.
func (s *ServerState) outcomeNotice(session *Session, outcome game.Outcome) string {
	if session.Game.Won() {
		klog.Infof("Session %s: game won, score %d in %d moves", session.ID, session.Game.Score, session.Game.Moves)
		return "You won!"
	}
	if outcome.SetsCompleted > 0 {
		klog.V(1).Infof("Session %s: %d run(s) completed, %d total", session.ID, outcome.SetsCompleted, session.Game.Foundations)
		return "Run completed!"
	}
	return ""
}

func (s *ServerState) pingLoop(ctx context.Context, session *Session) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ping, _ := game.NewWsMessage(game.MsgTypePing, game.PingMessage{ServerTime: time.Now().UnixNano()})
			if err := writeMessage(ctx, session.Conn, ping); err != nil {
				klog.V(1).Infof("Session %s: ping failed: %v", session.ID, err)
				return
			}
		}
	}
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg game.WsMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(ctx, conn, msg)
}

func stateMessage(g *game.GameState, notice string) *game.WsMessage {
	msg, err := game.NewWsMessage(game.MsgTypeState, game.StateMessage{Board: g.View(), Notice: notice})
	if err != nil {
		klog.Errorf("Failed to create state message: %v", err)
		return errorMessage("internal error")
	}
	return &msg
}

func errorMessage(text string) *game.WsMessage {
	msg, _ := game.NewWsMessage(game.MsgTypeError, game.ErrorMessage{Message: text})
	return &msg
}
