package frontend

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GlobalClientState manages the connection to the server and the last board received.
type GlobalClientState struct {
	Board  *game.BoardView
	Notice string // Last user-facing notice from the server, e.g. a refused deal.
	Error  string
	Conn   *websocket.Conn

	Difficulty game.Difficulty

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

// RegisterRoutes initializes the client state and the go-app routes.
// It's used both by the WASM binary and by the server, for prerendering.
func RegisterRoutes() {
	InitState()

	// Root route is the difficulty selection.
	app.Route("/", func() app.Composer { return &Home{} })

	// Game route, with the difficulty as the last path element.
	app.RouteWithRegexp("^/game/.*", func() app.Composer { return &Game{} })
}

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Difficulty: game.OneSuit,
			Listeners:  make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// ConnectWS connects to the server and asks for a new game with the given difficulty.
func (s *GlobalClientState) ConnectWS(d game.Difficulty) error {
	if s.Conn != nil {
		klog.Infof("ConnectWS: Closing existing connection")
		s.Conn.CloseNow()
		s.Conn = nil
	}
	s.Board = nil
	s.Notice = ""
	s.Error = ""
	s.Difficulty = d

	scheme := "ws"
	if app.Window().URL().Scheme == "https" {
		scheme = "wss"
	}
	wsURL := fmt.Sprintf("%s://%s/ws", scheme, app.Window().URL().Host)
	klog.Infof("ConnectWS: Connecting to %s (%s)", wsURL, d)

	// We use a context that lasts for the duration of the connection setup.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		klog.Errorf("ConnectWS: Dial failed: %v", err)
		return fmt.Errorf("dial failed: %w", err)
	}
	s.Conn = conn

	if err := s.send(game.MsgTypeNewGame, game.NewGameMessage{Difficulty: d}); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	klog.Infof("ConnectWS: New game requested. Starting read loop.")
	go s.readLoop(conn)
	return nil
}

func (s *GlobalClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	klog.Infof("readLoop: started")
	for {
		var msg game.WsMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			klog.Errorf("readLoop: WS read error: %v", err)
			if s.Conn == conn {
				s.Error = "Connection to the server lost."
				s.Notify()
			}
			break
		}

		klog.V(1).Infof("readLoop: received message type: %s", msg.Type)
		s.handleMessage(msg)
	}
}

func (s *GlobalClientState) handleMessage(msg game.WsMessage) {
	p, err := msg.Parse()
	if err != nil {
		klog.Errorf("handleMessage: Failed to parse %s message: %v", msg.Type, err)
		return
	}

	switch m := p.(type) {
	case *game.StateMessage:
		klog.V(1).Infof("handleMessage: Board updated. Score: %d, Moves: %d, Foundations: %d",
			m.Board.Score, m.Board.Moves, m.Board.Foundations)
		s.Board = &m.Board
		s.Notice = m.Notice
		s.Error = ""
		s.Notify()

	case *game.ErrorMessage:
		s.Error = m.Message
		s.Notify()

	case *game.PingMessage:
		if err := s.send(game.MsgTypePong, game.PongMessage{ServerTime: m.ServerTime}); err != nil {
			klog.Errorf("handleMessage: Failed to answer ping: %v", err)
		}
	}
}

func (s *GlobalClientState) send(msgType game.MessageType, payload any) error {
	if s.Conn == nil {
		return fmt.Errorf("not connected")
	}
	msg, err := game.NewWsMessage(msgType, payload)
	if err != nil {
		klog.Errorf("send: Failed to create %s message: %v", msgType, err)
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	return wsjson.Write(ctx, s.Conn, msg)
}

// SendClick sends a click on card index of column, or on the column itself if index is -1.
func (s *GlobalClientState) SendClick(column, index int) {
	if err := s.send(game.MsgTypeClick, game.ClickMessage{Column: column, Index: index}); err != nil {
		klog.Errorf("SendClick: %v", err)
	}
}

// SendDeal asks the server to deal a row from the stock.
func (s *GlobalClientState) SendDeal() {
	if err := s.send(game.MsgTypeDeal, nil); err != nil {
		klog.Errorf("SendDeal: %v", err)
	}
}

// SendNewGame asks for a new game, keeping the difficulty unless d is given.
func (s *GlobalClientState) SendNewGame(d game.Difficulty) {
	if d != 0 {
		s.Difficulty = d
	}
	if err := s.send(game.MsgTypeNewGame, game.NewGameMessage{Difficulty: s.Difficulty}); err != nil {
		klog.Errorf("SendNewGame: %v", err)
	}
}
