package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/render"
)

// Message types on the spectator socket
const (
	MsgFrame = "frame"
	MsgEvent = "event"
)

// FrameMessage carries one rendered board
type FrameMessage struct {
	Type    string       `json:"type"`
	Session string       `json:"session"`
	Rows    []string     `json:"rows"`
	Stats   StatsPayload `json:"stats"`
}

// EventMessage carries one round event
type EventMessage struct {
	Type  string `json:"type"`
	Event Event  `json:"event"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Read-only feed, any origin may watch
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// spectatorConn is one watching client
type spectatorConn struct {
	ws   *websocket.Conn
	send chan []byte
}

// Spectator broadcasts frames and round events to WebSocket clients
// Present and Publish never block the driver, slow clients lose messages
type Spectator struct {
	session string
	router  *gin.Engine
	server  *http.Server

	mu      sync.RWMutex
	clients map[*spectatorConn]struct{}
	latest  StatsPayload
	frames  uint64
	dropped uint64
}

// NewSpectator builds the hub and its routes: /healthz, /stats, /ws
func NewSpectator(session string) *Spectator {
	gin.SetMode(gin.ReleaseMode)

	s := &Spectator{
		session: session,
		clients: make(map[*spectatorConn]struct{}),
	}

	// No gin.Logger, stdout belongs to the terminal UI
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stats", s.handleStats)
	r.GET("/ws", s.handleWS)
	s.router = r

	return s
}

// Handler exposes the routes for embedding or tests
func (s *Spectator) Handler() http.Handler {
	return s.router
}

// Start serves on addr in the background
func (s *Spectator) Start(addr string) {
	s.server = &http.Server{Addr: addr, Handler: s.router}
	core.Go(func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("spectator server: %v", err)
		}
	})
	log.Noticef("spectator feed on %s", addr)
}

// Shutdown stops the server and disconnects every client
func (s *Spectator) Shutdown(ctx context.Context) error {
	var err error
	if s.server != nil {
		err = s.server.Shutdown(ctx)
	}

	s.mu.Lock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	return err
}

// Clients returns the number of connected watchers
func (s *Spectator) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Dropped returns the number of messages skipped for slow clients
func (s *Spectator) Dropped() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}

// Present implements engine.Presenter
func (s *Spectator) Present(frame game.Frame, stats game.Stats) {
	msg := FrameMessage{
		Type:    MsgFrame,
		Session: s.session,
		Rows:    render.FrameText(frame),
		Stats:   payload(stats),
	}

	s.mu.Lock()
	s.latest = msg.Stats
	s.frames++
	s.mu.Unlock()

	s.broadcast(msg)
}

// Publish implements Publisher
func (s *Spectator) Publish(ev Event) error {
	s.broadcast(EventMessage{Type: MsgEvent, Event: ev})
	return nil
}

func (s *Spectator) broadcast(msg any) {
	s.mu.RLock()
	empty := len(s.clients) == 0
	s.mu.RUnlock()
	if empty {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("encode spectator message: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.dropped++
		}
	}
}

func (s *Spectator) handleStats(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{
		"session": s.session,
		"frames":  s.frames,
		"clients": len(s.clients),
		"stats":   s.latest,
	})
}

func (s *Spectator) handleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warningf("spectator upgrade: %v", err)
		return
	}

	conn := &spectatorConn{
		ws:   ws,
		send: make(chan []byte, constants.SpectatorClientBuffer),
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	log.Debugf("spectator connected from %s", c.Request.RemoteAddr)

	core.Go(func() { s.writeLoop(conn) })
	s.readLoop(conn)
}

// readLoop discards client input and unregisters on disconnect
func (s *Spectator) readLoop(c *spectatorConn) {
	defer s.remove(c)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Spectator) writeLoop(c *spectatorConn) {
	defer c.ws.Close()
	for data := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			s.remove(c)
			return
		}
	}
}

func (s *Spectator) remove(c *spectatorConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}
