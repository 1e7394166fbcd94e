package spectate

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Server exposes the hub and the status registry over HTTP
//
//	GET /state   latest snapshot
//	GET /status  metrics
//	GET /ws      websocket event stream
type Server struct {
	hub       *Hub
	statusReg *status.Registry
	router    *gin.Engine
	upgrader  websocket.Upgrader
	http      *http.Server
}

// NewServer builds the routes; request logs go to logOut
func NewServer(hub *Hub, statusReg *status.Registry, logOut io.Writer) *Server {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	if logOut == nil {
		logOut = io.Discard
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logOut), gin.RecoveryWithWriter(logOut))

	s := &Server{
		hub:       hub,
		statusReg: statusReg,
		router:    router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Read-only stream, any origin may watch
			},
		},
	}

	router.GET("/state", s.handleState)
	router.GET("/status", s.handleStatus)
	router.GET("/ws", s.handleWS)
	return s
}

// Handler returns the HTTP handler, used directly by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background
// Returns the bound address, useful when addr has port 0
func (s *Server) Start(addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s.http = &http.Server{Handler: s.router}

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: serve: %v", err)
		}
	})
	log.Printf("spectate: listening on %s", ln.Addr())
	return ln.Addr(), nil
}

// Shutdown disconnects spectators and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, parameter.SpectateShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func (s *Server) handleState(c *gin.Context) {
	snap, ok := s.hub.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no game in progress"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.statusReg.Snapshot())
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		log.Printf("spectate: upgrade: %v", err)
		return
	}

	cl := &client{hub: s.hub, conn: conn, send: newClientQueue()}
	if !s.hub.register(cl) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	core.Go(cl.writePump)
	core.Go(cl.readPump)
}
