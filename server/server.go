// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatlab/sim"
)

const shutdownTimeout = 5 * time.Second

// Server accepts websocket clients on /ws.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	log      *log.Logger
	base     sim.Config
}

// NewServer returns a server for addr. Every connection starts from
// sim.DefaultConfig; a nil logger means the logrus standard logger.
func NewServer(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log:  logger,
		base: sim.DefaultConfig(),
	}
}

// WithBaseConfig replaces the starting config of new connections.
func (s *Server) WithBaseConfig(cfg sim.Config) *Server {
	s.base = cfg
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)

	return mux
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("upgrade failed")
		return
	}
	defer conn.Close()

	entry := s.log.WithField("remote", r.RemoteAddr)
	entry.Info("client connected")
	hub := NewHub(conn, s.base, entry)
	go hub.handleResponse()
	defer hub.close()

	for {
		var msg Msg
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				entry.WithError(err).Warn("read failed")
			}
			entry.Info("client disconnected")
			return
		}
		hub.handleRequest(msg)
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
