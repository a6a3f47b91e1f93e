// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatlab/sim"
)

// outboxSize bounds queued replies per connection.
const outboxSize = 16

var errClosed = errors.New("server: connection closed")

// Hub serves one websocket connection: it owns the connection's config and
// at most one running simulation. All writes go through handleResponse.
type Hub struct {
	conn *websocket.Conn
	log  *log.Entry

	out  chan Msg
	done chan struct{}

	mu      sync.Mutex
	cfg     sim.Config
	cancel  context.CancelFunc
	running sync.WaitGroup
}

// NewHub returns a hub for conn starting from cfg.
func NewHub(conn *websocket.Conn, cfg sim.Config, entry *log.Entry) *Hub {
	return &Hub{
		conn: conn,
		log:  entry,
		out:  make(chan Msg, outboxSize),
		done: make(chan struct{}),
		cfg:  cfg,
	}
}

// handleResponse is the only goroutine that writes to the connection.
func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.out:
			if err := h.conn.WriteJSON(&reply); err != nil {
				h.log.WithError(err).Warn("write failed")
			}
		case <-h.done:
			return
		}
	}
}

// send queues a reply unless the connection is gone.
func (h *Hub) send(msg Msg) error {
	select {
	case h.out <- msg:
		return nil
	case <-h.done:
		return errClosed
	}
}

func (h *Hub) sendError(err error) {
	_ = h.send(Msg{Type: TypeError, Content: err.Error()})
}

// handleRequest dispatches one client message.
func (h *Hub) handleRequest(msg Msg) {
	h.log.WithField("type", msg.Type).Debug("request")
	switch msg.Type {
	case TypeConfig:
		h.setConfig(msg.Content)
	case TypeStart:
		h.start()
	case TypeStop:
		h.stop()
		_ = h.send(Msg{Type: TypeStopped, Content: "stopped"})
	default:
		h.sendError(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (h *Hub) setConfig(content string) {
	h.mu.Lock()
	cfg := h.cfg
	if err := json.Unmarshal([]byte(content), &cfg); err != nil {
		h.mu.Unlock()
		h.sendError(fmt.Errorf("config: %w", err))
		return
	}
	if err := cfg.Validate(); err != nil {
		h.mu.Unlock()
		h.sendError(err)
		return
	}
	h.cfg = cfg
	h.mu.Unlock()

	h.log.WithFields(log.Fields{
		"n":          cfg.N,
		"epsilon":    cfg.Epsilon,
		"iterations": cfg.Iterations,
		"method":     cfg.Method.String(),
	}).Info("config set")
	reply, err := encode(TypeConfigSet, cfg)
	if err != nil {
		h.sendError(err)
		return
	}
	_ = h.send(reply)
}

func (h *Hub) start() {
	h.mu.Lock()
	if h.cancel != nil {
		h.mu.Unlock()
		h.sendError(errors.New("simulation already running"))
		return
	}
	runner, err := sim.NewRunner(h.cfg, h.log.Logger)
	if err != nil {
		h.mu.Unlock()
		h.sendError(err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.running.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.running.Done()
		defer h.clearRun(cancel)
		res, err := runner.Run(ctx, func(f sim.Frame) error {
			reply, err := encode(TypeFrame, newFrameData(f))
			if err != nil {
				return err
			}
			return h.send(reply)
		})
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, errClosed):
			return
		case err != nil:
			h.sendError(err)
			return
		}
		if reply, err := encode(TypeFinished, newFinishedData(res)); err == nil {
			_ = h.send(reply)
		}
	}()
}

// clearRun releases the run's context and marks the hub idle.
func (h *Hub) clearRun(cancel context.CancelFunc) {
	cancel()
	h.mu.Lock()
	h.cancel = nil
	h.mu.Unlock()
}

// stop cancels the running simulation and waits for it to exit.
func (h *Hub) stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	h.running.Wait()
}

// close stops any run and releases the writer goroutine.
func (h *Hub) close() {
	h.stop()
	close(h.done)
}
