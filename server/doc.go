// SPDX-License-Identifier: MIT

// Package server streams running simulations to websocket clients.
//
// Each connection on /ws gets its own Hub. Clients send JSON messages
// {"type": ..., "content": ...}:
//
//   - "config": content is a JSON sim.Config overlay; reply "configSet"
//     with the effective config, or "error".
//   - "start": run the simulation; replies are "frame" messages followed by
//     "finished" (or "error").
//   - "stop": cancel the running simulation; reply "stopped".
//
// Anything else gets an "error" reply.
package server
