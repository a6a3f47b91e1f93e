// SPDX-License-Identifier: MIT
package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatlab/heat"
	"github.com/katalvlaran/heatlab/server"
	"github.com/katalvlaran/heatlab/sim"
)

// dial starts a test server and returns a connected client.
func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	logger, _ := test.NewNullLogger()
	ts := httptest.NewServer(server.NewServer(":0", logger).Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ, content string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(server.Msg{Type: typ, Content: content}))
}

func recv(t *testing.T, conn *websocket.Conn) server.Msg {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	var msg server.Msg
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestConfigThenStart(t *testing.T) {
	conn := dial(t)

	send(t, conn, server.TypeConfig, `{"n":9,"iterations":6,"frame_every":3,"method":"stencil"}`)
	reply := recv(t, conn)
	require.Equal(t, server.TypeConfigSet, reply.Type)
	var cfg sim.Config
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &cfg))
	require.Equal(t, 9, cfg.N)
	require.Equal(t, heat.MethodStencil, cfg.Method)
	require.Equal(t, sim.DefaultEpsilon, cfg.Epsilon, "fields not in the overlay keep their value")

	send(t, conn, server.TypeStart, "")
	var steps []int
	for {
		msg := recv(t, conn)
		if msg.Type == server.TypeFinished {
			var fin server.FinishedData
			require.NoError(t, json.Unmarshal([]byte(msg.Content), &fin))
			require.Equal(t, 6, fin.Steps)
			require.Equal(t, 3, fin.Frames)
			break
		}
		require.Equal(t, server.TypeFrame, msg.Type)
		var fd server.FrameData
		require.NoError(t, json.Unmarshal([]byte(msg.Content), &fd))
		require.Len(t, fd.Rows, 9)
		steps = append(steps, fd.Step)
	}
	require.Equal(t, []int{0, 3, 6}, steps)
}

func TestInvalidConfigAndUnknownType(t *testing.T) {
	conn := dial(t)

	send(t, conn, server.TypeConfig, `{"n":0}`)
	require.Equal(t, server.TypeError, recv(t, conn).Type)

	send(t, conn, server.TypeConfig, `not json`)
	require.Equal(t, server.TypeError, recv(t, conn).Type)

	send(t, conn, server.TypeConfig, `{"method":"fft"}`)
	require.Equal(t, server.TypeError, recv(t, conn).Type)

	send(t, conn, "env", "")
	msg := recv(t, conn)
	require.Equal(t, server.TypeError, msg.Type)
	require.Contains(t, msg.Content, "env")
}

// TestOversizedConfigRejected ensures a client cannot configure a grid the
// server would be unable to allocate.
func TestOversizedConfigRejected(t *testing.T) {
	conn := dial(t)

	send(t, conn, server.TypeConfig, `{"n":2000,"method":"dense"}`)
	msg := recv(t, conn)
	require.Equal(t, server.TypeError, msg.Type)
	require.Contains(t, msg.Content, "dense")

	send(t, conn, server.TypeConfig, `{"n":1000000,"method":"sparse"}`)
	msg = recv(t, conn)
	require.Equal(t, server.TypeError, msg.Type)
	require.Contains(t, msg.Content, "exceeds")

	send(t, conn, server.TypeConfig, `{"n":8,"method":"dense"}`)
	require.Equal(t, server.TypeConfigSet, recv(t, conn).Type)
}

func TestStopIdleAndRunning(t *testing.T) {
	conn := dial(t)

	send(t, conn, server.TypeStop, "")
	require.Equal(t, server.TypeStopped, recv(t, conn).Type)

	// A long run with a frame every step; stop it after the first frame.
	send(t, conn, server.TypeConfig, `{"n":31,"iterations":100000,"frame_every":1,"method":"parallel"}`)
	require.Equal(t, server.TypeConfigSet, recv(t, conn).Type)
	send(t, conn, server.TypeStart, "")
	require.Equal(t, server.TypeFrame, recv(t, conn).Type)
	send(t, conn, server.TypeStop, "")

	for {
		msg := recv(t, conn)
		if msg.Type == server.TypeStopped {
			break
		}
		require.Equal(t, server.TypeFrame, msg.Type)
	}

	// The hub is idle again and accepts a new run.
	send(t, conn, server.TypeConfig, `{"n":5,"iterations":1,"frame_every":0}`)
	require.Equal(t, server.TypeConfigSet, recv(t, conn).Type)
	send(t, conn, server.TypeStart, "")
	require.Equal(t, server.TypeFrame, recv(t, conn).Type)
	require.Equal(t, server.TypeFrame, recv(t, conn).Type)
	require.Equal(t, server.TypeFinished, recv(t, conn).Type)
}
