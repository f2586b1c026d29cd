package api

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialStream(t *testing.T) *websocket.Conn {
	t.Helper()
	ts, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame string) map[string]any {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	var out map[string]any
	require.NoError(t, conn.ReadJSON(&out))
	return out
}

func TestStreamOperations(t *testing.T) {
	conn := dialStream(t)

	out := roundTrip(t, conn, `{"id": "1", "op": "distance", "from": {"x": 0, "y": 0, "z": 1}, "to": {"x": 1, "y": 2, "z": 2}}`)
	assert.Equal(t, "1", out["id"])
	assert.Equal(t, "distance", out["op"])
	assert.Equal(t, 2.449489742783178, out["result"].(map[string]any)["distance"])

	out = roundTrip(t, conn, `{"id": "2", "op": "to-radians", "value": 45}`)
	assert.Equal(t, math.Pi/4, out["result"].(map[string]any)["value"])

	out = roundTrip(t, conn, `{"id": "3", "op": "to-cartesian", "spherical": {"radialDistance": 1, "polarAngle": 0}}`)
	c := out["result"].(map[string]any)["cartesian"].(map[string]any)
	assert.InDelta(t, 1.0, c["x"], 1e-12)
	assert.Contains(t, c, "z")
}

func TestStreamErrorsKeepConnectionOpen(t *testing.T) {
	conn := dialStream(t)

	out := roundTrip(t, conn, `{"id": "a", "op": "teleport"}`)
	assert.Equal(t, "a", out["id"])
	assert.Contains(t, out["error"], "unknown operation")

	out = roundTrip(t, conn, `{"id": "b", "op": "apply", "point": {"x": 1, "y": 1}}`)
	assert.Contains(t, out["error"], "vector is required")

	out = roundTrip(t, conn, `not json`)
	assert.Equal(t, "invalid json", out["error"])

	out = roundTrip(t, conn, `{"op": "vector", "from": {"x": 0, "y": 0}, "to": {"x": 1, "y": 1}}`)
	assert.Equal(t, []any{1.0, 1.0, 0.0}, out["result"].(map[string]any)["vector"])
}

func TestStreamUnencodableResult(t *testing.T) {
	conn := dialStream(t)

	out := roundTrip(t, conn, `{"id": "big", "op": "distance", "from": {"x": -1e308, "y": 0}, "to": {"x": 1e308, "y": 0}}`)
	assert.Equal(t, "big", out["id"])
	assert.Equal(t, "result is not a finite number", out["error"])
	assert.NotContains(t, out, "result")

	out = roundTrip(t, conn, `{"op": "distance", "from": {"x": 0, "y": 0}, "to": {"x": 3e200, "y": 4e200}}`)
	assert.InEpsilon(t, 5e200, out["result"].(map[string]any)["distance"], 1e-15)
}
