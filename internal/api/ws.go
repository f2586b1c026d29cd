package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// streamRequest is one frame on /ws: an operation name plus its arguments.
type streamRequest struct {
	ID string `json:"id,omitempty"`
	Op string `json:"op"`
	request
}

type streamResponse struct {
	ID     string `json:"id,omitempty"`
	Op     string `json:"op"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// stream answers every request frame with exactly one response frame until
// the client closes the connection.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	// the hijacked handshake does not carry w.Header()
	header := http.Header{}
	if id := w.Header().Get(requestIDHeader); id != "" {
		header.Set(requestIDHeader, id)
	}

	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade already replied to the client
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var resp streamResponse
		var req streamRequest
		if err := decodeStreamRequest(data, &req); err != nil {
			resp.Error = "invalid json"
		} else {
			resp.ID, resp.Op = req.ID, req.Op
			res, err := s.dispatch(req.Op, req.request)
			if err != nil {
				resp.Error = err.Error()
			} else {
				resp.Result = res
			}
		}

		frame, err := json.Marshal(resp)
		if err != nil {
			s.log.Warn("result not encodable", zap.String("op", resp.Op), zap.Error(err))
			resp.Result, resp.Error = nil, errUnencodable.Error()
			frame, _ = json.Marshal(resp)
		}
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			s.log.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func decodeStreamRequest(data []byte, req *streamRequest) error {
	dec := jsonDecoder(bytes.NewReader(data))
	return dec.Decode(req)
}
