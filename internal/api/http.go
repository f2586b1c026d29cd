package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"coordinates/internal/cache"
	"coordinates/internal/coordinate"
)

type Server struct {
	log         *zap.Logger
	conversions *cache.Sharded[coordinate.CartesianPoint]
	mux         *http.ServeMux
	upgrader    websocket.Upgrader
}

// NewServer wires the conversion endpoints. conversions caches
// spherical-to-Cartesian results; nil disables caching.
func NewServer(log *zap.Logger, conversions *cache.Sharded[coordinate.CartesianPoint]) *Server {
	s := &Server{
		log:         log,
		conversions: conversions,
		mux:         http.NewServeMux(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.withRequestLog(s.mux) }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)

	s.mux.HandleFunc("/cartesian/distance", s.post(opDistance))
	s.mux.HandleFunc("/cartesian/vector", s.post(opVector))
	s.mux.HandleFunc("/cartesian/apply", s.post(opApply))
	s.mux.HandleFunc("/cartesian/to-spherical", s.post(opToSpherical))
	s.mux.HandleFunc("/spherical/to-cartesian", s.post(opToCartesian))

	s.mux.HandleFunc("/angle/to-radians", s.angle(opToRadians))
	s.mux.HandleFunc("/angle/to-degrees", s.angle(opToDegrees))

	s.mux.HandleFunc("/ws", s.stream)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// post serves a JSON request body through the named operation.
func (s *Server) post(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}

		req, err := decodeRequest(r.Body)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := s.dispatch(op, req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeResult(w, r, res)
	}
}

// angle serves GET ?value=<number> through the named operation.
func (s *Server) angle(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "GET only", http.StatusMethodNotAllowed)
			return
		}

		var req request
		if raw := r.URL.Query().Get("value"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				http.Error(w, "value must be a finite number", http.StatusBadRequest)
				return
			}
			req.Value = &v
		}

		res, err := s.dispatch(op, req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeResult(w, r, res)
	}
}

// jsonDecoder keeps numbers as json.Number so coordinates are coerced in
// one place.
func jsonDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// decodeRequest treats an empty body as an empty request.
func decodeRequest(r io.Reader) (request, error) {
	var req request
	if err := jsonDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return request{}, err
	}
	return req, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, coordinate.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.Error("operation failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeResult replies 200 only once v is fully encoded. A result JSON
// cannot hold, such as a distance that overflowed to +Inf, is a 422.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, v any) {
	body, err := encodeJSON(v)
	if err != nil {
		s.log.Warn("result not encodable", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, errUnencodable.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

var errUnencodable = errors.New("result is not a finite number")

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
