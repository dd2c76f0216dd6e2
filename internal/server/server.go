// Package server exposes position queries over HTTP and WebSocket.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/query"
)

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serialises writes
}

// Server answers queries against one shared, read-only board.
type Server struct {
	cfg         *config.Config
	router      *mux.Router
	handler     http.Handler
	board       *chess.Board
	upgrader    websocket.Upgrader
	clients     map[*client]struct{}
	clientsLock sync.RWMutex
}

// ErrorResponse is the body of every failed request and WebSocket reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TileInfo describes one board tile for GET /api/board.
type TileInfo struct {
	Index      int    `json:"index"`
	Coordinate string `json:"coordinate"`
}

// NewServer builds the router and middleware chain.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		board:   chess.NewBoard(),
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		s.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.Server.OriginAllowed(origin)
		}
	}

	notAllowed := s.accessLog(http.HandlerFunc(methodNotAllowedHandler))
	s.router.NotFoundHandler = s.accessLog(http.HandlerFunc(notFoundHandler))
	s.router.MethodNotAllowedHandler = notAllowed
	s.router.Use(s.accessLog)

	// Subrouters report method mismatches only through their own handler.
	api := s.router.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = notAllowed
	api.HandleFunc("/moves", s.movesHandler).Methods(http.MethodPost)
	api.HandleFunc("/check", s.checkHandler).Methods(http.MethodPost)
	api.HandleFunc("/board", s.boardHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.wsHandler)

	var h http.Handler = s.router
	if len(cfg.Server.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}
	s.handler = handlers.RecoveryHandler()(h)
	return s
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	if s.cfg.Verbosity < 1 || s.cfg.LogFile == nil {
		return next
	}
	return handlers.LoggingHandler(s.cfg.LogFile, next)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// and closes open WebSocket connections.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logf(1, "Listening on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.WriteTimeout)
	defer cancel()
	s.closeClients()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) movesHandler(w http.ResponseWriter, r *http.Request) {
	q, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	if q.Tile == "" {
		writeError(w, errors.Wrap(errors.ErrInvalidRequest, "tile is required"))
		return
	}
	q.Colour, q.All = "", false

	report, err := query.Run(s.board, q)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	output.WriteMovesJSON(w, report) //nolint:errcheck // client went away
}

func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	q, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	if q.Colour == "" {
		writeError(w, errors.Wrap(errors.ErrInvalidRequest, "colour is required"))
		return
	}

	report, err := query.Run(s.board, q)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	output.WriteReportJSON(w, report) //nolint:errcheck // client went away
}

func (s *Server) boardHandler(w http.ResponseWriter, _ *http.Request) {
	tiles := s.board.Tiles()
	out := make([]TileInfo, len(tiles))
	for i, t := range tiles {
		out[i] = TileInfo{Index: t.Index, Coordinate: t.Coordinate()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.clientsLock.RLock()
	n := len(s.clients)
	s.clientsLock.RUnlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "clients": n})
}

func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request) (query.Query, bool) {
	var q query.Query
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxMessageBytes)
	if err := json.NewDecoder(body).Decode(&q); err != nil {
		writeError(w, errors.Wrapf(errors.ErrInvalidRequest, "decode body: %v", err))
		return q, false
	}
	return q, true
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.cfg.Logf(1, "websocket upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(s.cfg.Server.MaxMessageBytes)
	s.cfg.Logf(1, "New websocket connection from %s", conn.RemoteAddr())

	c := &client{conn: conn}
	s.clientsLock.Lock()
	s.clients[c] = struct{}{}
	s.clientsLock.Unlock()

	go s.readLoop(c)
}

// readLoop answers each text frame, a JSON Query, with a Report or an
// ErrorResponse, until the connection fails.
func (s *Server) readLoop(c *client) {
	defer s.removeClient(c)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.cfg.Logf(1, "Error reading message: %v", err)
			}
			return
		}
		s.cfg.Logf(2, "Received message: %s", message)

		var reply interface{}
		var q query.Query
		if err := json.Unmarshal(message, &q); err != nil {
			reply = ErrorResponse{Error: errors.Wrapf(errors.ErrInvalidRequest, "decode frame: %v", err).Error()}
		} else if report, err := query.Run(s.board, q); err != nil {
			reply = ErrorResponse{Error: err.Error()}
		} else {
			reply = report
		}

		c.mu.Lock()
		err = c.conn.WriteJSON(reply)
		c.mu.Unlock()
		if err != nil {
			s.cfg.Logf(1, "Error writing message: %v", err)
			return
		}
	}
}

func (s *Server) removeClient(c *client) {
	s.clientsLock.Lock()
	delete(s.clients, c)
	s.clientsLock.Unlock()
	c.conn.Close()
}

func (s *Server) closeClients() {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()
	for c := range s.clients {
		c.mu.Lock()
		c.conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck // best effort on shutdown
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		c.mu.Unlock()
	}
}

// statusFor maps a query failure to an HTTP status.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrNotOnBoard):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrMissingKing):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidTile),
		stderrors.Is(err, errors.ErrInvalidRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
}
