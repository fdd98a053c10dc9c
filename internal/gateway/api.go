package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/router"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/store"
)

// NodeState is the read side of state.Manager the API serves.
type NodeState interface {
	ListNodes() []*store.Node
	GetNode(num uint32) (*store.Node, bool)
	NodeCount() int
	Channels() []*pb.Channel
	RecentMessages(ctx context.Context, n int) ([]*store.Message, error)
	SourceNodeID() uint32
}

// Link is the radio connection the API reports on and sends through.
type Link interface {
	LinkState() session.State
	SendText(ctx context.Context, text string, dest router.Destination, wantAck bool, channel uint32) (*pb.MeshPacket, error)
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(_ *http.Request) bool { return true },
}

const wsPingInterval = 20 * time.Second

// Server holds handler dependencies.
type Server struct {
	state NodeState
	link  Link
	bus   *EventBus
	log   *zap.Logger
}

// NewRouter wires the /api/v1/* routes and /metrics.
func NewRouter(st NodeState, link Link, bus *EventBus, gatherer prometheus.Gatherer, log *zap.Logger) http.Handler {
	s := &Server{state: st, link: link, bus: bus, log: log}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/nodes", s.listNodes)
	mux.HandleFunc("GET /api/v1/nodes/{id}", s.getNode)

	mux.HandleFunc("GET /api/v1/messages", s.listMessages)
	mux.HandleFunc("POST /api/v1/messages", s.sendMessage)

	mux.HandleFunc("GET /api/v1/channels", s.listChannels)
	mux.HandleFunc("GET /api/v1/status", s.status)

	mux.HandleFunc("GET /api/v1/events", s.eventStream)

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return withLogging(log, mux)
}

// ── Nodes ─────────────────────────────────────────────────────────────────

func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	nodes := s.state.ListNodes()
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes": nodes,
		"count": len(nodes),
	})
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	num, err := parseNodeID(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	node, ok := s.state.GetNode(num)
	if !ok {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, node)
}

// parseNodeID accepts "!deadbeef" and decimal node numbers.
func parseNodeID(s string) (uint32, error) {
	var (
		n   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(s, "!"); ok {
		n, err = strconv.ParseUint(hex, 16, 32)
	} else {
		n, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", s)
	}
	return uint32(n), nil
}

// ── Messages ──────────────────────────────────────────────────────────────

// messageView adds the decoded text of TEXT_MESSAGE_APP payloads.
type messageView struct {
	*store.Message
	Text string `json:"text,omitempty"`
}

func viewMessage(m *store.Message) messageView {
	v := messageView{Message: m}
	if pb.PortNum(m.PortNum) == pb.PortNum_TEXT_MESSAGE_APP {
		v.Text = string(m.Payload)
	}
	return v
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50, 1, 500)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	msgs, err := s.state.RecentMessages(r.Context(), limit)
	if err != nil {
		s.log.Error("api: list messages", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]messageView, len(msgs))
	for i, m := range msgs {
		out[i] = viewMessage(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": out,
		"count":    len(out),
	})
}

type sendMessageRequest struct {
	Text    string `json:"text"`
	Channel uint32 `json:"channel"`
	To      string `json:"to"` // "" or "broadcast", "!hex" or decimal
	WantAck bool   `json:"want_ack"`
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text must not be empty", http.StatusBadRequest)
		return
	}
	dest := router.Broadcast()
	if req.To != "" && req.To != "broadcast" {
		num, err := parseNodeID(req.To)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dest = router.Node(num)
	}

	p, err := s.link.SendText(r.Context(), req.Text, dest, req.WantAck, req.Channel)
	switch {
	case err == nil:
	case errors.Is(err, router.ErrPayloadTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, session.ErrNotConnected), errors.Is(err, session.ErrWriteQueueFull):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	default:
		s.log.Error("api: send message", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"id":     p.GetId(),
		"to":     dest.String(),
		"status": "queued",
	})
}

// ── Channels ──────────────────────────────────────────────────────────────

type channelView struct {
	Index int32  `json:"index"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (s *Server) listChannels(w http.ResponseWriter, r *http.Request) {
	chans := s.state.Channels()
	out := make([]channelView, 0, len(chans))
	for _, ch := range chans {
		out = append(out, channelView{
			Index: ch.GetIndex(),
			Name:  ch.GetSettings().GetName(),
			Role:  ch.GetRole().String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"channels": out})
}

// ── Status ────────────────────────────────────────────────────────────────

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":      "ok",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"link":        s.link.LinkState().String(),
		"node_count":  s.state.NodeCount(),
		"subscribers": s.bus.Len(),
	}
	if num := s.state.SourceNodeID(); num != 0 {
		body["node"] = store.NodeID(num)
	}
	writeJSON(w, http.StatusOK, body)
}

// ── WebSocket event stream ────────────────────────────────────────────────

func (s *Server) eventStream(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("api: ws upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	ch, unsub := s.bus.Subscribe()
	defer unsub()

	// Clients only send control frames; reading notices when they leave.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				s.log.Debug("api: ws write", zap.Error(err))
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-gone:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// ── Middleware ────────────────────────────────────────────────────────────

func withLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rw, r)
		log.Debug("api",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.code),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	code int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.code = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack passes through to the underlying writer for WebSocket upgrades.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("api: response writer cannot hijack")
	}
	return h.Hijack()
}

// ── helpers ───────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func queryInt(r *http.Request, key string, def, min, max int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%s must be %d..%d", key, min, max)
	}
	return n, nil
}
