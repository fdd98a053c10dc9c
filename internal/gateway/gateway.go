// Package gateway keeps a session to the radio alive, feeds what it receives
// into node state and an event bus, and serves both over HTTP.
//
// Routes:
//
//	GET  /api/v1/status         link and gateway health
//	GET  /api/v1/nodes          all known nodes
//	GET  /api/v1/nodes/{id}     one node, by "!hex" or decimal number
//	GET  /api/v1/messages       stored text messages and waypoints
//	POST /api/v1/messages       send a text message
//	GET  /api/v1/channels       the radio's channel table
//	GET  /api/v1/events         WebSocket live stream
//	GET  /metrics               Prometheus metrics
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/config"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/router"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/state"
	"github.com/gg-glitch-88/meshlink/internal/store"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

const (
	linkRetryMin = 2 * time.Second
	linkRetryMax = 60 * time.Second
)

// Gateway is the central application service.
type Gateway struct {
	cfg     *config.Config
	opener  transport.Opener
	state   *state.Manager
	log     *zap.Logger
	bus     *EventBus
	reg     *prometheus.Registry
	metrics *session.Metrics
	handler http.Handler

	mu     sync.RWMutex
	sess   *session.Session
	client *router.Client
}

// New constructs a Gateway without starting it.
func New(cfg *config.Config, opener transport.Opener, st *state.Manager, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gateway{
		cfg:    cfg,
		opener: opener,
		state:  st,
		log:    log,
		reg:    prometheus.NewRegistry(),
	}

	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "meshlink",
		Subsystem: "gateway",
		Name:      "events_dropped_total",
		Help:      "Events a slow WebSocket client missed.",
	})
	g.bus = NewEventBus(dropped.Inc)
	g.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		dropped,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "meshlink",
			Subsystem: "gateway",
			Name:      "subscribers",
			Help:      "Connected WebSocket clients.",
		}, func() float64 { return float64(g.bus.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "meshlink",
			Subsystem: "gateway",
			Name:      "nodes",
			Help:      "Known mesh nodes.",
		}, func() float64 { return float64(st.NodeCount()) }),
	)
	g.metrics = session.NewMetrics(g.reg)
	g.handler = NewRouter(st, g, g.bus, g.reg, log)
	return g
}

// Handler returns the HTTP handler, for embedding or tests.
func (g *Gateway) Handler() http.Handler { return g.handler }

// Bus returns the event bus.
func (g *Gateway) Bus() *EventBus { return g.bus }

// Start runs the radio link and the HTTP server until ctx is cancelled.
func (g *Gateway) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.cfg.Gateway.ListenAddr)
	if err != nil {
		return fmt.Errorf("gateway: listen %s: %w", g.cfg.Gateway.ListenAddr, err)
	}
	g.log.Info("HTTP gateway listening", zap.String("addr", ln.Addr().String()))

	srv := &http.Server{
		Handler:           g.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	linkDone := make(chan struct{})
	go func() {
		defer close(linkDone)
		g.RunLink(ctx)
	}()

	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		g.log.Info("context cancelled, shutting down gateway")
	case err = <-srvErr:
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutCtx); err == nil {
		err = serr
	}
	<-linkDone
	return err
}

// ── Radio link ────────────────────────────────────────────────────────────

// RunLink keeps a configured session to the radio until ctx ends,
// reconnecting with exponential backoff when the link drops.
func (g *Gateway) RunLink(ctx context.Context) {
	backoff := linkRetryMin
	for {
		active, err := g.runSession(ctx)
		if ctx.Err() != nil {
			return
		}
		if active {
			backoff = linkRetryMin
		}
		g.log.Warn("gateway: link lost", zap.Duration("retry_in", backoff), zap.Error(err))
		g.publishLink(session.StateClosed, err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, linkRetryMax)
	}
}

// runSession runs one session from open to close. It reports whether the
// handshake completed.
func (g *Gateway) runSession(ctx context.Context) (bool, error) {
	tr, err := transport.OpenWithRetry(ctx, g.opener, g.log)
	if err != nil {
		return false, err
	}
	sess := session.New(
		session.WithConfig(g.cfg.SessionConfig()),
		session.WithLogger(g.log),
		session.WithMetrics(g.metrics),
	)
	events, err := sess.Connect(tr)
	if err != nil {
		tr.Close()
		return false, err
	}
	g.setSession(sess)
	defer g.setSession(nil)

	routed := make(chan struct{})
	go func() {
		defer close(routed)
		router.Route(ctx, events, g.state, g.log, g.publish) //nolint:errcheck
	}()

	id := sess.NextConfigID()
	if err := sess.Configure(ctx, id); err != nil {
		sess.Disconnect() //nolint:errcheck
		<-routed
		return false, fmt.Errorf("gateway: configure: %w", err)
	}
	g.log.Info("gateway: radio configured",
		zap.Uint32("config_id", id),
		zap.String("node", store.NodeID(g.state.SourceNodeID())),
		zap.Int("nodes", g.state.NodeCount()),
	)
	g.publishLink(session.StateActive, nil)

	select {
	case <-ctx.Done():
		sess.Disconnect() //nolint:errcheck
		<-routed
		return true, ctx.Err()
	case <-sess.Done():
		<-routed
		return true, sess.Err()
	}
}

func (g *Gateway) setSession(s *session.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sess = s
	g.client = nil
	if s != nil {
		g.client = router.NewClient(s, g.state, g.log)
	}
}

// LinkState is the state of the current session, or Idle between sessions.
func (g *Gateway) LinkState() session.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.sess == nil {
		return session.StateIdle
	}
	return g.sess.State()
}

// SendText sends a text message through the current session.
func (g *Gateway) SendText(ctx context.Context, text string, dest router.Destination, wantAck bool, channel uint32) (*pb.MeshPacket, error) {
	g.mu.RLock()
	c := g.client
	g.mu.RUnlock()
	if c == nil {
		return nil, session.ErrNotConnected
	}
	p, err := c.SendText(ctx, text, dest, wantAck, channel)
	if err != nil {
		return nil, err
	}
	g.publishPacket(p)
	return p, nil
}

// ── Events ────────────────────────────────────────────────────────────────

// publish turns a routed envelope into bus events. It runs after state has
// applied the envelope.
func (g *Gateway) publish(env *pb.FromRadio) {
	switch v := env.GetPayloadVariant().(type) {
	case *pb.FromRadio_Packet:
		g.publishPacket(v.Packet)
	case *pb.FromRadio_NodeInfo:
		if v.NodeInfo != nil {
			g.publishNode(EventNodeUpdate, v.NodeInfo.Num)
		}
	case *pb.FromRadio_LogRecord:
		g.bus.Publish(Event{Type: EventLog, Data: v.LogRecord})
	case *pb.FromRadio_QueueStatus:
		g.bus.Publish(Event{Type: EventStatus, Data: map[string]any{"queue": v.QueueStatus}})
	case *pb.FromRadio_Rebooted:
		g.bus.Publish(Event{Type: EventStatus, Data: map[string]any{"rebooted": true}})
	}
}

func (g *Gateway) publishPacket(p *pb.MeshPacket) {
	d := p.GetDecoded()
	if d == nil {
		return
	}
	switch d.Portnum {
	case pb.PortNum_TEXT_MESSAGE_APP:
		at := time.Now().UTC()
		if p.RxTime != 0 {
			at = time.Unix(int64(p.RxTime), 0).UTC()
		}
		g.bus.Publish(Event{Type: EventMessage, Data: viewMessage(&store.Message{
			PacketID:   p.Id,
			FromNode:   p.From,
			ToNode:     p.To,
			Channel:    p.Channel,
			PortNum:    int32(d.Portnum),
			Payload:    d.Payload,
			RxSNR:      p.RxSnr,
			RxRSSI:     p.RxRssi,
			ReceivedAt: at,
		})})
	case pb.PortNum_POSITION_APP:
		g.publishNode(EventPositionUpdate, p.From)
	case pb.PortNum_NODEINFO_APP:
		g.publishNode(EventNodeUpdate, p.From)
	}
}

func (g *Gateway) publishNode(t EventType, num uint32) {
	if n, ok := g.state.GetNode(num); ok {
		g.bus.Publish(Event{Type: t, Data: n})
	}
}

func (g *Gateway) publishLink(st session.State, cause error) {
	data := map[string]any{"link": st.String()}
	if cause != nil {
		data["error"] = cause.Error()
	}
	g.bus.Publish(Event{Type: EventStatus, Data: data})
}
