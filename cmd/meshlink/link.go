package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/router"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/state"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

// link is a configured session with its envelopes routed into node state.
type link struct {
	sess   *session.Session
	state  *state.Manager
	routed chan struct{}
}

// openLink validates the configuration, opens the transport, runs the
// handshake and starts routing. tap sees every envelope after state does.
func (a *app) openLink(ctx context.Context, tap func(*pb.FromRadio)) (*link, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	opener, err := transport.New(a.cfg.TransportOptions(), a.log)
	if err != nil {
		return nil, err
	}
	st, err := state.New(ctx, nil, a.log)
	if err != nil {
		return nil, err
	}

	tr, err := transport.OpenWithRetry(ctx, opener, a.log)
	if err != nil {
		return nil, err
	}
	sess := session.New(
		session.WithConfig(a.cfg.SessionConfig()),
		session.WithLogger(a.log),
	)
	events, err := sess.Connect(tr)
	if err != nil {
		tr.Close()
		return nil, err
	}

	l := &link{sess: sess, state: st, routed: make(chan struct{})}
	go func() {
		defer close(l.routed)
		router.Route(ctx, events, st, a.log, tap) //nolint:errcheck
	}()

	id := sess.NextConfigID()
	if err := sess.Configure(ctx, id); err != nil {
		l.close()
		return nil, fmt.Errorf("handshake failed: %w", err)
	}
	a.log.Info("radio configured",
		zap.Uint32("config_id", id),
		zap.Uint32("node", st.SourceNodeID()),
		zap.Int("nodes", st.NodeCount()),
	)
	return l, nil
}

// client returns a packet client bound to this link.
func (l *link) client(log *zap.Logger) *router.Client {
	return router.NewClient(l.sess, l.state, log)
}

// close says goodbye to the radio and waits for routing to finish.
func (l *link) close() {
	l.sess.Disconnect() //nolint:errcheck
	<-l.routed
}
