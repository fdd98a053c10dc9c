// Package router sits between a session's consumer channel and the
// application: it classifies envelopes, hands them to a PacketRouter, and
// builds outgoing mesh packets on the application's behalf.
package router

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

// PacketRouter receives everything the radio sends and every packet the
// host echoes locally. SourceNodeID is the node number packets are sent from.
type PacketRouter interface {
	HandleFromRadio(ctx context.Context, env *pb.FromRadio) error
	HandleMeshPacket(ctx context.Context, p *pb.MeshPacket) error
	SourceNodeID() uint32
}

// Category groups envelope variants by what a consumer does with them.
type Category int

const (
	CategoryOther Category = iota
	// CategorySnapshot is device state replayed during the handshake.
	CategorySnapshot
	// CategoryMesh is traffic received over the air.
	CategoryMesh
	// CategoryLog is the device's own log output.
	CategoryLog
	// CategoryStatus is link housekeeping such as queue status or reboots.
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategorySnapshot:
		return "snapshot"
	case CategoryMesh:
		return "mesh"
	case CategoryLog:
		return "log"
	case CategoryStatus:
		return "status"
	default:
		return "other"
	}
}

// Classify returns the category of env.
func Classify(env *pb.FromRadio) Category {
	if env == nil {
		return CategoryOther
	}
	switch env.GetPayloadVariant().(type) {
	case *pb.FromRadio_MyInfo, *pb.FromRadio_NodeInfo, *pb.FromRadio_Config, *pb.FromRadio_ModuleConfig,
		*pb.FromRadio_Channel, *pb.FromRadio_Metadata, *pb.FromRadio_ConfigCompleteId:
		return CategorySnapshot
	case *pb.FromRadio_Packet:
		return CategoryMesh
	case *pb.FromRadio_LogRecord:
		return CategoryLog
	case *pb.FromRadio_QueueStatus, *pb.FromRadio_Rebooted:
		return CategoryStatus
	default:
		return CategoryOther
	}
}

// Route feeds every envelope from events to r until the channel closes or
// ctx ends. Handler errors are logged and do not stop routing. Each envelope
// is also passed to tap, when set, after r has seen it.
func Route(ctx context.Context, events <-chan *pb.FromRadio, r PacketRouter, log *zap.Logger, tap func(*pb.FromRadio)) error {
	if log == nil {
		log = zap.NewNop()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-events:
			if !ok {
				return nil
			}
			if err := Dispatch(ctx, r, env); err != nil {
				log.Warn("router: handler failed",
					zap.String("variant", proto.Variant(env)),
					zap.Stringer("category", Classify(env)),
					zap.Error(err),
				)
			}
			if tap != nil {
				tap(env)
			}
		}
	}
}

// Dispatch hands one envelope to r. Mesh packets additionally go through
// HandleMeshPacket.
func Dispatch(ctx context.Context, r PacketRouter, env *pb.FromRadio) error {
	if err := r.HandleFromRadio(ctx, env); err != nil {
		return fmt.Errorf("router: from radio: %w", err)
	}
	if p := env.GetPacket(); p != nil {
		if err := r.HandleMeshPacket(ctx, p); err != nil {
			return fmt.Errorf("router: mesh packet: %w", err)
		}
	}
	return nil
}
