package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/store"
)

func newListenCmd(a *app) *cobra.Command {
	var showAll bool
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Connect to the radio and print what it reports until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			l, err := a.openLink(ctx, func(env *pb.FromRadio) {
				if line := describe(env); line != "" || showAll {
					if line == "" {
						line = proto.Variant(env)
					}
					fmt.Fprintln(out, line)
				}
			})
			if err != nil {
				return err
			}
			printSummary(out, l)

			select {
			case <-ctx.Done():
				l.close()
				return nil
			case <-l.sess.Done():
				<-l.routed
				return l.sess.Err()
			}
		},
	}
	cmd.Flags().BoolVar(&showAll, "all", false, "also print handshake snapshot envelopes")
	return cmd
}

func printSummary(w io.Writer, l *link) {
	fmt.Fprintf(w, "Connected as %s, %d nodes known.\n", store.NodeID(l.state.SourceNodeID()), l.state.NodeCount())
	if md, ok := l.state.Metadata(); ok {
		fmt.Fprintf(w, "Firmware %s.\n", md.GetFirmwareVersion())
	}
	for _, ch := range l.state.Channels() {
		fmt.Fprintf(w, "Channel %d %s %q\n", ch.GetIndex(), ch.GetRole(), ch.GetSettings().GetName())
	}
}

// describe renders live traffic as one line. Snapshot envelopes render empty.
func describe(env *pb.FromRadio) string {
	switch v := env.GetPayloadVariant().(type) {
	case *pb.FromRadio_Packet:
		p := v.Packet
		if p == nil {
			return ""
		}
		d := p.GetDecoded()
		if d == nil {
			return fmt.Sprintf("%s -> %s ch%d encrypted (%d bytes)",
				store.NodeID(p.From), store.NodeID(p.To), p.Channel, len(p.GetEncrypted()))
		}
		line := fmt.Sprintf("%s -> %s ch%d %s",
			store.NodeID(p.From), store.NodeID(p.To), p.Channel, proto.MessageTypeLabel(d.Portnum))
		if d.Portnum == pb.PortNum_TEXT_MESSAGE_APP {
			line += fmt.Sprintf(": %q", d.Payload)
		}
		return line
	case *pb.FromRadio_LogRecord:
		if v.LogRecord == nil {
			return ""
		}
		return fmt.Sprintf("log [%s] %s", v.LogRecord.Source, v.LogRecord.Message)
	case *pb.FromRadio_QueueStatus:
		q := v.QueueStatus
		if q == nil {
			return ""
		}
		return fmt.Sprintf("queue res=%d free=%d/%d id=%d", q.Res, q.Free, q.Maxlen, q.MeshPacketId)
	case *pb.FromRadio_Rebooted:
		return "radio rebooted"
	default:
		return ""
	}
}
