package main

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

// serveRadio accepts one connection on ln and answers it like a radio that
// owns node 0xabc. Everything the host sends is forwarded on the channel.
func serveRadio(t *testing.T, ln net.Listener) <-chan *pb.ToRadio {
	t.Helper()
	got := make(chan *pb.ToRadio, 16)
	go func() {
		defer close(got)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		codec := proto.New()
		reply := func(env *pb.FromRadio) {
			payload, err := codec.EncodeFromRadio(env)
			if err != nil {
				return
			}
			if b, err := frame.Encode(payload, 0); err == nil {
				conn.Write(b) //nolint:errcheck
			}
		}
		dec := frame.NewDecoder(frame.DefaultOptions())
		buf := make([]byte, 256)
		for {
			n, err := conn.Read(buf)
			for _, f := range dec.Feed(buf[:n]) {
				msg, derr := codec.DecodeToRadio(f.Payload)
				if derr != nil {
					continue
				}
				if id, ok := msg.GetPayloadVariant().(*pb.ToRadio_WantConfigId); ok {
					reply(&pb.FromRadio{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 0xabc}}})
					reply(proto.NewConfigComplete(id.WantConfigId))
				}
				got <- msg
			}
			if err != nil {
				return
			}
		}
	}()
	return got
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestSendCommand(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	got := serveRadio(t, ln)

	out, err := run(t, "send", "--addr", ln.Addr().String(), "--to", "!00000055", "--ack", "hello", "mesh")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(out, "to !00000055") {
		t.Fatalf("output = %q", out)
	}

	var variants []string
	var packet *pb.MeshPacket
	for msg := range got {
		variants = append(variants, proto.Variant(msg))
		if p := msg.GetPacket(); p != nil {
			packet = p
		}
	}
	want := []string{"want_config_id", "packet", "disconnect"}
	if len(variants) != len(want) {
		t.Fatalf("radio saw %v, want %v", variants, want)
	}
	for i := range want {
		if variants[i] != want[i] {
			t.Fatalf("radio saw %v, want %v", variants, want)
		}
	}
	if packet.From != 0xabc || packet.To != 0x55 || !packet.WantAck ||
		string(packet.GetDecoded().GetPayload()) != "hello mesh" {
		t.Fatalf("packet = %v", packet)
	}
}

func TestSendRejectsInvalidConfig(t *testing.T) {
	_, err := run(t, "send", "--transport", "serial", "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("err = %v", err)
	}
	_, err = run(t, "send", "--addr", "127.0.0.1:1", "--to", "nowhere", "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid destination") {
		t.Fatalf("err = %v", err)
	}
}

func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name string
		a    app
		kind string
	}{
		{"addr", app{addr: "radio.local"}, "tcp"},
		{"port", app{port: "/dev/ttyUSB0"}, "serial"},
		{"ble", app{ble: "Meshtastic_1234"}, "ble"},
		{"explicit kind wins", app{addr: "radio.local", transport: "serial"}, "serial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.a.logLevel = "warn"
			if err := tt.a.setup(); err != nil {
				t.Fatal(err)
			}
			if tt.a.cfg.Transport.Kind != tt.kind {
				t.Fatalf("kind = %q, want %q", tt.a.cfg.Transport.Kind, tt.kind)
			}
			if tt.a.cfg.Log.Level != "warn" {
				t.Fatalf("log level = %q", tt.a.cfg.Log.Level)
			}
		})
	}
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "broadcast", true},
		{"broadcast", "broadcast", true},
		{"local", "local", true},
		{"!0000beef", "!0000beef", true},
		{"48879", "!0000beef", true},
		{"!xyz", "", false},
	}
	for _, tt := range tests {
		d, err := parseDestination(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("parseDestination(%q) err = %v", tt.in, err)
		}
		if tt.ok && d.String() != tt.want {
			t.Errorf("parseDestination(%q) = %s, want %s", tt.in, d, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	text := proto.NewPacketEnvelope(&pb.MeshPacket{
		From: 0x55,
		To:   proto.BroadcastAddr,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte("hi"),
		}},
	})
	if got := describe(text); got != `!00000055 -> !ffffffff ch0 TEXT_MESSAGE_APP: "hi"` {
		t.Fatalf("describe(text) = %s", got)
	}
	if got := describe(&pb.FromRadio{PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}}); got != "radio rebooted" {
		t.Fatalf("describe(rebooted) = %s", got)
	}
	if got := describe(proto.NewConfigComplete(1)); got != "" {
		t.Fatalf("describe(complete) = %s", got)
	}
}
