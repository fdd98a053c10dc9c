package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Transport.Kind != "tcp" || cfg.Transport.BaudRate != 115200 {
		t.Fatalf("transport = %+v", cfg.Transport)
	}
	sc := cfg.SessionConfig()
	if sc.HandshakeTimeout != session.DefaultHandshakeTimeout || sc.Frame.MaxPayload != frame.MaxPayload {
		t.Fatalf("session = %+v", sc)
	}
	if sc.WriteQueueSize != 0 || sc.ConsumerBuffer != 0 {
		t.Fatal("queues must default to unbounded")
	}
	// tcp needs an address before the defaults validate.
	if err := cfg.Validate(); err == nil {
		t.Fatal("default config without addr validated")
	}
	cfg.Transport.Addr = "radio.local"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "meshlink.toml", `
[transport]
kind = "serial"
port = "/dev/ttyUSB0"
baud_rate = 921600

[session]
handshake_timeout = "10s"
write_queue_size = 64
heartbeat_interval = "5m"
resync = "strict"

[gateway]
listen_addr = "127.0.0.1:9000"
db_path = "/var/lib/meshlink.db"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	to := cfg.TransportOptions()
	if to.Kind != transport.KindSerial || to.Port != "/dev/ttyUSB0" || to.BaudRate != 921600 {
		t.Fatalf("transport = %+v", to)
	}
	sc := cfg.SessionConfig()
	if sc.HandshakeTimeout != 10*time.Second || sc.WriteQueueSize != 64 || sc.HeartbeatInterval != 5*time.Minute {
		t.Fatalf("session = %+v", sc)
	}
	if sc.Frame.Resync != frame.ResyncStrict {
		t.Fatalf("resync = %v", sc.Frame.Resync)
	}
	// Unset keys keep their defaults.
	if sc.DisconnectGrace != session.DefaultDisconnectGrace {
		t.Fatalf("grace = %v", sc.DisconnectGrace)
	}
	if cfg.Gateway.ListenAddr != "127.0.0.1:9000" || cfg.Log.Level != "debug" {
		t.Fatalf("gateway/log = %+v %+v", cfg.Gateway, cfg.Log)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "meshlink.yml", `
transport:
  kind: ble
  device: "Meshtastic_1a2b"
  scan_timeout: 30s
session:
  consumer_buffer: 16
  disconnect_grace: 2s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Transport.Kind != "ble" || cfg.Transport.Device != "Meshtastic_1a2b" || cfg.Transport.ScanTimeout != 30*time.Second {
		t.Fatalf("transport = %+v", cfg.Transport)
	}
	if cfg.Session.ConsumerBuffer != 16 || cfg.Session.DisconnectGrace != 2*time.Second {
		t.Fatalf("session = %+v", cfg.Session)
	}
	if cfg.Session.HandshakeTimeout != session.DefaultHandshakeTimeout {
		t.Fatal("yaml overlay cleared a default")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "meshlink.json", `{}`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, "meshlink.toml", `
[transport]
addr = "from-file"
`)
	t.Setenv("MESHLINK_ADDR", "from-env:4403")
	t.Setenv("MESHLINK_HANDSHAKE_TIMEOUT", "3s")
	t.Setenv("MESHLINK_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transport.Addr != "from-env:4403" {
		t.Fatalf("addr = %q", cfg.Transport.Addr)
	}
	if cfg.Session.HandshakeTimeout != 3*time.Second || cfg.Log.Level != "warn" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestEnvBadValues(t *testing.T) {
	tests := map[string]string{
		"MESHLINK_BAUD":              "fast",
		"MESHLINK_HANDSHAKE_TIMEOUT": "soon",
		"MESHLINK_HEARTBEAT":         "often",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(""); err == nil {
				t.Fatalf("%s=%s accepted", key, val)
			}
		})
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Transport.Kind = "carrier-pigeon"
	cfg.Session.MaxPayload = 4096
	cfg.Session.Resync = "sometimes"
	cfg.Session.WriteQueueSize = -1
	cfg.Log.Level = "chatty"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, want := range []string{"carrier-pigeon", "max_payload", "sometimes", "queue sizes", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestSerialNeedsPort(t *testing.T) {
	cfg := Default()
	cfg.Transport.Kind = "serial"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "transport.port") {
		t.Fatalf("err = %v", err)
	}
}
