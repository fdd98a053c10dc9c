// Package config loads meshlink settings from a TOML or YAML file and
// MESHLINK_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MESHLINK_"

// Config is the full meshlink configuration.
type Config struct {
	Transport TransportConfig `toml:"transport" yaml:"transport"`
	Session   SessionSettings `toml:"session" yaml:"session"`
	Gateway   GatewayConfig   `toml:"gateway" yaml:"gateway"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// TransportConfig selects and addresses the radio link.
type TransportConfig struct {
	Kind        string        `toml:"kind" yaml:"kind"` // tcp | serial | ble
	Addr        string        `toml:"addr" yaml:"addr"`
	Port        string        `toml:"port" yaml:"port"`
	BaudRate    int           `toml:"baud_rate" yaml:"baud_rate"`
	Device      string        `toml:"device" yaml:"device"`
	DialTimeout time.Duration `toml:"dial_timeout" yaml:"dial_timeout"`
	ScanTimeout time.Duration `toml:"scan_timeout" yaml:"scan_timeout"`
}

// SessionSettings mirrors session.Config in file form.
type SessionSettings struct {
	HandshakeTimeout  time.Duration `toml:"handshake_timeout" yaml:"handshake_timeout"`
	WriteQueueSize    int           `toml:"write_queue_size" yaml:"write_queue_size"`
	ConsumerBuffer    int           `toml:"consumer_buffer" yaml:"consumer_buffer"`
	DisconnectGrace   time.Duration `toml:"disconnect_grace" yaml:"disconnect_grace"`
	HeartbeatInterval time.Duration `toml:"heartbeat_interval" yaml:"heartbeat_interval"`
	MaxPayload        int           `toml:"max_payload" yaml:"max_payload"`
	Resync            string        `toml:"resync" yaml:"resync"` // byte | strict
}

// GatewayConfig configures the HTTP gateway.
type GatewayConfig struct {
	ListenAddr string `toml:"listen_addr" yaml:"listen_addr"`
	// DBPath is the SQLite file; empty keeps state in memory.
	DBPath string `toml:"db_path" yaml:"db_path"`
}

type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	sc := session.DefaultConfig()
	return &Config{
		Transport: TransportConfig{
			Kind:        string(transport.KindTCP),
			BaudRate:    transport.DefaultBaudRate,
			DialTimeout: 5 * time.Second,
			ScanTimeout: 10 * time.Second,
		},
		Session: SessionSettings{
			HandshakeTimeout: sc.HandshakeTimeout,
			DisconnectGrace:  sc.DisconnectGrace,
			MaxPayload:       frame.MaxPayload,
			Resync:           frame.ResyncSkipByte.String(),
		},
		Gateway: GatewayConfig{ListenAddr: ":8080"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// The format follows the extension: .toml, .yaml or .yml. An empty path
// skips the file. Load does not validate; callers apply flag overrides and
// then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("config: unsupported file type %q", ext)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("TRANSPORT", &c.Transport.Kind)
	str("ADDR", &c.Transport.Addr)
	str("PORT", &c.Transport.Port)
	str("BLE", &c.Transport.Device)
	str("LISTEN", &c.Gateway.ListenAddr)
	str("DB", &c.Gateway.DBPath)
	str("LOG_LEVEL", &c.Log.Level)
	str("RESYNC", &c.Session.Resync)

	if v, ok := lookup(EnvPrefix + "BAUD"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sBAUD: %w", EnvPrefix, err)
		}
		c.Transport.BaudRate = n
	}
	if v, ok := lookup(EnvPrefix + "HANDSHAKE_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sHANDSHAKE_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Session.HandshakeTimeout = d
	}
	if v, ok := lookup(EnvPrefix + "HEARTBEAT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sHEARTBEAT: %w", EnvPrefix, err)
		}
		c.Session.HeartbeatInterval = d
	}
	return nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	switch transport.Kind(c.Transport.Kind) {
	case transport.KindTCP:
		if c.Transport.Addr == "" {
			errs = append(errs, errors.New("transport.addr is required for tcp"))
		}
	case transport.KindSerial:
		if c.Transport.Port == "" {
			errs = append(errs, errors.New("transport.port is required for serial"))
		}
		if c.Transport.BaudRate <= 0 {
			errs = append(errs, fmt.Errorf("transport.baud_rate must be positive, got %d", c.Transport.BaudRate))
		}
	case transport.KindBLE:
	default:
		errs = append(errs, fmt.Errorf("transport.kind %q is not tcp, serial or ble", c.Transport.Kind))
	}

	s := c.Session
	if s.MaxPayload < 1 || s.MaxPayload > frame.MaxPayload {
		errs = append(errs, fmt.Errorf("session.max_payload must be 1..%d, got %d", frame.MaxPayload, s.MaxPayload))
	}
	if _, err := frame.ParseResyncPolicy(s.Resync); err != nil {
		errs = append(errs, err)
	}
	if s.WriteQueueSize < 0 || s.ConsumerBuffer < 0 {
		errs = append(errs, errors.New("session queue sizes must not be negative"))
	}
	if s.HandshakeTimeout < 0 || s.DisconnectGrace < 0 || s.HeartbeatInterval < 0 {
		errs = append(errs, errors.New("session durations must not be negative"))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SessionConfig converts the session section. It assumes Validate passed.
func (c *Config) SessionConfig() session.Config {
	resync, _ := frame.ParseResyncPolicy(c.Session.Resync)
	return session.Config{
		HandshakeTimeout:  c.Session.HandshakeTimeout,
		WriteQueueSize:    c.Session.WriteQueueSize,
		ConsumerBuffer:    c.Session.ConsumerBuffer,
		DisconnectGrace:   c.Session.DisconnectGrace,
		HeartbeatInterval: c.Session.HeartbeatInterval,
		Frame: frame.Options{
			MaxPayload: c.Session.MaxPayload,
			Resync:     resync,
		},
	}
}

// TransportOptions converts the transport section.
func (c *Config) TransportOptions() transport.Options {
	t := c.Transport
	return transport.Options{
		Kind:        transport.Kind(t.Kind),
		Addr:        t.Addr,
		Port:        t.Port,
		BaudRate:    t.BaudRate,
		Device:      t.Device,
		DialTimeout: t.DialTimeout,
		ScanTimeout: t.ScanTimeout,
	}
}
