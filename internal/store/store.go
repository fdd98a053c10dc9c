// Package store persists received mesh packets and node records.
// DB keeps them in SQLite (WAL mode); Memory keeps them in process.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: not found")

var errZeroNode = errors.New("store: node number must not be zero")

// Message is one mesh packet with a decoded payload, as received or as
// echoed by the local client.
type Message struct {
	ID         int64     `json:"id"`
	PacketID   uint32    `json:"packet_id"`
	FromNode   uint32    `json:"from"`
	ToNode     uint32    `json:"to"`
	Channel    uint32    `json:"channel"`
	PortNum    int32     `json:"port"`
	Payload    []byte    `json:"payload"`
	RxSNR      float32   `json:"rx_snr,omitempty"`
	RxRSSI     int32     `json:"rx_rssi,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// Node is the persisted record of a mesh participant.
type Node struct {
	Num       uint32    `json:"num"`
	ID        string    `json:"id"` // e.g. "!deadbeef"
	LongName  string    `json:"long_name"`
	ShortName string    `json:"short_name"`
	HwModel   int32     `json:"hw_model"`
	Role      int32     `json:"role"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Alt       int32     `json:"alt"`
	SNR       float32   `json:"snr"`
	HopsAway  uint32    `json:"hops_away"`
	ViaMQTT   bool      `json:"via_mqtt"`
	LastHeard time.Time `json:"last_heard"`
}

// NodeID formats a node number the way Meshtastic clients print it.
func NodeID(num uint32) string { return fmt.Sprintf("!%08x", num) }

// DB wraps *sql.DB with domain helpers.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the SQLite file at path with WAL journal mode.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000", path)
	raw, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := raw.Ping(); err != nil {
		raw.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	// One writer; WAL still allows concurrent readers.
	raw.SetMaxOpenConns(1)
	return &DB{raw}, nil
}

// Migrate applies the schema. It is idempotent.
func Migrate(db *DB) error {
	for _, stmt := range []string{ddlMessages, ddlNodes} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

// ── Messages ──────────────────────────────────────────────────────────────

// InsertMessage stores msg and returns its row id.
func (db *DB) InsertMessage(ctx context.Context, msg *Message) (int64, error) {
	payload := msg.Payload
	if payload == nil {
		payload = []byte{}
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO messages (packet_id, from_node, to_node, channel, port, payload, rx_snr, rx_rssi, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.PacketID, msg.FromNode, msg.ToNode, msg.Channel, msg.PortNum,
		payload, msg.RxSNR, msg.RxRSSI, msg.ReceivedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert message: %w", err)
	}
	return res.LastInsertId()
}

// ListMessages returns up to limit messages, newest first.
func (db *DB) ListMessages(ctx context.Context, limit int) ([]*Message, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, packet_id, from_node, to_node, channel, port, payload, rx_snr, rx_rssi, received_at
		FROM messages ORDER BY received_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list messages: %w", err)
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var (
			m  Message
			ms int64
		)
		if err := rows.Scan(&m.ID, &m.PacketID, &m.FromNode, &m.ToNode, &m.Channel,
			&m.PortNum, &m.Payload, &m.RxSNR, &m.RxRSSI, &ms); err != nil {
			return nil, err
		}
		m.ReceivedAt = time.UnixMilli(ms).UTC()
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ── Nodes ─────────────────────────────────────────────────────────────────

// UpsertNode creates or replaces the record for n.Num.
func (db *DB) UpsertNode(ctx context.Context, n *Node) error {
	if n.Num == 0 {
		return errZeroNode
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO nodes (num, long_name, short_name, hw_model, role, lat, lon, alt, snr, hops_away, via_mqtt, last_heard)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(num) DO UPDATE
		  SET long_name  = excluded.long_name,
		      short_name = excluded.short_name,
		      hw_model   = excluded.hw_model,
		      role       = excluded.role,
		      lat        = excluded.lat,
		      lon        = excluded.lon,
		      alt        = excluded.alt,
		      snr        = excluded.snr,
		      hops_away  = excluded.hops_away,
		      via_mqtt   = excluded.via_mqtt,
		      last_heard = excluded.last_heard`,
		n.Num, n.LongName, n.ShortName, n.HwModel, n.Role, n.Lat, n.Lon, n.Alt,
		n.SNR, n.HopsAway, n.ViaMQTT, n.LastHeard.Unix(),
	)
	if err != nil {
		return fmt.Errorf("store: upsert node %s: %w", NodeID(n.Num), err)
	}
	return nil
}

// GetNode returns the record for num or ErrNotFound.
func (db *DB) GetNode(ctx context.Context, num uint32) (*Node, error) {
	row := db.QueryRowContext(ctx, `
		SELECT num, long_name, short_name, hw_model, role, lat, lon, alt, snr, hops_away, via_mqtt, last_heard
		FROM nodes WHERE num = ?`, num)
	n, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return n, err
}

// ListNodes returns every node record ordered by node number.
func (db *DB) ListNodes(ctx context.Context) ([]*Node, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT num, long_name, short_name, hw_model, role, lat, lon, alt, snr, hops_away, via_mqtt, last_heard
		FROM nodes ORDER BY num`)
	if err != nil {
		return nil, fmt.Errorf("store: list nodes: %w", err)
	}
	defer rows.Close()

	var out []*Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNode(s scanner) (*Node, error) {
	var (
		n    Node
		seen int64
	)
	if err := s.Scan(&n.Num, &n.LongName, &n.ShortName, &n.HwModel, &n.Role,
		&n.Lat, &n.Lon, &n.Alt, &n.SNR, &n.HopsAway, &n.ViaMQTT, &seen); err != nil {
		return nil, err
	}
	n.ID = NodeID(n.Num)
	n.LastHeard = time.Unix(seen, 0).UTC()
	return &n, nil
}

// ── DDL statements ────────────────────────────────────────────────────────

const ddlMessages = `
CREATE TABLE IF NOT EXISTS messages (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    packet_id   INTEGER NOT NULL,          -- MeshPacket.id
    from_node   INTEGER NOT NULL,
    to_node     INTEGER NOT NULL,
    channel     INTEGER NOT NULL DEFAULT 0,
    port        INTEGER NOT NULL,
    payload     BLOB    NOT NULL,
    rx_snr      REAL    NOT NULL DEFAULT 0,
    rx_rssi     INTEGER NOT NULL DEFAULT 0,
    received_at INTEGER NOT NULL           -- Unix milliseconds
);
CREATE INDEX IF NOT EXISTS idx_messages_received_at ON messages (received_at DESC);
`

const ddlNodes = `
CREATE TABLE IF NOT EXISTS nodes (
    num        INTEGER PRIMARY KEY,
    long_name  TEXT    NOT NULL DEFAULT '',
    short_name TEXT    NOT NULL DEFAULT '',
    hw_model   INTEGER NOT NULL DEFAULT 0,
    role       INTEGER NOT NULL DEFAULT 0,
    lat        REAL    NOT NULL DEFAULT 0,
    lon        REAL    NOT NULL DEFAULT 0,
    alt        INTEGER NOT NULL DEFAULT 0,
    snr        REAL    NOT NULL DEFAULT 0,
    hops_away  INTEGER NOT NULL DEFAULT 0,
    via_mqtt   INTEGER NOT NULL DEFAULT 0,
    last_heard INTEGER NOT NULL            -- Unix seconds
);
`
