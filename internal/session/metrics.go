package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts link activity for one or more sessions.
type Metrics struct {
	BytesIn        prometheus.Counter
	BytesOut       prometheus.Counter
	FramesIn       prometheus.Counter
	FramesOut      prometheus.Counter
	ResyncDiscards prometheus.Counter
	DecodeErrors   prometheus.Counter
	Envelopes      *prometheus.CounterVec
	Handshakes     *prometheus.CounterVec
	State          prometheus.Gauge
}

// NewMetrics builds the collectors and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "meshlink",
			Subsystem: "session",
			Name:      name,
			Help:      help,
		})
	}
	m := &Metrics{
		BytesIn:        counter("bytes_read_total", "Bytes read from the transport."),
		BytesOut:       counter("bytes_written_total", "Bytes written to the transport."),
		FramesIn:       counter("frames_received_total", "Complete frames extracted from the stream."),
		FramesOut:      counter("frames_sent_total", "Frames written to the transport."),
		ResyncDiscards: counter("resync_discarded_bytes_total", "Bytes dropped while resynchronizing the stream."),
		DecodeErrors:   counter("decode_errors_total", "Frames whose payload failed to decode."),
		Envelopes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meshlink",
				Subsystem: "session",
				Name:      "envelopes_total",
				Help:      "Decoded envelopes by variant.",
			},
			[]string{"variant"},
		),
		Handshakes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meshlink",
				Subsystem: "session",
				Name:      "handshakes_total",
				Help:      "Configuration handshakes by result.",
			},
			[]string{"result"},
		),
		State: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "meshlink",
			Subsystem: "session",
			Name:      "state",
			Help:      "Current session state (0 idle .. 6 closed).",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.BytesIn, m.BytesOut, m.FramesIn, m.FramesOut,
			m.ResyncDiscards, m.DecodeErrors, m.Envelopes, m.Handshakes, m.State)
	}
	return m
}
