package transport

import (
	"context"
	"fmt"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// DefaultBaudRate is the Meshtastic serial API speed.
const DefaultBaudRate = 115200

// SerialTransport opens a USB/UART serial port.
type SerialTransport struct {
	port string
	baud int
	log  *zap.Logger
}

func NewSerialTransport(port string, baud int, log *zap.Logger) *SerialTransport {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SerialTransport{port: port, baud: baud, log: log}
}

// Open opens the port. serial.Port.Close releases a blocked Read.
func (s *SerialTransport) Open(ctx context.Context) (Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := serial.Open(s.port, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", s.port, err)
	}
	s.log.Info("serial: connected", zap.String("port", s.port), zap.Int("baud", s.baud))
	return p, nil
}

// SerialPorts lists serial devices present on the host.
func SerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serial: list ports: %w", err)
	}
	return ports, nil
}
