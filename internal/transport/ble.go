package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"tinygo.org/x/bluetooth"

	"github.com/gg-glitch-88/meshlink/internal/frame"
)

// Meshtastic BLE service and characteristics.
var (
	bleServiceUUID   = mustUUID("6ba1b218-15a8-461f-9fa8-5dcae273eafd")
	bleToRadioUUID   = mustUUID("f75c76d2-129e-4dad-a1dd-7866124401e7")
	bleFromRadioUUID = mustUUID("2c55e69e-4993-11ed-b878-0242ac120002")
	bleFromNumUUID   = mustUUID("ed9da18c-a800-4f66-a670-aa7547e34453")
)

const (
	defaultScanTimeout = 10 * time.Second
	bleReadBufSize     = frame.MaxPayload
)

var errNoRadio = errors.New("ble: no meshtastic radio found")

func mustUUID(s string) bluetooth.UUID {
	u, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// BLETransport connects to a radio's GATT API. BLE carries one protobuf per
// characteristic value, so the returned Transport re-frames what it reads and
// strips framing from what it writes; the byte stream seen by callers is the
// same as on TCP or serial.
type BLETransport struct {
	device      string
	scanTimeout time.Duration
	log         *zap.Logger
	adapter     *bluetooth.Adapter
}

// NewBLETransport returns an Opener for the radio advertising name or address
// device. An empty device selects the first Meshtastic radio seen.
func NewBLETransport(device string, scanTimeout time.Duration, log *zap.Logger) *BLETransport {
	if scanTimeout <= 0 {
		scanTimeout = defaultScanTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BLETransport{
		device:      device,
		scanTimeout: scanTimeout,
		log:         log,
		adapter:     bluetooth.DefaultAdapter,
	}
}

func (b *BLETransport) Open(ctx context.Context) (Transport, error) {
	if err := b.adapter.Enable(); err != nil {
		return nil, fmt.Errorf("ble: enable adapter: %w", err)
	}
	addr, err := b.scan(ctx)
	if err != nil {
		return nil, err
	}
	dev, err := b.adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, fmt.Errorf("ble: connect %s: %w", addr.String(), err)
	}
	conn, err := b.attach(dev)
	if err != nil {
		_ = dev.Disconnect()
		return nil, err
	}
	b.log.Info("ble: connected", zap.String("device", addr.String()))
	return conn, nil
}

func (b *BLETransport) scan(ctx context.Context) (bluetooth.Address, error) {
	var (
		found bluetooth.Address
		ok    bool
		mu    sync.Mutex
	)
	ctx, cancel := context.WithTimeout(ctx, b.scanTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, func() { _ = b.adapter.StopScan() })
	defer stop()

	err := b.adapter.Scan(func(a *bluetooth.Adapter, r bluetooth.ScanResult) {
		if !r.HasServiceUUID(bleServiceUUID) || !b.matches(r) {
			return
		}
		mu.Lock()
		if !ok {
			found, ok = r.Address, true
			b.log.Debug("ble: radio found", zap.String("name", r.LocalName()), zap.String("addr", r.Address.String()))
		}
		mu.Unlock()
		_ = a.StopScan()
	})
	if err != nil {
		return found, fmt.Errorf("ble: scan: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if !ok {
		return found, errNoRadio
	}
	return found, nil
}

func (b *BLETransport) matches(r bluetooth.ScanResult) bool {
	if b.device == "" {
		return true
	}
	return r.LocalName() == b.device || strings.EqualFold(r.Address.String(), b.device)
}

func (b *BLETransport) attach(dev bluetooth.Device) (*bleConn, error) {
	svcs, err := dev.DiscoverServices([]bluetooth.UUID{bleServiceUUID})
	if err != nil || len(svcs) == 0 {
		return nil, fmt.Errorf("ble: discover service: %w", errors.Join(err, errNoRadio))
	}
	chars, err := svcs[0].DiscoverCharacteristics([]bluetooth.UUID{bleToRadioUUID, bleFromRadioUUID, bleFromNumUUID})
	if err != nil {
		return nil, fmt.Errorf("ble: discover characteristics: %w", err)
	}
	var toRadio, fromRadio, fromNum *bluetooth.DeviceCharacteristic
	for i := range chars {
		switch chars[i].UUID() {
		case bleToRadioUUID:
			toRadio = &chars[i]
		case bleFromRadioUUID:
			fromRadio = &chars[i]
		case bleFromNumUUID:
			fromNum = &chars[i]
		}
	}
	if toRadio == nil || fromRadio == nil || fromNum == nil {
		return nil, fmt.Errorf("ble: radio is missing API characteristics")
	}
	c := newBLEConn(toRadio, fromRadio, dev.Disconnect, b.log)
	if err := fromNum.EnableNotifications(func([]byte) { c.poke() }); err != nil {
		return nil, fmt.Errorf("ble: subscribe fromnum: %w", err)
	}
	c.start()
	return c, nil
}

// gattChar is the part of a GATT characteristic the link uses. TORADIO is
// written without response, the only write every host stack provides.
type gattChar interface {
	Read(p []byte) (int, error)
	WriteWithoutResponse(p []byte) (int, error)
}

// bleConn turns FROMNUM notifications into a readable byte stream.
type bleConn struct {
	toRadio    gattChar
	fromRadio  gattChar
	disconnect func() error

	rx   *pipeBuffer
	kick chan struct{}
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
	log  *zap.Logger
}

func newBLEConn(toRadio, fromRadio gattChar, disconnect func() error, log *zap.Logger) *bleConn {
	if log == nil {
		log = zap.NewNop()
	}
	return &bleConn{
		toRadio:    toRadio,
		fromRadio:  fromRadio,
		disconnect: disconnect,
		rx:         newPipeBuffer(),
		kick:       make(chan struct{}, 1),
		quit:       make(chan struct{}),
		log:        log,
	}
}

// start runs the drain loop and reads whatever the radio already queued.
func (c *bleConn) start() {
	c.wg.Add(1)
	go c.drainLoop()
	c.poke()
}

func (c *bleConn) Read(p []byte) (int, error) { return c.rx.read(p) }

// Write expects whole frames, as the session writer produces them.
func (c *bleConn) Write(p []byte) (int, error) {
	payload, err := frame.StripHeader(p)
	if err != nil {
		return 0, fmt.Errorf("ble: %w", err)
	}
	if _, err := c.toRadio.WriteWithoutResponse(payload); err != nil {
		return 0, fmt.Errorf("ble: write toradio: %w", err)
	}
	c.poke()
	return len(p), nil
}

func (c *bleConn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.quit)
		if c.disconnect != nil {
			err = c.disconnect()
		}
		c.rx.closeReader()
		c.wg.Wait()
	})
	return err
}

func (c *bleConn) poke() {
	select {
	case c.kick <- struct{}{}:
	default:
	}
}

// drainLoop reads FROMRADIO until it returns an empty value after every
// notification.
func (c *bleConn) drainLoop() {
	defer c.wg.Done()
	buf := make([]byte, bleReadBufSize)
	for {
		select {
		case <-c.quit:
			return
		case <-c.kick:
		}
		for {
			n, err := c.fromRadio.Read(buf)
			if err != nil {
				c.log.Warn("ble: read fromradio", zap.Error(err))
				c.rx.closeWriter(fmt.Errorf("ble: read fromradio: %w", err))
				return
			}
			if n == 0 {
				break
			}
			framed, err := frame.Encode(buf[:n], 0)
			if err != nil {
				c.log.Warn("ble: oversize record dropped", zap.Int("len", n))
				continue
			}
			if _, err := c.rx.write(framed); err != nil {
				return
			}
		}
	}
}
