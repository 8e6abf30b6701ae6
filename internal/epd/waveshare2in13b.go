package epd

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/gvklok/jewelrybox/internal/logging"
)

// Native dimensions of the Waveshare 2.13" (B) V4 panel.
const (
	PanelWidth  = 122
	PanelHeight = 250
)

// Default HAT wiring (BCM numbering). Chip select is owned by the SPI
// driver itself.
const (
	pinReset = "GPIO17"
	pinDC    = "GPIO25"
	pinBusy  = "GPIO24"
)

const (
	spiSpeed = 4 * physic.MegaHertz
	// maxTxChunk keeps single SPI transfers under the spidev buffer limit.
	maxTxChunk = 2048
	// busyTimeout bounds a refresh wait; a full bichrome refresh takes
	// around 15s on this panel.
	busyTimeout = 30 * time.Second
)

// SSD1680-class controller commands used by this panel.
const (
	cmdDriverOutput      = 0x01
	cmdDeepSleep         = 0x10
	cmdDataEntryMode     = 0x11
	cmdSoftReset         = 0x12
	cmdTempSensor        = 0x18
	cmdMasterActivation  = 0x20
	cmdDisplayUpdateCtrl = 0x21
	cmdUpdateSequence    = 0x22
	cmdWriteBlackRAM     = 0x24
	cmdWriteRedRAM       = 0x26
	cmdBorderWaveform    = 0x3C
	cmdRAMXRange         = 0x44
	cmdRAMYRange         = 0x45
	cmdRAMXCounter       = 0x4E
	cmdRAMYCounter       = 0x4F
)

// Waveshare2in13b drives the 2.13" (B) V4 bichrome HAT over SPI/GPIO.
type Waveshare2in13b struct {
	port spi.PortCloser
	conn spi.Conn
	rst  gpio.PinOut
	dc   gpio.PinOut
	busy gpio.PinIn
}

// planeLen is the per-plane buffer size: rows pad 122 pixels to 16 bytes.
var planeLen = ((PanelWidth + 7) / 8) * PanelHeight

// New opens the SPI port and GPIO pins for the display HAT. spiPort selects
// the periph.io port; empty picks the platform default (/dev/spidev0.0 on a
// Raspberry Pi). The panel is left untouched; call Wake before using it.
func New(spiPort string) (*Waveshare2in13b, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init failed: %w", err)
	}

	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", spiPort, err)
	}
	conn, err := port.Connect(spiSpeed, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to connect SPI: %w", err)
	}

	d := &Waveshare2in13b{port: port, conn: conn}
	if d.rst = gpioreg.ByName(pinReset); d.rst == nil {
		_ = port.Close()
		return nil, fmt.Errorf("gpio %s not found", pinReset)
	}
	if d.dc = gpioreg.ByName(pinDC); d.dc == nil {
		_ = port.Close()
		return nil, fmt.Errorf("gpio %s not found", pinDC)
	}
	if d.busy = gpioreg.ByName(pinBusy); d.busy == nil {
		_ = port.Close()
		return nil, fmt.Errorf("gpio %s not found", pinBusy)
	}

	if err := d.rst.Out(gpio.High); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to configure reset pin: %w", err)
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to configure dc pin: %w", err)
	}
	if err := d.busy.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to configure busy pin: %w", err)
	}

	return d, nil
}

// Width returns the native panel width.
func (d *Waveshare2in13b) Width() int { return PanelWidth }

// Height returns the native panel height.
func (d *Waveshare2in13b) Height() int { return PanelHeight }

// Wake resets and reinitializes the controller. Required after Sleep and
// before the first Paint or Clear.
func (d *Waveshare2in13b) Wake() error {
	if err := d.reset(); err != nil {
		return err
	}
	if err := d.waitIdle(); err != nil {
		return err
	}
	if err := d.command(cmdSoftReset); err != nil {
		return err
	}
	if err := d.waitIdle(); err != nil {
		return err
	}

	// Gate count and scan order for the 250-line panel.
	if err := d.command(cmdDriverOutput, 0xF9, 0x00, 0x00); err != nil {
		return err
	}
	// X and Y increment.
	if err := d.command(cmdDataEntryMode, 0x03); err != nil {
		return err
	}
	if err := d.setWindow(); err != nil {
		return err
	}
	if err := d.command(cmdBorderWaveform, 0x05); err != nil {
		return err
	}
	// Use the built-in temperature sensor for waveform tuning.
	if err := d.command(cmdTempSensor, 0x80); err != nil {
		return err
	}
	if err := d.command(cmdDisplayUpdateCtrl, 0x80, 0x80); err != nil {
		return err
	}
	if err := d.setCursor(); err != nil {
		return err
	}
	return d.waitIdle()
}

// Clear refreshes the whole panel to white.
func (d *Waveshare2in13b) Clear() error {
	blank := make([]byte, planeLen)
	for i := range blank {
		blank[i] = 0xff
	}
	return d.Paint(blank, blank)
}

// Paint pushes one frame and triggers a full refresh. Blocks until the
// controller reports idle.
func (d *Waveshare2in13b) Paint(black, red []byte) error {
	if len(black) != planeLen || len(red) != planeLen {
		return fmt.Errorf("plane must be %d bytes, got black=%d red=%d", planeLen, len(black), len(red))
	}

	if err := d.command(cmdWriteBlackRAM); err != nil {
		return err
	}
	if err := d.data(black); err != nil {
		return err
	}

	// The controller's red RAM is active-high while our planes are
	// white-set, so the red plane goes out inverted.
	inverted := make([]byte, len(red))
	for i, b := range red {
		inverted[i] = ^b
	}
	if err := d.command(cmdWriteRedRAM); err != nil {
		return err
	}
	if err := d.data(inverted); err != nil {
		return err
	}

	return d.refresh()
}

// Sleep puts the controller into deep sleep. Wake is required before the
// next update.
func (d *Waveshare2in13b) Sleep() error {
	if err := d.command(cmdDeepSleep, 0x01); err != nil {
		return err
	}
	time.Sleep(2 * time.Millisecond)
	return nil
}

// Close powers the panel down and releases the SPI port. Teardown is
// best-effort: a failing sleep is logged by the caller, not raised past the
// port release.
func (d *Waveshare2in13b) Close() error {
	if err := d.Sleep(); err != nil {
		logging.Warn("Panel power-down during teardown failed: " + err.Error())
	}
	return d.port.Close()
}

// reset pulses the hardware reset line.
func (d *Waveshare2in13b) reset() error {
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	time.Sleep(20 * time.Millisecond)
	return nil
}

// refresh runs a full update cycle and waits for the panel to finish.
func (d *Waveshare2in13b) refresh() error {
	if err := d.command(cmdUpdateSequence, 0xF7); err != nil {
		return err
	}
	if err := d.command(cmdMasterActivation); err != nil {
		return err
	}
	return d.waitIdle()
}

// setWindow maps the RAM window to the full panel.
func (d *Waveshare2in13b) setWindow() error {
	endX := byte((PanelWidth - 1) >> 3)
	if err := d.command(cmdRAMXRange, 0x00, endX); err != nil {
		return err
	}
	endY := PanelHeight - 1
	return d.command(cmdRAMYRange, 0x00, 0x00, byte(endY&0xff), byte(endY>>8))
}

// setCursor rewinds the RAM address counters to the origin.
func (d *Waveshare2in13b) setCursor() error {
	if err := d.command(cmdRAMXCounter, 0x00); err != nil {
		return err
	}
	return d.command(cmdRAMYCounter, 0x00, 0x00)
}

// waitIdle polls the busy line (high while the controller works).
func (d *Waveshare2in13b) waitIdle() error {
	deadline := time.Now().Add(busyTimeout)
	for d.busy.Read() == gpio.High {
		if time.Now().After(deadline) {
			return fmt.Errorf("panel busy for more than %s", busyTimeout)
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// command sends a command byte followed by optional parameter bytes.
func (d *Waveshare2in13b) command(cmd byte, params ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("dc pin: %w", err)
	}
	if err := d.conn.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("command 0x%02X: %w", cmd, err)
	}
	if len(params) == 0 {
		return nil
	}
	return d.data(params)
}

// data streams payload bytes, chunked to respect the SPI transfer limit.
func (d *Waveshare2in13b) data(payload []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("dc pin: %w", err)
	}
	for _, chunk := range splitChunks(payload, maxTxChunk) {
		if err := d.conn.Tx(chunk, nil); err != nil {
			return fmt.Errorf("data write: %w", err)
		}
	}
	return nil
}

// splitChunks slices b into pieces of at most n bytes without copying.
func splitChunks(b []byte, n int) [][]byte {
	var out [][]byte
	for len(b) > n {
		out = append(out, b[:n])
		b = b[n:]
	}
	if len(b) > 0 {
		out = append(out, b)
	}
	return out
}
