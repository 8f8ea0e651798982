// Package ht16k33 controls an 8x16 LED matrix driven by a HT16K33 via I²C.
//
// The HT16K33 is a RAM mapping LED controller with a 16x8 bit display RAM,
// 16 dimming steps and a hardware blinker. This driver keeps a copy of the
// display RAM and transfers it in one bus transaction.
//
// See the examples for how to use this package.
package ht16k33

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ht16k33/bitmap"
)

// Command opcodes.
const (
	cmdDisplayRAM    byte = 0x00 // Start register of the display RAM
	cmdOscillatorOff byte = 0x20 // System setup: standby
	cmdOscillatorOn  byte = 0x21 // System setup: normal operation
	cmdDisplaySetup  byte = 0x80 // Display setup: blink and on/off
	cmdBrightness    byte = 0xE0 // Dimming set

	displayOn byte = 0x01 // Display setup flag: display on

	// Start address byte plus two bytes per row register
	displayPayload = 17
)

const (
	// DefaultAddr is the address with all address pins floating.
	DefaultAddr uint16 = 0x70

	// Columns and Rows are the logical pixel grid addressed by DrawPixel.
	Columns = 8
	Rows    = 16

	// MaxBrightness is the highest dimming step.
	MaxBrightness = 15
)

// BlinkRate is the hardware blink frequency of the whole display.
type BlinkRate uint8

const (
	BlinkOff    BlinkRate = 0
	Blink2Hz    BlinkRate = 1
	Blink1Hz    BlinkRate = 2
	BlinkHalfHz BlinkRate = 3
)

func (b BlinkRate) String() string {
	switch b {
	case BlinkOff:
		return "off"
	case Blink2Hz:
		return "2Hz"
	case Blink1Hz:
		return "1Hz"
	case BlinkHalfHz:
		return "0.5Hz"
	default:
		return fmt.Sprintf("BlinkRate(%d)", uint8(b))
	}
}

// ErrNotConnected is returned by Begin when the device does not acknowledge
// its address.
var ErrNotConnected = errors.New("ht16k33: device not connected")

// Opts is the configuration for the HT16K33 matrix.
type Opts struct {
	// I²C address (default: 0x70, must be in 0x70..0x77)
	Addr uint16

	// Clock returns a free running millisecond counter used by Loop.
	// The default counts from the call to New.
	Clock func() uint32

	// Logger receives debug events (optional, nil to disable)
	Logger *zerolog.Logger
}

var _ display.Drawer = &Dev{}

// Dev is the device handle for the HT16K33 LED matrix.
type Dev struct {
	// Communication
	c   conn.Conn
	log zerolog.Logger

	// Raw display RAM: one 16-bit word per row register
	buffer [8]uint16

	// Animation state, borrowed from the caller
	frames   []bitmap.Frame
	count    int
	index    int
	interval uint32 // milliseconds per frame
	lastTick uint32
	running  bool
	clock    func() uint32

	halted bool
}

// New returns a handle to a HT16K33 on the given bus.
//
// The bus is not accessed; call Begin to probe and initialize the device.
// opts can be nil to use defaults.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr < 0x70 || addr > 0x77 {
		return nil, errors.New("ht16k33: address must be between 0x70 and 0x77")
	}

	l := zerolog.Nop()
	if opts.Logger != nil {
		l = *opts.Logger
	}

	d := &Dev{
		c:     &i2c.Dev{Bus: bus, Addr: addr},
		log:   l.With().Str("dev", "ht16k33").Uint16("addr", addr).Logger(),
		clock: opts.Clock,
	}
	if d.clock == nil {
		start := time.Now()
		d.clock = func() uint32 {
			return uint32(time.Since(start).Milliseconds())
		}
	}
	return d, nil
}

// Begin probes the device and sends the initialization sequence.
//
// The display RAM is cleared, blinking is disabled and brightness is set to
// the maximum. Begin also brings a halted device back.
func (d *Dev) Begin() error {
	if err := d.c.Tx(nil, nil); err != nil {
		d.log.Debug().Err(err).Msg("probe failed")
		return fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	d.halted = false
	if err := d.init(); err != nil {
		return err
	}
	d.log.Debug().Msg("initialized")
	return nil
}

// init sends the initialization sequence to the device.
func (d *Dev) init() error {
	if err := d.sendCommand(cmdOscillatorOn); err != nil {
		return err
	}
	// Buffer contents are pushed as is; they are zero on a fresh handle.
	if err := d.WriteDisplay(); err != nil {
		return err
	}
	if err := d.SetBlinkRate(BlinkOff); err != nil {
		return err
	}
	return d.SetBrightness(MaxBrightness)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.write([]byte{cmd})
}

// write sends one bus transaction.
func (d *Dev) write(b []byte) error {
	if d.halted {
		return errors.New("ht16k33: halted")
	}
	if err := d.c.Tx(b, nil); err != nil {
		return fmt.Errorf("ht16k33: write failed: %w", err)
	}
	return nil
}

// DrawPixel sets or clears a pixel in the buffer.
//
// x must be in [0, 8) and y in [0, 16); other coordinates are ignored. The
// lower half of the panel (y >= 8) shares row registers with the upper half
// and is stored in the high byte of each row. The display is not updated
// until WriteDisplay is called.
func (d *Dev) DrawPixel(x, y int, on bool) {
	r, bit, ok := locate(x, y)
	if !ok {
		return
	}
	if on {
		d.buffer[r] |= bit
	} else {
		d.buffer[r] &^= bit
	}
}

// Pixel reports whether the pixel at (x, y) is lit in the buffer.
func (d *Dev) Pixel(x, y int) bool {
	r, bit, ok := locate(x, y)
	return ok && d.buffer[r]&bit != 0
}

// locate returns the row register and bit mask for the logical pixel (x, y).
func locate(x, y int) (row int, bit uint16, ok bool) {
	if x < 0 || y < 0 || x >= Columns || y >= Rows {
		return 0, 0, false
	}
	if y >= 8 {
		x += 8
		y -= 8
	}
	return y, 1 << uint(x), true
}

// DrawBitmap loads a full frame into the buffer and writes it to the display.
//
// Bit 15-j of f[i] drives DrawPixel(i, j), so each frame row is one logical
// column of the panel, most significant bit first.
func (d *Dev) DrawBitmap(f bitmap.Frame) error {
	for i := 0; i < bitmap.Height; i++ {
		for j := 0; j < bitmap.Width; j++ {
			d.DrawPixel(i, j, f[i]>>uint(15-j)&1 != 0)
		}
	}
	return d.WriteDisplay()
}

// Bitmap returns the buffer packed the way DrawBitmap expects it.
func (d *Dev) Bitmap() bitmap.Frame {
	var f bitmap.Frame
	for i := 0; i < bitmap.Height; i++ {
		for j := 0; j < bitmap.Width; j++ {
			if d.Pixel(i, j) {
				f[i] |= 1 << uint(15-j)
			}
		}
	}
	return f
}

// Buffer returns a copy of the raw row registers.
func (d *Dev) Buffer() [8]uint16 {
	return d.buffer
}

// Clear turns off all pixels in the buffer.
// The display is not updated until WriteDisplay is called.
func (d *Dev) Clear() {
	d.buffer = [8]uint16{}
}

// WriteDisplay transfers the buffer to the display RAM.
//
// The transaction is 17 bytes: the RAM start address followed by the low and
// high byte of each row.
func (d *Dev) WriteDisplay() error {
	var b [displayPayload]byte
	b[0] = cmdDisplayRAM
	for i, row := range d.buffer {
		binary.LittleEndian.PutUint16(b[1+2*i:], row)
	}
	return d.write(b[:])
}

// SetDisplayState turns the display on or off. Turning it on disables
// blinking.
func (d *Dev) SetDisplayState(on bool) error {
	cmd := cmdDisplaySetup
	if on {
		cmd |= displayOn
	}
	return d.sendCommand(cmd)
}

// SetBrightness sets the dimming step. level is clamped to [0, 15].
func (d *Dev) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	}
	if level > MaxBrightness {
		level = MaxBrightness
	}
	return d.sendCommand(cmdBrightness | byte(level)&0x0F)
}

// SetBlinkRate turns the display on with the given blink rate.
// Unknown rates are treated as BlinkOff.
func (d *Dev) SetBlinkRate(rate BlinkRate) error {
	if rate > BlinkHalfHz {
		rate = BlinkOff
	}
	return d.sendCommand(cmdDisplaySetup | displayOn | byte(rate)<<1)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return bitmap.BitModel
}

// Bounds returns the image bounds of the display, in bitmap.Frame
// coordinates.
func (d *Dev) Bounds() image.Rectangle {
	return bitmap.Rect
}

// Draw renders src onto the current frame and writes it to the display.
//
// Pixels outside dst keep their current state.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ht16k33: halted")
	}
	dst = dst.Intersect(bitmap.Rect)
	if dst.Empty() {
		return nil
	}
	f := d.Bitmap()
	draw.Draw(&f, dst, src, sp, draw.Src)
	return d.DrawBitmap(f)
}

// Halt stops any animation, turns the display off and puts the oscillator in
// standby. Call Begin to use the device again.
func (d *Dev) Halt() error {
	d.running = false
	d.halted = true
	d.log.Debug().Msg("halt")
	if err := d.c.Tx([]byte{cmdDisplaySetup}, nil); err != nil {
		return fmt.Errorf("ht16k33: write failed: %w", err)
	}
	if err := d.c.Tx([]byte{cmdOscillatorOff}, nil); err != nil {
		return fmt.Errorf("ht16k33: write failed: %w", err)
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht16k33.Dev{%s}", d.c)
}
