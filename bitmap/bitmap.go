// Package bitmap provides a 1-bit 16x8 frame format for the HT16K33 LED matrix.
//
// Each of the 8 rows is a 16-bit word. The leftmost pixel of a row is the
// most significant bit. This package provides the Bit color type and the
// Frame image implementation.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

const (
	// Width is the number of pixels per row.
	Width = 16
	// Height is the number of rows in a frame.
	Height = 8
)

// Bit represents a single LED, either lit or unlit.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to opaque black or white.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Same luminance weights as color.GrayModel, lit from half intensity up.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Frame is one full 16x8 snapshot of the matrix.
//
// Row y is Frame[y]; the pixel at column x is bit 15-x of that row.
type Frame [Height]uint16

// Rect is the bounds of every Frame.
var Rect = image.Rect(0, 0, Width, Height)

// ColorModel returns the color model of the frame.
func (f *Frame) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the frame bounds.
func (f *Frame) Bounds() image.Rectangle {
	return Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.BitAt(x, y)
}

// BitAt returns the state of the pixel at (x, y). Out of bounds pixels are Off.
func (f *Frame) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(Rect)) {
		return Off
	}
	return Bit(f[y]&mask(x) != 0)
}

// Set sets the color of the pixel at (x, y).
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) without color conversion.
func (f *Frame) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(Rect)) {
		return
	}
	if b {
		f[y] |= mask(x)
	} else {
		f[y] &^= mask(x)
	}
}

// mask returns the row bit for column x, leftmost column first.
func mask(x int) uint16 {
	return 1 << uint(Width-1-x)
}

// String renders the frame as 8 lines of '#' and '.' characters.
func (f Frame) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			if f.BitAt(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// GoString renders the frame as a Go composite literal with one binary
// literal per row, ready to paste into an animation table.
func (f Frame) GoString() string {
	var sb strings.Builder
	sb.WriteString("bitmap.Frame{\n")
	for _, row := range f {
		fmt.Fprintf(&sb, "\t0b%016b,\n", row)
	}
	sb.WriteString("}")
	return sb.String()
}

// ParseRows builds a Frame from 8 strings of 16 characters each.
//
// '#', 'X', 'x', '*' and '1' are lit; '.', '-', '_', '0' and ' ' are unlit.
func ParseRows(rows []string) (Frame, error) {
	var f Frame
	if len(rows) != Height {
		return f, fmt.Errorf("bitmap: want %d rows, got %d", Height, len(rows))
	}
	for y, row := range rows {
		if len(row) != Width {
			return f, fmt.Errorf("bitmap: row %d: want %d columns, got %d", y, Width, len(row))
		}
		for x := 0; x < Width; x++ {
			switch row[x] {
			case '#', 'X', 'x', '*', '1':
				f[y] |= mask(x)
			case '.', '-', '_', '0', ' ':
			default:
				return f, fmt.Errorf("bitmap: row %d: invalid pixel %q at column %d", y, row[x], x)
			}
		}
	}
	return f, nil
}

// ErrNoFrames is returned by ParseFrames for an empty input.
var ErrNoFrames = errors.New("bitmap: no frames")

// ParseFrames parses a sequence of frames, each given as 8 row strings.
func ParseFrames(frames [][]string) ([]Frame, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	out := make([]Frame, len(frames))
	for i, rows := range frames {
		f, err := ParseRows(rows)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
