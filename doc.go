// Package ht16k33 controls an 8x16 LED matrix driven by a HT16K33 via I²C.
//
// The HT16K33 is a RAM mapping LED controller with 16 row and 8 common
// outputs. On the 8x16 matrix modules it drives two stacked 8x8 panels that
// share the same 8 row registers: the upper panel uses the low byte of each
// register, the lower panel the high byte.
//
// # Hardware Connection
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 3.3V or 5V
//	SDA        → I²C Data (SDA)
//	SCL        → I²C Clock (SCL)
//
// The address is 0x70 with the A0-A2 jumpers open and goes up to 0x77.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/ht16k33"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ht16k33.New(bus, &ht16k33.Opts{Addr: 0x70})
//		if err := dev.Begin(); err != nil {
//			// errors.Is(err, ht16k33.ErrNotConnected) when nothing answers
//		}
//		defer dev.Halt()
//
//		dev.DrawPixel(0, 0, true)
//		dev.DrawPixel(7, 15, true)
//		dev.WriteDisplay()
//	}
//
// # Coordinates
//
// DrawPixel addresses a logical grid of 8 columns (x) by 16 rows (y). Pixels
// with y >= 8 are on the lower panel. Out of range coordinates are ignored.
//
// DrawBitmap takes a bitmap.Frame of 8 words of 16 bits. Bit 15-j of word i is
// pixel (i, j), so each word is one logical column, most significant bit
// first. This is the layout the frame editors print, and the one Bounds and
// Draw use.
//
// # Brightness and Blinking
//
//	dev.SetBrightness(8)               // 0..15, clamped
//	dev.SetBlinkRate(ht16k33.Blink1Hz) // unknown rates mean off
//	dev.SetDisplayState(false)         // blank without losing the RAM
//
// # Animations
//
// The driver plays an animation table one frame per interval. There is no
// background goroutine: call Loop from the application's main loop, or Step
// with your own millisecond timestamps.
//
//	dev.SetFramerate(10)
//	dev.SetAnimation(frames, len(frames)*8)
//	for dev.IsRunning() {
//		dev.Loop()
//		time.Sleep(time.Millisecond)
//	}
//
// The frames slice is borrowed, not copied. When the last frame has been
// shown, playback stops and the display is cleared.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io, with a
// 16x8 bitmap.Frame as its image.
package ht16k33
