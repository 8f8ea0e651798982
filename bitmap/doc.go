// Package bitmap provides a 1-bit frame format for the HT16K33 8x16 LED matrix.
//
// A Frame is 8 rows of 16 bits. The leftmost pixel of a row is the most
// significant bit, so a row literal reads the same way it lights up:
//
//	Pixels: 0 1 2 3 ... 15
//	Bits:   15 14 13 12 ... 0
//	0b1100000000000011 lights the two outer pixels on each side.
//
// This package provides:
//
// - Bit: A color type representing a lit or unlit LED
// - BitModel: A color model for converting standard Go colors to Bit
// - Frame: A draw.Image implementation holding one matrix snapshot
// - ParseRows / ParseFrames: Build frames from text art
//
// Example usage:
//
//	f, err := bitmap.ParseRows([]string{
//		"################",
//		"#..............#",
//		"#..............#",
//		"#......##......#",
//		"#......##......#",
//		"#..............#",
//		"#..............#",
//		"################",
//	})
//
//	// Toggle a pixel
//	f.SetBit(3, 3, bitmap.On)
//
//	// Print it as a Go literal
//	fmt.Printf("%#v\n", f)
//
//	// Use with standard Go image operations
//	draw.Draw(&f, f.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package bitmap
