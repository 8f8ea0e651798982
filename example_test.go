package ht16k33_test

import (
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ht16k33"
	"periph.io/x/devices/v3/ht16k33/bitmap"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := ht16k33.New(bus, &ht16k33.Opts{Addr: 0x70})
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Begin(); err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	// Light the four corners.
	dev.DrawPixel(0, 0, true)
	dev.DrawPixel(7, 0, true)
	dev.DrawPixel(0, 15, true)
	dev.DrawPixel(7, 15, true)
	if err := dev.WriteDisplay(); err != nil {
		log.Fatal(err)
	}
	_ = dev.SetBrightness(4)
	time.Sleep(2 * time.Second)
}

func ExampleDev_SetAnimation() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := ht16k33.New(bus, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Begin(); err != nil {
		log.Fatal(err)
	}

	frames := []bitmap.Frame{
		{0xFFFF, 0, 0, 0, 0, 0, 0, 0},
		{0, 0xFFFF, 0, 0, 0, 0, 0, 0},
		{0, 0, 0xFFFF, 0, 0, 0, 0, 0},
		{0, 0, 0, 0xFFFF, 0, 0, 0, 0},
	}
	dev.SetFramerate(8)
	dev.SetAnimation(frames, len(frames)*bitmap.Height)
	for dev.IsRunning() {
		if err := dev.Loop(); err != nil {
			log.Print(err)
		}
		time.Sleep(time.Millisecond)
	}
}
