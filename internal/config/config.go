// Package config loads the demo configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ht16k33"
	"periph.io/x/devices/v3/ht16k33/bitmap"
)

type Animation struct {
	Name   string     `yaml:"name"`
	FPS    int        `yaml:"fps"`    // 0 uses Config.FPS
	Frames [][]string `yaml:"frames"` // 8 rows of 16 pixels per frame
}

type Config struct {
	Bus        string `yaml:"bus"`   // i2creg name, empty for the default bus
	Addr       uint16 `yaml:"addr"`  // 0x70..0x77
	Speed      string `yaml:"speed"` // e.g. 400kHz, empty keeps the bus default
	Brightness *int   `yaml:"brightness,omitempty"`
	Blink      string `yaml:"blink"` // off | 2Hz | 1Hz | 0.5Hz
	FPS        int    `yaml:"fps"`

	Animations []Animation `yaml:"animations"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Frequency returns the configured bus speed, 0 when unset.
func (c *Config) Frequency() (physic.Frequency, error) {
	var f physic.Frequency
	if c.Speed == "" {
		return 0, nil
	}
	if err := f.Set(c.Speed); err != nil {
		return 0, fmt.Errorf("config: speed %q: %w", c.Speed, err)
	}
	return f, nil
}

// BlinkRate maps the blink setting to the driver's rate.
func (c *Config) BlinkRate() (ht16k33.BlinkRate, error) {
	switch strings.ToLower(c.Blink) {
	case "", "off":
		return ht16k33.BlinkOff, nil
	case "2hz":
		return ht16k33.Blink2Hz, nil
	case "1hz":
		return ht16k33.Blink1Hz, nil
	case "0.5hz", "halfhz":
		return ht16k33.BlinkHalfHz, nil
	}
	return ht16k33.BlinkOff, fmt.Errorf("config: unknown blink rate %q", c.Blink)
}

// Animation returns the frames and frame rate of the named animation.
func (c *Config) Animation(name string) ([]bitmap.Frame, int, error) {
	for _, a := range c.Animations {
		if a.Name != name {
			continue
		}
		frames, err := bitmap.ParseFrames(a.Frames)
		if err != nil {
			return nil, 0, fmt.Errorf("config: animation %q: %w", name, err)
		}
		fps := a.FPS
		if fps <= 0 {
			fps = c.FPS
		}
		return frames, fps, nil
	}
	return nil, 0, fmt.Errorf("config: no animation %q", name)
}
