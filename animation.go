package ht16k33

import (
	"errors"

	"periph.io/x/devices/v3/ht16k33/bitmap"
)

// SetAnimation starts playback of frames.
//
// rows is the number of 16-bit rows in the animation table, so the frame
// count is rows/8, capped at len(frames). The slice is borrowed: it is read
// on every frame advance and must not be modified during playback.
// Playback does not start when there is no complete frame.
func (d *Dev) SetAnimation(frames []bitmap.Frame, rows int) {
	count := rows / bitmap.Height
	if count > len(frames) {
		count = len(frames)
	}
	if count < 0 {
		count = 0
	}
	d.frames = frames
	d.count = count
	d.index = 0
	d.running = count > 0
	d.log.Debug().Int("frames", count).Bool("running", d.running).Msg("animation set")
}

// SetFramerate sets the playback speed in frames per second.
// It takes effect on the next frame advance. Non-positive values are ignored.
func (d *Dev) SetFramerate(fps int) {
	if fps <= 0 {
		return
	}
	d.interval = uint32(1000 / fps)
}

// IsRunning reports whether an animation is playing.
func (d *Dev) IsRunning() bool {
	return d.running
}

// Frame returns the index of the next frame to be drawn.
func (d *Dev) Frame() int {
	return d.index
}

// Loop advances the animation using the configured clock.
// It must be called repeatedly from the application's main loop.
func (d *Dev) Loop() error {
	return d.Step(d.clock())
}

// Step advances the animation to the millisecond timestamp now.
//
// When the frame interval has elapsed since the previous advance, the next
// frame is drawn. At most one frame is drawn per call; missed intervals are
// not caught up. Timestamps may wrap around. After the last frame has been
// drawn playback stops and the display is cleared.
func (d *Dev) Step(now uint32) error {
	if !d.running {
		return nil
	}
	if now-d.lastTick < d.interval {
		return nil
	}
	d.lastTick = now

	err := d.DrawBitmap(d.frames[d.index])
	d.index++

	if d.index >= d.count {
		d.running = false
		d.Clear()
		err = errors.Join(err, d.WriteDisplay())
		d.log.Debug().Int("frames", d.count).Msg("animation done")
	}
	return err
}
