package core

import (
	"context"
	"time"
)

// Pacer enforces a fixed delay between generations.
type Pacer struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

// NewPacer returns a Pacer sleeping for delay on every Wait.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay, after: time.After}
}

// Delay reports the configured pause.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for the configured delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.after(p.delay):
		return nil
	}
}

// FixedStep helps run simulation updates at a steady interval from a loop
// that ticks faster, such as a render loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step interval. Non-positive values fire every call.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
