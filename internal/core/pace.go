package core

import (
	"context"
	"time"
)

// WavePacer spaces out explosion waves so front ends can animate a cascade.
// A zero interval lets every wave through immediately.
type WavePacer struct {
	interval time.Duration
	last     time.Time
}

// NewWavePacer constructs a pacer that lets one wave through per interval.
func NewWavePacer(interval time.Duration) *WavePacer {
	p := &WavePacer{}
	p.SetInterval(interval)
	return p
}

// SetInterval changes the delay between waves. It is safe to call from the
// main loop.
func (p *WavePacer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	p.interval = interval
}

// Interval returns the delay between waves.
func (p *WavePacer) Interval() time.Duration { return p.interval }

// Arm starts a new interval at now, typically right after a move set off a
// cascade so that its first wave stays on screen for a full interval.
func (p *WavePacer) Arm(now time.Time) { p.last = now }

// Ready reports whether the next wave may run at now. A true result starts the
// next interval. An unarmed pacer arms itself and waits a full interval.
func (p *WavePacer) Ready(now time.Time) bool {
	if p.interval <= 0 {
		return true
	}
	if p.last.IsZero() {
		p.last = now
		return false
	}
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// Wait blocks for one interval or until ctx is done.
func (p *WavePacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
