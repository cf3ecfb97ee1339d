package core

import "time"

// FixedStep paces simulation ticks independently of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate in
// ticks per second. The first call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// MaxRate bounds the tick rate so a step never rounds down to zero.
const MaxRate = 1000

// SetRate changes the tick rate. Non-positive rates fall back to 4 ticks per
// second; rates above MaxRate are clamped.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 4
	}
	rate = min(rate, MaxRate)
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current rate in ticks per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Reset drops any accumulated time so the next tick waits a full step.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is released per call; backlog beyond one step is discarded
// so a paused or stalled viewer does not burst when it resumes.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
