// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"time"
)

const MSecsPerTick = 50

// TicksPerPhase is how long blinking text and the cursor stay on or off.
const TicksPerPhase = 8

// BlinkTimer counts ticks since power on and derives the blink phase from
// them, like the character clock divider on real hardware.
type BlinkTimer struct {
	start time.Time
}

func NewBlinkTimer() *BlinkTimer {
	return &BlinkTimer{start: time.Now()}
}

func (b *BlinkTimer) Ticks() int64 {
	return b.TicksAt(time.Now())
}

func (b *BlinkTimer) TicksAt(now time.Time) int64 {
	return now.Sub(b.start).Milliseconds() / MSecsPerTick
}

// Phase is true while blinking things are shown.
func (b *BlinkTimer) Phase() bool {
	return b.PhaseAt(time.Now())
}

func (b *BlinkTimer) PhaseAt(now time.Time) bool {
	return (b.TicksAt(now)/TicksPerPhase)%2 == 0
}
