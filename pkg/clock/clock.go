package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Provider is the clock used by components which are not handed one explicitly.
var Provider = NewRealClock()

type Clock interface {
	clockwork.Clock
}

type FakeClock interface {
	clockwork.FakeClock
}

// NewRealClock returns a clock backed by the system time. All times it hands out are in UTC.
func NewRealClock() Clock {
	return realClock{
		Clock: clockwork.NewRealClock(),
	}
}

func NewFakeClock() FakeClock {
	return clockwork.NewFakeClockAt(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func NewFakeClockAt(t time.Time) FakeClock {
	return clockwork.NewFakeClockAt(t)
}

type realClock struct {
	clockwork.Clock
}

func (c realClock) Now() time.Time {
	return c.Clock.Now().UTC()
}

func (c realClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c realClock) After(d time.Duration) <-chan time.Time {
	// buffered so the goroutine terminates even if nobody receives anymore
	utcChan := make(chan time.Time, 1)
	ch := c.Clock.After(d)

	go func() {
		t := <-ch
		utcChan <- t.UTC()
	}()

	return utcChan
}
