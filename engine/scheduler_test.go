package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFrameClockRequestsDuringPumpWait(t *testing.T) {
	c := NewFrameClock()
	runs := 0
	var again func(time.Time)
	again = func(time.Time) {
		runs++
		c.Request(again)
	}
	c.Request(again)

	if n := c.Pump(time.Now()); n != 1 {
		t.Fatalf("first pump ran %d", n)
	}
	if runs != 1 || c.Pending() != 1 {
		t.Errorf("runs=%d pending=%d", runs, c.Pending())
	}
	c.Pump(time.Now())
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestFrameClockCancel(t *testing.T) {
	c := NewFrameClock()
	ran := false
	h := c.Request(func(time.Time) { ran = true })
	keep := c.Request(func(time.Time) {})
	if h == 0 || keep == h {
		t.Fatalf("bad handles %d %d", h, keep)
	}

	c.Cancel(h)
	c.Cancel(h)
	c.Cancel(0)
	if c.Pending() != 1 {
		t.Fatalf("pending = %d", c.Pending())
	}
	c.Pump(time.Now())
	if ran {
		t.Error("cancelled request fired")
	}
}

func TestFrameClockPassesTimestamp(t *testing.T) {
	c := NewFrameClock()
	want := time.Unix(42, 0)
	var got time.Time
	c.Request(func(now time.Time) { got = now })
	c.Pump(want)
	if !got.Equal(want) {
		t.Errorf("now = %v, want %v", got, want)
	}
}

func TestTickerSchedulerFiresAndStops(t *testing.T) {
	s := NewTickerScheduler(200, nil)
	if s.Interval() != 5*time.Millisecond {
		t.Fatalf("interval = %v", s.Interval())
	}

	var fired atomic.Int32
	done := make(chan struct{})
	var tick func(time.Time)
	tick = func(time.Time) {
		if fired.Add(1) == 3 {
			close(done)
			return
		}
		s.Request(tick)
	}
	s.Request(tick)
	s.Start()
	s.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not fire three frames")
	}

	s.Stop()
	s.Stop()
	if s.Ticks() == 0 {
		t.Error("tick counter not advanced")
	}

	s.Request(func(time.Time) { t.Error("fired after stop") })
	time.Sleep(20 * time.Millisecond)
	if s.Pending() != 1 {
		t.Errorf("pending after stop = %d", s.Pending())
	}
}

func TestTickerSchedulerDefaultsFrameRate(t *testing.T) {
	if got := NewTickerScheduler(0, nil).Interval(); got != time.Second/60 {
		t.Errorf("default interval = %v", got)
	}
}
