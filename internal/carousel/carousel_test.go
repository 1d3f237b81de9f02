package carousel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNextWraps(t *testing.T) {
	if got := Next(0, 3); got != 1 {
		t.Errorf("Next(0,3) = %d", got)
	}
	if got := Next(2, 3); got != 0 {
		t.Errorf("Next(2,3) = %d, expected wrap to 0", got)
	}
	if got := Next(5, 0); got != 0 {
		t.Errorf("Next on empty list = %d", got)
	}
}

func TestPrevWraps(t *testing.T) {
	if got := Prev(0, 3); got != 2 {
		t.Errorf("Prev(0,3) = %d, expected wrap to 2", got)
	}
	if got := Prev(2, 3); got != 1 {
		t.Errorf("Prev(2,3) = %d", got)
	}
}

func TestNAdvancesEqualsNModK(t *testing.T) {
	const k = 4
	index := 0
	for n := 1; n <= 10; n++ {
		index = Next(index, k)
		if index != n%k {
			t.Fatalf("after %d advances expected %d, got %d", n, n%k, index)
		}
	}
}

func TestAutoplayerAdvances(t *testing.T) {
	var ticks atomic.Int32
	ap := NewAutoplayer(3, 5*time.Millisecond, func(int) { ticks.Add(1) })

	ap.Start()
	defer ap.Stop()

	deadline := time.After(time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("autoplayer did not advance in time")
		case <-time.After(time.Millisecond):
		}
	}

	if got := ap.Index(); got != int(ticks.Load())%3 {
		t.Errorf("index %d does not match %d advances mod 3", got, ticks.Load())
	}
}

func TestAutoplayerStopClearsTimer(t *testing.T) {
	var ticks atomic.Int32
	ap := NewAutoplayer(3, 5*time.Millisecond, func(int) { ticks.Add(1) })

	ap.Start()
	if !ap.Playing() {
		t.Fatal("expected Autoplaying after Start")
	}
	ap.Stop()
	if ap.Playing() {
		t.Fatal("expected Idle after Stop")
	}

	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if ticks.Load() != settled {
		t.Error("timer kept firing after Stop")
	}
}

func TestAutoplayerStartStopIdempotent(t *testing.T) {
	ap := NewAutoplayer(3, time.Minute, nil)

	ap.Start()
	ap.Start() // no-op while playing
	if !ap.Playing() {
		t.Error("expected Autoplaying")
	}

	ap.Stop()
	ap.Stop() // no-op while idle
	if ap.Playing() {
		t.Error("expected Idle")
	}
}

func TestAutoplayerSingleImageStaysIdle(t *testing.T) {
	ap := NewAutoplayer(1, time.Millisecond, nil)
	ap.Start()
	if ap.Playing() {
		t.Error("a single image has nothing to rotate")
	}
}

func TestSelectDoesNotTouchCadence(t *testing.T) {
	ap := NewAutoplayer(5, time.Minute, nil)
	ap.Start()
	defer ap.Stop()

	ap.Select(3)
	if got := ap.Index(); got != 3 {
		t.Errorf("expected index 3, got %d", got)
	}
	if !ap.Playing() {
		t.Error("manual navigation must not stop autoplay")
	}

	ap.Select(99)
	if got := ap.Index(); got != 0 {
		t.Errorf("out-of-range select should clamp to 0, got %d", got)
	}
}
