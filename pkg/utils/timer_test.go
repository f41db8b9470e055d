package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRepeatingTimerCarriesOverflow(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)

	if timer.Tick(0.6).JustFinished() {
		t.Fatal("Timer should not finish after 0.6s")
	}
	if !timer.Tick(0.6).JustFinished() {
		t.Fatal("Timer should finish after 1.2s")
	}
	if math.Abs(timer.Elapsed()-0.2) > epsilon {
		t.Errorf("Elapsed should carry 0.2s overflow, got %v", timer.Elapsed())
	}
	if timer.Tick(0.1).JustFinished() {
		t.Error("JustFinished should be false on the next tick")
	}
	if timer.Finished() {
		t.Error("Repeating timer Finished should only be true on the tick it fires")
	}
}

func TestRepeatingTimerMultipleTimes(t *testing.T) {
	timer := NewTimer(0.5, TimerRepeating)
	timer.Tick(1.6)
	if got := timer.TimesFinishedThisTick(); got != 3 {
		t.Errorf("TimesFinishedThisTick = %d, want 3", got)
	}
}

func TestOnceTimerStaysFinished(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)

	if !timer.Tick(1.5).JustFinished() {
		t.Fatal("Once timer should fire")
	}
	if timer.Elapsed() != 1.0 {
		t.Errorf("Once timer elapsed should clamp to duration, got %v", timer.Elapsed())
	}
	timer.Tick(0.1)
	if timer.JustFinished() {
		t.Error("Once timer should fire only once")
	}
	if !timer.Finished() {
		t.Error("Once timer should stay finished")
	}

	timer.Reset()
	if timer.Finished() || timer.Elapsed() != 0 {
		t.Error("Reset should clear finished state and elapsed")
	}
}

func TestPausedTimerDoesNotAdvance(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)
	timer.Tick(0.5)
	timer.Pause()

	if timer.Tick(10).JustFinished() {
		t.Error("Paused timer should not fire")
	}
	if timer.Elapsed() != 0.5 {
		t.Errorf("Paused timer elapsed changed to %v", timer.Elapsed())
	}

	timer.Unpause()
	if !timer.Tick(0.5).JustFinished() {
		t.Error("Unpaused timer should resume")
	}
}

func TestSetDurationKeepsElapsed(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)
	timer.Tick(0.5)
	timer.SetDuration(0.4)

	if timer.Duration() != 0.4 {
		t.Errorf("Duration = %v, want 0.4", timer.Duration())
	}
	if !timer.Tick(0).JustFinished() {
		t.Error("Shrinking the duration below elapsed should fire on the next tick")
	}
}

func TestFraction(t *testing.T) {
	timer := NewTimer(2.0, TimerOnce)
	timer.Tick(0.5)
	if math.Abs(timer.Fraction()-0.25) > epsilon {
		t.Errorf("Fraction = %v, want 0.25", timer.Fraction())
	}
	if math.Abs(timer.Remaining()-1.5) > epsilon {
		t.Errorf("Remaining = %v, want 1.5", timer.Remaining())
	}
}
