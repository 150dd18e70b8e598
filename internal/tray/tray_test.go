package tray

import (
	"sync"
	"testing"

	"github.com/dori/tempo/internal/timer"
)

func TestTrayMirrorsStatus(t *testing.T) {
	tray := New(nil)

	if tray.Running() {
		t.Error("A new tray must start idle")
	}
	if got := tray.Status().Elapsed; got != "00:00:00" {
		t.Errorf("Initial elapsed = %q, want 00:00:00", got)
	}

	tray.TimerStatus(timer.Status{Running: true, Elapsed: "00:05:12", Description: "coding"})

	status := tray.Status()
	if !status.Running || status.Elapsed != "00:05:12" || status.Description != "coding" {
		t.Errorf("Mirrored status = %+v", status)
	}
}

func TestToggleLabel(t *testing.T) {
	tray := New(nil)

	if got := tray.ToggleLabel(); got != "Start Timer" {
		t.Errorf("Idle label = %q, want Start Timer", got)
	}

	tray.TimerStatus(timer.Status{Running: true, Elapsed: "00:00:01"})
	if got := tray.ToggleLabel(); got != "Stop Timer" {
		t.Errorf("Running label = %q, want Stop Timer", got)
	}
}

func TestTooltip(t *testing.T) {
	tray := New(nil)

	if got := tray.Tooltip(); got != "Timer stopped" {
		t.Errorf("Idle tooltip = %q", got)
	}

	tray.TimerStatus(timer.Status{Running: true, Elapsed: "01:30:00"})
	if got := tray.Tooltip(); got != "Running: 01:30:00" {
		t.Errorf("Tooltip without description = %q", got)
	}

	tray.TimerStatus(timer.Status{Running: true, Elapsed: "01:30:00", Description: "review"})
	if got := tray.Tooltip(); got != "review: 01:30:00" {
		t.Errorf("Tooltip with description = %q", got)
	}
}

func TestActivateForwardsThroughDispatch(t *testing.T) {
	var received []Action
	tray := New(func(a Action) { received = append(received, a) })

	tray.Activate(ActionToggleTimer)
	tray.Activate(ActionQuit)

	if len(received) != 2 || received[0] != ActionToggleTimer || received[1] != ActionQuit {
		t.Errorf("Dispatched actions = %v", received)
	}
}

func TestActivateWithoutDispatchIsSafe(t *testing.T) {
	tray := New(nil)
	tray.Activate(ActionShowWindow) // must not panic
}

func TestActionLabels(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionToggleTimer, "Toggle Timer"},
		{ActionShowWindow, "Show Window"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestConcurrentReadsWhileUpdating(t *testing.T) {
	tray := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tray.Tooltip()
				_ = tray.Running()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		tray.TimerStatus(timer.Status{Running: j%2 == 0, Elapsed: "00:00:01"})
	}
	wg.Wait()
}
