package reel

import (
	"testing"
	"time"
)

func mustMachineScene(t *testing.T) *MachineScene {
	t.Helper()
	file := mustLoadFile(t)
	defer file.Release()

	artboard, ok := NewArtboard(file, Default())
	if !ok {
		t.Fatal("NewArtboard failed")
	}
	defer artboard.Release()

	scene, ok := NewScene(artboard, Default())
	if !ok {
		t.Fatal("NewScene failed")
	}
	machineScene, ok := scene.(*MachineScene)
	if !ok {
		t.Fatalf("NewScene returned %T", scene)
	}
	t.Cleanup(machineScene.Release)
	return machineScene
}

func TestMachineSceneMetadata(t *testing.T) {
	scene := mustMachineScene(t)

	assertNear(t, "width", scene.Width(), 50)
	assertNear(t, "height", scene.Height(), 50)

	name, err := scene.Name()
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "toggle" {
		t.Errorf("Name = %q, want %q", name, "toggle")
	}
}

func TestMachineSceneLoopAndDuration(t *testing.T) {
	scene := mustMachineScene(t)

	// Initial state runs the looping 2s spin animation.
	if got := scene.Loop(); got != LoopLoop {
		t.Errorf("Loop = %v, want loop", got)
	}
	duration, ok := scene.Duration()
	if !ok {
		t.Fatal("Duration absent for timed state")
	}
	if duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", duration)
	}
}

// A press inside the content toggles the machine to its next state on the
// following advance; the pointer coordinate arrives in surface space and is
// mapped through the viewport's cached inverse transform.
func TestMachineScenePointerTogglesState(t *testing.T) {
	scene := mustMachineScene(t)
	r := NewRecorder()

	var vp Viewport
	vp.Resize(100, 100)

	// First frame caches the inverse view transform (scale 1/2).
	scene.AdvanceAndMaybeDraw(r, 0, &vp)

	// Surface (50, 50) maps to content (25, 25), inside the 50x50 board.
	scene.PointerDown(50, 50, &vp)
	scene.AdvanceAndApply(time.Millisecond)

	if got := scene.machine.raw.StateIndex(); got != 1 {
		t.Fatalf("state = %d after press, want 1", got)
	}

	// Second state runs the one-shot 1s fade.
	if got := scene.Loop(); got != LoopOneShot {
		t.Errorf("Loop = %v after toggle, want one-shot", got)
	}
	if duration, _ := scene.Duration(); duration != time.Second {
		t.Errorf("Duration = %v after toggle, want 1s", duration)
	}
}

func TestMachineScenePointerOutsideIgnored(t *testing.T) {
	scene := mustMachineScene(t)
	r := NewRecorder()

	var vp Viewport
	vp.Resize(100, 100)
	scene.AdvanceAndMaybeDraw(r, 0, &vp)

	// Surface (200, 200) maps to content (100, 100), outside the board.
	scene.PointerDown(200, 200, &vp)
	scene.AdvanceAndApply(time.Millisecond)

	if got := scene.machine.raw.StateIndex(); got != 0 {
		t.Errorf("state = %d after outside press, want 0", got)
	}
}

func TestMachineSceneAdvanceReportsChange(t *testing.T) {
	scene := mustMachineScene(t)

	if !scene.AdvanceAndApply(100 * time.Millisecond) {
		t.Error("advance with elapsed time reported no change")
	}
	if scene.AdvanceAndApply(0) {
		t.Error("advance with zero elapsed and no input reported change")
	}
}

func TestMachineSceneDrawStateBalance(t *testing.T) {
	scene := mustMachineScene(t)
	r := NewRecorder()

	before := r.Depth()
	scene.Draw(r)
	if r.Depth() != before {
		t.Errorf("depth = %d after draw, want %d", r.Depth(), before)
	}
}
