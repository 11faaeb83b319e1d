package reel

import (
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte("title: Demo\nwidth: 800\nheight: 600\nasset: demo.reel\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Demo" || cfg.Width != 800 || cfg.Height != 600 || cfg.Asset != "demo.reel" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig([]byte("title: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v, want parse config context", err)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	if cfg.Title == "" {
		t.Error("default title empty")
	}
	if cfg.Width != defaultWindowSize || cfg.Height != defaultWindowSize {
		t.Errorf("default size = %dx%d", cfg.Width, cfg.Height)
	}

	cfg = Config{Title: "Keep", Width: 320, Height: 240}
	cfg.applyDefaults()
	if cfg.Title != "Keep" || cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("explicit config overridden: %+v", cfg)
	}
}

func TestDriverLayoutResizesViewport(t *testing.T) {
	d := NewDriver(Config{})
	w, h := d.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if vw, vh := d.Viewport().Size(); vw != 640 || vh != 480 {
		t.Errorf("viewport = %dx%d", vw, vh)
	}
}

func TestDriverSetSceneReleasesAndEmits(t *testing.T) {
	d := NewDriver(Config{})
	var events []SceneEvent
	d.SetEventSink(eventSinkFunc(func(ev SceneEvent) { events = append(events, ev) }))

	first := driverArtboard(t, Default())
	d.SetScene(first)
	second := driverArtboard(t, ByName("plain"))
	d.SetScene(second)

	if !first.raw.Released() {
		t.Error("previous scene not released on replacement")
	}
	if second.raw.Released() {
		t.Error("active scene released")
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != EventSceneLoaded || events[0].SceneName != "board" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].SceneName != "plain" {
		t.Errorf("second event = %+v", events[1])
	}
	d.SetScene(nil)
}

// driverArtboard builds an artboard whose lifetime the driver owns, so no
// cleanup release is registered.
func driverArtboard(t *testing.T, handle Handle) *Artboard {
	t.Helper()
	file := mustLoadFile(t)
	defer file.Release()

	artboard, ok := NewArtboard(file, handle)
	if !ok {
		t.Fatal("NewArtboard failed")
	}
	return artboard
}

type eventSinkFunc func(SceneEvent)

func (f eventSinkFunc) EmitEvent(ev SceneEvent) { f(ev) }
