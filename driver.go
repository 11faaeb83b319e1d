package reel

import (
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gopkg.in/yaml.v3"
)

const (
	defaultWindowSize = 700
	frameStatsWindow  = 30    // frames averaged per title update
	scrollFactor      = 100.0 // wheel-line to scroll-delta conversion
	instanceSpacing   = 200   // pixel spacing of the demo instance grid
	demoTimeScale     = 797   // per-instance time offset multiplier
)

// Config configures a Driver. The zero value is usable; unset fields take
// defaults. Fields map to YAML for file-based configuration:
//
//	title: Reel viewer
//	width: 700
//	height: 700
//	asset: demo.reel
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Asset  string `yaml:"asset"`
}

// LoadConfig parses a YAML configuration.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("reel: parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Reel viewer"
	}
	if c.Width <= 0 {
		c.Width = defaultWindowSize
	}
	if c.Height <= 0 {
		c.Height = defaultWindowSize
	}
}

// Driver is the per-frame orchestrator: it implements [ebiten.Game],
// querying elapsed time, feeding pointer input to the active scene,
// advancing and recording it, and replaying the recorded commands onto the
// screen. It owns no rendering resources beyond its recorder and backend.
//
// As a stress/demo pattern the driver can fan one scene out into a grid of
// synthetic copies (keys H, J, K grow the grid, R resets it); each copy
// advances with a fixed per-instance time offset so the copies de-phase.
// This is driver policy, not a Scene property.
type Driver struct {
	cfg      Config
	viewport Viewport
	scene    Scene
	recorder *Recorder
	backend  *ImageRenderer
	sink     EventSink

	mouseX, mouseY float64
	scrollDelta    float64

	frameStart time.Time
	stats      []float64

	h, j, k int
}

// NewDriver creates a driver with the given configuration. Set a scene with
// SetScene or by dropping an asset file onto the window.
func NewDriver(cfg Config) *Driver {
	cfg.applyDefaults()
	return &Driver{
		cfg:        cfg,
		recorder:   NewRecorder(),
		backend:    NewImageRenderer(nil),
		frameStart: time.Now(),
		stats:      make([]float64, 0, frameStatsWindow),
	}
}

// SetScene replaces the active scene, releasing the previous one. Safe to
// call mid-loop: the old scene's resources are released through its
// reference count once no holder remains.
func (d *Driver) SetScene(scene Scene) {
	if d.scene != nil {
		d.scene.Release()
	}
	d.scene = scene
	d.emit(SceneEvent{Type: EventSceneLoaded, SceneName: d.sceneName()})
}

// Scene returns the active scene, or nil.
func (d *Driver) Scene() Scene { return d.scene }

// SetEventSink sets the optional ECS bridge.
func (d *Driver) SetEventSink(sink EventSink) { d.sink = sink }

// Viewport returns the driver's viewport.
func (d *Driver) Viewport() *Viewport { return &d.viewport }

func (d *Driver) emit(ev SceneEvent) {
	if d.sink != nil {
		d.sink.EmitEvent(ev)
	}
}

func (d *Driver) sceneName() string {
	if d.scene == nil {
		return ""
	}
	name, err := d.scene.Name()
	if err != nil {
		return ""
	}
	return name
}

// Update processes one event-loop tick: pointer input, demo-grid keys,
// scroll accumulation, and dropped asset files.
func (d *Driver) Update() error {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if d.scene != nil {
		if x != d.mouseX || y != d.mouseY {
			d.scene.PointerMove(x, y, &d.viewport)
			d.emit(SceneEvent{Type: EventPointerMove, X: x, Y: y, SceneName: d.sceneName()})
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			d.scene.PointerDown(x, y, &d.viewport)
			d.emit(SceneEvent{Type: EventPointerDown, X: x, Y: y, SceneName: d.sceneName()})
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			d.scene.PointerUp(x, y, &d.viewport)
			d.emit(SceneEvent{Type: EventPointerUp, X: x, Y: y, SceneName: d.sceneName()})
		}
	}
	d.mouseX, d.mouseY = x, y

	// Scroll accumulates downward and clamps at zero. Host input policy.
	_, wy := ebiten.Wheel()
	d.scrollDelta = max(0, d.scrollDelta-wy*scrollFactor)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		d.h++
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		d.j++
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		d.k++
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		d.h, d.j, d.k = 0, 0, 0
	}

	if dropped := ebiten.DroppedFiles(); dropped != nil {
		d.loadDropped(dropped)
	}
	return nil
}

// loadDropped loads the first parseable dropped file as the active scene.
func (d *Driver) loadDropped(dropped fs.FS) {
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(dropped, entry.Name())
		if err != nil {
			continue
		}
		if scene, ok := LoadScene(data); ok {
			d.SetScene(scene)
			return
		}
	}
}

// Draw produces one composed frame: measure elapsed time, advance and
// record every grid instance, then replay the command stream onto the
// screen. Presentation is Ebitengine's responsibility.
func (d *Driver) Draw(screen *ebiten.Image) {
	elapsed := time.Since(d.frameStart)
	d.frameStart = time.Now()
	d.trackStats(elapsed)

	screen.Fill(color.RGBA{R: 0x69, G: 0x69, B: 0x69, A: 0xff})

	if d.scene == nil {
		return
	}

	cols := 2*d.h + 1
	rows := d.j + d.k + 1
	instances := cols * rows

	var advancePer time.Duration
	if duration, ok := d.scene.Duration(); ok {
		advancePer = time.Duration(float64(duration) / float64(instances) * demoTimeScale)
	}

	d.recorder.Reset()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			d.recorder.StatePush()
			d.recorder.Transform([6]float64{
				1, 0, 0, 1,
				float64((col - d.h) * instanceSpacing),
				float64((row-d.k)*instanceSpacing) - d.scrollDelta,
			})

			advance := advancePer
			if row == 0 && col == 0 {
				advance += elapsed
			}
			d.scene.AdvanceAndMaybeDraw(d.recorder, advance, &d.viewport)

			d.recorder.StatePop()
		}
	}

	d.backend.SetTarget(screen)
	d.backend.Replay(d.recorder.Commands())
}

// trackStats keeps a rolling window of frame times and refreshes the window
// title with the average and the demo-grid copy count.
func (d *Driver) trackStats(elapsed time.Duration) {
	d.stats = append(d.stats, elapsed.Seconds())
	if len(d.stats) < frameStatsWindow {
		return
	}
	sum := 0.0
	for _, s := range d.stats {
		sum += s
	}
	average := sum / float64(len(d.stats))
	d.stats = d.stats[:0]

	copies := ""
	if d.h > 0 || d.j > 0 || d.k > 0 {
		copies = fmt.Sprintf(" (%d copies)", (1+2*d.h)*(1+d.j+d.k))
	}
	ebiten.SetWindowTitle(fmt.Sprintf("%s | %.2fms%s", d.cfg.Title, average*1000, copies))
}

// Layout reports the render surface size and forwards resizes to the
// viewport; the next AdvanceAndMaybeDraw picks the new size up.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.viewport.Resize(uint32(outsideWidth), uint32(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens the window and drives the game loop until the window closes.
// Failure to acquire the rendering surface is fatal and surfaces as the
// returned error from Ebitengine.
func (d *Driver) Run() error {
	ebiten.SetWindowTitle(d.cfg.Title)
	ebiten.SetWindowSize(d.cfg.Width, d.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(d)
}
