// Package main provides a particle field viewer for tuning the hero
// background interactively.
//
// Usage:
//
//	go run ./cmd/fieldviewer [flags]
//
// Flags:
//
//	--config <path>    Hero config to start from (default data/hero.yaml)
//	--additive         Start with additive blending
//	--verbose          Enable verbose logging
//
// Controls:
//
//	Mouse             - Move inside the window to pull the particles
//	Up/Down Arrow     - Quantity +/- 10
//	Left/Right Arrow  - Staticity -/+ 5
//	C                 - Cycle particle color
//	R                 - Reseed with a random seed
//	B                 - Toggle additive blending
//	P/Space           - Toggle pause
//	S                 - Save tuning to local settings
//	X                 - Discard saved tuning, reload config
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/heroparticles/pkg/app"
	"github.com/decker502/heroparticles/pkg/config"
	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/frame"
	"github.com/decker502/heroparticles/pkg/game"
	"github.com/decker502/heroparticles/pkg/render"
	"github.com/decker502/heroparticles/pkg/utils"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configFlag   = flag.String("config", config.DefaultHeroConfigPath, "Hero config to start from")
	additiveFlag = flag.Bool("additive", false, "Start with additive blending")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

// FieldViewer implements ebiten.Game for the field tuning tool
type FieldViewer struct {
	loop     *frame.Loop
	animator *field.Animator
	surface  *render.EbitenSurface

	heroCfg  *config.HeroConfig
	settings *game.SettingsManager
	tuner    *tuner

	width, height int
	additive      bool
	paused        bool

	// UI state
	statusMessage string
}

// NewFieldViewer creates the viewer from a hero config and the saved tuning
func NewFieldViewer(heroCfg *config.HeroConfig, settings *game.SettingsManager) *FieldViewer {
	v := &FieldViewer{
		loop:     frame.NewLoop(),
		heroCfg:  heroCfg,
		settings: settings,
		width:    screenWidth,
		height:   screenHeight,
		additive: *additiveFlag,
	}
	v.tuner = newTuner(settings.ApplyField(heroCfg.ToFieldConfig()))
	v.remount(v.tuner.cfg)
	v.statusMessage = "Loaded: " + v.tuner.String()
	return v
}

// remount 参数变化后重建粒子场
// 旧表面在 Unmount 时被释放，所以每次都创建新表面
func (v *FieldViewer) remount(cfg field.Config) {
	if v.animator != nil {
		v.animator.Unmount()
	}
	v.surface = render.NewEbitenSurface(float64(v.width), float64(v.height))
	v.surface.SetAdditive(v.additive)
	v.animator = field.New(cfg)
	v.animator.Mount(v.loop, v.surface)
	log.Printf("[Viewer] remounted: %s", v.tuner)
}

func (v *FieldViewer) Update() error {
	dt := 1.0 / 60.0

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
		if v.paused {
			v.statusMessage = "PAUSED - Press P to resume"
		} else {
			v.statusMessage = "Resumed"
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.remount(v.tuner.adjustQuantity(1))
		v.statusMessage = v.tuner.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.remount(v.tuner.adjustQuantity(-1))
		v.statusMessage = v.tuner.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.remount(v.tuner.adjustStaticity(-1))
		v.statusMessage = v.tuner.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.remount(v.tuner.adjustStaticity(1))
		v.statusMessage = v.tuner.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.remount(v.tuner.nextColor())
		v.statusMessage = v.tuner.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		seed := time.Now().UnixNano()
		v.tuner.setSeed(seed)
		v.animator.Reseed(seed)
		v.statusMessage = fmt.Sprintf("Reseeded: %d", seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		v.additive = !v.additive
		v.surface.SetAdditive(v.additive)
		v.statusMessage = fmt.Sprintf("Additive blending: %v", v.additive)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		v.resetTuning()
	}

	if v.paused {
		return nil
	}

	pointer := utils.GetPointerState().ToFramePointer(v.width, v.height)
	v.loop.Step(frame.Frame{DT: dt, Pointer: pointer})
	return nil
}

func (v *FieldViewer) save() {
	v.settings.SetField(v.tuner.settings())
	if err := v.settings.Save(); err != nil {
		log.Printf("[Viewer] Failed to save settings: %v", err)
		v.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	if !v.settings.Persistent() {
		v.statusMessage = "Storage unavailable, tuning kept in memory only"
		return
	}
	v.statusMessage = "Saved: " + v.tuner.String()
}

func (v *FieldViewer) resetTuning() {
	v.settings.ResetField()
	if err := v.settings.Save(); err != nil {
		log.Printf("[Viewer] Failed to save settings: %v", err)
	}
	v.tuner.reset(v.heroCfg.ToFieldConfig())
	v.remount(v.tuner.cfg)
	v.statusMessage = "Reset to config: " + v.tuner.String()
}

func (v *FieldViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 25, 38, 255})
	v.surface.Draw(screen)
	v.drawUI(screen)
}

func (v *FieldViewer) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Particle Field Viewer - %dx%d", v.width, v.height), 10, 10)
	ebitenutil.DebugPrintAt(screen, v.tuner.String(), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Drawn dots: %d  Ticks: %d  TPS: %.0f",
		v.surface.DotCount(), v.animator.Ticks(), ebiten.ActualTPS()), 10, 50)

	if v.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, v.statusMessage, 10, 70)
	}

	controls := []string{
		"Tune:    Up/Down = Quantity +/-10  Left/Right = Staticity -/+5  C = Color  R = Reseed  B = Blend",
		"Actions: P/Space = Pause  S = Save  X = Reset  Q = Quit",
	}
	y := v.height - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}

	if v.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Press P to resume)", v.width-200, 10)
	}
}

// Layout 逻辑尺寸跟随窗口，粒子场在下一帧重新测量
func (v *FieldViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != v.width || outsideHeight != v.height) {
		v.width, v.height = outsideWidth, outsideHeight
		v.surface.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return v.width, v.height
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	log.Println("=== Particle Field Viewer ===")

	heroCfg, err := config.LoadHeroConfig(*configFlag)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to load config: ", err)
	}

	gm, err := gdata.Open(gdata.Config{AppName: app.AppName})
	if err != nil {
		log.Printf("Warning: settings storage unavailable: %v", err)
		gm = nil
	}

	viewer := NewFieldViewer(heroCfg, game.NewSettingsManager(gm))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Field Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(viewer)
	viewer.animator.Unmount()
	if runErr != nil && !errors.Is(runErr, errQuit) {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}

	log.Println("Particle viewer closed")
	os.Exit(0)
}
