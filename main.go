package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/rooftop-siege/components"
	"github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/scenes"
	"github.com/automoto/rooftop-siege/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// Keyboard turn speed in mouse-delta units per tick.
const keyLook = 150.0

// Game is a top-down debug viewer around one GameWorld.
type Game struct {
	world *scenes.GameWorld
}

func NewGame(seed int64) (*Game, error) {
	world, err := scenes.NewGameWorld(scenes.Options{Seed: seed})
	if err != nil {
		return nil, err
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logrus.WithError(err).Warn("using default settings")
	}
	systems.ApplySavedSettings(world.Camera(), saved)
	return &Game{world: world}, nil
}

func (g *Game) Update() error {
	w := g.world

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if w.State() == config.GameStateMenu {
			w.StartGame()
		} else if w.State() == config.GameStateWin {
			w.RestartGame()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		w.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		w.RestartGame()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		w.AttachBot()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.adjustSensitivity(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.adjustSensitivity(-1)
	}

	if !w.Player().HasComponent(components.Bot) {
		w.ApplyPlayerInput(readInput())
	}
	w.AdvanceSimulation(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) adjustSensitivity(steps int) {
	cam := g.world.Camera()
	systems.AdjustSensitivity(cam, steps)
	if err := systems.SaveSettings(systems.CurrentSettings(cam)); err != nil {
		logrus.WithError(err).Warn("settings not saved")
	}
}

func readInput() scenes.PlayerInput {
	var in scenes.PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveForward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveForward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveRight++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveRight--
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.LookDX -= keyLook
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.LookDX += keyLook
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.LookDY -= keyLook
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.LookDY += keyLook
	}
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Attack = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.ToggleView = inpututil.IsKeyJustPressed(ebiten.KeyV)
	in.ToggleScope = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		m := config.CombatModeMelee
		in.CombatMode = &m
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		m := config.CombatModeRanged
		in.CombatMode = &m
	}
	return in
}

// toScreen maps world XZ onto the window with +Z up.
func toScreen(x, z float64) (float32, float32) {
	s := config.C.Scale
	return float32(float64(config.C.Width)/2 + x*s), float32(float64(config.C.Height)/2 - z*s)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.DarkGreen)
	w := g.world
	s := float32(config.C.Scale)

	for _, box := range w.Engine().DebugBoxes() {
		x, y := toScreen(box.Min.X(), box.Max.Z())
		size := box.Size()
		c := config.Gray
		if box.Min.Y() > 0 {
			c = config.Brown
		}
		vector.DrawFilledRect(screen, x, y, float32(size.X())*s, float32(size.Z())*s, c, false)
	}

	for _, entry := range w.Enemies() {
		pos := components.Transform.Get(entry).Position
		x, y := toScreen(pos.X(), pos.Z())
		vector.DrawFilledCircle(screen, x, y, 0.5*s, config.Red, true)
	}
	for _, entry := range w.Bullets() {
		pos := components.Transform.Get(entry).Position
		x, y := toScreen(pos.X(), pos.Z())
		vector.DrawFilledCircle(screen, x, y, 2, config.Yellow, true)
	}

	t := components.Transform.Get(w.Player())
	px, py := toScreen(t.Position.X(), t.Position.Z())
	vector.DrawFilledCircle(screen, px, py, 0.4*s, config.LightBlue, true)
	r := t.RotationY * math.Pi / 180
	fx, fy := toScreen(t.Position.X()+math.Sin(r)*1.5, t.Position.Z()+math.Cos(r)*1.5)
	vector.StrokeLine(screen, px, py, fx, fy, 2, config.White, true)

	cam := w.Camera()
	cx, cy := toScreen(cam.Position.X(), cam.Position.Z())
	camColor := color.Color(config.White)
	if cam.Occluded {
		camColor = config.Yellow
	}
	vector.DrawFilledRect(screen, cx-3, cy-3, 6, 6, camColor, false)

	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	w := g.world
	wave := w.Wave()
	p := components.Player.Get(w.Player())
	cam := w.Camera()

	status := fmt.Sprintf("%s  wave %d/%d  kills %d/%d  enemies %d",
		w.State(), wave.CurrentWave, wave.TotalWaves, wave.EnemiesKilled, wave.EnemiesPerWave, w.LivingEnemies())
	view := fmt.Sprintf("%s  %s  scope %v  fov %.1f  sens %.3f",
		p.CombatMode, cam.Active, cam.Scoped, cam.FOV, cam.Sensitivity)
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	ebitenutil.DebugPrintAt(screen, view, 8, 24)

	switch w.State() {
	case config.GameStateMenu:
		ebitenutil.DebugPrintAt(screen, "ENTER start  B bot  WASD move  Q/E turn  F attack  1/2 mode  V view  R scope", 8, 40)
	case config.GameStateWaveTransition:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("next wave in %.1fs", wave.TransitionTimer), 8, 40)
	case config.GameStateWin:
		ebitenutil.DebugPrintAt(screen, "all waves cleared, ENTER to play again", 8, 40)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "Simulation seed (0 = wall clock)")
	overrides := flag.String("config", "", "YAML file with config overrides")
	flag.Parse()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
	}
	if lvl, err := logrus.ParseLevel(config.Debug.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("rooftop-siege")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logrus.WithError(err).Warn("running without saved settings")
	}

	game, err := NewGame(*seed)
	if err != nil {
		logrus.Fatalf("Failed to create world: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		logrus.Fatal(err)
	}
}
