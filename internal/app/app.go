//go:build ebiten

package app

import (
	"image"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"xtalview/internal/camera"
	"xtalview/internal/chemio"
	"xtalview/internal/core"
	"xtalview/internal/render"
	"xtalview/internal/scene"
	"xtalview/internal/ui"
	"xtalview/internal/viewer"
)

// dragThreshold separates a click from an orbit drag, in pixels.
const dragThreshold = 3

// Game adapts a viewer to the ebiten.Game interface.
type Game struct {
	cfg  *Config
	v    *viewer.Viewer
	log  *slog.Logger
	sub  viewer.Subscription
	cam  *camera.Camera
	step *core.FixedStep

	glide   camera.Glide
	painter *render.ScenePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	showCell bool

	pressed        bool
	dragging       bool
	pressX, pressY int
	lastX, lastY   int
}

// New constructs a Game rendering v. The camera refits whenever v loads or
// rebuilds a structure.
func New(cfg *Config, v *viewer.Viewer, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		cfg:      cfg,
		v:        v,
		log:      log,
		cam:      camera.New(cfg.Width, cfg.Height),
		step:     cfg.GlideStep(),
		painter:  render.NewScenePainter(),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(NewPanel(v), cfg.HUDWidth, "xtalview"),
		showCell: true,
	}
	g.cam.Fit(v.Framing())
	g.sub = v.Subscribe(viewer.ObserverFunc(func(e viewer.Event) {
		if e.Kind == viewer.EventLoaded {
			g.glide.Cancel()
			g.cam.Fit(v.Framing())
		}
	}))
	return g
}

// Close detaches the game from its viewer.
func (g *Game) Close() {
	g.v.Unsubscribe(g.sub)
}

// Update handles input and advances the camera glide.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	hudConsumed := g.hud.Update(g.cfg.Width)
	if !hudConsumed {
		g.handlePointer()
	}

	for n := g.step.Steps(4); n > 0; n-- {
		g.glide.Step(g.cam)
	}
	return nil
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.v.ToggleRepresentation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.v.ToggleMeasurement()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showCell = !g.showCell
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		f := g.v.Framing()
		g.glide.Aim(f.Center, f.Distance)
	}
}

func (g *Game) save() {
	if !g.v.Loaded() {
		return
	}
	if err := chemio.Save(g.cfg.Out, g.v.Structure()); err != nil {
		g.log.Error("save failed", "path", g.cfg.Out, "err", err)
		return
	}
	g.log.Info("structure saved", "path", g.cfg.Out)
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < g.cfg.Width && my < g.cfg.Height

	if _, wy := ebiten.Wheel(); wy != 0 && inView {
		g.glide.Cancel()
		g.cam.Zoom(math.Pow(0.9, wy))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView {
		g.pressed, g.dragging = true, false
		g.pressX, g.pressY, g.lastX, g.lastY = mx, my, mx, my
	}
	if g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.dragging && (abs(mx-g.pressX) > dragThreshold || abs(my-g.pressY) > dragThreshold) {
			g.dragging = true
		}
		if g.dragging {
			g.cam.Orbit(float64(mx-g.lastX), float64(my-g.lastY))
		}
		g.lastX, g.lastY = mx, my
	}
	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if !g.dragging {
			hit, ok := g.raycast(mx, my)
			g.v.PickHandle(hit.Handle, ok)
		}
		g.pressed, g.dragging = false, false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inView {
		if hit, ok := g.raycast(mx, my); ok {
			if i, found := g.v.PickSet().Resolve(hit.Handle); found {
				if p, ok := g.v.Supercell().Position(i); ok {
					g.glide.Aim(p, g.cam.Distance)
				}
			}
		}
	}

	shape := ebiten.CursorShapeDefault
	if inView && !g.dragging {
		if _, ok := g.raycast(mx, my); ok {
			shape = ebiten.CursorShapePointer
		}
	}
	ebiten.SetCursorShape(shape)
}

func (g *Game) raycast(mx, my int) (scene.Hit, bool) {
	origin, dir := g.cam.Ray(float64(mx)+0.5, float64(my)+0.5)
	return scene.Raycast(origin, dir, g.v.PickSet().Objects())
}

// Draw renders the structure, the measurement overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	s := render.Scene{
		Atoms: g.v.Atoms(),
		Bonds: g.v.Bonds(),
	}
	s.Highlight, s.HasHighlight = g.v.Selected()
	if g.showCell && !g.v.Structure().Lattice.IsZero() {
		s.Edges = g.v.Structure().Lattice.Edges()
	}
	view := screen.SubImage(image.Rect(0, 0, g.cfg.Width, g.cfg.Height)).(*ebiten.Image)
	g.painter.Draw(view, g.cam, s)
	g.overlay.Draw(view, g.cam, g.v.Supercell(), g.v.Measurement())
	g.hud.Draw(screen, g.cfg.Width, g.cfg.Height)
}

// Layout returns the logical screen size: the 3D view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width + g.hud.Width(), g.cfg.Height
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
