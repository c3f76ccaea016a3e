package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/game"
)

// Scene draws a full frame from a game snapshot.
type Scene struct {
	renderer *Renderer
	overlays *OverlayRegistry
	hud      *HUD

	width, height int32
}

// NewScene creates a scene for a window of the given size.
func NewScene(width, height int32, overlays *OverlayRegistry) *Scene {
	r := NewRenderer()
	return &Scene{
		renderer: r,
		overlays: overlays,
		hud:      NewHUD(r),
		width:    width,
		height:   height,
	}
}

// Draw renders one frame. Must be called between rl.BeginDrawing and rl.EndDrawing.
func (s *Scene) Draw(snap game.Snapshot, hud HUDData) {
	th := s.renderer.Theme

	rl.ClearBackground(th.Background)
	s.drawParticles(snap)
	s.drawBorders(snap)
	s.drawText(snap)

	for _, v := range snap.Widgets {
		s.renderer.DrawWidget(v)
	}

	if s.overlays.IsEnabled(OverlayHitboxes) {
		s.drawHitboxes(snap)
	}
	if s.overlays.IsEnabled(OverlayVelocities) {
		s.drawVelocities(snap)
	}
	if s.overlays.IsEnabled(OverlayHues) {
		s.drawHues(snap)
	}
	if s.overlays.IsEnabled(OverlayStats) {
		s.hud.Draw(hud)
	}
	if s.overlays.IsEnabled(OverlayHelp) {
		s.hud.DrawHelp(s.overlays)
	}
	if snap.Paused {
		s.hud.DrawPaused(s.width)
	}
}

// drawParticles draws photons under atoms.
func (s *Scene) drawParticles(snap game.Snapshot) {
	for _, p := range snap.Photons {
		x, y := int32(p.X), int32(p.Y)
		rl.DrawEllipse(x, y, float32(p.W/2), float32(p.H/2), toColor(p.Fill))
		rl.DrawEllipseLines(x, y, float32(p.W/2), float32(p.H/2), toColor(p.Border))
	}
	for _, a := range snap.Atoms {
		fill := toColor(a.Fill)
		// Shaded sphere: a lighter core fading to the atom's color
		core := rl.ColorBrightness(fill, 0.5)
		rl.DrawCircleGradient(int32(a.X), int32(a.Y), float32(a.Radius), core, fill)
	}
}

// drawBorders frames the play area, hiding particles outside it.
func (s *Scene) drawBorders(snap game.Snapshot) {
	th := s.renderer.Theme
	p := snap.Play
	left, top := int32(p.Left), int32(p.Top)
	right, bottom := int32(p.Right), int32(p.Bottom)

	rl.DrawRectangle(0, 0, left, s.height, th.Border)
	rl.DrawRectangle(0, 0, s.width, top, th.Border)
	rl.DrawRectangle(right, 0, s.width-right, s.height, th.Border)
	rl.DrawRectangle(0, bottom, s.width, s.height-bottom, th.Border)
	rl.DrawRectangleLines(left, top, right-left, bottom-top, th.PlayOutline)
}

// drawText draws the level title centered in the top border and the atom counter
// under the play area's bottom-left corner.
func (s *Scene) drawText(snap game.Snapshot) {
	th := s.renderer.Theme
	p := snap.Play

	w := rl.MeasureText(snap.Title, th.TitleFontSize)
	rl.DrawText(snap.Title, (s.width-w)/2, (int32(p.Top)-th.TitleFontSize)/2, th.TitleFontSize, th.Text)
	rl.DrawText(snap.Counter, int32(p.Left)+6, int32(p.Bottom)+6, th.CounterFontSize, th.Text)
}

func (s *Scene) drawHitboxes(snap game.Snapshot) {
	c := s.renderer.Theme.Hitbox
	for _, a := range snap.Atoms {
		rl.DrawCircleLines(int32(a.X), int32(a.Y), float32(a.Radius), c)
	}
	for _, p := range snap.Photons {
		rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(min(p.W, p.H)/2), c)
	}
}

// velocityScale stretches per-tick velocities into visible arrows.
const velocityScale = 30

func (s *Scene) drawVelocities(snap game.Snapshot) {
	c := s.renderer.Theme.Velocity
	for _, a := range snap.Atoms {
		from := rl.NewVector2(float32(a.X), float32(a.Y))
		to := rl.NewVector2(float32(a.X+a.VX*velocityScale), float32(a.Y+a.VY*velocityScale))
		rl.DrawLineV(from, to, c)
		rl.DrawCircleV(to, 2, c)
	}
}

func (s *Scene) drawHues(snap game.Snapshot) {
	th := s.renderer.Theme
	for _, a := range snap.Atoms {
		label := fmt.Sprintf("%.0f", a.Hue)
		w := rl.MeasureText(label, th.HUDFontSize)
		rl.DrawText(label, int32(a.X)-w/2, int32(a.Y-a.Radius)-th.HUDFontSize-2, th.HUDFontSize, rl.Black)
	}
}
