package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/ui"
)

// Renderer draws widgets with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawWidget draws any visible widget view.
func (r *Renderer) DrawWidget(v ui.View) {
	if !v.Visible {
		return
	}
	switch v.Kind {
	case ui.KindSlider:
		r.DrawSlider(v)
	case ui.KindHueSlider:
		r.DrawHueSlider(v)
	case ui.KindImageButton:
		r.DrawImageButton(v)
	case ui.KindLaser:
		r.DrawLaser(v)
	default:
		rl.DrawRectangleRec(rect(v.Bounds), r.Theme.Outline)
	}
}

// DrawSlider draws a white track, the handle and the caption below.
func (r *Renderer) DrawSlider(v ui.View) {
	rl.DrawRectangleRec(rect(v.Bounds), r.Theme.TrackFill)
	rl.DrawRectangleLinesEx(rect(v.Bounds), 1, r.Theme.Outline)
	r.drawHandle(v)
	r.drawCaption(v)
}

// DrawHueSlider draws the gradient track stretched over the slider width.
func (r *Renderer) DrawHueSlider(v ui.View) {
	b := v.Bounds
	if n := len(v.Gradient); n > 0 {
		step := b.W / float64(n)
		for i, c := range v.Gradient {
			x := b.X + float64(i)*step
			rl.DrawRectangleRec(rl.Rectangle{
				X: float32(x), Y: float32(b.Y),
				Width: float32(step) + 1, Height: float32(b.H),
			}, toColor(c))
		}
	}
	rl.DrawRectangleLinesEx(rect(b), 1, r.Theme.Outline)
	r.drawHandle(v)
	r.drawCaption(v)
}

func (r *Renderer) drawHandle(v ui.View) {
	h := v.Handle
	if h.W == h.H {
		cx, cy := h.Center()
		rl.DrawCircle(int32(cx), int32(cy), float32(h.W/2), r.Theme.Handle)
		rl.DrawCircleLines(int32(cx), int32(cy), float32(h.W/2), r.Theme.Outline)
		return
	}
	rl.DrawRectangleRec(rect(h), r.Theme.Handle)
	rl.DrawRectangleLinesEx(rect(h), 1, r.Theme.Outline)
}

// drawCaption centers the label under the track, just below the handle.
func (r *Renderer) drawCaption(v ui.View) {
	if v.Label == "" {
		return
	}
	size := r.Theme.CaptionFontSize
	w := rl.MeasureText(v.Label, size)
	x := int32(v.Bounds.X+v.Bounds.W/2) - w/2
	y := int32(v.Bounds.Y + v.Bounds.H/2 + v.Handle.H/2)
	rl.DrawText(v.Label, x, y, size, r.Theme.Text)
}

// DrawImageButton draws a rounded arrow button whose shade follows the skin.
func (r *Renderer) DrawImageButton(v ui.View) {
	b := rect(v.Bounds)
	fill := rl.NewColor(110, 110, 110, 255)
	switch v.Skin {
	case ui.SkinHover:
		fill = rl.NewColor(150, 150, 150, 255)
	case ui.SkinDown:
		fill = rl.NewColor(190, 190, 190, 255)
	}
	rl.DrawRectangleRounded(b, 0.25, 6, fill)
	rl.DrawRectangleLinesEx(b, 1, r.Theme.Outline)

	cx, cy := v.Bounds.Center()
	s := float32(v.Bounds.W / 4)
	x, y := float32(cx), float32(cy)
	// DrawTriangle requires counter-clockwise winding
	switch v.Icon {
	case ui.IconNext:
		rl.DrawTriangle(rl.NewVector2(x-s, y-s), rl.NewVector2(x-s, y+s), rl.NewVector2(x+s, y), r.Theme.Text)
	case ui.IconPrev:
		rl.DrawTriangle(rl.NewVector2(x+s, y-s), rl.NewVector2(x-s, y), rl.NewVector2(x+s, y+s), r.Theme.Text)
	}
}

// DrawLaser draws the laser body at the aim handle with the muzzle on its left edge.
func (r *Renderer) DrawLaser(v ui.View) {
	h := v.Handle
	body := rect(h)
	rl.DrawRectangleRec(body, rl.NewColor(60, 60, 70, 255))
	rl.DrawRectangleLinesEx(body, 1, r.Theme.Outline)

	// Lens
	_, cy := h.Center()
	lens := rl.Rectangle{X: float32(h.X) - 2, Y: float32(cy - h.H/6), Width: 6, Height: float32(h.H / 3)}
	rl.DrawRectangleRec(lens, rl.NewColor(200, 40, 40, 255))
}

func rect(r ui.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}
