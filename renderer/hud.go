package renderer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values shown by the stats overlay.
type HUDData struct {
	Tick        int32
	FPS         int32
	Level       int
	Hue         float64
	FireDelay   int // ticks between shots
	Atoms       int
	Photons     int
	NextAtomIn  int
	CooledShare float64 // fraction of exited atoms that left slower than they came
}

// HUD renders text panels over the scene.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a HUD that shares r's theme.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw renders the stats panel in the top-left corner of the play area.
func (h *HUD) Draw(data HUDData) {
	lines := []string{
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		fmt.Sprintf("Level: %d | Laser hue: %.0f", data.Level, data.Hue),
		fmt.Sprintf("Fire delay: %d ticks", data.FireDelay),
		fmt.Sprintf("Atoms: %d | Photons: %d", data.Atoms, data.Photons),
		fmt.Sprintf("Next atom in: %d", data.NextAtomIn),
		fmt.Sprintf("Cooled: %.0f%%", data.CooledShare*100),
	}
	h.drawLines(100, 52, 220, lines)
}

// DrawHelp lists the keyboard shortcuts.
func (h *HUD) DrawHelp(overlays *OverlayRegistry) {
	lines := []string{"Space: pause", "R: restart level", "Esc: quit"}
	for _, desc := range overlays.All() {
		lines = append(lines, fmt.Sprintf("%s: %s", desc.KeyLabel, desc.Description))
	}
	h.drawLines(100, 52, 300, lines)
}

// DrawPaused draws the paused banner centered at the top of the window.
func (h *HUD) DrawPaused(screenWidth int32) {
	const text = "PAUSED"
	size := h.renderer.Theme.HUDFontSize + 4
	w := rl.MeasureText(text, size)
	rl.DrawText(text, screenWidth-w-h.renderer.Theme.Padding, h.renderer.Theme.Padding, size, rl.Yellow)
}

func (h *HUD) drawLines(x, y, width int32, lines []string) {
	th := h.renderer.Theme
	height := int32(len(lines))*th.LineHeight + 2*th.Padding
	h.renderer.DrawPanel(x, y, width, height)

	ly := y + th.Padding
	for _, line := range lines {
		gui.Label(rl.Rectangle{
			X:      float32(x + th.Padding),
			Y:      float32(ly),
			Width:  float32(width - 2*th.Padding),
			Height: float32(th.LineHeight),
		}, line)
		ly += th.LineHeight
	}
}
