package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/ui"
)

// Input is everything read from the window for one frame.
type Input struct {
	Pointer      ui.Pointer
	TogglePause  bool
	Restart      bool
	ToggledLayer OverlayID // empty when no overlay key was pressed
}

// PollInput samples the mouse and keyboard. Pressed is true only on the
// frame the left button went down; Down stays true while it is held.
func PollInput(overlays *OverlayRegistry) Input {
	mouse := rl.GetMousePosition()
	in := Input{
		Pointer: ui.Pointer{
			X:       float64(mouse.X),
			Y:       float64(mouse.Y),
			Down:    rl.IsMouseButtonDown(rl.MouseLeftButton),
			Pressed: rl.IsMouseButtonPressed(rl.MouseLeftButton),
		},
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
		Restart:     rl.IsKeyPressed(rl.KeyR),
	}
	// A press implies the button is down even if it was released within the frame
	if in.Pointer.Pressed {
		in.Pointer.Down = true
	}

	for _, desc := range overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			if id, _, ok := overlays.HandleKeyPress(desc.Key); ok {
				in.ToggledLayer = id
			}
		}
	}
	return in
}
