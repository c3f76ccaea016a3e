// Doppler preview tool - interactive view of how an atom's color shifts with
// its horizontal speed and whether it still absorbs a given laser hue.
//
// Usage: go run ./cmd/dopplerpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lasercool/colors"
	"github.com/pthm-cable/lasercool/components"
	"github.com/pthm-cable/lasercool/config"
	"github.com/pthm-cable/lasercool/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	plotX        = 20
	plotY        = 20
	plotWidth    = 500
	plotHeight   = 400
	panelWidth   = windowWidth - plotWidth - 60
	speedRange   = 8 // plot spans vx in [-speedRange, speedRange]
)

// PreviewParams holds the slider values.
type PreviewParams struct {
	BaseHue      float32
	VX           float32
	LaserHue     float32
	SpeedOfLight float32
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	defaults := PreviewParams{
		BaseHue:      float32(cfg.Atom.Level3DefaultHue),
		VX:           float32((cfg.Atom.SpeedMin + cfg.Atom.SpeedMax) / 2),
		LaserHue:     float32(cfg.Controls.HueDefault),
		SpeedOfLight: float32(cfg.Doppler.SpeedOfLight),
	}
	params := defaults

	rl.InitWindow(windowWidth, windowHeight, "Doppler Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	hueMin, hueMax := float32(cfg.Controls.HueMin), float32(cfg.Controls.HueMax)

	for !rl.WindowShouldClose() {
		model := systems.NewDopplerModel(cfg)
		model.SpeedOfLight = float64(params.SpeedOfLight)

		atom := components.Atom{
			BaseHue:  float64(params.BaseHue),
			Sat:      100,
			Val:      100,
			HueRange: cfg.Atom.AbsorptionRange,
			Doppler:  true,
		}
		model.Recolor(&atom, float64(params.VX))
		photon := components.NewPhoton(float64(params.LaserHue), cfg.Photon.Width, cfg.Photon.Height)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlot(model, params, cfg.Atom.AbsorptionRange)

		// Atom and photon swatches
		swatchY := int32(plotY + plotHeight + 40)
		rl.DrawText("Atom", plotX, swatchY, 16, rl.DarkGray)
		drawSwatch(plotX+60, swatchY+8, atom.Color())
		rl.DrawText("Photon", plotX+120, swatchY, 16, rl.DarkGray)
		drawSwatch(plotX+190, swatchY+8, photon.Color())

		status, statusColor := "absorbs", rl.DarkGreen
		if !atom.Accepts(photon.Hue) {
			status, statusColor = "ignores", rl.Maroon
		}
		rl.DrawText(fmt.Sprintf("Seen hue %.1f, laser %.0f: %s", atom.Hue, photon.Hue, status),
			plotX, swatchY+40, 16, statusColor)

		// Control panel
		panelX := float32(plotWidth + 50)
		panelY := float32(20)

		rl.DrawText("Doppler Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.BaseHue = slider(panelX, &panelY, "Atom hue (at rest)", params.BaseHue, hueMin, hueMax, "%.0f")
		params.VX = slider(panelX, &panelY, "Horizontal speed (px/tick)", params.VX, -speedRange, speedRange, "%.2f")
		params.LaserHue = slider(panelX, &panelY, "Laser hue", params.LaserHue, hueMin, hueMax, "%.0f")
		params.SpeedOfLight = slider(panelX, &panelY, "Speed of light (px/tick)", params.SpeedOfLight, 2, 64, "%.1f")

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlText := fmt.Sprintf("doppler:\n  speed_of_light: %.1f", params.SpeedOfLight)
		rl.DrawText(yamlText, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider bar and advances y past it.
func slider(x float32, y *float32, label string, value, lo, hi float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.0f", lo), fmt.Sprintf("%.0f", hi),
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 45
	return v
}

// drawPlot draws the seen hue against vx, one colored column per pixel,
// with the absorption band around the laser hue and a marker at the current speed.
func drawPlot(model systems.DopplerModel, params PreviewParams, absorptionRange float64) {
	rl.DrawRectangle(plotX, plotY, plotWidth, plotHeight, rl.NewColor(235, 235, 235, 255))

	hueToY := func(h float64) int32 {
		// Plot covers hues [-60, 360) so strong redshifts stay visible
		return plotY + plotHeight - int32((h+60)/420*plotHeight)
	}

	laser := float64(params.LaserHue)
	bandTop := hueToY(laser + absorptionRange)
	bandBottom := hueToY(laser - absorptionRange)
	rl.DrawRectangle(plotX, bandTop, plotWidth, bandBottom-bandTop, rl.NewColor(200, 200, 200, 255))

	for px := int32(0); px < plotWidth; px++ {
		vx := (float64(px)/plotWidth*2 - 1) * speedRange
		seen := model.Shift(float64(params.BaseHue), vx)
		y := hueToY(seen)
		c := colors.HSVToRGB(seen, 100, 100)
		rl.DrawLine(plotX+px, y, plotX+px, plotY+plotHeight, rl.NewColor(c.R, c.G, c.B, 160))
		rl.DrawPixel(plotX+px, y, rl.Black)
	}

	// Laser hue line
	ly := hueToY(laser)
	rl.DrawLine(plotX, ly, plotX+plotWidth, ly, rl.DarkGray)
	rl.DrawText("laser", plotX+4, ly-14, 12, rl.DarkGray)

	// Zero speed and current speed
	zeroX := int32(plotX + plotWidth/2)
	rl.DrawLine(zeroX, plotY, zeroX, plotY+plotHeight, rl.Gray)
	cx := plotX + int32((float64(params.VX)/speedRange+1)/2*plotWidth)
	rl.DrawLine(cx, plotY, cx, plotY+plotHeight, rl.Black)

	rl.DrawRectangleLines(plotX, plotY, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("vx: -%d .. %d", speedRange, speedRange), plotX, plotY+plotHeight+6, 14, rl.Gray)
}

func drawSwatch(x, y int32, c colors.HSV) {
	rgb := c.RGB()
	rl.DrawCircle(x, y, 14, rl.NewColor(rgb.R, rgb.G, rgb.B, 255))
	rl.DrawCircleLines(x, y, 14, rl.DarkGray)
}
