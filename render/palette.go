package render

import (
	"fmt"
	"image/color"
	"math"
)

// Ten hues at three lightness levels, so up to 30 triangles (r = 31, n = 91)
// get distinct colors before the palette repeats.
var (
	paletteHues        = []float64{0, 25, 50, 145, 190, 210, 260, 280, 295, 320}
	paletteLightnesses = []float64{.5, .3, .8}
)

const paletteSaturation = 1

// The palette, grouped by lightness: all hues at the first lightness, then all
// hues at the second, and so on.
var palette = buildPalette()

// A copy of the palette.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), palette...)
}

// Color for the t'th triangle.
func TriangleColor(t int) color.RGBA {
	return palette[t%len(palette)]
}

func buildPalette() []color.RGBA {
	colors := make([]color.RGBA, 0, len(paletteHues)*len(paletteLightnesses))
	for _, lightness := range paletteLightnesses {
		for _, hue := range paletteHues {
			colors = append(colors, hsl(hue, paletteSaturation, lightness))
		}
	}
	return colors
}

// Convert hue (degrees), saturation and lightness (both [0, 1]) into RGB.
func hsl(hue, saturation, lightness float64) color.RGBA {
	a := saturation * math.Min(lightness, 1-lightness)
	channel := func(n float64) uint8 {
		k := math.Mod(n+hue/30, 12)
		v := lightness - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return uint8(math.Floor(v * 255))
	}
	return color.RGBA{R: channel(0), G: channel(8), B: channel(4), A: 0xff}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
