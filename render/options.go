package render

import (
	"image/color"

	"github.com/osuushi/tverberg/advanced"
)

type Options struct {
	Width, Height int
	// Radius of the dot drawn for every point
	DotRadius float64
	// Stroke width for triangles, dividing lines and the center star
	LineWidth float64
	// Size of the star marking the center
	StarSize float64
	// Opacity of triangle fills, in [0, 1]
	FillOpacity float64
	Background  color.Color
}

func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		DotRadius:   10,
		LineWidth:   6,
		StarSize:    30,
		FillOpacity: 0.1,
		Background:  color.White,
	}
}

// The outline of a five pointed star around center, drawn as one continuous
// line starting from the top point.
func starOutline(center advanced.Point, size float64) []advanced.Point {
	x, y := center.X, center.Y
	return []advanced.Point{
		{X: x, Y: y - size*.65},
		{X: x - size*.5, Y: y + size*.8},
		{X: x + size*.75, Y: y - size*.1},
		{X: x - size*.75, Y: y - size*.1},
		{X: x + size*.5, Y: y + size*.8},
	}
}
