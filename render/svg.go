package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/tverberg/advanced"
)

// Write the same picture as Draw, as an SVG document.
func WriteSVG(w io.Writer, points []advanced.Point, result advanced.PartitionResult, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(float64(opts.Width), float64(opts.Height))
	canvas.Rect(0, 0, float64(opts.Width), float64(opts.Height), "fill:"+cssColor(opts.Background))

	for t, tri := range result.Triangles {
		corners := tri.Points(points)
		xs := []float64{corners[0].X, corners[1].X, corners[2].X}
		ys := []float64{corners[0].Y, corners[1].Y, corners[2].Y}
		hex := hexColor(TriangleColor(t))
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:%s;stroke-width:%g;stroke-linejoin:round",
			hex, opts.FillOpacity, hex, opts.LineWidth))
	}

	lineStyle := fmt.Sprintf("stroke:black;stroke-width:%g;stroke-linecap:round", opts.LineWidth)
	for _, line := range result.Lines {
		s := line.Segment(points)
		canvas.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y, lineStyle)
	}

	for _, p := range points {
		canvas.Circle(p.X, p.Y, opts.DotRadius, "fill:black")
	}

	if result.Center != nil {
		star := starOutline(*result.Center, opts.StarSize)
		xs := make([]float64, len(star))
		ys := make([]float64, len(star))
		for i, p := range star {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:black;stroke-width:%g", opts.LineWidth))
	}

	canvas.End()
	return ew.err
}

func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return hexColor(color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff})
}

// svgo doesn't report write errors, so remember the first one and drop
// everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
