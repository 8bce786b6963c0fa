package render

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/tverberg/advanced"
)

var (
	black     = color.RGBA{0, 0, 0, 0xff}
	passColor = color.RGBA{0x00, 0xa0, 0x40, 0xff}
	failColor = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	candColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// Draw a partition: every triangle outlined and faintly filled in palette
// order, the dividing lines in black, a dot for every point, and a star on the
// center. An empty result just draws the points.
func Draw(points []advanced.Point, result advanced.PartitionResult, opts Options) *gg.Context {
	c := newContext(opts)
	drawResult(c, points, result, opts)
	return c
}

// Draw one frame of a stepped search: the points, the candidate's segments,
// and the line being tested, green if it passed and red if it failed. Once
// the search is done, the frame is the final partition.
func DrawStep(points []advanced.Point, outcome advanced.StepOutcome, opts Options) *gg.Context {
	c := newContext(opts)
	if outcome.Done() && outcome.Result != nil {
		drawResult(c, points, *outcome.Result, opts)
		return c
	}

	c.SetLineWidth(opts.LineWidth / 2)
	c.SetColor(candColor)
	for _, line := range outcome.Lines {
		s := line.Segment(points)
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	c.Stroke()

	if outcome.Divider != nil {
		strokeColor := failColor
		if outcome.Passed() {
			strokeColor = passColor
		}
		c.SetLineWidth(opts.LineWidth)
		c.SetColor(strokeColor)
		c.DrawLine(outcome.Divider.Start.X, outcome.Divider.Start.Y, outcome.Divider.End.X, outcome.Divider.End.Y)
		c.Stroke()
	}

	drawDots(c, points, opts)
	return c
}

// Encode the drawing of a partition as PNG.
func DrawPNG(w io.Writer, points []advanced.Point, result advanced.PartitionResult, opts Options) error {
	return Draw(points, result, opts).EncodePNG(w)
}

func newContext(opts Options) *gg.Context {
	c := gg.NewContext(opts.Width, opts.Height)
	c.SetColor(opts.Background)
	c.Clear()
	return c
}

func drawResult(c *gg.Context, points []advanced.Point, result advanced.PartitionResult, opts Options) {
	for t, tri := range result.Triangles {
		corners := tri.Points(points)
		col := TriangleColor(t)

		c.MoveTo(corners[0].X, corners[0].Y)
		c.LineTo(corners[1].X, corners[1].Y)
		c.LineTo(corners[2].X, corners[2].Y)
		c.ClosePath()

		c.SetColor(col)
		c.SetLineWidth(opts.LineWidth)
		c.StrokePreserve()
		c.SetColor(color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(opts.FillOpacity * 255)})
		c.Fill()
	}

	c.SetColor(black)
	c.SetLineWidth(opts.LineWidth)
	for _, line := range result.Lines {
		s := line.Segment(points)
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	c.Stroke()

	drawDots(c, points, opts)

	if result.Center != nil {
		star := starOutline(*result.Center, opts.StarSize)
		c.MoveTo(star[0].X, star[0].Y)
		for _, p := range star[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetColor(black)
		c.SetLineWidth(opts.LineWidth)
		c.Stroke()
	}
}

func drawDots(c *gg.Context, points []advanced.Point, opts Options) {
	c.SetColor(black)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, opts.DotRadius)
	}
	c.Fill()
}
