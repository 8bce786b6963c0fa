package advanced

import (
	"io"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point set out of an SVG document. Every <circle> element is a point,
// taken from its cx and cy attributes in document order. This is not a general
// SVG reader: transforms, units and every other element are ignored.
func ReadSVGPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	circles := root.FindAll("circle")
	if len(circles) == 0 {
		return nil, errors.New("no circles found in svg")
	}

	points := make([]Point, 0, len(circles))
	for i, circle := range circles {
		x, err := parseCoordinate(circle.Attributes, "cx")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		y, err := parseCoordinate(circle.Attributes, "cy")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseCoordinate(attributes map[string]string, name string) (float64, error) {
	value, ok := attributes[name]
	if !ok {
		return 0, errors.Errorf("missing %s attribute", name)
	}
	coordinate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", name, value)
	}
	return coordinate, nil
}
