package advanced

import (
	"embed"
	"log"
)

// Point set fixtures are SVG files in fixtures/, one point per circle. They
// are available by name, sans extension. If anything goes wrong, the test
// binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ReadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to read fixture %q: %v", name, err)
	}
	return points
}
