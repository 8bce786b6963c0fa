package advanced

import "sort"

// Split the points into triangles fanned around a center.
//
// The points not in except are sorted by their angle from the center (ties
// keep index order), and then dealt out with a stride: with t = floor(m/3)
// triangles over m sorted points, triangle k takes sorted positions k, k+t,
// k+2t. Each triangle therefore spans the full angular range instead of a
// contiguous slice of it, which is what makes it straddle the center. When m
// isn't a multiple of 3, the last m - 3t sorted points are left out.
func TriangleFan(points []Point, center Point, except []int) []IndexTriangle {
	excluded := make(map[int]struct{}, len(except))
	for _, e := range except {
		if e < 0 || e >= len(points) {
			fatalf("excluded index %d out of range for %d points", e, len(points))
		}
		excluded[e] = struct{}{}
	}

	indices := make([]int, 0, len(points))
	for i := range points {
		if _, ok := excluded[i]; !ok {
			indices = append(indices, i)
		}
	}

	sort.SliceStable(indices, func(a, b int) bool {
		return Angle(center, points[indices[a]]) < Angle(center, points[indices[b]])
	})

	triCount := len(indices) / 3
	triangles := make([]IndexTriangle, triCount)
	for t := range triangles {
		for k := 0; k < 3; k++ {
			triangles[t][k] = indices[t+k*triCount]
		}
	}
	return triangles
}

// Convert an index triangle back into coordinates.
func (tri IndexTriangle) Points(points []Point) [3]Point {
	return [3]Point{points[tri[0]], points[tri[1]], points[tri[2]]}
}

// Does the triangle contain p strictly in its interior?
func (tri IndexTriangle) Contains(points []Point, p Point) bool {
	corners := tri.Points(points)
	return InTriangle(p, corners[0], corners[1], corners[2])
}

// Convert an index segment back into coordinates.
func (s IndexSegment) Segment(points []Point) Segment {
	return Segment{Start: points[s[0]], End: points[s[1]]}
}
