package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// walkPath returns steps+1 points on a straight line that starts distance
// meters south of center, passes through it and ends the same distance north.
func walkPath(center orb.Point, distance float64, steps int) []orb.Point {
	if steps < 1 {
		steps = 1
	}

	start := geo.PointAtBearingAndDistance(center, 180, distance)
	stride := 2 * distance / float64(steps)

	points := make([]orb.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, geo.PointAtBearingAndDistance(start, 0, stride*float64(i)))
	}

	return points
}
