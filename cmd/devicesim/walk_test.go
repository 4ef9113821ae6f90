package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkPath_CrossesTheFence(t *testing.T) {
	center := orb.Point{-76.750096, 18.006372}

	points := walkPath(center, 2000, 8)
	require.Len(t, points, 9)

	assert.InDelta(t, 2000, geo.Distance(center, points[0]), 1)
	assert.InDelta(t, 0, geo.Distance(center, points[4]), 1)
	assert.InDelta(t, 2000, geo.Distance(center, points[8]), 1)
	assert.Less(t, points[0][1], points[8][1])
}

func TestWalkPath_AtLeastOneStep(t *testing.T) {
	points := walkPath(orb.Point{0, 0}, 100, 0)

	assert.Len(t, points, 2)
}
