package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleContains(t *testing.T) {
	// Triangle 0 of the diamond is the top half, (150,50) (250,200) (50,200)
	mesh := LoadFixture("diamond")
	assert.True(t, TriangleContains(mesh, 0, Point{X: 150, Y: 150}))
	assert.True(t, TriangleContains(mesh, 0, Point{X: 150, Y: 200})) // shared edge
	assert.True(t, TriangleContains(mesh, 1, Point{X: 150, Y: 200}))
	assert.True(t, TriangleContains(mesh, 0, Point{X: 50, Y: 200})) // shared vertex
	assert.False(t, TriangleContains(mesh, 0, Point{X: 150, Y: 250}))
	assert.True(t, TriangleContains(mesh, 1, Point{X: 150, Y: 250}))
}

func TestBruteForceLocate(t *testing.T) {
	mesh := LoadFixture("diamond")
	assert.Equal(t, 0, BruteForceLocate(mesh, Point{X: 150, Y: 200}))
	assert.Equal(t, 1, BruteForceLocate(mesh, Point{X: 150, Y: 250}))
	assert.Equal(t, Outside, BruteForceLocate(mesh, Point{X: 0, Y: 0}))
}
